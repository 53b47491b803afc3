// Package store records raw frames in a bbolt database for later replay.
package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/golang/glog"
	"go.etcd.io/bbolt"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// FramesBucket is the bucket holding frames, keyed by sequence.
const FramesBucket = "frames"

// headerSize is the size of start and end stamps before the frame data.
const headerSize = 16

// ErrCorrupted indicates a record too short to hold a frame.
var ErrCorrupted = errors.New("corrupted frame record")

// Store is a frame recorder. It implements telemetry.FrameHandler.
type Store struct {
	DB *bbolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(FramesBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Put appends a frame and returns its sequence, starting from 1.
func (s *Store) Put(frame *telemetry.Frame) (seq uint64, err error) {
	err = s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(FramesBucket))
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(seqKey(seq), encodeFrame(frame))
	})
	return
}

// Get gets a frame by sequence.
func (s *Store) Get(seq uint64) (frame *telemetry.Frame, err error) {
	err = s.DB.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket([]byte(FramesBucket)).Get(seqKey(seq))
		if val == nil {
			return fmt.Errorf("frame %d not found", seq)
		}
		frame, err = decodeFrame(val)
		return err
	})
	return
}

// ForEach calls fn for every frame in recorded order. Iteration stops on
// the first error.
func (s *Store) ForEach(fn func(seq uint64, frame *telemetry.Frame) error) error {
	return s.DB.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(FramesBucket)).ForEach(func(k, v []byte) error {
			frame, err := decodeFrame(v)
			if err != nil {
				return err
			}
			return fn(binary.BigEndian.Uint64(k), frame)
		})
	})
}

// Len returns the number of recorded frames.
func (s *Store) Len() (n int, err error) {
	err = s.DB.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket([]byte(FramesBucket)).Stats().KeyN
		return nil
	})
	return
}

// Emit implements telemetry.Emitter. Only frames are recorded.
func (s *Store) Emit(context.Context, telemetry.FieldEvent) {}

// HandleFrame implements telemetry.FrameHandler.
func (s *Store) HandleFrame(_ context.Context, frame *telemetry.Frame) {
	if _, err := s.Put(frame); err != nil {
		glog.Errorf("record frame error: %v", err)
	}
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func encodeFrame(frame *telemetry.Frame) []byte {
	val := make([]byte, headerSize+len(frame.Data))
	binary.BigEndian.PutUint64(val, uint64(frame.Start))
	binary.BigEndian.PutUint64(val[8:], uint64(frame.End))
	copy(val[headerSize:], frame.Data)
	return val
}

// decodeFrame copies out of val, which is only valid within a transaction.
func decodeFrame(val []byte) (*telemetry.Frame, error) {
	if len(val) < headerSize {
		return nil, ErrCorrupted
	}
	frame := &telemetry.Frame{
		Start: int64(binary.BigEndian.Uint64(val)),
		End:   int64(binary.BigEndian.Uint64(val[8:])),
		Data:  make([]byte, len(val)-headerSize),
	}
	copy(frame.Data, val[headerSize:])
	return frame, nil
}
