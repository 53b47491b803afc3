package store

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

func openTemp(t *testing.T) (*Store, func()) {
	dir, err := ioutil.TempDir("", "mercator-store")
	require.NoError(t, err)
	s, err := Open(filepath.Join(dir, "frames.db"))
	require.NoError(t, err)
	return s, func() {
		s.Close()
		os.RemoveAll(dir)
	}
}

func TestStorePutForEach(t *testing.T) {
	s, cleanup := openTemp(t)
	defer cleanup()

	frames := []*telemetry.Frame{
		{Data: (&telemetry.Message{MsgType: 1, Depth: 1}).Bytes(), Start: 0, End: 114},
		{Data: []byte{4, 0, 1, 2}, Start: 114, End: 118},
		{Data: (&telemetry.Message{MsgType: 1, Depth: 2}).Bytes(), Start: -5, End: 1 << 40},
	}
	for n, frame := range frames {
		seq, err := s.Put(frame)
		require.NoError(t, err)
		require.EqualValues(t, n+1, seq)
	}
	n, err := s.Len()
	require.NoError(t, err)
	require.Equal(t, len(frames), n)

	var got []*telemetry.Frame
	require.NoError(t, s.ForEach(func(seq uint64, frame *telemetry.Frame) error {
		require.EqualValues(t, len(got)+1, seq)
		got = append(got, frame)
		return nil
	}))
	require.Equal(t, frames, got)

	frame, err := s.Get(2)
	require.NoError(t, err)
	require.Equal(t, frames[1], frame)
	_, err = s.Get(9)
	require.Error(t, err)
}

func TestStoreReplay(t *testing.T) {
	s, cleanup := openTemp(t)
	defer cleanup()

	rec := telemetry.NewDecoder(s)
	data := (&telemetry.Message{MsgType: 1, Depth: 3.5}).Bytes()
	for n, b := range data {
		rec.Feed(context.TODO(), telemetry.ByteEvent{Value: b, Start: int64(n), End: int64(n + 1)})
	}

	var events telemetry.EventCollector
	replay := telemetry.NewDecoder(&events)
	require.NoError(t, s.ForEach(func(_ uint64, frame *telemetry.Frame) error {
		replay.DecodeFrame(context.TODO(), frame)
		return nil
	}))
	require.EqualValues(t, 1, replay.Stats().Decoded)
	require.Equal(t, "Depth: 3.5m", events.Events[2].Text())
}
