// Package source feeds bytes from a serial line or a capture into a
// telemetry.Decoder.
package source

import (
	"context"
	"io"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// ReadBufferSize is the size of a single read from the underlying reader.
const ReadBufferSize = 256

// Reader pumps bytes from an io.Reader into a Decoder.
type Reader struct {
	Reader  io.Reader
	Decoder *telemetry.Decoder
	// WallClock stamps bytes with the time they were read, in
	// nanoseconds since the epoch, instead of byte positions.
	WallClock bool
	// Stats receives the decoder counters every StatsInterval, and once
	// more when the reader reaches EOF.
	Stats         telemetry.StatsHandler
	StatsInterval time.Duration

	offset int64
}

// NewReader creates a Reader.
func NewReader(r io.Reader, decoder *telemetry.Decoder) *Reader {
	return &Reader{Reader: r, Decoder: decoder}
}

// Offset returns the number of bytes fed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Run feeds the decoder until the reader reaches EOF or ctx is canceled.
// If the reader is also an io.Closer, it's closed when Run returns.
func (r *Reader) Run(ctx context.Context) error {
	chunkCh, errCh := make(chan []byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if closer, ok := r.Reader.(io.Closer); ok {
		defer closer.Close()
		go func() {
			<-subCtx.Done()
			closer.Close()
		}()
	}
	go r.readLoop(subCtx, chunkCh, errCh)

	var tickCh <-chan time.Time
	if r.Stats != nil && r.StatsInterval > 0 {
		ticker := time.NewTicker(r.StatsInterval)
		defer ticker.Stop()
		tickCh = ticker.C
	}
	for {
		select {
		case chunk := <-chunkCh:
			r.feed(ctx, chunk)
		case <-tickCh:
			r.Stats.HandleStats(ctx, r.Decoder.Stats())
		case err := <-errCh:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err == io.EOF {
				glog.V(2).Infof("source EOF after %d bytes", r.offset)
				if r.Stats != nil {
					r.Stats.HandleStats(ctx, r.Decoder.Stats())
				}
				return nil
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reader) feed(ctx context.Context, chunk []byte) {
	for _, b := range chunk {
		ev := telemetry.ByteEvent{Value: b, Start: r.offset, End: r.offset + 1}
		if r.WallClock {
			now := time.Now().UnixNano()
			ev.Start, ev.End = now, now
		}
		r.offset++
		r.Decoder.Feed(ctx, ev)
	}
}

func (r *Reader) readLoop(ctx context.Context, chunkCh chan []byte, errCh chan error) {
	buf := make([]byte, ReadBufferSize)
	for {
		n, err := r.Reader.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case chunkCh <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			errCh <- err
			return
		}
	}
}
