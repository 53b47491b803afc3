package comm

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// Text writes field events as lines of text.
type Text struct {
	Writer io.Writer
	// Summary writes only the per-frame summary line.
	Summary bool

	lock sync.Mutex
}

// NewText creates a Text emitter.
func NewText(w io.Writer) *Text {
	return &Text{Writer: w}
}

// FormatEvent renders an event as one line.
func FormatEvent(ev telemetry.FieldEvent) string {
	return fmt.Sprintf("%d-%d %s: %s", ev.Start, ev.End, ev.ID, ev.Text())
}

// FormatStats renders decoder counters as one line.
func FormatStats(stats telemetry.Stats) string {
	return fmt.Sprintf("bytes %d, frames %d, decoded %d, short %d, checksum errors %d, discarded %d",
		stats.Bytes, stats.Frames, stats.Decoded, stats.ShortFrames, stats.ChecksumErrors, stats.Discarded)
}

// Emit implements telemetry.Emitter.
func (t *Text) Emit(_ context.Context, ev telemetry.FieldEvent) {
	if t.Summary && ev.ID != telemetry.FieldMessage {
		return
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	fmt.Fprintln(t.Writer, FormatEvent(ev))
}

// Log writes field events to glog at the given verbosity.
type Log glog.Level

// Emit implements telemetry.Emitter.
func (l Log) Emit(_ context.Context, ev telemetry.FieldEvent) {
	if glog.V(glog.Level(l)) {
		glog.Info(FormatEvent(ev))
	}
}

// HandleStats implements telemetry.StatsHandler.
func (l Log) HandleStats(_ context.Context, stats telemetry.Stats) {
	glog.Info(FormatStats(stats))
}
