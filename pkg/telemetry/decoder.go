package telemetry

import (
	"context"

	"github.com/golang/glog"
)

// Stats counts what a Decoder has seen.
type Stats struct {
	Bytes          uint64
	Frames         uint64
	Decoded        uint64
	ShortFrames    uint64
	ChecksumErrors uint64
	Discarded      uint64
}

// Decoder drives an Assembler and decodes completed frames to an Emitter.
// A Decoder is not safe for concurrent use, each byte stream needs its own.
type Decoder struct {
	Emitter Emitter

	assembler Assembler
	stats     Stats
}

// NewDecoder creates a Decoder.
func NewDecoder(emitter Emitter) *Decoder {
	return &Decoder{Emitter: emitter}
}

// WithMaxLength bounds accepted length prefixes, see Assembler.MaxLength.
func (d *Decoder) WithMaxLength(max int) *Decoder {
	d.assembler.MaxLength = max
	return d
}

// Stats gets a snapshot of the counters.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// State gets the state of the in-progress frame.
func (d *Decoder) State() AssemblerState {
	return d.assembler.State()
}

// Reset drops the in-progress frame. Counters are kept.
func (d *Decoder) Reset() {
	d.assembler.Reset()
}

// Feed consumes one byte event and decodes the frame it completes, if any.
func (d *Decoder) Feed(ctx context.Context, ev ByteEvent) {
	d.stats.Bytes++
	r := d.assembler.Feed(ev)
	if r.Err != nil {
		d.stats.Discarded += uint64(r.Discarded)
		glog.Warningf("discarded %d bytes: %v", r.Discarded, r.Err)
	}
	if r.Frame != nil {
		d.DecodeFrame(ctx, r.Frame)
	}
}

// DecodeFrame decodes a complete frame and emits its events. It's used by
// Feed and to replay recorded frames.
func (d *Decoder) DecodeFrame(ctx context.Context, frame *Frame) {
	d.stats.Frames++
	if h, ok := d.Emitter.(FrameHandler); ok {
		h.HandleFrame(ctx, frame)
	}
	events := Decode(frame)
	if events == nil {
		d.stats.ShortFrames++
		if glog.V(2) {
			glog.Infof("dropped short frame: %d bytes", len(frame.Data))
		}
		return
	}
	d.stats.Decoded++
	for _, ev := range events {
		if ev.ID == FieldChecksumError {
			d.stats.ChecksumErrors++
		}
		if d.Emitter != nil {
			d.Emitter.Emit(ctx, ev)
		}
	}
	if h, ok := d.Emitter.(MessageHandler); ok {
		msg, err := ParseMessage(frame.Data)
		if err != nil {
			return
		}
		h.HandleMessage(ctx, msg, frame)
	}
}
