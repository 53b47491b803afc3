package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingEmitter struct {
	EventCollector
	messages []*Message
	frames   []*Frame
}

func (r *recordingEmitter) HandleMessage(_ context.Context, msg *Message, frame *Frame) {
	r.messages = append(r.messages, msg)
}

func (r *recordingEmitter) HandleFrame(_ context.Context, frame *Frame) {
	r.frames = append(r.frames, frame)
}

func feedDecoder(d *Decoder, events []ByteEvent) {
	for _, ev := range events {
		d.Feed(context.TODO(), ev)
	}
}

func TestDecoderOneByteAtATime(t *testing.T) {
	data := buildFrame(map[int]uint16{0: 114, 1: 1, 2: 150})
	events := byteEvents(data, 0)
	var c EventCollector
	d := NewDecoder(&c)

	feedDecoder(d, events[:FrameSize-1])
	require.Empty(t, c.Events)
	require.Equal(t, AssemblerBody, d.State())

	d.Feed(context.TODO(), events[FrameSize-1])
	require.Len(t, c.Events, 32)
	require.Equal(t, AssemblerIdle, d.State())

	var depth, checksum *FieldEvent
	for n := range c.Events {
		switch c.Events[n].ID {
		case FieldDepth:
			depth = &c.Events[n]
		case FieldChecksumOK:
			checksum = &c.Events[n]
		}
	}
	require.NotNil(t, depth)
	require.Equal(t, "Depth: 15.0m", depth.Text())
	require.NotNil(t, checksum)
	require.Equal(t, "Checksum OK: 0x00E5", checksum.Text())

	summary := c.Events[len(c.Events)-1]
	require.Equal(t, FieldMessage, summary.ID)
	require.Equal(t, events[0].Start, summary.Start)
	require.Equal(t, events[FrameSize-1].End, summary.End)

	require.Equal(t, Stats{Bytes: FrameSize, Frames: 1, Decoded: 1}, d.Stats())
}

func TestDecoderIdempotent(t *testing.T) {
	events := byteEvents(buildFrame(populatedWords()), 0)
	var c EventCollector
	d := NewDecoder(&c)
	feedDecoder(d, events)
	first := c.Events

	c.Reset()
	d.Reset()
	feedDecoder(d, events)
	require.Equal(t, first, c.Events)
}

func TestDecoderHandlers(t *testing.T) {
	good := buildFrame(populatedWords())
	bad := buildFrame(map[int]uint16{1: 2, ChecksumWord: 1})
	short := []byte{6, 0, 1, 2, 3, 4}
	stream := append(append(append([]byte(nil), good...), short...), bad...)

	var rec recordingEmitter
	d := NewDecoder(Emitters{&rec})
	feedDecoder(d, byteEvents(stream, 0))

	require.Len(t, rec.frames, 3)
	require.Equal(t, short, rec.frames[1].Data)
	require.Len(t, rec.messages, 2)
	require.Equal(t, uint16(7), rec.messages[0].MsgType)
	require.True(t, rec.messages[0].Checksum.Valid)
	require.False(t, rec.messages[1].Checksum.Valid)
	require.Len(t, rec.Events, 64)
	require.Equal(t, Stats{
		Bytes:          uint64(len(stream)),
		Frames:         3,
		Decoded:        2,
		ShortFrames:    1,
		ChecksumErrors: 1,
	}, d.Stats())
}

func TestDecoderMaxLength(t *testing.T) {
	var c EventCollector
	d := NewDecoder(&c).WithMaxLength(FrameSize)
	stream := append([]byte{0xff, 0xff}, buildFrame(nil)...)
	feedDecoder(d, byteEvents(stream, 0))
	require.Len(t, c.Events, 32)
	require.Equal(t, uint64(2), d.Stats().Discarded)
}

func TestDecoderNilEmitter(t *testing.T) {
	d := NewDecoder(nil)
	feedDecoder(d, byteEvents(buildFrame(nil), 0))
	require.Equal(t, uint64(1), d.Stats().Decoded)
}

func TestEmitters(t *testing.T) {
	var a, b EventCollector
	var calls int
	e := Emitters{&a, &b, EmitFunc(func(context.Context, FieldEvent) { calls++ })}
	ev := FieldEvent{ID: FieldDepth, Texts: []string{"Depth: 1.0m"}}
	e.Emit(context.TODO(), ev)
	require.Equal(t, []FieldEvent{ev}, a.Events)
	require.Equal(t, []FieldEvent{ev}, b.Events)
	require.Equal(t, 1, calls)
}
