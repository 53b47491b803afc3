package telemetry

import "context"

// Emitter receives decoded field events.
type Emitter interface {
	Emit(context.Context, FieldEvent)
}

// EmitFunc is func type of Emitter.
type EmitFunc func(context.Context, FieldEvent)

// Emit implements Emitter.
func (f EmitFunc) Emit(ctx context.Context, ev FieldEvent) {
	f(ctx, ev)
}

// MessageHandler is optionally implemented by an Emitter which also wants
// the typed message, after all field events of the frame were emitted.
type MessageHandler interface {
	HandleMessage(context.Context, *Message, *Frame)
}

// FrameHandler is optionally implemented by an Emitter which wants every
// completed frame before it's decoded, including short ones.
type FrameHandler interface {
	HandleFrame(context.Context, *Frame)
}

// StatsHandler receives decoder counters. Readers call it periodically on
// the goroutine feeding the decoder.
type StatsHandler interface {
	HandleStats(context.Context, Stats)
}

// StatsFunc is func type of StatsHandler.
type StatsFunc func(context.Context, Stats)

// HandleStats implements StatsHandler.
func (f StatsFunc) HandleStats(ctx context.Context, stats Stats) {
	f(ctx, stats)
}

// Emitters fans out to multiple emitters in order.
type Emitters []Emitter

// Emit implements Emitter.
func (e Emitters) Emit(ctx context.Context, ev FieldEvent) {
	for _, em := range e {
		em.Emit(ctx, ev)
	}
}

// HandleMessage implements MessageHandler.
func (e Emitters) HandleMessage(ctx context.Context, msg *Message, frame *Frame) {
	for _, em := range e {
		if h, ok := em.(MessageHandler); ok {
			h.HandleMessage(ctx, msg, frame)
		}
	}
}

// HandleFrame implements FrameHandler.
func (e Emitters) HandleFrame(ctx context.Context, frame *Frame) {
	for _, em := range e {
		if h, ok := em.(FrameHandler); ok {
			h.HandleFrame(ctx, frame)
		}
	}
}

// HandleStats implements StatsHandler.
func (e Emitters) HandleStats(ctx context.Context, stats Stats) {
	for _, em := range e {
		if h, ok := em.(StatsHandler); ok {
			h.HandleStats(ctx, stats)
		}
	}
}

// EventCollector collects events in memory.
type EventCollector struct {
	Events []FieldEvent
}

// Emit implements Emitter.
func (c *EventCollector) Emit(_ context.Context, ev FieldEvent) {
	c.Events = append(c.Events, ev)
}

// Reset drops collected events.
func (c *EventCollector) Reset() {
	c.Events = nil
}
