package comm

import (
	"context"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/mercator.go/pkg/msgs"
	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// Publisher encodes decoded telemetry as Typed packets.
// It implements telemetry.Emitter, telemetry.MessageHandler and
// telemetry.StatsHandler.
type Publisher struct {
	Writer PacketWriter
	// FieldEvents publishes every field event, not only whole messages.
	FieldEvents bool

	seq  uint32
	lock sync.Mutex
}

// NewPublisher creates a Publisher.
func NewPublisher(w PacketWriter) *Publisher {
	return &Publisher{Writer: w}
}

// Emit implements telemetry.Emitter.
func (p *Publisher) Emit(ctx context.Context, ev telemetry.FieldEvent) {
	if !p.FieldEvents {
		return
	}
	p.publishOrLog(msgs.FieldEventFrom(ev))
}

// HandleMessage implements telemetry.MessageHandler.
func (p *Publisher) HandleMessage(ctx context.Context, msg *telemetry.Message, frame *telemetry.Frame) {
	p.publishOrLog(msgs.TelemetryFrom(msg, frame))
}

// HandleStats implements telemetry.StatsHandler.
func (p *Publisher) HandleStats(ctx context.Context, stats telemetry.Stats) {
	p.publishOrLog(msgs.StatsFrom(stats))
}

// PublishStats publishes decoder counters.
func (p *Publisher) PublishStats(stats telemetry.Stats) error {
	return p.Publish(msgs.StatsFrom(stats))
}

// Publish sends a message with the next sequence number.
func (p *Publisher) Publish(msg msgs.Message) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.seq++
	typed.Sequence = p.seq
	pkt, err := typed.Encode()
	if err != nil {
		return err
	}
	return p.Writer.WritePacket(pkt)
}

func (p *Publisher) publishOrLog(msg msgs.Message) {
	if err := p.Publish(msg); err != nil {
		glog.Errorf("publish %x error: %v", msg.TypeID(), err)
	}
}
