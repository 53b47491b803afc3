package mqtt

import (
	"context"
	"io"

	"github.com/robotalks/mercator.go/pkg/env"
)

// ReadWriter carries packets on the telemetry channel. A publisher writes
// to the channel of its own decoder, a monitor reads the channels of all
// decoders matching Ref.
type ReadWriter struct {
	Queue   *Queue
	Ref     env.DecoderRef
	Monitor bool

	packetCh chan []byte
	doneCh   chan struct{}
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		doneCh:   make(chan struct{}),
	}
}

// ForDecoder publishes to the telemetry channel of the decoder.
func (p *ReadWriter) ForDecoder(ref env.DecoderRef) *ReadWriter {
	p.Ref, p.Monitor = ref, false
	return p
}

// ForMonitor receives the telemetry channels of decoders matching ref.
// An empty ref type or ID matches any.
func (p *ReadWriter) ForMonitor(ref env.DecoderRef) *ReadWriter {
	p.Ref, p.Monitor = ref, true
	return p
}

// ReadPacket implements PacketReader. It returns io.EOF after Run stops.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.doneCh:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Publish(p.Ref, Telemetry, pkt)
	token.Wait()
	return token.Error()
}

// Run implements Runnable. A monitor delivers received packets to
// ReadPacket until ctx is canceled.
func (p *ReadWriter) Run(ctx context.Context) error {
	defer close(p.doneCh)
	if !p.Monitor {
		<-ctx.Done()
		return ctx.Err()
	}
	sub := p.Queue.Subscribe(p.Ref, Telemetry, func(_ env.DecoderRef, payload []byte) {
		select {
		case p.packetCh <- payload:
		case <-p.doneCh:
		}
	})
	defer sub.Close()
	<-ctx.Done()
	return ctx.Err()
}
