package comm

import (
	"context"
	"io"

	"github.com/golang/glog"

	"github.com/robotalks/mercator.go/pkg/framework"
	"github.com/robotalks/mercator.go/pkg/msgs"
)

// TypedMsgHandler handles a received message.
type TypedMsgHandler interface {
	HandleTypedMsg(context.Context, msgs.Message, *msgs.Typed) error
}

// HandleTypedMsgFunc is func form of TypedMsgHandler.
type HandleTypedMsgFunc func(context.Context, msgs.Message, *msgs.Typed) error

// HandleTypedMsg implements TypedMsgHandler.
func (f HandleTypedMsgFunc) HandleTypedMsg(ctx context.Context, msg msgs.Message, typed *msgs.Typed) error {
	return f(ctx, msg, typed)
}

// Pipe reads packets and dispatches the decoded messages.
type Pipe struct {
	Reader  PacketReader
	Handler TypedMsgHandler
}

// NewPipe creates a Pipe with given PacketReader.
func NewPipe(r PacketReader, h TypedMsgHandler) *Pipe {
	return &Pipe{Reader: r, Handler: h}
}

// Run implements Runnable. It returns nil when the reader reaches EOF.
// A reader which is also an io.Closer is closed on cancel to unblock.
func (p *Pipe) Run(ctx context.Context) error {
	if closer, ok := p.Reader.(io.Closer); ok {
		return framework.RunWithContextCloser(ctx, closer, func() error {
			return p.readLoop(ctx)
		})
	}
	return p.readLoop(ctx)
}

func (p *Pipe) readLoop(ctx context.Context) error {
	for {
		pkt, err := p.Reader.ReadPacket()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		msg, typed, err := msgs.Decode(pkt)
		if err != nil {
			glog.V(2).Infof("skip packet: %v", err)
			continue
		}
		if h := p.Handler; h != nil {
			if err = h.HandleTypedMsg(ctx, msg, typed); err != nil {
				return err
			}
		}
	}
}

// Close implements Closer.
func (p *Pipe) Close() error {
	if closer, ok := p.Reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
