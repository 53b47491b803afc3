package mqtt

import (
	"context"
	"encoding/json"

	"github.com/robotalks/mercator.go/pkg/env"
)

// Announcer keeps the retained metadata of a decoder on the broker.
// The metadata is cleared on exit, or by the will if the decoder dies.
type Announcer struct {
	Queue *Queue
	Info  env.DecoderInfo

	metaJSON []byte
}

// NewAnnouncer creates an Announcer with its own broker connection.
func NewAnnouncer(brokerURL string, info env.DecoderInfo) (*Announcer, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+TopicOf(info.Ref, Meta.Suffix), nil, Meta.QoS, Meta.Retain)
	if opts.ClientID == "" {
		opts.SetClientID("mercator:" + info.Ref.Name())
	}
	a := &Announcer{
		Queue:    NewQueue(opts, topicPrefix),
		Info:     info,
		metaJSON: meta,
	}
	a.Queue.OnConnect = func(*Queue) { a.announce() }
	return a, nil
}

// Publisher creates a ReadWriter publishing telemetry packets through
// the announcer's connection.
func (a *Announcer) Publisher() *ReadWriter {
	return NewPacketReadWriter(a.Queue).ForDecoder(a.Info.Ref)
}

// Run implements Runnable.
func (a *Announcer) Run(ctx context.Context) error {
	if err := a.Queue.ConnectAndWait(); err != nil {
		return err
	}
	<-ctx.Done()
	a.Queue.Publish(a.Info.Ref, Meta, nil).Wait()
	a.Queue.Close()
	return nil
}

func (a *Announcer) announce() {
	a.Queue.Publish(a.Info.Ref, Meta, a.metaJSON)
}
