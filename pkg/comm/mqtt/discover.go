package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/mercator.go/pkg/env"
)

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// Discover enumerates decoders announced on the broker. It collects
// retained metadata until timeout elapses.
func Discover(ctx context.Context, brokerURL string, timeout time.Duration) (res []env.DecoderInfo, err error) {
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	if err = q.ConnectAndWait(); err != nil {
		return nil, err
	}
	defer q.Close()
	resCh := make(chan env.DecoderInfo, 1)
	sub := q.Subscribe(env.DecoderRef{}, Meta, func(ref env.DecoderRef, payload []byte) {
		if len(payload) == 0 {
			return
		}
		info := env.DecoderInfo{Ref: ref}
		if err := json.Unmarshal(payload, &info.Meta); err != nil {
			glog.Warningf("invalid meta of %s: %v", ref.Name(), err)
		}
		select {
		case resCh <- info:
		case <-time.After(time.Second):
		}
	})
	defer sub.Close()

	if timeout == 0 {
		timeout = DefaultDiscoverTimeout
	}
	expired := time.After(timeout)
	for {
		select {
		case info := <-resCh:
			res = append(res, info)
		case <-expired:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}
