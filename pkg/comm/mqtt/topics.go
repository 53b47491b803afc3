package mqtt

import (
	"strings"

	"github.com/robotalks/mercator.go/pkg/env"
)

// Topic suffixes under <type>/<id>/.
const (
	TelemetryTopic = "telemetry"
	MetaTopic      = "meta"
)

// TopicOf builds the topic of a decoder, e.g. mercator/lemon/telemetry.
func TopicOf(ref env.DecoderRef, suffix string) string {
	return ref.Name() + "/" + suffix
}

// Filter builds a subscription filter of a channel. An empty ref type or
// ID matches any.
func Filter(ref env.DecoderRef, suffix string) string {
	if ref.Type == "" {
		ref.Type = "+"
	}
	if ref.ID == "" {
		ref.ID = "+"
	}
	return TopicOf(ref, suffix)
}

// RefFromTopic parses the decoder ref from a topic built by TopicOf.
func RefFromTopic(topic string) (ref env.DecoderRef, suffix string, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 3 {
		return
	}
	ref = env.DecoderRef{Type: items[0], ID: items[1]}
	return ref, items[2], ref.IsValid()
}
