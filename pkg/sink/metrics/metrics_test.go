package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

func feed(d *telemetry.Decoder, data []byte) {
	for n, b := range data {
		d.Feed(context.TODO(), telemetry.ByteEvent{Value: b, Start: int64(n), End: int64(n + 1)})
	}
}

func TestMetrics(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())
	dec := telemetry.NewDecoder(m)

	feed(dec, (&telemetry.Message{MsgType: 1, Depth: 4.2, USBVoltage: 5.1}).Bytes())
	require.InDelta(t, 4.2, testutil.ToFloat64(m.Depth), 1e-9)
	require.InDelta(t, 5.1, testutil.ToFloat64(m.USBVoltage), 1e-9)

	bad := (&telemetry.Message{MsgType: 1}).Bytes()
	bad[telemetry.ChecksumOffset] ^= 0xff
	feed(dec, bad)
	// a length prefix of 4 makes a short frame.
	feed(dec, []byte{4, 0, 1, 2})

	require.Equal(t, 3.0, testutil.ToFloat64(m.Frames))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ShortFrames))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Messages))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ChecksumErrors))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Fields.WithLabelValues("depth")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.Depth))
}

func TestMetricsStats(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())
	var h telemetry.StatsHandler = m
	h.HandleStats(context.TODO(), telemetry.Stats{Bytes: 228, Discarded: 6})
	require.Equal(t, 228.0, testutil.ToFloat64(m.Bytes))
	require.Equal(t, 6.0, testutil.ToFloat64(m.DiscardedBytes))
}
