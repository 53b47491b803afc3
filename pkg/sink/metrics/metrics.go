// Package metrics exports decoded telemetry as Prometheus metrics.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// Metrics contains all Prometheus metrics of a decoder.
type Metrics struct {
	// Frame metrics
	Frames         prometheus.Counter
	ShortFrames    prometheus.Counter
	Messages       prometheus.Counter
	ChecksumErrors prometheus.Counter
	Fields         *prometheus.CounterVec

	// Decoder counters
	Bytes          prometheus.Gauge
	DiscardedBytes prometheus.Gauge

	// Latest readings
	Depth                prometheus.Gauge
	WaterTemperature     prometheus.Gauge
	EnclosureTemperature prometheus.Gauge
	EnclosureHumidity    prometheus.Gauge
	Heading              prometheus.Gauge
	DistanceToTarget     prometheus.Gauge
	USBVoltage           prometheus.Gauge
	USBCurrent           prometheus.Gauge
	MakoBadChecksums     prometheus.Gauge
	MakoGoodChecksums    prometheus.Gauge
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates and registers all metrics with reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	gauge := func(name, help string) prometheus.Gauge {
		return f.NewGauge(prometheus.GaugeOpts{Name: "mercator_" + name, Help: help})
	}
	return &Metrics{
		Frames: f.NewCounter(prometheus.CounterOpts{
			Name: "mercator_frames_total",
			Help: "Total number of frames assembled",
		}),
		ShortFrames: f.NewCounter(prometheus.CounterOpts{
			Name: "mercator_short_frames_total",
			Help: "Total number of frames too short to decode",
		}),
		Messages: f.NewCounter(prometheus.CounterOpts{
			Name: "mercator_messages_total",
			Help: "Total number of messages decoded",
		}),
		ChecksumErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "mercator_checksum_errors_total",
			Help: "Total number of messages with a checksum mismatch",
		}),
		Fields: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mercator_field_events_total",
			Help: "Total number of field events emitted",
		}, []string{"field"}),

		Bytes:          gauge("decoder_bytes", "Bytes fed to the decoder"),
		DiscardedBytes: gauge("decoder_discarded_bytes", "Bytes discarded by the length bound"),

		Depth:                gauge("depth_meters", "Latest depth"),
		WaterTemperature:     gauge("water_temperature_celsius", "Latest water temperature"),
		EnclosureTemperature: gauge("enclosure_temperature_celsius", "Latest enclosure temperature"),
		EnclosureHumidity:    gauge("enclosure_humidity_percent", "Latest enclosure humidity"),
		Heading:              gauge("heading_degrees", "Latest heading"),
		DistanceToTarget:     gauge("distance_to_target_meters", "Latest distance to target"),
		USBVoltage:           gauge("usb_voltage_volts", "Latest USB voltage of the Mako"),
		USBCurrent:           gauge("usb_current_amperes", "Latest USB current of the Mako"),
		MakoBadChecksums:     gauge("mako_bad_checksum_msgs", "Messages the Mako received with a bad checksum"),
		MakoGoodChecksums:    gauge("mako_good_checksum_msgs", "Messages the Mako received with a good checksum"),
	}
}

// Emit implements telemetry.Emitter.
func (m *Metrics) Emit(_ context.Context, ev telemetry.FieldEvent) {
	m.Fields.WithLabelValues(ev.ID.String()).Inc()
	if ev.ID == telemetry.FieldChecksumError {
		m.ChecksumErrors.Inc()
	}
}

// HandleFrame implements telemetry.FrameHandler.
func (m *Metrics) HandleFrame(_ context.Context, frame *telemetry.Frame) {
	m.Frames.Inc()
	if len(frame.Data) < telemetry.FrameSize {
		m.ShortFrames.Inc()
	}
}

// HandleMessage implements telemetry.MessageHandler.
func (m *Metrics) HandleMessage(_ context.Context, msg *telemetry.Message, _ *telemetry.Frame) {
	m.Messages.Inc()
	m.Depth.Set(msg.Depth)
	m.WaterTemperature.Set(msg.WaterTemperature)
	m.EnclosureTemperature.Set(msg.EnclosureTemperature)
	m.EnclosureHumidity.Set(msg.EnclosureHumidity)
	m.Heading.Set(msg.Heading)
	m.DistanceToTarget.Set(msg.DistanceToTarget)
	m.USBVoltage.Set(msg.USBVoltage)
	m.USBCurrent.Set(msg.USBCurrent)
	m.MakoBadChecksums.Set(float64(msg.BadChecksumMsgs))
	m.MakoGoodChecksums.Set(float64(msg.GoodChecksumMsgs))
}

// HandleStats implements telemetry.StatsHandler.
func (m *Metrics) HandleStats(_ context.Context, stats telemetry.Stats) {
	m.Bytes.Set(float64(stats.Bytes))
	m.DiscardedBytes.Set(float64(stats.Discarded))
}
