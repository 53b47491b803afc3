// Package influx writes decoded telemetry to InfluxDB.
package influx

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"github.com/influxdata/influxdb-client-go/api/write"

	"github.com/robotalks/mercator.go/pkg/env"
	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// DefaultMeasurement is the measurement of telemetry points.
const DefaultMeasurement = "mercator"

// Sink writes one point per decoded message.
type Sink struct {
	WriteAPI    api.WriteAPI
	Ref         env.DecoderRef
	Measurement string

	// Now is the clock stamping points.
	Now func() time.Time
}

// New creates a Sink.
func New(writeAPI api.WriteAPI, ref env.DecoderRef) *Sink {
	return &Sink{
		WriteAPI:    writeAPI,
		Ref:         ref,
		Measurement: DefaultMeasurement,
		Now:         time.Now,
	}
}

// Connect creates a Sink with a new client. The returned func flushes
// pending points and closes the client.
func Connect(conf env.InfluxConfig, ref env.DecoderRef) (*Sink, func()) {
	client := influxdb2.NewClient(conf.URL, conf.Token)
	writeAPI := client.WriteAPI(conf.Org, conf.Bucket)
	return New(writeAPI, ref), func() {
		writeAPI.Flush()
		client.Close()
	}
}

// Emit implements telemetry.Emitter. Points are written per message.
func (s *Sink) Emit(context.Context, telemetry.FieldEvent) {}

// HandleMessage implements telemetry.MessageHandler.
func (s *Sink) HandleMessage(_ context.Context, msg *telemetry.Message, _ *telemetry.Frame) {
	s.WriteAPI.WritePoint(s.Point(msg))
}

// Point converts a message to a point.
func (s *Sink) Point(msg *telemetry.Message) *write.Point {
	tags := map[string]string{
		"decoder":  s.Ref.ID,
		"msg_type": itoa(msg.MsgType),
	}
	if target := labelTag(msg.TargetCode); target != "" {
		tags["target"] = target
	}
	if waymarker := labelTag(msg.WaymarkerLabel); waymarker != "" {
		tags["waymarker"] = waymarker
	}
	fields := map[string]interface{}{
		"depth":                 msg.Depth,
		"water_pressure":        msg.WaterPressure,
		"water_temperature":     msg.WaterTemperature,
		"enclosure_temperature": msg.EnclosureTemperature,
		"enclosure_humidity":    msg.EnclosureHumidity,
		"air_pressure":          msg.AirPressure,
		"heading":               msg.Heading,
		"heading_to_target":     msg.HeadingToTarget,
		"distance_to_target":    msg.DistanceToTarget,
		"journey_course":        msg.JourneyCourse,
		"journey_distance":      msg.JourneyDistance,
		"mako_seconds_on":       int64(msg.MakoSecondsOn),
		"mako_user_action":      int64(msg.MakoUserAction),
		"bad_checksum_msgs":     int64(msg.BadChecksumMsgs),
		"good_checksum_msgs":    int64(msg.GoodChecksumMsgs),
		"usb_voltage":           msg.USBVoltage,
		"usb_current":           msg.USBCurrent,
		"waymarker":             int64(msg.Waymarker),
		"flags":                 int64(msg.Flags),
		"checksum_ok":           msg.Checksum.Valid,
	}
	vectors := map[string]telemetry.Vector3{
		"accel":     msg.Accelerometer,
		"gyro":      msg.Gyroscope,
		"lin_accel": msg.LinearAcceleration,
		"rot_accel": msg.RotationalAcceleration,
	}
	for name, v := range vectors {
		putFloat(fields, name+"_x", v.X)
		putFloat(fields, name+"_y", v.Y)
		putFloat(fields, name+"_z", v.Z)
	}
	return influxdb2.NewPoint(s.Measurement, tags, fields, s.Now())
}

// putFloat skips NaN and infinities.
func putFloat(fields map[string]interface{}, key string, f float32) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	fields[key] = v
}

// labelTag strips the zero padding of unused label bytes.
func labelTag(label string) string {
	return strings.Trim(label, "\x00")
}

func itoa(n uint16) string {
	return strconv.Itoa(int(n))
}
