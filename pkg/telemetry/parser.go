package telemetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldEvent is one decoded and rendered field.
type FieldEvent struct {
	Start int64
	End   int64
	ID    FieldID
	Texts []string
}

// Text returns the primary rendering.
func (e FieldEvent) Text() string {
	if len(e.Texts) == 0 {
		return ""
	}
	return e.Texts[0]
}

// fieldSpec maps a run of words to a rendered field.
type fieldSpec struct {
	id     FieldID
	offset int
	count  int
	render func(w []uint16) string
}

// fieldTable lists fields in emission order. Checksum and summary are
// rendered separately as they depend on the whole frame.
var fieldTable = []fieldSpec{
	{FieldLength, 0, 1, raw("Length: %d bytes")},
	{FieldMsgType, 1, 1, raw("Message Type: %d")},
	{FieldDepth, 2, 1, scaled("Depth: %.1fm", 10)},
	{FieldWaterPressure, 3, 1, scaled("Water Pressure: %.2f", 100)},
	{FieldWaterTemperature, 4, 1, scaled("Water Temp: %.1f°C", 10)},
	{FieldEnclosureTemperature, 5, 1, scaled("Enclosure Temp: %.1f°C", 10)},
	{FieldEnclosureHumidity, 6, 1, scaled("Humidity: %.1f%%", 10)},
	{FieldAirPressure, 7, 1, scaled("Air Pressure: %.1f", 10)},
	{FieldHeading, 8, 1, scaled("Heading: %.1f°", 10)},
	{FieldHeadingToTarget, 9, 1, scaled("Heading to Target: %.1f°", 10)},
	{FieldDistanceToTarget, 10, 1, scaled("Distance to Target: %.1fm", 10)},
	{FieldJourneyCourse, 11, 1, scaled("Journey Course: %.1f°", 10)},
	{FieldJourneyDistance, 12, 1, scaled("Journey Distance: %.2fm", 100)},
	{FieldDisplayLabel, 13, 1, label("Display")},
	{FieldMakoSecondsOn, 14, 1, raw("Uptime: %d min")},
	{FieldMakoUserAction, 15, 1, raw("User Action: %d")},
	{FieldMakoBadChecksumMsgs, 16, 1, raw("Bad Checksums: %d")},
	{FieldMakoUSBVoltage, 17, 1, scaled("USB Voltage: %.3fV", 1000)},
	{FieldMakoUSBCurrent, 18, 1, scaled("USB Current: %.2fA", 100)},
	{FieldTargetCode, 19, 2, label("Target")},
	{FieldSensorTiming, 21, 6, renderTimings},
	{FieldAccelerometer, 27, 6, vector("Accel")},
	{FieldGyroscope, 33, 6, vector("Gyro")},
	{FieldLinearAcceleration, 39, 6, vector("Lin Accel")},
	{FieldRotationalAcceleration, 45, 6, vector("Rot Accel")},
	{FieldMakoGoodChecksumMsgs, 51, 1, raw("Good Checksums: %d")},
	{FieldWaymarker, 52, 1, raw("Waymarker: %d")},
	{FieldWaymarkerLabel, 53, 1, label("Waymarker Label")},
	{FieldDirectionMetricLabel, 54, 1, label("Direction Metric")},
	{FieldFlags, 55, 1, raw("Flags: 0x%04X")},
}

func raw(format string) func([]uint16) string {
	return func(w []uint16) string {
		return fmt.Sprintf(format, w[0])
	}
}

func scaled(format string, div float64) func([]uint16) string {
	return func(w []uint16) string {
		return fmt.Sprintf(format, float64(w[0])/div)
	}
}

func label(name string) func([]uint16) string {
	return func(w []uint16) string {
		return name + `: "` + DecodeLabel(w...) + `"`
	}
}

func vector(name string) func([]uint16) string {
	return func(w []uint16) string {
		return fmt.Sprintf("%s: X=%s, Y=%s, Z=%s", name,
			formatFloat(DecodeFloat(w[0], w[1])),
			formatFloat(DecodeFloat(w[2], w[3])),
			formatFloat(DecodeFloat(w[4], w[5])))
	}
}

func renderTimings(w []uint16) string {
	items := make([]string, len(w))
	for n, v := range w {
		items[n] = strconv.Itoa(int(v))
	}
	return "Sensor Timing: [" + strings.Join(items, ", ") + "]"
}

// formatFloat renders with 3 decimals, non-finite values as nan, inf, -inf.
func formatFloat(f float32) string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Decode interprets a complete frame and returns its field events: fields
// 1-30 in table order, then the checksum outcome, then the summary.
//
// A frame shorter than FrameSize produces no events. Only the first
// FrameSize bytes are decoded, regardless of the length prefix. A checksum
// mismatch doesn't stop any field from being reported.
func Decode(frame *Frame) []FieldEvent {
	words := frame.Words()
	if words == nil {
		return nil
	}
	events := make([]FieldEvent, 0, len(fieldTable)+2)
	put := func(id FieldID, text string) {
		events = append(events, FieldEvent{Start: frame.Start, End: frame.End, ID: id, Texts: []string{text}})
	}
	for _, spec := range fieldTable {
		put(spec.id, spec.render(words[spec.offset:spec.offset+spec.count]))
	}

	sum := ValidateChecksum(frame.Data)
	status := "OK"
	if sum.Valid {
		put(FieldChecksumOK, fmt.Sprintf("Checksum OK: 0x%04X", sum.Received))
	} else {
		status = "ERROR"
		put(FieldChecksumError, fmt.Sprintf("Checksum ERROR: got 0x%04X, expected 0x%04X", sum.Received, sum.Computed))
	}
	put(FieldMessage, fmt.Sprintf("Mercator Origins V1 Message (Length: %d, Type: %d, Checksum: %s)",
		words[0], words[1], status))
	return events
}
