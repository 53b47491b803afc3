package telemetry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type expectedEvent struct {
	id   FieldID
	text string
}

func requireEvents(t *testing.T, frame *Frame, events []FieldEvent, expected []expectedEvent) {
	require.Len(t, events, len(expected))
	for n, ev := range events {
		require.Equalf(t, expected[n].id, ev.ID, "event[%d] id", n)
		require.Equalf(t, []string{expected[n].text}, ev.Texts, "event[%d] (%s) text", n, ev.ID)
		require.Equal(t, frame.Start, ev.Start)
		require.Equal(t, frame.End, ev.End)
	}
}

func TestDecodeDepthScenario(t *testing.T) {
	frame := &Frame{Data: buildFrame(map[int]uint16{0: 114, 1: 1, 2: 150}), Start: 10, End: 20}
	sum := uint16(114 ^ 1 ^ 150)
	requireEvents(t, frame, Decode(frame), []expectedEvent{
		{FieldLength, "Length: 114 bytes"},
		{FieldMsgType, "Message Type: 1"},
		{FieldDepth, "Depth: 15.0m"},
		{FieldWaterPressure, "Water Pressure: 0.00"},
		{FieldWaterTemperature, "Water Temp: 0.0°C"},
		{FieldEnclosureTemperature, "Enclosure Temp: 0.0°C"},
		{FieldEnclosureHumidity, "Humidity: 0.0%"},
		{FieldAirPressure, "Air Pressure: 0.0"},
		{FieldHeading, "Heading: 0.0°"},
		{FieldHeadingToTarget, "Heading to Target: 0.0°"},
		{FieldDistanceToTarget, "Distance to Target: 0.0m"},
		{FieldJourneyCourse, "Journey Course: 0.0°"},
		{FieldJourneyDistance, "Journey Distance: 0.00m"},
		{FieldDisplayLabel, "Display: \"\x00\x00\""},
		{FieldMakoSecondsOn, "Uptime: 0 min"},
		{FieldMakoUserAction, "User Action: 0"},
		{FieldMakoBadChecksumMsgs, "Bad Checksums: 0"},
		{FieldMakoUSBVoltage, "USB Voltage: 0.000V"},
		{FieldMakoUSBCurrent, "USB Current: 0.00A"},
		{FieldTargetCode, "Target: \"\x00\x00\x00\x00\""},
		{FieldSensorTiming, "Sensor Timing: [0, 0, 0, 0, 0, 0]"},
		{FieldAccelerometer, "Accel: X=0.000, Y=0.000, Z=0.000"},
		{FieldGyroscope, "Gyro: X=0.000, Y=0.000, Z=0.000"},
		{FieldLinearAcceleration, "Lin Accel: X=0.000, Y=0.000, Z=0.000"},
		{FieldRotationalAcceleration, "Rot Accel: X=0.000, Y=0.000, Z=0.000"},
		{FieldMakoGoodChecksumMsgs, "Good Checksums: 0"},
		{FieldWaymarker, "Waymarker: 0"},
		{FieldWaymarkerLabel, "Waymarker Label: \"\x00\x00\""},
		{FieldDirectionMetricLabel, "Direction Metric: \"\x00\x00\""},
		{FieldFlags, "Flags: 0x0000"},
		{FieldChecksumOK, fmt.Sprintf("Checksum OK: 0x%04X", sum)},
		{FieldMessage, "Mercator Origins V1 Message (Length: 114, Type: 1, Checksum: OK)"},
	})
}

func populatedWords() map[int]uint16 {
	return map[int]uint16{
		1: 7, 2: 1234, 3: 1234, 4: 215, 5: 305, 6: 456, 7: 10132,
		8: 3599, 9: 900, 10: 125, 11: 1800, 12: 4567,
		13: 0x6261, 14: 42, 15: 3, 16: 7, 17: 5012, 18: 150,
		19: 0x4241, 20: 0x4443,
		21: 1, 22: 2, 23: 3, 24: 4, 25: 5, 26: 6,
		// accelerometer 1.0, -2.5, 0.125
		28: 0x3f80, 30: 0xc020, 32: 0x3e00,
		// gyroscope NaN, +Inf, -Inf
		34: 0x7fc0, 36: 0x7f80, 38: 0xff80,
		// linear acceleration 1.0000001 rounds to 1.000
		39: 0x0001, 40: 0x3f80,
		51: 99, 52: 5, 53: 0x3157, 54: 0x454e, 55: 0xbeef,
	}
}

func TestDecodeAllFields(t *testing.T) {
	data := buildFrame(populatedWords())
	frame := &Frame{Data: data, Start: 1, End: 2}
	sum := Checksum(data[:ChecksumOffset])
	requireEvents(t, frame, Decode(frame), []expectedEvent{
		{FieldLength, "Length: 114 bytes"},
		{FieldMsgType, "Message Type: 7"},
		{FieldDepth, "Depth: 123.4m"},
		{FieldWaterPressure, "Water Pressure: 12.34"},
		{FieldWaterTemperature, "Water Temp: 21.5°C"},
		{FieldEnclosureTemperature, "Enclosure Temp: 30.5°C"},
		{FieldEnclosureHumidity, "Humidity: 45.6%"},
		{FieldAirPressure, "Air Pressure: 1013.2"},
		{FieldHeading, "Heading: 359.9°"},
		{FieldHeadingToTarget, "Heading to Target: 90.0°"},
		{FieldDistanceToTarget, "Distance to Target: 12.5m"},
		{FieldJourneyCourse, "Journey Course: 180.0°"},
		{FieldJourneyDistance, "Journey Distance: 45.67m"},
		{FieldDisplayLabel, `Display: "ab"`},
		{FieldMakoSecondsOn, "Uptime: 42 min"},
		{FieldMakoUserAction, "User Action: 3"},
		{FieldMakoBadChecksumMsgs, "Bad Checksums: 7"},
		{FieldMakoUSBVoltage, "USB Voltage: 5.012V"},
		{FieldMakoUSBCurrent, "USB Current: 1.50A"},
		{FieldTargetCode, `Target: "ABCD"`},
		{FieldSensorTiming, "Sensor Timing: [1, 2, 3, 4, 5, 6]"},
		{FieldAccelerometer, "Accel: X=1.000, Y=-2.500, Z=0.125"},
		{FieldGyroscope, "Gyro: X=nan, Y=inf, Z=-inf"},
		{FieldLinearAcceleration, "Lin Accel: X=1.000, Y=0.000, Z=0.000"},
		{FieldRotationalAcceleration, "Rot Accel: X=0.000, Y=0.000, Z=0.000"},
		{FieldMakoGoodChecksumMsgs, "Good Checksums: 99"},
		{FieldWaymarker, "Waymarker: 5"},
		{FieldWaymarkerLabel, `Waymarker Label: "W1"`},
		{FieldDirectionMetricLabel, `Direction Metric: "NE"`},
		{FieldFlags, "Flags: 0xBEEF"},
		{FieldChecksumOK, fmt.Sprintf("Checksum OK: 0x%04X", sum)},
		{FieldMessage, "Mercator Origins V1 Message (Length: 114, Type: 7, Checksum: OK)"},
	})
}

func TestDecodeChecksumError(t *testing.T) {
	words := populatedWords()
	words[ChecksumWord] = 0x1234
	data := buildFrame(words)
	frame := &Frame{Data: data}
	events := Decode(frame)
	require.Len(t, events, 32)

	// every field is still reported.
	for n, spec := range fieldTable {
		require.Equal(t, spec.id, events[n].ID)
	}
	require.Equal(t, FieldChecksumError, events[30].ID)
	require.Equal(t,
		fmt.Sprintf("Checksum ERROR: got 0x1234, expected 0x%04X", Checksum(data[:ChecksumOffset])),
		events[30].Text())
	require.Equal(t, FieldMessage, events[31].ID)
	require.Equal(t, "Mercator Origins V1 Message (Length: 114, Type: 7, Checksum: ERROR)", events[31].Text())
}

func TestDecodeEmitsEveryID(t *testing.T) {
	for _, valid := range []bool{true, false} {
		words := map[int]uint16{1: 1}
		if !valid {
			words[ChecksumWord] = 0xffff
		}
		events := Decode(&Frame{Data: buildFrame(words)})
		seen := make(map[FieldID]int)
		for _, ev := range events {
			seen[ev.ID]++
		}
		for id := FieldMessage; id <= FieldFlags; id++ {
			require.Equalf(t, 1, seen[id], "field %s", id)
		}
		require.Zero(t, seen[FieldChecksum])
		if valid {
			require.Equal(t, 1, seen[FieldChecksumOK])
			require.Zero(t, seen[FieldChecksumError])
		} else {
			require.Zero(t, seen[FieldChecksumOK])
			require.Equal(t, 1, seen[FieldChecksumError])
		}
		require.Equal(t, FieldMessage, events[len(events)-1].ID)
	}
}

func TestDecodeShortFrame(t *testing.T) {
	require.Nil(t, Decode(&Frame{}))
	require.Nil(t, Decode(&Frame{Data: []byte{4, 0, 1, 2}}))
	require.Nil(t, Decode(&Frame{Data: buildFrame(nil)[:FrameSize-1]}))
}

func TestDecodeIgnoresExcessBytes(t *testing.T) {
	data := buildFrame(map[int]uint16{0: 120, 1: 2})
	long := append(append([]byte(nil), data...), 1, 2, 3, 4, 5, 6)
	expected := Decode(&Frame{Data: data})
	require.Equal(t, expected, Decode(&Frame{Data: long}))
	require.Equal(t, "Length: 120 bytes", expected[0].Text())
}

func TestFieldID(t *testing.T) {
	require.Equal(t, 34, FieldCount)
	require.Equal(t, FieldID(32), FieldChecksumOK)
	require.Equal(t, FieldID(33), FieldChecksumError)
	require.Equal(t, "water_temperature", FieldWaterTemperature.String())
	require.Equal(t, "Water temperature", FieldWaterTemperature.Description())
	require.Equal(t, "field(34)", FieldID(34).String())
	require.False(t, FieldID(-1).IsValid())
	id, ok := FieldIDByName("checksum_error")
	require.True(t, ok)
	require.Equal(t, FieldChecksumError, id)
	_, ok = FieldIDByName("nope")
	require.False(t, ok)
}
