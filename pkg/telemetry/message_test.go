package telemetry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleMessage() *Message {
	return &Message{
		Length:                 FrameSize,
		MsgType:                1,
		Depth:                  15,
		WaterPressure:          12.34,
		WaterTemperature:       21.5,
		EnclosureTemperature:   30.5,
		EnclosureHumidity:      45.6,
		AirPressure:            1013.2,
		Heading:                359.9,
		HeadingToTarget:        90,
		DistanceToTarget:       12.5,
		JourneyCourse:          180,
		JourneyDistance:        45.67,
		DisplayLabel:           "ab",
		MakoSecondsOn:          42,
		MakoUserAction:         3,
		BadChecksumMsgs:        7,
		USBVoltage:             5.012,
		USBCurrent:             1.5,
		TargetCode:             "ABCD",
		SensorTiming:           [6]uint16{1, 2, 3, 4, 5, 6},
		Accelerometer:          Vector3{1, -2.5, 0.125},
		Gyroscope:              Vector3{0.5, 0.25, -1},
		LinearAcceleration:     Vector3{9.81, 0, 0},
		RotationalAcceleration: Vector3{0, 0, 3},
		GoodChecksumMsgs:       99,
		Waymarker:              5,
		WaymarkerLabel:         "W1",
		DirectionMetricLabel:   "NE",
		Flags:                  0xbeef,
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msg := sampleMessage()
	data := msg.Bytes()
	require.Len(t, data, FrameSize)
	require.Equal(t, uint16(0), Checksum(data))

	parsed, err := ParseMessage(data)
	require.NoError(t, err)
	require.True(t, parsed.Checksum.Valid)
	require.Equal(t, parsed.Checksum.Computed, parsed.Checksum.Received)
	parsed.Checksum = ChecksumResult{}
	require.Equal(t, msg, parsed)
}

func TestMessageMatchesFieldTable(t *testing.T) {
	data := buildFrame(populatedWords())
	msg, err := ParseMessage(data)
	require.NoError(t, err)
	require.Equal(t, 123.4, msg.Depth)
	require.Equal(t, "ab", msg.DisplayLabel)
	require.Equal(t, "ABCD", msg.TargetCode)
	require.Equal(t, [6]uint16{1, 2, 3, 4, 5, 6}, msg.SensorTiming)
	require.Equal(t, Vector3{1, -2.5, 0.125}, msg.Accelerometer)
	require.Equal(t, "W1", msg.WaymarkerLabel)
	require.Equal(t, "NE", msg.DirectionMetricLabel)
	require.Equal(t, uint16(0xbeef), msg.Flags)
	require.True(t, msg.Checksum.Valid)
}

func TestMessageDefaults(t *testing.T) {
	var msg Message
	w := msg.Words()
	require.Equal(t, uint16(FrameSize), w[0])
	require.Equal(t, uint16(FrameSize), w[ChecksumWord])
}

func TestMessageSaturates(t *testing.T) {
	msg := Message{Depth: -1, AirPressure: 1e9}
	w := msg.Words()
	require.Equal(t, uint16(0), w[2])
	require.Equal(t, uint16(0xffff), w[7])
}

func TestMessageWriteTo(t *testing.T) {
	msg := sampleMessage()
	var buf bytes.Buffer
	n, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(FrameSize), n)
	require.Equal(t, msg.Bytes(), buf.Bytes())
}

func TestParseMessageShort(t *testing.T) {
	_, err := ParseMessage(make([]byte, FrameSize-1))
	require.Equal(t, ErrShortFrame, err)
}
