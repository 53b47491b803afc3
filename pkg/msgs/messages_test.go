package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

func sampleMessage() *telemetry.Message {
	msg := &telemetry.Message{
		Length:               telemetry.FrameSize,
		MsgType:              1,
		Depth:                12.3,
		WaterTemperature:     14.5,
		DisplayLabel:         "AB",
		TargetCode:           "WP01",
		Accelerometer:        telemetry.Vector3{X: 1, Y: -2, Z: 0.5},
		Waymarker:            3,
		DirectionMetricLabel: "NE",
		Flags:                0x0005,
	}
	copy(msg.SensorTiming[:], []uint16{1, 2, 3, 4, 5, 6})
	parsed, err := telemetry.ParseMessage(msg.Bytes())
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestTypedTelemetry(t *testing.T) {
	msg := sampleMessage()
	frame := &telemetry.Frame{Data: msg.Bytes(), Start: 10, End: 123}
	typed, err := TypedFrom(TelemetryFrom(msg, frame))
	require.NoError(t, err)
	require.Equal(t, TelemetryTypeID, typed.TypeId)
	require.True(t, typed.IsEvent())
	typed.Sequence = 7

	data, err := typed.Encode()
	require.NoError(t, err)
	decoded, envelope, err := Decode(data)
	require.NoError(t, err)
	require.EqualValues(t, 7, envelope.Sequence)

	tm, ok := decoded.(*Telemetry)
	require.True(t, ok)
	require.EqualValues(t, 10, tm.Start)
	require.EqualValues(t, 123, tm.End)
	require.True(t, tm.ChecksumOk)
	require.Equal(t, "WP01", tm.TargetCode)
	require.Equal(t, []uint32{1, 2, 3, 4, 5, 6}, tm.SensorTiming)
	require.Equal(t, msg, tm.Message())
}

func TestTypedFieldEvent(t *testing.T) {
	ev := telemetry.FieldEvent{
		Start: 1,
		End:   2,
		ID:    telemetry.FieldDepth,
		Texts: []string{"Depth: 1.5m", "Depth", "D"},
	}
	typed, err := TypedFrom(FieldEventFrom(ev))
	require.NoError(t, err)
	data, err := typed.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(data)
	require.NoError(t, err)
	fe, ok := decoded.(*FieldEvent)
	require.True(t, ok)
	require.Equal(t, "depth", fe.Name)
	require.Equal(t, ev, fe.FieldEvent())
}

func TestTypedErrors(t *testing.T) {
	_, err := TypedFrom(nil)
	require.Equal(t, ErrNilMessage, err)

	_, err = Typed{TypeId: 0x1234}.Decode()
	require.Error(t, err)
	require.IsType(t, &ErrUnknownType{}, err)

	_, err = DecodeTyped([]byte{0xff})
	require.Error(t, err)
}

func TestStatsFrom(t *testing.T) {
	s := StatsFrom(telemetry.Stats{Bytes: 228, Frames: 2, Decoded: 2, ChecksumErrors: 1})
	typed, err := TypedFrom(s)
	require.NoError(t, err)
	msg, err := typed.Decode()
	require.NoError(t, err)
	require.Equal(t, s, msg)
	require.Equal(t, telemetry.Stats{Bytes: 228, Frames: 2, Decoded: 2, ChecksumErrors: 1}, msg.(*Stats).Stats())
}
