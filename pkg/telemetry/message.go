package telemetry

import (
	"encoding/binary"
	"io"
	"math"
)

// Vector3 is a float triple from the IMU.
type Vector3 struct {
	X, Y, Z float32
}

// Message is the typed form of one frame.
type Message struct {
	Length                 uint16
	MsgType                uint16
	Depth                  float64 // m
	WaterPressure          float64
	WaterTemperature       float64 // °C
	EnclosureTemperature   float64 // °C
	EnclosureHumidity      float64 // %
	AirPressure            float64
	Heading                float64 // degrees
	HeadingToTarget        float64 // degrees
	DistanceToTarget       float64 // m
	JourneyCourse          float64 // degrees
	JourneyDistance        float64 // m
	DisplayLabel           string
	MakoSecondsOn          uint16 // shown in minutes by the Mako
	MakoUserAction         uint16
	BadChecksumMsgs        uint16
	USBVoltage             float64 // V
	USBCurrent             float64 // A
	TargetCode             string
	SensorTiming           [6]uint16
	Accelerometer          Vector3
	Gyroscope              Vector3
	LinearAcceleration     Vector3
	RotationalAcceleration Vector3
	GoodChecksumMsgs       uint16
	Waymarker              uint16
	WaymarkerLabel         string
	DirectionMetricLabel   string
	Flags                  uint16

	// Checksum is filled by ParseMessage and ignored by Bytes.
	Checksum ChecksumResult
}

// ParseMessage decodes the first FrameSize bytes of data.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < FrameSize {
		return nil, ErrShortFrame
	}
	w := DecodeWords(data[:FrameSize])
	m := &Message{
		Length:                 w[0],
		MsgType:                w[1],
		Depth:                  float64(w[2]) / 10,
		WaterPressure:          float64(w[3]) / 100,
		WaterTemperature:       float64(w[4]) / 10,
		EnclosureTemperature:   float64(w[5]) / 10,
		EnclosureHumidity:      float64(w[6]) / 10,
		AirPressure:            float64(w[7]) / 10,
		Heading:                float64(w[8]) / 10,
		HeadingToTarget:        float64(w[9]) / 10,
		DistanceToTarget:       float64(w[10]) / 10,
		JourneyCourse:          float64(w[11]) / 10,
		JourneyDistance:        float64(w[12]) / 100,
		DisplayLabel:           DecodeLabel(w[13]),
		MakoSecondsOn:          w[14],
		MakoUserAction:         w[15],
		BadChecksumMsgs:        w[16],
		USBVoltage:             float64(w[17]) / 1000,
		USBCurrent:             float64(w[18]) / 100,
		TargetCode:             DecodeLabel(w[19], w[20]),
		Accelerometer:          decodeVector(w[27:33]),
		Gyroscope:              decodeVector(w[33:39]),
		LinearAcceleration:     decodeVector(w[39:45]),
		RotationalAcceleration: decodeVector(w[45:51]),
		GoodChecksumMsgs:       w[51],
		Waymarker:              w[52],
		WaymarkerLabel:         DecodeLabel(w[53]),
		DirectionMetricLabel:   DecodeLabel(w[54]),
		Flags:                  w[55],
		Checksum:               ValidateChecksum(data),
	}
	copy(m.SensorTiming[:], w[21:27])
	return m, nil
}

func decodeVector(w []uint16) Vector3 {
	return Vector3{
		X: DecodeFloat(w[0], w[1]),
		Y: DecodeFloat(w[2], w[3]),
		Z: DecodeFloat(w[4], w[5]),
	}
}

func encodeVector(w []uint16, v Vector3) {
	w[0], w[1] = EncodeFloat(v.X)
	w[2], w[3] = EncodeFloat(v.Y)
	w[4], w[5] = EncodeFloat(v.Z)
}

// toWord scales a value back to its wire form, saturating at the
// boundaries of uint16.
func toWord(v, mul float64) uint16 {
	r := math.Round(v * mul)
	switch {
	case math.IsNaN(r) || r <= 0:
		return 0
	case r >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(r)
}

// Words encodes the message into 57 words with the checksum filled.
// A zero Length is encoded as FrameSize.
func (m *Message) Words() []uint16 {
	w := make([]uint16, WordCount)
	if w[0] = m.Length; w[0] == 0 {
		w[0] = FrameSize
	}
	w[1] = m.MsgType
	w[2] = toWord(m.Depth, 10)
	w[3] = toWord(m.WaterPressure, 100)
	w[4] = toWord(m.WaterTemperature, 10)
	w[5] = toWord(m.EnclosureTemperature, 10)
	w[6] = toWord(m.EnclosureHumidity, 10)
	w[7] = toWord(m.AirPressure, 10)
	w[8] = toWord(m.Heading, 10)
	w[9] = toWord(m.HeadingToTarget, 10)
	w[10] = toWord(m.DistanceToTarget, 10)
	w[11] = toWord(m.JourneyCourse, 10)
	w[12] = toWord(m.JourneyDistance, 100)
	copy(w[13:14], EncodeLabel(m.DisplayLabel, 1))
	w[14] = m.MakoSecondsOn
	w[15] = m.MakoUserAction
	w[16] = m.BadChecksumMsgs
	w[17] = toWord(m.USBVoltage, 1000)
	w[18] = toWord(m.USBCurrent, 100)
	copy(w[19:21], EncodeLabel(m.TargetCode, 2))
	copy(w[21:27], m.SensorTiming[:])
	encodeVector(w[27:33], m.Accelerometer)
	encodeVector(w[33:39], m.Gyroscope)
	encodeVector(w[39:45], m.LinearAcceleration)
	encodeVector(w[45:51], m.RotationalAcceleration)
	w[51] = m.GoodChecksumMsgs
	w[52] = m.Waymarker
	copy(w[53:54], EncodeLabel(m.WaymarkerLabel, 1))
	copy(w[54:55], EncodeLabel(m.DirectionMetricLabel, 1))
	w[55] = m.Flags
	for _, v := range w[:ChecksumWord] {
		w[ChecksumWord] ^= v
	}
	return w
}

// Bytes returns the encoded frame.
func (m *Message) Bytes() []byte {
	b := make([]byte, FrameSize)
	for n, v := range m.Words() {
		binary.LittleEndian.PutUint16(b[n*2:], v)
	}
	return b
}

// WriteTo writes the encoded frame.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Bytes())
	return int64(n), err
}
