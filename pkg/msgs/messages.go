package msgs

import (
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// GroupTelemetry is the group of all decoder messages.
const GroupTelemetry uint32 = 0x00010000

// TypeIDs
const (
	FieldEventTypeID uint32 = GroupTelemetry | TypeIDKindEvent | 0x0001
	TelemetryTypeID  uint32 = GroupTelemetry | TypeIDKindEvent | 0x0002
	StatsTypeID      uint32 = GroupTelemetry | TypeIDKindEvent | 0x0003
)

// FieldEvent is a single decoded field.
type FieldEvent struct {
	Start int64    `protobuf:"varint,1,opt,name=start,proto3" json:"start,omitempty"`
	End   int64    `protobuf:"varint,2,opt,name=end,proto3" json:"end,omitempty"`
	Id    uint32   `protobuf:"varint,3,opt,name=id,proto3" json:"id"`
	Name  string   `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Texts []string `protobuf:"bytes,5,rep,name=texts,proto3" json:"texts,omitempty"`
}

// FieldEventFrom converts a decoded field event.
func FieldEventFrom(ev telemetry.FieldEvent) *FieldEvent {
	return &FieldEvent{
		Start: ev.Start,
		End:   ev.End,
		Id:    uint32(ev.ID),
		Name:  ev.ID.String(),
		Texts: ev.Texts,
	}
}

// FieldEvent converts back to a telemetry.FieldEvent.
func (m *FieldEvent) FieldEvent() telemetry.FieldEvent {
	return telemetry.FieldEvent{
		Start: m.Start,
		End:   m.End,
		ID:    telemetry.FieldID(m.Id),
		Texts: m.Texts,
	}
}

// NewMessage implements Message.
func (m *FieldEvent) NewMessage() Message { return &FieldEvent{} }

// TypeID implements Message.
func (m *FieldEvent) TypeID() uint32 { return FieldEventTypeID }

// ProtoMessage implements proto.Message.
func (m *FieldEvent) ProtoMessage() {}

// Reset implements proto.Message.
func (m *FieldEvent) Reset() { *m = FieldEvent{} }

// String implements proto.Message.
func (m *FieldEvent) String() string { return proto.CompactTextString(m) }

// Vector3 is a float triple.
type Vector3 struct {
	X float32 `protobuf:"fixed32,1,opt,name=x,proto3" json:"x"`
	Y float32 `protobuf:"fixed32,2,opt,name=y,proto3" json:"y"`
	Z float32 `protobuf:"fixed32,3,opt,name=z,proto3" json:"z"`
}

// ProtoMessage implements proto.Message.
func (m *Vector3) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Vector3) Reset() { *m = Vector3{} }

// String implements proto.Message.
func (m *Vector3) String() string { return proto.CompactTextString(m) }

func vectorFrom(v telemetry.Vector3) *Vector3 {
	return &Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (m *Vector3) vector() telemetry.Vector3 {
	if m == nil {
		return telemetry.Vector3{}
	}
	return telemetry.Vector3{X: m.X, Y: m.Y, Z: m.Z}
}

// Telemetry is a whole decoded frame.
type Telemetry struct {
	Start                  int64    `protobuf:"varint,1,opt,name=start,proto3" json:"start,omitempty"`
	End                    int64    `protobuf:"varint,2,opt,name=end,proto3" json:"end,omitempty"`
	Length                 uint32   `protobuf:"varint,3,opt,name=length,proto3" json:"length"`
	MsgType                uint32   `protobuf:"varint,4,opt,name=msg_type,proto3" json:"msg_type"`
	Depth                  float64  `protobuf:"fixed64,5,opt,name=depth,proto3" json:"depth"`
	WaterPressure          float64  `protobuf:"fixed64,6,opt,name=water_pressure,proto3" json:"water_pressure"`
	WaterTemperature       float64  `protobuf:"fixed64,7,opt,name=water_temperature,proto3" json:"water_temperature"`
	EnclosureTemperature   float64  `protobuf:"fixed64,8,opt,name=enclosure_temperature,proto3" json:"enclosure_temperature"`
	EnclosureHumidity      float64  `protobuf:"fixed64,9,opt,name=enclosure_humidity,proto3" json:"enclosure_humidity"`
	AirPressure            float64  `protobuf:"fixed64,10,opt,name=air_pressure,proto3" json:"air_pressure"`
	Heading                float64  `protobuf:"fixed64,11,opt,name=heading,proto3" json:"heading"`
	HeadingToTarget        float64  `protobuf:"fixed64,12,opt,name=heading_to_target,proto3" json:"heading_to_target"`
	DistanceToTarget       float64  `protobuf:"fixed64,13,opt,name=distance_to_target,proto3" json:"distance_to_target"`
	JourneyCourse          float64  `protobuf:"fixed64,14,opt,name=journey_course,proto3" json:"journey_course"`
	JourneyDistance        float64  `protobuf:"fixed64,15,opt,name=journey_distance,proto3" json:"journey_distance"`
	DisplayLabel           string   `protobuf:"bytes,16,opt,name=display_label,proto3" json:"display_label,omitempty"`
	MakoSecondsOn          uint32   `protobuf:"varint,17,opt,name=mako_seconds_on,proto3" json:"mako_seconds_on"`
	MakoUserAction         uint32   `protobuf:"varint,18,opt,name=mako_user_action,proto3" json:"mako_user_action"`
	BadChecksumMsgs        uint32   `protobuf:"varint,19,opt,name=bad_checksum_msgs,proto3" json:"bad_checksum_msgs"`
	UsbVoltage             float64  `protobuf:"fixed64,20,opt,name=usb_voltage,proto3" json:"usb_voltage"`
	UsbCurrent             float64  `protobuf:"fixed64,21,opt,name=usb_current,proto3" json:"usb_current"`
	TargetCode             string   `protobuf:"bytes,22,opt,name=target_code,proto3" json:"target_code,omitempty"`
	SensorTiming           []uint32 `protobuf:"varint,23,rep,packed,name=sensor_timing,proto3" json:"sensor_timing,omitempty"`
	Accelerometer          *Vector3 `protobuf:"bytes,24,opt,name=accelerometer,proto3" json:"accelerometer,omitempty"`
	Gyroscope              *Vector3 `protobuf:"bytes,25,opt,name=gyroscope,proto3" json:"gyroscope,omitempty"`
	LinearAcceleration     *Vector3 `protobuf:"bytes,26,opt,name=linear_acceleration,proto3" json:"linear_acceleration,omitempty"`
	RotationalAcceleration *Vector3 `protobuf:"bytes,27,opt,name=rotational_acceleration,proto3" json:"rotational_acceleration,omitempty"`
	GoodChecksumMsgs       uint32   `protobuf:"varint,28,opt,name=good_checksum_msgs,proto3" json:"good_checksum_msgs"`
	Waymarker              uint32   `protobuf:"varint,29,opt,name=waymarker,proto3" json:"waymarker"`
	WaymarkerLabel         string   `protobuf:"bytes,30,opt,name=waymarker_label,proto3" json:"waymarker_label,omitempty"`
	DirectionMetricLabel   string   `protobuf:"bytes,31,opt,name=direction_metric_label,proto3" json:"direction_metric_label,omitempty"`
	Flags                  uint32   `protobuf:"varint,32,opt,name=flags,proto3" json:"flags"`
	ChecksumOk             bool     `protobuf:"varint,33,opt,name=checksum_ok,proto3" json:"checksum_ok"`
	ChecksumComputed       uint32   `protobuf:"varint,34,opt,name=checksum_computed,proto3" json:"checksum_computed"`
	ChecksumReceived       uint32   `protobuf:"varint,35,opt,name=checksum_received,proto3" json:"checksum_received"`
}

// TelemetryFrom converts a decoded message. frame may be nil.
func TelemetryFrom(msg *telemetry.Message, frame *telemetry.Frame) *Telemetry {
	m := &Telemetry{
		Length:                 uint32(msg.Length),
		MsgType:                uint32(msg.MsgType),
		Depth:                  msg.Depth,
		WaterPressure:          msg.WaterPressure,
		WaterTemperature:       msg.WaterTemperature,
		EnclosureTemperature:   msg.EnclosureTemperature,
		EnclosureHumidity:      msg.EnclosureHumidity,
		AirPressure:            msg.AirPressure,
		Heading:                msg.Heading,
		HeadingToTarget:        msg.HeadingToTarget,
		DistanceToTarget:       msg.DistanceToTarget,
		JourneyCourse:          msg.JourneyCourse,
		JourneyDistance:        msg.JourneyDistance,
		DisplayLabel:           msg.DisplayLabel,
		MakoSecondsOn:          uint32(msg.MakoSecondsOn),
		MakoUserAction:         uint32(msg.MakoUserAction),
		BadChecksumMsgs:        uint32(msg.BadChecksumMsgs),
		UsbVoltage:             msg.USBVoltage,
		UsbCurrent:             msg.USBCurrent,
		TargetCode:             msg.TargetCode,
		SensorTiming:           make([]uint32, len(msg.SensorTiming)),
		Accelerometer:          vectorFrom(msg.Accelerometer),
		Gyroscope:              vectorFrom(msg.Gyroscope),
		LinearAcceleration:     vectorFrom(msg.LinearAcceleration),
		RotationalAcceleration: vectorFrom(msg.RotationalAcceleration),
		GoodChecksumMsgs:       uint32(msg.GoodChecksumMsgs),
		Waymarker:              uint32(msg.Waymarker),
		WaymarkerLabel:         msg.WaymarkerLabel,
		DirectionMetricLabel:   msg.DirectionMetricLabel,
		Flags:                  uint32(msg.Flags),
		ChecksumOk:             msg.Checksum.Valid,
		ChecksumComputed:       uint32(msg.Checksum.Computed),
		ChecksumReceived:       uint32(msg.Checksum.Received),
	}
	for n, t := range msg.SensorTiming {
		m.SensorTiming[n] = uint32(t)
	}
	if frame != nil {
		m.Start, m.End = frame.Start, frame.End
	}
	return m
}

// Message converts back to a telemetry.Message.
func (m *Telemetry) Message() *telemetry.Message {
	msg := &telemetry.Message{
		Length:                 uint16(m.Length),
		MsgType:                uint16(m.MsgType),
		Depth:                  m.Depth,
		WaterPressure:          m.WaterPressure,
		WaterTemperature:       m.WaterTemperature,
		EnclosureTemperature:   m.EnclosureTemperature,
		EnclosureHumidity:      m.EnclosureHumidity,
		AirPressure:            m.AirPressure,
		Heading:                m.Heading,
		HeadingToTarget:        m.HeadingToTarget,
		DistanceToTarget:       m.DistanceToTarget,
		JourneyCourse:          m.JourneyCourse,
		JourneyDistance:        m.JourneyDistance,
		DisplayLabel:           m.DisplayLabel,
		MakoSecondsOn:          uint16(m.MakoSecondsOn),
		MakoUserAction:         uint16(m.MakoUserAction),
		BadChecksumMsgs:        uint16(m.BadChecksumMsgs),
		USBVoltage:             m.UsbVoltage,
		USBCurrent:             m.UsbCurrent,
		TargetCode:             m.TargetCode,
		Accelerometer:          m.Accelerometer.vector(),
		Gyroscope:              m.Gyroscope.vector(),
		LinearAcceleration:     m.LinearAcceleration.vector(),
		RotationalAcceleration: m.RotationalAcceleration.vector(),
		GoodChecksumMsgs:       uint16(m.GoodChecksumMsgs),
		Waymarker:              uint16(m.Waymarker),
		WaymarkerLabel:         m.WaymarkerLabel,
		DirectionMetricLabel:   m.DirectionMetricLabel,
		Flags:                  uint16(m.Flags),
		Checksum: telemetry.ChecksumResult{
			Computed: uint16(m.ChecksumComputed),
			Received: uint16(m.ChecksumReceived),
			Valid:    m.ChecksumOk,
		},
	}
	for n := range msg.SensorTiming {
		if n < len(m.SensorTiming) {
			msg.SensorTiming[n] = uint16(m.SensorTiming[n])
		}
	}
	return msg
}

// NewMessage implements Message.
func (m *Telemetry) NewMessage() Message { return &Telemetry{} }

// TypeID implements Message.
func (m *Telemetry) TypeID() uint32 { return TelemetryTypeID }

// ProtoMessage implements proto.Message.
func (m *Telemetry) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Telemetry) Reset() { *m = Telemetry{} }

// String implements proto.Message.
func (m *Telemetry) String() string { return proto.CompactTextString(m) }

// Stats reports decoder counters.
type Stats struct {
	Bytes          uint64 `protobuf:"varint,1,opt,name=bytes,proto3" json:"bytes"`
	Frames         uint64 `protobuf:"varint,2,opt,name=frames,proto3" json:"frames"`
	Decoded        uint64 `protobuf:"varint,3,opt,name=decoded,proto3" json:"decoded"`
	ShortFrames    uint64 `protobuf:"varint,4,opt,name=short_frames,proto3" json:"short_frames"`
	ChecksumErrors uint64 `protobuf:"varint,5,opt,name=checksum_errors,proto3" json:"checksum_errors"`
	Discarded      uint64 `protobuf:"varint,6,opt,name=discarded,proto3" json:"discarded"`
}

// StatsFrom converts decoder stats.
func StatsFrom(s telemetry.Stats) *Stats {
	return &Stats{
		Bytes:          s.Bytes,
		Frames:         s.Frames,
		Decoded:        s.Decoded,
		ShortFrames:    s.ShortFrames,
		ChecksumErrors: s.ChecksumErrors,
		Discarded:      s.Discarded,
	}
}

// Stats converts back to decoder stats.
func (m *Stats) Stats() telemetry.Stats {
	return telemetry.Stats{
		Bytes:          m.Bytes,
		Frames:         m.Frames,
		Decoded:        m.Decoded,
		ShortFrames:    m.ShortFrames,
		ChecksumErrors: m.ChecksumErrors,
		Discarded:      m.Discarded,
	}
}

// NewMessage implements Message.
func (m *Stats) NewMessage() Message { return &Stats{} }

// TypeID implements Message.
func (m *Stats) TypeID() uint32 { return StatsTypeID }

// ProtoMessage implements proto.Message.
func (m *Stats) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Stats) Reset() { *m = Stats{} }

// String implements proto.Message.
func (m *Stats) String() string { return proto.CompactTextString(m) }
