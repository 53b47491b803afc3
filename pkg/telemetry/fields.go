package telemetry

import "strconv"

// FieldID identifies a decoded field in emitted events.
type FieldID int

// Field identifiers, in emission order except FieldMessage which comes last.
const (
	FieldMessage FieldID = iota
	FieldLength
	FieldMsgType
	FieldDepth
	FieldWaterPressure
	FieldWaterTemperature
	FieldEnclosureTemperature
	FieldEnclosureHumidity
	FieldAirPressure
	FieldHeading
	FieldHeadingToTarget
	FieldDistanceToTarget
	FieldJourneyCourse
	FieldJourneyDistance
	FieldDisplayLabel
	FieldMakoSecondsOn
	FieldMakoUserAction
	FieldMakoBadChecksumMsgs
	FieldMakoUSBVoltage
	FieldMakoUSBCurrent
	FieldTargetCode
	FieldSensorTiming
	FieldAccelerometer
	FieldGyroscope
	FieldLinearAcceleration
	FieldRotationalAcceleration
	FieldMakoGoodChecksumMsgs
	FieldWaymarker
	FieldWaymarkerLabel
	FieldDirectionMetricLabel
	FieldFlags
	// FieldChecksum is reserved, checksum outcome is reported with
	// FieldChecksumOK or FieldChecksumError.
	FieldChecksum
	FieldChecksumOK
	FieldChecksumError

	// FieldCount is the number of field identifiers.
	FieldCount int = iota
)

var fieldInfo = [FieldCount]struct {
	name string
	desc string
}{
	{"message", "Complete message"},
	{"length", "Message length"},
	{"msgtype", "Message type"},
	{"depth", "Water depth"},
	{"water_pressure", "Water pressure"},
	{"water_temperature", "Water temperature"},
	{"enclosure_temperature", "Enclosure temperature"},
	{"enclosure_humidity", "Enclosure humidity"},
	{"air_pressure", "Air pressure"},
	{"heading", "Magnetic heading"},
	{"heading_to_target", "Heading to target"},
	{"distance_to_target", "Distance to target"},
	{"journey_course", "Journey course"},
	{"journey_distance", "Journey distance"},
	{"display_label", "Display label"},
	{"mako_seconds_on", "Mako seconds on"},
	{"mako_user_action", "Mako user action"},
	{"mako_bad_checksum_msgs", "Bad checksum messages"},
	{"mako_usb_voltage", "USB voltage"},
	{"mako_usb_current", "USB current"},
	{"target_code", "Target code"},
	{"sensor_timing", "Sensor timing data"},
	{"accelerometer", "Accelerometer data"},
	{"gyroscope", "Gyroscope data"},
	{"linear_acceleration", "Linear acceleration"},
	{"rotational_acceleration", "Rotational acceleration"},
	{"mako_good_checksum_msgs", "Good checksum messages"},
	{"waymarker", "Waymarker data"},
	{"waymarker_label", "Waymarker label"},
	{"direction_metric_label", "Direction metric label"},
	{"flags", "Status flags"},
	{"checksum", "Message checksum"},
	{"checksum_ok", "Checksum valid"},
	{"checksum_error", "Checksum error"},
}

// IsValid indicates the id is one of the defined identifiers.
func (id FieldID) IsValid() bool {
	return id >= 0 && int(id) < FieldCount
}

// String returns the field key, e.g. "water_temperature".
func (id FieldID) String() string {
	if !id.IsValid() {
		return "field(" + strconv.Itoa(int(id)) + ")"
	}
	return fieldInfo[id].name
}

// Description returns a human readable description.
func (id FieldID) Description() string {
	if !id.IsValid() {
		return ""
	}
	return fieldInfo[id].desc
}

// FieldIDByName looks up an identifier by its key.
func FieldIDByName(name string) (FieldID, bool) {
	for n, info := range fieldInfo {
		if info.name == name {
			return FieldID(n), true
		}
	}
	return 0, false
}
