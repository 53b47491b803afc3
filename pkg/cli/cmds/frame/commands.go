// Package frame provides commands decoding a single frame or word.
package frame

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/mercator.go/pkg/cli/sh"
	"github.com/robotalks/mercator.go/pkg/telemetry"
)

var (
	// DecodeCmd decodes a complete frame.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"dec"},
		Help:    "HEX...",
		Func: func(c *ishell.Context) {
			data, err := sh.ParseHex(c.Args...)
			if err != nil {
				c.Err(err)
				return
			}
			events := telemetry.Decode(&telemetry.Frame{Data: data, End: int64(len(data))})
			if events == nil {
				c.Err(fmt.Errorf("frame too short: %d bytes, %d expected", len(data), telemetry.FrameSize))
				return
			}
			sh.PrintEvents(c, events)
		},
	}

	// ChecksumCmd computes the XOR checksum of data.
	ChecksumCmd = ishell.Cmd{
		Name:    "checksum",
		Aliases: []string{"cs"},
		Help:    "HEX...",
		Func: func(c *ishell.Context) {
			data, err := sh.ParseHex(c.Args...)
			if err != nil {
				c.Err(err)
				return
			}
			if len(data) < telemetry.FrameSize {
				c.Printf("0x%04X\n", telemetry.Checksum(data))
				return
			}
			res := telemetry.ValidateChecksum(data)
			if sh.ShellFrom(c).OutputJSON {
				sh.PrintJSON(c, res)
				return
			}
			c.Printf("computed 0x%04X, received 0x%04X, valid %v\n", res.Computed, res.Received, res.Valid)
		},
	}

	// FloatCmd reinterprets two words as a float.
	FloatCmd = ishell.Cmd{
		Name: "float",
		Help: "LO HI",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("LO and HI required"))
				return
			}
			words, err := sh.ParseWords(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(strconv.FormatFloat(float64(telemetry.DecodeFloat(words[0], words[1])), 'g', -1, 32))
		},
	}

	// LabelCmd decodes words as a character label.
	LabelCmd = ishell.Cmd{
		Name: "label",
		Help: "WORD...",
		Func: func(c *ishell.Context) {
			words, err := sh.ParseWords(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("%q\n", telemetry.DecodeLabel(words...))
		},
	}

	// FieldsCmd lists the fields.
	FieldsCmd = ishell.Cmd{
		Name: "fields",
		Help: "",
		Func: func(c *ishell.Context) {
			for id := telemetry.FieldID(0); id.IsValid(); id++ {
				c.Printf("%2d %-28s %s\n", int(id), id, id.Description())
			}
		},
	}

	// SampleCmd prints a well-formed frame.
	SampleCmd = ishell.Cmd{
		Name: "sample",
		Help: "[DEPTH]",
		Func: func(c *ishell.Context) {
			msg := SampleMessage()
			if len(c.Args) > 0 {
				depth, err := strconv.ParseFloat(c.Args[0], 64)
				if err != nil {
					c.Err(fmt.Errorf("Invalid DEPTH: %v", err))
					return
				}
				msg.Depth = depth
			}
			c.Println(sh.FormatHex(msg.Bytes()))
		},
	}
)

// SampleMessage creates a message with plausible readings.
func SampleMessage() *telemetry.Message {
	msg := &telemetry.Message{
		MsgType:              1,
		Depth:                12.3,
		WaterPressure:        2.23,
		WaterTemperature:     14.5,
		EnclosureTemperature: 21.2,
		EnclosureHumidity:    45.6,
		AirPressure:          1013.2,
		Heading:              271.5,
		HeadingToTarget:      265,
		DistanceToTarget:     42.5,
		JourneyCourse:        90,
		JourneyDistance:      123.45,
		DisplayLabel:         "DV",
		MakoSecondsOn:        1200,
		USBVoltage:           5.012,
		USBCurrent:           0.35,
		TargetCode:           "WP01",
		Accelerometer:        telemetry.Vector3{X: 0.01, Y: -0.02, Z: 9.81},
		Gyroscope:            telemetry.Vector3{X: 0.1, Y: 0.2, Z: -0.1},
		GoodChecksumMsgs:     100,
		Waymarker:            3,
		WaymarkerLabel:       "A1",
		DirectionMetricLabel: "NE",
	}
	copy(msg.SensorTiming[:], []uint16{12, 8, 5, 3, 2, 40})
	return msg
}

func init() {
	sh.AddCmds(
		&DecodeCmd,
		&ChecksumCmd,
		&FloatCmd,
		&LabelCmd,
		&FieldsCmd,
		&SampleCmd,
	)
}
