// Package stream provides commands driving the shell's stream decoder.
package stream

import (
	"context"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/mercator.go/pkg/cli/sh"
	"github.com/robotalks/mercator.go/pkg/comm"
	"github.com/robotalks/mercator.go/pkg/source"
	"github.com/robotalks/mercator.go/pkg/store"
	"github.com/robotalks/mercator.go/pkg/telemetry"
)

var stateNames = map[telemetry.AssemblerState]string{
	telemetry.AssemblerIdle:   "idle",
	telemetry.AssemblerLength: "reading length",
	telemetry.AssemblerBody:   "reading body",
}

var (
	// FeedCmd feeds bytes to the stream decoder.
	FeedCmd = ishell.Cmd{
		Name:    "feed",
		Aliases: []string{"f"},
		Help:    "HEX...",
		Func: func(c *ishell.Context) {
			data, err := sh.ParseHex(c.Args...)
			if err != nil {
				c.Err(err)
				return
			}
			s := sh.ShellFrom(c)
			sh.PrintEvents(c, s.Feed(data))
			if !s.OutputJSON {
				c.Println(FormatState(s.Decoder))
			}
		},
	}

	// ResetCmd drops the frame in progress.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "",
		Func: func(c *ishell.Context) {
			sh.ShellFrom(c).Decoder.Reset()
		},
	}

	// StatsCmd prints the decoder counters.
	StatsCmd = ishell.Cmd{
		Name: "stats",
		Help: "",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			stats := s.Decoder.Stats()
			if s.OutputJSON {
				sh.PrintJSON(c, stats)
				return
			}
			c.Println(comm.FormatStats(stats))
		},
	}

	// PortsCmd lists serial ports a decoder can read from.
	PortsCmd = ishell.Cmd{
		Name: "ports",
		Help: "",
		Func: func(c *ishell.Context) {
			ports, err := source.SerialPorts()
			if err != nil {
				c.Err(err)
				return
			}
			if sh.ShellFrom(c).OutputJSON {
				sh.PrintJSON(c, ports)
				return
			}
			if len(ports) == 0 {
				c.Println("no serial ports found")
			}
			for _, port := range ports {
				c.Println(port)
			}
		},
	}

	// ReplayCmd decodes frames recorded by mercatord.
	ReplayCmd = ishell.Cmd{
		Name: "replay",
		Help: "PATH",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("PATH required"))
				return
			}
			var events telemetry.EventCollector
			stats, err := Replay(c.Args[0], &events)
			if err != nil {
				c.Err(err)
				return
			}
			sh.PrintEvents(c, events.Events)
			c.Printf("%d frames, %d decoded, %d checksum errors\n", stats.Frames, stats.Decoded, stats.ChecksumErrors)
		},
	}
)

// FormatState describes the frame in progress.
func FormatState(d *telemetry.Decoder) string {
	return fmt.Sprintf("state: %s", stateNames[d.State()])
}

// Replay decodes all frames in a recording to emitter.
func Replay(path string, emitter telemetry.Emitter) (telemetry.Stats, error) {
	st, err := store.Open(path)
	if err != nil {
		return telemetry.Stats{}, err
	}
	defer st.Close()
	dec := telemetry.NewDecoder(emitter)
	err = st.ForEach(func(_ uint64, frame *telemetry.Frame) error {
		dec.DecodeFrame(context.TODO(), frame)
		return nil
	})
	return dec.Stats(), err
}

func init() {
	sh.AddCmds(
		&FeedCmd,
		&ResetCmd,
		&StatsCmd,
		&PortsCmd,
		&ReplayCmd,
	)
}
