// Package sh provides the interactive frame inspector.
package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/mercator.go/pkg/comm"
	"github.com/robotalks/mercator.go/pkg/comm/mqtt"
	"github.com/robotalks/mercator.go/pkg/env"
	"github.com/robotalks/mercator.go/pkg/telemetry"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell   *ishell.Shell
	Config  *env.Config
	Decoder *telemetry.Decoder

	events telemetry.EventCollector
	offset int64
}

const (
	shellKey = "$shell"
	prompt   = "mercator > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&DiscoverCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Decoder = telemetry.NewDecoder(&s.events)
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Feed feeds bytes to the shell's decoder, stamped by their offset since
// the shell started, and returns the events they complete.
func (s *Shell) Feed(data []byte) []telemetry.FieldEvent {
	s.events.Reset()
	for _, b := range data {
		s.Decoder.Feed(context.TODO(), telemetry.ByteEvent{Value: b, Start: s.offset, End: s.offset + 1})
		s.offset++
	}
	return s.events.Events
}

// PrintEvents prints field events one per line, or as a JSON array.
func PrintEvents(c *ishell.Context, events []telemetry.FieldEvent) {
	if ShellFrom(c).OutputJSON {
		PrintJSON(c, events)
		return
	}
	for _, ev := range events {
		c.Println(comm.FormatEvent(ev))
	}
}

// PrintJSON prints v in JSON.
func PrintJSON(c *ishell.Context, v interface{}) {
	out, err := json.Marshal(v)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(string(out))
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// DiscoverCmd discovers decoders announced on the MQTT broker.
var DiscoverCmd = ishell.Cmd{
	Name:    "discover",
	Aliases: []string{"list", "l"},
	Help:    "",
	Func: func(c *ishell.Context) {
		s := ShellFrom(c)
		if s.Config.MQTTBrokerURL == "" {
			c.Err(fmt.Errorf("MQTT broker URL required"))
			return
		}
		infoList, err := mqtt.Discover(context.TODO(), s.Config.MQTTBrokerURL, mqtt.DefaultDiscoverTimeout)
		if err != nil {
			c.Err(err)
			return
		}
		if s.OutputJSON {
			if len(infoList) == 0 {
				// in case infoList is nil, make it empty slice.
				infoList = []env.DecoderInfo{}
			}
			PrintJSON(c, infoList)
			return
		}
		if len(infoList) == 0 {
			c.Println("No decoders found")
			return
		}
		for _, info := range infoList {
			c.Println(FormatInfo(info))
		}
	},
}

// FormatInfo prints DecoderInfo into friendly string for display.
func FormatInfo(info env.DecoderInfo) string {
	str := info.Ref.Name()
	if info.Meta.Description != "" {
		str += ": " + info.Meta.Description
	}
	return str
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).Run(flag.Args()...)
}
