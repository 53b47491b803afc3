package main

import (
	"context"
	"flag"
	"log"
	"os"
	"reflect"

	"github.com/robotalks/mercator.go/pkg/comm"
	"github.com/robotalks/mercator.go/pkg/comm/mqtt"
	"github.com/robotalks/mercator.go/pkg/comm/stream"
	"github.com/robotalks/mercator.go/pkg/comm/websocket"
	"github.com/robotalks/mercator.go/pkg/env"
	"github.com/robotalks/mercator.go/pkg/framework"
	"github.com/robotalks/mercator.go/pkg/msgs"
)

var (
	mqttURL  = os.Getenv("MERCATOR_MQTT_URL")
	wsURL    string
	file     string
	list     bool
	ref      env.DecoderRef
	showText bool
)

func init() {
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&wsURL, "ws", wsURL, "Websocket URL of a decoder, e.g. ws://host:8080/telemetry.")
	flag.StringVar(&file, "file", file, "Read packets recorded by mercatord.")
	flag.BoolVar(&list, "list", list, "List decoders announced on the MQTT broker.")
	flag.StringVar(&ref.Type, "type", ref.Type, "Decoder type to monitor, all if empty.")
	flag.StringVar(&ref.ID, "id", ref.ID, "Decoder ID to monitor, all if empty.")
	flag.BoolVar(&showText, "text", showText, "Print field events as text.")
}

func printMsg(_ context.Context, msg msgs.Message, typed *msgs.Typed) error {
	if ev, ok := msg.(*msgs.FieldEvent); ok && showText {
		log.Printf("#%d %s", typed.Sequence, comm.FormatEvent(ev.FieldEvent()))
		return nil
	}
	if stats, ok := msg.(*msgs.Stats); ok && showText {
		log.Printf("#%d %s", typed.Sequence, comm.FormatStats(stats.Stats()))
		return nil
	}
	log.Printf("#%d [%s] %s", typed.Sequence,
		reflect.Indirect(reflect.ValueOf(msg)).Type().Name(), msg.String())
	return nil
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	runner := framework.NewRunner().HandleSignals()
	runner.StopOnExit = true
	handler := comm.HandleTypedMsgFunc(printMsg)

	switch {
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			log.Fatalln(err)
		}
		runner.Go(comm.NewPipe(stream.New(f), handler))
	case wsURL != "":
		rw, err := websocket.Dial(wsURL)
		if err != nil {
			log.Fatalln(err)
		}
		runner.Go(comm.NewPipe(rw, handler))
	case mqttURL != "" && list:
		infoList, err := mqtt.Discover(runner.Context, mqttURL, mqtt.DefaultDiscoverTimeout)
		if err != nil {
			log.Fatalln(err)
		}
		for _, info := range infoList {
			log.Printf("%s: %s (%s)", info.Ref.Name(), info.Meta.Description, info.Meta.Device)
		}
		return
	case mqttURL != "":
		q, err := mqtt.NewQueueFromURL(mqttURL)
		if err != nil {
			log.Fatalln(err)
		}
		if err := q.ConnectAndWait(); err != nil {
			log.Fatalln(err)
		}
		defer q.Close()
		rw := mqtt.NewPacketReadWriter(q).ForMonitor(ref)
		runner.Go(rw, comm.NewPipe(rw, handler))
	default:
		log.Fatalln("one of -file, -ws or -mqtt is required")
	}
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
