package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/mercator.go/pkg/comm"
	"github.com/robotalks/mercator.go/pkg/comm/mqtt"
	"github.com/robotalks/mercator.go/pkg/comm/stream"
	"github.com/robotalks/mercator.go/pkg/comm/websocket"
	"github.com/robotalks/mercator.go/pkg/env"
	"github.com/robotalks/mercator.go/pkg/framework"
	"github.com/robotalks/mercator.go/pkg/sink/influx"
	"github.com/robotalks/mercator.go/pkg/sink/metrics"
	"github.com/robotalks/mercator.go/pkg/source"
	"github.com/robotalks/mercator.go/pkg/store"
	"github.com/robotalks/mercator.go/pkg/telemetry"
)

var (
	configFile    = os.Getenv("MERCATOR_CONFIG")
	printEvents   bool
	printSummary  bool
	publishFields bool
)

func init() {
	env.SetupFlags()
	source.SetupFlags()
	flag.StringVar(&configFile, "config", configFile, "YAML config file.")
	flag.BoolVar(&printEvents, "print", printEvents, "Print field events to stdout.")
	flag.BoolVar(&printSummary, "summary", printSummary, "Print only the summary of each message to stdout.")
	flag.BoolVar(&publishFields, "publish-fields", publishFields, "Publish every field event, not only whole messages.")
}

func serveHTTP(addr string, handler http.Handler) framework.Runnable {
	return framework.RunFunc(func(ctx context.Context) error {
		server := &http.Server{Addr: addr, Handler: handler}
		glog.Infof("listening on %s", addr)
		return framework.RunWithContextCancel(ctx, func() { server.Close() }, server.ListenAndServe)
	})
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		glog.Flush()
		log.Fatalln(err)
	}
	glog.Flush()
}

// run wires the pipeline and blocks until the source ends. Sinks are
// closed before it returns, whatever the outcome.
func run() error {
	conf := env.NewConfig()
	if configFile != "" {
		if err := conf.LoadFile(configFile); err != nil {
			return err
		}
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	srcConf := source.NewConfig()
	conf.Info.Meta.Device = srcConf.Device

	emitters := telemetry.Emitters{comm.Log(3)}
	if printEvents || printSummary {
		text := comm.NewText(os.Stdout)
		text.Summary = printSummary
		emitters = append(emitters, text)
	}

	var (
		writers   comm.PacketWriters
		runnables []framework.Runnable
	)
	if conf.MQTTBrokerURL != "" {
		announcer, err := mqtt.NewAnnouncer(conf.MQTTBrokerURL, conf.Info)
		if err != nil {
			return err
		}
		writers = append(writers, announcer.Publisher())
		runnables = append(runnables, framework.NamedRun("mqtt", announcer))
	}
	if conf.RecordPath != "" {
		f, err := os.Create(conf.RecordPath)
		if err != nil {
			return err
		}
		defer f.Close()
		writers = append(writers, stream.New(f))
	}
	if conf.Listen != "" {
		hub := websocket.NewHub()
		writers = append(writers, hub)
		emitters = append(emitters, metrics.New())
		mux := http.NewServeMux()
		mux.Handle("/telemetry", hub)
		mux.Handle("/metrics", promhttp.Handler())
		runnables = append(runnables, framework.NamedRun("http", serveHTTP(conf.Listen, mux)))
	}
	if len(writers) > 0 {
		pub := comm.NewPublisher(writers)
		pub.FieldEvents = publishFields
		emitters = append(emitters, pub)
	}
	if conf.StorePath != "" {
		st, err := store.Open(conf.StorePath)
		if err != nil {
			return err
		}
		defer st.Close()
		emitters = append(emitters, st)
	}
	if conf.Influx.URL != "" {
		sink, closeSink := influx.Connect(conf.Influx, conf.Info.Ref)
		defer closeSink()
		emitters = append(emitters, sink)
	}

	decoder := telemetry.NewDecoder(emitters)
	reader, err := srcConf.NewReader(decoder, emitters)
	if err != nil {
		return err
	}

	runner := framework.NewRunner().HandleSignals()
	runner.StopOnExit = true
	runner.Go(append(runnables, framework.NamedRun("source", reader))...)
	err = runner.Wait()
	glog.Info(comm.FormatStats(decoder.Stats()))
	return err
}
