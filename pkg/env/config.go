package env

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultDecoderType is the type announced by decoders.
const DefaultDecoderType = "mercator"

// InfluxConfig configures the InfluxDB sink.
type InfluxConfig struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

// Config provides common options to deploy a decoder.
type Config struct {
	Info DecoderInfo `yaml:",inline"`

	// MQTTBrokerURL specifies the MQTT broker to publish to.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `yaml:"mqtt"`
	// Listen is the HTTP address serving websocket clients and metrics.
	Listen string `yaml:"listen"`
	// RecordPath is a file recording published packets.
	RecordPath string `yaml:"record"`
	// StorePath is a bbolt database recording raw frames.
	StorePath string       `yaml:"store"`
	Influx    InfluxConfig `yaml:"influx"`
}

var defaultConfig = Config{
	Info: DecoderInfo{
		Ref: DecoderRef{Type: DefaultDecoderType},
	},
	Influx: InfluxConfig{
		Org:    "mercator",
		Bucket: "telemetry",
	},
}

func init() {
	defaultConfig.Info.Ref.ID = MachineID()
	if val := os.Getenv("MERCATOR_TYPE"); val != "" {
		defaultConfig.Info.Ref.Type = val
	}
	if val := os.Getenv("MERCATOR_ID"); val != "" {
		defaultConfig.Info.Ref.ID = val
	}
	if val := os.Getenv("MERCATOR_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("MERCATOR_INFLUX_URL"); val != "" {
		defaultConfig.Influx.URL = val
	}
	if val := os.Getenv("MERCATOR_INFLUX_TOKEN"); val != "" {
		defaultConfig.Influx.Token = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.Type, "type", defaultConfig.Info.Ref.Type, "Decoder type")
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Decoder ID")
	flag.StringVar(&defaultConfig.Info.Meta.Description, "description", defaultConfig.Info.Meta.Description, "Decoder description")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.Listen, "listen", defaultConfig.Listen, "HTTP address for websocket and metrics, e.g. :8080")
	flag.StringVar(&defaultConfig.RecordPath, "record", defaultConfig.RecordPath, "Record published packets to file")
	flag.StringVar(&defaultConfig.StorePath, "store", defaultConfig.StorePath, "Record raw frames to a bbolt database")
	flag.StringVar(&defaultConfig.Influx.URL, "influx", defaultConfig.Influx.URL, "InfluxDB URL")
	flag.StringVar(&defaultConfig.Influx.Org, "influx-org", defaultConfig.Influx.Org, "InfluxDB organization")
	flag.StringVar(&defaultConfig.Influx.Bucket, "influx-bucket", defaultConfig.Influx.Bucket, "InfluxDB bucket")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile loads a YAML config file over the current values.
func (c *Config) LoadFile(fn string) error {
	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", fn, err)
	}
	return nil
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if !c.Info.Ref.IsValid() {
		return fmt.Errorf("decoder type and id must be specified")
	}
	return nil
}
