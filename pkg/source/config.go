package source

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/robotalks/mercator.go/pkg/telemetry"
)

const (
	// DefaultMaxLength bounds length prefixes read from a live link.
	DefaultMaxLength = 4 * telemetry.FrameSize
	// DefaultStatsInterval is how often decoder counters are reported.
	DefaultStatsInterval = 10 * time.Second
)

// Config defines where bytes come from.
type Config struct {
	// Device is the serial port, e.g. /dev/ttyUSB0.
	Device string
	Baud   int
	// File is a raw capture to read instead of Device, "-" for stdin.
	File          string
	MaxLength     int
	WallClock     bool
	StatsInterval time.Duration
}

var defaultConfig = Config{
	Baud:          DefaultBaudRate,
	MaxLength:     DefaultMaxLength,
	StatsInterval: DefaultStatsInterval,
}

func init() {
	if val := os.Getenv("MERCATOR_DEVICE"); val != "" {
		defaultConfig.Device = val
	}
	if val := os.Getenv("MERCATOR_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial device to read from.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate.")
	flag.StringVar(&defaultConfig.File, "file", defaultConfig.File, "Read a raw capture instead of a device, - for stdin.")
	flag.IntVar(&defaultConfig.MaxLength, "max-length", defaultConfig.MaxLength, "Discard frames with a larger length prefix, 0 to disable.")
	flag.BoolVar(&defaultConfig.WallClock, "wall-clock", defaultConfig.WallClock, "Stamp bytes with wall clock time instead of offsets.")
	flag.DurationVar(&defaultConfig.StatsInterval, "stats-interval", defaultConfig.StatsInterval, "Interval of reporting decoder counters, 0 to disable.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open opens the configured byte source.
func (c *Config) Open() (io.ReadCloser, error) {
	switch {
	case c.File == "-":
		return ioutil.NopCloser(os.Stdin), nil
	case c.File != "":
		return os.Open(c.File)
	case c.Device != "":
		return OpenSerial(c.Device, c.Baud)
	default:
		return nil, fmt.Errorf("either device or file must be specified")
	}
}

// NewReader opens the source and creates a Reader feeding decoder.
// The decoder gets the configured length bound, and stats, when not nil,
// receives its counters at the configured interval.
func (c *Config) NewReader(decoder *telemetry.Decoder, stats telemetry.StatsHandler) (*Reader, error) {
	rc, err := c.Open()
	if err != nil {
		return nil, err
	}
	decoder.WithMaxLength(c.MaxLength)
	r := NewReader(rc, decoder)
	r.WallClock = c.WallClock
	r.Stats, r.StatsInterval = stats, c.StatsInterval
	return r, nil
}
