package env

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoderRef(t *testing.T) {
	ref := DecoderRef{Type: "mercator", ID: "lemon"}
	require.True(t, ref.IsValid())
	require.Equal(t, "mercator/lemon", ref.Name())
	require.False(t, DecoderRef{Type: "mercator"}.IsValid())
	require.False(t, DecoderRef{ID: "lemon"}.IsValid())
}

func TestMachineID(t *testing.T) {
	require.NotEmpty(t, MachineID())
}

func TestConfigLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "mercator-env")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	fn := filepath.Join(dir, "mercator.yaml")
	require.NoError(t, ioutil.WriteFile(fn, []byte(`
type: mercator
id: lemon
description: surface unit
labels:
  site: harbour
mqtt: mqtt://broker:1883/mercator/
store: /var/lib/mercator/frames.db
influx:
  url: http://influx:8086
  org: dive
  bucket: v1
`), 0644))

	conf := NewConfig()
	conf.Listen = ":8080"
	require.NoError(t, conf.LoadFile(fn))
	require.Equal(t, DecoderRef{Type: "mercator", ID: "lemon"}, conf.Info.Ref)
	require.Equal(t, "surface unit", conf.Info.Meta.Description)
	require.Equal(t, map[string]string{"site": "harbour"}, conf.Info.Meta.Labels)
	require.Equal(t, "mqtt://broker:1883/mercator/", conf.MQTTBrokerURL)
	require.Equal(t, "/var/lib/mercator/frames.db", conf.StorePath)
	require.Equal(t, ":8080", conf.Listen)
	require.Equal(t, InfluxConfig{URL: "http://influx:8086", Org: "dive", Bucket: "v1"}, conf.Influx)
	require.NoError(t, conf.Validate())

	require.Error(t, conf.LoadFile(filepath.Join(dir, "missing.yaml")))
	require.NoError(t, ioutil.WriteFile(fn, []byte("type: [\n"), 0644))
	require.Error(t, conf.LoadFile(fn))
}

func TestConfigValidate(t *testing.T) {
	conf := NewConfig()
	conf.Info.Ref.ID = ""
	require.Error(t, conf.Validate())
}
