package config_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
)

const sample = `
control:
  step:
    start: 0
    total: 3600
    interval: 1
  seed: 7
weather:
  preset: WetCloudySunset
  overrides:
    fog_density: 20
  dynamic:
    speed: 2
  wind_noise: 5
output:
  interval: 10
  sqlite: weather.db
`

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, int32(3600), c.Control.Step.Total)
	assert.Equal(t, uint64(7), c.Control.Seed)
	assert.Equal(t, "WetCloudySunset", c.Weather.Preset)
	assert.Equal(t, map[string]float32{"fog_density": 20}, c.Weather.Overrides)
	require.NotNil(t, c.Weather.Dynamic)
	assert.Equal(t, 2.0, c.Weather.Dynamic.Speed)
	assert.Equal(t, float32(5), c.Weather.WindNoise)
	require.NotNil(t, c.Output)
	assert.Equal(t, "weather.db", c.Output.SQLite)
}

func TestParseStrict(t *testing.T) {
	_, err := config.Parse([]byte("weather:\n  presett: ClearNoon\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	fromFile, err := config.Load(path, "")
	require.NoError(t, err)

	fromData, err := config.Load("", base64.StdEncoding.EncodeToString([]byte(sample)))
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromData)

	_, err = config.Load("", "")
	assert.Error(t, err)
	_, err = config.Load("", "not base64!")
	assert.Error(t, err)
}

func TestNewRuntimeConfig(t *testing.T) {
	c := config.Config{
		Control: config.Control{Step: config.ControlStep{Total: 10, Interval: 0.5}},
		Output:  &config.Output{SQLite: "w.db"},
	}
	rc, err := config.NewRuntimeConfig(c)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPreset, rc.All.Weather.Preset)
	assert.Equal(t, int32(1), rc.All.Output.Interval)
	assert.Equal(t, c.Control, rc.C)

	_, err = config.NewRuntimeConfig(config.Config{Control: config.Control{Step: config.ControlStep{Total: 10}}})
	assert.Error(t, err)

	c.Output = &config.Output{URI: "mongodb://localhost:27017"}
	_, err = config.NewRuntimeConfig(c)
	assert.Error(t, err)
}
