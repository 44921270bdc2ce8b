package task

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/agentsociety-weather/clock"
	"github.com/tsinghua-fib-lab/agentsociety-weather/output"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
	"github.com/tsinghua-fib-lab/agentsociety-weather/weather"
)

func newTestContext(t *testing.T, c config.Config) *Context {
	t.Helper()
	rc, err := config.NewRuntimeConfig(c)
	require.NoError(t, err)
	m, err := weather.NewManager(rc.All.Weather, rc.C.Seed)
	require.NoError(t, err)
	recs, err := output.NewRecorders(context.Background(), rc.All.Output)
	require.NoError(t, err)
	return &Context{
		job:            "test",
		clock:          clock.New(rc.C.Step),
		runtimeConfig:  rc,
		weatherManager: m,
		recorder:       recs,
	}
}

func TestUpdateRecordInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.db")
	ctx := newTestContext(t, config.Config{
		Control: config.Control{Step: config.ControlStep{Start: 0, Total: 10, Interval: 1}},
		Weather: config.Weather{Preset: "WetNoon"},
		Output:  &config.Output{Interval: 3, SQLite: path},
	})
	for i := 0; i < 7; i++ {
		ctx.prepare()
		ctx.update()
	}
	assert.Equal(t, int32(7), ctx.clock.Step)
	require.NoError(t, ctx.recorder.Close())

	r, err := output.NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	bg := context.Background()
	for _, step := range []int32{3, 6} {
		rec, err := r.Get(bg, step)
		require.NoError(t, err, step)
		assert.Equal(t, float64(step), rec.T)
		assert.Equal(t, "WetNoon", rec.Preset)
		assert.True(t, rec.Weather.Equal(weather.PresetWetNoon.Parameters()))
	}
	for _, step := range []int32{1, 2, 4, 5, 7} {
		_, err := r.Get(bg, step)
		assert.ErrorIs(t, err, sql.ErrNoRows, step)
	}
}

func TestUpdateWithoutOutput(t *testing.T) {
	ctx := newTestContext(t, config.Config{
		Control: config.Control{Step: config.ControlStep{Start: 5, Total: 3, Interval: 2}},
		Weather: config.Weather{Dynamic: &config.Dynamic{Speed: 1}},
	})
	ctx.prepare()
	ctx.update()
	assert.Equal(t, int32(6), ctx.clock.Step)
	// 动态天气按时间步长推进
	assert.Equal(t, float32(0.5), ctx.weatherManager.Current().SunAzimuthAngle())
	assert.Empty(t, ctx.weatherManager.Preset())
}
