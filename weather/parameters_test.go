package weather_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/agentsociety-weather/weather"
)

func TestNewDefaults(t *testing.T) {
	p := weather.New()
	for _, f := range weather.Fields {
		if f == weather.FieldRayleighScatteringScale {
			assert.Equal(t, float32(0.0331), p.Get(f), f.String())
		} else {
			assert.Zero(t, p.Get(f), f.String())
		}
	}
}

func TestNewOptions(t *testing.T) {
	p := weather.New(
		weather.Cloudiness(1),
		weather.Precipitation(2),
		weather.PrecipitationDeposits(3),
		weather.WindIntensity(4),
		weather.SunAzimuthAngle(5),
		weather.SunAltitudeAngle(6),
		weather.FogDensity(7),
		weather.FogDistance(8),
		weather.FogFalloff(9),
		weather.Wetness(10),
		weather.ScatteringIntensity(11),
		weather.MieScatteringScale(12),
		weather.RayleighScatteringScale(13),
		weather.DustStorm(14),
	)
	assert.Equal(t, float32(1), p.Cloudiness())
	assert.Equal(t, float32(2), p.Precipitation())
	assert.Equal(t, float32(3), p.PrecipitationDeposits())
	assert.Equal(t, float32(4), p.WindIntensity())
	assert.Equal(t, float32(5), p.SunAzimuthAngle())
	assert.Equal(t, float32(6), p.SunAltitudeAngle())
	assert.Equal(t, float32(7), p.FogDensity())
	assert.Equal(t, float32(8), p.FogDistance())
	assert.Equal(t, float32(9), p.FogFalloff())
	assert.Equal(t, float32(10), p.Wetness())
	assert.Equal(t, float32(11), p.ScatteringIntensity())
	assert.Equal(t, float32(12), p.MieScatteringScale())
	assert.Equal(t, float32(13), p.RayleighScatteringScale())
	assert.Equal(t, float32(14), p.DustStorm())

	// 字段值与规范顺序一一对应
	for i, v := range p.Values() {
		assert.Equal(t, float32(i+1), v)
	}
}

func TestPartialConstruction(t *testing.T) {
	p := weather.New(weather.FogDensity(25), weather.Wetness(-3))
	assert.Equal(t, float32(25), p.FogDensity())
	assert.Equal(t, float32(-3), p.Wetness())
	assert.Equal(t, float32(0.0331), p.RayleighScatteringScale())
	assert.Zero(t, p.Cloudiness())
}

func TestWithReturnsCopy(t *testing.T) {
	p := weather.New()
	q := p.WithCloudiness(80).WithDustStorm(5)
	assert.Zero(t, p.Cloudiness())
	assert.Zero(t, p.DustStorm())
	assert.Equal(t, float32(80), q.Cloudiness())
	assert.Equal(t, float32(5), q.DustStorm())

	r := p.With(weather.FieldFogFalloff, 0.5)
	assert.Equal(t, float32(0.5), r.FogFalloff())
	assert.Equal(t, float32(0.5), r.Get(weather.FieldFogFalloff))
	assert.Zero(t, p.FogFalloff())
}

func TestEqual(t *testing.T) {
	a := weather.New(weather.Cloudiness(10))
	b := weather.New(weather.Cloudiness(10))
	c := weather.New(weather.Cloudiness(10))
	d := weather.New(weather.Cloudiness(10.5))

	// 自反、对称、传递
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))

	assert.False(t, a.Equal(d))
	for _, pair := range [][2]weather.Parameters{{a, b}, {a, d}, {d, c}} {
		assert.Equal(t, !pair[0].Equal(pair[1]), pair[0].NotEqual(pair[1]))
	}

	// 每个字段都参与比较
	for _, f := range weather.Fields {
		assert.True(t, a.NotEqual(a.With(f, a.Get(f)+1)), f.String())
	}
}

func TestEqualFloatSemantics(t *testing.T) {
	nan := weather.New(weather.Wetness(float32(math.NaN())))
	assert.False(t, nan.Equal(nan))
	assert.True(t, nan.NotEqual(nan))

	negZero := weather.New(weather.Wetness(float32(math.Copysign(0, -1))))
	assert.True(t, negZero.Equal(weather.New()))
}

func TestString(t *testing.T) {
	assert.Equal(t,
		"WeatherParameters(cloudiness=0.000000, precipitation=0.000000, precipitation_deposits=0.000000, "+
			"wind_intensity=0.000000, sun_azimuth_angle=0.000000, sun_altitude_angle=0.000000, "+
			"fog_density=0.000000, fog_distance=0.000000, fog_falloff=0.000000, wetness=0.000000, "+
			"scattering_intensity=0.000000, mie_scattering_scale=0.000000, "+
			"rayleigh_scattering_scale=0.033100, dust_storm=0.000000)",
		weather.New().String(),
	)

	p := weather.New(weather.Cloudiness(50), weather.DustStorm(10))
	s := p.String()
	assert.Contains(t, s, "cloudiness=50")
	assert.Contains(t, s, "dust_storm=10")
	assert.Equal(t, s, p.String())

	assert.Contains(t, weather.New(weather.SunAltitudeAngle(-90)).String(), "sun_altitude_angle=-90.000000")
}

func TestStringNonFinite(t *testing.T) {
	s := weather.New(
		weather.Cloudiness(float32(math.NaN())),
		weather.FogDistance(float32(math.Inf(1))),
		weather.DustStorm(float32(math.Inf(-1))),
	).String()
	assert.Contains(t, s, "cloudiness=nan,")
	assert.Contains(t, s, "fog_distance=inf,")
	assert.Contains(t, s, "dust_storm=-inf)")
}

func TestValuesRoundTrip(t *testing.T) {
	for _, name := range weather.Names() {
		p, err := weather.Lookup(name)
		require.NoError(t, err)
		assert.True(t, weather.FromValues(p.Values()).Equal(p), name)
	}
	p := weather.New(weather.Cloudiness(12.25), weather.SunAzimuthAngle(-33.5), weather.DustStorm(1e-3))
	assert.True(t, weather.FromValues(p.Values()).Equal(p))
}

func TestParseField(t *testing.T) {
	for _, f := range weather.Fields {
		got, err := weather.ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := weather.ParseField("humidity")
	assert.ErrorIs(t, err, weather.ErrUnknownField)
	assert.Equal(t, "Field(99)", weather.Field(99).String())
}

func TestInvalidField(t *testing.T) {
	p := weather.New()
	for _, f := range []weather.Field{-1, weather.Field(weather.NumFields), 99} {
		assert.False(t, f.Valid())
		assert.Panics(t, func() { p.Get(f) }, f.String())
		assert.Panics(t, func() { p.With(f, 1) }, f.String())
	}
	assert.True(t, weather.FieldDustStorm.Valid())
}
