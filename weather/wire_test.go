package weather_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/agentsociety-weather/weather"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestBinaryRoundTrip(t *testing.T) {
	for _, p := range []weather.Parameters{
		weather.New(),
		weather.PresetHardRainNight.Parameters(),
		weather.New(weather.SunAzimuthAngle(-1), weather.RayleighScatteringScale(0), weather.DustStorm(3.5)),
	} {
		b, err := p.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, b, weather.NumFields*5)

		var q weather.Parameters
		require.NoError(t, q.UnmarshalBinary(b))
		assert.True(t, q.Equal(p), p.String())
	}
}

func TestBinaryDefaultsAndUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 14, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 0x42c80000) // 100.0
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	var p weather.Parameters
	require.NoError(t, p.UnmarshalBinary(b))
	assert.True(t, p.Equal(weather.New(weather.DustStorm(100))))
}

func TestBinaryMalformed(t *testing.T) {
	b, err := weather.New().MarshalBinary()
	require.NoError(t, err)

	var p weather.Parameters
	assert.ErrorIs(t, p.UnmarshalBinary(b[:len(b)-2]), weather.ErrMalformedWire)

	var wrongType []byte
	wrongType = protowire.AppendTag(wrongType, 1, protowire.VarintType)
	wrongType = protowire.AppendVarint(wrongType, 1)
	assert.ErrorIs(t, p.UnmarshalBinary(wrongType), weather.ErrMalformedWire)
}

func TestJSON(t *testing.T) {
	p := weather.PresetWetCloudySunset.Parameters()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"precipitation_deposits":50`)

	var q weather.Parameters
	require.NoError(t, json.Unmarshal(b, &q))
	assert.True(t, q.Equal(p))

	var partial weather.Parameters
	require.NoError(t, json.Unmarshal([]byte(`{"cloudiness":50}`), &partial))
	assert.True(t, partial.Equal(weather.New(weather.Cloudiness(50))))
}

func TestJSONRejectsUnknownKeys(t *testing.T) {
	var p weather.Parameters
	assert.Error(t, json.Unmarshal([]byte(`{"cloudines":50}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"cloudiness":50,"humidity":1}`), &p))
}

func TestJSONNullKeepsValue(t *testing.T) {
	p := weather.New(weather.Cloudiness(42))
	require.NoError(t, json.Unmarshal([]byte("null"), &p))
	assert.Equal(t, float32(42), p.Cloudiness())

	var req weather.SetWeatherRequest
	require.NoError(t, json.Unmarshal([]byte(`{"weather":null}`), &req))
	assert.Nil(t, req.Weather)
}
