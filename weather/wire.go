package weather

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	ErrMalformedWire = errors.New("malformed weather parameters wire data")
)

// MarshalBinary 编码为protobuf线格式
// 功能：字段号1~14对应规范字段顺序，每个字段均以fixed32写出（即使为0）
// 说明：总是写出全部字段，解码端以默认值为基础，避免省略0值时与默认值冲突
func (p Parameters) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, NumFields*5)
	for i, v := range p.Values() {
		b = protowire.AppendTag(b, protowire.Number(i+1), protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(v))
	}
	return b, nil
}

// UnmarshalBinary 从protobuf线格式解码
// 功能：以默认值为基础覆盖出现的字段，未知字段号跳过
// 返回：数据截断或字段类型不符时返回包装了ErrMalformedWire的错误
func (p *Parameters) UnmarshalBinary(b []byte) error {
	values := New().Values()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedWire, protowire.ParseError(n))
		}
		b = b[n:]
		if num < 1 || int(num) > NumFields {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedWire, num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		if typ != protowire.Fixed32Type {
			return fmt.Errorf("%w: field %d has wire type %d", ErrMalformedWire, num, typ)
		}
		bits, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformedWire, num, protowire.ParseError(n))
		}
		b = b[n:]
		values[num-1] = math.Float32frombits(bits)
	}
	*p = FromValues(values)
	return nil
}

// parametersJSON JSON表示，字段顺序即规范顺序
type parametersJSON struct {
	Cloudiness              float32 `json:"cloudiness"`
	Precipitation           float32 `json:"precipitation"`
	PrecipitationDeposits   float32 `json:"precipitation_deposits"`
	WindIntensity           float32 `json:"wind_intensity"`
	SunAzimuthAngle         float32 `json:"sun_azimuth_angle"`
	SunAltitudeAngle        float32 `json:"sun_altitude_angle"`
	FogDensity              float32 `json:"fog_density"`
	FogDistance             float32 `json:"fog_distance"`
	FogFalloff              float32 `json:"fog_falloff"`
	Wetness                 float32 `json:"wetness"`
	ScatteringIntensity     float32 `json:"scattering_intensity"`
	MieScatteringScale      float32 `json:"mie_scattering_scale"`
	RayleighScatteringScale float32 `json:"rayleigh_scattering_scale"`
	DustStorm               float32 `json:"dust_storm"`
}

// MarshalJSON 编码为JSON对象，NaN与无穷值无法用JSON表示，会返回错误
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(parametersJSON{
		Cloudiness:              p.cloudiness,
		Precipitation:           p.precipitation,
		PrecipitationDeposits:   p.precipitationDeposits,
		WindIntensity:           p.windIntensity,
		SunAzimuthAngle:         p.sunAzimuthAngle,
		SunAltitudeAngle:        p.sunAltitudeAngle,
		FogDensity:              p.fogDensity,
		FogDistance:             p.fogDistance,
		FogFalloff:              p.fogFalloff,
		Wetness:                 p.wetness,
		ScatteringIntensity:     p.scatteringIntensity,
		MieScatteringScale:      p.mieScatteringScale,
		RayleighScatteringScale: p.rayleighScatteringScale,
		DustStorm:               p.dustStorm,
	})
}

// UnmarshalJSON 缺省的键取默认值，未定义的键（如拼写错误的字段名）返回错误；
// null不修改原值
func (p *Parameters) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}
	v := parametersJSON{RayleighScatteringScale: DefaultRayleighScatteringScale}
	if err := decodeStrict(b, &v); err != nil {
		return err
	}
	*p = Parameters{
		cloudiness:              v.Cloudiness,
		precipitation:           v.Precipitation,
		precipitationDeposits:   v.PrecipitationDeposits,
		windIntensity:           v.WindIntensity,
		sunAzimuthAngle:         v.SunAzimuthAngle,
		sunAltitudeAngle:        v.SunAltitudeAngle,
		fogDensity:              v.FogDensity,
		fogDistance:             v.FogDistance,
		fogFalloff:              v.FogFalloff,
		wetness:                 v.Wetness,
		scatteringIntensity:     v.ScatteringIntensity,
		mieScatteringScale:      v.MieScatteringScale,
		rayleighScatteringScale: v.RayleighScatteringScale,
		dustStorm:               v.DustStorm,
	}
	return nil
}
