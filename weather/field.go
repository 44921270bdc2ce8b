package weather

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField = errors.New("unknown weather field")
)

// Field 天气参数字段，取值顺序即规范字段顺序，所有派生格式（字符串、线格式、记录）均按此顺序
type Field int

const (
	FieldCloudiness Field = iota
	FieldPrecipitation
	FieldPrecipitationDeposits
	FieldWindIntensity
	FieldSunAzimuthAngle
	FieldSunAltitudeAngle
	FieldFogDensity
	FieldFogDistance
	FieldFogFalloff
	FieldWetness
	FieldScatteringIntensity
	FieldMieScatteringScale
	FieldRayleighScatteringScale
	FieldDustStorm

	NumFields = int(FieldDustStorm) + 1
)

// Fields 按规范顺序排列的全部字段
var Fields = [NumFields]Field{
	FieldCloudiness,
	FieldPrecipitation,
	FieldPrecipitationDeposits,
	FieldWindIntensity,
	FieldSunAzimuthAngle,
	FieldSunAltitudeAngle,
	FieldFogDensity,
	FieldFogDistance,
	FieldFogFalloff,
	FieldWetness,
	FieldScatteringIntensity,
	FieldMieScatteringScale,
	FieldRayleighScatteringScale,
	FieldDustStorm,
}

var fieldNames = [NumFields]string{
	"cloudiness",
	"precipitation",
	"precipitation_deposits",
	"wind_intensity",
	"sun_azimuth_angle",
	"sun_altitude_angle",
	"fog_density",
	"fog_distance",
	"fog_falloff",
	"wetness",
	"scattering_intensity",
	"mie_scattering_scale",
	"rayleigh_scattering_scale",
	"dust_storm",
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, NumFields)
	for _, f := range Fields {
		m[fieldNames[f]] = f
	}
	return m
}()

// Valid 是否为14个字段之一
func (f Field) Valid() bool {
	return f >= 0 && int(f) < NumFields
}

// String 字段的snake_case名称
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField 根据snake_case名称查找字段
// 返回：字段，名称不存在时返回包装了ErrUnknownField的错误
func ParseField(name string) (Field, error) {
	if f, ok := fieldsByName[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Get 按字段读取，f不合法时panic
func (p Parameters) Get(f Field) float32 {
	mustValid(f)
	return p.Values()[f]
}

// With 按字段写入，返回修改后的副本，f不合法时panic
func (p Parameters) With(f Field, v float32) Parameters {
	mustValid(f)
	values := p.Values()
	values[f] = v
	return FromValues(values)
}

func mustValid(f Field) {
	if !f.Valid() {
		log.Panicf("%v: %v", ErrUnknownField, f)
	}
}

// Values 按规范顺序导出全部字段值
func (p Parameters) Values() [NumFields]float32 {
	return [NumFields]float32{
		p.cloudiness,
		p.precipitation,
		p.precipitationDeposits,
		p.windIntensity,
		p.sunAzimuthAngle,
		p.sunAltitudeAngle,
		p.fogDensity,
		p.fogDistance,
		p.fogFalloff,
		p.wetness,
		p.scatteringIntensity,
		p.mieScatteringScale,
		p.rayleighScatteringScale,
		p.dustStorm,
	}
}

// FromValues 按规范顺序由全部字段值构造天气参数，是Values的逆操作
func FromValues(v [NumFields]float32) Parameters {
	return Parameters{
		cloudiness:              v[FieldCloudiness],
		precipitation:           v[FieldPrecipitation],
		precipitationDeposits:   v[FieldPrecipitationDeposits],
		windIntensity:           v[FieldWindIntensity],
		sunAzimuthAngle:         v[FieldSunAzimuthAngle],
		sunAltitudeAngle:        v[FieldSunAltitudeAngle],
		fogDensity:              v[FieldFogDensity],
		fogDistance:             v[FieldFogDistance],
		fogFalloff:              v[FieldFogFalloff],
		wetness:                 v[FieldWetness],
		scatteringIntensity:     v[FieldScatteringIntensity],
		mieScatteringScale:      v[FieldMieScatteringScale],
		rayleighScatteringScale: v[FieldRayleighScatteringScale],
		dustStorm:               v[FieldDustStorm],
	}
}
