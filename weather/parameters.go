package weather

import (
	"math"
	"strconv"
	"strings"
)

// DefaultRayleighScatteringScale 瑞利散射尺度的默认值，其余字段默认均为0
const DefaultRayleighScatteringScale float32 = 0.0331

// Parameters 天气参数
// 功能：描述一个完整的天气状态，共14个float32字段，字段顺序固定（见Fields）
// 说明：值类型，构造后不可修改，With系列方法返回修改后的副本；
// 所有字段均不做取值范围检查，超出物理意义的值由调用方负责
type Parameters struct {
	cloudiness              float32 // 云量
	precipitation           float32 // 降水量
	precipitationDeposits   float32 // 降水沉积（积水）
	windIntensity           float32 // 风力强度
	sunAzimuthAngle         float32 // 太阳方位角（度）
	sunAltitudeAngle        float32 // 太阳高度角（度）
	fogDensity              float32 // 雾密度
	fogDistance             float32 // 雾起始距离
	fogFalloff              float32 // 雾衰减
	wetness                 float32 // 湿润度
	scatteringIntensity     float32 // 散射强度
	mieScatteringScale      float32 // Mie散射尺度
	rayleighScatteringScale float32 // Rayleigh散射尺度
	dustStorm               float32 // 沙尘暴强度
}

// Option 构造Parameters时的可选项
type Option func(*Parameters)

// New 创建天气参数
// 功能：以默认值为基础，依次应用所有选项
// 参数：opts-字段选项，未指定的字段保持默认值
// 返回：所有14个字段均已赋值的天气参数
func New(opts ...Option) Parameters {
	p := Parameters{rayleighScatteringScale: DefaultRayleighScatteringScale}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func Cloudiness(v float32) Option            { return func(p *Parameters) { p.cloudiness = v } }
func Precipitation(v float32) Option         { return func(p *Parameters) { p.precipitation = v } }
func PrecipitationDeposits(v float32) Option { return func(p *Parameters) { p.precipitationDeposits = v } }
func WindIntensity(v float32) Option         { return func(p *Parameters) { p.windIntensity = v } }
func SunAzimuthAngle(v float32) Option       { return func(p *Parameters) { p.sunAzimuthAngle = v } }
func SunAltitudeAngle(v float32) Option      { return func(p *Parameters) { p.sunAltitudeAngle = v } }
func FogDensity(v float32) Option            { return func(p *Parameters) { p.fogDensity = v } }
func FogDistance(v float32) Option           { return func(p *Parameters) { p.fogDistance = v } }
func FogFalloff(v float32) Option            { return func(p *Parameters) { p.fogFalloff = v } }
func Wetness(v float32) Option               { return func(p *Parameters) { p.wetness = v } }
func ScatteringIntensity(v float32) Option   { return func(p *Parameters) { p.scatteringIntensity = v } }
func MieScatteringScale(v float32) Option    { return func(p *Parameters) { p.mieScatteringScale = v } }
func RayleighScatteringScale(v float32) Option {
	return func(p *Parameters) { p.rayleighScatteringScale = v }
}
func DustStorm(v float32) Option { return func(p *Parameters) { p.dustStorm = v } }

func (p Parameters) Cloudiness() float32              { return p.cloudiness }
func (p Parameters) Precipitation() float32           { return p.precipitation }
func (p Parameters) PrecipitationDeposits() float32   { return p.precipitationDeposits }
func (p Parameters) WindIntensity() float32           { return p.windIntensity }
func (p Parameters) SunAzimuthAngle() float32         { return p.sunAzimuthAngle }
func (p Parameters) SunAltitudeAngle() float32        { return p.sunAltitudeAngle }
func (p Parameters) FogDensity() float32              { return p.fogDensity }
func (p Parameters) FogDistance() float32             { return p.fogDistance }
func (p Parameters) FogFalloff() float32              { return p.fogFalloff }
func (p Parameters) Wetness() float32                 { return p.wetness }
func (p Parameters) ScatteringIntensity() float32     { return p.scatteringIntensity }
func (p Parameters) MieScatteringScale() float32      { return p.mieScatteringScale }
func (p Parameters) RayleighScatteringScale() float32 { return p.rayleighScatteringScale }
func (p Parameters) DustStorm() float32               { return p.dustStorm }

// With系列：返回修改单个字段后的副本，原值不变

func (p Parameters) WithCloudiness(v float32) Parameters {
	p.cloudiness = v
	return p
}

func (p Parameters) WithPrecipitation(v float32) Parameters {
	p.precipitation = v
	return p
}

func (p Parameters) WithPrecipitationDeposits(v float32) Parameters {
	p.precipitationDeposits = v
	return p
}

func (p Parameters) WithWindIntensity(v float32) Parameters {
	p.windIntensity = v
	return p
}

func (p Parameters) WithSunAzimuthAngle(v float32) Parameters {
	p.sunAzimuthAngle = v
	return p
}

func (p Parameters) WithSunAltitudeAngle(v float32) Parameters {
	p.sunAltitudeAngle = v
	return p
}

func (p Parameters) WithFogDensity(v float32) Parameters {
	p.fogDensity = v
	return p
}

func (p Parameters) WithFogDistance(v float32) Parameters {
	p.fogDistance = v
	return p
}

func (p Parameters) WithFogFalloff(v float32) Parameters {
	p.fogFalloff = v
	return p
}

func (p Parameters) WithWetness(v float32) Parameters {
	p.wetness = v
	return p
}

func (p Parameters) WithScatteringIntensity(v float32) Parameters {
	p.scatteringIntensity = v
	return p
}

func (p Parameters) WithMieScatteringScale(v float32) Parameters {
	p.mieScatteringScale = v
	return p
}

func (p Parameters) WithRayleighScatteringScale(v float32) Parameters {
	p.rayleighScatteringScale = v
	return p
}

func (p Parameters) WithDustStorm(v float32) Parameters {
	p.dustStorm = v
	return p
}

// Equal 判断两组天气参数是否相等
// 功能：按字段顺序逐个比较，使用普通浮点相等（无容差，NaN不等于自身）
func (p Parameters) Equal(other Parameters) bool {
	return p == other
}

// NotEqual Equal的取反
func (p Parameters) NotEqual(other Parameters) bool {
	return !p.Equal(other)
}

// String 获取天气参数的字符串表示
// 功能：按固定字段顺序格式化为 WeatherParameters(cloudiness=..., ..., dust_storm=...)
// 说明：数值采用定点六位小数（如50.000000），与区域设置无关，同一输入总是得到同一输出；
// NaN与无穷值写作nan、inf、-inf
func (p Parameters) String() string {
	var b strings.Builder
	b.WriteString("WeatherParameters(")
	values := p.Values()
	for i, f := range Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
		b.WriteByte('=')
		b.WriteString(formatValue(values[i]))
	}
	b.WriteByte(')')
	return b.String()
}

func formatValue(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		if math.Signbit(f) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 6, 32)
}
