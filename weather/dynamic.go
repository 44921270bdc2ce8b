package weather

import (
	"math"

	"github.com/samber/lo"
)

const (
	stormMinT = -250.0
	stormMaxT = 100.0
)

// Sun 太阳运动
// 功能：方位角匀速转动，高度角按正弦曲线在[-90, 50]之间往复
type Sun struct {
	Azimuth  float64 // 方位角（度）
	Altitude float64 // 高度角（度）

	t float64
}

// NewSun 以当前方位角和高度角创建太阳
func NewSun(azimuth, altitude float64) *Sun {
	return &Sun{Azimuth: azimuth, Altitude: altitude}
}

// Tick 推进dt秒
func (s *Sun) Tick(dt float64) {
	s.t = math.Mod(s.t+0.008*dt, 2*math.Pi)
	s.Azimuth = math.Mod(s.Azimuth+0.25*dt, 360)
	if s.Azimuth < 0 {
		s.Azimuth += 360
	}
	s.Altitude = 70*math.Sin(s.t) - 20
}

// Storm 风暴循环
// 功能：内部进度t在[-250, 100]之间往返，云量、降水、积水、湿润度、风力、雾均由t推导
// 说明：t上升阶段积水滞后于降水出现，下降阶段积水滞后于降水消退
type Storm struct {
	Clouds  float64
	Rain    float64
	Puddles float64
	Wetness float64
	Wind    float64
	Fog     float64

	t          float64
	increasing bool
}

// NewStorm 创建风暴
// 参数：precipitation-当前降水量，作为初始进度；不大于0时从-50开始
func NewStorm(precipitation float64) *Storm {
	t := precipitation
	if t <= 0 {
		t = -50
	}
	return &Storm{t: t, increasing: true}
}

// Tick 推进dt秒
// 算法说明：
// 1. 按方向以1.3/秒推进t并限制在[-250, 100]
// 2. 由t计算各项天气分量
// 3. 到达边界时反转方向
func (s *Storm) Tick(dt float64) {
	delta := 1.3 * dt
	if !s.increasing {
		delta = -delta
	}
	s.t = lo.Clamp(s.t+delta, stormMinT, stormMaxT)
	s.Clouds = lo.Clamp(s.t+40, 0, 90)
	s.Rain = lo.Clamp(s.t, 0, 80)
	delay := 90.0
	if s.increasing {
		delay = -10
	}
	s.Puddles = lo.Clamp(s.t+delay, 0, 85)
	s.Wetness = lo.Clamp(s.t*5, 0, 100)
	switch {
	case s.Clouds <= 20:
		s.Wind = 5
	case s.Clouds >= 70:
		s.Wind = 90
	default:
		s.Wind = 40
	}
	s.Fog = lo.Clamp(s.t-10, 0, 30)
	if s.t == stormMinT {
		s.increasing = true
	}
	if s.t == stormMaxT {
		s.increasing = false
	}
}

// Dynamic 动态天气
// 功能：以太阳运动和风暴循环驱动天气变化，其余字段保持初始值
type Dynamic struct {
	weather Parameters
	speed   float64
	sun     *Sun
	storm   *Storm
}

// NewDynamic 创建动态天气
// 参数：initial-初始天气，speed-时间倍率（不大于0时取1）
func NewDynamic(initial Parameters, speed float64) *Dynamic {
	if speed <= 0 {
		speed = 1
	}
	return &Dynamic{
		weather: initial,
		speed:   speed,
		sun:     NewSun(float64(initial.SunAzimuthAngle()), float64(initial.SunAltitudeAngle())),
		storm:   NewStorm(float64(initial.Precipitation())),
	}
}

// Tick 推进dt秒（按倍率缩放）并返回新的天气
func (d *Dynamic) Tick(dt float64) Parameters {
	dt *= d.speed
	d.sun.Tick(dt)
	d.storm.Tick(dt)
	d.weather = d.weather.
		WithCloudiness(float32(d.storm.Clouds)).
		WithPrecipitation(float32(d.storm.Rain)).
		WithPrecipitationDeposits(float32(d.storm.Puddles)).
		WithWindIntensity(float32(d.storm.Wind)).
		WithFogDensity(float32(d.storm.Fog)).
		WithWetness(float32(d.storm.Wetness)).
		WithSunAzimuthAngle(float32(d.sun.Azimuth)).
		WithSunAltitudeAngle(float32(d.sun.Altitude))
	return d.weather
}

// Reset 以新的天气重新开始
func (d *Dynamic) Reset(p Parameters) {
	*d = *NewDynamic(p, d.speed)
}
