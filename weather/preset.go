package weather

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownPreset = errors.New("unknown weather preset")
)

// Preset 预设天气名称
type Preset string

const (
	PresetDefault         Preset = "Default"
	PresetClearNoon       Preset = "ClearNoon"
	PresetCloudyNoon      Preset = "CloudyNoon"
	PresetWetNoon         Preset = "WetNoon"
	PresetWetCloudyNoon   Preset = "WetCloudyNoon"
	PresetMidRainyNoon    Preset = "MidRainyNoon"
	PresetHardRainNoon    Preset = "HardRainNoon"
	PresetSoftRainNoon    Preset = "SoftRainNoon"
	PresetClearSunset     Preset = "ClearSunset"
	PresetCloudySunset    Preset = "CloudySunset"
	PresetWetSunset       Preset = "WetSunset"
	PresetWetCloudySunset Preset = "WetCloudySunset"
	PresetMidRainSunset   Preset = "MidRainSunset"
	PresetHardRainSunset  Preset = "HardRainSunset"
	PresetSoftRainSunset  Preset = "SoftRainSunset"
	PresetClearNight      Preset = "ClearNight"
	PresetCloudyNight     Preset = "CloudyNight"
	PresetWetNight        Preset = "WetNight"
	PresetWetCloudyNight  Preset = "WetCloudyNight"
	PresetSoftRainNight   Preset = "SoftRainNight"
	PresetMidRainyNight   Preset = "MidRainyNight"
	PresetHardRainNight   Preset = "HardRainNight"
	PresetDustStorm       Preset = "DustStorm"
)

// presetOrder 预设的展示顺序
var presetOrder = []Preset{
	PresetDefault,
	PresetClearNoon,
	PresetCloudyNoon,
	PresetWetNoon,
	PresetWetCloudyNoon,
	PresetMidRainyNoon,
	PresetHardRainNoon,
	PresetSoftRainNoon,
	PresetClearSunset,
	PresetCloudySunset,
	PresetWetSunset,
	PresetWetCloudySunset,
	PresetMidRainSunset,
	PresetHardRainSunset,
	PresetSoftRainSunset,
	PresetClearNight,
	PresetCloudyNight,
	PresetWetNight,
	PresetWetCloudyNight,
	PresetSoftRainNight,
	PresetMidRainyNight,
	PresetHardRainNight,
	PresetDustStorm,
}

var (
	registryOnce sync.Once
	registry     map[Preset]Parameters
)

// preset 按规范字段顺序列出一个预设的全部取值
// 列依次为：云量 降水 积水 风力 方位角 高度角 雾密度 雾距离 雾衰减 湿润度 散射强度 Mie Rayleigh 沙尘暴
func preset(v ...float32) Parameters {
	if len(v) != NumFields {
		log.Panicf("preset needs %d values, got %d", NumFields, len(v))
	}
	return FromValues([NumFields]float32(v))
}

// loadRegistry 构建预设表，仅执行一次，之后只读
func loadRegistry() {
	registry = map[Preset]Parameters{
		PresetDefault:         New(),
		PresetClearNoon:       preset(5, 0, 0, 10, -1, 45, 2, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetCloudyNoon:      preset(60, 0, 0, 10, -1, 45, 3, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetWetNoon:         preset(5, 0, 50, 10, -1, 45, 3, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetWetCloudyNoon:   preset(60, 0, 50, 10, -1, 45, 3, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetMidRainyNoon:    preset(60, 60, 60, 60, -1, 45, 3, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetHardRainNoon:    preset(100, 100, 90, 100, -1, 45, 7, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetSoftRainNoon:    preset(20, 30, 50, 30, -1, 45, 3, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetClearSunset:     preset(5, 0, 0, 10, -1, 15, 2, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetCloudySunset:    preset(60, 0, 0, 10, -1, 15, 3, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetWetSunset:       preset(5, 0, 50, 10, -1, 15, 2, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetWetCloudySunset: preset(60, 0, 50, 10, -1, 15, 2, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetMidRainSunset:   preset(60, 60, 60, 60, -1, 15, 2, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetHardRainSunset:  preset(100, 100, 90, 100, -1, 15, 7, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetSoftRainSunset:  preset(20, 30, 50, 30, -1, 15, 2, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetClearNight:      preset(5, 0, 0, 10, -1, -90, 60, 75, 1, 0, 1, 0.03, 0.0331, 0),
		PresetCloudyNight:     preset(60, 0, 0, 10, -1, -90, 60, 0.75, 0.1, 0, 1, 0.03, 0.0331, 0),
		PresetWetNight:        preset(5, 0, 50, 10, -1, -90, 60, 75, 1, 60, 1, 0.03, 0.0331, 0),
		PresetWetCloudyNight:  preset(60, 0, 50, 10, -1, -90, 60, 0.75, 0.1, 60, 1, 0.03, 0.0331, 0),
		PresetSoftRainNight:   preset(60, 30, 50, 30, -1, -90, 60, 0.75, 0.1, 60, 1, 0.03, 0.0331, 0),
		PresetMidRainyNight:   preset(80, 60, 60, 60, -1, -90, 60, 0.75, 0.1, 80, 1, 0.03, 0.0331, 0),
		PresetHardRainNight:   preset(100, 100, 90, 100, -1, -90, 100, 0.75, 0.1, 100, 1, 0.03, 0.0331, 0),
		PresetDustStorm:       preset(100, 0, 0, 100, -1, 45, 2, 0.75, 0.1, 0, 1, 0.03, 0.0331, 100),
	}
	if len(registry) != len(presetOrder) {
		log.Panicf("preset registry has %d entries, expected %d", len(registry), len(presetOrder))
	}
}

// Lookup 根据名称获取预设天气
// 功能：返回预设天气参数的副本，调用方修改不会影响预设表
// 参数：name-预设名称（大小写敏感）
// 返回：天气参数，名称不存在时返回包装了ErrUnknownPreset的错误
// 说明：不会把未知名称静默映射为Default，是否回退由调用方决定
func Lookup(name string) (Parameters, error) {
	registryOnce.Do(loadRegistry)
	if p, ok := registry[Preset(name)]; ok {
		return p, nil
	}
	return Parameters{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// MustLookup 根据名称获取预设天气，名称不存在时panic
func MustLookup(name string) Parameters {
	p, err := Lookup(name)
	if err != nil {
		log.Panicf("%v", err)
	}
	return p
}

// Parameters 获取该预设对应的天气参数副本
func (p Preset) Parameters() Parameters {
	return MustLookup(string(p))
}

// Names 获取全部预设名称
// 返回：按展示顺序排列的新切片，每次调用结果相同
func Names() []string {
	names := make([]string, len(presetOrder))
	for i, p := range presetOrder {
		names[i] = string(p)
	}
	return names
}
