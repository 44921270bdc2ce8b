package weather

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/randengine"
)

const (
	maxWindIntensity = 100
)

// Manager 天气管理器
// 功能：维护仿真运行中的当前天气，供步进循环更新、供RPC读写
// 说明：base为不含风力扰动的天气，current为对外可见的天气；
// RPC处理与步进循环并发执行，所有读写都在mu保护下进行
type Manager struct {
	mu sync.RWMutex

	base    Parameters
	current Parameters
	preset  string // 最近一次应用的预设名，自定义天气时为空

	dynamic   *Dynamic
	windNoise float32
	generator *randengine.Engine
}

// NewManager 创建天气管理器
// 功能：根据配置确定初始天气，并按需开启动态天气和风力扰动
// 参数：c-天气配置，seed-随机数种子
// 返回：天气管理器，预设名或覆盖字段名不存在时返回错误
// 算法说明：
// 1. 查找初始预设（默认Default）
// 2. 按字段名依次应用overrides
// 3. 配置了dynamic时以初始天气创建动态天气
func NewManager(c config.Weather, seed uint64) (*Manager, error) {
	name := c.Preset
	if name == "" {
		name = config.DefaultPreset
	}
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	// map遍历无序，但各字段互不影响，结果与顺序无关
	for key, v := range c.Overrides {
		f, err := ParseField(key)
		if err != nil {
			return nil, fmt.Errorf("weather.overrides: %w", err)
		}
		p = p.With(f, v)
	}
	if len(c.Overrides) > 0 {
		name = ""
	}
	m := &Manager{
		base:      p,
		current:   p,
		preset:    name,
		windNoise: c.WindNoise,
		generator: randengine.New(seed),
	}
	if c.Dynamic != nil {
		m.dynamic = NewDynamic(p, c.Dynamic.Speed)
	}
	log.Infof("initial weather (preset=%q): %v", name, p)
	return m, nil
}

// Current 获取当前天气
func (m *Manager) Current() Parameters {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Preset 获取最近一次应用的预设名，自定义天气时为空
func (m *Manager) Preset() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.preset
}

// Set 设置自定义天气
// 说明：开启动态天气时，动态天气从新值重新开始
func (m *Manager) Set(p Parameters) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(p, "")
}

// SetPreset 设置预设天气
// 返回：预设名不存在时返回包装了ErrUnknownPreset的错误，当前天气不变
func (m *Manager) SetPreset(name string) error {
	_, err := m.applyPreset(name)
	return err
}

// applyPreset 设置预设天气并返回所设置的预设参数
func (m *Manager) applyPreset(name string) (Parameters, error) {
	p, err := Lookup(name)
	if err != nil {
		return Parameters{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(p, name)
	return p, nil
}

func (m *Manager) set(p Parameters, preset string) {
	m.base = p
	m.current = p
	m.preset = preset
	if m.dynamic != nil {
		m.dynamic.Reset(p)
	}
}

// Update 更新阶段，每步执行一次
// 功能：推进动态天气，并在基础风力上叠加扰动
// 参数：dt-时间步长（秒）
func (m *Manager) Update(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dynamic != nil {
		m.base = m.dynamic.Tick(dt)
		m.preset = ""
	}
	m.current = m.base
	if m.windNoise > 0 {
		noise := m.windNoise * float32(lo.Clamp(.5*m.generator.NormFloat64Safe(), -1, 1))
		m.current = m.base.WithWindIntensity(lo.Clamp(m.base.WindIntensity()+noise, 0, maxWindIntensity))
	}
}
