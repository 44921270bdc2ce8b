package config

// OutputPath 指定MongoDB输出位置的配置项
type OutputPath struct {
	DB  string `yaml:"db"`  // 数据库名
	Col string `yaml:"col"` // 集合名
}

// GetDb 获取数据库名
func (p OutputPath) GetDb() string {
	return p.DB
}

// GetColl 获取集合名
func (p OutputPath) GetColl() string {
	return p.Col
}

// Output 天气快照输出配置
// 功能：定义天气快照的记录间隔与输出目标
// 说明：MongoDB与SQLite可同时启用，均未配置时不记录
type Output struct {
	Interval int32       `yaml:"interval,omitempty"` // 记录间隔步数，默认每步记录
	URI      string      `yaml:"uri,omitempty"`      // MongoDB连接字符串，为空则不输出到MongoDB
	Mongo    *OutputPath `yaml:"mongo,omitempty"`    // MongoDB集合
	SQLite   string      `yaml:"sqlite,omitempty"`   // SQLite文件路径，为空则不输出到SQLite
}

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
	Seed uint64      `yaml:"seed,omitempty"` // 随机数种子
}

// Dynamic 动态天气配置
type Dynamic struct {
	Speed float64 `yaml:"speed,omitempty"` // 时间倍率，默认1
}

// Weather 天气配置
// 功能：定义初始天气及其运行时变化方式
// 说明：先取预设，再按字段名覆盖；overrides的键为snake_case字段名，如fog_density
type Weather struct {
	Preset    string             `yaml:"preset,omitempty"`     // 初始预设名，默认Default
	Overrides map[string]float32 `yaml:"overrides,omitempty"`  // 字段覆盖
	Dynamic   *Dynamic           `yaml:"dynamic,omitempty"`    // 动态天气，为空则天气只随RPC改变
	WindNoise float32            `yaml:"wind_noise,omitempty"` // 风力高斯扰动幅度，0表示关闭
}

// Config YAML配置文件的根结构
type Config struct {
	Control Control `yaml:"control"`          // 模拟过程控制
	Weather Weather `yaml:"weather"`          // 天气
	Output  *Output `yaml:"output,omitempty"` // 输出
}
