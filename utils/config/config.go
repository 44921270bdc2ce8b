package config

import (
	"encoding/base64"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const DefaultPreset = "Default"

// RuntimeConfig 运行时配置
// 功能：存储补全默认值后的配置
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：补全默认值并检查配置
// 参数：config-原始配置对象
// 返回：运行时配置指针，配置不合法时返回错误
// 算法说明：
// 1. 检查步长与总步数
// 2. 未指定预设时使用Default
// 3. 未指定输出间隔时每步输出
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	if config.Control.Step.Interval <= 0 {
		return nil, fmt.Errorf("control.step.interval must be positive, got %v", config.Control.Step.Interval)
	}
	if config.Control.Step.Total <= 0 {
		return nil, fmt.Errorf("control.step.total must be positive, got %v", config.Control.Step.Total)
	}
	if config.Weather.Preset == "" {
		config.Weather.Preset = DefaultPreset
	}
	if config.Output != nil {
		output := *config.Output
		if output.Interval <= 0 {
			output.Interval = 1
		}
		if output.URI != "" && output.Mongo == nil {
			return nil, fmt.Errorf("output.mongo must be specified when output.uri is set")
		}
		config.Output = &output
	}
	return &RuntimeConfig{
		All: config,
		C:   config.Control,
	}, nil
}

// Parse 解析YAML配置，不允许出现未定义的键
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load 读取配置
// 功能：从文件路径或Base64编码的数据中读取配置，文件路径优先
// 参数：path-配置文件路径，data-配置文件Base64编码后的数据
func Load(path string, data string) (Config, error) {
	var file []byte
	var err error
	if path != "" {
		file, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config file load err: %w", err)
		}
	} else if data != "" {
		file, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return Config{}, fmt.Errorf("config data load err: %w", err)
		}
	} else {
		return Config{}, fmt.Errorf("config file or config data must be specified")
	}
	return Parse(file)
}
