package weather

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"git.fiblab.net/sim/syncer/v3"
	"github.com/samber/lo"
)

const (
	WeatherServiceName = "city.weather.v1.WeatherService"

	GetWeatherProcedure       = "/" + WeatherServiceName + "/GetWeather"
	SetWeatherProcedure       = "/" + WeatherServiceName + "/SetWeather"
	SetWeatherPresetProcedure = "/" + WeatherServiceName + "/SetWeatherPreset"
	ListPresetsProcedure      = "/" + WeatherServiceName + "/ListPresets"
	GetPresetProcedure        = "/" + WeatherServiceName + "/GetPreset"
)

type GetWeatherRequest struct{}

type GetWeatherResponse struct {
	Weather Parameters `json:"weather"`
	Preset  string     `json:"preset,omitempty"` // 当前天气来自预设时为预设名
}

type SetWeatherRequest struct {
	Weather *Parameters `json:"weather"`
}

type SetWeatherResponse struct{}

type SetWeatherPresetRequest struct {
	Name string `json:"name"`
}

type SetWeatherPresetResponse struct {
	Weather Parameters `json:"weather"`
}

type ListPresetsRequest struct{}

type PresetEntry struct {
	Name    string     `json:"name"`
	Weather Parameters `json:"weather"`
}

type ListPresetsResponse struct {
	Presets []PresetEntry `json:"presets"`
}

type GetPresetRequest struct {
	Name string `json:"name"`
}

type GetPresetResponse struct {
	Weather Parameters `json:"weather"`
}

// Register 将天气管理器注册到sidecar
// 功能：注册天气服务的RPC处理器，使外部系统可以查询和修改天气
func (m *Manager) Register(sidecar *syncer.Sidecar) {
	sidecar.Register(WeatherServiceName, m.NewHandler)
}

// NewHandler 创建天气服务的HTTP处理器
// 参数：opts-Connect处理器选项
// 返回：服务路径前缀与处理器
func (m *Manager) NewHandler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(GetWeatherProcedure, connect.NewUnaryHandler(GetWeatherProcedure, m.GetWeather, opts...))
	mux.Handle(SetWeatherProcedure, connect.NewUnaryHandler(SetWeatherProcedure, m.SetWeather, opts...))
	mux.Handle(SetWeatherPresetProcedure, connect.NewUnaryHandler(SetWeatherPresetProcedure, m.SetWeatherPreset, opts...))
	mux.Handle(ListPresetsProcedure, connect.NewUnaryHandler(ListPresetsProcedure, m.ListPresets, opts...))
	mux.Handle(GetPresetProcedure, connect.NewUnaryHandler(GetPresetProcedure, m.GetPreset, opts...))
	return "/" + WeatherServiceName + "/", mux
}

// GetWeather 获取当前天气
func (m *Manager) GetWeather(
	ctx context.Context, in *connect.Request[GetWeatherRequest],
) (*connect.Response[GetWeatherResponse], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return connect.NewResponse(&GetWeatherResponse{
		Weather: m.current,
		Preset:  m.preset,
	}), nil
}

// SetWeather 设置自定义天气
// 说明：请求中缺省的字段取默认值，缺少weather或含未定义的键时返回InvalidArgument
func (m *Manager) SetWeather(
	ctx context.Context, in *connect.Request[SetWeatherRequest],
) (*connect.Response[SetWeatherResponse], error) {
	req := in.Msg
	if req.Weather == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("weather is required"))
	}
	m.Set(*req.Weather)
	log.Debugf("SetWeather: %v", *req.Weather)
	return connect.NewResponse(&SetWeatherResponse{}), nil
}

// SetWeatherPreset 设置预设天气
// 说明：预设名不存在时返回NotFound，不会回退到Default
func (m *Manager) SetWeatherPreset(
	ctx context.Context, in *connect.Request[SetWeatherPresetRequest],
) (*connect.Response[SetWeatherPresetResponse], error) {
	req := in.Msg
	p, err := m.applyPreset(req.Name)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	log.Debugf("SetWeatherPreset: %s", req.Name)
	// 返回预设本身，而非之后可能已被Update修改的当前天气
	return connect.NewResponse(&SetWeatherPresetResponse{Weather: p}), nil
}

// ListPresets 按展示顺序列出全部预设
func (m *Manager) ListPresets(
	ctx context.Context, in *connect.Request[ListPresetsRequest],
) (*connect.Response[ListPresetsResponse], error) {
	return connect.NewResponse(&ListPresetsResponse{
		Presets: lo.Map(Names(), func(name string, _ int) PresetEntry {
			return PresetEntry{Name: name, Weather: MustLookup(name)}
		}),
	}), nil
}

// GetPreset 获取单个预设
func (m *Manager) GetPreset(
	ctx context.Context, in *connect.Request[GetPresetRequest],
) (*connect.Response[GetPresetResponse], error) {
	p, err := Lookup(in.Msg.Name)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewResponse(&GetPresetResponse{Weather: p}), nil
}
