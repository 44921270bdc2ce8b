package weather

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// Client 天气服务客户端
type Client struct {
	getWeather       *connect.Client[GetWeatherRequest, GetWeatherResponse]
	setWeather       *connect.Client[SetWeatherRequest, SetWeatherResponse]
	setWeatherPreset *connect.Client[SetWeatherPresetRequest, SetWeatherPresetResponse]
	listPresets      *connect.Client[ListPresetsRequest, ListPresetsResponse]
	getPreset        *connect.Client[GetPresetRequest, GetPresetResponse]
}

// NewClient 创建天气服务客户端
// 参数：httpClient-HTTP客户端，baseURL-服务地址（如http://localhost:51102），opts-客户端选项
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSONCodec()}, opts...)
	return &Client{
		getWeather:       connect.NewClient[GetWeatherRequest, GetWeatherResponse](httpClient, baseURL+GetWeatherProcedure, opts...),
		setWeather:       connect.NewClient[SetWeatherRequest, SetWeatherResponse](httpClient, baseURL+SetWeatherProcedure, opts...),
		setWeatherPreset: connect.NewClient[SetWeatherPresetRequest, SetWeatherPresetResponse](httpClient, baseURL+SetWeatherPresetProcedure, opts...),
		listPresets:      connect.NewClient[ListPresetsRequest, ListPresetsResponse](httpClient, baseURL+ListPresetsProcedure, opts...),
		getPreset:        connect.NewClient[GetPresetRequest, GetPresetResponse](httpClient, baseURL+GetPresetProcedure, opts...),
	}
}

func (c *Client) GetWeather(ctx context.Context) (*GetWeatherResponse, error) {
	res, err := c.getWeather.CallUnary(ctx, connect.NewRequest(&GetWeatherRequest{}))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c *Client) SetWeather(ctx context.Context, p Parameters) error {
	_, err := c.setWeather.CallUnary(ctx, connect.NewRequest(&SetWeatherRequest{Weather: &p}))
	return err
}

func (c *Client) SetWeatherPreset(ctx context.Context, name string) (Parameters, error) {
	res, err := c.setWeatherPreset.CallUnary(ctx, connect.NewRequest(&SetWeatherPresetRequest{Name: name}))
	if err != nil {
		return Parameters{}, err
	}
	return res.Msg.Weather, nil
}

func (c *Client) ListPresets(ctx context.Context) ([]PresetEntry, error) {
	res, err := c.listPresets.CallUnary(ctx, connect.NewRequest(&ListPresetsRequest{}))
	if err != nil {
		return nil, err
	}
	return res.Msg.Presets, nil
}

func (c *Client) GetPreset(ctx context.Context, name string) (Parameters, error) {
	res, err := c.getPreset.CallUnary(ctx, connect.NewRequest(&GetPresetRequest{Name: name}))
	if err != nil {
		return Parameters{}, err
	}
	return res.Msg.Weather, nil
}
