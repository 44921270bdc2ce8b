package weather

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"connectrpc.com/connect"
)

// jsonCodec 基于encoding/json的Connect编解码器
// 说明：天气服务的消息是普通Go结构体而非protobuf消息，
// 以同名"json"覆盖Connect默认的protojson编解码器；
// 与protojson一致，解码时拒绝未定义的键
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return decodeStrict(data, msg)
}

// decodeStrict 解码单个JSON值，出现未定义的键或多余数据时返回错误
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("json: unexpected data after top-level value")
	}
	return nil
}

// WithJSONCodec 天气服务客户端需要使用的选项
func WithJSONCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
