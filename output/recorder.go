package output

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
	"github.com/tsinghua-fib-lab/agentsociety-weather/weather"
)

// Record 一条天气快照
type Record struct {
	Step    int32              // 仿真步
	T       float64            // 仿真时间（秒）
	Preset  string             // 预设名，自定义天气时为空
	Weather weather.Parameters // 天气参数
}

// Recorder 天气快照记录器
type Recorder interface {
	Record(ctx context.Context, r Record) error
	Close() error
}

// Multi 将快照同时写入多个记录器
type Multi []Recorder

func (m Multi) Record(ctx context.Context, r Record) error {
	var errs []error
	for _, rec := range m {
		if err := rec.Record(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, rec := range m {
		if err := rec.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewRecorders 根据输出配置创建记录器
// 功能：按配置依次创建MongoDB、SQLite记录器
// 参数：c-输出配置，为空时返回不做任何记录的空集合
// 返回：记录器集合，任一记录器创建失败时关闭已创建的记录器并返回错误
func NewRecorders(ctx context.Context, c *config.Output) (Multi, error) {
	recs := Multi{}
	if c == nil {
		return recs, nil
	}
	if c.URI != "" {
		if c.Mongo == nil {
			return nil, fmt.Errorf("output.mongo must be specified when output.uri is set")
		}
		rec, err := NewMongoRecorder(ctx, c.URI, *c.Mongo)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if c.SQLite != "" {
		rec, err := NewSQLiteRecorder(c.SQLite)
		if err != nil {
			recs.Close()
			return nil, err
		}
		recs = append(recs, rec)
	}
	log.Infof("%d weather recorder(s) enabled", len(recs))
	return recs, nil
}
