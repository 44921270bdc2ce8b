package output

import (
	"context"
	"fmt"

	"git.fiblab.net/general/common/v2/mongoutil"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
	"github.com/tsinghua-fib-lab/agentsociety-weather/weather"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRecorder 将天气快照写入MongoDB集合，每条快照一个文档
type MongoRecorder struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoRecorder 连接MongoDB并创建记录器
// 参数：uri-MongoDB连接字符串，path-目标数据库与集合
func NewMongoRecorder(ctx context.Context, uri string, path config.OutputPath) (*MongoRecorder, error) {
	client := mongoutil.NewClient(uri)
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping err: %w", err)
	}
	log.Infof("record weather to mongo %s.%s", path.GetDb(), path.GetColl())
	return &MongoRecorder{
		client: client,
		coll:   mongoutil.GetMongoColl(client, path),
	}, nil
}

func (r *MongoRecorder) Record(ctx context.Context, rec Record) error {
	if _, err := r.coll.InsertOne(ctx, newWeatherDoc(rec)); err != nil {
		return fmt.Errorf("mongo insert step %d err: %w", rec.Step, err)
	}
	return nil
}

func (r *MongoRecorder) Close() error {
	return r.client.Disconnect(context.Background())
}

type weatherDoc struct {
	Step    int32   `bson:"step"`
	T       float64 `bson:"t"`
	Preset  string  `bson:"preset,omitempty"`
	Weather bson.D  `bson:"weather"`
}

// newWeatherDoc 构造快照文档，weather子文档按规范字段顺序排列
func newWeatherDoc(rec Record) weatherDoc {
	values := rec.Weather.Values()
	fields := make(bson.D, 0, weather.NumFields)
	for i, f := range weather.Fields {
		fields = append(fields, bson.E{Key: f.String(), Value: values[i]})
	}
	return weatherDoc{
		Step:    rec.Step,
		T:       rec.T,
		Preset:  rec.Preset,
		Weather: fields,
	}
}
