package output

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tsinghua-fib-lab/agentsociety-weather/weather"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRecorder 将天气快照写入SQLite文件
// 说明：data列为天气参数的protobuf线格式，text列为可读的字符串表示；
// 同一步重复记录时覆盖旧值
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder 打开（不存在则创建）SQLite文件并建表
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS weather (
			step INTEGER PRIMARY KEY,
			t REAL NOT NULL,
			preset TEXT NOT NULL,
			text TEXT NOT NULL,
			data BLOB NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Infof("record weather to sqlite %s", dbPath)
	return &SQLiteRecorder{db: db}, nil
}

func (r *SQLiteRecorder) Record(ctx context.Context, rec Record) error {
	data, err := rec.Weather.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO weather (step, t, preset, text, data) VALUES (?, ?, ?, ?, ?)",
		rec.Step, rec.T, rec.Preset, rec.Weather.String(), data,
	)
	if err != nil {
		return fmt.Errorf("sqlite insert step %d err: %w", rec.Step, err)
	}
	return nil
}

// Get 读取指定步的快照
// 返回：不存在时返回包装了sql.ErrNoRows的错误
func (r *SQLiteRecorder) Get(ctx context.Context, step int32) (Record, error) {
	rec := Record{Step: step}
	var data []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT t, preset, data FROM weather WHERE step = ?", step,
	).Scan(&rec.T, &rec.Preset, &data)
	if err != nil {
		return Record{}, fmt.Errorf("sqlite get step %d err: %w", step, err)
	}
	var p weather.Parameters
	if err := p.UnmarshalBinary(data); err != nil {
		return Record{}, err
	}
	rec.Weather = p
	return rec, nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
