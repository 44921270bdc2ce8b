// 随机数引擎，包装了golang.org/x/exp/rand，提供线程安全的常用随机数生成方法
package randengine

import (
	"flag"
	"sync"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 说明：基于golang.org/x/exp/rand，同一种子（含偏移量）产生同一序列
type Engine struct {
	*rand.Rand            // 底层随机数生成器
	mtx        sync.Mutex // 互斥锁，用于线程安全操作
}

// New 创建随机数引擎
// 参数：seed-随机数种子，实际种子为seed加上命令行指定的偏移量
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// NormFloat64Safe 生成标准正态分布随机数（线程安全）
func (e *Engine) NormFloat64Safe() float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.NormFloat64()
}
