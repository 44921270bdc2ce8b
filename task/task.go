package task

import (
	"context"
	"fmt"
	"sync/atomic"

	"git.fiblab.net/sim/syncer/v3"
	"github.com/tsinghua-fib-lab/agentsociety-weather/clock"
	"github.com/tsinghua-fib-lab/agentsociety-weather/output"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
	"github.com/tsinghua-fib-lab/agentsociety-weather/weather"
)

// Context 天气仿真任务上下文
// 功能：包含一次仿真任务的时钟、天气管理器、快照记录器与sidecar
type Context struct {
	// 任务名
	job string
	// 关闭指令
	closed atomic.Bool

	// 时钟
	clock *clock.Clock

	// 辅助程序，处理分布式模式下与syncer、其他服务的交互
	sidecar *syncer.Sidecar
	// sidecar close channel
	sidecarCloseCh chan struct{}
	// 是否由本上下文启动了sidecar服务
	serving bool

	// 运行时配置
	runtimeConfig *config.RuntimeConfig
	// 天气管理器
	weatherManager *weather.Manager
	// 天气快照记录器
	recorder output.Recorder
}

// NewContext 创建新的天气仿真任务上下文
// 功能：初始化时钟、天气管理器、记录器，并将RPC服务注册到sidecar
// 参数：
//   - job: 任务名称
//   - c: 配置对象
//   - sidecar: sidecar实例
//   - startSidecarServe: 是否启动sidecar服务
//
// 返回：初始化完成的Context实例，配置不合法或记录器创建失败时返回错误
func NewContext(
	job string,
	c config.Config,
	sidecar *syncer.Sidecar,
	startSidecarServe bool,
) (*Context, error) {
	rc, err := config.NewRuntimeConfig(c)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		job:            job,
		sidecar:        sidecar,
		sidecarCloseCh: make(chan struct{}),
		runtimeConfig:  rc,
	}
	ctx.clock = clock.New(rc.C.Step)

	ctx.weatherManager, err = weather.NewManager(rc.All.Weather, rc.C.Seed)
	if err != nil {
		return nil, fmt.Errorf("weather init err: %w", err)
	}
	ctx.recorder, err = output.NewRecorders(context.Background(), rc.All.Output)
	if err != nil {
		return nil, fmt.Errorf("output init err: %w", err)
	}

	ctx.clock.Register(ctx.sidecar)
	ctx.weatherManager.Register(ctx.sidecar)

	// sidecar协程，用于提供RPC服务
	if startSidecarServe {
		ctx.serving = true
		go func() {
			err := ctx.sidecar.Serve()
			if err != nil {
				log.Panicf("failed to serve: %v", err)
			}
			ctx.sidecarCloseCh <- struct{}{}
		}()
	}

	return ctx, nil
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) WeatherManager() *weather.Manager {
	return ctx.weatherManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Close() {
	if ctx.closed.Load() {
		return
	}
	ctx.closed.Store(true)
	if err := ctx.recorder.Close(); err != nil {
		log.Errorf("close recorder err: %v", err)
	}
	ctx.sidecar.Close()
	if ctx.serving {
		// wait for graceful stop
		<-ctx.sidecarCloseCh
	}
}
