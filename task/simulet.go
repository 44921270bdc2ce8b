package task

import (
	"context"
	"flag"

	"github.com/tsinghua-fib-lab/agentsociety-weather/output"
)

const (
	SelfName = "weather" // 本程序在模拟任务集群中的名字
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段，每步执行一次
// 功能：推进时钟，定期输出心跳日志
func (ctx *Context) prepare() {
	ctx.clock.Tick()
	if ctx.clock.Step%int32(*heartBeatInterval) == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		log.Infof(
			"STEP: %d(%d:%d:%.2f) %v",
			ctx.clock.Step,
			hour, minute, second,
			ctx.weatherManager.Current(),
		)
	}
}

// update 更新阶段，每步执行一次
// 功能：更新天气，并按输出间隔记录快照
// 说明：记录失败只输出错误日志，不中断仿真
func (ctx *Context) update() {
	ctx.weatherManager.Update(ctx.clock.DT)

	out := ctx.runtimeConfig.All.Output
	if out == nil || (ctx.clock.Step-ctx.clock.StartStep)%out.Interval != 0 {
		return
	}
	rec := output.Record{
		Step:    ctx.clock.Step,
		T:       ctx.clock.T,
		Preset:  ctx.weatherManager.Preset(),
		Weather: ctx.weatherManager.Current(),
	}
	if err := ctx.recorder.Record(context.Background(), rec); err != nil {
		log.Errorf("step %d: record weather err: %v", ctx.clock.Step, err)
	}
}

// Run 运行
// 算法说明：
// 1. 初始化时钟并与syncer完成初始同步
// 2. 每步依次执行：准备 -> 通知准备完成 -> 更新 -> 与syncer同步
// 3. 到达结束步或收到关闭指令时退出
func (ctx *Context) Run() {
	ctx.clock.Init()
	log.Infof("job %s: steps [%d, %d), dt=%v", ctx.job, ctx.clock.StartStep, ctx.clock.EndStep, ctx.clock.DT)
	// init syncer
	ctx.sidecar.Step(false)
	for {
		ctx.prepare()
		log.Debugf("step %d: prepare complete and call NotifyStepReady", ctx.clock.Step)
		ctx.sidecar.NotifyStepReady()
		ctx.update()
		log.Debugf("step %d: update complete", ctx.clock.Step)
		close := ctx.sidecar.Step(ctx.clock.IsLastStep())
		if close || ctx.closed.Load() {
			break
		}
	}
	log.Infof("engine complete")
	ctx.Close()
}
