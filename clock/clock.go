package clock

import (
	"fmt"

	"git.fiblab.net/sim/protos/v2/go/city/clock/v1/clockv1connect"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
)

// Clock 仿真时钟
// 功能：按固定步长推进仿真时间，模拟区间为[StartStep, EndStep)
type Clock struct {
	clockv1connect.UnimplementedClockServiceHandler

	DT        float64 // 每步时间间隔（秒）
	StartStep int32   // 起始步
	EndStep   int32   // 结束步

	Step int32   // 当前步
	T    float64 // 当前时间（秒）
}

// New 根据配置创建时钟
func New(stepConfig config.ControlStep) *Clock {
	c := &Clock{
		DT:        stepConfig.Interval,
		StartStep: stepConfig.Start,
		EndStep:   stepConfig.Start + stepConfig.Total,
	}
	c.Init()
	return c
}

// Init 回到起始步
func (c *Clock) Init() {
	c.Step = c.StartStep
	c.T = float64(c.Step) * c.DT
}

// Tick 推进一步
func (c *Clock) Tick() {
	c.Step++
	c.T = float64(c.Step) * c.DT
}

// IsLastStep 当前步是否为模拟区间的最后一步
func (c *Clock) IsLastStep() bool {
	return c.Step+1 >= c.EndStep
}

// String 当前时间，格式为HH:MM:SS
func (c *Clock) String() string {
	hour, minute, second := c.GetHourMinuteSecond()
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, int(second))
}

// GetHourMinuteSecond 获取当前时间的小时、分钟、秒（秒保留小数部分）
func (c *Clock) GetHourMinuteSecond() (int, int, float64) {
	hour := int(c.T) / 3600
	minute := int(c.T) % 3600 / 60
	second := c.T - float64(hour*3600+minute*60)
	return hour, minute, second
}
