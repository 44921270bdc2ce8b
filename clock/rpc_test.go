package clock_test

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	clockv1 "git.fiblab.net/sim/protos/v2/go/city/clock/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/agentsociety-weather/clock"
	"github.com/tsinghua-fib-lab/agentsociety-weather/utils/config"
)

func TestNow(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 10, Total: 5, Interval: 2})
	res, err := c.Now(context.Background(), connect.NewRequest(&clockv1.NowRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 20.0, res.Msg.T)

	c.Tick()
	res, err = c.Now(context.Background(), connect.NewRequest(&clockv1.NowRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 22.0, res.Msg.T)
}
