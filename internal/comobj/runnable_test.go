package comobj

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRunnable(t *testing.T) {
	assert := assert.New(t)

	var r DefaultRunnable
	assert.False(r.IsRunning())
	assert.Nil(r.StartTime())
	assert.Zero(r.Uptime())

	r.SetIsRunning(true)
	assert.True(r.IsRunning())
	started := r.StartTime()
	if assert.NotNil(started) {
		assert.WithinDuration(time.Now(), *started, time.Second)
	}

	r.SetIsRunning(true)
	assert.Equal(*started, *r.StartTime(), "a second start does not reset the start time")

	r.SetIsRunning(false)
	assert.False(r.IsRunning())
	assert.NotNil(r.StartTime())
}
