package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 0
}

func TestNewCronScheduler(t *testing.T) {
	sweeper := &countingSweeper{}

	scheduler := NewCronScheduler(sweeper)

	assert.NotNil(t, scheduler.cron)
	assert.Equal(t, sweeper, scheduler.sweeper)
}

func TestCronScheduler_Start_Success(t *testing.T) {
	scheduler := NewCronScheduler(&countingSweeper{})

	err := scheduler.Start("@every 1h")

	assert.NoError(t, err)
	assert.Len(t, scheduler.Entries(), 1)
	scheduler.Stop()
}

func TestCronScheduler_Start_InvalidSchedule(t *testing.T) {
	scheduler := NewCronScheduler(&countingSweeper{})

	err := scheduler.Start("invalid cron expression")

	assert.Error(t, err)
	assert.Empty(t, scheduler.Entries())
}

func TestCronScheduler_RunsSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	scheduler := NewCronScheduler(sweeper)

	assert.NoError(t, scheduler.Start("@every 1s"))
	defer scheduler.Stop()

	assert.Eventually(t, func() bool {
		return sweeper.calls.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}
