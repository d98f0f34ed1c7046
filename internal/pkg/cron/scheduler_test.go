package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobImmediately(t *testing.T) {
	var runs atomic.Int32

	s := NewScheduler()
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSchedulerStopWaitsForJobs(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool

	s := NewScheduler()
	s.AddJob("slow", time.Hour, func(ctx context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	})
	s.Start()

	<-started
	s.Stop()
	assert.True(t, finished.Load())
}
