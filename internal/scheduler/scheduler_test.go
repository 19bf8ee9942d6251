package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"content_fetcher/internal/domain"
)

type fakeRunner struct {
	runs atomic.Int32
	err  error
}

func (r *fakeRunner) Run(ctx context.Context) (*domain.FetchStats, error) {
	r.runs.Add(1)
	return &domain.FetchStats{}, r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStartRunsImmediately(t *testing.T) {
	runner := &fakeRunner{}
	s := NewScheduler(runner, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return runner.runs.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestStartRunsOnInterval(t *testing.T) {
	runner := &fakeRunner{}
	s := NewScheduler(runner, 20*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return runner.runs.Load() >= 3
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestStartKeepsGoingAfterRunFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("transient")}
	s := NewScheduler(runner, 20*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return runner.runs.Load() >= 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
