package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerServer_RunsJobsUntilStopped(t *testing.T) {
	var ticks, failures atomic.Int64
	jobs := []Job{
		{Name: "tick", Interval: 5 * time.Millisecond, Run: func(context.Context) (int64, error) {
			ticks.Add(1)

			return 1, nil
		}},
		{Name: "broken", Interval: 5 * time.Millisecond, Run: func(context.Context) (int64, error) {
			failures.Add(1)

			return 0, errors.New("store unavailable")
		}},
		{Name: "disabled", Interval: 0, Run: func(context.Context) (int64, error) {
			t.Error("disabled job must not run")

			return 0, nil
		}},
	}

	srv := newWorkerServer(slog.New(slog.NewTextHandler(io.Discard, nil)), jobs)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 && failures.Load() >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, srv.stop(context.Background()))
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}

	stoppedAt := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stoppedAt, ticks.Load())
}
