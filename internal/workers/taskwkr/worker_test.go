package taskwkr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishtally/backend/internal/model"
)

func TestSubmitRejectsWhileBusy(t *testing.T) {
	w := New()

	release := make(chan struct{})
	taskID, done, err := w.Submit("first", func(ctx context.Context, progress model.ProgressFunc) error {
		progress("working", 0.5)
		<-release
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, taskID)

	require.Eventually(t, func() bool {
		return w.Status().Message == "working"
	}, time.Second, time.Millisecond)

	status := w.Status()
	assert.Equal(t, "running", status.State)
	assert.Equal(t, taskID, status.TaskID)
	assert.Equal(t, "first", status.Task)
	assert.Equal(t, 0.5, status.Progress)

	_, _, err = w.Submit("second", func(ctx context.Context, progress model.ProgressFunc) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, "idle", w.Status().State)

	// The slot frees up again.
	_, done, err = w.Submit("third", func(ctx context.Context, progress model.ProgressFunc) error {
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, <-done)
}

func TestCancelStopsTask(t *testing.T) {
	w := New()

	_, done, err := w.Submit("cancellable", func(ctx context.Context, progress model.ProgressFunc) error {
		<-ctx.Done()
		return ctx.Err()
	})
	require.NoError(t, err)

	w.Cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("task did not observe the cancel")
	}
	assert.Equal(t, "idle", w.Status().State)
}

func TestCancelWhileIdleIsNoop(t *testing.T) {
	w := New()
	w.Cancel()
	assert.Equal(t, "idle", w.Status().State)
}

func TestTaskErrorIsDelivered(t *testing.T) {
	w := New()

	_, done, err := w.Submit("failing", func(ctx context.Context, progress model.ProgressFunc) error {
		return assert.AnError
	})
	require.NoError(t, err)
	assert.ErrorIs(t, <-done, assert.AnError)
}
