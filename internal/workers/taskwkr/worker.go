// Package taskwkr runs background tasks one at a time. Submitting while a
// task is in flight is rejected, never queued.
package taskwkr

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/wishtally/backend/internal/model"
)

// ErrBusy is returned by Submit while another task is still running.
var ErrBusy = errors.New("a task is already running")

// Task is the unit of work the worker executes. It must honor ctx and may
// push progress updates at its own cadence.
type Task func(ctx context.Context, progress model.ProgressFunc) error

const (
	stateIdle    = "idle"
	stateRunning = "running"
)

type Worker struct {
	mu     sync.Mutex
	status model.WorkerStatus
	cancel context.CancelFunc
}

func New() *Worker {
	return &Worker{status: model.WorkerStatus{State: stateIdle, Progress: model.ProgressIndeterminate}}
}

// Submit starts the task on the worker goroutine. It returns the task's run
// id and a channel that yields the task's error exactly once on completion.
func (w *Worker) Submit(name string, task Task) (string, <-chan error, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.status.State == stateRunning {
		return "", nil, ErrBusy
	}

	taskID := xid.New().String()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.status = model.WorkerStatus{
		State:    stateRunning,
		TaskID:   taskID,
		Task:     name,
		Progress: model.ProgressIndeterminate,
	}

	done := make(chan error, 1)
	go func() {
		defer cancel()

		log.Info().
			Str("evt.name", "worker.task").
			Str("taskId", taskID).
			Str("task", name).
			Msg("task started")

		err := task(ctx, w.progressFor(taskID))
		if err != nil {
			log.Warn().
				Err(err).
				Str("evt.name", "worker.task").
				Str("taskId", taskID).
				Str("task", name).
				Msg("task finished with error")
		} else {
			log.Info().
				Str("evt.name", "worker.task").
				Str("taskId", taskID).
				Str("task", name).
				Msg("task finished")
		}

		w.mu.Lock()
		w.status = model.WorkerStatus{State: stateIdle, Progress: model.ProgressIndeterminate}
		w.cancel = nil
		w.mu.Unlock()

		done <- err
	}()

	return taskID, done, nil
}

// Cancel cancels the in-flight task, if any. The task stops at its next
// cancellation point; Cancel does not wait for it.
func (w *Worker) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Worker) Status() model.WorkerStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// progressFor records updates only while taskID is still the active task, so
// a finished task's stragglers cannot overwrite the idle status.
func (w *Worker) progressFor(taskID string) model.ProgressFunc {
	return func(message string, fraction float64) {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.status.TaskID != taskID {
			return
		}
		w.status.Message = message
		w.status.Progress = fraction
	}
}
