package model

// ProgressIndeterminate marks a progress report without a known fraction.
const ProgressIndeterminate = -1.0

// ProgressFunc receives progress updates from a long-running pass. fraction
// is within [0,1], or ProgressIndeterminate.
type ProgressFunc func(message string, fraction float64)

// NopProgress discards progress updates.
func NopProgress(string, float64) {}

// WorkerStatus is a snapshot of the background worker for the status API.
type WorkerStatus struct {
	State    string  `json:"state"` // "idle" or "running"
	TaskID   string  `json:"taskId,omitempty"`
	Task     string  `json:"task,omitempty"`
	Message  string  `json:"message,omitempty"`
	Progress float64 `json:"progress"`
}
