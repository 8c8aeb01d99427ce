package model

import (
	"time"
)

const (
	// StatusPending indicates a task has not started yet.
	StatusPending = "pending"
	// StatusRunning indicates a task is actively executing.
	StatusRunning = "running"
	// StatusOk marks a task that completed without changing the appliance.
	StatusOk = "ok"
	// StatusChanged marks a task that modified appliance state.
	StatusChanged = "changed"
	// StatusFailed marks a failure during task execution.
	StatusFailed = "failed"
	// StatusWouldChange indicates dry-run detected a pending change.
	StatusWouldChange = "would_change"
)

// Result captures the outcome of executing a single playbook task. Every
// module operation reports the same triple: whether appliance state
// changed, a human-readable message, and a facts mapping with one named
// key holding the resource or operation payload.
type Result struct {
	TaskID    string
	Status    string
	Changed   bool
	Msg       string
	Facts     map[string]any
	Diff      string
	Error     error
	Duration  time.Duration
	Timestamp time.Time
}

// StatusFor derives the terminal status for a completed operation.
func StatusFor(changed, dryRun bool) string {
	if !changed {
		return StatusOk
	}
	if dryRun {
		return StatusWouldChange
	}
	return StatusChanged
}
