package worker

import "time"

// Status represents the current state of the worker pool
type Status string

const (
	// StatusIdle indicates the pool was created but not started
	StatusIdle Status = "idle"

	// StatusRunning indicates worker loops are executing
	StatusRunning Status = "running"

	// StatusStopped indicates all worker loops have finished
	StatusStopped Status = "stopped"
)

// Stats provides runtime statistics about the worker pool
type Stats struct {
	// ActiveWorkers is the number of worker loops still running
	ActiveWorkers int

	// Status is the current state of the pool
	Status Status

	// Uptime is how long the pool has been running
	Uptime time.Duration
}
