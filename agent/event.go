package agent

import (
	"time"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// EventType identifies the kind of event occurring during task execution.
type EventType string

const (
	// EventRequestStart fires after validation passes, before the
	// outbound exchange begins.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after a task completes successfully.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when a task's exchange fails.
	EventRequestError EventType = "request_error"
)

// Event represents an observable occurrence during task execution.
// Locally rejected requests (validation failures, the document size
// ceiling) never produce events; no exchange was attempted.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Task is the operation being executed.
	Task Task

	// Backend is the variant serving the task.
	Backend ai.BackendKind

	// Model is the model that served the request, when known.
	Model string

	// RequestID correlates the events of one invocation.
	RequestID string

	// Duration is the elapsed time, set on completion and error events.
	Duration time.Duration

	// Usage contains token accounting for completed generative tasks.
	Usage *ai.Usage

	// Err is the failure, set on error events.
	Err error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
