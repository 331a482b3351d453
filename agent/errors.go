package agent

import (
	"fmt"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// ErrUnknownTask is returned when a request names a task outside the
// closed set.
type ErrUnknownTask struct {
	Task Task
}

func (e *ErrUnknownTask) Error() string {
	return fmt.Sprintf("unknown task %q", e.Task)
}

// backendHints maps each backend to the Config fields that enable it.
var backendHints = map[ai.BackendKind]string{
	ai.BackendText:    "set Config.Project and Config.Location",
	ai.BackendContent: "set Config.APIKey",
	ai.BackendImage:   "set Config.Project and Config.Location",
	ai.BackendCode:    "set Config.Project and Config.Location",
	ai.BackendDrive:   "set Config.CredentialFile",
}

// ErrBackendUnavailable is returned when a task's backend cannot be built
// from the agent configuration.
type ErrBackendUnavailable struct {
	Backend ai.BackendKind
	Reason  string
}

func (e *ErrBackendUnavailable) Error() string {
	if hint, ok := backendHints[e.Backend]; ok {
		return fmt.Sprintf("%s backend unavailable: %s (%s)", e.Backend, e.Reason, hint)
	}
	return fmt.Sprintf("%s backend unavailable: %s", e.Backend, e.Reason)
}
