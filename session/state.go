package session

import "github.com/grovetools/upxgui/process"

// State is the position of a session in its build/execute cycle.
type State int

const (
	StateIdle State = iota
	StateBuilding
	StatePreviewReady
	StateExecuting
	StateSucceeded
	StateFailed
	StateExecutionError
	StateCanceled
)

var stateNames = [...]string{
	StateIdle:           "idle",
	StateBuilding:       "building",
	StatePreviewReady:   "preview-ready",
	StateExecuting:      "executing",
	StateSucceeded:      "succeeded",
	StateFailed:         "failed",
	StateExecutionError: "execution-error",
	StateCanceled:       "canceled",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether s is one of the post-execution states.
func (s State) Terminal() bool {
	return s >= StateSucceeded
}

func stateFor(status process.Status) State {
	switch status {
	case process.StatusSucceeded:
		return StateSucceeded
	case process.StatusFailed:
		return StateFailed
	case process.StatusCanceled:
		return StateCanceled
	default:
		return StateExecutionError
	}
}

// Target names where a delivered path ends up.
type Target int

const (
	TargetInputFile Target = iota
	TargetOutputFile
	TargetExecutable
)

func (t Target) String() string {
	switch t {
	case TargetInputFile:
		return "input"
	case TargetOutputFile:
		return "output"
	case TargetExecutable:
		return "executable"
	default:
		return "unknown"
	}
}

// PathSink accepts file paths from a picker, a drop target, a text input or a
// command-line flag. An empty path means nothing was chosen and is ignored.
type PathSink interface {
	DeliverPath(target Target, path string) error
}
