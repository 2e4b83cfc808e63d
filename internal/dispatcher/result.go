package dispatcher

// ResultStatus indicates the outcome of applying a command.
type ResultStatus uint8

const (
	// StatusOK indicates the command took effect.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the command had no effect.
	StatusNoOp
	// StatusError indicates a handler failed or panicked.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of applying a command.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Command is the command that was applied.
	Command Command

	// Err contains any error that occurred.
	Err error

	// Message is an optional status message from a handler.
	Message string
}

// OK reports whether the command took effect.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// IsError reports whether the command failed.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

func success(cmd Command) Result {
	return Result{Status: StatusOK, Command: cmd}
}

func noOp(cmd Command) Result {
	return Result{Status: StatusNoOp, Command: cmd}
}

func failure(cmd Command, err error) Result {
	return Result{Status: StatusError, Command: cmd, Err: err}
}

// changed returns OK when ok is true and NoOp otherwise.
func changed(cmd Command, ok bool) Result {
	if ok {
		return success(cmd)
	}
	return noOp(cmd)
}
