package tasklist

import "errors"

// Domain-specific errors for the task list package.
var (
	ErrIndexOutOfRange = errors.New("task number is out of range")
	ErrStorage         = errors.New("task storage failure")
)
