// Package pbs queries a PBS scheduler and parses the structured text it
// returns. All parsing is pure so it can be exercised against canned qstat
// output; only Client implementations touch the outside world.
package pbs

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrQstatNotFound indicates the qstat binary was not found
	ErrQstatNotFound = errors.New("qstat binary not found in PATH")

	// ErrQueryFailed indicates a scheduler query could not be run
	ErrQueryFailed = errors.New("scheduler query failed")

	// ErrBadJobID indicates a job identifier could not be parsed
	ErrBadJobID = errors.New("malformed job identifier")
)

// QueryError wraps a failed scheduler invocation with the command context.
type QueryError struct {
	Command string // command line that failed
	Output  string // combined output, if any
	Err     error  // underlying error
}

func (e *QueryError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("scheduler query %q failed: %v\nOutput: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("scheduler query %q failed: %v", e.Command, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError
func NewQueryError(command string, output string, err error) *QueryError {
	return &QueryError{Command: command, Output: output, Err: err}
}

// IsQueryError checks if an error is a QueryError
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
