// Package resolve maps PBS job identifiers to the filesystem directories
// holding their output. It reconciles three loosely coupled sources: the
// scheduler's job metadata, the realisation map file written at submission
// time, and the job's array index.
package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ResolvedJob is the resolution result for one job instance. An empty Dir
// means the directory could not be determined; callers report that state
// per job rather than failing.
type ResolvedJob struct {
	Dir     string // working directory, separator-terminated when non-empty
	MapFile string // realisation map file hint, "" when none was found
	Label   string // the identifier this result was resolved for
}

// Resolved reports whether a working directory was determined.
func (r ResolvedJob) Resolved() bool {
	return r.Dir != ""
}

// AmbiguousMapError is raised when several map-file candidates have the
// expected line count but differ in content. Picking one silently would
// send every downstream report to the wrong directory with no other
// detectable symptom, so this aborts the current job or array.
type AmbiguousMapError struct {
	Dir        string   // directory that was scanned
	Expected   int      // required line count
	Candidates []string // all conflicting candidates
}

func (e *AmbiguousMapError) Error() string {
	return fmt.Sprintf("ambiguous realisation map in %s: %d files have %d lines but differ in content: %s",
		e.Dir, len(e.Candidates), e.Expected, strings.Join(e.Candidates, ", "))
}

// IsAmbiguousMapError checks if an error is an AmbiguousMapError
func IsAmbiguousMapError(err error) bool {
	var ae *AmbiguousMapError
	return errors.As(err, &ae)
}

// ExpandError is raised when array-wide setup fails: no member listing, no
// representative directory, or no usable map file. Member-level failures
// never raise it; they surface per member instead.
type ExpandError struct {
	Container string // array container identifier
	Reason    string
	Err       error // underlying error, may be nil
}

func (e *ExpandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot expand array %s: %s: %v", e.Container, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot expand array %s: %s", e.Container, e.Reason)
}

func (e *ExpandError) Unwrap() error {
	return e.Err
}

// NewExpandError creates a new ExpandError
func NewExpandError(container string, reason string, err error) *ExpandError {
	return &ExpandError{Container: container, Reason: reason, Err: err}
}
