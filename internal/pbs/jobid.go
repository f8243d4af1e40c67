package pbs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// JobID is a parsed PBS job identifier. Three shapes are accepted:
//
//	"2611898"            plain job
//	"2611898[3]"         one member of an array
//	"2611898[]"          the whole array container
//
// A server suffix ("2611898.pbsserver", "2611898[3].pbsserver") is stripped
// before parsing.
type JobID struct {
	Base      string // numeric base id, always present
	Index     *int   // member index, nil unless shape is N[i]
	Container bool   // true for the N[] shape
}

var jobIDRe = regexp.MustCompile(`^(\d+)(\[(\d*)\])?$`)

// ParseJobID parses a job identifier string.
func ParseJobID(s string) (JobID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return JobID{}, fmt.Errorf("%w: empty", ErrBadJobID)
	}

	// Strip server decoration: everything after the first "." that follows
	// the id proper ("123.server", "123[].server").
	if i := strings.Index(s, "."); i >= 0 {
		s = s[:i]
	}

	m := jobIDRe.FindStringSubmatch(s)
	if m == nil {
		return JobID{}, fmt.Errorf("%w: %q", ErrBadJobID, s)
	}

	id := JobID{Base: m[1]}
	if m[2] == "" {
		return id, nil
	}
	if m[3] == "" {
		id.Container = true
		return id, nil
	}
	idx, err := strconv.Atoi(m[3])
	if err != nil {
		return JobID{}, fmt.Errorf("%w: %q", ErrBadJobID, s)
	}
	id.Index = &idx
	return id, nil
}

// Member returns the identifier for array member i of this job's base id.
func (j JobID) Member(i int) string {
	return fmt.Sprintf("%s[%d]", j.Base, i)
}

// ContainerID returns the array-container form of this job's base id.
func (j JobID) ContainerID() string {
	return j.Base + "[]"
}

// String renders the identifier in its canonical shape.
func (j JobID) String() string {
	switch {
	case j.Container:
		return j.ContainerID()
	case j.Index != nil:
		return j.Member(*j.Index)
	default:
		return j.Base
	}
}
