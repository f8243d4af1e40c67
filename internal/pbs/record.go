package pbs

import (
	"strings"

	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// Record is the flat key -> value mapping parsed from one job's qstat -f
// output. It is created fresh per query and discarded after resolution.
type Record map[string]string

// Attribute keys read by the resolver and estimator.
const (
	KeyOutputPath        = "Output_Path"
	KeyVariableList      = "Variable_List"
	KeyArrayIndex        = "array_index"
	KeyWalltimeLimit     = "Resource_List.walltime"
	KeyWalltimeUsed      = "resources_used.walltime"
	KeyWalltimeRemaining = "Walltime.Remaining"
)

// Variable_List entries read by the resolver.
const (
	VarArrayMapFile = "ARRAY_MAP_FILE"
	VarArrayIndex   = "PBS_ARRAY_INDEX"
	VarWorkdir      = "PBS_O_WORKDIR"
)

// ParseJobFields parses qstat -f output into a Record.
//
// qstat -f emits one "Key = value" line per attribute, indented by four
// spaces. Long values (Variable_List in particular) wrap onto subsequent
// lines that begin with a tab; those continuation lines are concatenated
// into the pending value before any further interpretation. Accumulation
// stops at the first line that is neither an attribute nor a continuation.
//
// Empty input produces an empty Record: an unknown job id is a normal
// condition (job purged from scheduler history), not an error.
func ParseJobFields(raw string) Record {
	rec := Record{}
	if strings.TrimSpace(raw) == "" {
		return rec
	}

	current := ""
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			current = ""
			continue
		}

		// Continuation: wrapped remainder of the previous value. PBS
		// breaks values mid-token, so concatenate without a separator.
		if current != "" && isContinuation(line) {
			rec[current] += strings.TrimSpace(line)
			continue
		}

		// "Job Id: 2611898.server" header line.
		if val, ok := strings.CutPrefix(line, "Job Id:"); ok {
			rec["Job Id"] = strings.TrimSpace(val)
			current = ""
			continue
		}

		// Attribute line: "    Key = value".
		if idx := strings.Index(line, " = "); idx >= 0 {
			key := strings.TrimSpace(line[:idx])
			rec[key] = strings.TrimSpace(line[idx+3:])
			current = key
			continue
		}

		current = ""
	}
	return rec
}

// isContinuation reports whether a raw line is a wrapped continuation of the
// preceding attribute value. PBS indents continuations with a tab; attribute
// lines use spaces and carry a " = " separator.
func isContinuation(line string) bool {
	if strings.HasPrefix(line, "\t") {
		return true
	}
	return strings.HasPrefix(line, " ") && !strings.Contains(line, " = ")
}

// Get returns the value of a top-level attribute.
func (r Record) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Variable returns one name=value entry from the Variable_List attribute.
func (r Record) Variable(name string) (string, bool) {
	list, ok := r[KeyVariableList]
	if !ok {
		return "", false
	}
	for _, entry := range strings.Split(list, ",") {
		k, v, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(k) == name {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// ArrayIndex returns the job's array index. PBS_ARRAY_INDEX from the
// Variable_List is preferred; native arrays that do not surface it there
// expose a literal array_index attribute instead.
func (r Record) ArrayIndex() (int, bool) {
	if v, ok := r.Variable(VarArrayIndex); ok {
		if n, ok := utils.LeadingInt(v); ok {
			return n, true
		}
	}
	if v, ok := r.Get(KeyArrayIndex); ok {
		if n, ok := utils.LeadingInt(v); ok {
			return n, true
		}
	}
	return 0, false
}
