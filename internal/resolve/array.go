package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/sungeunbae/cascade-submit/internal/config"
	"github.com/sungeunbae/cascade-submit/internal/pbs"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// Expansion is the result of resolving every member of an array container.
// Problems accumulates non-fatal per-member issues (a map line that could
// not be read); the corresponding member still appears in Members with an
// empty Dir so its report can surface the failure independently.
type Expansion struct {
	Container string        // the container identifier that was expanded
	MapFile   string        // the map file every member was resolved from
	Members   []ResolvedJob // one entry per listed index, in listing order
	Problems  error         // accumulated member-level diagnostics, may be nil
}

// ExpandArray resolves every member of an array container.
//
// The member listing gives the array size; the first listed member is
// resolved to obtain a representative directory, whose parent is the
// array's shared (fault) directory. The map file is then established once:
// the scheduler's ARRAY_MAP_FILE hint wins if it exists and its line count
// matches the array size, otherwise the shared directory's submission-logs
// folder is searched. Without a map file the whole expansion fails;
// per-index line failures do not.
func (r *Resolver) ExpandArray(id pbs.JobID) (*Expansion, error) {
	container := id.ContainerID()

	raw, err := r.Sched.ArrayListing(container)
	if err != nil {
		return nil, NewExpandError(container, "scheduler listing failed", err)
	}
	indices := pbs.ParseArrayListing(raw)
	if len(indices) == 0 {
		return nil, NewExpandError(container, "cannot determine array size: no member rows in scheduler listing", nil)
	}
	size := len(indices)
	utils.PrintDebug("ExpandArray %s: %d members listed", container, size)

	rep, err := r.Resolve(id.Member(indices[0]))
	if err != nil {
		return nil, NewExpandError(container, "cannot resolve representative member", err)
	}

	mapFile, err := r.arrayMapFile(container, rep, size)
	if err != nil {
		return nil, err
	}
	utils.PrintDebug("ExpandArray %s: using map file %s", container, mapFile)

	exp := &Expansion{Container: container, MapFile: mapFile}
	var problems *multierror.Error
	for _, idx := range indices {
		member := ResolvedJob{Label: id.Member(idx), MapFile: mapFile}
		if dir, ok := MapLine(mapFile, idx); ok {
			member.Dir = dir
		} else {
			problems = multierror.Append(problems,
				fmt.Errorf("member %s: map file has no usable line %d", member.Label, idx))
		}
		exp.Members = append(exp.Members, member)
	}
	exp.Problems = problems.ErrorOrNil()
	return exp, nil
}

// arrayMapFile establishes the single map file for an array: the hint from
// the representative member's metadata when valid, else a search of the
// shared parent directory.
func (r *Resolver) arrayMapFile(container string, rep ResolvedJob, size int) (string, error) {
	if rep.MapFile != "" && utils.CountLines(rep.MapFile) == size {
		return rep.MapFile, nil
	}
	if rep.MapFile != "" {
		utils.PrintDebug("ExpandArray %s: hinted map file %s does not have %d lines", container, rep.MapFile, size)
	}

	if !rep.Resolved() {
		return "", NewExpandError(container, "cannot determine a representative directory to search for a map file", nil)
	}

	shared := parentDir(rep.Dir)
	searchDir := filepath.Join(shared, config.Global.SubmissionLogsDir)
	found, err := FindMapFile(searchDir, size)
	if err != nil {
		return "", NewExpandError(container, "map file search failed", err)
	}
	if found == "" {
		return "", NewExpandError(container,
			fmt.Sprintf("no map file with %d lines under %s", size, searchDir), nil)
	}
	return found, nil
}

// parentDir returns the parent of a (possibly separator-terminated)
// directory path.
func parentDir(dir string) string {
	trimmed := strings.TrimRight(dir, string(filepath.Separator))
	return filepath.Dir(trimmed)
}
