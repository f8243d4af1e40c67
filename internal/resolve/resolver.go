package resolve

import (
	"path/filepath"
	"strings"

	"github.com/sungeunbae/cascade-submit/internal/pbs"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// Resolver determines the working directory of PBS jobs. It is read-only
// and idempotent: resolving the same unchanged job twice yields the same
// result.
type Resolver struct {
	Sched pbs.Client
}

// NewResolver creates a Resolver backed by the given scheduler client.
func NewResolver(sched pbs.Client) *Resolver {
	return &Resolver{Sched: sched}
}

// Resolve determines the working directory for one job instance.
//
// Resolution strategies, most specific first:
//
//  1. Simulated array: ARRAY_MAP_FILE + array index from the job's
//     Variable_List. The indexed line of the map file names the directory
//     directly; this wins over everything else because an explicit
//     index+map pair is the most specific signal the scheduler carries.
//  2. Output_Path: "[host:]path/to/stdout-file"; the directory is the
//     parent of the stdout file.
//  3. PBS_O_WORKDIR: jobs whose output layout mirrors the submission
//     directory.
//
// When no strategy applies (including the scheduler not knowing the job at
// all) the result carries an empty Dir; that is a reportable state for the
// caller, never an error.
func (r *Resolver) Resolve(jobID string) (ResolvedJob, error) {
	raw, err := r.Sched.JobFull(jobID)
	if err != nil {
		return ResolvedJob{Label: jobID}, err
	}
	rec := pbs.ParseJobFields(raw)
	return r.FromRecord(jobID, rec), nil
}

// FromRecord resolves a job from an already fetched metadata record. Used
// by callers that need the record themselves (walltime accounting) to
// avoid a second scheduler round trip.
func (r *Resolver) FromRecord(jobID string, rec pbs.Record) ResolvedJob {
	result := ResolvedJob{Label: jobID}
	if len(rec) == 0 {
		utils.PrintDebug("Resolve %s: scheduler returned no metadata", jobID)
		return result
	}

	mapFile, _ := rec.Variable(pbs.VarArrayMapFile)
	index, haveIndex := rec.ArrayIndex()

	// Thread the map-file hint through even when a fallback strategy ends
	// up resolving the directory; array expansion reuses it.
	if mapFile != "" && utils.FileExists(mapFile) {
		result.MapFile = mapFile
	}

	// 1. Simulated array: read line <index> of the map file.
	if result.MapFile != "" && haveIndex {
		if dir, ok := MapLine(result.MapFile, index); ok {
			utils.PrintDebug("Resolve %s: map file %s line %d -> %s", jobID, result.MapFile, index, dir)
			result.Dir = dir
			return result
		}
		utils.PrintDebug("Resolve %s: map file %s has no line %d", jobID, result.MapFile, index)
	}

	// 2. Output_Path parent.
	if outputPath, ok := rec.Get(pbs.KeyOutputPath); ok {
		if dir := dirFromOutputPath(outputPath); dir != "" {
			utils.PrintDebug("Resolve %s: Output_Path -> %s", jobID, dir)
			result.Dir = dir
			return result
		}
	}

	// 3. Submission directory.
	if workdir, ok := rec.Variable(pbs.VarWorkdir); ok && strings.TrimSpace(workdir) != "" {
		dir := utils.EnsureTrailingSep(strings.TrimSpace(workdir))
		utils.PrintDebug("Resolve %s: PBS_O_WORKDIR -> %s", jobID, dir)
		result.Dir = dir
		return result
	}

	utils.PrintDebug("Resolve %s: no resolution strategy applied", jobID)
	return result
}

// MapLine reads line index (1-based) of a realisation map file and returns
// it trimmed and separator-terminated. Returns false when the line does not
// exist or is blank.
func MapLine(mapFile string, index int) (string, bool) {
	lines, err := utils.ReadLines(mapFile)
	if err != nil {
		return "", false
	}
	if index < 1 || index > len(lines) {
		return "", false
	}
	dir := strings.TrimSpace(lines[index-1])
	if dir == "" {
		return "", false
	}
	return utils.EnsureTrailingSep(dir), true
}

// dirFromOutputPath extracts the working directory from a PBS Output_Path
// value of the form "[host:]path/to/stdout-file".
func dirFromOutputPath(outputPath string) string {
	p := strings.TrimSpace(outputPath)
	// Strip the hostname prefix up to and including the first colon.
	if i := strings.Index(p, ":"); i >= 0 {
		p = p[i+1:]
	}
	if p == "" {
		return ""
	}
	dir := filepath.Dir(p)
	if dir == "." {
		return ""
	}
	return utils.EnsureTrailingSep(dir)
}
