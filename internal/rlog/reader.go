// Package rlog reads EMOD3D progress logs. Each simulation run appends a
// rolling .rlog file under LF/Rlog in its working directory; the log holds
// an "nt=<steps>" header token, per-step data lines, and a fixed marker on
// the final line of a completed run.
package rlog

import (
	"path/filepath"
	"strings"

	"github.com/sungeunbae/cascade-submit/internal/config"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// ProgressRecord is the state extracted from the tail of a progress log.
// Pointer fields are nil when the log did not yield that value; absence is
// propagated explicitly rather than coerced to zero.
type ProgressRecord struct {
	TotalSteps *int     // nt=<n>, first occurrence anywhere in the log
	Step       *int     // step counter from the last data line
	CPUSec     *float64 // cumulative CPU time from the last data line
	Terminal   bool     // the final line carries the completion marker
	Path       string   // the log file that was read
}

// Read locates the newest progress log beneath dir and extracts its
// terminal state and last-record fields. Returns nil (with a nil error)
// when no log exists yet; the caller reports the absence.
func Read(dir string) (*ProgressRecord, error) {
	logDir := filepath.Join(dir, config.Global.RlogSubdir)
	path := utils.LatestFile(logDir, config.Global.RlogExt)
	if path == "" {
		utils.PrintDebug("rlog: no %s file under %s", config.Global.RlogExt, logDir)
		return nil, nil
	}

	lines, err := utils.ReadLines(path)
	if err != nil {
		return nil, err
	}
	rec := Parse(lines)
	rec.Path = path
	utils.PrintDebug("rlog: %s terminal=%v step=%v total=%v", path, rec.Terminal, rec.Step, rec.TotalSteps)
	return rec, nil
}

// Parse extracts a ProgressRecord from the lines of a progress log.
func Parse(lines []string) *ProgressRecord {
	rec := &ProgressRecord{}

	// nt= is grepped from its first occurrence anywhere in the file.
	for _, line := range lines {
		if n, ok := extractNt(line); ok {
			rec.TotalSteps = &n
			break
		}
	}

	last := lastNonEmpty(lines)
	if last == "" {
		return rec
	}

	// Terminal state is decided by the final line only. A completion token
	// printed mid-run (restart banners, echoed settings) must not count.
	if strings.Contains(last, config.Global.FinishedMarker) {
		rec.Terminal = true
		return rec
	}

	// Last data line: step counter first, cumulative CPU seconds second.
	// Columns are sanitized by truncation since emod3d occasionally glues
	// punctuation onto them.
	fields := strings.Fields(last)
	if len(fields) >= 1 {
		if n, ok := utils.LeadingInt(fields[0]); ok {
			rec.Step = &n
		}
	}
	if len(fields) >= 2 {
		if f, ok := utils.LeadingFloat(fields[1]); ok {
			rec.CPUSec = &f
		}
	}
	return rec
}

// extractNt pulls the integer out of the first "nt=<n>" token on a line.
func extractNt(line string) (int, bool) {
	i := strings.Index(line, "nt=")
	if i < 0 {
		return 0, false
	}
	rest := strings.TrimLeft(line[i+len("nt="):], " ")
	return utils.LeadingInt(rest)
}

func lastNonEmpty(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}
