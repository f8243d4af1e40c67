package resolve

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sungeunbae/cascade-submit/internal/config"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// FindMapFile searches dir for a realisation map file whose line count
// equals expected. The line count is the only correctness check a map file
// offers (no header, no checksum), and it is exact: an off-by-one is a
// mismatch, not a near-match.
//
// Candidates are matched against the configured glob patterns
// ("*_realisations.map*" then "*.map") and considered newest-first. When
// several candidates qualify:
//   - all byte-identical: the newest is returned (any would do),
//   - otherwise: AmbiguousMapError naming every conflicting file.
//
// Returns "" with a nil error when the directory is missing or holds no
// qualifying candidate.
func FindMapFile(dir string, expected int) (string, error) {
	if expected <= 0 {
		return "", nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		utils.PrintDebug("FindMapFile: cannot read %s: %v", dir, err)
		return "", nil
	}

	type candidate struct {
		path string
		mod  int64
	}
	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !matchesMapPattern(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path: filepath.Join(dir, entry.Name()),
			mod:  info.ModTime().UnixNano(),
		})
	}

	// Newest first, so ties among identical files pick the most recent.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].mod > candidates[j].mod
	})

	var qualifying []string
	for _, c := range candidates {
		n := utils.CountLines(c.path)
		utils.PrintDebug("FindMapFile: %s has %d lines (want %d)", c.path, n, expected)
		if n == expected {
			qualifying = append(qualifying, c.path)
		}
	}

	switch len(qualifying) {
	case 0:
		return "", nil
	case 1:
		return qualifying[0], nil
	}

	// Multiple qualifying files are fine only if they agree: a map file
	// picked wrongly here mislocates every member directory downstream.
	for _, other := range qualifying[1:] {
		if !utils.SameContent(qualifying[0], other) {
			return "", &AmbiguousMapError{
				Dir:        dir,
				Expected:   expected,
				Candidates: qualifying,
			}
		}
	}
	return qualifying[0], nil
}

// matchesMapPattern reports whether a filename matches any configured map
// file glob. Patterns support doublestar syntax so config may use brace
// alternatives like "{*.map,*.map.*}".
func matchesMapPattern(name string) bool {
	patterns := config.Global.MapFilePatterns
	if len(patterns) == 0 {
		patterns = []string{"*_realisations.map*", "*.map"}
	}
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
