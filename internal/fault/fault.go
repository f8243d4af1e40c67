// Package fault inspects a fault directory: the per-fault resource
// estimate file and the realisation run directories beneath it.
package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sungeunbae/cascade-submit/internal/config"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// ResourceEstimate mirrors the emod3d_estimate.yaml written at submission
// time: the node geometry and walltime the jobs were requested with.
type ResourceEstimate struct {
	Nodes        int      `yaml:"nodes"`
	TasksPerNode int      `yaml:"tasks_per_node"`
	MemGB        int      `yaml:"mem_gb"`
	Walltime     Walltime `yaml:"walltime"`
}

// Walltime is an HH:MM:SS string in the estimate file. Older YAML readers
// treated unquoted HH:MM:SS as a sexagesimal integer of seconds, and some
// estimate files were rewritten that way; both encodings are accepted.
type Walltime string

func (w *Walltime) UnmarshalYAML(node *yaml.Node) error {
	var asString string
	if err := node.Decode(&asString); err == nil {
		*w = Walltime(strings.TrimSpace(asString))
		return nil
	}
	var asInt int64
	if err := node.Decode(&asInt); err == nil {
		*w = Walltime(utils.FormatWalltime(asInt))
		return nil
	}
	return fmt.Errorf("walltime: cannot decode %q", node.Value)
}

// Seconds returns the walltime in seconds (0 when malformed).
func (w Walltime) Seconds() int64 {
	return utils.ParseWalltime(string(w))
}

// LoadEstimate reads the resource estimate file from a fault directory.
// Returns nil with a nil error when the file does not exist.
func LoadEstimate(faultDir string) (*ResourceEstimate, error) {
	path := filepath.Join(faultDir, config.Global.EstimateYamlName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var est ResourceEstimate
	if err := yaml.Unmarshal(data, &est); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return &est, nil
}

// Realisations lists the realisation run directories of a fault, sorted by
// name: the median run (named after the fault itself) first when present,
// then every <fault>_REL* directory.
func Realisations(faultDir string, faultName string) []string {
	var dirs []string

	median := filepath.Join(faultDir, faultName)
	if utils.DirExists(median) {
		dirs = append(dirs, median)
	}

	entries, err := os.ReadDir(faultDir)
	if err != nil {
		return dirs
	}
	var rels []string
	prefix := faultName + "_REL"
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			rels = append(rels, filepath.Join(faultDir, entry.Name()))
		}
	}
	sort.Strings(rels)
	return append(dirs, rels...)
}
