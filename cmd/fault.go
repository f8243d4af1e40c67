package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sungeunbae/cascade-submit/internal/fault"
	"github.com/sungeunbae/cascade-submit/internal/rlog"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

var faultCmd = &cobra.Command{
	Use:   "fault <name-or-path>",
	Short: "Summarise the run status of every realisation of a fault",
	Long: `Scan a fault directory and classify each realisation run directory
(<fault>_REL* plus the median run) as NEW, IN_PROGRESS or COMPLETED from
its progress logs. The requested resources from emod3d_estimate.yaml are
echoed when the file exists.

The argument is either a path to the fault directory or a fault name
relative to the current directory.`,
	Example: `  cascade-status fault AlpineF2K
  cascade-status fault /nesi/nobackup/Runs/AlpineF2K`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runFault,
}

func init() {
	rootCmd.AddCommand(faultCmd)
}

func runFault(cmd *cobra.Command, args []string) error {
	faultDir, faultName, ok := locateFault(args[0])
	if !ok {
		utils.PrintError("Could not locate fault directory for %q", args[0])
		return nil
	}
	utils.PrintMessage("Fault %s (%s)", utils.StyleName(faultName), utils.StylePath(faultDir))

	if est, err := fault.LoadEstimate(faultDir); err != nil {
		utils.PrintWarning("Cannot read resource estimate: %v", err)
	} else if est != nil {
		utils.PrintMessage("Requested: %s nodes x %s tasks, %sGB, walltime %s",
			utils.StyleNumber(est.Nodes), utils.StyleNumber(est.TasksPerNode),
			utils.StyleNumber(est.MemGB), utils.StyleNumber(string(est.Walltime)))
	}

	dirs := fault.Realisations(faultDir, faultName)
	if len(dirs) == 0 {
		utils.PrintMessage("No realisation directories found")
		return nil
	}

	counts := map[rlog.RunStatus]int{}
	for _, dir := range dirs {
		status := rlog.Status(dir)
		counts[status]++
		switch status {
		case rlog.StatusCompleted:
			utils.PrintSuccess("%-12s %s", status, filepath.Base(dir))
		case rlog.StatusInProgress:
			utils.PrintMessage("%-12s %s", utils.StyleWarning(string(status)), filepath.Base(dir))
		default:
			utils.PrintMessage("%-12s %s", status, filepath.Base(dir))
		}
	}
	utils.PrintMessage("Total %s: %s completed, %s in progress, %s new",
		utils.StyleNumber(len(dirs)),
		utils.StyleNumber(counts[rlog.StatusCompleted]),
		utils.StyleNumber(counts[rlog.StatusInProgress]),
		utils.StyleNumber(counts[rlog.StatusNew]))
	return nil
}

// locateFault resolves the argument to a fault directory and name. A path
// to an existing directory is used as-is; a bare name is tried relative to
// the current directory, then under a Runs/ subdirectory.
func locateFault(arg string) (dir string, name string, ok bool) {
	if utils.DirExists(arg) {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return "", "", false
		}
		return abs, filepath.Base(abs), true
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", "", false
	}
	for _, candidate := range []string{
		filepath.Join(cwd, arg),
		filepath.Join(cwd, "Runs", arg),
	} {
		if utils.DirExists(candidate) {
			return candidate, arg, true
		}
	}
	return "", "", false
}
