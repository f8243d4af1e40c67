package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sungeunbae/cascade-submit/internal/config"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

var (
	debugMode bool
	quietMode bool
	qstatBin  string
)

var rootCmd = &cobra.Command{
	Use:   "cascade-status <job-id>",
	Short: "Report the status and time estimate of an EMOD3D job on PBS",
	Long: `cascade-status resolves a PBS job to its simulation directory and reports
its progress and an estimated completion verdict against the walltime budget.

The job identifier takes one of three shapes:
  2611898        a plain job
  2611898[3]     one member of an array
  2611898[]      the whole array (reports every member)

Array members submitted as simulated arrays (a plain job carrying
ARRAY_MAP_FILE and PBS_ARRAY_INDEX) are resolved through the realisation
map file, the same way the real arrays are.`,
	Example: `  cascade-status 2611898         # single job
  cascade-status 2611898[]       # whole array, one report per member
  cascade-status --debug 2611898 # trace every intermediate value`,
	Version:       config.VERSION,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE:          runStatus,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Step 1: built-in defaults
		config.LoadDefaults()

		// Step 2: config file and CASCADE_* environment via Viper
		if err := config.InitViper(); err != nil {
			utils.PrintDebug("Error reading config file: %v", err)
		}

		// Step 3: flags win over file and environment
		config.BindFlags(cmd.Flags())
		config.LoadFromViper()

		utils.DebugMode = config.Global.Debug
		utils.QuietMode = config.Global.Quiet
		if utils.DebugMode {
			utils.PrintDebug("Debug mode enabled")
			utils.PrintDebug("cascade-submit version: %s", config.VERSION)
			utils.PrintDebug("qstat binary: %s", config.Global.QstatBin)
			utils.PrintDebug("rlog subdir: %s", config.Global.RlogSubdir)
			utils.PrintDebug("map patterns: %v", config.Global.MapFilePatterns)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Argument and flag errors exit non-zero with usage; everything
		// the tool can diagnose itself is reported inside RunE instead
		// and exits 0 (a job in a bad state is a report, not a failure).
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVar(&qstatBin, "qstat", "", "Path to the qstat binary (default: from PATH)")
}
