package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sungeunbae/cascade-submit/internal/config"
	"github.com/sungeunbae/cascade-submit/internal/estimate"
	"github.com/sungeunbae/cascade-submit/internal/pbs"
	"github.com/sungeunbae/cascade-submit/internal/resolve"
	"github.com/sungeunbae/cascade-submit/internal/rlog"
	"github.com/sungeunbae/cascade-submit/internal/utils"
)

func runStatus(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true // runtime conditions should not show usage

	id, err := pbs.ParseJobID(args[0])
	if err != nil {
		utils.PrintError("Invalid job identifier %q (expected N, N[i] or N[])", args[0])
		return nil
	}

	client, err := pbs.NewQstatClient(config.Global.QstatBin)
	if err != nil {
		utils.PrintError("Cannot query the scheduler: %v", err)
		utils.PrintHint("Set the qstat path with --qstat or the CASCADE_QSTAT_BIN environment variable")
		return nil
	}
	resolver := resolve.NewResolver(client)

	if id.Container {
		return reportArray(resolver, client, id)
	}
	return reportSingle(resolver, client, id)
}

// reportSingle handles the N and N[i] shapes: one job, one report.
func reportSingle(resolver *resolve.Resolver, client pbs.Client, id pbs.JobID) error {
	raw, err := client.JobFull(id.String())
	if err != nil {
		utils.PrintError("Scheduler query for %s failed: %v", id, err)
		return nil
	}
	rec := pbs.ParseJobFields(raw)
	resolved := resolver.FromRecord(id.String(), rec)
	reportJob(resolved, rec)
	return nil
}

// reportArray expands an array container and reports every member. Failures
// inside one member never abort its siblings; only array-wide setup
// failures (unknown size, no usable map file) stop the whole report.
func reportArray(resolver *resolve.Resolver, client pbs.Client, id pbs.JobID) error {
	exp, err := resolver.ExpandArray(id)
	if err != nil {
		utils.PrintError("%v", err)
		var ambiguous *resolve.AmbiguousMapError
		if errors.As(err, &ambiguous) {
			utils.PrintHint("Remove or rename the stale map files so only one candidate remains")
		}
		return nil
	}

	utils.PrintMessage("Array %s: %s members, map file %s",
		utils.StyleName(exp.Container), utils.StyleNumber(len(exp.Members)), utils.StylePath(exp.MapFile))

	for _, member := range exp.Members {
		raw, err := client.JobFull(member.Label)
		if err != nil {
			utils.PrintWarning("Scheduler query for %s failed: %v", member.Label, err)
			raw = ""
		}
		reportJob(member, pbs.ParseJobFields(raw))
	}

	if exp.Problems != nil {
		utils.PrintWarning("Some members could not be resolved:\n%v", exp.Problems)
	}
	return nil
}

// reportJob prints the directory, progress and verdict for one job instance.
func reportJob(resolved resolve.ResolvedJob, rec pbs.Record) {
	utils.PrintMessage("--- %s ---", utils.StyleTitle(resolved.Label))

	if !resolved.Resolved() {
		utils.PrintWarning("Could not determine base directory for %s", resolved.Label)
		return
	}
	utils.PrintMessage("Directory: %s", utils.StylePath(resolved.Dir))

	progress, err := rlog.Read(resolved.Dir)
	if err != nil {
		utils.PrintWarning("Cannot read progress log: %v", err)
		return
	}
	if progress == nil {
		utils.PrintMessage("No progress log yet under %s", utils.StylePath(resolved.Dir+config.Global.RlogSubdir))
		return
	}

	printVerdict(estimate.Estimate(progress, rec.Budget()))
}

func printVerdict(v estimate.Verdict) {
	switch v.Kind {
	case estimate.Completed:
		utils.PrintSuccess("Simulation finished")

	case estimate.WaitingForData:
		utils.PrintMessage("Waiting for sufficient data (no complete progress record yet)")

	case estimate.NoWalltime:
		utils.PrintMessage("Progress: step %s of %s (%.1f%%), %.2f s/step",
			utils.StyleNumber(v.Step), utils.StyleNumber(v.TotalSteps), v.Percent, v.SecPerStep)
		utils.PrintNote("No walltime data from the scheduler; cannot give a time verdict")

	case estimate.OnTrack:
		utils.PrintMessage("Progress: step %s of %s (%.1f%%), %.2f s/step",
			utils.StyleNumber(v.Step), utils.StyleNumber(v.TotalSteps), v.Percent, v.SecPerStep)
		utils.PrintMessage("Estimated remaining: %s, walltime remaining: %s",
			utils.FormatHours(v.RemainingEstSec), utils.FormatHours(v.WalltimeRemainSec))
		utils.PrintSuccess("On track (buffer %s)", utils.FormatHours(v.BufferHours*3600))

	case estimate.InsufficientTime:
		utils.PrintMessage("Progress: step %s of %s (%.1f%%), %.2f s/step",
			utils.StyleNumber(v.Step), utils.StyleNumber(v.TotalSteps), v.Percent, v.SecPerStep)
		utils.PrintMessage("Estimated remaining: %s, walltime remaining: %s",
			utils.FormatHours(v.RemainingEstSec), utils.FormatHours(v.WalltimeRemainSec))
		utils.PrintWarning("Insufficient walltime (short by %s)", utils.FormatHours(-v.BufferHours*3600))
	}
}
