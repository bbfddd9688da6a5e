package cmd

import (
	"context"
	"os"

	"dockerase/pkg/cleaner"
	"dockerase/pkg/report"
	"dockerase/pkg/ui"
)

// nuclearRunner is what the --nuclear override dispatches to. Tests swap it
// out to verify dispatch without a daemon.
var nuclearRunner = runNuclear

func runNuclear(ctx context.Context, force, dryRun bool) error {
	eng, err := connect(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	if dryRun {
		ui.PrintDryRunHeader()
	}
	ui.PrintNuclearWarning()

	before, err := eng.Usage(ctx)
	if err != nil {
		return err
	}

	tasks, err := cleaner.NuclearPlan(ctx, eng, before)
	if err != nil {
		return err
	}

	flow := &cleaner.Flow{
		Force:  force,
		DryRun: dryRun,
		Prompt: "Are you absolutely sure? This removes EVERYTHING",
	}
	outcome, err := flow.Run(ctx, tasks)
	if err != nil {
		return err
	}

	if outcome == cleaner.OutcomeDone {
		if after, err := eng.Usage(ctx); err == nil {
			report.RenderSpaceSaved(os.Stdout, before.TotalSize(), after.TotalSize())
		}
		ui.Success.Println("Nuclear cleanup complete. Docker is now empty.")
	}
	return nil
}
