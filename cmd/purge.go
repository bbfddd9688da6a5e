package cmd

import (
	"context"
	"os"

	"dockerase/pkg/cleaner"
	"dockerase/pkg/report"
	"dockerase/pkg/ui"

	"github.com/spf13/cobra"
)

var (
	purgeForce  bool
	purgeDryRun bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Safely remove unused Docker resources (dangling images, stopped containers, unused volumes)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force := forceFlag || purgeForce
		dryRun := dryRunFlag || purgeDryRun
		if nuclearFlag {
			return nuclearRunner(cmd.Context(), force, dryRun)
		}
		return runPurge(cmd.Context(), force, dryRun)
	},
}

func init() {
	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "Skip confirmation prompts")
	purgeCmd.Flags().BoolVar(&purgeDryRun, "dry-run", false, "Show what would be removed without making changes")
	rootCmd.AddCommand(purgeCmd)
}

func runPurge(ctx context.Context, force, dryRun bool) error {
	eng, err := connect(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	if dryRun {
		ui.PrintDryRunHeader()
	}

	before, err := eng.Usage(ctx)
	if err != nil {
		return err
	}
	if before.TotalReclaimable() == 0 {
		ui.Success.Println("Nothing to clean up. Docker is already tidy!")
		return nil
	}

	tasks, err := cleaner.PurgePlan(ctx, eng, before)
	if err != nil {
		return err
	}

	flow := &cleaner.Flow{Force: force, DryRun: dryRun}
	outcome, err := flow.Run(ctx, tasks)
	if err != nil {
		return err
	}

	if outcome == cleaner.OutcomeDone {
		if after, err := eng.Usage(ctx); err == nil {
			report.RenderSpaceSaved(os.Stdout, before.TotalSize(), after.TotalSize())
		}
	}
	return nil
}
