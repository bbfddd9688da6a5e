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
	selectForce  bool
	selectDryRun bool
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Interactively select which resources to purge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force := forceFlag || selectForce
		dryRun := dryRunFlag || selectDryRun
		if nuclearFlag {
			return nuclearRunner(cmd.Context(), force, dryRun)
		}
		return runSelect(cmd.Context(), force, dryRun)
	},
}

func init() {
	selectCmd.Flags().BoolVarP(&selectForce, "force", "f", false, "Skip confirmation prompts (select all)")
	selectCmd.Flags().BoolVar(&selectDryRun, "dry-run", false, "Show what would be removed without making changes")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(ctx context.Context, force, dryRun bool) error {
	eng, err := connect(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	before, err := eng.Usage(ctx)
	if err != nil {
		return err
	}

	items, err := cleaner.SelectCandidates(ctx, eng, before)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		ui.Success.Println("Nothing to clean up. Docker is already tidy!")
		return nil
	}

	selected := cleaner.AllIndexes(items)
	if !force {
		selected, err = cleaner.Choose("Select items to purge:", cleaner.Labels(items))
		if err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		ui.Warn.Println("Nothing selected. Aborting.")
		return nil
	}

	tasks := cleaner.Narrow(items, selected)
	if dryRun {
		ui.PrintDryRunHeader()
	}

	flow := &cleaner.Flow{Force: force, DryRun: dryRun, Prompt: "Remove the selected items?"}
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
