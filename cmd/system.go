package cmd

import (
	"context"
	"fmt"
	"os"

	"dockerase/pkg/cleaner"
	"dockerase/pkg/report"
	"dockerase/pkg/syscache"
	"dockerase/pkg/ui"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	systemForce  bool
	systemDryRun bool
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Manage developer system caches (Homebrew, npm, Xcode, etc.)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if nuclearFlag {
			return nuclearRunner(cmd.Context(), forceFlag || systemForce, dryRunFlag || systemDryRun)
		}
		return runSystemList()
	},
}

var systemPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Purge all system caches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if nuclearFlag {
			return nuclearRunner(cmd.Context(), forceFlag || systemForce, dryRunFlag || systemDryRun)
		}
		return runSystemPurge(cmd.Context(), forceFlag || systemForce, dryRunFlag || systemDryRun, false)
	},
}

var systemSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Interactively select which system caches to purge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if nuclearFlag {
			return nuclearRunner(cmd.Context(), forceFlag || systemForce, dryRunFlag || systemDryRun)
		}
		return runSystemPurge(cmd.Context(), forceFlag || systemForce, dryRunFlag || systemDryRun, true)
	},
}

func init() {
	systemCmd.PersistentFlags().BoolVarP(&systemForce, "force", "f", false, "Skip confirmation prompts")
	systemCmd.PersistentFlags().BoolVar(&systemDryRun, "dry-run", false, "Show what would be removed without making changes")
	systemCmd.AddCommand(systemPurgeCmd)
	systemCmd.AddCommand(systemSelectCmd)
	rootCmd.AddCommand(systemCmd)
}

func runSystemList() error {
	caches := syscache.Discover()
	if len(caches) == 0 {
		ui.Success.Println("No purgeable caches found. System is clean!")
		return nil
	}

	ui.PrintSectionHeader("System Caches")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"CACHE", "SIZE", "PATH"})
	t.SetStyle(table.StyleRounded)

	var total int64
	for _, c := range caches {
		total += c.Size
		t.AppendRow(table.Row{c.Name, report.FormatBytes(c.Size), c.Path})
	}
	t.Render()

	pterm.Println()
	pterm.Printf("%s %s\n",
		pterm.Bold.Sprint("Total Purgeable:"),
		pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(report.FormatBytes(total)))
	pterm.Println()
	ui.PrintRule()
	pterm.Printf("Run %s to interactively select caches to purge\n", pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("dockerase system select"))
	pterm.Printf("Run %s to purge all caches\n", pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("dockerase system purge"))
	return nil
}

func runSystemPurge(ctx context.Context, force, dryRun, interactive bool) error {
	caches := syscache.Discover()
	if len(caches) == 0 {
		ui.Success.Println("No purgeable caches found. System is clean!")
		return nil
	}

	if interactive && !force {
		labels := make([]string, len(caches))
		for i, c := range caches {
			labels[i] = fmt.Sprintf("%s (%s) - %s", c.Name, report.FormatBytes(c.Size), c.Description)
		}
		selected, err := cleaner.Choose("Select caches to purge:", labels)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			ui.Warn.Println("Nothing selected. Aborting.")
			return nil
		}
		narrowed := make([]syscache.Cache, 0, len(selected))
		for _, idx := range selected {
			if idx >= 0 && idx < len(caches) {
				narrowed = append(narrowed, caches[idx])
			}
		}
		caches = narrowed
	}

	if dryRun {
		ui.PrintDryRunHeader()
	}

	tasks := make([]cleaner.Task, 0, len(caches))
	var total int64
	for _, c := range caches {
		cache := c
		total += c.Size
		tasks = append(tasks, cleaner.Task{
			Label: fmt.Sprintf("%s (%s)", cache.Name, report.FormatBytes(cache.Size)),
			Bytes: cache.Size,
			Run: func(ctx context.Context) error {
				_, err := syscache.Purge(cache)
				return err
			},
		})
	}

	flow := &cleaner.Flow{Force: force, DryRun: dryRun, Prompt: "Purge the listed caches?"}
	outcome, err := flow.Run(ctx, tasks)
	if err != nil {
		return err
	}
	if outcome == cleaner.OutcomeDone {
		pterm.Println()
		pterm.Printf("%s %s\n",
			pterm.Bold.Sprint("Space freed:"),
			pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(report.FormatBytes(total)))
	}
	return nil
}
