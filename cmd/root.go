package cmd

import (
	"context"
	"os"

	"dockerase/pkg/docker"
	"dockerase/pkg/report"
	"dockerase/pkg/ui"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	nuclearFlag bool
	forceFlag   bool
	dryRunFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "dockerase",
	Short: "Docker cleaning utility CLI",
	Long: `dockerase inspects and removes unused Docker resources (images, containers,
volumes, build cache) to reclaim disk space. Run without a subcommand to see
the current usage overview; nothing is removed without an explicit mode.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if nuclearFlag {
			return nuclearRunner(cmd.Context(), forceFlag, dryRunFlag)
		}
		return runOverview(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&nuclearFlag, "nuclear", false, "Remove ALL Docker resources (containers, images, volumes, networks, build cache)")
	rootCmd.PersistentFlags().BoolVarP(&forceFlag, "force", "f", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be removed without making changes")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ui.PrintBanner()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.Error.Println(err.Error())
		os.Exit(1)
	}
}

// GetRootCmd returns the root cobra command
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// connect opens a daemon connection and verifies it answers.
func connect(ctx context.Context) (docker.Engine, error) {
	eng, err := docker.Connect()
	if err != nil {
		return nil, err
	}
	if err := eng.Ping(ctx); err != nil {
		_ = eng.Close()
		return nil, err
	}
	return eng, nil
}

func runOverview(ctx context.Context) error {
	eng, err := connect(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	ui.PrintSectionHeader("Docker Space Usage")

	usage, err := eng.Usage(ctx)
	if err != nil {
		return err
	}
	report.Render(os.Stdout, usage)

	pterm.Println()
	ui.PrintRule()
	pterm.Printf("Run %s to clean up safely\n", pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("dockerase purge"))
	pterm.Printf("Run %s to remove everything\n", pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("dockerase --nuclear"))
	return nil
}
