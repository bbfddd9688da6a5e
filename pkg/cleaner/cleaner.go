// Package cleaner implements the collect → confirm → execute flow shared by
// the purge, select, nuclear and system-cache commands. The invariant it
// guards: no mutating call happens without an explicit confirmation, --force,
// or outside of --dry-run.
package cleaner

import (
	"context"
	"errors"
	"fmt"

	"dockerase/pkg/docker"
	"dockerase/pkg/report"
	"dockerase/pkg/ui"

	"github.com/pterm/pterm"
)

// Task is one confirmed cleanup action. Bytes is the daemon's (or the
// filesystem's) estimate of the space it frees, zero when unknown.
type Task struct {
	Label string
	Bytes int64
	Run   func(ctx context.Context) error
}

// Flow drives a candidate set through confirmation and execution.
type Flow struct {
	Force  bool
	DryRun bool

	// Prompt is the confirmation question. Confirm overrides the interactive
	// prompt; tests inject it.
	Prompt  string
	Confirm func(prompt string) (bool, error)
}

func (f *Flow) confirm() (bool, error) {
	prompt := f.Prompt
	if prompt == "" {
		prompt = "Proceed with cleanup?"
	}
	if f.Confirm != nil {
		return f.Confirm(prompt)
	}
	return ui.Confirm(prompt)
}

// Outcome reports how a flow run ended.
type Outcome int

const (
	// OutcomeNothing means there were no candidates to act on.
	OutcomeNothing Outcome = iota
	// OutcomeDryRun means the plan was printed and nothing was touched.
	OutcomeDryRun
	// OutcomeAborted means the user declined confirmation; nothing was touched.
	OutcomeAborted
	// OutcomeDone means the tasks were executed (possibly with failures).
	OutcomeDone
)

// Run executes the flow over tasks. Individual task failures are reported and
// aggregated; an empty run, a dry run, and a declined confirmation all finish
// without a single mutating call.
func (f *Flow) Run(ctx context.Context, tasks []Task) (Outcome, error) {
	if len(tasks) == 0 {
		ui.Success.Println("Nothing to clean up. Docker is already tidy!")
		return OutcomeNothing, nil
	}

	var total int64
	for _, t := range tasks {
		total += t.Bytes
	}
	if total > 0 {
		pterm.Printf("Found %s of reclaimable space:\n\n", report.FormatBytes(total))
	}
	for _, t := range tasks {
		ui.Info.Println(t.Label)
	}
	pterm.Println()

	if f.DryRun {
		ui.Warn.Println("Dry run - no changes made")
		return OutcomeDryRun, nil
	}

	if !f.Force {
		ok, err := f.confirm()
		if err != nil {
			return OutcomeAborted, err
		}
		if !ok {
			ui.Warn.Println("Aborted - no changes made")
			return OutcomeAborted, nil
		}
		pterm.Println()
	}

	failed := 0
	for _, t := range tasks {
		spinner, _ := ui.Spin(t.Label)
		err := t.Run(ctx)
		switch {
		case errors.Is(err, docker.ErrNotFound):
			spinner.Warning(t.Label + " - already gone, skipped")
		case err != nil:
			spinner.Fail(fmt.Sprintf("%s: %v", t.Label, err))
			failed++
		default:
			spinner.Success(t.Label)
		}
	}

	if failed > 0 {
		return OutcomeDone, fmt.Errorf("%d of %d cleanup tasks failed", failed, len(tasks))
	}
	return OutcomeDone, nil
}
