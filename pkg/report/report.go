// Package report renders the disk-usage overview table. Pure formatting, no
// daemon access.
package report

import (
	"fmt"
	"io"

	"dockerase/pkg/docker"

	"github.com/docker/go-units"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pterm/pterm"
)

// FormatBytes renders a byte count the way the docker CLI does (SI units).
func FormatBytes(n int64) string {
	return units.HumanSize(float64(n))
}

// Render writes the per-category usage table followed by the total
// reclaimable line.
func Render(w io.Writer, u docker.Usage) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"TYPE", "TOTAL", "RECLAIMABLE"})
	t.SetStyle(table.StyleRounded)

	t.AppendRow(table.Row{
		"Images",
		FormatBytes(u.Images.Size),
		fmt.Sprintf("%s (%d unused)", FormatBytes(u.Images.Reclaimable), u.Images.Inactive()),
	})
	t.AppendRow(table.Row{
		"Containers",
		FormatBytes(u.Containers.Size),
		fmt.Sprintf("%s (%d stopped)", FormatBytes(u.Containers.Reclaimable), u.Containers.Inactive()),
	})
	t.AppendRow(table.Row{
		"Volumes",
		FormatBytes(u.Volumes.Size),
		fmt.Sprintf("%s (%d unused)", FormatBytes(u.Volumes.Reclaimable), u.Volumes.Inactive()),
	})
	t.AppendRow(table.Row{
		"Build Cache",
		FormatBytes(u.BuildCache.Size),
		FormatBytes(u.BuildCache.Reclaimable),
	})
	t.Render()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n",
		pterm.Bold.Sprint("Total Reclaimable:"),
		pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(FormatBytes(u.TotalReclaimable())))
}

// RenderSpaceSaved prints the before/after epilogue when space was freed.
func RenderSpaceSaved(w io.Writer, before, after int64) {
	if after >= before {
		return
	}
	saved := before - after
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s %s\n",
		pterm.Bold.Sprint("Space freed:"),
		pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(FormatBytes(saved)),
		pterm.NewStyle(pterm.FgGray).Sprintf("(%s → %s)", FormatBytes(before), FormatBytes(after)))
}
