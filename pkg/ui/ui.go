package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	// Emojis
	SuccessEmoji = "✅"
	ErrorEmoji   = "❌"
	InfoEmoji    = "→ "
	CleanEmoji   = "🧹"
	NukeEmoji    = "☢️ "

	// Printers
	Info    = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: InfoEmoji, Style: pterm.NewStyle(pterm.FgCyan)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Success = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: SuccessEmoji, Style: pterm.NewStyle(pterm.FgGreen)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Warn    = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: "⚠️ ", Style: pterm.NewStyle(pterm.FgYellow)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Error   = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: ErrorEmoji, Style: pterm.NewStyle(pterm.FgRed)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
)

func init() {
	pterm.EnableColor()
}

// Spin configures and returns a spinner
func Spin(text string) (*pterm.SpinnerPrinter, error) {
	pterm.DefaultSpinner.Sequence = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return pterm.DefaultSpinner.WithText(text).Start()
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(prompt string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(prompt)
}

var (
	red = lipgloss.Color("#FF4444")

	warningBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(red).
			Foreground(red).
			Bold(true).
			Padding(0, 2)
)

// PrintNuclearWarning renders the red panel shown before a full wipe.
func PrintNuclearWarning() {
	lines := []string{
		"☢️  NUCLEAR MODE WARNING ☢️",
		"",
		"This will PERMANENTLY DELETE:",
		"• ALL containers (running and stopped)",
		"• ALL images",
		"• ALL volumes (including data!)",
		"• ALL custom networks",
		"• ALL build cache",
	}
	pterm.Println(warningBox.Render(strings.Join(lines, "\n")))
	pterm.Println()
}

// PrintDryRunHeader announces that no changes will be made.
func PrintDryRunHeader() {
	pterm.NewStyle(pterm.FgYellow, pterm.Bold).Println("[DRY RUN] No changes will be made")
	pterm.Println()
}

// PrintSectionHeader prints a bold cyan title with a dim rule under it.
func PrintSectionHeader(title string) {
	pterm.NewStyle(pterm.FgCyan, pterm.Bold).Println(title)
	pterm.NewStyle(pterm.FgGray).Println(strings.Repeat("═", 50))
	pterm.Println()
}

// PrintRule prints a dim horizontal rule.
func PrintRule() {
	pterm.NewStyle(pterm.FgGray).Println(strings.Repeat("─", 50))
}
