package cleaner

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// styling
var (
	cyan   = lipgloss.Color("#00FFFF")
	green  = lipgloss.Color("#00CC66")
	gray   = lipgloss.Color("#666666")
	orange = lipgloss.Color("#FF7400")

	titleStyle   = lipgloss.NewStyle().Foreground(orange).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(green)
	helpStyle    = lipgloss.NewStyle().Foreground(gray)
)

type checklistModel struct {
	title   string
	labels  []string
	checked []bool
	cursor  int
	aborted bool
}

func newChecklist(title string, labels []string) checklistModel {
	return checklistModel{
		title:   title,
		labels:  labels,
		checked: make([]bool, len(labels)),
	}
}

func (m checklistModel) Init() tea.Cmd { return nil }

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.labels)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(m.checked) {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	case "a":
		all := true
		for _, c := range m.checked {
			if !c {
				all = false
				break
			}
		}
		for i := range m.checked {
			m.checked[i] = !all
		}
	case "enter":
		return m, tea.Quit
	}
	return m, nil
}

func (m checklistModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(helpStyle.Render("space: toggle • a: toggle all • enter: confirm • q: abort") + "\n\n")
	for i, label := range m.labels {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		line := label
		if m.checked[i] {
			box = checkedStyle.Render("[x]")
			line = checkedStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, line))
	}
	return b.String()
}

func (m checklistModel) selected() []int {
	var idx []int
	for i, c := range m.checked {
		if c {
			idx = append(idx, i)
		}
	}
	return idx
}

// Choose presents an interactive checklist and returns the selected indexes.
// An aborted checklist (q/esc/ctrl+c) returns an empty selection.
func Choose(title string, labels []string) ([]int, error) {
	p := tea.NewProgram(newChecklist(title, labels))
	out, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := out.(checklistModel)
	if !ok || m.aborted {
		return nil, nil
	}
	return m.selected(), nil
}
