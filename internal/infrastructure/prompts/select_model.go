package prompts

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a Bubble Tea leaf prompting for exactly one option.
type selectModel struct {
	label     string
	options   []string
	cursor    int
	done      bool
	cancelled bool
}

func newSelectModel(label string, options []string) selectModel {
	return selectModel{label: label, options: options}
}

// Init returns nil; no commands needed at startup.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, confirmation, and cancellation keys.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the options with a cursor marker.
func (m selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n")

	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + option))
		} else {
			b.WriteString(itemStyle.Render(option))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter confirm · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the highlighted option.
func (m selectModel) Choice() string {
	if len(m.options) == 0 {
		return ""
	}
	return m.options[m.cursor]
}
