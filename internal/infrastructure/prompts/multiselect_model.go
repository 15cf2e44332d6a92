package prompts

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// multiSelectModel is a Bubble Tea leaf prompting for a subset of options.
type multiSelectModel struct {
	label     string
	options   []string
	cursor    int
	picked    map[int]bool
	done      bool
	cancelled bool
}

func newMultiSelectModel(label string, options []string) multiSelectModel {
	return multiSelectModel{
		label:   label,
		options: options,
		picked:  make(map[int]bool),
	}
}

// Init returns nil; no commands needed at startup.
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, toggling, confirmation, and cancellation keys.
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case " ":
		m.picked[m.cursor] = !m.picked[m.cursor]
	case "a":
		m.toggleAll()
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// toggleAll selects every option, or clears the selection if everything is
// already selected.
func (m multiSelectModel) toggleAll() {
	all := true
	for i := range m.options {
		if !m.picked[i] {
			all = false
			break
		}
	}
	for i := range m.options {
		m.picked[i] = !all
	}
}

// View renders the options with cursor and checkbox markers.
func (m multiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n")

	for i, option := range m.options {
		box := "[ ]"
		if m.picked[i] {
			box = "[x]"
		}
		line := box + " " + option
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · space toggle · a all · enter confirm · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Choices returns the picked options in display order.
func (m multiSelectModel) Choices() []string {
	var choices []string
	for i, option := range m.options {
		if m.picked[i] {
			choices = append(choices, option)
		}
	}
	return choices
}
