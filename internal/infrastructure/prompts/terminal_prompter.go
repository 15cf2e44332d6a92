// Package prompts implements the interactive console surface with
// Bubble Tea prompts and lipgloss-styled output.
package prompts

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomkit/loom/internal/domain/entities"
)

// TerminalPrompter implements repositories.Prompter against the terminal.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Intro prints the opening banner for a run.
func (it *TerminalPrompter) Intro(title string) {
	fmt.Println()
	fmt.Println(titleStyle.Render(title))
	fmt.Println()
}

// Outro prints the closing success message.
func (it *TerminalPrompter) Outro(message string) {
	fmt.Println()
	fmt.Println(successStyle.Render(message))
}

// Cancel prints the cancellation message.
func (it *TerminalPrompter) Cancel(message string) {
	fmt.Println()
	fmt.Println(errorStyle.Render(message))
}

// Success prints a per-item success line.
func (it *TerminalPrompter) Success(format string, args ...any) {
	fmt.Println(successStyle.Render("  ✓ " + fmt.Sprintf(format, args...)))
}

// Failure prints a per-item failure line.
func (it *TerminalPrompter) Failure(format string, args ...any) {
	fmt.Println(errorStyle.Render("  ✗ " + fmt.Sprintf(format, args...)))
}

// Info prints a neutral informational line.
func (it *TerminalPrompter) Info(format string, args ...any) {
	fmt.Println(mutedStyle.Render("  " + fmt.Sprintf(format, args...)))
}

// Select prompts for exactly one of the given options.
func (it *TerminalPrompter) Select(ctx context.Context, label string, options []string) (string, error) {
	final, err := tea.NewProgram(newSelectModel(label, options), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", wrapPromptErr(err)
	}

	model := final.(selectModel)
	if model.cancelled {
		return "", entities.ErrCancelled
	}
	return model.Choice(), nil
}

// MultiSelect prompts for any subset of the given options.
func (it *TerminalPrompter) MultiSelect(ctx context.Context, label string, options []string) ([]string, error) {
	final, err := tea.NewProgram(newMultiSelectModel(label, options), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, wrapPromptErr(err)
	}

	model := final.(multiSelectModel)
	if model.cancelled {
		return nil, entities.ErrCancelled
	}
	return model.Choices(), nil
}

// wrapPromptErr maps a killed program (context cancelled mid-prompt) to the
// domain cancellation error.
func wrapPromptErr(err error) error {
	if errors.Is(err, tea.ErrProgramKilled) {
		return entities.ErrCancelled
	}
	return fmt.Errorf("prompt failed: %w", err)
}
