//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/loomkit/loom/internal/domain/repositories"
)

// StubPrompter implements repositories.Prompter with canned answers and
// records everything printed for later inspection.
type StubPrompter struct {
	// --- Select ---
	SelectAnswer string
	SelectErr    error
	// spy: labels requested
	SelectLabels []string

	// --- MultiSelect ---
	MultiSelectAnswer []string
	MultiSelectErr    error
	// spy: option sets offered
	MultiSelectOptions [][]string

	// --- output spies ---
	Intros    []string
	Outros    []string
	Cancels   []string
	Successes []string
	Failures  []string
	Infos     []string
}

var _ repositories.Prompter = (*StubPrompter)(nil)

func (p *StubPrompter) Intro(title string)    { p.Intros = append(p.Intros, title) }
func (p *StubPrompter) Outro(message string)  { p.Outros = append(p.Outros, message) }
func (p *StubPrompter) Cancel(message string) { p.Cancels = append(p.Cancels, message) }

func (p *StubPrompter) Success(format string, args ...any) {
	p.Successes = append(p.Successes, fmt.Sprintf(format, args...))
}

func (p *StubPrompter) Failure(format string, args ...any) {
	p.Failures = append(p.Failures, fmt.Sprintf(format, args...))
}

func (p *StubPrompter) Info(format string, args ...any) {
	p.Infos = append(p.Infos, fmt.Sprintf(format, args...))
}

func (p *StubPrompter) Select(_ context.Context, label string, _ []string) (string, error) {
	p.SelectLabels = append(p.SelectLabels, label)
	return p.SelectAnswer, p.SelectErr
}

func (p *StubPrompter) MultiSelect(_ context.Context, _ string, options []string) ([]string, error) {
	p.MultiSelectOptions = append(p.MultiSelectOptions, options)
	return p.MultiSelectAnswer, p.MultiSelectErr
}
