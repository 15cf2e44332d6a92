package repositories

import "context"

// Prompter abstracts the interactive console surface. Prompt methods block
// until the user confirms or cancels; cancellation is reported as
// entities.ErrCancelled.
type Prompter interface {
	// Intro prints the opening banner for a run.
	Intro(title string)

	// Outro prints the closing success message.
	Outro(message string)

	// Cancel prints the cancellation message.
	Cancel(message string)

	// Success prints a per-item success line.
	Success(format string, args ...any)

	// Failure prints a per-item failure line.
	Failure(format string, args ...any)

	// Info prints a neutral informational line.
	Info(format string, args ...any)

	// Select prompts for exactly one of the given options.
	Select(ctx context.Context, label string, options []string) (string, error)

	// MultiSelect prompts for any subset of the given options.
	MultiSelect(ctx context.Context, label string, options []string) ([]string, error)
}
