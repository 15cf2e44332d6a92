package repositories

import "context"

// CommandRunner executes an external command synchronously, inheriting the
// invoking process's standard streams so the user sees live output.
type CommandRunner interface {
	Run(ctx context.Context, dir string, argv []string) error
}
