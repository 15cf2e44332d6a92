//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/loomkit/loom/internal/domain/repositories"
)

// RunCall records a single invocation of Run.
type RunCall struct {
	Dir  string
	Argv []string
}

// SpyCommandRunner implements repositories.CommandRunner as a configurable spy.
type SpyCommandRunner struct {
	RunErr error
	// spy: calls received
	Calls []RunCall
}

var _ repositories.CommandRunner = (*SpyCommandRunner)(nil)

func (r *SpyCommandRunner) Run(_ context.Context, dir string, argv []string) error {
	r.Calls = append(r.Calls, RunCall{Dir: dir, Argv: argv})
	return r.RunErr
}
