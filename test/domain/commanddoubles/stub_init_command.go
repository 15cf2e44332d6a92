//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/loomkit/loom/internal/domain/commands"
)

// StubInitCommand implements commands.Init with canned answers.
type StubInitCommand struct {
	Created    bool
	ExecuteErr error
	// spy: options received
	Options []commands.InitOptions
}

var _ commands.Init = (*StubInitCommand)(nil)

func (c *StubInitCommand) Execute(_ context.Context, opts commands.InitOptions) (bool, error) {
	c.Options = append(c.Options, opts)
	return c.Created, c.ExecuteErr
}
