//go:build integration || unit || test

// Package commanddoubles provides test doubles for the domain command
// interfaces. These are hand-crafted implementations — no mock frameworks.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/loomkit/loom/internal/domain/commands"
	"github.com/loomkit/loom/internal/domain/entities"
)

// StubAddCommand implements commands.Add with a canned report.
type StubAddCommand struct {
	Report     *entities.Report
	ExecuteErr error
	// spy: options received
	Options []commands.AddOptions
}

var _ commands.Add = (*StubAddCommand)(nil)

func (c *StubAddCommand) Execute(_ context.Context, opts commands.AddOptions) (*entities.Report, error) {
	c.Options = append(c.Options, opts)
	if c.ExecuteErr != nil {
		return nil, c.ExecuteErr
	}
	return c.Report, nil
}
