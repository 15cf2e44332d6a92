package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/loomkit/loom/internal/domain/entities"
	"github.com/loomkit/loom/internal/domain/repositories"
	infraRepos "github.com/loomkit/loom/internal/infrastructure/repositories"
)

// Add is the interface for the add command.
type Add interface {
	Execute(ctx context.Context, opts AddOptions) (*entities.Report, error)
}

// AddOptions holds runtime options for a single add run.
type AddOptions struct {
	ProjectRoot string
	Components  []string // explicit names; empty means prompt interactively

	// ContinueOnInstallFailure downgrades a failed dependency installation
	// to a warning so the copy stage still runs.
	ContinueOnInstallFailure bool
}

// AddCommand orchestrates the installation pipeline:
// select components -> aggregate dependencies -> install -> copy -> report.
type AddCommand struct {
	components      repositories.ComponentRepository
	installer       repositories.InstallerRepository
	prompter        repositories.Prompter
	managerRegistry *infraRepos.ManagerRegistry
}

// NewAddCommand creates a new AddCommand with its collaborators.
func NewAddCommand(
	components repositories.ComponentRepository,
	installer repositories.InstallerRepository,
	prompter repositories.Prompter,
	managerRegistry *infraRepos.ManagerRegistry,
) *AddCommand {
	return &AddCommand{
		components:      components,
		installer:       installer,
		prompter:        prompter,
		managerRegistry: managerRegistry,
	}
}

// Execute runs the full pipeline and returns the per-component report.
// Component-level copy failures are recorded, not fatal; validation and
// cancellation abort the run.
func (it *AddCommand) Execute(ctx context.Context, opts AddOptions) (*entities.Report, error) {
	names, err := it.selectComponents(ctx, opts)
	if err != nil {
		return nil, err
	}

	general, primitives, aggErr := it.aggregateDependencies(opts.ProjectRoot, names)
	if aggErr != nil {
		return nil, aggErr
	}

	manager := it.managerRegistry.Detect(opts.ProjectRoot)
	logger.Infof("Detected package manager: %s", manager.Name())

	all := general.Union(primitives)
	if installErr := it.installer.Install(ctx, opts.ProjectRoot, manager, all.Sorted()); installErr != nil {
		if !opts.ContinueOnInstallFailure {
			return nil, installErr
		}
		logger.Warnf("Dependency installation failed: %v (continuing with copy)", installErr)
	}

	report := &entities.Report{
		Manager:    manager.Name(),
		General:    general,
		Primitives: primitives,
	}
	it.copyComponents(opts.ProjectRoot, names, report)

	return report, nil
}

// selectComponents resolves the component names for this run, either from
// the explicit arguments (validated against the available set) or from an
// interactive multi-select.
func (it *AddCommand) selectComponents(ctx context.Context, opts AddOptions) ([]string, error) {
	available, err := it.components.List(opts.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to list available components: %w", err)
	}
	if len(available) == 0 {
		return nil, entities.ErrNoComponents
	}

	if len(opts.Components) > 0 {
		if unknown := unknownNames(opts.Components, available); len(unknown) > 0 {
			return nil, &entities.ValidationError{Unknown: unknown, Available: available}
		}
		return opts.Components, nil
	}

	names, promptErr := it.prompter.MultiSelect(ctx, "Which components would you like to install?", available)
	if promptErr != nil {
		return nil, promptErr
	}
	if len(names) == 0 {
		return nil, entities.ErrNoSelection
	}
	return names, nil
}

// copyComponents writes each selected component into the project, tracking
// success and failure independently so one bad component never aborts the batch.
func (it *AddCommand) copyComponents(projectRoot string, names []string, report *entities.Report) {
	for _, name := range names {
		component, readErr := it.components.Read(projectRoot, name)
		if readErr != nil {
			logger.Warnf("Failed to read component %q: %v", name, readErr)
			report.Failed = append(report.Failed, name)
			continue
		}

		if installErr := it.components.Install(projectRoot, component); installErr != nil {
			logger.Warnf("Failed to copy component %q: %v", name, installErr)
			report.Failed = append(report.Failed, name)
			continue
		}

		report.Installed = append(report.Installed, name)
	}
}

// unknownNames returns the supplied names that are not in the available set.
func unknownNames(supplied, available []string) []string {
	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}

	var unknown []string
	for _, name := range supplied {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
