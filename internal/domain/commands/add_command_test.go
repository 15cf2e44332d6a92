//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomkit/loom/internal/domain/commands"
	"github.com/loomkit/loom/internal/domain/entities"
	infraRepos "github.com/loomkit/loom/internal/infrastructure/repositories"
	"github.com/loomkit/loom/test/domain/entitybuilders"
	"github.com/loomkit/loom/test/infrastructure/repositorydoubles"
)

func newComponentLibrary() *repositorydoubles.SpyComponentRepository {
	button := entitybuilders.NewComponentBuilder().BuildComponent()
	card := entitybuilders.NewComponentBuilder().
		WithName("card").
		WithPrimitives().
		BuildComponent()

	return &repositorydoubles.SpyComponentRepository{
		Components: map[string]*entities.Component{
			"button": button,
			"card":   card,
		},
		Names: []string{"button", "card"},
	}
}

func newNpmOnlyRegistry() *infraRepos.ManagerRegistry {
	return infraRepos.NewManagerRegistry(
		&repositorydoubles.StubPackageManagerRepository{
			ManagerName: "npm",
			Command:     []string{"npm", "install", "--save"},
		},
		&repositorydoubles.StubPackageManagerRepository{
			ManagerName: "yarn",
			Command:     []string{"yarn", "add"},
		},
		&repositorydoubles.StubPackageManagerRepository{
			ManagerName: "pnpm",
			Command:     []string{"pnpm", "add"},
		},
	)
}

func TestUnknownNames(t *testing.T) {
	t.Parallel()

	t.Run("should keep only the names outside the available set", func(t *testing.T) {
		t.Parallel()

		// given
		available := []string{"button", "card"}

		// when
		unknown := commands.UnknownNames([]string{"button", "tabs", "dialog"}, available)

		// then
		assert.Equal(t, []string{"tabs", "dialog"}, unknown)
	})

	t.Run("should return nil when every name is known", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Nil(t, commands.UnknownNames([]string{"card"}, []string{"button", "card"}))
	})
}

func TestAddCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should install explicit components and aggregate their dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		report, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
			Components:  []string{"button", "card"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"button", "card"}, report.Installed)
		assert.Empty(t, report.Failed)
		assert.Equal(t, "npm", report.Manager)
		assert.Equal(
			t,
			[]string{"class-variance-authority", "clsx", "tailwind-merge"},
			report.General.Sorted(),
		)
		assert.Equal(t, []string{"@radix-ui/react-slot"}, report.Primitives.Sorted())

		require.Len(t, installer.Calls, 1)
		assert.Equal(
			t,
			[]string{"@radix-ui/react-slot", "class-variance-authority", "clsx", "tailwind-merge"},
			installer.Calls[0].Packages,
		)
	})

	t.Run("should partition the selection into installed and failed", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		library.InstallErrs = map[string]error{"card": errors.New("disk full")}
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		report, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
			Components:  []string{"button", "card"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"button"}, report.Installed)
		assert.Equal(t, []string{"card"}, report.Failed)
		assert.ElementsMatch(
			t,
			append(report.Installed, report.Failed...),
			[]string{"button", "card"},
		)
	})

	t.Run("should reject unknown component names before installing anything", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		_, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
			Components:  []string{"button", "tabs"},
		})

		// then
		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"tabs"}, validationErr.Unknown)
		assert.Equal(t, []string{"button", "card"}, validationErr.Available)
		assert.Empty(t, installer.Calls)
		assert.Empty(t, library.InstalledNames)
	})

	t.Run("should prompt for components when none are supplied", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{MultiSelectAnswer: []string{"card"}}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		report, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"card"}, report.Installed)
		require.Len(t, prompter.MultiSelectOptions, 1)
		assert.Equal(t, []string{"button", "card"}, prompter.MultiSelectOptions[0])
	})

	t.Run("should propagate prompt cancellation", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{MultiSelectErr: entities.ErrCancelled}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		_, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
		})

		// then
		require.ErrorIs(t, err, entities.ErrCancelled)
		assert.Empty(t, installer.Calls)
	})

	t.Run("should fail when the source directory has no components", func(t *testing.T) {
		t.Parallel()

		// given
		library := &repositorydoubles.SpyComponentRepository{}
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		_, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
			Components:  []string{"button"},
		})

		// then
		require.ErrorIs(t, err, entities.ErrNoComponents)
	})

	t.Run("should fail when the prompt returns an empty selection", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		_, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
		})

		// then
		require.ErrorIs(t, err, entities.ErrNoSelection)
	})

	t.Run("should continue with the copy stage when installation fails", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{InstallErr: errors.New("exit status 1")}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		report, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot:              "/project",
			Components:               []string{"button"},
			ContinueOnInstallFailure: true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"button"}, report.Installed)
	})

	t.Run("should abort before copying when installation failures are fatal", func(t *testing.T) {
		t.Parallel()

		// given
		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{InstallErr: errors.New("exit status 1")}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		_, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot:              "/project",
			Components:               []string{"button"},
			ContinueOnInstallFailure: false,
		})

		// then
		require.Error(t, err)
		assert.Empty(t, library.InstalledNames)
	})

	t.Run("should skip the install subprocess when the dependency set is empty", func(t *testing.T) {
		t.Parallel()

		// given
		plain := entitybuilders.NewComponentBuilder().
			WithName("divider").
			WithDependencies().
			WithPrimitives().
			BuildComponent()
		library := &repositorydoubles.SpyComponentRepository{
			Components: map[string]*entities.Component{"divider": plain},
			Names:      []string{"divider"},
		}
		runner := &repositorydoubles.SpyCommandRunner{}
		installer := infraRepos.NewDependencyInstaller(runner)
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		// when
		report, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
			Components:  []string{"divider"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"divider"}, report.Installed)
		assert.Empty(t, runner.Calls)
	})
}
