//go:build unit

package commands_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomkit/loom/internal/domain/commands"
	"github.com/loomkit/loom/internal/domain/entities"
	"github.com/loomkit/loom/test/infrastructure/repositorydoubles"
)

func TestInitCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should write the template with the selected stack", func(t *testing.T) {
		t.Parallel()

		// given
		projectRoot := t.TempDir()
		prompter := &repositorydoubles.StubPrompter{SelectAnswer: "svelte"}
		command := commands.NewInitCommand(prompter)

		// when
		created, err := command.Execute(context.Background(), commands.InitOptions{
			ProjectRoot: projectRoot,
		})

		// then
		require.NoError(t, err)
		assert.True(t, created)

		settings, loadErr := entities.LoadSettings(projectRoot)
		require.NoError(t, loadErr)
		assert.Equal(t, "svelte", settings.Stack)
		assert.Equal(t, "default", settings.Style)
	})

	t.Run("should be a no-op when the configuration already exists", func(t *testing.T) {
		t.Parallel()

		// given
		projectRoot := t.TempDir()
		path := entities.SettingsPath(projectRoot)
		require.NoError(t, os.WriteFile(path, []byte("stack: remix\n"), 0o644))
		before, statErr := os.Stat(path)
		require.NoError(t, statErr)

		prompter := &repositorydoubles.StubPrompter{SelectAnswer: "astro"}
		command := commands.NewInitCommand(prompter)

		// when
		created, err := command.Execute(context.Background(), commands.InitOptions{
			ProjectRoot: projectRoot,
		})

		// then
		require.NoError(t, err)
		assert.False(t, created)
		assert.Empty(t, prompter.SelectLabels, "existing config must short-circuit before prompting")

		after, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, before.Size(), after.Size())
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("should propagate prompt cancellation", func(t *testing.T) {
		t.Parallel()

		// given
		projectRoot := t.TempDir()
		prompter := &repositorydoubles.StubPrompter{SelectErr: entities.ErrCancelled}
		command := commands.NewInitCommand(prompter)

		// when
		created, err := command.Execute(context.Background(), commands.InitOptions{
			ProjectRoot: projectRoot,
		})

		// then
		require.ErrorIs(t, err, entities.ErrCancelled)
		assert.False(t, created)
		assert.NoFileExists(t, entities.SettingsPath(projectRoot))
	})
}
