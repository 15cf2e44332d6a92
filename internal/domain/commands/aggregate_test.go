//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomkit/loom/internal/domain/commands"
	"github.com/loomkit/loom/test/infrastructure/repositorydoubles"
)

func TestAddCommand_Aggregation(t *testing.T) {
	t.Parallel()

	runWith := func(t *testing.T, names []string) ([]string, []string) {
		t.Helper()

		library := newComponentLibrary()
		installer := &repositorydoubles.SpyInstallerRepository{}
		prompter := &repositorydoubles.StubPrompter{}
		command := commands.NewAddCommand(library, installer, prompter, newNpmOnlyRegistry())

		report, err := command.Execute(context.Background(), commands.AddOptions{
			ProjectRoot: "/project",
			Components:  names,
		})
		require.NoError(t, err)
		return report.General.Sorted(), report.Primitives.Sorted()
	}

	t.Run("should be independent of selection order", func(t *testing.T) {
		t.Parallel()

		// given / when
		generalAB, primitivesAB := runWith(t, []string{"button", "card"})
		generalBA, primitivesBA := runWith(t, []string{"card", "button"})

		// then
		assert.Equal(t, generalAB, generalBA)
		assert.Equal(t, primitivesAB, primitivesBA)
	})

	t.Run("should collapse duplicate names in the input", func(t *testing.T) {
		t.Parallel()

		// given / when
		generalOnce, primitivesOnce := runWith(t, []string{"button"})
		generalTwice, primitivesTwice := runWith(t, []string{"button", "button"})

		// then
		assert.Equal(t, generalOnce, generalTwice)
		assert.Equal(t, primitivesOnce, primitivesTwice)
	})

	t.Run("should keep UI primitives out of the general set", func(t *testing.T) {
		t.Parallel()

		// given / when
		general, primitives := runWith(t, []string{"button", "card"})

		// then
		assert.NotContains(t, general, "@radix-ui/react-slot")
		assert.Equal(t, []string{"@radix-ui/react-slot"}, primitives)
	})
}
