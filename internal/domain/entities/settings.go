package entities

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the project configuration file written by `loom init`.
const SettingsFileName = "components.yml"

// Stacks returns the target frameworks `loom init` can scaffold for.
func Stacks() []string {
	return []string{"nextjs", "svelte", "remix", "astro"}
}

// Settings is the flat project configuration stored in components.yml.
type Settings struct {
	Stack   string  `yaml:"stack"`
	Style   string  `yaml:"style"`
	Aliases Aliases `yaml:"aliases"`

	// ContinueOnInstallFailure keeps the copy stage running when the
	// package-manager subprocess exits non-zero.
	ContinueOnInstallFailure bool `yaml:"continue_on_install_failure"`
}

// Aliases holds the path aliases the components are written against.
type Aliases struct {
	Components string `yaml:"components"`
	Utils      string `yaml:"utils"`
}

// NewDefaultSettings creates the template written at init time.
func NewDefaultSettings(stack string) *Settings {
	return &Settings{
		Stack: stack,
		Style: "default",
		Aliases: Aliases{
			Components: "components/ui",
			Utils:      "lib/utils",
		},
		ContinueOnInstallFailure: true,
	}
}

// SettingsPath returns the configuration file path for a project root.
func SettingsPath(projectRoot string) string {
	return filepath.Join(projectRoot, SettingsFileName)
}

// LoadSettings reads components.yml from the project root. A missing file is
// not an error: the defaults apply, so `add` works in uninitialized projects.
func LoadSettings(projectRoot string) (*Settings, error) {
	data, err := os.ReadFile(SettingsPath(projectRoot))
	if os.IsNotExist(err) {
		return NewDefaultSettings(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFileName, err)
	}

	settings := NewDefaultSettings("")
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFileName, unmarshalErr)
	}
	return settings, nil
}

// Write marshals the settings to the given path.
func (it *Settings) Write(path string) error {
	data, err := yaml.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", path, writeErr)
	}
	return nil
}
