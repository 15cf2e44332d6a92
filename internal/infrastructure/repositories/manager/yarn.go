package manager

import (
	"os"
	"path/filepath"
)

// YarnRepository invokes the yarn CLI when the project has a yarn.lock.
type YarnRepository struct{}

// NewYarnRepository creates the yarn manager.
func NewYarnRepository() *YarnRepository {
	return &YarnRepository{}
}

// Name returns "yarn".
func (it *YarnRepository) Name() string {
	return "yarn"
}

// Detect returns true if yarn.lock exists in the project root. The lockfile
// is only checked for existence, never parsed.
func (it *YarnRepository) Detect(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, "yarn.lock"))
	return err == nil
}

// InstallCommand returns `yarn add <packages...>`.
func (it *YarnRepository) InstallCommand(packages []string) []string {
	return append([]string{"yarn", "add"}, packages...)
}
