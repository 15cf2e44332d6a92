package manager

import (
	"os"
	"path/filepath"
)

// PnpmRepository invokes the pnpm CLI when the project has a pnpm-lock.yaml.
type PnpmRepository struct{}

// NewPnpmRepository creates the pnpm manager.
func NewPnpmRepository() *PnpmRepository {
	return &PnpmRepository{}
}

// Name returns "pnpm".
func (it *PnpmRepository) Name() string {
	return "pnpm"
}

// Detect returns true if pnpm-lock.yaml exists in the project root.
func (it *PnpmRepository) Detect(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, "pnpm-lock.yaml"))
	return err == nil
}

// InstallCommand returns `pnpm add <packages...>`.
func (it *PnpmRepository) InstallCommand(packages []string) []string {
	return append([]string{"pnpm", "add"}, packages...)
}
