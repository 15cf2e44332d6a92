// Package component reads the component library from the filesystem and
// copies installed components into the consumer project.
package component

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/loomkit/loom/internal/domain/entities"
)

const (
	sourceDirName = "ui"
	sourceExt     = ".tsx"
)

// targetDir returns the directory installed components are written to.
func targetDir(projectRoot string) string {
	return filepath.Join(projectRoot, "components", "ui")
}

// FileSystemRepository reads component sources from <root>/ui/*.tsx and
// installs them into <root>/components/ui/.
type FileSystemRepository struct {
	manifest Manifest
}

// NewFileSystemRepository creates a repository backed by the default manifest.
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{manifest: DefaultManifest()}
}

// Read loads a component and seeds its dependency lists from the manifest.
func (it *FileSystemRepository) Read(projectRoot, name string) (*entities.Component, error) {
	fileName := name + sourceExt
	path := filepath.Join(projectRoot, sourceDirName, fileName)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%q: %w", name, entities.ErrComponentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read component %q: %w", name, err)
	}

	return &entities.Component{
		Name:         name,
		Files:        []entities.File{{Name: fileName, Content: content}},
		Dependencies: it.manifest.Baseline(),
		Primitives:   it.manifest.PrimitivesFor(name),
	}, nil
}

// List returns the sorted component names found in the source directory.
func (it *FileSystemRepository) List(projectRoot string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(projectRoot, sourceDirName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sourceExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), sourceExt))
	}
	sort.Strings(names)
	return names, nil
}

// Install writes the component's files into the target directory, creating
// it recursively if absent. Existing files are overwritten.
func (it *FileSystemRepository) Install(projectRoot string, component *entities.Component) error {
	dir := targetDir(projectRoot)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	for _, file := range component.Files {
		path := filepath.Join(dir, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debugf("Wrote %s", path)
	}
	return nil
}
