// Package manifest discovers and mutates the per-package metadata files
// (package.yaml) that declare each release unit's name and version.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest file each release unit carries.
const FileName = "package.yaml"

// ErrNoPackagesFound is returned when the working tree contains no manifests.
var ErrNoPackagesFound = errors.New("no packages found in the working tree")

// Build describes how a package is built. Metapackages must not carry one.
type Build struct {
	Script  string   `yaml:"script,omitempty"`
	Targets []string `yaml:"targets,omitempty"`
}

// Package is one release unit, loaded once at the start of a run. The
// in-memory value is immutable; only the on-disk manifest is rewritten,
// through UpdateVersions.
type Package struct {
	Path         string   `yaml:"-"` // directory holding the manifest, relative to the tree root
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Description  string   `yaml:"description,omitempty"`
	Metapackage  bool     `yaml:"metapackage,omitempty"`
	Dependencies []string `yaml:"dependencies,omitempty"`
	Build        *Build   `yaml:"build,omitempty"`
	Artifacts    []string `yaml:"artifacts,omitempty"`
}

// ManifestPath returns the manifest file path relative to the tree root.
func (p Package) ManifestPath() string {
	return filepath.Join(p.Path, FileName)
}

// Parse reads and validates the manifest in dir. dir is kept as the
// package's Path.
func Parse(fs afero.Fs, dir string) (Package, error) {
	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Package{}, err
	}
	var pkg Package
	if err := yaml.Unmarshal(data, &pkg); err != nil {
		return Package{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if pkg.Name == "" {
		return Package{}, fmt.Errorf("%s: manifest declares no name", path)
	}
	if pkg.Version == "" {
		return Package{}, fmt.Errorf("%s: manifest declares no version", path)
	}
	pkg.Path = dir
	return pkg, nil
}
