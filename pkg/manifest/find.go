package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// control directories that never contain release units
var skipDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".bzr": true,
	".svn": true,
}

// FindPackages walks root and returns every package found, keyed by the
// directory path relative to root ("." for a manifest at the root itself).
// An empty result is ErrNoPackagesFound.
func FindPackages(fs afero.Fs, root string) (map[string]Package, error) {
	packages := make(map[string]Package)
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != FileName {
			return nil
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		pkg, err := Parse(fs, filepath.Dir(path))
		if err != nil {
			return err
		}
		pkg.Path = rel
		packages[rel] = pkg
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	if len(packages) == 0 {
		return nil, ErrNoPackagesFound
	}
	return packages, nil
}

// Sorted returns the packages ordered by path, for deterministic iteration.
func Sorted(packages map[string]Package) []Package {
	paths := make([]string, 0, len(packages))
	for path := range packages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	out := make([]Package, 0, len(paths))
	for _, path := range paths {
		out = append(out, packages[path])
	}
	return out
}
