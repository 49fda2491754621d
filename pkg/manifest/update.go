package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// UpdateVersions rewrites the version field of every given package's
// manifest to newVersion. Package paths are resolved against root. Only the
// top-level version line changes; the rest of each file is preserved byte
// for byte so comments and ordering survive.
func UpdateVersions(fs afero.Fs, root string, packages []Package, newVersion string) error {
	for _, pkg := range packages {
		path := filepath.Join(root, pkg.ManifestPath())
		if err := updateVersion(fs, path, newVersion); err != nil {
			return err
		}
	}
	return nil
}

func updateVersion(fs afero.Fs, path, newVersion string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	lines := strings.Split(string(data), "\n")
	replaced := false
	for i, line := range lines {
		// only the top-level field; nested mappings are indented
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}
		if !strings.HasPrefix(line, "version:") {
			continue
		}
		lines[i] = "version: " + newVersion
		replaced = true
		break
	}
	if !replaced {
		return fmt.Errorf("%s: no version field to rewrite", path)
	}
	info, err := fs.Stat(path)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, []byte(strings.Join(lines, "\n")), info.Mode())
}
