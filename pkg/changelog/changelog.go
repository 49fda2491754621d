// Package changelog answers one question for the release workflow: does a
// package's changelog contain an entry for a given version?
package changelog

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when a package directory has no changelog file.
var ErrNotFound = errors.New("no changelog file")

// file names probed in order when no explicit name is configured
var candidates = []string{"CHANGELOG.md", "CHANGELOG.rst"}

// Changelog is a loaded changelog file.
type Changelog struct {
	Path    string
	content string
}

// FromPath loads the changelog for the package rooted at dir. fileName
// overrides the default candidates when non-empty.
func FromPath(fs afero.Fs, dir, fileName string) (*Changelog, error) {
	names := candidates
	if fileName != "" {
		names = []string{fileName}
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			continue
		}
		return &Changelog{Path: path, content: string(data)}, nil
	}
	return nil, ErrNotFound
}

// HasEntry reports whether the changelog contains a heading for version.
// A heading is any line whose first word, after markdown heading markers,
// is exactly the version; this covers both "## 1.3.0 (2026-08-25)" and the
// rst convention of a bare version line over an underline.
func (c *Changelog) HasEntry(version string) bool {
	for _, line := range strings.Split(c.content, "\n") {
		line = strings.TrimLeft(line, "# ")
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == version {
			return true
		}
	}
	return false
}
