// Package version implements the semantic-version operations a release
// needs: bumping one segment and checking that every package in the tree
// declares the same current version.
package version

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Bump kinds.
const (
	BumpMajor = "major"
	BumpMinor = "minor"
	BumpPatch = "patch"
)

// ValidBump reports whether kind names a supported bump granularity.
func ValidBump(kind string) bool {
	switch kind {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	}
	return false
}

// Bump returns current with the requested segment incremented and all lower
// segments reset to zero. The result always orders strictly after current.
func Bump(current, kind string) (string, error) {
	v, err := semver.StrictNewVersion(current)
	if err != nil {
		return "", fmt.Errorf("parse version %q: %w", current, err)
	}
	var next semver.Version
	switch kind {
	case BumpMajor:
		next = v.IncMajor()
	case BumpMinor:
		next = v.IncMinor()
	case BumpPatch:
		next = v.IncPatch()
	default:
		return "", fmt.Errorf("unknown bump kind %q (want major, minor, or patch)", kind)
	}
	return next.String(), nil
}

// MismatchError reports packages that do not agree on a current version.
// A divergent tree is unrecoverable for a release run; the operator must
// reconcile versions by hand before retrying.
type MismatchError struct {
	Versions map[string]string // package name -> declared version
}

func (e *MismatchError) Error() string {
	names := make([]string, 0, len(e.Versions))
	for name := range e.Versions {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s: %s", name, e.Versions[name]))
	}
	return "package versions diverge: " + strings.Join(pairs, ", ")
}

// VerifyEqual returns the version shared by all packages, or a
// *MismatchError listing every package's declared version when they differ.
func VerifyEqual(versions map[string]string) (string, error) {
	var shared string
	for _, v := range versions {
		if shared == "" {
			shared = v
			continue
		}
		if v != shared {
			return "", &MismatchError{Versions: versions}
		}
	}
	if shared == "" {
		return "", fmt.Errorf("no versions to compare")
	}
	return shared, nil
}
