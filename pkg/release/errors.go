package release

import (
	"fmt"
	"strings"
)

// DirtyManifestError means a manifest has uncommitted changes; the run
// aborts before any mutation so the operator can commit or revert first.
type DirtyManifestError struct {
	Path string
}

func (e *DirtyManifestError) Error() string {
	return fmt.Sprintf("uncommitted changes in %s; commit or revert them before releasing", e.Path)
}

// ChangelogsMissingError means the operator declined to release with
// packages lacking an entry for the new version.
type ChangelogsMissingError struct {
	Names []string
}

func (e *ChangelogsMissingError) Error() string {
	return "missing changelog entries for: " + strings.Join(e.Names, ", ")
}
