package manifest

import "fmt"

// MetapackageError reports a metapackage that violates the structural rules.
type MetapackageError struct {
	Path   string
	Reason string
}

func (e *MetapackageError) Error() string {
	return fmt.Sprintf("invalid metapackage %s: %s", e.Path, e.Reason)
}

// ValidateMetapackage checks the structural rules for metapackages: they
// declare dependencies only, with no build section and no artifacts.
// Packages not flagged as metapackages always pass.
func ValidateMetapackage(pkg Package) error {
	if !pkg.Metapackage {
		return nil
	}
	switch {
	case pkg.Build != nil:
		return &MetapackageError{Path: pkg.Path, Reason: "declares a build section"}
	case len(pkg.Artifacts) > 0:
		return &MetapackageError{Path: pkg.Path, Reason: "declares build artifacts"}
	case len(pkg.Dependencies) == 0:
		return &MetapackageError{Path: pkg.Path, Reason: "declares no dependencies"}
	}
	return nil
}
