// Package reporter renders the outcome of a release run: what was bumped,
// and in local mode which commands remain for the operator to run.
package reporter

import (
	"io"

	"github.com/multi-package-release-tool/pkg/release"
)

type Reporter interface {
	Report(result *release.Result) error
}

func New(format string, w io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{w: w}
	default:
		return &TableReporter{w: w}
	}
}
