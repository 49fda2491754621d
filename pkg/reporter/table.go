package reporter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/multi-package-release-tool/pkg/release"
)

type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(result *release.Result) error {
	fmt.Fprintf(r.w, "Release %s -> %s (%s bump, %s)\n\n",
		result.Plan.OldVersion, result.Plan.NewVersion, result.Plan.Bump, result.VcsType)

	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PACKAGE\tPATH\tVERSION")
	fmt.Fprintln(w, "-------\t----\t-------")
	for _, pkg := range result.Packages {
		fmt.Fprintf(w, "%s\t%s\t%s -> %s\n",
			pkg.Name, pkg.Path, result.Plan.OldVersion, result.Plan.NewVersion)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if result.Pushed {
		fmt.Fprintln(r.w, "\nCommitted, tagged, and pushed.")
		return nil
	}
	if len(result.Deferred) == 0 {
		return nil
	}
	fmt.Fprintln(r.w, "\nTo complete the release, run:")
	cmdColor := color.New(color.FgCyan)
	for _, cmd := range result.Deferred {
		_, _ = cmdColor.Fprintf(r.w, "  %s\n", cmd.String())
	}
	return nil
}
