package reporter

import (
	"encoding/json"
	"io"

	"github.com/multi-package-release-tool/pkg/release"
)

type JSONReporter struct {
	w io.Writer
}

type jsonPackage struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type jsonCommand struct {
	Argv []string `json:"argv"`
	Dir  string   `json:"dir,omitempty"`
}

type jsonReport struct {
	Vcs        string        `json:"vcs"`
	OldVersion string        `json:"old_version"`
	NewVersion string        `json:"new_version"`
	Bump       string        `json:"bump"`
	Pushed     bool          `json:"pushed"`
	Packages   []jsonPackage `json:"packages"`
	Deferred   []jsonCommand `json:"deferred_commands,omitempty"`
}

func (r *JSONReporter) Report(result *release.Result) error {
	report := jsonReport{
		Vcs:        string(result.VcsType),
		OldVersion: result.Plan.OldVersion,
		NewVersion: result.Plan.NewVersion,
		Bump:       result.Plan.Bump,
		Pushed:     result.Pushed,
	}
	for _, pkg := range result.Packages {
		report.Packages = append(report.Packages, jsonPackage{Name: pkg.Name, Path: pkg.Path})
	}
	for _, cmd := range result.Deferred {
		report.Deferred = append(report.Deferred, jsonCommand{Argv: cmd.Argv, Dir: cmd.Dir})
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
