package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multi-package-release-tool/pkg/manifest"
	"github.com/multi-package-release-tool/pkg/release"
	"github.com/multi-package-release-tool/pkg/vcs"
)

func sampleResult(pushed bool) *release.Result {
	result := &release.Result{
		VcsType: vcs.Git,
		Plan:    release.Plan{OldVersion: "1.2.0", NewVersion: "1.3.0", Bump: "minor"},
		Packages: []manifest.Package{
			{Path: "pkgs/a", Name: "a"},
			{Path: "pkgs/b", Name: "b"},
		},
		Pushed: pushed,
	}
	if !pushed {
		result.Deferred = []vcs.PendingCommand{
			{Op: vcs.OpCommit, Argv: []string{"git", "commit", "-m", "1.3.0", "pkgs/a/package.yaml"}},
			{Op: vcs.OpTag, Argv: []string{"git", "tag", "1.3.0"}},
		}
	}
	return result
}

func TestTableReporterLocalMode(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	require.NoError(t, New("table", &out).Report(sampleResult(false)))

	s := out.String()
	assert.Contains(t, s, "Release 1.2.0 -> 1.3.0 (minor bump, git)")
	assert.Contains(t, s, "a")
	assert.Contains(t, s, "pkgs/b")
	assert.Contains(t, s, "To complete the release, run:")
	assert.Contains(t, s, "git commit -m 1.3.0 pkgs/a/package.yaml")
	assert.Contains(t, s, "git tag 1.3.0")
}

func TestTableReporterPushMode(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	require.NoError(t, New("table", &out).Report(sampleResult(true)))

	s := out.String()
	assert.Contains(t, s, "Committed, tagged, and pushed.")
	assert.NotContains(t, s, "To complete the release")
}

func TestJSONReporter(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New("json", &out).Report(sampleResult(false)))

	var got struct {
		Vcs        string `json:"vcs"`
		OldVersion string `json:"old_version"`
		NewVersion string `json:"new_version"`
		Pushed     bool   `json:"pushed"`
		Packages   []struct {
			Name string `json:"name"`
			Path string `json:"path"`
		} `json:"packages"`
		Deferred []struct {
			Argv []string `json:"argv"`
		} `json:"deferred_commands"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "git", got.Vcs)
	assert.Equal(t, "1.2.0", got.OldVersion)
	assert.Equal(t, "1.3.0", got.NewVersion)
	assert.False(t, got.Pushed)
	require.Len(t, got.Packages, 2)
	require.Len(t, got.Deferred, 2)
	assert.Equal(t, []string{"git", "tag", "1.3.0"}, got.Deferred[1].Argv)
}

func TestNewDefaultsToTable(t *testing.T) {
	var out bytes.Buffer
	_, ok := New("", &out).(*TableReporter)
	assert.True(t, ok)
	_, ok = New("json", &out).(*JSONReporter)
	assert.True(t, ok)
}
