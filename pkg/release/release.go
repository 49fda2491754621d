// Package release drives the release workflow: a strict sequence of gates,
// each of which can abort the run, followed by the manifest rewrite and the
// backend commit/tag/push operations. A release is all-or-nothing up to the
// point of failure; there is no rollback.
package release

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/multi-package-release-tool/pkg/changelog"
	"github.com/multi-package-release-tool/pkg/manifest"
	"github.com/multi-package-release-tool/pkg/version"
	"github.com/multi-package-release-tool/pkg/vcs"
)

// Options selects what a run does.
type Options struct {
	Bump           string   // major, minor, or patch
	Push           bool     // execute remote operations instead of printing them
	NonInteractive bool     // never prompt; missing changelogs become warnings
	ChangelogFile  string   // overrides the default changelog file names
	Ignore         []string // package names exempt from the changelog gate
}

// Plan is the computed version transition.
type Plan struct {
	OldVersion string
	NewVersion string
	Bump       string
}

// Result describes a completed run.
type Result struct {
	VcsType  vcs.Type
	Plan     Plan
	Packages []manifest.Package
	// Deferred holds the commands built but not executed (local mode), in
	// the order they must be run to finish the release.
	Deferred []vcs.PendingCommand
	Pushed   bool
}

// Orchestrator runs the gates in order against one working tree.
type Orchestrator struct {
	fs     afero.Fs
	root   string
	runner vcs.Runner
	log    *zap.Logger

	// prompt IO and client construction are swappable for tests
	in        io.Reader
	out       io.Writer
	newClient func(vcs.Type, string, vcs.Runner) (vcs.Client, error)
}

// New returns an orchestrator for the working tree at root.
func New(fs afero.Fs, root string, runner vcs.Runner, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		fs:        fs,
		root:      root,
		runner:    runner,
		log:       log,
		in:        os.Stdin,
		out:       os.Stdout,
		newClient: vcs.NewClient,
	}
}

// Run executes the release workflow. Any gate failure aborts the whole run
// with a typed error; nothing is retried.
func (o *Orchestrator) Run(opts Options) (*Result, error) {
	vcsType, err := vcs.Detect(o.fs, o.root)
	if err != nil {
		return nil, err
	}
	o.log.Debug("detected repository", zap.String("vcs", string(vcsType)))

	client, err := o.newClient(vcsType, o.root, o.runner)
	if err != nil {
		return nil, err
	}

	found, err := manifest.FindPackages(o.fs, o.root)
	if err != nil {
		return nil, err
	}
	packages := manifest.Sorted(found)
	o.log.Debug("loaded packages", zap.Int("count", len(packages)))

	// no release on top of pending manifest edits
	for _, pkg := range packages {
		out, err := o.runner.Output(client.DiffCmd(pkg.ManifestPath()))
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(out) != "" {
			return nil, &DirtyManifestError{Path: pkg.ManifestPath()}
		}
	}

	for _, pkg := range packages {
		if err := manifest.ValidateMetapackage(pkg); err != nil {
			return nil, err
		}
	}

	versions := make(map[string]string, len(packages))
	for _, pkg := range packages {
		versions[pkg.Name] = pkg.Version
	}
	oldVersion, err := version.VerifyEqual(versions)
	if err != nil {
		return nil, err
	}

	newVersion, err := version.Bump(oldVersion, opts.Bump)
	if err != nil {
		return nil, err
	}
	plan := Plan{OldVersion: oldVersion, NewVersion: newVersion, Bump: opts.Bump}
	o.log.Debug("computed release plan",
		zap.String("old", oldVersion), zap.String("new", newVersion))

	if err := o.changelogGate(packages, newVersion, opts); err != nil {
		return nil, err
	}

	// Remote-dependent commands are built before any mutation so that
	// resolution failures (no remote, unrecognized svn layout) cannot leave
	// the tree bumped with no way to publish.
	pushCmd, err := client.PushCmd()
	if err != nil {
		return nil, err
	}
	pushTagsCmd := client.PushTagsCmd()
	tagCmd, err := client.TagCmd(newVersion)
	if err != nil {
		return nil, err
	}

	if opts.Push && pushCmd != nil {
		// preflight: prove the repository is pushable before mutating
		if _, err := o.runner.Run(*pushCmd); err != nil {
			return nil, err
		}
	}

	if err := manifest.UpdateVersions(o.fs, o.root, packages, newVersion); err != nil {
		return nil, err
	}
	o.log.Debug("rewrote manifests", zap.Int("count", len(packages)))

	result := &Result{VcsType: vcsType, Plan: plan, Packages: packages, Pushed: opts.Push}

	files := make([]string, len(packages))
	for i, pkg := range packages {
		files[i] = pkg.ManifestPath()
	}
	if err := o.dispatch(client.CommitCmd(newVersion, files), opts.Push, result); err != nil {
		return nil, err
	}
	if err := o.dispatch(tagCmd, opts.Push, result); err != nil {
		return nil, err
	}
	if pushCmd != nil {
		if err := o.dispatch(*pushCmd, opts.Push, result); err != nil {
			return nil, err
		}
	}
	if pushTagsCmd != nil {
		if err := o.dispatch(*pushTagsCmd, opts.Push, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// dispatch executes cmd in push mode or collects it for the final report.
func (o *Orchestrator) dispatch(cmd vcs.PendingCommand, execute bool, result *Result) error {
	if execute {
		_, err := o.runner.Run(cmd)
		return err
	}
	result.Deferred = append(result.Deferred, cmd)
	return nil
}

// changelogGate collects packages lacking an entry for newVersion. Missing
// entries are a warning in non-interactive mode and a prompt otherwise.
func (o *Orchestrator) changelogGate(packages []manifest.Package, newVersion string, opts Options) error {
	ignored := make(map[string]bool, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignored[name] = true
	}
	var missing []string
	for _, pkg := range packages {
		if ignored[pkg.Name] {
			continue
		}
		log, err := changelog.FromPath(o.fs, filepath.Join(o.root, pkg.Path), opts.ChangelogFile)
		if err != nil {
			if errors.Is(err, changelog.ErrNotFound) {
				missing = append(missing, pkg.Name)
				continue
			}
			return err
		}
		if !log.HasEntry(newVersion) {
			missing = append(missing, pkg.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if opts.NonInteractive {
		fmt.Fprintf(o.out, "warning: no changelog entry for %s for version %s\n",
			strings.Join(missing, ", "), newVersion)
		return nil
	}
	question := fmt.Sprintf("No changelog entry for %s for version %s. Continue anyway?",
		strings.Join(missing, ", "), newVersion)
	ok, err := Confirm(o.in, o.out, question, false)
	if err != nil {
		return err
	}
	if !ok {
		return &ChangelogsMissingError{Names: missing}
	}
	return nil
}
