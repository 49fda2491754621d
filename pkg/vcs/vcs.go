// Package vcs abstracts the version control systems a release can target.
// Each backend builds its commands as data (PendingCommand); the caller
// decides whether to execute them or report them for manual execution.
package vcs

import (
	"fmt"
	"strings"
)

// Type identifies a version control backend. It doubles as the name of the
// executable looked up on PATH.
type Type string

const (
	Git Type = "git"
	Hg  Type = "hg"
	Bzr Type = "bzr"
	Svn Type = "svn"
)

// Operation names used in command construction and failure reports.
const (
	OpDiff     = "diff"
	OpCommit   = "commit"
	OpTag      = "tag"
	OpPush     = "push"
	OpPushTags = "push-tags"
	OpQuery    = "query"
)

// PendingCommand is one constructed VCS invocation. It is either run once
// or collected and printed for the operator to run by hand.
type PendingCommand struct {
	Op   string
	Argv []string
	Dir  string
}

// String renders the command the way an operator would type it.
func (c PendingCommand) String() string {
	parts := make([]string, len(c.Argv))
	for i, arg := range c.Argv {
		if strings.ContainsAny(arg, " \t\"") {
			parts[i] = fmt.Sprintf("%q", arg)
		} else {
			parts[i] = arg
		}
	}
	return strings.Join(parts, " ")
}

// Client builds the commands for one backend. Implementations see
// gitClient, hgClient, bzrClient, and svnClient.
type Client interface {
	// Type returns the backend this client drives.
	Type() Type

	// DiffCmd builds the command showing uncommitted changes to file.
	DiffCmd(file string) PendingCommand

	// CommitCmd builds a commit of files with the given message.
	CommitCmd(message string, files []string) PendingCommand

	// TagCmd builds the command creating a tag named name. For svn this
	// consults the working copy's remote URL and may fail when the
	// repository layout cannot be resolved.
	TagCmd(name string) (PendingCommand, error)

	// PushCmd builds the command publishing the current branch, or nil for
	// backends with no push operation (svn). For git this resolves the
	// tracking remote and branch and may fail with *RemoteResolutionError.
	PushCmd() (*PendingCommand, error)

	// PushTagsCmd builds the separate tag-publishing command, or nil for
	// backends whose push already covers tags.
	PushTagsCmd() *PendingCommand
}

// NewClient returns the client for t operating on the working tree at dir.
// The backend executable must be resolvable on PATH through runner.
func NewClient(t Type, dir string, runner Runner) (Client, error) {
	if _, err := runner.LookPath(string(t)); err != nil {
		return nil, &ExecutableNotFoundError{Name: string(t)}
	}
	switch t {
	case Git:
		return &gitClient{dir: dir, runner: runner}, nil
	case Hg:
		return &hgClient{dir: dir}, nil
	case Bzr:
		return &bzrClient{dir: dir}, nil
	case Svn:
		return &svnClient{dir: dir, runner: runner}, nil
	}
	return nil, fmt.Errorf("unsupported vcs type %q", t)
}
