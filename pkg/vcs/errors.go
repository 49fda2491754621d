package vcs

import (
	"fmt"
	"strings"
)

// UnknownRepositoryError means the working tree could not be attributed to
// exactly one backend.
type UnknownRepositoryError struct {
	Root       string
	Candidates []Type
}

func (e *UnknownRepositoryError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%s: not a git, hg, bzr, or svn working tree", e.Root)
	}
	names := make([]string, len(e.Candidates))
	for i, t := range e.Candidates {
		names[i] = string(t)
	}
	return fmt.Sprintf("%s: ambiguous working tree, markers for %s all present",
		e.Root, strings.Join(names, " and "))
}

// ExecutableNotFoundError means the backend binary is not on PATH.
type ExecutableNotFoundError struct {
	Name string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable %q not found on PATH", e.Name)
}

// RemoteResolutionError means git could not resolve the tracking remote or
// branch for the current HEAD.
type RemoteResolutionError struct {
	Detail string
	Err    error
}

func (e *RemoteResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot resolve push target: %s: %v", e.Detail, e.Err)
	}
	return "cannot resolve push target: " + e.Detail
}

func (e *RemoteResolutionError) Unwrap() error { return e.Err }

// SvnLayoutError means the svn remote URL follows none of the recognized
// trunk/branches/tags layouts, so no tag URL can be derived.
type SvnLayoutError struct {
	URL string
}

func (e *SvnLayoutError) Error() string {
	return fmt.Sprintf("cannot derive a tags URL from svn URL %q: no trunk, branches, or tags segment", e.URL)
}

// CommandError reports a backend command that exited non-zero.
type CommandError struct {
	Op     string
	Argv   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s failed: %s: %v", e.Op, strings.Join(e.Argv, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }
