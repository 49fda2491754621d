package vcs

import (
	"path"
	"strings"
)

type svnClient struct {
	dir    string
	runner Runner
}

func (s *svnClient) Type() Type { return Svn }

func (s *svnClient) DiffCmd(file string) PendingCommand {
	return PendingCommand{Op: OpDiff, Dir: s.dir, Argv: []string{"svn", "diff", file}}
}

func (s *svnClient) CommitCmd(message string, files []string) PendingCommand {
	argv := append([]string{"svn", "commit", "-m", message}, files...)
	return PendingCommand{Op: OpCommit, Dir: s.dir, Argv: argv}
}

// TagCmd tags by server-side copy: the working copy's remote URL is copied
// under the repository's tags directory.
func (s *svnClient) TagCmd(name string) (PendingCommand, error) {
	url, err := s.runner.Output(PendingCommand{
		Op:   OpQuery,
		Dir:  s.dir,
		Argv: []string{"svn", "info", "--show-item", "url"},
	})
	if err != nil {
		return PendingCommand{}, err
	}
	base, err := tagBaseURL(url)
	if err != nil {
		return PendingCommand{}, err
	}
	tagURL := base + "/tags/" + name
	return PendingCommand{
		Op:   OpTag,
		Dir:  s.dir,
		Argv: []string{"svn", "cp", "-m", "tagging " + name, url, tagURL},
	}, nil
}

// svn has no push; commits publish directly
func (s *svnClient) PushCmd() (*PendingCommand, error) { return nil, nil }

func (s *svnClient) PushTagsCmd() *PendingCommand { return nil }

// tagBaseURL derives the repository root a tags directory hangs off of.
// A URL ending in /trunk loses that segment; a URL whose parent directory is
// branches or tags loses both. Anything else is a *SvnLayoutError.
func tagBaseURL(url string) (string, error) {
	u := strings.TrimRight(url, "/")
	if strings.HasSuffix(u, "/trunk") {
		return strings.TrimSuffix(u, "/trunk"), nil
	}
	parent := path.Dir(u)
	if base := path.Base(parent); base == "branches" || base == "tags" {
		return path.Dir(parent), nil
	}
	return "", &SvnLayoutError{URL: url}
}
