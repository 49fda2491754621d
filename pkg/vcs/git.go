package vcs

type gitClient struct {
	dir    string
	runner Runner
}

func (g *gitClient) Type() Type { return Git }

func (g *gitClient) DiffCmd(file string) PendingCommand {
	return PendingCommand{Op: OpDiff, Dir: g.dir, Argv: []string{"git", "diff", file}}
}

func (g *gitClient) CommitCmd(message string, files []string) PendingCommand {
	argv := append([]string{"git", "commit", "-m", message}, files...)
	return PendingCommand{Op: OpCommit, Dir: g.dir, Argv: argv}
}

func (g *gitClient) TagCmd(name string) (PendingCommand, error) {
	return PendingCommand{Op: OpTag, Dir: g.dir, Argv: []string{"git", "tag", name}}, nil
}

// PushCmd resolves the tracking remote and branch of the current HEAD, so
// the push targets exactly what the operator is standing on.
func (g *gitClient) PushCmd() (*PendingCommand, error) {
	branch, err := g.runner.Output(PendingCommand{
		Op:   OpQuery,
		Dir:  g.dir,
		Argv: []string{"git", "rev-parse", "--abbrev-ref", "HEAD"},
	})
	if err != nil || branch == "" {
		return nil, &RemoteResolutionError{Detail: "cannot determine current branch", Err: err}
	}
	remote, err := g.runner.Output(PendingCommand{
		Op:   OpQuery,
		Dir:  g.dir,
		Argv: []string{"git", "config", "--get", "branch." + branch + ".remote"},
	})
	if err != nil || remote == "" {
		return nil, &RemoteResolutionError{Detail: "no remote configured for branch " + branch, Err: err}
	}
	return &PendingCommand{Op: OpPush, Dir: g.dir, Argv: []string{"git", "push", remote, branch}}, nil
}

func (g *gitClient) PushTagsCmd() *PendingCommand {
	return &PendingCommand{Op: OpPushTags, Dir: g.dir, Argv: []string{"git", "push", "--tags"}}
}
