package vcs

type bzrClient struct {
	dir string
}

func (b *bzrClient) Type() Type { return Bzr }

func (b *bzrClient) DiffCmd(file string) PendingCommand {
	return PendingCommand{Op: OpDiff, Dir: b.dir, Argv: []string{"bzr", "diff", file}}
}

func (b *bzrClient) CommitCmd(message string, files []string) PendingCommand {
	argv := append([]string{"bzr", "commit", "-m", message}, files...)
	return PendingCommand{Op: OpCommit, Dir: b.dir, Argv: argv}
}

func (b *bzrClient) TagCmd(name string) (PendingCommand, error) {
	return PendingCommand{Op: OpTag, Dir: b.dir, Argv: []string{"bzr", "tag", name}}, nil
}

func (b *bzrClient) PushCmd() (*PendingCommand, error) {
	return &PendingCommand{Op: OpPush, Dir: b.dir, Argv: []string{"bzr", "push"}}, nil
}

func (b *bzrClient) PushTagsCmd() *PendingCommand { return nil }
