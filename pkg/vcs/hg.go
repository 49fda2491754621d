package vcs

type hgClient struct {
	dir string
}

func (h *hgClient) Type() Type { return Hg }

func (h *hgClient) DiffCmd(file string) PendingCommand {
	return PendingCommand{Op: OpDiff, Dir: h.dir, Argv: []string{"hg", "diff", file}}
}

func (h *hgClient) CommitCmd(message string, files []string) PendingCommand {
	argv := append([]string{"hg", "commit", "-m", message}, files...)
	return PendingCommand{Op: OpCommit, Dir: h.dir, Argv: argv}
}

func (h *hgClient) TagCmd(name string) (PendingCommand, error) {
	return PendingCommand{Op: OpTag, Dir: h.dir, Argv: []string{"hg", "tag", name}}, nil
}

func (h *hgClient) PushCmd() (*PendingCommand, error) {
	return &PendingCommand{Op: OpPush, Dir: h.dir, Argv: []string{"hg", "push"}}, nil
}

// hg push carries tags with it
func (h *hgClient) PushTagsCmd() *PendingCommand { return nil }
