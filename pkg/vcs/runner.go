package vcs

import (
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner executes constructed commands and resolves backend executables.
// It is an interface so tests can substitute fake executables.
type Runner interface {
	// Run executes cmd and returns its combined output. A non-zero exit is
	// a *CommandError.
	Run(cmd PendingCommand) ([]byte, error)

	// Output executes a read-only query command and returns its trimmed
	// standard output.
	Output(cmd PendingCommand) (string, error)

	// LookPath resolves an executable name against PATH.
	LookPath(name string) (string, error)
}

// ExecRunner is the Runner backed by os/exec.
type ExecRunner struct {
	log *zap.Logger
}

// NewExecRunner returns a Runner executing commands on the real system.
func NewExecRunner(log *zap.Logger) *ExecRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExecRunner{log: log}
}

func (r *ExecRunner) Run(cmd PendingCommand) ([]byte, error) {
	r.log.Debug("running", zap.String("op", cmd.Op), zap.Strings("argv", cmd.Argv))
	c := exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	c.Dir = cmd.Dir
	out, err := c.CombinedOutput()
	if err != nil {
		return out, &CommandError{Op: cmd.Op, Argv: cmd.Argv, Output: string(out), Err: err}
	}
	return out, nil
}

func (r *ExecRunner) Output(cmd PendingCommand) (string, error) {
	r.log.Debug("querying", zap.String("op", cmd.Op), zap.Strings("argv", cmd.Argv))
	c := exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	c.Dir = cmd.Dir
	out, err := c.Output()
	if err != nil {
		errOut := ""
		if ee, ok := err.(*exec.ExitError); ok {
			errOut = string(ee.Stderr)
		}
		return "", &CommandError{Op: cmd.Op, Argv: cmd.Argv, Output: errOut, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
