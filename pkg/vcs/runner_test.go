package vcs

import (
	"errors"
	"strings"
)

// fakeRunner scripts command output by joined argv and records executions,
// standing in for the real executables.
type fakeRunner struct {
	outputs map[string]string
	fail    map[string]error
	missing map[string]bool
	ran     []PendingCommand
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: map[string]string{},
		fail:    map[string]error{},
		missing: map[string]bool{},
	}
}

func key(cmd PendingCommand) string { return strings.Join(cmd.Argv, " ") }

func (f *fakeRunner) Run(cmd PendingCommand) ([]byte, error) {
	f.ran = append(f.ran, cmd)
	if err := f.fail[key(cmd)]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[key(cmd)]), nil
}

func (f *fakeRunner) Output(cmd PendingCommand) (string, error) {
	if err := f.fail[key(cmd)]; err != nil {
		return "", err
	}
	return f.outputs[key(cmd)], nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + name, nil
}
