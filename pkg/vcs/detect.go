package vcs

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// probe order is fixed so ambiguity reports are deterministic
var markerOrder = []Type{Git, Hg, Bzr, Svn}

var markers = map[Type]string{
	Git: ".git",
	Hg:  ".hg",
	Bzr: ".bzr",
	Svn: ".svn",
}

// Detect inspects the working tree at root and returns the one backend in
// use. Zero or several matching control directories is a
// *UnknownRepositoryError. Pure filesystem probe, no side effects.
func Detect(fs afero.Fs, root string) (Type, error) {
	var found []Type
	for _, t := range markerOrder {
		ok, err := afero.Exists(fs, filepath.Join(root, markers[t]))
		if err != nil {
			return "", err
		}
		if ok {
			found = append(found, t)
		}
	}
	if len(found) != 1 {
		return "", &UnknownRepositoryError{Root: root, Candidates: found}
	}
	return found[0], nil
}
