package release

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question and blocks for one answer per attempt.
// An empty line picks def; anything other than y/yes/n/no re-prompts, so a
// mistyped answer never silently selects a default.
func Confirm(r io.Reader, w io.Writer, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	reader := bufio.NewReader(r)
	for {
		fmt.Fprintf(w, "%s %s ", question, hint)
		line, err := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			if err != nil {
				return false, fmt.Errorf("read answer: %w", err)
			}
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if err != nil {
				return false, fmt.Errorf("read answer: %w", err)
			}
			fmt.Fprintln(w, `Please answer "y" or "n".`)
		}
	}
}
