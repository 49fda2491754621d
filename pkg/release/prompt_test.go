package release

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "empty picks default no", input: "\n", def: false, want: false},
		{name: "empty picks default yes", input: "\n", def: true, want: true},
		{name: "y", input: "y\n", def: false, want: true},
		{name: "Y", input: "Y\n", def: false, want: true},
		{name: "yes", input: "yes\n", def: false, want: true},
		{name: "n", input: "n\n", def: true, want: false},
		{name: "NO", input: "NO\n", def: true, want: false},
		{name: "whitespace around answer", input: "  y  \n", def: false, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tc.input), &out, "Continue?", tc.def)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Continue?")
		})
	}
}

func TestConfirmRepromptsOnGarbage(t *testing.T) {
	var out bytes.Buffer
	got, err := Confirm(strings.NewReader("maybe\nok\ny\n"), &out, "Continue?", false)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 2, strings.Count(out.String(), `Please answer "y" or "n".`))
}

func TestConfirmDefaultHint(t *testing.T) {
	var out bytes.Buffer
	_, err := Confirm(strings.NewReader("\n"), &out, "Continue?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")

	out.Reset()
	_, err = Confirm(strings.NewReader("\n"), &out, "Continue?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestConfirmEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := Confirm(strings.NewReader("maybe\n"), &out, "Continue?", false)
	require.Error(t, err)
}
