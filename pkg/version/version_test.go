package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBump(t *testing.T) {
	tests := []struct {
		name    string
		current string
		kind    string
		want    string
		wantErr bool
	}{
		{name: "patch", current: "1.2.0", kind: BumpPatch, want: "1.2.1"},
		{name: "minor", current: "1.2.0", kind: BumpMinor, want: "1.3.0"},
		{name: "major", current: "1.2.0", kind: BumpMajor, want: "2.0.0"},
		{name: "minor resets patch", current: "1.2.7", kind: BumpMinor, want: "1.3.0"},
		{name: "major resets minor and patch", current: "1.2.7", kind: BumpMajor, want: "2.0.0"},
		{name: "patch keeps higher segments", current: "0.9.9", kind: BumpPatch, want: "0.9.10"},
		{name: "unknown kind", current: "1.2.0", kind: "huge", wantErr: true},
		{name: "not a semantic version", current: "1.2", kind: BumpPatch, wantErr: true},
		{name: "garbage version", current: "release-1", kind: BumpPatch, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Bump(tc.current, tc.kind)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidBump(t *testing.T) {
	assert.True(t, ValidBump(BumpMajor))
	assert.True(t, ValidBump(BumpMinor))
	assert.True(t, ValidBump(BumpPatch))
	assert.False(t, ValidBump(""))
	assert.False(t, ValidBump("Patch"))
}

func TestVerifyEqual(t *testing.T) {
	t.Run("all equal", func(t *testing.T) {
		got, err := VerifyEqual(map[string]string{"a": "1.2.0", "b": "1.2.0", "c": "1.2.0"})
		require.NoError(t, err)
		assert.Equal(t, "1.2.0", got)
	})

	t.Run("divergent", func(t *testing.T) {
		_, err := VerifyEqual(map[string]string{"a": "1.2.0", "b": "1.2.1"})
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Contains(t, mismatch.Error(), "a: 1.2.0")
		assert.Contains(t, mismatch.Error(), "b: 1.2.1")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := VerifyEqual(nil)
		require.Error(t, err)
	})
}
