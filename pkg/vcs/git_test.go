package vcs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitPushCmd(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["git rev-parse --abbrev-ref HEAD"] = "main"
	runner.outputs["git config --get branch.main.remote"] = "origin"

	client, err := NewClient(Git, "/repo", runner)
	require.NoError(t, err)

	push, err := client.PushCmd()
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "push", "origin", "main"}, push.Argv)
	assert.Equal(t, OpPush, push.Op)

	tags := client.PushTagsCmd()
	require.NotNil(t, tags)
	assert.Equal(t, []string{"git", "push", "--tags"}, tags.Argv)
	assert.Equal(t, OpPushTags, tags.Op)
}

func TestGitPushCmdResolutionFailures(t *testing.T) {
	t.Run("no branch", func(t *testing.T) {
		runner := newFakeRunner()
		runner.fail["git rev-parse --abbrev-ref HEAD"] = errors.New("not a repository")

		client, err := NewClient(Git, "/repo", runner)
		require.NoError(t, err)

		_, err = client.PushCmd()
		var remoteErr *RemoteResolutionError
		require.ErrorAs(t, err, &remoteErr)
		assert.Contains(t, remoteErr.Error(), "current branch")
	})

	t.Run("no tracking remote", func(t *testing.T) {
		runner := newFakeRunner()
		runner.outputs["git rev-parse --abbrev-ref HEAD"] = "feature"
		// git config --get exits non-zero when the key is unset

		client, err := NewClient(Git, "/repo", runner)
		require.NoError(t, err)

		_, err = client.PushCmd()
		var remoteErr *RemoteResolutionError
		require.ErrorAs(t, err, &remoteErr)
		assert.Contains(t, remoteErr.Error(), "feature")
	})
}
