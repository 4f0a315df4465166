package git_test

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/git"
	"gitpush.dev/gitpush/testhelpers"
)

func newRunner(dir string, out *bytes.Buffer) git.Runner {
	return git.NewRealRunner(git.NewCommandRunner(dir, git.WithStdio(nil, out, out)))
}

func TestRealRunner(t *testing.T) {
	t.Run("stages and commits in the working directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		var out bytes.Buffer
		runner := newRunner(scene.Dir, &out)
		ctx := context.Background()

		require.NoError(t, scene.Repo.CreateChange("new content", "feature", true))

		status, err := runner.Status(ctx)
		require.NoError(t, err)
		require.False(t, git.IsCleanStatus(status))

		require.NoError(t, runner.StageAll(ctx))
		require.NoError(t, runner.Commit(ctx, "add feature"))

		status, err = runner.Status(ctx)
		require.NoError(t, err)
		require.True(t, git.IsCleanStatus(status))

		messages, err := scene.Repo.ListCommitMessages()
		require.NoError(t, err)
		require.Equal(t, "add feature", messages[0])
	})

	t.Run("commit fails on a clean tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		var out bytes.Buffer
		runner := newRunner(scene.Dir, &out)

		err := runner.Commit(context.Background(), "nothing here")
		require.Error(t, err)

		var gitErr *gperrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
		require.Equal(t, []string{"commit", "-m", "nothing here"}, gitErr.Args)

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Contains(t, out.String(), "nothing to commit")
	})

	t.Run("pushes with upstream tracking", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		var out bytes.Buffer
		runner := newRunner(scene.Dir, &out)

		require.NoError(t, runner.Push(context.Background(), "Remote", "master", true))

		local, err := scene.Repo.GetRevision("master")
		require.NoError(t, err)
		remote, err := testhelpers.RemoteRevision(scene.RemoteDir, "master")
		require.NoError(t, err)
		require.Equal(t, local, remote)
		require.Equal(t, "Remote/master", scene.Repo.UpstreamOf("master"))
	})

	t.Run("pushes without upstream tracking", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		var out bytes.Buffer
		runner := newRunner(scene.Dir, &out)

		require.NoError(t, runner.Push(context.Background(), "Remote", "master", false))
		require.Empty(t, scene.Repo.UpstreamOf("master"))
	})

	t.Run("push to unknown remote fails with git's exit status", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		var out bytes.Buffer
		runner := newRunner(scene.Dir, &out)

		err := runner.Push(context.Background(), "Nowhere", "master", true)
		require.Error(t, err)
		require.NotEqual(t, 0, gperrors.ExitCode(err))
		require.NotEmpty(t, out.String())
	})
}

func TestCommandRunnerRun(t *testing.T) {
	t.Run("captures trimmed output", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)

		out, err := runner.Run(context.Background(), "rev-parse", "--abbrev-ref", "HEAD")
		require.NoError(t, err)
		require.Equal(t, "master", out)
	})

	t.Run("wraps failures with captured stderr", func(t *testing.T) {
		runner := git.NewCommandRunner(t.TempDir())

		_, err := runner.Run(context.Background(), "status", "--porcelain")
		require.Error(t, err)

		var gitErr *gperrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
		require.Contains(t, gitErr.Stderr, "not a git repository")
	})
}

func TestCommandRunnerOptions(t *testing.T) {
	t.Run("defaults to git", func(t *testing.T) {
		dir := t.TempDir()
		runner := git.NewCommandRunner(dir)
		require.Equal(t, git.DefaultTool, runner.Tool())
		require.Equal(t, dir, runner.WorkingDir())
	})

	t.Run("tool override runs in the working directory", func(t *testing.T) {
		dir := t.TempDir()
		runner := git.NewCommandRunner(dir, git.WithTool("sh"))
		require.Equal(t, "sh", runner.Tool())

		out, err := runner.Run(context.Background(), "-c", "pwd -P")
		require.NoError(t, err)

		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		require.Equal(t, resolved, out)
	})
}
