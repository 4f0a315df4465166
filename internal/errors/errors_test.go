package errors_test

import (
	stderrors "errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitpush.dev/gitpush/internal/errors"
)

func exitError(t *testing.T, code int) error {
	t.Helper()
	err := exec.Command("sh", "-c", fmt.Sprintf("exit %d", code)).Run()
	require.Error(t, err)
	return err
}

func TestStepErrorIs(t *testing.T) {
	t.Run("each kind matches its sentinel only", func(t *testing.T) {
		cases := map[gperrors.Kind]error{
			gperrors.KindStaging:         gperrors.ErrStagingFailed,
			gperrors.KindCommit:          gperrors.ErrCommitFailed,
			gperrors.KindCommitCleanTree: gperrors.ErrCommitFailedCleanTree,
			gperrors.KindPush:            gperrors.ErrPushFailed,
		}
		for kind, sentinel := range cases {
			err := fmt.Errorf("wrapped: %w", gperrors.NewStepError(kind, stderrors.New("boom")))
			require.ErrorIs(t, err, sentinel, kind.String())
			for other, otherSentinel := range cases {
				if other != kind {
					require.NotErrorIs(t, err, otherSentinel)
				}
			}
		}
	})

	t.Run("unwraps to the underlying git error", func(t *testing.T) {
		inner := gperrors.NewGitCommandError("git", []string{"push"}, "", "rejected", stderrors.New("exit status 1"))
		err := gperrors.NewStepError(gperrors.KindPush, inner)

		var gitErr *gperrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
		require.Equal(t, []string{"push"}, gitErr.Args)
	})
}

func TestEmptyMessageError(t *testing.T) {
	err := gperrors.NewEmptyMessageError("Commit message is empty.", 2)
	require.ErrorIs(t, err, gperrors.ErrEmptyMessage)
	require.Equal(t, "Commit message is empty.", err.Error())
	require.Equal(t, 2, gperrors.ExitCode(err))
	require.Equal(t, "Commit message is empty.", gperrors.Summary(err))
}

func TestExitCode(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		require.Equal(t, 0, gperrors.ExitCode(nil))
	})

	t.Run("propagates git exit status", func(t *testing.T) {
		err := gperrors.NewStepError(gperrors.KindPush,
			gperrors.NewGitCommandError("git", []string{"push"}, "", "", exitError(t, 128)))
		require.Equal(t, 128, gperrors.ExitCode(err))
		require.Equal(t, "push failed: exit status 128", gperrors.Summary(err))
	})

	t.Run("falls back to 1", func(t *testing.T) {
		require.Equal(t, 1, gperrors.ExitCode(stderrors.New("something")))
		require.Equal(t, 1, gperrors.ExitCode(gperrors.NewEmptyMessageError("", 0)))
	})
}
