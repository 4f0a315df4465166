package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitpush.dev/gitpush/internal/actions"
	"gitpush.dev/gitpush/internal/config"
	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/output"
	"gitpush.dev/gitpush/internal/runtime"
)

// workDir overrides the directory git runs in; empty means the binary's directory
var workDir string

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	cfg := config.Default()
	var noUpstream bool

	rootCmd := &cobra.Command{
		Use:   "gitpush",
		Short: "Stage everything, commit it and push it in one step",
		Long: `Stage everything, commit it and push it in one step.

Runs "git add .", "git commit -m <message>" and "git push -u <remote> <branch>"
in the directory that contains the gitpush binary. When there is nothing to
commit the push still happens. Without --message the commit message is read
from standard input.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.SetUpstream = !noUpstream
			cfg.WorkDir = workDir
			return run(cmd, cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.Message, "message", "m", "", "Commit message; prompts when omitted")
	rootCmd.Flags().StringVarP(&cfg.Remote, "remote", "r", config.DefaultRemote, "Remote to push to (no whitespace or leading '-')")
	rootCmd.Flags().StringVarP(&cfg.Branch, "branch", "b", config.DefaultBranch, "Branch to push (no whitespace or leading '-')")
	rootCmd.Flags().BoolVar(&noUpstream, "no-upstream", false, "Push without -u/--set-upstream")
	rootCmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Print the git commands instead of running them")

	rootCmd.AddCommand(newQuickCmd())

	return rootCmd
}

// run executes the push action for the command's streams
func run(cmd *cobra.Command, cfg config.Config) error {
	splog, err := newSplog(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	ctx := runtime.NewContextWithSplog(cmd.Context(), splog, cmd.InOrStdin())
	splog.Debug("Running in %s mode", cfg.Mode)

	_, err = actions.PushAction(ctx, actions.PushOptions{Config: cfg})
	return err
}

func newSplog(cmd *cobra.Command) (*output.Splog, error) {
	return output.NewSplogWithConfig(output.Config{
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
		LogFilePath: output.GetLogFilePath(),
		Debug:       os.Getenv("DEBUG") != "",
	})
}

// Execute runs the root command with args and returns the process exit status.
// Errors are reported on stderr and in the log file when one is configured.
func Execute(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		reportError(root, err)
	}
	return gperrors.ExitCode(err)
}

func reportError(root *cobra.Command, err error) {
	text := "gitpush: " + gperrors.Summary(err)
	var emptyErr *gperrors.EmptyMessageError
	if errors.As(err, &emptyErr) {
		text = emptyErr.Error()
	}

	splog, logErr := newSplog(root)
	if logErr != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), text)
		return
	}
	defer func() { _ = splog.Close() }()
	splog.Error("%s", text)
}
