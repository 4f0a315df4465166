package cli

import (
	"github.com/spf13/cobra"

	"gitpush.dev/gitpush/internal/config"
)

// newQuickCmd creates the quick command
func newQuickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick",
		Short: "Prompt for a message, commit everything and push to Remote/master",
		Long: `Prompt for a commit message, then run "git add .", "git commit -m <message>"
and "git push -u Remote master". Takes no flags. Exits with status 1 when the
message is empty.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Simple()
			cfg.WorkDir = workDir
			return run(cmd, cfg)
		},
	}
}
