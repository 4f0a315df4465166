package actions

import (
	"errors"
	"strings"

	"gitpush.dev/gitpush/internal/config"
	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/output"
)

// MessagePrompt is the label shown when asking for a commit message
const MessagePrompt = "Commit message: "

// ResolveMessage returns the commit message to use.
// A supplied message wins and is never replaced by a prompt, even when it is
// blank; only an omitted message reads one line from the prompter.
// The result is trimmed, and an empty result is an EmptyMessageError
// carrying the mode's exit status.
func ResolveMessage(cfg config.Config, prompter output.Prompter) (string, error) {
	message := strings.TrimSpace(cfg.Message)
	if cfg.Message == "" && prompter != nil {
		line, err := prompter.PromptLine(MessagePrompt)
		switch {
		case err == nil:
			message = strings.TrimSpace(line)
		case errors.Is(err, output.ErrInteractiveDisabled), errors.Is(err, output.ErrPromptCanceled):
			// treated as no input
		default:
			return "", err
		}
	}

	if message == "" {
		return "", gperrors.NewEmptyMessageError(cfg.EmptyMessageText(), cfg.EmptyMessageExitCode())
	}
	return message, nil
}
