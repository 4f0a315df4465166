// Package errors provides sentinel errors and custom error types for the gitpush application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// Sentinel errors for common conditions
var (
	// ErrEmptyMessage indicates that no usable commit message was supplied
	ErrEmptyMessage = errors.New("commit message is empty")

	// ErrStagingFailed indicates that `git add` failed
	ErrStagingFailed = errors.New("staging failed")

	// ErrCommitFailed indicates that `git commit` failed with a dirty working tree
	ErrCommitFailed = errors.New("commit failed")

	// ErrCommitFailedCleanTree indicates that `git commit` failed because there was nothing to commit
	ErrCommitFailedCleanTree = errors.New("nothing to commit")

	// ErrPushFailed indicates that `git push` failed
	ErrPushFailed = errors.New("push failed")
)

// EmptyMessageError is the user-facing input error raised before any git command runs.
type EmptyMessageError struct {
	Message string
	Code    int
}

func (e *EmptyMessageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrEmptyMessage.Error()
}

// Is returns true if the target error is ErrEmptyMessage
func (e *EmptyMessageError) Is(target error) bool {
	return target == ErrEmptyMessage
}

// NewEmptyMessageError creates a new EmptyMessageError
func NewEmptyMessageError(message string, code int) *EmptyMessageError {
	return &EmptyMessageError{Message: message, Code: code}
}

// Kind identifies which step of the commit-and-push sequence failed.
type Kind int

const (
	KindStaging Kind = iota + 1
	KindCommit
	KindCommitCleanTree
	KindPush
)

func (k Kind) String() string {
	switch k {
	case KindStaging:
		return "staging"
	case KindCommit:
		return "commit"
	case KindCommitCleanTree:
		return "commit (clean tree)"
	case KindPush:
		return "push"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindStaging:
		return ErrStagingFailed
	case KindCommit:
		return ErrCommitFailed
	case KindCommitCleanTree:
		return ErrCommitFailedCleanTree
	case KindPush:
		return ErrPushFailed
	default:
		return nil
	}
}

// StepError represents a failed step of the sequence
type StepError struct {
	Kind Kind
	Err  error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Kind)
}

// Is returns true if the target error is the sentinel for this step
func (e *StepError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError creates a new StepError
func NewStepError(kind Kind, err error) *StepError {
	return &StepError{Kind: kind, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExitCode maps an error returned by the orchestrator to a process exit status.
// Failed git processes propagate their own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var emptyErr *EmptyMessageError
	if errors.As(err, &emptyErr) && emptyErr.Code != 0 {
		return emptyErr.Code
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	return 1
}

// Summary returns a single line describing err for the terminal.
// Git diagnostics were already streamed to the user, so the captured
// output is left out.
func Summary(err error) string {
	var emptyErr *EmptyMessageError
	if errors.As(err, &emptyErr) {
		return emptyErr.Error()
	}

	var stepErr *StepError
	if errors.As(err, &stepErr) {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Sprintf("%s failed: %v", stepErr.Kind, exitErr)
		}
	}

	return err.Error()
}
