package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	gperrors "gitpush.dev/gitpush/internal/errors"
)

// DefaultCommandTimeout is the default timeout for captured git commands
const DefaultCommandTimeout = 5 * time.Minute

// DefaultTool is the version-control binary that gitpush drives
const DefaultTool = "git"

// CommandRunner handles execution of git commands
type CommandRunner struct {
	tool       string
	workingDir string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// CommandRunnerOption configures a CommandRunner
type CommandRunnerOption func(*CommandRunner)

// WithTool overrides the binary that is executed
func WithTool(tool string) CommandRunnerOption {
	return func(r *CommandRunner) {
		r.tool = tool
	}
}

// WithStdio sets the streams attached commands inherit.
// Nil streams fall back to the process streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) CommandRunnerOption {
	return func(r *CommandRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string, opts ...CommandRunnerOption) *CommandRunner {
	r := &CommandRunner{
		tool:       DefaultTool,
		workingDir: workingDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tool returns the binary name used for commands
func (r *CommandRunner) Tool() string {
	return r.tool
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command with captured output and returns trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.tool, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gperrors.NewGitCommandError(r.tool, args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gperrors.NewGitCommandError(r.tool, args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunAttached executes a git command with stdin/stdout/stderr connected to
// the runner's streams, so hooks, credential prompts and git's own
// diagnostics reach the user. No default timeout is applied.
func (r *CommandRunner) RunAttached(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.tool, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = orReader(r.stdin, os.Stdin)
	cmd.Stdout = orWriter(r.stdout, os.Stdout)
	cmd.Stderr = orWriter(r.stderr, os.Stderr)

	if err := cmd.Run(); err != nil {
		return gperrors.NewGitCommandError(r.tool, args, "", "", err)
	}
	return nil
}

func orReader(r io.Reader, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
