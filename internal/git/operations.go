package git

import (
	"context"
	"fmt"
	"strings"
)

// Runner defines the git operations used by the push action.
// This allows the action to be used with real git, a dry run and mock implementations.
type Runner interface {
	// StageAll runs `git add .`
	StageAll(ctx context.Context) error
	// Commit runs `git commit -m <message>`
	Commit(ctx context.Context, message string) error
	// Status returns the output of `git status --porcelain`
	Status(ctx context.Context) (string, error)
	// Push runs `git push [-u] <remote> <branch>`
	Push(ctx context.Context, remote, branch string, setUpstream bool) error
	// DryRun reports whether commands are only printed
	DryRun() bool
}

// NewRealRunner returns a Runner that executes git through the CommandRunner
func NewRealRunner(cmd *CommandRunner) Runner {
	return &realRunner{cmd: cmd}
}

// realRunner implements Runner by starting git processes
type realRunner struct {
	cmd *CommandRunner
}

func (r *realRunner) StageAll(ctx context.Context) error {
	return r.cmd.RunAttached(ctx, StageAllArgs()...)
}

func (r *realRunner) Commit(ctx context.Context, message string) error {
	return r.cmd.RunAttached(ctx, CommitArgs(message)...)
}

func (r *realRunner) Status(ctx context.Context) (string, error) {
	return r.cmd.Run(ctx, StatusArgs()...)
}

func (r *realRunner) Push(ctx context.Context, remote, branch string, setUpstream bool) error {
	return r.cmd.RunAttached(ctx, PushArgs(remote, branch, setUpstream)...)
}

func (r *realRunner) DryRun() bool {
	return false
}

// Printf receives one formatted line per printed command
type Printf func(format string, args ...interface{})

// NewDryRunner returns a Runner that prints each command line, prefixed
// with "+", instead of running it. Every command succeeds.
func NewDryRunner(tool string, printf Printf) Runner {
	if tool == "" {
		tool = DefaultTool
	}
	return &dryRunner{tool: tool, printf: printf}
}

type dryRunner struct {
	tool   string
	printf Printf
}

func (r *dryRunner) print(args []string) {
	r.printf("%s", FormatCommand(r.tool, args))
}

func (r *dryRunner) StageAll(_ context.Context) error {
	r.print(StageAllArgs())
	return nil
}

func (r *dryRunner) Commit(_ context.Context, message string) error {
	r.print(CommitArgs(message))
	return nil
}

// Status is never consulted in a dry run; a clean tree is reported.
func (r *dryRunner) Status(_ context.Context) (string, error) {
	return "", nil
}

func (r *dryRunner) Push(_ context.Context, remote, branch string, setUpstream bool) error {
	r.print(PushArgs(remote, branch, setUpstream))
	return nil
}

func (r *dryRunner) DryRun() bool {
	return true
}

// FormatCommand renders a command the way a dry run prints it: "+ " and the space-joined tokens
func FormatCommand(tool string, args []string) string {
	return fmt.Sprintf("+ %s", strings.Join(append([]string{tool}, args...), " "))
}
