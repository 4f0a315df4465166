package actions

import (
	"errors"
	"fmt"

	"gitpush.dev/gitpush/internal/config"
	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/git"
	"gitpush.dev/gitpush/internal/output"
	"gitpush.dev/gitpush/internal/runtime"
	"gitpush.dev/gitpush/internal/utils"
)

// PushOptions contains options for the push action
type PushOptions struct {
	Config config.Config
	// Runner replaces the git runner built from Config (mostly for tests)
	Runner git.Runner
	// Prompter replaces the stdin prompter (mostly for tests)
	Prompter output.Prompter
}

// Result describes what a successful push action did
type Result struct {
	Committed bool
	Remote    string
	Branch    string
}

// Summary returns the final human-readable line for the result
func (r *Result) Summary() string {
	if r.Committed {
		return fmt.Sprintf("Done: committed and pushed to %s/%s", r.Remote, r.Branch)
	}
	return fmt.Sprintf("Done: pushed to %s/%s", r.Remote, r.Branch)
}

// PushAction stages everything, commits it with the resolved message and pushes
// the branch to the remote. A commit that fails because the working tree is
// clean is tolerated; every other failure aborts the sequence.
func PushAction(ctx *runtime.Context, opts PushOptions) (*Result, error) {
	splog := ctx.Splog
	cfg := opts.Config.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workDir, err := utils.ResolveWorkDir(cfg.WorkDir)
	if err != nil {
		return nil, err
	}

	prompter := opts.Prompter
	if prompter == nil {
		prompter = output.NewPrompter(ctx.Stdin, splog.Out())
	}
	message, err := ResolveMessage(cfg, prompter)
	if err != nil {
		return nil, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = newRunner(ctx, cfg, workDir)
	}

	var repo *git.Repository
	if !runner.DryRun() {
		repo = preflight(splog, workDir, cfg.Remote)
	}

	if err := runner.StageAll(ctx); err != nil {
		return nil, gperrors.NewStepError(gperrors.KindStaging, err)
	}

	committed, err := commit(ctx, runner, message)
	if err != nil {
		return nil, err
	}

	if err := runner.Push(ctx, cfg.Remote, cfg.Branch, cfg.SetUpstream); err != nil {
		return nil, gperrors.NewStepError(gperrors.KindPush, err)
	}

	if repo != nil {
		if head, err := repo.HeadShortHash(); err == nil {
			splog.Debug("Pushed %s to %s/%s", head, cfg.Remote, cfg.Branch)
		}
	}

	result := &Result{Committed: committed, Remote: cfg.Remote, Branch: cfg.Branch}
	splog.Info("%s", result.Summary())
	return result, nil
}

func newRunner(ctx *runtime.Context, cfg config.Config, workDir string) git.Runner {
	cmd := git.NewCommandRunner(workDir,
		git.WithTool(git.DefaultTool),
		git.WithStdio(ctx.Stdin, ctx.Splog.Out(), ctx.Splog.ErrOut()))
	if cfg.DryRun {
		return git.NewDryRunner(cmd.Tool(), ctx.Splog.Info)
	}
	ctx.Splog.Debug("Running %s in %s", cmd.Tool(), cmd.WorkingDir())
	return git.NewRealRunner(cmd)
}

// commit runs the commit step and reports whether a commit was recorded.
// In a dry run a failed commit is never checked against the working tree.
func commit(ctx *runtime.Context, runner git.Runner, message string) (bool, error) {
	commitErr := runner.Commit(ctx, message)
	if commitErr == nil {
		return true, nil
	}
	if runner.DryRun() {
		return false, nil
	}

	status, err := runner.Status(ctx)
	if err != nil {
		return false, gperrors.NewStepError(gperrors.KindCommit, errors.Join(commitErr, err))
	}
	if !git.IsCleanStatus(status) {
		return false, gperrors.NewStepError(gperrors.KindCommit, commitErr)
	}

	ctx.Splog.Debug("%v", gperrors.NewStepError(gperrors.KindCommitCleanTree, commitErr))
	ctx.Splog.Info("Nothing to commit; pushing anyway...")
	return false, nil
}

// preflight inspects the repository without running git. Problems are only
// reported; git itself produces the authoritative error later.
func preflight(splog *output.Splog, workDir, remote string) *git.Repository {
	repo, err := git.OpenRepository(workDir)
	if err != nil {
		splog.Debug("Skipping repository checks: %v", err)
		return nil
	}

	ok, err := repo.HasRemote(remote)
	switch {
	case err != nil:
		splog.Debug("Could not read remotes: %v", err)
	case !ok:
		splog.Warn("Remote %s is not configured in %s", remote, workDir)
	}
	return repo
}
