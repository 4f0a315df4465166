// Package git provides the git operations gitpush performs.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Staging the working tree (git add .)
//   - Committing with a message (git commit -m)
//   - Working-tree status queries (git status --porcelain)
//   - Pushing to a remote branch (git push [-u])
//   - Printing those commands instead of running them (dry run)
//   - Read-only repository inspection through go-git
//
// This package should be the only place where git commands are executed.
package git
