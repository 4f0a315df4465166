// Package actions provides high-level business logic for CLI commands.
//
// The push action orchestrates the git package: it resolves the commit
// message, stages everything, commits, and pushes to the configured remote
// and branch.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog, stdin and cancellation
//   - Actions are stateless; git holds all repository state
//   - Failures are returned as errors from the errors package so callers can
//     map them to exit codes
package actions
