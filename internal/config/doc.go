// Package config holds the invocation configuration for gitpush.
//
// It handles:
//   - Documented defaults for the flag-driven and quick modes
//   - Mode specific behaviour such as the empty-message exit status
//   - Validation of remote and branch names
package config
