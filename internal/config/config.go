package config

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// DefaultRemote is the remote pushed to when none is given
	DefaultRemote = "Remote"
	// DefaultBranch is the branch pushed when none is given
	DefaultBranch = "master"
)

// Mode selects which CLI presentation built the configuration.
type Mode int

const (
	// ModeFlags is the flag-driven presentation (the root command)
	ModeFlags Mode = iota
	// ModeSimple always prompts and pushes to the default remote and branch
	ModeSimple
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "quick"
	default:
		return "flags"
	}
}

// Config is the configuration of a single commit-and-push invocation
type Config struct {
	Message     string
	Remote      string
	Branch      string
	SetUpstream bool
	DryRun      bool
	Mode        Mode
	// WorkDir is where git runs. Empty means the directory of the running binary.
	WorkDir string
}

// Default returns the configuration used by the root command before flags are applied
func Default() Config {
	return Config{
		Remote:      DefaultRemote,
		Branch:      DefaultBranch,
		SetUpstream: true,
		Mode:        ModeFlags,
	}
}

// Simple returns the fixed configuration of the quick command
func Simple() Config {
	return Config{
		Remote:      DefaultRemote,
		Branch:      DefaultBranch,
		SetUpstream: true,
		Mode:        ModeSimple,
	}
}

// Normalize applies the constraints of the configured mode.
// Quick mode never takes a message from flags, never dry-runs and
// always pushes to the default remote and branch with upstream tracking.
func (c Config) Normalize() Config {
	if c.Mode == ModeSimple {
		c.Message = ""
		c.Remote = DefaultRemote
		c.Branch = DefaultBranch
		c.SetUpstream = true
		c.DryRun = false
	}
	return c
}

// EmptyMessageExitCode is the process exit status used when no commit message is given
func (c Config) EmptyMessageExitCode() int {
	if c.Mode == ModeSimple {
		return 1
	}
	return 2
}

// EmptyMessageText is the diagnostic printed when no commit message is given
func (c Config) EmptyMessageText() string {
	if c.Mode == ModeSimple {
		return "Empty commit message, aborted."
	}
	return "Commit message is empty."
}

// Validate checks that the remote and branch are usable as single git arguments
func (c Config) Validate() error {
	if err := validateName("remote", c.Remote); err != nil {
		return err
	}
	return validateName("branch", c.Branch)
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s name must not be empty", field)
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%s name %q must not contain whitespace", field, value)
	}
	if strings.HasPrefix(value, "-") {
		return fmt.Errorf("%s name %q must not start with '-'", field, value)
	}
	return nil
}
