// Package runtime provides a context type that holds the logger and streams
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"context"
	"io"
	"os"

	"gitpush.dev/gitpush/internal/output"
)

// Context provides access to output and input for commands
type Context struct {
	context.Context
	Splog *output.Splog
	Stdin io.Reader
}

// NewContextWithSplog creates a new context with the given logger and input stream
func NewContextWithSplog(ctx context.Context, splog *output.Splog, stdin io.Reader) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Context{
		Context: ctx,
		Splog:   splog,
		Stdin:   stdin,
	}
}
