// Package runtime provides the execution context for gitpush commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// logger, the standard input stream and the cancellation context.
package runtime
