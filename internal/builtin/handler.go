// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"tiwut-cli/internal/session"
	"tiwut-cli/internal/tui"
)

// DefaultCatMaxBytes is the file size above which cat truncates its output.
const DefaultCatMaxBytes = 10 << 20

type (
	// HandlerContext provides execution context for built-in commands:
	// the session state, the IO streams, and the display limits.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Session is the jailed terminal state (root + working directory).
		Session *session.Session
		// CatMaxBytes caps how much of a file cat renders in full.
		CatMaxBytes int64
		// Theme is the glamour style name for markdown output; empty
		// auto-detects from the terminal background.
		Theme string
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// WithHandlerContext stores a HandlerContext in the context. The shell sets
// this once per run; tests inject custom streams the same way.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context, falling
// back to the process streams when none was set.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok {
		return hc
	}
	return &HandlerContext{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		CatMaxBytes: DefaultCatMaxBytes,
	}
}

// catLimit returns the configured cat cap, defaulting when unset.
func (hc *HandlerContext) catLimit() int64 {
	if hc.CatMaxBytes > 0 {
		return hc.CatMaxBytes
	}
	return DefaultCatMaxBytes
}

// Successf writes a styled success message to stdout.
func (hc *HandlerContext) Successf(format string, a ...any) {
	fmt.Fprintln(hc.Stdout, tui.SuccessStyle.Render(fmt.Sprintf(format, a...)))
}

// Warnf writes a styled warning message to stdout. Warnings are part of the
// conversational output, not failures, so they share the success stream.
func (hc *HandlerContext) Warnf(format string, a ...any) {
	fmt.Fprintln(hc.Stdout, tui.WarningStyle.Render(fmt.Sprintf(format, a...)))
}
