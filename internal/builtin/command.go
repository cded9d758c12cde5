// SPDX-License-Identifier: MPL-2.0

// Package builtin implements the terminal's built-in commands and the
// registry that dispatches them. Each command validates its path arguments
// through the jail before touching the filesystem.
package builtin

import (
	"context"
	"errors"
)

// ErrExit is returned by the exit command to signal the read loop to stop.
// It is the only error the loop treats as fatal.
var ErrExit = errors.New("exit requested")

type (
	// Command defines the interface for built-in command implementations.
	// Each builtin (ls, cd, mkdir, etc.) implements this interface.
	Command interface {
		// Name returns the command name (e.g., "ls", "cd", "mkdir").
		Name() string

		// Synopsis returns a one-line description for the help listing.
		Synopsis() string

		// Usage returns the usage text in markdown (shown by "help <cmd>").
		Usage() string

		// SupportedFlags returns the flags this implementation supports.
		SupportedFlags() []FlagInfo

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with the session and
		// stdin/stdout/stderr. args[0] is the command name, args[1:] are
		// the arguments. Returns nil on success.
		Run(ctx context.Context, args []string) error
	}

	// FlagInfo describes a supported flag for a built-in command.
	FlagInfo struct {
		// Name is the flag name without dashes (e.g., "r" for -r).
		Name string
		// Description explains what the flag does.
		Description string
	}
)
