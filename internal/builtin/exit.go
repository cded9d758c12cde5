// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
)

// exitCommand ends the interactive session. It is registered under both
// "exit" and "quit".
type exitCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newExitCommand("exit"))
	RegisterDefault(newExitCommand("quit"))
}

func newExitCommand(name string) *exitCommand {
	return &exitCommand{
		baseCommand: baseCommand{
			name:     name,
			synopsis: "Exit the terminal.",
			usage:    "Usage: `" + name + "`",
		},
	}
}

// Run executes the exit command. The returned ErrExit is the only error the
// read loop treats as fatal.
func (c *exitCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	hc.Successf("Exiting. Goodbye!")
	return ErrExit
}
