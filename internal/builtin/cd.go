// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// cdCommand changes the current working directory.
type cdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCdCommand())
}

func newCdCommand() *cdCommand {
	return &cdCommand{
		baseCommand: baseCommand{
			name:     "cd",
			synopsis: "Change the current working directory.",
			usage: "Usage: `cd <directory>` or `cd ..`\n\n" +
				"With no argument, returns to the root directory. The working " +
				"directory can never leave the root.",
		},
	}
}

// Run executes the cd command.
func (c *cdCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	if len(args) < 2 {
		hc.Session.ChangeToRoot()
		hc.Successf("Changed directory to root (~)")
		return nil
	}

	target := args[1]
	if target == ".." && hc.Session.AtRoot() {
		// Round trip stays at root: cd followed by cd .. is idempotent.
		hc.Warnf("Cannot move above the root directory.")
		return nil
	}

	if err := hc.Session.ChangeDir(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory not found: %s", target)
		}
		return err
	}

	hc.Successf("Changed directory to %s", target)
	return nil
}
