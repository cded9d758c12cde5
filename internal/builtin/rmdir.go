// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// rmdirCommand removes an empty directory.
type rmdirCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newRmdirCommand())
}

func newRmdirCommand() *rmdirCommand {
	return &rmdirCommand{
		baseCommand: baseCommand{
			name:     "rmdir",
			synopsis: "Remove an empty directory.",
			usage:    "Usage: `rmdir <directory>`\n\nFails if the directory is not empty; use `rm -r` for that.",
		},
	}
}

// Run executes the rmdir command.
func (c *rmdirCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	if len(args) < 2 {
		return fmt.Errorf("usage: rmdir <directory>")
	}

	name := args[1]
	target, err := hc.Session.Resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory not found: %s", name)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", name)
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("directory is not empty or permission denied: %s", name)
	}

	hc.Successf("Directory removed: %s", name)
	return nil
}
