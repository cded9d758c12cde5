// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// rmCommand removes a file, or a directory tree with -r.
type rmCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newRmCommand())
}

func newRmCommand() *rmCommand {
	return &rmCommand{
		baseCommand: baseCommand{
			name:     "rm",
			synopsis: "Remove a file or directory (use -r for directories).",
			usage: "Usage: `rm <file>` or `rm -r <directory>`\n\n" +
				"Directories are only removed with `-r`, contents included.",
			flags: []FlagInfo{
				{Name: "r", Description: "remove directories and their contents recursively"},
			},
		},
	}
}

// Run executes the rm command.
func (c *rmCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	recursive := false
	var operands []string
	for _, arg := range args[1:] {
		if arg == "-r" {
			recursive = true
			continue
		}
		operands = append(operands, arg)
	}
	if len(operands) == 0 {
		return fmt.Errorf("usage: rm <file> or rm -r <directory>")
	}
	name := operands[len(operands)-1]

	target, err := hc.Session.Resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file or directory not found: %s", name)
		}
		return err
	}

	if info.IsDir() {
		if !recursive {
			return fmt.Errorf("cannot remove directory %s: use 'rmdir' for empty directories or 'rm -r' for non-empty directories", name)
		}
		if err := os.RemoveAll(target); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return fmt.Errorf("permission denied: %s", name)
			}
			return err
		}
		hc.Successf("Directory (and contents) removed: %s", name)
		return nil
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s", name)
		}
		return err
	}
	hc.Successf("File removed: %s", name)
	return nil
}
