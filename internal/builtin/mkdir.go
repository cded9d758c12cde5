// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tiwut-cli/internal/platform"
)

// mkdirCommand creates a new directory inside the jail.
type mkdirCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newMkdirCommand())
}

func newMkdirCommand() *mkdirCommand {
	return &mkdirCommand{
		baseCommand: baseCommand{
			name:     "mkdir",
			synopsis: "Create a new directory.",
			usage:    "Usage: `mkdir <directory>`\n\nParent directories are not created implicitly.",
		},
	}
}

// Run executes the mkdir command.
func (c *mkdirCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	if len(args) < 2 {
		return fmt.Errorf("usage: mkdir <directory>")
	}

	name := args[1]
	// Reject names the sandbox could not carry to a Windows machine.
	if platform.IsWindowsReservedName(filepath.Base(name)) {
		return fmt.Errorf("invalid directory name: %s is reserved on Windows", name)
	}
	target, err := hc.Session.Resolve(name)
	if err != nil {
		return err
	}

	if err := os.Mkdir(target, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			hc.Warnf("Directory already exists: %s", name)
			return nil
		}
		return fmt.Errorf("creating directory %s: %w", name, err)
	}

	hc.Successf("Directory created: %s", name)
	return nil
}
