// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"

	"tiwut-cli/internal/tui"
)

// pwdCommand prints the current working directory.
type pwdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newPwdCommand())
}

func newPwdCommand() *pwdCommand {
	return &pwdCommand{
		baseCommand: baseCommand{
			name:     "pwd",
			synopsis: "Print the current working directory.",
			usage:    "Usage: `pwd`\n\nPrints the absolute path of the current working directory.",
		},
	}
}

// Run executes the pwd command.
func (c *pwdCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	fmt.Fprintln(hc.Stdout, tui.PathStyle.Render(hc.Session.Cwd()))
	return nil
}
