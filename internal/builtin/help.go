// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"strings"

	"tiwut-cli/internal/tui"
)

// helpCommand renders the command summary, or the usage of a single command.
type helpCommand struct {
	baseCommand
	reg *Registry
}

func init() {
	RegisterDefault(newHelpCommand("help", DefaultRegistry))
	// The original terminal accepts "?" as an alias.
	RegisterDefault(newHelpCommand("?", DefaultRegistry))
}

func newHelpCommand(name string, reg *Registry) *helpCommand {
	return &helpCommand{
		baseCommand: baseCommand{
			name:     name,
			synopsis: "Show help for all commands, or one command.",
			usage:    "Usage: `help [command]`",
		},
		reg: reg,
	}
}

// Run executes the help command.
func (c *helpCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var md string
	if len(args) > 1 {
		cmd, ok := c.reg.Lookup(args[1])
		if !ok {
			return fmt.Errorf("%s: command not found", args[1])
		}
		md = c.commandHelp(cmd)
	} else {
		md = c.summary()
	}

	rendered, err := tui.RenderMarkdown(tui.FormatOptions{Content: md, Theme: hc.Theme})
	if err != nil {
		// Degrade to the raw markdown rather than hiding the help text.
		fmt.Fprintln(hc.Stdout, md)
		return nil
	}
	fmt.Fprint(hc.Stdout, rendered)
	return nil
}

// summary builds the markdown overview of every registered command.
func (c *helpCommand) summary() string {
	var b strings.Builder
	b.WriteString("# Available Commands\n\n")
	for _, name := range c.reg.Names() {
		if name == "?" {
			// Alias of help; listing both is noise.
			continue
		}
		cmd, ok := c.reg.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- `%s`: %s\n", name, cmd.Synopsis())
	}
	b.WriteString("\nRun `help <command>` for details.\n")
	return b.String()
}

// commandHelp builds the markdown detail view for one command.
func (c *helpCommand) commandHelp(cmd Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n%s\n", cmd.Name(), cmd.Synopsis(), cmd.Usage())
	if flags := cmd.SupportedFlags(); len(flags) > 0 {
		b.WriteString("\nFlags:\n")
		for _, f := range flags {
			fmt.Fprintf(&b, "- `-%s`: %s\n", f.Name, f.Description)
		}
	}
	return b.String()
}
