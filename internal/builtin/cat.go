// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"tiwut-cli/internal/tui"
)

// catTruncateLines is how many lines of an oversized file are shown.
const catTruncateLines = 50

// catCommand prints the content of a text file.
type catCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCatCommand())
}

func newCatCommand() *catCommand {
	return &catCommand{
		baseCommand: baseCommand{
			name:     "cat",
			synopsis: "Display the content of a text file.",
			usage: "Usage: `cat <file>`\n\n" +
				"Oversized files show only their first lines; binary files are refused.",
		},
	}
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	if len(args) < 2 {
		return fmt.Errorf("usage: cat <file>")
	}
	name := args[1]

	target, err := hc.Session.Resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s", name)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("file not found: %s", name)
	}

	if info.Size() > hc.catLimit() {
		hc.Warnf("File is too large (%.2f MB). Displaying only the first %d lines.",
			float64(info.Size())/(1024*1024), catTruncateLines)
		return c.printHead(hc, target, name)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s", name)
		}
		return err
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("cannot display file content: %s might be a binary file", name)
	}

	fmt.Fprintln(hc.Stdout, tui.FrameStyle.Render(fmt.Sprintf("--- Content of %s ---", name)))
	fmt.Fprint(hc.Stdout, string(content))
	if len(content) > 0 && content[len(content)-1] != '\n' {
		fmt.Fprintln(hc.Stdout)
	}
	fmt.Fprintln(hc.Stdout, tui.FrameStyle.Render("------------------------------------"))
	return nil
}

// printHead prints the first catTruncateLines lines of the file.
func (c *catCommand) printHead(hc *HandlerContext, target, name string) (err error) {
	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s", name)
		}
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; i < catTruncateLines && scanner.Scan(); i++ {
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			return fmt.Errorf("cannot display file content: %s might be a binary file", name)
		}
		fmt.Fprintln(hc.Stdout, string(line))
	}
	return scanner.Err()
}
