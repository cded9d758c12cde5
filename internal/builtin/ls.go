// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"tiwut-cli/internal/tui"
)

// Entry kinds shown in the TYPE column.
const (
	kindDir        = "DIR"
	kindExecutable = "EXE"
	kindFile       = "FILE"
)

// lsCommand lists directory contents as a styled table.
type lsCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newLsCommand())
}

func newLsCommand() *lsCommand {
	return &lsCommand{
		baseCommand: baseCommand{
			name:     "ls",
			synopsis: "List directory contents.",
			usage:    "Usage: `ls [path]`\n\nLists the given directory, or the current one when no path is given.",
		},
	}
}

// Run executes the ls command.
func (c *lsCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	requested := "."
	if len(args) > 1 {
		requested = args[1]
	}

	target, err := hc.Session.Resolve(requested)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory or file not found: %s", requested)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", requested)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s", requested)
		}
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	rows := make([][]string, 0, len(entries))
	kinds := make([]string, 0, len(entries))
	for _, entry := range entries {
		fi, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info; skip it.
			continue
		}
		kind, size := classify(fi)
		rows = append(rows, []string{kind, entry.Name(), size})
		kinds = append(kinds, kind)
	}

	title := fmt.Sprintf("Contents of %s", filepath.Base(target))
	out := tui.RenderTable(tui.TableOptions{
		Title:   title,
		Headers: []string{"TYPE", "NAME", "SIZE"},
		Rows:    rows,
		RowStyle: func(row int) lipgloss.Style {
			switch kinds[row] {
			case kindDir:
				return tui.DirStyle
			case kindExecutable:
				return tui.ExecutableStyle
			default:
				return tui.FileStyle
			}
		},
	})
	fmt.Fprintln(hc.Stdout, out)
	return nil
}

// classify maps a file info to its TYPE column and display size.
// Directories show no size; files show kilobytes with two decimals,
// matching the table layout of the original terminal.
func classify(fi fs.FileInfo) (kind, size string) {
	if fi.IsDir() {
		return kindDir, "--"
	}
	size = fmt.Sprintf("%.2f KB", float64(fi.Size())/1024)
	if fi.Mode().Perm()&0o111 != 0 {
		return kindExecutable, size
	}
	return kindFile, size
}
