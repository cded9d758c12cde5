// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableOptions configures a rendered (non-interactive) table.
type TableOptions struct {
	// Title is displayed above the table.
	Title string
	// Headers defines the column titles.
	Headers []string
	// Rows contains the table data.
	Rows [][]string
	// RowStyle returns the style for a given 0-based data row.
	// Nil means FileStyle for every row.
	RowStyle func(row int) lipgloss.Style
}

// RenderTable renders a bordered table suitable for printing straight to the
// output stream. There is no selection or scrolling; listings are print-only.
func RenderTable(opts TableOptions) string {
	headerStyle := MutedStyle.Bold(true).Padding(0, 1)
	rowStyle := opts.RowStyle
	if rowStyle == nil {
		rowStyle = func(int) lipgloss.Style { return FileStyle }
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(MutedStyle).
		Headers(opts.Headers...).
		Rows(opts.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return rowStyle(row).Padding(0, 1)
		})

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(PathStyle.Render(opts.Title))
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	return b.String()
}
