// SPDX-License-Identifier: MPL-2.0

// Package tui renders styled terminal output: the lipgloss palette shared by
// all user-facing messages, print-only tables for listings, and glamour
// markdown rendering for help text.
package tui

import (
	"github.com/charmbracelet/glamour"
)

// FormatOptions configures markdown rendering.
type FormatOptions struct {
	// Content is the markdown text to render.
	Content string
	// Theme is the glamour style name ("dark", "light"); empty selects
	// automatically based on the terminal background.
	Theme string
	// Width is the word wrap width (0 for no wrap).
	Width int
}

// RenderMarkdown renders markdown content using glamour.
func RenderMarkdown(opts FormatOptions) (string, error) {
	var rendererOpts []glamour.TermRendererOption
	if opts.Theme != "" {
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Theme))
	} else {
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(opts.Content)
}
