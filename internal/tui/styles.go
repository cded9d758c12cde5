// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across all shell
// output. These colors are designed for dark terminal backgrounds with good
// contrast.
const (
	// ColorPrimary is yellow - used for the terminal name in the prompt.
	ColorPrimary = lipgloss.Color("#F59E0B")

	// ColorMuted is gray - used for secondary text and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for success messages and executables.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is magenta - used for warnings and caution states.
	ColorWarning = lipgloss.Color("#D946EF")

	// ColorPath is cyan - used for filesystem paths.
	ColorPath = lipgloss.Color("#06B6D4")

	// ColorDir is blue - used for directory entries in listings.
	ColorDir = lipgloss.Color("#3B82F6")

	// ColorFile is near-white - used for regular file entries.
	ColorFile = lipgloss.Color("#E5E7EB")
)

// Base styles - reusable lipgloss styles built from the color palette.
var (
	// PromptNameStyle renders the terminal name segment of the prompt.
	PromptNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// PathStyle renders filesystem paths (prompt segment, pwd output).
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorPath)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// DirStyle is for directory rows in listings.
	DirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDir)

	// ExecutableStyle is for executable file rows in listings.
	ExecutableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// FileStyle is for regular file rows in listings.
	FileStyle = lipgloss.NewStyle().
			Foreground(ColorFile)

	// MutedStyle is for supplementary details (table headers, hints).
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// FrameStyle is for decorative frames around file content.
	FrameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)
)
