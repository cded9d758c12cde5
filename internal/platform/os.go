// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes OS-specific lookups.
package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
