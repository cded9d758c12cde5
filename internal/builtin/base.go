// SPDX-License-Identifier: MPL-2.0

package builtin

// baseCommand provides the common metadata plumbing for builtins.
type baseCommand struct {
	name     string
	synopsis string
	usage    string
	flags    []FlagInfo
}

// Name returns the command name.
func (b *baseCommand) Name() string {
	return b.name
}

// Synopsis returns the one-line description.
func (b *baseCommand) Synopsis() string {
	return b.synopsis
}

// Usage returns the markdown usage text.
func (b *baseCommand) Usage() string {
	return b.usage
}

// SupportedFlags returns the flags supported by this command.
func (b *baseCommand) SupportedFlags() []FlagInfo {
	return b.flags
}
