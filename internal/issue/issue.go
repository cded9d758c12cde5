// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and Markdown-formatted
// guidance, improving the user experience when errors occur during startup.
package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	RootUnavailableId Id = iota + 1
	ConfigLoadFailedId
	ConfigWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	rootUnavailableIssue = &Issue{
		id: RootUnavailableId,
		mdMsg: `
# Root directory unavailable!

The sandbox root directory could not be created or accessed.

## Things you can try:
- Check that the parent directory exists and is writable
- Point the terminal at a different location:
~~~
$ tiwut --root /path/to/sandbox
~~~

- Or set it permanently in your config file:
~~~toml
root_dir = "/path/to/sandbox"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file exists but could not be read or contains invalid values.

## Common issues:
- Invalid TOML syntax (missing quotes, brackets, etc.)
- An unknown ` + "`color_scheme`" + ` (valid: auto, dark, light)
- A non-positive ` + "`cat.max_bytes`" + `

## Things you can try:
- Check the error message above for the specific problem
- Show the config file location:
~~~
$ tiwut config path
~~~

- Regenerate a default config file after moving the broken one aside:
~~~
$ tiwut config init
~~~`,
	}

	configWriteFailedIssue = &Issue{
		id: ConfigWriteFailedId,
		mdMsg: `
# Failed to write configuration!

The default config file could not be written.

## Things you can try:
- Check that the config directory is writable
- If a config file already exists, move it aside before running:
~~~
$ tiwut config init
~~~`,
	}

	issues = map[Id]*Issue{
		rootUnavailableIssue.Id():   rootUnavailableIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		configWriteFailedIssue.Id(): configWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
