// SPDX-License-Identifier: MPL-2.0

// Package shell runs the interactive read-eval-print loop: it reads one line
// at a time, tokenizes it, and dispatches it through the builtin registry.
// The loop is single-threaded; the Session is touched by nothing else.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	shlex "mvdan.cc/sh/v3/shell"

	"tiwut-cli/internal/builtin"
	"tiwut-cli/internal/session"
	"tiwut-cli/internal/tui"
)

// DefaultTerminalName is the prompt name used when none is configured.
const DefaultTerminalName = "Tiwut"

// Options configures a Shell. Zero values fall back to sensible defaults.
type Options struct {
	// Stdin is the input stream (defaults to os.Stdin).
	Stdin io.Reader
	// Stdout is the output stream (defaults to os.Stdout).
	Stdout io.Writer
	// Stderr is the error stream (defaults to os.Stderr).
	Stderr io.Writer
	// Registry supplies the built-in commands (defaults to builtin.DefaultRegistry).
	Registry *builtin.Registry
	// Logger receives dispatch debug logs (defaults to a warn-level stderr logger).
	Logger *log.Logger
	// TerminalName is the prompt name (defaults to DefaultTerminalName).
	TerminalName string
	// CatMaxBytes caps the cat command's full rendering.
	CatMaxBytes int64
	// Theme is the glamour style name for markdown output ("dark", "light");
	// empty auto-detects.
	Theme string
	// Interactive enables the banner and the prompt. Piped input stays quiet.
	Interactive bool
}

// Shell is the interactive loop over one Session.
type Shell struct {
	session *session.Session
	opts    Options
}

// New creates a Shell for the given session.
func New(sess *session.Session, opts Options) *Shell {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = builtin.DefaultRegistry
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(opts.Stderr, log.Options{Level: log.WarnLevel})
	}
	if opts.TerminalName == "" {
		opts.TerminalName = DefaultTerminalName
	}
	return &Shell{session: sess, opts: opts}
}

// Run executes the read-eval-print loop until exit/quit, EOF, or context
// cancellation. Command failures are rendered and swallowed; only the exit
// sentinel and read errors end the loop.
func (s *Shell) Run(ctx context.Context) error {
	ctx = builtin.WithHandlerContext(ctx, &builtin.HandlerContext{
		Stdin:       s.opts.Stdin,
		Stdout:      s.opts.Stdout,
		Stderr:      s.opts.Stderr,
		Session:     s.session,
		CatMaxBytes: s.opts.CatMaxBytes,
		Theme:       s.opts.Theme,
	})

	if s.opts.Interactive {
		s.printBanner()
	}

	scanner := bufio.NewScanner(s.opts.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.opts.Interactive {
			fmt.Fprint(s.opts.Stdout, s.prompt())
		}
		if !scanner.Scan() {
			// EOF behaves like exit, goodbye included.
			if s.opts.Interactive {
				fmt.Fprintln(s.opts.Stdout)
				fmt.Fprintln(s.opts.Stdout, tui.SuccessStyle.Render("Exiting. Goodbye!"))
			}
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields, err := shlex.Fields(line, nil)
		if err != nil {
			s.renderError(fmt.Errorf("invalid input: %w", err))
			continue
		}
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		cmd, ok := s.opts.Registry.Lookup(name)
		if !ok {
			s.renderError(fmt.Errorf("%s: command not found", name))
			fmt.Fprintln(s.opts.Stderr, tui.MutedStyle.Render("Type 'help' for a list of commands."))
			continue
		}

		s.opts.Logger.Debug("dispatching command", "name", name, "args", fields[1:])
		if err := cmd.Run(ctx, fields); err != nil {
			if errors.Is(err, builtin.ErrExit) {
				return nil
			}
			s.renderError(err)
		}
	}
}

// prompt renders the styled "<name>:<path>$ " prompt.
func (s *Shell) prompt() string {
	return tui.PromptNameStyle.Render(s.opts.TerminalName) +
		":" + tui.PathStyle.Render(s.session.PromptPath()) + "$ "
}

// printBanner writes the welcome banner shown once at startup.
func (s *Shell) printBanner() {
	fmt.Fprintln(s.opts.Stdout)
	fmt.Fprintln(s.opts.Stdout, tui.SuccessStyle.Render(fmt.Sprintf("Welcome to %s Terminal!", s.opts.TerminalName)))
	fmt.Fprintln(s.opts.Stdout, tui.MutedStyle.Render("Root Directory: ")+tui.PathStyle.Render(s.session.Root()))
	fmt.Fprintln(s.opts.Stdout, tui.MutedStyle.Render("Type 'help' or '?' for a list of commands."))
	fmt.Fprintln(s.opts.Stdout)
}

// renderError writes a styled, non-fatal error message.
func (s *Shell) renderError(err error) {
	fmt.Fprintln(s.opts.Stderr, tui.ErrorStyle.Render("Error: ")+err.Error())
}
