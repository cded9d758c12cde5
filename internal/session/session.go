// SPDX-License-Identifier: MPL-2.0

// Package session tracks the interactive state of a jailed terminal: the
// fixed root and the current working directory. The working directory is
// only ever mutated through jail-validated paths, so it is always a
// descendant of the root.
package session

import (
	"fmt"
	"os"

	"tiwut-cli/internal/jail"
)

// Session is the per-process state of the terminal. It is owned exclusively
// by the read-eval-print loop; there is no concurrent access.
type Session struct {
	jail *jail.Jail
	cwd  string
}

// New creates a Session positioned at the jail root.
func New(j *jail.Jail) *Session {
	return &Session{jail: j, cwd: j.Root()}
}

// Root returns the absolute root path.
func (s *Session) Root() string {
	return s.jail.Root()
}

// Cwd returns the current working directory (absolute, inside the root).
func (s *Session) Cwd() string {
	return s.cwd
}

// AtRoot reports whether the session is positioned at the jail root.
func (s *Session) AtRoot() bool {
	return s.cwd == s.jail.Root()
}

// Resolve validates a user-supplied path against the jail, relative to the
// current working directory.
func (s *Session) Resolve(requested string) (string, error) {
	return s.jail.Resolve(s.cwd, requested)
}

// ChangeDir moves the working directory to the given user-supplied path.
// The target must resolve inside the jail and be an existing directory.
func (s *Session) ChangeDir(requested string) error {
	target, err := s.Resolve(requested)
	if err != nil {
		return err
	}
	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", requested)
	}
	s.cwd = target
	return nil
}

// ChangeToRoot moves the working directory back to the jail root.
func (s *Session) ChangeToRoot() {
	s.cwd = s.jail.Root()
}

// PromptPath returns the display form of the working directory for the
// prompt: "~" at the root, the root-relative path below it.
func (s *Session) PromptPath() string {
	if s.AtRoot() {
		return "~"
	}
	return s.jail.Rel(s.cwd)
}
