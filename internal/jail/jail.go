// SPDX-License-Identifier: MPL-2.0

// Package jail confines path resolution to a single root directory subtree.
// Every user-supplied path is resolved and checked here before any filesystem
// primitive touches it.
package jail

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscape is the sentinel error wrapped by EscapeError.
var ErrPathEscape = errors.New("path escapes the root directory")

// EscapeError reports a request that resolved outside the jail root.
type EscapeError struct {
	// Requested is the original user-supplied path.
	Requested string
	// Resolved is the fully resolved absolute target that failed containment.
	Resolved string
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("access denied: %q resolves outside the root directory", e.Requested)
}

func (e *EscapeError) Unwrap() error {
	return ErrPathEscape
}

// Jail holds the fixed, fully resolved absolute root path. The root never
// changes for the lifetime of the process.
type Jail struct {
	root string
}

// New creates a Jail rooted at root. The root must exist; it is made absolute
// and symlink-resolved so that later containment checks compare like with like.
func New(root string) (*Jail, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving jail root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving jail root: %w", err)
	}
	return &Jail{root: resolved}, nil
}

// Root returns the absolute jail root.
func (j *Jail) Root() string {
	return j.root
}

// Resolve computes the absolute target for a user-supplied path. Relative
// requests are joined against cwd (which must itself be inside the jail);
// absolute requests are interpreted as rooted at the jail root, the way a
// chroot would. Symbolic links are resolved fully BEFORE the containment
// check, so a link pointing outside the root cannot smuggle a path through.
// Returns an EscapeError if the resolved target leaves the root subtree.
func (j *Jail) Resolve(cwd, requested string) (string, error) {
	var target string
	if filepath.IsAbs(requested) {
		// filepath.Join cleans, so "/../x" cannot climb above the root here;
		// anything that still escapes is caught by the containment check below.
		target = filepath.Join(j.root, requested)
	} else {
		target = filepath.Join(cwd, requested)
	}

	resolved, err := resolveExisting(target)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", requested, err)
	}

	if !j.Contains(resolved) {
		return "", &EscapeError{Requested: requested, Resolved: resolved}
	}
	return resolved, nil
}

// Contains reports whether p (an absolute, symlink-resolved path) is the root
// itself or a descendant of it.
func (j *Jail) Contains(p string) bool {
	rel, err := filepath.Rel(j.root, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}

// Rel returns the root-relative form of p for display purposes, or "." when p
// is the root itself.
func (j *Jail) Rel(p string) string {
	rel, err := filepath.Rel(j.root, p)
	if err != nil {
		return p
	}
	return rel
}

// resolveExisting resolves symlinks in path. Targets of mkdir/cp may not exist
// yet, so the deepest existing ancestor is EvalSymlinks-ed and the untouched
// suffix is re-joined onto the resolved prefix.
func resolveExisting(path string) (string, error) {
	var suffix []string
	cur := path
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			for i := len(suffix) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, suffix[i])
			}
			return resolved, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			// Ran out of ancestors without finding anything on disk.
			return "", err
		}
		suffix = append(suffix, filepath.Base(cur))
		cur = parent
	}
}
