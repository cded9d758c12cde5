// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tiwut-cli/internal/jail"
)

func TestRmCommand_File(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	file := filepath.Join(tc.session.Root(), "doomed.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := newRmCommand().Run(tc.ctx, []string{"rm", "doomed.txt"}); err != nil {
		t.Fatalf("rm returned error: %v", err)
	}
	if _, err := os.Stat(file); !errors.Is(err, os.ErrNotExist) {
		t.Error("file should have been removed")
	}
}

func TestRmCommand_DirectoryWithoutRecursive(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := os.Mkdir(filepath.Join(tc.session.Root(), "d"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := newRmCommand().Run(tc.ctx, []string{"rm", "d"})
	if err == nil || !strings.Contains(err.Error(), "rm -r") {
		t.Errorf("rm on a directory without -r error = %v, want a hint toward rm -r", err)
	}
	if _, statErr := os.Stat(filepath.Join(tc.session.Root(), "d")); statErr != nil {
		t.Error("directory must survive a refused rm")
	}
}

func TestRmCommand_RecursiveRemovesTree(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	root := tc.session.Root()
	deep := filepath.Join(root, "tree", "nested")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(deep, "leaf.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := newRmCommand().Run(tc.ctx, []string{"rm", "-r", "tree"}); err != nil {
		t.Fatalf("rm -r returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "tree")); !errors.Is(err, os.ErrNotExist) {
		t.Error("rm -r should remove the directory and all contents")
	}

	// A later listing must not show the removed tree.
	tc.stdout.Reset()
	if err := newLsCommand().Run(tc.ctx, []string{"ls"}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(tc.stdout.String(), "tree") {
		t.Errorf("ls after rm -r should not list the removed directory, got %q", tc.stdout.String())
	}
}

func TestRmCommand_FlagPositionIndependent(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := os.MkdirAll(filepath.Join(tc.session.Root(), "d", "x"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := newRmCommand().Run(tc.ctx, []string{"rm", "d", "-r"}); err != nil {
		t.Fatalf("rm d -r returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tc.session.Root(), "d")); !errors.Is(err, os.ErrNotExist) {
		t.Error("-r after the operand should still remove the directory")
	}
}

func TestRmCommand_Missing(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	err := newRmCommand().Run(tc.ctx, []string{"rm", "ghost"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("rm ghost error = %v, want not found", err)
	}
}

func TestRmCommand_NoArgs(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := newRmCommand().Run(tc.ctx, []string{"rm"}); err == nil {
		t.Error("rm with no arguments should error")
	}
}

func TestRmCommand_EscapeRejected(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	err := newRmCommand().Run(tc.ctx, []string{"rm", "-r", "../../tmp"})
	if !errors.Is(err, jail.ErrPathEscape) {
		t.Errorf("rm -r ../../tmp error = %v, want ErrPathEscape", err)
	}
}
