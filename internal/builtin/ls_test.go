// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLsCommand_ListsCreatedDirectory(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := newMkdirCommand().Run(tc.ctx, []string{"mkdir", "projects"}); err != nil {
		t.Fatal(err)
	}

	if err := newLsCommand().Run(tc.ctx, []string{"ls"}); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}
	if !strings.Contains(tc.stdout.String(), "projects") {
		t.Errorf("ls output should list the created directory, got %q", tc.stdout.String())
	}
}

func TestLsCommand_ClassifiesEntries(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	root := tc.session.Root()
	if err := os.Mkdir(filepath.Join(root, "d"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "plain.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "tool.sh"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := newLsCommand().Run(tc.ctx, []string{"ls"}); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}
	out := tc.stdout.String()
	for _, want := range []string{"DIR", "FILE", "EXE", "d", "plain.txt", "tool.sh"} {
		if !strings.Contains(out, want) {
			t.Errorf("ls output missing %q:\n%s", want, out)
		}
	}
}

func TestLsCommand_WithPathArgument(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	sub := filepath.Join(tc.session.Root(), "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "inner.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := newLsCommand().Run(tc.ctx, []string{"ls", "sub"}); err != nil {
		t.Fatalf("ls sub returned error: %v", err)
	}
	if !strings.Contains(tc.stdout.String(), "inner.txt") {
		t.Errorf("ls sub should list inner.txt, got %q", tc.stdout.String())
	}
}

func TestLsCommand_Missing(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	err := newLsCommand().Run(tc.ctx, []string{"ls", "ghost"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("ls ghost error = %v, want not found", err)
	}
}

func TestLsCommand_NotADirectory(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := os.WriteFile(filepath.Join(tc.session.Root(), "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := newLsCommand().Run(tc.ctx, []string{"ls", "f.txt"})
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("ls f.txt error = %v, want not a directory", err)
	}
}
