// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRmdir_RemovesEmptyDirectory(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := os.Mkdir(filepath.Join(tc.session.Root(), "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := newRmdirCommand().Run(tc.ctx, []string{"rmdir", "empty"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tc.session.Root(), "empty")); !os.IsNotExist(err) {
		t.Error("directory should be gone")
	}
	if !strings.Contains(tc.stdout.String(), "Directory removed: empty") {
		t.Errorf("missing confirmation, got %q", tc.stdout.String())
	}
}

func TestRmdir_RefusesNonEmptyDirectory(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	dir := filepath.Join(tc.session.Root(), "full")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := newRmdirCommand().Run(tc.ctx, []string{"rmdir", "full"})
	if err == nil || !strings.Contains(err.Error(), "not empty") {
		t.Errorf("Run() = %v, want a not-empty error", err)
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Error("a refused rmdir must leave the directory in place")
	}
}

func TestRmdir_RefusesFile(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := os.WriteFile(filepath.Join(tc.session.Root(), "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := newRmdirCommand().Run(tc.ctx, []string{"rmdir", "f.txt"})
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Run() = %v, want a not-a-directory error", err)
	}
}

func TestRmdir_MissingTarget(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	err := newRmdirCommand().Run(tc.ctx, []string{"rmdir", "ghost"})
	if err == nil || !strings.Contains(err.Error(), "directory not found") {
		t.Errorf("Run() = %v, want a not-found error", err)
	}
}

func TestMkdir_RejectsWindowsReservedName(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	err := newMkdirCommand().Run(tc.ctx, []string{"mkdir", "CON"})
	if err == nil || !strings.Contains(err.Error(), "reserved on Windows") {
		t.Errorf("Run() = %v, want a reserved-name error", err)
	}
	if _, statErr := os.Stat(filepath.Join(tc.session.Root(), "CON")); !os.IsNotExist(statErr) {
		t.Error("reserved name must not be created")
	}
}
