// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"sort"
	"strings"
	"testing"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newPwdCommand())

	cmd, ok := reg.Lookup("pwd")
	if !ok {
		t.Fatal("Lookup(pwd) should find the registered command")
	}
	if cmd.Name() != "pwd" {
		t.Errorf("Name() = %q, want %q", cmd.Name(), "pwd")
	}

	if _, ok := reg.Lookup("nope"); ok {
		t.Error("Lookup(nope) should not find anything")
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newPwdCommand())

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate name should panic")
		}
	}()
	reg.Register(newPwdCommand())
}

func TestRegistry_NamesSorted(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newPwdCommand())
	reg.Register(newCdCommand())
	reg.Register(newLsCommand())

	names := reg.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted order", names)
	}
	if len(names) != 3 {
		t.Errorf("Names() returned %d entries, want 3", len(names))
	}
}

func TestRegistry_RunUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	err := reg.Run(context.Background(), "frobnicate", []string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "command not found") {
		t.Errorf("Run(unknown) error = %v, want command not found", err)
	}
}

func TestDefaultRegistry_HasAllBuiltins(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"help", "?", "pwd", "ls", "cd", "mkdir", "rmdir", "rm", "cp", "cat", "exit", "quit"} {
		if _, ok := DefaultRegistry.Lookup(name); !ok {
			t.Errorf("DefaultRegistry is missing %q", name)
		}
	}
}
