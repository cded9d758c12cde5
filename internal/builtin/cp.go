// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// cpCommand copies a file or directory tree inside the jail.
type cpCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCpCommand())
}

func newCpCommand() *cpCommand {
	return &cpCommand{
		baseCommand: baseCommand{
			name:     "cp",
			synopsis: "Copy a file or directory.",
			usage: "Usage: `cp <source> <destination>`\n\n" +
				"Directories are copied recursively. Copying into an existing " +
				"directory places the source inside it.",
		},
	}
}

// Run executes the cp command.
func (c *cpCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	if len(args) != 3 {
		return fmt.Errorf("usage: cp <source> <destination>")
	}
	srcName, dstName := args[1], args[2]

	// Both endpoints go through the jail: copying out of the root is an
	// escape just like reading from outside it.
	src, err := hc.Session.Resolve(srcName)
	if err != nil {
		return err
	}
	dst, err := hc.Session.Resolve(dstName)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("source not found: %s", srcName)
		}
		return err
	}

	if srcInfo.IsDir() {
		if dstInfo, err := os.Stat(dst); err == nil && dstInfo.IsDir() {
			dst = filepath.Join(dst, filepath.Base(src))
		}
		// Walking src while creating dst inside it would recurse forever.
		if descendsFrom(src, dst) {
			return fmt.Errorf("cannot copy a directory into itself: %s", srcName)
		}
		if err := copyTree(src, dst); err != nil {
			return fmt.Errorf("copying directory %s: %w", srcName, err)
		}
		hc.Successf("Directory copied (recursively) from %s to %s", srcName, dstName)
		return nil
	}

	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}
	// Opening the source as its own destination would truncate it.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%s and %s are the same file", srcName, dstName)
	}
	if err := copyFile(src, dst, srcInfo); err != nil {
		return fmt.Errorf("copying %s: %w", srcName, err)
	}
	hc.Successf("File copied from %s to %s", srcName, dstName)
	return nil
}

// descendsFrom reports whether path is dir itself or lives under it.
func descendsFrom(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// copyFile copies content, permission bits and the modification time,
// mirroring a cp -p of a single file.
func copyFile(src, dst string, srcInfo fs.FileInfo) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}

// copyTree recursively copies the directory rooted at src to dst.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info)
	})
}
