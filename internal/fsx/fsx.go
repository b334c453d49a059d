package fsx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// ExpandHome expands a leading "~" in path to the current user's home
// directory. Paths without the shorthand are returned unchanged.
// A bare "~" expands to the home directory itself.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// Move relocates a file via an atomic rename where the filesystem allows
// it. When source and destination sit on different filesystems the rename
// fails with EXDEV; Move then falls back to copy followed by removing the
// source. Any other rename failure is returned as-is.
func Move(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("cross-device copy failed: %w", err)
		}
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("failed to remove source after copy: %w", err)
		}
		return nil
	}

	return renameErr
}

// copyFile copies src to dst, preserving the source file mode.
// dst is created exclusively so a concurrent writer cannot be clobbered.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Paths come from directory enumeration
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()) //nolint:gosec // See above
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst) //nolint:errcheck // Best effort cleanup of the partial copy
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
