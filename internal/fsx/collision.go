package fsx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxUniqueAttempts bounds the collision search so a pathological
// directory cannot spin the loop forever.
const maxUniqueAttempts = 10000

// UniquePath returns a destination path that no file currently occupies.
// If nothing exists at path it is returned unchanged. Otherwise a counter
// is inserted between the base name and the final extension ("report.pdf"
// becomes "report_1.pdf", then "report_2.pdf", ...), and the first free
// slot wins. Only the final extension is treated as the suffix, so
// "archive.tar.gz" yields "archive.tar_1.gz".
//
// The check-then-use gap is inherently racy against other processes
// writing the same directory; callers treat a failed move as an ordinary
// per-file error rather than relying on this result staying free.
func UniquePath(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		return "", err
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	for n := 1; n <= maxUniqueAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, ext))
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return candidate, nil
			}
			return "", err
		}
	}

	return "", fmt.Errorf("exhausted unique filename slots for %s", path)
}
