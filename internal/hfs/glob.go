package hfs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidateNamePattern checks that pattern is a doublestar pattern matching base names only.
func ValidateNamePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}

	if strings.ContainsRune(pattern, '/') {
		return fmt.Errorf("pattern %q must not contain a path separator", pattern)
	}

	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	return nil
}

// GlobDir returns the names of the regular files directly inside dir whose name
// matches pattern, sorted lexicographically. Subdirectories are not traversed.
func GlobDir(ctx context.Context, fs FS, dir, pattern string) ([]string, error) {
	err := ValidateNamePattern(pattern)
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !isRegular(fs.At(dir), entry) {
			continue
		}

		match, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, err
		}

		if match {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	return names, nil
}

// isRegular reports whether entry is a regular file, following symlinks.
func isRegular(fs FS, entry DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}

	if entry.Type()&iofs.ModeSymlink == 0 {
		return false
	}

	info, err := fs.Stat(entry.Name())
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
