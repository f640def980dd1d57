// Package workspace locates Bazel workspaces on disk.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound indicates no enclosing Bazel workspace exists for a path.
var ErrNotFound = errors.New("no bazel workspace found")

// markerFiles identify a workspace root. MODULE.bazel and REPO.bazel are the
// bzlmod-era markers; WORKSPACE and WORKSPACE.bazel cover legacy workspaces.
var markerFiles = []string{
	"MODULE.bazel",
	"REPO.bazel",
	"WORKSPACE.bazel",
	"WORKSPACE",
}

// FindRoot walks up from path (a file or directory) and returns the nearest
// enclosing directory containing a workspace marker file. Returns
// [ErrNotFound] if the walk reaches the filesystem root without a match.
func FindRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	dir := abs
	if info, statErr := os.Stat(abs); statErr != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		for _, marker := range markerFiles {
			info, statErr := os.Stat(filepath.Join(dir, marker))
			if statErr == nil && !info.IsDir() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		dir = parent
	}
}

// IsBuildFile reports whether path names a Bazel BUILD file.
func IsBuildFile(path string) bool {
	base := filepath.Base(path)
	return base == "BUILD" || base == "BUILD.bazel"
}
