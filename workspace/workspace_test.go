package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindRoot(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{"module bazel", "MODULE.bazel"},
		{"repo bazel", "REPO.bazel"},
		{"workspace bazel", "WORKSPACE.bazel"},
		{"legacy workspace", "WORKSPACE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, tt.marker))
			buildFile := filepath.Join(root, "a", "b", "BUILD")
			writeFile(t, buildFile)

			got, err := FindRoot(buildFile)
			if err != nil {
				t.Fatalf("FindRoot(%q) unexpected error: %v", buildFile, err)
			}
			if got != root {
				t.Errorf("FindRoot(%q) = %q, want %q", buildFile, got, root)
			}
		})
	}
}

func TestFindRootFromDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "MODULE.bazel"))
	pkg := filepath.Join(root, "pkg")
	if err := os.MkdirAll(pkg, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(pkg)
	if err != nil {
		t.Fatalf("FindRoot(%q) unexpected error: %v", pkg, err)
	}
	if got != root {
		t.Errorf("FindRoot(%q) = %q, want %q", pkg, got, root)
	}
}

func TestFindRootNearestWins(t *testing.T) {
	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, "WORKSPACE"))
	inner := filepath.Join(outer, "nested")
	writeFile(t, filepath.Join(inner, "MODULE.bazel"))
	buildFile := filepath.Join(inner, "pkg", "BUILD")
	writeFile(t, buildFile)

	got, err := FindRoot(buildFile)
	if err != nil {
		t.Fatalf("FindRoot(%q) unexpected error: %v", buildFile, err)
	}
	if got != inner {
		t.Errorf("FindRoot(%q) = %q, want nearest root %q", buildFile, got, inner)
	}
}

func TestFindRootNotFound(t *testing.T) {
	dir := t.TempDir()
	buildFile := filepath.Join(dir, "pkg", "BUILD")
	writeFile(t, buildFile)

	_, err := FindRoot(buildFile)
	if err == nil {
		t.Skip("an enclosing workspace marker exists above the temp dir")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindRoot error = %v, want ErrNotFound", err)
	}
}

func TestFindRootIgnoresMarkerDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory named like a marker must not count.
	if err := os.MkdirAll(filepath.Join(root, "pkg", "MODULE.bazel"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "MODULE.bazel"))

	got, err := FindRoot(filepath.Join(root, "pkg"))
	if err != nil {
		t.Fatalf("FindRoot unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("FindRoot = %q, want %q", got, root)
	}
}

func TestIsBuildFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"BUILD", true},
		{"BUILD.bazel", true},
		{"/ws/a/b/BUILD", true},
		{"/ws/a/b/BUILD.bazel", true},
		{"build", false},
		{"BUILD.txt", false},
		{"/ws/a/b/main.go", false},
		{"MODULE.bazel", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsBuildFile(tt.path); got != tt.want {
				t.Errorf("IsBuildFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
