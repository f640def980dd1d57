package label

import (
	"path/filepath"
	"testing"
)

func TestForBuildFile(t *testing.T) {
	root := filepath.FromSlash("/home/user/ws")
	tests := []struct {
		name      string
		buildFile string
		want      string
	}{
		{"nested package", filepath.Join(root, "a", "b", "BUILD"), "//a/b"},
		{"single level", filepath.Join(root, "pkg", "BUILD"), "//pkg"},
		{"workspace root", filepath.Join(root, "BUILD"), "//"},
		{"BUILD.bazel variant", filepath.Join(root, "a", "BUILD.bazel"), "//a"},
		{"deeply nested", filepath.Join(root, "a", "b", "c", "d", "BUILD"), "//a/b/c/d"},
		// Outside the workspace the label is permissive rather than an error.
		{"outside workspace", filepath.FromSlash("/home/user/other/BUILD"), "//../other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForBuildFile(root, tt.buildFile)
			if got != tt.want {
				t.Errorf("ForBuildFile(%q, %q) = %q, want %q", root, tt.buildFile, got, tt.want)
			}
		})
	}
}

func TestForBuildFileIdempotent(t *testing.T) {
	root := filepath.FromSlash("/ws")
	file := filepath.Join(root, "a", "b", "BUILD")

	first := ForBuildFile(root, file)
	second := ForBuildFile(root, file)
	if first != second {
		t.Errorf("ForBuildFile not idempotent: %q then %q", first, second)
	}
}

func TestNewTarget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantPkg  string
		wantName string
		wantRepo string
	}{
		{"full label", "//a/b:t", false, "a/b", "t", ""},
		{"root package", "//:t", false, "", "t", ""},
		{"shorthand", "//a/b", false, "a/b", "b", ""},
		{"single component shorthand", "//lib", false, "lib", "lib", ""},
		{"external repo", "@rules_go//go:def", false, "go", "def", "rules_go"},
		{"empty", "", true, "", "", ""},
		{"relative", "a/b:t", true, "", "", ""},
		{"bare name", "lib", true, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt, err := NewTarget(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewTarget(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTarget(%q) unexpected error: %v", tt.input, err)
			}
			if tgt.String() != tt.input {
				t.Errorf("String() = %q, want %q", tgt.String(), tt.input)
			}
			if tgt.Package() != tt.wantPkg {
				t.Errorf("Package() = %q, want %q", tgt.Package(), tt.wantPkg)
			}
			if tgt.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", tgt.Name(), tt.wantName)
			}
			if tgt.Repository() != tt.wantRepo {
				t.Errorf("Repository() = %q, want %q", tgt.Repository(), tt.wantRepo)
			}
		})
	}
}

func TestMustTarget(t *testing.T) {
	// Should not panic for a valid label
	tgt := MustTarget("//a/b:t")
	if tgt.String() != "//a/b:t" {
		t.Errorf("MustTarget('//a/b:t').String() = %q", tgt.String())
	}

	// Should panic for an invalid label
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustTarget('') should have panicked")
		}
	}()
	MustTarget("")
}

func TestTargetIsEmpty(t *testing.T) {
	var empty Target
	if !empty.IsEmpty() {
		t.Error("zero-value Target should be empty")
	}

	tgt := MustTarget("//a:b")
	if tgt.IsEmpty() {
		t.Error("valid Target should not be empty")
	}
}
