// Package label computes and represents Bazel labels.
//
// Two concerns live here:
//
//   - [ForBuildFile]: derives the package label (e.g. "//path/to/pkg") that
//     contains a given BUILD file inside a workspace. Pure path arithmetic,
//     no I/O.
//   - [Target]: a parsed, fully qualified target label such as "//a/b:t" or
//     "@repo//a/b:t". Immutable once constructed; use [NewTarget] (or
//     [MustTarget] in tests) to create valid instances.
//
// Labels always use forward-slash package syntax, regardless of the host
// operating system's path separator.
package label

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bazelbuild/buildtools/labels"
)

// ForBuildFile returns the package label of the BUILD file at buildFilePath
// within workspaceRoot. A BUILD file directly at the workspace root yields
// "//".
//
// The computation is purely lexical: buildFilePath is not checked for
// existence, and a path outside workspaceRoot produces a label containing
// ".." segments rather than an error.
func ForBuildFile(workspaceRoot, buildFilePath string) string {
	rel, err := filepath.Rel(workspaceRoot, buildFilePath)
	if err != nil {
		// No relative form exists (e.g. different volumes on Windows);
		// fall back to the path as given.
		rel = buildFilePath
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		dir = ""
	}
	return "//" + filepath.ToSlash(dir)
}

// Target represents a fully qualified Bazel target label.
// The zero value is invalid; use NewTarget to construct one.
type Target struct {
	raw   string
	label labels.Label
}

// NewTarget parses a fully qualified target label like "//a/b:t" or
// "@repo//a/b:t". Labels without an explicit target name ("//a/b") take the
// last package component as the name, matching Bazel's shorthand.
func NewTarget(s string) (Target, error) {
	if s == "" {
		return Target{}, fmt.Errorf("target label cannot be empty")
	}
	if !strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "@") {
		return Target{}, fmt.Errorf("invalid target label %q: must start with // or @", s)
	}

	l := labels.Parse(s)
	if l.Target == "" {
		// Shorthand form: //a/b means //a/b:b.
		if i := strings.LastIndexByte(l.Package, '/'); i >= 0 {
			l.Target = l.Package[i+1:]
		} else {
			l.Target = l.Package
		}
	}
	if l.Target == "" {
		return Target{}, fmt.Errorf("invalid target label %q: missing target name", s)
	}
	return Target{raw: s, label: l}, nil
}

// MustTarget creates a Target or panics. Use only for constants/tests.
func MustTarget(s string) Target {
	t, err := NewTarget(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the label exactly as it was given to NewTarget.
func (t Target) String() string {
	return t.raw
}

// Package returns the package path component, e.g. "a/b" for "//a/b:t".
func (t Target) Package() string {
	return t.label.Package
}

// Name returns the target name component, e.g. "t" for "//a/b:t".
func (t Target) Name() string {
	return t.label.Target
}

// Repository returns the repository component, empty for the main repo.
func (t Target) Repository() string {
	return t.label.Repository
}

// IsEmpty returns true if this is a zero-value Target.
func (t Target) IsEmpty() bool {
	return t.raw == ""
}
