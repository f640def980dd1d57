// Package buildfile enumerates build targets by reading BUILD files
// directly, without spawning bazel.
//
// [Lister] implements the query.Client interface for package-scoped
// expressions only. It reports what is literally written in the BUILD file:
// macros appear under their macro name and are not expanded, so results can
// differ from what bazel would compute. In exchange, listing is instant and
// works without a running bazel server, which suits editors refreshing
// actions on every keystroke.
package buildfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bazelbuild/buildtools/build"

	"github.com/albertocavalcante/bazel-lens/internal/buildutil"
	"github.com/albertocavalcante/bazel-lens/query"
)

// buildFileNames in bazel's lookup order.
var buildFileNames = []string{"BUILD.bazel", "BUILD"}

// Lister lists rules by parsing BUILD files. The zero value is ready to use
// and safe for concurrent use; Lister holds no state between calls.
type Lister struct{}

// NewLister creates a static BUILD-file lister.
func NewLister() *Lister {
	return &Lister{}
}

// Query implements query.Client for package-scoped expressions: the
// expression must have been built with query.KindRule. Rules are returned
// in declaration order with ranges spanning the full rule call.
func (l *Lister) Query(ctx context.Context, workspaceRoot string, expression query.Expression, extraArgs []string) (*query.Result, error) {
	pkg := expression.Package()
	if pkg == "" {
		return nil, fmt.Errorf("buildfile: expression %q is not scoped to a single package", expression.String())
	}

	dir := filepath.Join(workspaceRoot, filepath.FromSlash(strings.TrimPrefix(pkg, "//")))
	path, data, err := readBuildFile(dir)
	if err != nil {
		return nil, fmt.Errorf("buildfile: package %s: %w", pkg, err)
	}

	f, err := build.ParseBuild(path, data)
	if err != nil {
		return nil, fmt.Errorf("buildfile: parse %s: %w", path, err)
	}

	res := &query.Result{}
	for _, stmt := range f.Stmt {
		call, ok := stmt.(*build.CallExpr)
		if !ok {
			continue
		}
		class := buildutil.RuleClass(call)
		name := buildutil.RuleName(call)
		if class == "" || name == "" {
			continue
		}
		start, end := call.Span()
		res.Rules = append(res.Rules, query.Rule{
			Name:  pkg + ":" + name,
			Class: class,
			Range: query.Range{
				Start: query.Position{File: path, Line: start.Line, Column: start.LineRune},
				End:   query.Position{File: path, Line: end.Line, Column: end.LineRune},
			},
		})
	}
	return res, nil
}

// readBuildFile reads the package's BUILD file, preferring BUILD.bazel.
func readBuildFile(dir string) (string, []byte, error) {
	var firstErr error
	for _, name := range buildFileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return path, data, nil
		}
		if firstErr == nil && !os.IsNotExist(err) {
			firstErr = err
		}
	}
	if firstErr != nil {
		return "", nil, firstErr
	}
	return "", nil, fmt.Errorf("no BUILD file in %s", dir)
}

var _ query.Client = (*Lister)(nil)
