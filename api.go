// Package bazellens turns Bazel build targets into clickable editor actions.
//
// Given the path of a BUILD file, the library resolves the Bazel package it
// belongs to, asks a query client for every rule declared directly in that
// package, and maps each rule to an [Action]: a typed descriptor an editor
// can render inline (a code-lens) and dispatch as a build or test command.
//
// # Quick Start
//
//	actions, err := bazellens.ActionsForBuildFile(ctx, "/ws/a/b/BUILD")
//	if err != nil {
//	    // the query failed; nothing to render
//	}
//	for _, a := range actions {
//	    host.RenderLens(a.Range, a.Title, a.Invocation(root))
//	}
//
// By default targets are enumerated with the bazel command line tool
// ([query.BazelClient]). Editors that want instant results without a bazel
// server can inject the static BUILD-file lister instead:
//
//	lens, err := bazellens.New(
//	    bazellens.WithQueryClient(buildfile.NewLister()),
//	    bazellens.WithNotifier(myStatusBar),
//	)
//
// # Test Actions
//
// A rule whose class ends in "_test" (go_test, cc_test, ...) produces a
// test action titled "Test <target>". Its tooltip reads "Build <target>";
// hosts that want different hover text can rewrite it before rendering.
// Rule classes without the suffix are always treated as buildable only,
// even when they are semantically testable (test_suite).
//
// # Concurrency
//
// All public types are stateless per call and safe for concurrent use.
// The only suspension point is the query itself; cancellation is the
// context's business and no timeout is imposed here.
package bazellens

import (
	"context"
)

// ActionsForBuildFile lists build and test actions for the package
// containing the given BUILD file, using default settings. It is shorthand
// for New(opts...) followed by [Lens.ActionsForBuildFile].
func ActionsForBuildFile(ctx context.Context, buildFilePath string, opts ...Option) ([]Action, error) {
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return l.ActionsForBuildFile(ctx, buildFilePath)
}
