package query

import (
	"context"
	"fmt"
)

// Client executes Bazel query expressions against a workspace.
//
// Implementations must preserve the target order reported by the underlying
// tool and must not retry failed queries; a failure surfaces as a non-nil
// error for exactly the request that caused it.
type Client interface {
	// Query runs expression in the workspace rooted at workspaceRoot.
	// extraArgs are passed through to the underlying tool verbatim and may
	// be nil.
	Query(ctx context.Context, workspaceRoot string, expression Expression, extraArgs []string) (*Result, error)
}

// Expression is a Bazel query expression. Use [KindRule] or [Raw] to
// construct one; the zero value is the empty expression.
type Expression struct {
	text string

	// pkg is the package label an expression is scoped to, when it was
	// built by KindRule. Empty for raw expressions.
	pkg string
}

// KindRule returns the expression enumerating every rule declared directly
// in the package identified by pkgLabel (e.g. "//a/b"). The pattern is
// non-recursive: ":all" matches direct children only, never subpackages.
func KindRule(pkgLabel string) Expression {
	return Expression{
		text: fmt.Sprintf("kind(rule, %s:all)", pkgLabel),
		pkg:  pkgLabel,
	}
}

// Raw wraps an arbitrary query expression string.
func Raw(text string) Expression {
	return Expression{text: text}
}

// String returns the expression text as passed to the query tool.
func (e Expression) String() string {
	return e.text
}

// Package returns the package label the expression is scoped to, or the
// empty string when the expression is not package-scoped (raw expressions,
// zero value).
func (e Expression) Package() string {
	return e.pkg
}
