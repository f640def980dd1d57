// Package buildutil provides helpers for reading rule attributes from
// buildtools AST nodes when enumerating targets in BUILD files.
package buildutil

import (
	"github.com/bazelbuild/buildtools/build"
)

// String extracts a string attribute from a rule call by name.
// Returns empty string if the attribute is not present or not a string
// literal; computed values (e.g. "name = n") look the same as absent
// attributes here.
func String(call *build.CallExpr, name string) string {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		if str, ok := assign.RHS.(*build.StringExpr); ok {
			return str.Value
		}
	}
	return ""
}

// RuleName returns the "name" attribute of a rule call, or empty string if
// the call does not declare one.
func RuleName(call *build.CallExpr) string {
	return String(call, "name")
}

// RuleClass returns the function name of a rule call, which for BUILD-file
// rule invocations is the rule class (e.g. "go_test"). Returns empty string
// for non-identifier calls such as method calls.
func RuleClass(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}
