// Package query executes Bazel query expressions and exposes their results
// in a neutral, editor-friendly form.
//
// The [Client] interface decouples consumers from how queries actually run:
// [BazelClient] shells out to the bazel command line tool and decodes its
// proto output, while tests (and offline hosts) can substitute any other
// implementation returning canned [Result] values.
//
// Expressions are built with helpers like [KindRule] rather than assembled
// ad hoc, so package-scoped expressions stay recognizable to clients that
// resolve them without running bazel.
package query
