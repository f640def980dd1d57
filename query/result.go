package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Result is an ordered snapshot of the rules returned by one query.
// It is not mutated after construction; the rule order is exactly the order
// the client reported.
type Result struct {
	Rules []Rule
}

// Rule describes one build rule returned by a query.
type Rule struct {
	// Name is the fully qualified target label, e.g. "//a/b:my_test".
	Name string

	// Class is the rule class as reported by the tool, e.g. "go_test".
	Class string

	// Range locates the rule's declaration in its BUILD file.
	Range Range
}

// IsTest reports whether the rule class follows the "_test" naming
// convention. This is a convention, not a structural property: rule classes
// without the suffix are treated as buildable only even when they are
// semantically testable.
func (r Rule) IsTest() bool {
	return strings.HasSuffix(r.Class, "_test")
}

// Position is a 1-based location inside a BUILD file.
type Position struct {
	File   string
	Line   int
	Column int
}

// Range spans the source text between two positions. A point range has
// Start == End.
type Range struct {
	Start Position
	End   Position
}

// ParsePosition parses a Bazel location string of the form
// "path/to/BUILD:12:8". The file part may itself contain colons (Windows
// drive letters), so the line and column are taken from the right.
func ParsePosition(location string) (Position, error) {
	ci := strings.LastIndexByte(location, ':')
	if ci < 0 {
		return Position{}, fmt.Errorf("invalid location %q: want file:line:column", location)
	}
	column, err := strconv.Atoi(location[ci+1:])
	if err != nil {
		return Position{}, fmt.Errorf("invalid column in location %q: %w", location, err)
	}

	li := strings.LastIndexByte(location[:ci], ':')
	if li < 0 {
		return Position{}, fmt.Errorf("invalid location %q: want file:line:column", location)
	}
	line, err := strconv.Atoi(location[li+1 : ci])
	if err != nil {
		return Position{}, fmt.Errorf("invalid line in location %q: %w", location, err)
	}

	return Position{File: location[:li], Line: line, Column: column}, nil
}
