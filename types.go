package bazellens

import (
	"github.com/albertocavalcante/bazel-lens/label"
	"github.com/albertocavalcante/bazel-lens/query"
)

// ActionKind distinguishes the two commands an action can trigger.
type ActionKind int

const (
	// ActionBuild builds the target.
	ActionBuild ActionKind = iota
	// ActionTest runs the target as a test.
	ActionTest
)

// String returns "build" or "test".
func (k ActionKind) String() string {
	if k == ActionTest {
		return "test"
	}
	return "build"
}

// Host command identifiers. Editors register handlers under these ids and
// receive an [Invocation] when the user clicks an action.
const (
	CommandBuildTarget = "bazel-lens.buildTarget"
	CommandTestTarget  = "bazel-lens.testTarget"
)

// Action is one clickable editor action for a build or test target.
// Actions are created fresh per query response and carry no state beyond
// their fields; hosts render them inline at Range and dispatch the result
// of [Action.Invocation] on click.
type Action struct {
	// Kind tags the action as build or test. Host rendering should switch
	// on this tag rather than inspecting rule class names.
	Kind ActionKind

	// Label is the fully qualified target the action operates on.
	Label label.Target

	// Title is the text displayed inline, e.g. "Test //a/b:t".
	Title string

	// Tooltip is the hover text. For test actions it reads
	// "Build <target>"; see the package documentation.
	Tooltip string

	// Range locates the rule declaration the action is anchored to.
	Range query.Range
}

// Invocation is the payload a host passes to its command handler when an
// action is clicked.
type Invocation struct {
	// Command is CommandBuildTarget or CommandTestTarget.
	Command string

	// WorkspaceRoot is the workspace the command runs in.
	WorkspaceRoot string

	// Targets holds the single target label to build or test.
	Targets []string
}

// Invocation returns the command invocation for this action within the
// given workspace.
func (a Action) Invocation(workspaceRoot string) Invocation {
	command := CommandBuildTarget
	if a.Kind == ActionTest {
		command = CommandTestTarget
	}
	return Invocation{
		Command:       command,
		WorkspaceRoot: workspaceRoot,
		Targets:       []string{a.Label.String()},
	}
}
