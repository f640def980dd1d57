package bazellens

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/albertocavalcante/bazel-lens/label"
	"github.com/albertocavalcante/bazel-lens/query"
)

// Lens lists build and test actions for Bazel packages. Each call is an
// independent request/response cycle: a Lens holds no state between calls
// and is safe for concurrent use. Concurrent calls issue their own queries;
// identical in-flight queries are not deduplicated.
type Lens struct {
	client   query.Client
	findRoot func(path string) (string, error)
	notifier Notifier
	logger   *slog.Logger
}

// New creates a Lens. With no options it discovers workspaces on disk and
// queries through the bazel command line tool.
func New(opts ...Option) (*Lens, error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Lens{
		client:   c.client,
		findRoot: c.findRoot,
		notifier: c.notifier,
		logger:   c.log(),
	}, nil
}

// ActionsForBuildFile lists the actions for every rule declared in the
// package the given BUILD file belongs to.
//
// When no enclosing workspace exists for buildFilePath the result is an
// empty slice and a nil error: exactly one warning goes to the Notifier and
// the query client is never invoked. Query failures are returned to the
// caller unretried.
func (l *Lens) ActionsForBuildFile(ctx context.Context, buildFilePath string) ([]Action, error) {
	root, err := l.findRoot(buildFilePath)
	if err != nil {
		l.notifier.Warn(fmt.Sprintf("Bazel: no workspace found for %s", buildFilePath))
		l.logger.Warn("no workspace root", "file", buildFilePath, "error", err)
		return []Action{}, nil
	}
	return l.ActionsForPackage(ctx, root, buildFilePath)
}

// ActionsForPackage is ActionsForBuildFile for hosts that already know the
// workspace root, skipping discovery.
func (l *Lens) ActionsForPackage(ctx context.Context, workspaceRoot, buildFilePath string) ([]Action, error) {
	pkg := label.ForBuildFile(workspaceRoot, buildFilePath)
	expression := query.KindRule(pkg)
	l.logger.Debug("listing targets", "package", pkg, "expression", expression.String())

	result, err := l.client.Query(ctx, workspaceRoot, expression, nil)
	if err != nil {
		return nil, fmt.Errorf("list targets in %s: %w", pkg, err)
	}

	actions := make([]Action, 0, len(result.Rules))
	for _, rule := range result.Rules {
		action, err := actionForRule(rule)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name, err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// actionForRule maps one queried rule to its editor action, preserving the
// rule's position in the response order. Rule classes ending in "_test"
// become test actions; everything else is buildable only. Test actions keep
// the "Build" tooltip wording.
func actionForRule(rule query.Rule) (Action, error) {
	target, err := label.NewTarget(rule.Name)
	if err != nil {
		return Action{}, err
	}

	action := Action{
		Kind:    ActionBuild,
		Label:   target,
		Title:   "Build " + rule.Name,
		Tooltip: "Build " + rule.Name,
		Range:   rule.Range,
	}
	if rule.IsTest() {
		action.Kind = ActionTest
		action.Title = "Test " + rule.Name
	}
	return action, nil
}
