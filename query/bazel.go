package query

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	blaze_query "github.com/bazelbuild/buildtools/build_proto"
	"google.golang.org/protobuf/proto"
)

// BazelClient runs queries through the bazel command line tool with
// --output=proto. It imposes no timeout of its own; cancellation comes from
// the context. The zero value is not usable, call NewBazelClient.
type BazelClient struct {
	binary      string
	defaultArgs []string
}

// BazelOption configures a BazelClient.
type BazelOption func(*BazelClient) error

// WithBinary sets the bazel executable to invoke. Defaults to "bazel" as
// resolved through PATH; a bazelisk path works equally well here.
func WithBinary(path string) BazelOption {
	return func(c *BazelClient) error {
		if path == "" {
			return fmt.Errorf("bazel binary path cannot be empty")
		}
		c.binary = path
		return nil
	}
}

// WithDefaultArgs appends arguments passed to every query invocation,
// before any per-call extra arguments.
func WithDefaultArgs(args ...string) BazelOption {
	return func(c *BazelClient) error {
		c.defaultArgs = append(c.defaultArgs, args...)
		return nil
	}
}

// NewBazelClient creates a client that invokes the bazel binary.
func NewBazelClient(opts ...BazelOption) (*BazelClient, error) {
	c := &BazelClient{binary: "bazel"}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Query implements Client by running
// "bazel query <expression> --output=proto" inside workspaceRoot.
//
// Failures are not retried. On a non-zero exit the returned error carries
// bazel's stderr; on success the proto stream is decoded and every RULE
// target becomes one Rule, in bazel's output order.
func (c *BazelClient) Query(ctx context.Context, workspaceRoot string, expression Expression, extraArgs []string) (*Result, error) {
	args := []string{"query", expression.String(), "--output=proto"}
	args = append(args, c.defaultArgs...)
	args = append(args, extraArgs...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = workspaceRoot
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("bazel query %s: %w", expression, err)
		}
		return nil, fmt.Errorf("bazel query %s: %w: %s", expression, err, msg)
	}

	var qr blaze_query.QueryResult
	if err := proto.Unmarshal(stdout.Bytes(), &qr); err != nil {
		return nil, fmt.Errorf("decode query result for %s: %w", expression, err)
	}
	return fromProto(&qr)
}

// fromProto converts a blaze_query result into the neutral Result form.
// Non-rule targets (source files, package groups) are skipped.
func fromProto(qr *blaze_query.QueryResult) (*Result, error) {
	res := &Result{}
	for _, target := range qr.GetTarget() {
		if target.GetType() != blaze_query.Target_RULE {
			continue
		}
		rule := target.GetRule()
		pos, err := ParsePosition(rule.GetLocation())
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.GetName(), err)
		}
		res.Rules = append(res.Rules, Rule{
			Name:  rule.GetName(),
			Class: rule.GetRuleClass(),
			Range: Range{Start: pos, End: pos},
		})
	}
	return res, nil
}

var _ Client = (*BazelClient)(nil)
