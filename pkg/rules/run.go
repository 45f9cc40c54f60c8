package rules

import (
	"log/slog"

	"github.com/nsxbet/sqlint/pkg/dialect"
	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/token"
)

// Run evaluates the selected rules over the tree and returns their
// violations, unsorted. Rules are independent by contract and isolated in
// practice: a rule that panics contributes no violations and the remaining
// rules still run.
func Run(root *parser.Segment, d *dialect.Dialect, settings Settings, selected []Rule) []Violation {
	var out []Violation
	for _, r := range selected {
		out = append(out, runOne(r, root, d, settings)...)
	}
	return out
}

func runOne(r Rule, root *parser.Segment, d *dialect.Dialect, settings Settings) (out []Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("rule eval panic recovered", "rule", r.Code(), "error", rec)
			out = nil
		}
	}()

	ctx := &Context{Dialect: d, Settings: settings, Memory: map[string]any{}}
	var rawStack []*parser.Segment
	crawl(r, ctx, root, nil, nil, nil, &rawStack, &out)
	return out
}

// crawl walks the tree depth-first in document order, evaluating the rule
// at every segment with its parent stack, siblings and the leaves seen so
// far.
func crawl(r Rule, ctx *Context, seg *parser.Segment, parents, pre, post []*parser.Segment, rawStack *[]*parser.Segment, out *[]Violation) {
	ctx.Segment = seg
	ctx.Parents = parents
	ctx.SiblingsPre = pre
	ctx.SiblingsPost = post
	ctx.RawStack = *rawStack
	for _, res := range r.Eval(ctx) {
		*out = append(*out, toViolation(r, res))
	}

	if seg.IsLeaf() {
		*rawStack = append(*rawStack, seg)
		return
	}
	childParents := make([]*parser.Segment, len(parents)+1)
	copy(childParents, parents)
	childParents[len(parents)] = seg
	for i, child := range seg.Children {
		crawl(r, ctx, child, childParents, seg.Children[:i], seg.Children[i+1:], rawStack, out)
	}
}

func toViolation(r Rule, res Result) Violation {
	msg := res.Message
	if msg == "" {
		msg = r.Description()
	}
	var pos token.Position
	switch {
	case res.Pos != nil:
		pos = *res.Pos
	case res.Anchor != nil:
		pos = res.Anchor.Pos()
	}
	return Violation{Code: r.Code(), Message: msg, Severity: r.Severity(), Pos: pos}
}
