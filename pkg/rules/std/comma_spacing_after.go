package std

import (
	"github.com/nsxbet/sqlint/pkg/rules"
)

func init() {
	rules.Register(ruleL008{ruleMeta{
		code:        "L008",
		description: "Commas should be followed by a single whitespace unless followed by a comment",
	}})
}

type ruleL008 struct{ ruleMeta }

func (r ruleL008) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() || seg.Kind != "comma" {
		return nil
	}
	next := nextLeaf(ctx.SiblingsPost)
	if next == nil || next.IsWhitespace() || next.IsComment() {
		return nil
	}
	return []rules.Result{{Anchor: next}}
}
