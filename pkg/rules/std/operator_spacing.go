package std

import (
	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL006{ruleMeta{
		code:        "L006",
		description: "Operators should be surrounded by a single space unless at the start or end of a line",
	}})
}

// ruleL006 checks spacing around binary operator symbols inside
// expressions. Tight-binding operators such as "::" and unary signs are
// exempt.
type ruleL006 struct{ ruleMeta }

var tightOperators = map[string]bool{
	"casting_operator": true,
	"dot":              true,
	"comma":            true,
	"semicolon":        true,
	"bracket_open":     true,
	"bracket_close":    true,
	"sq_bracket_open":  true,
	"sq_bracket_close": true,
}

func (r ruleL006) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() || seg.Tok.Kind != token.Operator || tightOperators[seg.Kind] {
		return nil
	}
	parent := ctx.Parent()
	if parent == nil || parent.Kind != "expression" {
		return nil
	}
	if isUnaryPosition(seg, ctx.SiblingsPre) {
		return nil
	}

	if prev := ctx.PrevRaw(); prev != nil && !okSpacing(prev) {
		return []rules.Result{{Anchor: seg}}
	}
	if next := nextLeaf(ctx.SiblingsPost); next != nil && !okSpacing(next) {
		return []rules.Result{{Anchor: seg}}
	}
	return nil
}

// okSpacing accepts exactly one space, or a line boundary.
func okSpacing(leaf *parser.Segment) bool {
	switch leaf.Tok.Kind {
	case token.Newline:
		return true
	case token.Whitespace:
		return leaf.Tok.Raw == " "
	}
	return false
}

// isUnaryPosition reports whether a plus, minus or tilde acts as a sign
// rather than a binary operator: nothing before it in the expression, or
// another operator directly before it.
func isUnaryPosition(seg *parser.Segment, pre []*parser.Segment) bool {
	switch seg.Kind {
	case "plus", "minus", "tilde":
	default:
		return false
	}
	for i := len(pre) - 1; i >= 0; i-- {
		if !pre[i].IsCode() {
			continue
		}
		return pre[i].IsLeaf() && pre[i].Tok.Kind == token.Operator
	}
	return true
}

func nextLeaf(post []*parser.Segment) *parser.Segment {
	if len(post) == 0 {
		return nil
	}
	leaves := post[0].Leaves()
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}
