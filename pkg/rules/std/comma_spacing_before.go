package std

import (
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL005{ruleMeta{
		code:        "L005",
		description: "Commas should not have whitespace directly before them",
	}})
}

// ruleL005 flags whitespace immediately before a comma.
type ruleL005 struct{ ruleMeta }

func (r ruleL005) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() || seg.Kind != "comma" {
		return nil
	}
	if prev := ctx.PrevRaw(); prev != nil && prev.Tok.Kind == token.Whitespace {
		return []rules.Result{{Anchor: prev}}
	}
	return nil
}
