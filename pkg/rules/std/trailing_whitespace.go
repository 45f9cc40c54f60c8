package std

import (
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL001{ruleMeta{
		code:        "L001",
		description: "Unnecessary trailing whitespace",
	}})
}

// ruleL001 flags whitespace sitting between the last code of a line and the
// line break, and whitespace dangling at the end of the file.
type ruleL001 struct{ ruleMeta }

func (r ruleL001) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if seg.IsLeaf() && seg.Tok.Kind == token.Newline {
		if prev := ctx.PrevRaw(); prev != nil && prev.Tok.Kind == token.Whitespace {
			return []rules.Result{{Anchor: prev}}
		}
		return nil
	}
	if ctx.Root() {
		leaves := seg.Leaves()
		if n := len(leaves); n > 0 && leaves[n-1].Tok.Kind == token.Whitespace {
			return []rules.Result{{Anchor: leaves[n-1]}}
		}
	}
	return nil
}
