package std

import (
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL007{ruleMeta{
		code:        "L007",
		description: "Unnecessary whitespace between tokens",
	}})
}

// ruleL007 flags whitespace runs between two tokens on the same line that
// are wider than a single space. Indentation is left to L002..L004 and
// trailing whitespace to L001.
type ruleL007 struct{ ruleMeta }

func (r ruleL007) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() || seg.Tok.Kind != token.Whitespace {
		return nil
	}
	prev := ctx.PrevRaw()
	if prev == nil || prev.Tok.Kind == token.Newline {
		return nil
	}
	next := nextLeaf(ctx.SiblingsPost)
	if next == nil || next.Tok.Kind == token.Newline {
		return nil
	}
	if seg.Tok.Raw == " " {
		return nil
	}
	return []rules.Result{{Anchor: seg, Message: "Multiple spaces found between tokens"}}
}
