package std

import (
	"strings"

	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL002{ruleMeta{
		code:        "L002",
		description: "Mixed tabs and spaces in indentation",
	}})
}

// ruleL002 flags indentation that mixes tabs and spaces in one run.
type ruleL002 struct{ ruleMeta }

func (r ruleL002) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() || seg.Tok.Kind != token.Whitespace || !indentAt(ctx) {
		return nil
	}
	raw := seg.Tok.Raw
	if strings.ContainsRune(raw, ' ') && strings.ContainsRune(raw, '\t') {
		return []rules.Result{{Anchor: seg}}
	}
	return nil
}
