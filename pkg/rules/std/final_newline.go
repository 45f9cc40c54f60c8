package std

import (
	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL009{ruleMeta{
		code:        "L009",
		description: "Files must end with a trailing newline",
	}})
}

type ruleL009 struct{ ruleMeta }

func (r ruleL009) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if seg.Kind != parser.KindFile || !ctx.Root() {
		return nil
	}
	leaves := seg.Leaves()
	if len(leaves) == 0 {
		return nil
	}
	last := leaves[len(leaves)-1]
	if last.Tok.Kind == token.Newline {
		return nil
	}
	return []rules.Result{{Anchor: last}}
}
