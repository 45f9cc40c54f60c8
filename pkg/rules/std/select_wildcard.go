package std

import (
	"github.com/nsxbet/sqlint/pkg/rules"
)

func init() {
	rules.Register(ruleL011{ruleMeta{
		code:        "L011",
		description: "Avoid using wildcards in select targets, name the columns instead",
	}})
}

type ruleL011 struct{ ruleMeta }

func (r ruleL011) Eval(ctx *rules.Context) []rules.Result {
	if ctx.Segment.Kind != "wildcard_expression" {
		return nil
	}
	return []rules.Result{{Anchor: ctx.Segment}}
}
