package std

import (
	"fmt"
	"strings"

	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL004{ruleMeta{
		code:        "L004",
		description: "Incorrect indentation unit",
	}})
}

// ruleL004 flags indentation built from the wrong unit: tabs in a
// space-indented file or spaces in a tab-indented one.
type ruleL004 struct{ ruleMeta }

func (r ruleL004) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() || seg.Tok.Kind != token.Whitespace || !indentAt(ctx) {
		return nil
	}
	raw := seg.Tok.Raw
	unit := ctx.Settings.IndentUnit
	var bad bool
	switch unit {
	case "space":
		bad = strings.ContainsRune(raw, '\t')
	case "tab":
		bad = strings.ContainsRune(raw, ' ')
	}
	if !bad {
		return nil
	}
	return []rules.Result{{
		Anchor:  seg,
		Message: fmt.Sprintf("Indentation not using %ss", unit),
	}}
}
