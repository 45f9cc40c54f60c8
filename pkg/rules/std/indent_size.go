package std

import (
	"fmt"
	"strings"

	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL003{ruleMeta{
		code:        "L003",
		description: "Indentation is not a multiple of the indent size",
	}})
}

// ruleL003 flags indentation whose width, tabs expanded, is not a multiple
// of tab_space_size.
type ruleL003 struct{ ruleMeta }

func (r ruleL003) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() || seg.Tok.Kind != token.Whitespace || !indentAt(ctx) {
		return nil
	}
	size := ctx.Settings.TabSpaceSize
	if size <= 0 {
		return nil
	}
	expanded := strings.ReplaceAll(seg.Tok.Raw, "\t", strings.Repeat(" ", size))
	if len(expanded)%size == 0 {
		return nil
	}
	return []rules.Result{{
		Anchor:  seg,
		Message: fmt.Sprintf("Indentation is not a multiple of %d spaces", size),
	}}
}
