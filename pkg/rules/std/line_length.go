package std

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL012{ruleMeta{
		code:        "L012",
		description: "Line is too long",
	}})
}

// ruleL012 measures reconstructed source lines against MaxLineLength.
// Lengths are counted in runes so multibyte characters are not penalised.
type ruleL012 struct{ ruleMeta }

func (r ruleL012) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if seg.Kind != parser.KindFile || !ctx.Root() {
		return nil
	}
	max := ctx.Settings.MaxLineLength
	if max <= 0 {
		return nil
	}

	var out []rules.Result
	lineStart := 0
	for i, line := range strings.Split(seg.Raw(), "\n") {
		content := strings.TrimSuffix(line, "\r")
		if n := utf8.RuneCountInString(content); n > max {
			out = append(out, rules.Result{
				Pos:     overflowPosition(content, lineStart, i+1, max),
				Message: fmt.Sprintf("Line is too long (%d > %d)", n, max),
			})
		}
		lineStart += len(line) + 1
	}
	return out
}

// overflowPosition points at the first rune past the limit.
func overflowPosition(content string, lineStart, line, max int) *token.Position {
	count := 0
	for idx := range content {
		if count == max {
			return &token.Position{Line: line, Col: max + 1, Offset: lineStart + idx}
		}
		count++
	}
	return &token.Position{Line: line, Col: max + 1, Offset: lineStart + len(content)}
}
