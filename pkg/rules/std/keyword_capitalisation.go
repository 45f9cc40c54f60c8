package std

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

func init() {
	rules.Register(ruleL010{ruleMeta{
		code:        "L010",
		description: "Inconsistent capitalisation of keywords",
	}})
}

// ruleL010 enforces the configured keyword capitalisation policy. Under
// the default "consistent" policy the first keyword in the file sets the
// style and every later keyword must follow it.
type ruleL010 struct{ ruleMeta }

func (r ruleL010) Eval(ctx *rules.Context) []rules.Result {
	seg := ctx.Segment
	if !seg.IsLeaf() {
		return nil
	}
	if seg.Kind != parser.KindKeyword && seg.Tok.Kind != token.Keyword {
		return nil
	}
	class := capitalisationOf(seg.Tok.Raw)

	switch policy := ctx.Settings.CapitalisationPolicy; policy {
	case "upper", "lower", "capitalise":
		if class != policy {
			return []rules.Result{{Anchor: seg, Message: fmt.Sprintf("Keyword capitalisation should be %s", policy)}}
		}
		return nil
	}

	if class == "mixed" {
		return []rules.Result{{Anchor: seg}}
	}
	seen, ok := ctx.Memory["policy"].(string)
	if !ok {
		ctx.Memory["policy"] = class
		return nil
	}
	if class != seen {
		return []rules.Result{{Anchor: seg}}
	}
	return nil
}

func capitalisationOf(raw string) string {
	switch {
	case raw == strings.ToUpper(raw):
		return "upper"
	case raw == strings.ToLower(raw):
		return "lower"
	}
	runes := []rune(raw)
	rest := string(runes[1:])
	if unicode.IsUpper(runes[0]) && rest == strings.ToLower(rest) {
		return "capitalise"
	}
	return "mixed"
}
