package dialect

import "github.com/nsxbet/sqlint/pkg/token"

// bigquery derives from ansi. It adds triple-quoted strings, square-bracket
// array literals and the EXCEPT modifier on select wildcards.
var bigquery = newBigQuery()

func newBigQuery() *Dialect {
	d := ansi.Copy("bigquery")

	d.InsertLexRuleBefore("single_quote",
		LexRule{Name: "triple_quote", Kind: token.Literal, Type: MatchQuoted, Literal: "'''", End: "'''"},
		LexRule{Name: "triple_double_quote", Kind: token.Literal, Type: MatchQuoted, Literal: `"""`, End: `"""`},
	)
	d.InsertLexRuleBefore("colon",
		LexRule{Name: "sq_bracket_open", Kind: token.Operator, Type: MatchLiteral, Literal: "["},
		LexRule{Name: "sq_bracket_close", Kind: token.Operator, Type: MatchLiteral, Literal: "]"},
	)
	d.AddBracketPair("sq_bracket_open", "sq_bracket_close")

	d.AddUnreserved("STRUCT", "ARRAY", "SAFE_CAST")

	d.ReplaceProduction("wildcard_expression", node("wildcard_expression", seq(
		oneOf(
			seq(ref("object_reference"), sym("dot"), sym("star")),
			sym("star"),
		),
		opt(seq(kw("except"), brk(list(ref("identifier"))))),
	)))

	return d
}
