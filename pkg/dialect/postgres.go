package dialect

import "github.com/nsxbet/sqlint/pkg/token"

// postgres derives from ansi. The notable deltas: "#" is not a comment
// character, block comments nest, dollar quoting exists, ILIKE exists, and
// LIMIT and OFFSET are fully reserved.
var postgres = newPostgres()

func newPostgres() *Dialect {
	d := ansi.Copy("postgres")

	d.RemoveLexRule("hash_comment")
	d.PatchLexRule(
		LexRule{Name: "block_comment", Kind: token.Comment, Type: MatchBlockComment, Literal: "/*", End: "*/", Nested: true},
	)
	d.InsertLexRuleBefore("numeric_literal",
		LexRule{Name: "dollar_quote", Kind: token.Literal, Type: MatchQuoted, Literal: "$$", End: "$$"},
	)

	d.RemoveUnreserved("LIMIT", "OFFSET")
	d.AddReserved("LIMIT", "OFFSET", "RETURNING")
	d.AddUnreserved("ILIKE")

	binop, _ := d.Production("binary_operator")
	d.ReplaceProduction("binary_operator", oneOf(
		binop,
		kw("ilike"),
		seq(kw("not"), kw("ilike")),
	))

	return d
}
