package dialect

import "github.com/nsxbet/sqlint/pkg/token"

// mysql derives from ansi. Double-quoted text is a string rather than an
// identifier, backslash escapes work inside strings, and LIMIT takes the
// two-argument comma form.
var mysql = newMySQL()

func newMySQL() *Dialect {
	d := ansi.Copy("mysql")

	d.PatchLexRule(LexRule{
		Name: "single_quote", Kind: token.Literal, Type: MatchQuoted,
		Literal: "'", End: "'", EscapeDoubled: true, EscapeBackslash: true,
	})
	d.PatchLexRule(LexRule{
		Name: "double_quote", Kind: token.Literal, Type: MatchQuoted,
		Literal: `"`, End: `"`, EscapeDoubled: true, EscapeBackslash: true,
	})

	d.AddReserved("LIMIT")
	d.RemoveUnreserved("LIMIT")
	d.AddUnreserved("AUTO_INCREMENT", "ENGINE", "UNSIGNED")

	d.ReplaceProduction("limit_clause", node("limit_clause", seq(
		kw("limit"),
		ref("expression"),
		opt(oneOf(
			seq(kw("offset"), ref("expression")),
			seq(sym("comma"), ref("expression")),
		)),
	)))

	return d
}
