package dialect

import (
	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/token"
)

// Shorthands for building grammar tables. The productions below read like
// the grammar they define; anything longer defeats that.
func kw(word string) parser.Grammar  { return parser.Keyword(word) }
func sym(name string) parser.Grammar { return parser.Named(name) }
func ref(name string) parser.Grammar { return parser.Ref(name) }

func seq(gs ...parser.Grammar) parser.Grammar   { return parser.Sequence(gs...) }
func oneOf(gs ...parser.Grammar) parser.Grammar { return parser.OneOf(gs...) }
func opt(g parser.Grammar) parser.Grammar       { return parser.Optional(g) }
func many(gs ...parser.Grammar) parser.Grammar  { return parser.AnyNumberOf(gs...) }
func brk(g parser.Grammar) parser.Grammar       { return parser.Bracketed(g) }

func node(kind string, g parser.Grammar) parser.Grammar { return parser.Node(kind, g) }

// list is a comma-delimited list of content.
func list(content parser.Grammar) parser.Grammar {
	return parser.Delimited(content, parser.Named("comma"), false)
}

// ansi is the root dialect. Every other dialect is a copy of it with
// patches.
var ansi = newANSI()

func newANSI() *Dialect {
	d := New("ansi")
	d.AddReserved(ansiReservedKeywords...)
	d.AddUnreserved(ansiUnreservedKeywords...)

	// The lexer consults this table in order, so multi-character
	// operators sit above their single-character prefixes and comments
	// above the operators they start with.
	d.SetLex(LexSpec{
		{Name: "whitespace", Kind: token.Whitespace, Type: MatchWhitespace},
		{Name: "inline_comment", Kind: token.Comment, Type: MatchLineComment, Literal: "--"},
		{Name: "hash_comment", Kind: token.Comment, Type: MatchLineComment, Literal: "#"},
		{Name: "block_comment", Kind: token.Comment, Type: MatchBlockComment, Literal: "/*", End: "*/"},
		{Name: "single_quote", Kind: token.Literal, Type: MatchQuoted, Literal: "'", End: "'", EscapeDoubled: true},
		{Name: "double_quote", Kind: token.Word, Type: MatchQuoted, Literal: `"`, End: `"`, EscapeDoubled: true},
		{Name: "back_quote", Kind: token.Word, Type: MatchQuoted, Literal: "`", End: "`"},
		{Name: "numeric_literal", Kind: token.Literal, Type: MatchNumeric},
		{Name: "not_equal", Kind: token.Operator, Type: MatchLiteral, Literal: "!="},
		{Name: "not_equal", Kind: token.Operator, Type: MatchLiteral, Literal: "<>"},
		{Name: "greater_than_or_equal", Kind: token.Operator, Type: MatchLiteral, Literal: ">="},
		{Name: "less_than_or_equal", Kind: token.Operator, Type: MatchLiteral, Literal: "<="},
		{Name: "casting_operator", Kind: token.Operator, Type: MatchLiteral, Literal: "::"},
		{Name: "concat_operator", Kind: token.Operator, Type: MatchLiteral, Literal: "||"},
		{Name: "newline", Kind: token.Newline, Type: MatchNewline},
		{Name: "equals", Kind: token.Operator, Type: MatchLiteral, Literal: "="},
		{Name: "greater_than", Kind: token.Operator, Type: MatchLiteral, Literal: ">"},
		{Name: "less_than", Kind: token.Operator, Type: MatchLiteral, Literal: "<"},
		{Name: "dot", Kind: token.Operator, Type: MatchLiteral, Literal: "."},
		{Name: "comma", Kind: token.Operator, Type: MatchLiteral, Literal: ","},
		{Name: "plus", Kind: token.Operator, Type: MatchLiteral, Literal: "+"},
		{Name: "tilde", Kind: token.Operator, Type: MatchLiteral, Literal: "~"},
		{Name: "minus", Kind: token.Operator, Type: MatchLiteral, Literal: "-"},
		{Name: "divide", Kind: token.Operator, Type: MatchLiteral, Literal: "/"},
		{Name: "percent", Kind: token.Operator, Type: MatchLiteral, Literal: "%"},
		{Name: "star", Kind: token.Operator, Type: MatchLiteral, Literal: "*"},
		{Name: "bracket_open", Kind: token.Operator, Type: MatchLiteral, Literal: "("},
		{Name: "bracket_close", Kind: token.Operator, Type: MatchLiteral, Literal: ")"},
		{Name: "colon", Kind: token.Operator, Type: MatchLiteral, Literal: ":"},
		{Name: "semicolon", Kind: token.Operator, Type: MatchLiteral, Literal: ";"},
		{Name: "code", Kind: token.Word, Type: MatchWord},
	})

	// Statements.
	d.AddProduction("statement", node("statement", oneOf(
		ref("with_compound_statement"),
		ref("select_statement"),
		ref("insert_statement"),
		ref("update_statement"),
		ref("delete_statement"),
		ref("create_table_statement"),
		ref("drop_statement"),
		ref("transaction_statement"),
	)))

	d.AddProduction("with_compound_statement", node("with_compound_statement", seq(
		kw("with"),
		opt(kw("recursive")),
		list(ref("common_table_expression")),
		ref("select_statement"),
	)))

	d.AddProduction("common_table_expression", node("common_table_expression", seq(
		ref("identifier"),
		opt(brk(list(ref("identifier")))),
		kw("as"),
		brk(ref("select_statement")),
	)))

	d.AddProduction("select_statement", node("select_statement", seq(
		ref("select_clause"),
		opt(ref("from_clause")),
		opt(ref("where_clause")),
		opt(ref("groupby_clause")),
		opt(ref("having_clause")),
		opt(ref("orderby_clause")),
		opt(ref("limit_clause")),
		many(seq(
			oneOf(kw("union"), kw("intersect"), kw("except")),
			opt(oneOf(kw("all"), kw("distinct"))),
			ref("select_statement"),
		)),
	)))

	d.AddProduction("select_clause", node("select_clause", seq(
		kw("select"),
		opt(oneOf(kw("distinct"), kw("all"))),
		list(ref("select_target")),
	)))

	d.AddProduction("select_target", node("select_target", oneOf(
		ref("wildcard_expression"),
		seq(ref("expression"), opt(ref("alias_expression"))),
	)))

	d.AddProduction("wildcard_expression", node("wildcard_expression", oneOf(
		seq(ref("object_reference"), sym("dot"), sym("star")),
		sym("star"),
	)))

	d.AddProduction("from_clause", node("from_clause", seq(
		kw("from"),
		list(ref("table_expression")),
		many(ref("join_clause")),
	)))

	d.AddProduction("table_expression", node("table_expression", seq(
		oneOf(
			brk(ref("select_statement")),
			ref("object_reference"),
		),
		opt(ref("alias_expression")),
	)))

	d.AddProduction("join_clause", node("join_clause", seq(
		oneOf(
			seq(kw("inner"), kw("join")),
			seq(oneOf(kw("left"), kw("right"), kw("full")), opt(kw("outer")), kw("join")),
			seq(kw("cross"), kw("join")),
			seq(kw("natural"), kw("join")),
			kw("join"),
		),
		ref("table_expression"),
		opt(seq(kw("on"), ref("expression"))),
		opt(seq(kw("using"), brk(list(ref("identifier"))))),
	)))

	d.AddProduction("where_clause", node("where_clause", seq(
		kw("where"),
		ref("expression"),
	)))

	d.AddProduction("groupby_clause", node("groupby_clause", seq(
		kw("group"),
		kw("by"),
		list(ref("expression")),
	)))

	d.AddProduction("having_clause", node("having_clause", seq(
		kw("having"),
		ref("expression"),
	)))

	d.AddProduction("orderby_clause", node("orderby_clause", seq(
		kw("order"),
		kw("by"),
		list(seq(ref("expression"), opt(oneOf(kw("asc"), kw("desc"))), opt(seq(kw("nulls"), oneOf(kw("first"), kw("last")))))),
	)))

	d.AddProduction("limit_clause", node("limit_clause", seq(
		kw("limit"),
		ref("expression"),
		opt(seq(kw("offset"), ref("expression"))),
	)))

	d.AddProduction("insert_statement", node("insert_statement", seq(
		kw("insert"),
		kw("into"),
		ref("object_reference"),
		opt(brk(list(ref("identifier")))),
		oneOf(ref("values_clause"), ref("select_statement")),
	)))

	d.AddProduction("values_clause", node("values_clause", seq(
		oneOf(kw("values"), kw("value")),
		list(brk(list(ref("expression")))),
	)))

	d.AddProduction("update_statement", node("update_statement", seq(
		kw("update"),
		ref("object_reference"),
		ref("set_clause"),
		opt(ref("where_clause")),
	)))

	d.AddProduction("set_clause", node("set_clause", seq(
		kw("set"),
		list(seq(ref("column_reference"), sym("equals"), ref("expression"))),
	)))

	d.AddProduction("delete_statement", node("delete_statement", seq(
		kw("delete"),
		kw("from"),
		ref("table_expression"),
		opt(ref("where_clause")),
	)))

	d.AddProduction("create_table_statement", node("create_table_statement", seq(
		kw("create"),
		opt(seq(kw("or"), kw("replace"))),
		opt(oneOf(kw("temporary"), kw("temp"))),
		kw("table"),
		opt(seq(kw("if"), kw("not"), kw("exists"))),
		ref("object_reference"),
		oneOf(
			brk(list(ref("column_definition"))),
			seq(kw("as"), ref("select_statement")),
		),
	)))

	d.AddProduction("column_definition", node("column_definition", seq(
		ref("identifier"),
		ref("data_type"),
		many(ref("column_constraint")),
	)))

	d.AddProduction("column_constraint", node("column_constraint", oneOf(
		seq(kw("not"), kw("null")),
		kw("null"),
		seq(kw("primary"), kw("key")),
		kw("unique"),
		seq(kw("default"), oneOf(ref("function_call"), ref("literal"))),
		seq(kw("references"), ref("object_reference"), opt(brk(list(ref("identifier"))))),
	)))

	d.AddProduction("drop_statement", node("drop_statement", seq(
		kw("drop"),
		oneOf(kw("table"), kw("view")),
		opt(seq(kw("if"), kw("exists"))),
		list(ref("object_reference")),
		opt(oneOf(kw("cascade"), kw("restrict"))),
	)))

	d.AddProduction("transaction_statement", node("transaction_statement", oneOf(
		seq(oneOf(kw("begin"), kw("start")), opt(oneOf(kw("transaction"), kw("work")))),
		seq(kw("commit"), opt(kw("work"))),
		seq(kw("rollback"), opt(kw("work"))),
	)))

	// Expressions. The grammar is deliberately flat: a linter cares about
	// the tokens and their spacing, not about operator precedence.
	d.AddProduction("expression", node("expression", seq(
		ref("term"),
		many(seq(ref("binary_operator"), ref("term"))),
	)))

	d.AddProduction("term", seq(
		many(oneOf(kw("not"), kw("exists"), sym("plus"), sym("minus"), sym("tilde"))),
		oneOf(
			ref("cast_expression"),
			ref("case_expression"),
			ref("function_call"),
			ref("literal"),
			brk(oneOf(ref("select_statement"), list(ref("expression")))),
			ref("column_reference"),
		),
		many(seq(sym("casting_operator"), ref("data_type"))),
	))

	d.AddProduction("binary_operator", oneOf(
		sym("equals"), sym("not_equal"),
		sym("greater_than_or_equal"), sym("less_than_or_equal"),
		sym("greater_than"), sym("less_than"),
		sym("plus"), sym("minus"), sym("star"), sym("divide"), sym("percent"),
		sym("concat_operator"),
		kw("and"), kw("or"), kw("like"), kw("in"), kw("between"),
		seq(kw("is"), opt(kw("not"))),
		seq(kw("not"), oneOf(kw("like"), kw("in"), kw("between"))),
	))

	d.AddProduction("function_call", node("function_call", seq(
		ref("object_reference"),
		brk(opt(oneOf(
			sym("star"),
			seq(opt(kw("distinct")), list(ref("expression"))),
		))),
	)))

	d.AddProduction("cast_expression", node("cast_expression", seq(
		kw("cast"),
		brk(seq(ref("expression"), kw("as"), ref("data_type"))),
	)))

	d.AddProduction("case_expression", node("case_expression", seq(
		kw("case"),
		opt(ref("expression")),
		many(seq(kw("when"), ref("expression"), kw("then"), ref("expression"))),
		opt(seq(kw("else"), ref("expression"))),
		kw("end"),
	)))

	d.AddProduction("data_type", node("data_type", seq(
		ref("identifier"),
		many(ref("identifier")),
		opt(brk(list(parser.OfKind(token.Literal)))),
	)))

	// References and terminals.
	d.AddProduction("object_reference", node("object_reference", seq(
		ref("identifier"),
		many(seq(sym("dot"), ref("identifier"))),
	)))

	d.AddProduction("column_reference", node("column_reference", seq(
		ref("identifier"),
		many(seq(sym("dot"), ref("identifier"))),
	)))

	d.AddProduction("alias_expression", node("alias_expression", oneOf(
		seq(kw("as"), ref("identifier")),
		ref("identifier"),
	)))

	d.AddProduction("identifier", parser.OfKind(token.Word))

	d.AddProduction("literal", oneOf(
		parser.OfKind(token.Literal),
		kw("null"),
		kw("true"),
		kw("false"),
	))

	return d
}
