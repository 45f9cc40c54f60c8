package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/sqlint/pkg/token"
)

func testParser() *Parser {
	prods := map[string]Grammar{
		"statement": Node("statement", Sequence(Keyword("select"), Ref("value"))),
		"value":     OneOf(OfKind(token.Literal), Named("star")),
	}
	return New(testLang{prods: prods})
}

func sep() token.Token {
	return token.Token{Kind: token.Operator, Name: "semicolon", Raw: ";"}
}

func TestParseEmptyInput(t *testing.T) {
	root := testParser().Parse(nil)
	require.NotNil(t, root)
	assert.Equal(t, KindFile, root.Kind)
	assert.Empty(t, root.Children)
	assert.Equal(t, "", root.Raw())
}

func TestParseSingleStatement(t *testing.T) {
	toks := seqToks(rsv("SELECT"), ws(" "), num("1"))
	root := testParser().Parse(toks)

	require.Len(t, root.Children, 1)
	stmt := root.Children[0]
	assert.Equal(t, "statement", stmt.Kind)
	assert.Equal(t, "SELECT 1", stmt.Raw())
	require.NoError(t, root.CheckCoverage())
}

func TestParseSurroundingNonCodeStaysAtFileLevel(t *testing.T) {
	toks := seqToks(ws("  "), rsv("SELECT"), ws(" "), num("1"), ws(" "), sep(), ws(" "))
	root := testParser().Parse(toks)

	require.Len(t, root.Children, 5)
	assert.Equal(t, "whitespace", root.Children[0].Kind)
	assert.Equal(t, "statement", root.Children[1].Kind)
	assert.Equal(t, "whitespace", root.Children[2].Kind)
	assert.Equal(t, "semicolon", root.Children[3].Kind)
	assert.Equal(t, "whitespace", root.Children[4].Kind)
	assert.Equal(t, "  SELECT 1 ; ", root.Raw())
	require.NoError(t, root.CheckCoverage())
}

func TestParseUnmatchedStretchBecomesUnparsable(t *testing.T) {
	toks := seqToks(word("garbage"), ws(" "), word("tokens"))
	root := testParser().Parse(toks)

	require.Len(t, root.Children, 1)
	assert.Equal(t, KindUnparsable, root.Children[0].Kind)
	assert.Equal(t, "garbage tokens", root.Children[0].Raw())
	require.NoError(t, root.CheckCoverage())
}

func TestParsePartialMatchWrapsRemainder(t *testing.T) {
	toks := seqToks(rsv("SELECT"), ws(" "), num("1"), ws(" "), word("oops"))
	root := testParser().Parse(toks)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "statement", root.Children[0].Kind)
	assert.Equal(t, "whitespace", root.Children[1].Kind)
	assert.Equal(t, KindUnparsable, root.Children[2].Kind)
	assert.Equal(t, "oops", root.Children[2].Raw())
	require.NoError(t, root.CheckCoverage())
}

func TestParseRecoversAfterBrokenStatement(t *testing.T) {
	toks := seqToks(
		word("broken"), sep(),
		ws(" "), rsv("SELECT"), ws(" "), num("1"),
	)
	root := testParser().Parse(toks)

	require.Len(t, root.Children, 4)
	assert.Equal(t, KindUnparsable, root.Children[0].Kind)
	assert.Equal(t, "semicolon", root.Children[1].Kind)
	assert.Equal(t, "whitespace", root.Children[2].Kind)
	assert.Equal(t, "statement", root.Children[3].Kind)
	require.NoError(t, root.CheckCoverage())
}

func TestParseSeparatorRuns(t *testing.T) {
	toks := seqToks(sep(), sep(), sep())
	root := testParser().Parse(toks)

	require.Len(t, root.Children, 3)
	for _, c := range root.Children {
		assert.Equal(t, "semicolon", c.Kind)
	}
	assert.Equal(t, ";;;", root.Raw())
}

func TestParseLosslessOverMixedInput(t *testing.T) {
	toks := seqToks(
		rsv("SELECT"), ws(" "), op("star", "*"), sep(),
		word("nonsense"), ws("\t"), num("9"), sep(),
		ws(" "), rsv("SELECT"), ws(" "), num("2"),
	)
	root := testParser().Parse(toks)

	want := ""
	for _, tk := range toks {
		want += tk.Raw
	}
	assert.Equal(t, want, root.Raw())
	require.NoError(t, root.CheckCoverage())
}

func TestStringify(t *testing.T) {
	toks := seqToks(rsv("SELECT"), ws(" "), num("1"))
	root := testParser().Parse(toks)

	out := root.Stringify()
	assert.Contains(t, out, "file:\n")
	assert.Contains(t, out, "    statement:\n")
	assert.Contains(t, out, "keyword: [L:1, P:1] 'SELECT'")
	assert.Contains(t, out, "numeric_literal: [L:1, P:8] '1'")
}

func TestCheckCoverageDetectsGaps(t *testing.T) {
	a := Leaf(token.Token{Kind: token.Word, Name: "code", Raw: "ab", Pos: token.Start()})
	// Deliberately positioned past the end of a.
	b := Leaf(token.Token{Kind: token.Word, Name: "code", Raw: "cd", Pos: token.Position{Line: 1, Col: 9, Offset: 8}})
	bad := NewNode("file", []*Segment{a, b})

	err := bad.CheckCoverage()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")
}

func TestSegmentHelpers(t *testing.T) {
	toks := seqToks(rsv("SELECT"), ws(" "), num("1"))
	root := testParser().Parse(toks)

	leaves := root.Leaves()
	require.Len(t, leaves, 3)
	assert.Equal(t, "SELECT", leaves[0].Raw())
	assert.True(t, leaves[0].IsCode())
	assert.True(t, leaves[1].IsWhitespace())

	stmts := root.FindAll("statement")
	require.Len(t, stmts, 1)
	assert.True(t, stmts[0].IsType("statement", "other"))
	assert.False(t, stmts[0].IsType("other"))

	back := root.Tokens()
	require.Len(t, back, 3)
	assert.Equal(t, toks, back)
}
