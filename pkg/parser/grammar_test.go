package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/sqlint/pkg/token"
)

type testLang struct {
	prods map[string]Grammar
}

func (l testLang) Production(name string) (Grammar, bool) {
	g, ok := l.prods[name]
	return g, ok
}

func (l testLang) Brackets() [][2]string {
	return [][2]string{{"bracket_open", "bracket_close"}}
}

func (l testLang) SeparatorName() string { return "semicolon" }
func (l testLang) RootStatement() string { return "statement" }

func testCtx(prods map[string]Grammar) *Ctx {
	return &Ctx{Lang: testLang{prods: prods}}
}

// seqToks chains positions so that the fixtures satisfy the same contiguity
// the lexer guarantees.
func seqToks(parts ...token.Token) []token.Token {
	pos := token.Start()
	out := make([]token.Token, 0, len(parts))
	for _, p := range parts {
		p.Pos = pos
		out = append(out, p)
		pos = pos.Advance(p.Raw)
	}
	return out
}

func word(raw string) token.Token {
	return token.Token{Kind: token.Word, Name: "code", Raw: raw}
}

func rsv(raw string) token.Token {
	return token.Token{Kind: token.Keyword, Name: "code", Raw: raw}
}

func ws(raw string) token.Token {
	return token.Token{Kind: token.Whitespace, Name: "whitespace", Raw: raw}
}

func op(name, raw string) token.Token {
	return token.Token{Kind: token.Operator, Name: name, Raw: raw}
}

func num(raw string) token.Token {
	return token.Token{Kind: token.Literal, Name: "numeric_literal", Raw: raw}
}

func rawOf(segs []*Segment) string {
	out := ""
	for _, s := range segs {
		out += s.Raw()
	}
	return out
}

func TestKeywordGrammar(t *testing.T) {
	ctx := testCtx(nil)

	m, ok := Keyword("select").Match(ctx, seqToks(rsv("SeLeCt"), ws(" ")))
	require.True(t, ok)
	require.Len(t, m.Segments, 1)
	assert.Equal(t, KindKeyword, m.Segments[0].Kind)
	assert.Equal(t, "SeLeCt", m.Segments[0].Raw())
	assert.Len(t, m.Rest, 1)

	// Plain words in keyword position match too.
	_, ok = Keyword("limit").Match(ctx, seqToks(word("limit")))
	assert.True(t, ok)

	_, ok = Keyword("select").Match(ctx, seqToks(word("selection")))
	assert.False(t, ok)

	_, ok = Keyword("select").Match(ctx, nil)
	assert.False(t, ok)
}

func TestNamedAndOfKind(t *testing.T) {
	ctx := testCtx(nil)
	toks := seqToks(op("comma", ","))

	m, ok := Named("comma").Match(ctx, toks)
	require.True(t, ok)
	assert.Equal(t, "comma", m.Segments[0].Kind)

	_, ok = Named("dot").Match(ctx, toks)
	assert.False(t, ok)

	m, ok = OfKind(token.Literal, token.Operator).Match(ctx, toks)
	require.True(t, ok)
	assert.Equal(t, ",", m.Segments[0].Raw())

	_, ok = OfKind(token.Word).Match(ctx, toks)
	assert.False(t, ok)
}

func TestSequenceClaimsInterstitialOnly(t *testing.T) {
	ctx := testCtx(nil)
	g := Sequence(Keyword("select"), OfKind(token.Literal))

	toks := seqToks(rsv("SELECT"), ws("  "), num("1"), ws(" "))
	m, ok := g.Match(ctx, toks)
	require.True(t, ok)
	assert.Equal(t, "SELECT  1", rawOf(m.Segments))
	// Trailing whitespace stays for the caller.
	require.Len(t, m.Rest, 1)
	assert.Equal(t, " ", m.Rest[0].Raw)

	// Leading non-code is never claimed by the sequence itself.
	_, ok = g.Match(ctx, seqToks(ws(" "), rsv("SELECT"), ws(" "), num("1")))
	assert.False(t, ok)
}

func TestSequenceUnwindsEmptyOptional(t *testing.T) {
	ctx := testCtx(nil)
	g := Sequence(Keyword("select"), Optional(Keyword("distinct")))

	toks := seqToks(rsv("SELECT"), ws(" "))
	m, ok := g.Match(ctx, toks)
	require.True(t, ok)
	// The optional matched empty, so the padding before it must not be
	// swallowed into the sequence.
	assert.Equal(t, "SELECT", rawOf(m.Segments))
	require.Len(t, m.Rest, 1)
}

func TestOneOfFirstMatchWins(t *testing.T) {
	ctx := testCtx(nil)
	g := OneOf(Keyword("select"), OfKind(token.Word))

	m, ok := g.Match(ctx, seqToks(word("select")))
	require.True(t, ok)
	assert.Equal(t, KindKeyword, m.Segments[0].Kind)

	m, ok = g.Match(ctx, seqToks(word("other")))
	require.True(t, ok)
	assert.Equal(t, "code", m.Segments[0].Kind)

	_, ok = g.Match(ctx, seqToks(num("7")))
	assert.False(t, ok)
}

func TestAnyNumberOf(t *testing.T) {
	ctx := testCtx(nil)
	g := AnyNumberOf(OfKind(token.Word))

	m, ok := g.Match(ctx, seqToks(word("a"), ws(" "), word("b"), ws(" "), num("1")))
	require.True(t, ok)
	assert.Equal(t, "a b", rawOf(m.Segments))
	assert.Equal(t, " ", m.Rest[0].Raw)

	// Zero repetitions still match.
	m, ok = g.Match(ctx, seqToks(num("1")))
	require.True(t, ok)
	assert.Empty(t, m.Segments)
	assert.Len(t, m.Rest, 1)
}

func TestDelimited(t *testing.T) {
	ctx := testCtx(nil)
	comma := Named("comma")

	t.Run("plain list", func(t *testing.T) {
		g := Delimited(OfKind(token.Word), comma, false)
		toks := seqToks(word("a"), op("comma", ","), ws(" "), word("b"), op("comma", ","), ws(" "), word("c"))
		m, ok := g.Match(ctx, toks)
		require.True(t, ok)
		assert.Equal(t, "a, b, c", rawOf(m.Segments))
		assert.Empty(t, m.Rest)
	})

	t.Run("dangling delimiter left unclaimed", func(t *testing.T) {
		g := Delimited(OfKind(token.Word), comma, false)
		toks := seqToks(word("a"), op("comma", ","))
		m, ok := g.Match(ctx, toks)
		require.True(t, ok)
		assert.Equal(t, "a", rawOf(m.Segments))
		require.Len(t, m.Rest, 1)
		assert.Equal(t, ",", m.Rest[0].Raw)
	})

	t.Run("dangling delimiter claimed when trailing allowed", func(t *testing.T) {
		g := Delimited(OfKind(token.Word), comma, true)
		toks := seqToks(word("a"), op("comma", ","))
		m, ok := g.Match(ctx, toks)
		require.True(t, ok)
		assert.Equal(t, "a,", rawOf(m.Segments))
		assert.Empty(t, m.Rest)
	})

	t.Run("no content fails", func(t *testing.T) {
		g := Delimited(OfKind(token.Word), comma, false)
		_, ok := g.Match(ctx, seqToks(num("1")))
		assert.False(t, ok)
	})
}

func TestBracketed(t *testing.T) {
	ctx := testCtx(nil)
	g := Bracketed(Delimited(OfKind(token.Literal), Named("comma"), false))

	toks := seqToks(op("bracket_open", "("), num("1"), op("comma", ","), ws(" "), num("2"), op("bracket_close", ")"))
	m, ok := g.Match(ctx, toks)
	require.True(t, ok)
	assert.Equal(t, "(1, 2)", rawOf(m.Segments))
	assert.Empty(t, m.Rest)

	// A missing closing bracket fails the whole match and claims nothing.
	_, ok = g.Match(ctx, seqToks(op("bracket_open", "("), num("1")))
	assert.False(t, ok)

	_, ok = g.Match(ctx, seqToks(num("1")))
	assert.False(t, ok)
}

func TestGreedyUntil(t *testing.T) {
	ctx := testCtx(nil)
	g := GreedyUntil(Keyword("from"))

	toks := seqToks(word("a"), op("comma", ","), ws(" "), word("b"), ws(" "), rsv("FROM"))
	m, ok := g.Match(ctx, toks)
	require.True(t, ok)
	assert.Equal(t, "a, b ", rawOf(m.Segments))
	require.NotEmpty(t, m.Rest)
	assert.Equal(t, "FROM", m.Rest[0].Raw)

	// Without a target hit it claims everything.
	m, ok = g.Match(ctx, seqToks(word("a"), ws(" "), word("b")))
	require.True(t, ok)
	assert.Equal(t, "a b", rawOf(m.Segments))
	assert.Empty(t, m.Rest)
}

func TestNodeWrapsAndSkipsEmpty(t *testing.T) {
	ctx := testCtx(nil)
	g := Node("pair", Sequence(OfKind(token.Word), OfKind(token.Literal)))

	m, ok := g.Match(ctx, seqToks(word("a"), ws(" "), num("1")))
	require.True(t, ok)
	require.Len(t, m.Segments, 1)
	assert.Equal(t, "pair", m.Segments[0].Kind)
	assert.Equal(t, "a 1", m.Segments[0].Raw())
	assert.Len(t, m.Segments[0].Children, 3)

	// An empty match produces no node at all.
	m, ok = Node("empty", Optional(Keyword("missing"))).Match(ctx, seqToks(word("a")))
	require.True(t, ok)
	assert.Empty(t, m.Segments)
}

func TestRefResolvesProductions(t *testing.T) {
	ctx := testCtx(map[string]Grammar{
		"value": OneOf(OfKind(token.Literal), OfKind(token.Word)),
	})

	m, ok := Ref("value").Match(ctx, seqToks(num("42")))
	require.True(t, ok)
	assert.Equal(t, "42", rawOf(m.Segments))

	assert.Panics(t, func() {
		Ref("nonexistent").Match(ctx, seqToks(num("42")))
	})
}

func TestRefDepthGuard(t *testing.T) {
	// A self-recursive production must fail the match rather than blow the
	// stack.
	prods := map[string]Grammar{}
	prods["loop"] = Sequence(Ref("loop"))
	ctx := testCtx(prods)

	_, ok := Ref("loop").Match(ctx, seqToks(word("a")))
	assert.False(t, ok)
}

func TestAnythingAndNothing(t *testing.T) {
	ctx := testCtx(nil)

	m, ok := Anything().Match(ctx, seqToks(word("a"), ws(" "), num("1")))
	require.True(t, ok)
	assert.Equal(t, "a 1", rawOf(m.Segments))
	assert.Empty(t, m.Rest)

	_, ok = Nothing().Match(ctx, seqToks(word("a")))
	assert.False(t, ok)
}
