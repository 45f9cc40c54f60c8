package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/token"
)

func TestLookupBuiltins(t *testing.T) {
	for _, name := range []string{"ansi", "postgres", "mysql", "bigquery"} {
		d, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, d.Name())
	}

	names := Names()
	assert.Contains(t, names, "ansi")
	assert.Contains(t, names, "postgres")
	assert.True(t, sortedStrings(names))
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i-1] > ss[i] {
			return false
		}
	}
	return true
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("oracle9i")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect "oracle9i"`)
	assert.Contains(t, err.Error(), "ansi")

	assert.Panics(t, func() { MustLookup("oracle9i") })
}

func TestRegisterMisuse(t *testing.T) {
	assert.Panics(t, func() { Register(nil) })

	Register(New("register_dup_probe"))
	assert.Panics(t, func() { Register(New("register_dup_probe")) })
}

func TestRegisteredDialectIsFrozen(t *testing.T) {
	d := MustLookup("ansi")
	assert.Panics(t, func() { d.AddReserved("NOPE") })
	assert.Panics(t, func() { d.RemoveLexRule("code") })
	assert.Panics(t, func() { d.ReplaceProduction("statement", parser.Nothing()) })
}

func TestCopyIsIndependent(t *testing.T) {
	base := MustLookup("ansi")
	c := base.Copy("ansi_scratch")

	c.AddReserved("FROBNICATE")
	assert.True(t, c.IsReserved("frobnicate"))
	assert.False(t, base.IsReserved("frobnicate"))

	c.RemoveLexRule("hash_comment")
	assert.Equal(t, -1, c.LexSpec().index("hash_comment"))
	assert.NotEqual(t, -1, base.LexSpec().index("hash_comment"))

	c.ReplaceProduction("limit_clause", kw("limit"))
	got, _ := c.Production("limit_clause")
	want, _ := base.Production("limit_clause")
	assert.NotEqual(t, want, got)
}

func TestLexSpecEditing(t *testing.T) {
	d := New("lexedit_probe")
	d.SetLex(LexSpec{
		{Name: "a", Kind: token.Operator, Type: MatchLiteral, Literal: "a"},
		{Name: "b", Kind: token.Operator, Type: MatchLiteral, Literal: "b"},
	})

	d.InsertLexRuleBefore("b",
		LexRule{Name: "x", Kind: token.Operator, Type: MatchLiteral, Literal: "x"},
	)
	require.Equal(t, []string{"a", "x", "b"}, ruleNames(d.LexSpec()))

	d.PatchLexRule(LexRule{Name: "x", Kind: token.Operator, Type: MatchLiteral, Literal: "y"})
	assert.Equal(t, "y", d.LexSpec()[1].Literal)

	d.RemoveLexRule("a")
	require.Equal(t, []string{"x", "b"}, ruleNames(d.LexSpec()))

	assert.Panics(t, func() { d.PatchLexRule(LexRule{Name: "missing"}) })
	assert.Panics(t, func() { d.InsertLexRuleBefore("missing") })
}

func ruleNames(s LexSpec) []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = r.Name
	}
	return out
}

func TestKeywordSet(t *testing.T) {
	s := NewKeywordSet("select", "FROM")
	assert.True(t, s.Has("SELECT"))
	assert.True(t, s.Has("from"))
	assert.False(t, s.Has("where"))

	c := s.Clone()
	c.Remove("select")
	assert.False(t, c.Has("select"))
	assert.True(t, s.Has("select"))
}

func TestKeywordClassification(t *testing.T) {
	d := MustLookup("ansi")
	assert.True(t, d.IsReserved("select"))
	assert.False(t, d.IsReserved("limit"))
	assert.True(t, d.IsKeyword("limit"))
	assert.False(t, d.IsKeyword("customers"))

	pg := MustLookup("postgres")
	assert.True(t, pg.IsReserved("limit"))
}

func TestDialectDeltas(t *testing.T) {
	t.Run("postgres drops hash comments", func(t *testing.T) {
		pg := MustLookup("postgres")
		assert.Equal(t, -1, pg.LexSpec().index("hash_comment"))
		assert.NotEqual(t, -1, pg.LexSpec().index("dollar_quote"))
	})

	t.Run("mysql double quotes are literals", func(t *testing.T) {
		my := MustLookup("mysql")
		i := my.LexSpec().index("double_quote")
		require.NotEqual(t, -1, i)
		assert.Equal(t, token.Literal, my.LexSpec()[i].Kind)
		assert.True(t, my.LexSpec()[i].EscapeBackslash)
	})

	t.Run("bigquery has extra brackets", func(t *testing.T) {
		bq := MustLookup("bigquery")
		assert.Len(t, bq.Brackets(), 2)
		assert.NotEqual(t, -1, bq.LexSpec().index("triple_quote"))
	})

	t.Run("ansi production table is callable through the interface", func(t *testing.T) {
		a := MustLookup("ansi")
		_, ok := a.Production("statement")
		assert.True(t, ok)
		_, ok = a.Production("no_such_production")
		assert.False(t, ok)
		assert.Equal(t, "semicolon", a.SeparatorName())
		assert.Equal(t, "statement", a.RootStatement())
	})
}
