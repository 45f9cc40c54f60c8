package std

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/sqlint/pkg/dialect"
	"github.com/nsxbet/sqlint/pkg/lexer"
	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/rules"
)

// tuple is the compact (code, line, column) form the assertions below use.
type tuple struct {
	code      string
	line, col int
}

// lint runs the given rules over src parsed with the ansi dialect and
// returns the findings as sorted check tuples.
func lint(t *testing.T, src string, settings rules.Settings, codes ...string) []tuple {
	t.Helper()
	d := dialect.MustLookup("ansi")
	root := parser.New(d).Parse(lexer.New(d).Lex(src))

	var selected []rules.Rule
	if len(codes) == 0 {
		selected = rules.All()
	} else {
		for _, code := range codes {
			r, ok := rules.Get(code)
			require.True(t, ok, "rule %s not registered", code)
			selected = append(selected, r)
		}
	}

	out := make([]tuple, 0)
	for _, v := range rules.Run(root, d, settings, selected) {
		code, line, col := v.CheckTuple()
		out = append(out, tuple{code, line, col})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.line != b.line {
			return a.line < b.line
		}
		if a.col != b.col {
			return a.col < b.col
		}
		return a.code < b.code
	})
	return out
}

func TestCatalogRegistered(t *testing.T) {
	want := []string{"L001", "L002", "L003", "L004", "L005", "L006", "L007", "L008", "L009", "L010", "L011", "L012"}
	codes := rules.Codes()
	for _, code := range want {
		assert.Contains(t, codes, code)
	}
	for _, r := range rules.All() {
		assert.NotEmpty(t, r.Description(), "rule %s has no description", r.Code())
	}
}

func TestRuleCheckTuples(t *testing.T) {
	defaults := rules.DefaultSettings()
	tests := []struct {
		name  string
		sql   string
		rules []string
		want  []tuple
	}{
		{
			name:  "L001 trailing whitespace before newline",
			sql:   "SELECT 1  \n",
			rules: []string{"L001"},
			want:  []tuple{{"L001", 1, 9}},
		},
		{
			name:  "L001 trailing whitespace at end of file",
			sql:   "SELECT 1  ",
			rules: []string{"L001"},
			want:  []tuple{{"L001", 1, 9}},
		},
		{
			name:  "L001 clean line",
			sql:   "SELECT 1\n",
			rules: []string{"L001"},
			want:  []tuple{},
		},
		{
			name:  "L002 mixed indentation",
			sql:   "SELECT\n \t1\n",
			rules: []string{"L002"},
			want:  []tuple{{"L002", 2, 1}},
		},
		{
			name:  "L002 pure spaces pass",
			sql:   "SELECT\n    1\n",
			rules: []string{"L002"},
			want:  []tuple{},
		},
		{
			name:  "L003 indent not a multiple of the step",
			sql:   "SELECT\n   1\n",
			rules: []string{"L003"},
			want:  []tuple{{"L003", 2, 1}},
		},
		{
			name:  "L003 four spaces pass",
			sql:   "SELECT\n    1\n",
			rules: []string{"L003"},
			want:  []tuple{},
		},
		{
			name:  "L004 tab in a space-indented file",
			sql:   "SELECT\n\t1\n",
			rules: []string{"L004"},
			want:  []tuple{{"L004", 2, 1}},
		},
		{
			name:  "L005 whitespace before comma",
			sql:   "SELECT a , b FROM t\n",
			rules: []string{"L005"},
			want:  []tuple{{"L005", 1, 9}},
		},
		{
			name:  "L005 tight comma passes",
			sql:   "SELECT a, b FROM t\n",
			rules: []string{"L005"},
			want:  []tuple{},
		},
		{
			name:  "L006 operator missing space after",
			sql:   "SELECT 1 +2\n",
			rules: []string{"L006"},
			want:  []tuple{{"L006", 1, 10}},
		},
		{
			name:  "L006 single spaces pass",
			sql:   "SELECT 1 + 2\n",
			rules: []string{"L006"},
			want:  []tuple{},
		},
		{
			name:  "L006 unary sign exempt",
			sql:   "SELECT -1\n",
			rules: []string{"L006"},
			want:  []tuple{},
		},
		{
			name:  "L006 casting operator exempt",
			sql:   "SELECT a::int FROM t\n",
			rules: []string{"L006"},
			want:  []tuple{},
		},
		{
			name:  "L007 double space between tokens",
			sql:   "SELECT  1\n",
			rules: []string{"L007"},
			want:  []tuple{{"L007", 1, 7}},
		},
		{
			name:  "L007 single space passes",
			sql:   "SELECT 1\n",
			rules: []string{"L007"},
			want:  []tuple{},
		},
		{
			name:  "L008 comma with no following whitespace",
			sql:   "SELECT 1,2\n",
			rules: []string{"L008"},
			want:  []tuple{{"L008", 1, 10}},
		},
		{
			name:  "L008 comma before newline passes",
			sql:   "SELECT 1,\n    2\n",
			rules: []string{"L008"},
			want:  []tuple{},
		},
		{
			name:  "L009 missing final newline",
			sql:   "SELECT 1",
			rules: []string{"L009"},
			want:  []tuple{{"L009", 1, 8}},
		},
		{
			name:  "L009 final newline passes",
			sql:   "SELECT 1\n",
			rules: []string{"L009"},
			want:  []tuple{},
		},
		{
			name:  "L010 inconsistent keyword capitalisation",
			sql:   "select foo FROM bar\n",
			rules: []string{"L010"},
			want:  []tuple{{"L010", 1, 12}},
		},
		{
			name:  "L010 unreserved keyword in keyword position",
			sql:   "SELECT 1 limit 5\n",
			rules: []string{"L010"},
			want:  []tuple{{"L010", 1, 10}},
		},
		{
			name:  "L010 consistent lower passes",
			sql:   "select foo from bar\n",
			rules: []string{"L010"},
			want:  []tuple{},
		},
		{
			name:  "L011 select star",
			sql:   "SELECT * FROM tbl\n",
			rules: []string{"L011"},
			want:  []tuple{{"L011", 1, 8}},
		},
		{
			name:  "L011 qualified wildcard",
			sql:   "SELECT tbl.* FROM tbl\n",
			rules: []string{"L011"},
			want:  []tuple{{"L011", 1, 8}},
		},
		{
			name:  "L011 named columns pass",
			sql:   "SELECT a, b FROM tbl\n",
			rules: []string{"L011"},
			want:  []tuple{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, lint(t, tt.sql, defaults, tt.rules...))
		})
	}
}

func TestLineLength(t *testing.T) {
	settings := rules.DefaultSettings()
	settings.MaxLineLength = 10

	got := lint(t, "SELECT aaaa FROM b\n", settings, "L012")
	require.Equal(t, []tuple{{"L012", 1, 11}}, got)

	got = lint(t, "SELECT 1\n", settings, "L012")
	require.Equal(t, []tuple{}, got)
}

func TestFixedCapitalisationPolicy(t *testing.T) {
	settings := rules.DefaultSettings()
	settings.CapitalisationPolicy = "upper"

	d := dialect.MustLookup("ansi")
	root := parser.New(d).Parse(lexer.New(d).Lex("select 1\n"))
	r, ok := rules.Get("L010")
	require.True(t, ok)

	vs := rules.Run(root, d, settings, []rules.Rule{r})
	require.Len(t, vs, 1)
	assert.Equal(t, "Keyword capitalisation should be upper", vs[0].Message)
}

// The whole catalog over one untidy line: double space after SELECT, a
// comma with no space after it, and trailing whitespace before the
// newline.
func TestCatalogOnUntidySelect(t *testing.T) {
	got := lint(t, "SELECT  1,2   \n", rules.DefaultSettings())
	require.Equal(t, []tuple{
		{"L007", 1, 7},
		{"L008", 1, 11},
		{"L001", 1, 12},
	}, got)
}

func TestCatalogOnCleanStatement(t *testing.T) {
	got := lint(t, "SELECT a, b FROM tbl WHERE a = 1\n", rules.DefaultSettings())
	require.Equal(t, []tuple{}, got)
}
