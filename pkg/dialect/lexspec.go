package dialect

import "github.com/nsxbet/sqlint/pkg/token"

// MatcherType selects how the lexer matches one rule.
type MatcherType int

const (
	// MatchWhitespace matches a run of spaces and tabs.
	MatchWhitespace MatcherType = iota
	// MatchNewline matches "\r\n", "\n" or a lone "\r".
	MatchNewline
	// MatchLineComment matches the Literal prefix and then everything up
	// to, but not including, the end of the line.
	MatchLineComment
	// MatchBlockComment matches from Literal to End. The body may span
	// lines and contain anything except End.
	MatchBlockComment
	// MatchQuoted matches from Literal to End with the rule's escape
	// conventions. The body may span lines.
	MatchQuoted
	// MatchNumeric matches digits with an optional fraction, or a
	// fraction alone: 10, 10.5, .5.
	MatchNumeric
	// MatchLiteral matches the Literal text exactly.
	MatchLiteral
	// MatchWord matches a run of letters, digits and underscores.
	MatchWord
)

// LexRule is one entry in a dialect's lexer table.
type LexRule struct {
	// Name is the lexeme name tokens matched by this rule carry.
	Name string
	// Kind is the token kind to emit.
	Kind token.Kind
	// Type selects the matcher.
	Type MatcherType
	// Literal is the exact text for MatchLiteral, the prefix for
	// MatchLineComment and the opening delimiter for MatchBlockComment
	// and MatchQuoted.
	Literal string
	// End is the closing delimiter for MatchBlockComment and MatchQuoted.
	End string
	// EscapeDoubled lets a doubled closing delimiter stand for itself
	// inside MatchQuoted text.
	EscapeDoubled bool
	// EscapeBackslash lets a backslash escape the next byte inside
	// MatchQuoted text.
	EscapeBackslash bool
	// Nested lets MatchBlockComment rules open and close recursively, so
	// End only terminates the comment once every opener is balanced.
	Nested bool
}

// LexSpec is an ordered lexer table. At each input position the first rule
// that matches wins, so longer operators must precede their prefixes.
type LexSpec []LexRule

// Clone returns an independent copy of the table.
func (s LexSpec) Clone() LexSpec {
	out := make(LexSpec, len(s))
	copy(out, s)
	return out
}

func (s LexSpec) index(name string) int {
	for i, r := range s {
		if r.Name == name {
			return i
		}
	}
	return -1
}
