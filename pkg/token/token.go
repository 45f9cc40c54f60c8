// Package token defines the lexical elements produced by the lexer and the
// source positions attached to them.
package token

// Kind classifies a token.
type Kind int

const (
	// Word is an identifier or any other bare code word.
	Word Kind = iota
	// Keyword is a word reserved or known by the active dialect.
	Keyword
	// Operator covers punctuation and operator symbols.
	Operator
	// Literal covers quoted strings and numeric literals.
	Literal
	// Whitespace is a run of spaces and tabs within one line.
	Whitespace
	// Newline is a single line break, "\n" or "\r\n".
	Newline
	// Comment is an inline or block comment, delimiters included.
	Comment
	// Unparsable marks input the lexer could not classify, such as an
	// unterminated string. It is carried as data, never as an error.
	Unparsable
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Keyword:
		return "keyword"
	case Operator:
		return "operator"
	case Literal:
		return "literal"
	case Whitespace:
		return "whitespace"
	case Newline:
		return "newline"
	case Comment:
		return "comment"
	case Unparsable:
		return "unparsable"
	default:
		return "unknown"
	}
}

// Token is one lexed element. Raw holds the exact source substring, so
// concatenating the Raw of every token in order reproduces the input
// byte for byte.
type Token struct {
	// Kind is the token class.
	Kind Kind
	// Name is the dialect lexeme that matched, e.g. "whitespace",
	// "inline_comment", "single_quote", "comma", "code".
	Name string
	// Raw is the exact matched source text.
	Raw string
	// Pos is the position of the first byte of Raw.
	Pos Position
}

// End returns the position immediately after the token.
func (t Token) End() Position {
	return t.Pos.Advance(t.Raw)
}

// IsCode reports whether the token is meaningful to a parser, i.e. not
// whitespace, newline or comment.
func (t Token) IsCode() bool {
	switch t.Kind {
	case Whitespace, Newline, Comment:
		return false
	}
	return true
}

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool {
	return t.Kind == Comment
}

// IsWhitespace reports whether the token is whitespace or a newline.
func (t Token) IsWhitespace() bool {
	return t.Kind == Whitespace || t.Kind == Newline
}

func (t Token) String() string {
	return "<" + t.Kind.String() + ": " + t.Pos.String() + " " + quote(t.Raw) + ">"
}

// quote renders raw token text for debug output, escaping line breaks and
// tabs so a token always prints on one line.
func quote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		case '\'':
			out = append(out, '\\', '\'')
		default:
			out = append(out, s[i])
		}
	}
	return string(append(out, '\''))
}
