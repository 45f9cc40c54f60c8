// Package lexer turns source text into tokens using the active dialect's
// lexer table. Lexing is lossless and total: every byte of input ends up in
// exactly one token, and input the table cannot classify becomes unparsable
// tokens instead of errors.
package lexer

import (
	"strings"

	"github.com/nsxbet/sqlint/pkg/dialect"
	"github.com/nsxbet/sqlint/pkg/token"
)

// Lexer lexes source text for one dialect.
type Lexer struct {
	dialect *dialect.Dialect
}

// New returns a lexer for the given dialect.
func New(d *dialect.Dialect) *Lexer {
	return &Lexer{dialect: d}
}

// Lex scans src into tokens. It never fails: unterminated strings and
// comments become a single unparsable token running to the end of input,
// and bytes no rule matches become single-byte unparsable tokens.
func (l *Lexer) Lex(src string) []token.Token {
	s := &scanner{src: src, pos: token.Start(), d: l.dialect, spec: l.dialect.LexSpec()}
	for s.off < len(s.src) {
		if !s.step() {
			s.emit(token.Unparsable, "unlexable", s.src[s.off:s.off+1])
		}
	}
	return s.out
}

type scanner struct {
	src  string
	off  int
	pos  token.Position
	d    *dialect.Dialect
	spec dialect.LexSpec
	out  []token.Token

	// modes is the stack of open delimited constructs. Outside strings
	// and comments it is empty; nested block comments push one frame per
	// level.
	modes []string
}

// step matches one token at the current offset, trying the dialect's rules
// in table order. It reports whether any rule matched.
func (s *scanner) step() bool {
	rest := s.src[s.off:]
	for _, r := range s.spec {
		switch r.Type {
		case dialect.MatchWhitespace:
			if n := scanWhitespace(rest); n > 0 {
				s.emit(r.Kind, r.Name, rest[:n])
				return true
			}
		case dialect.MatchNewline:
			if n := scanNewline(rest); n > 0 {
				s.emit(r.Kind, r.Name, rest[:n])
				return true
			}
		case dialect.MatchLineComment:
			if strings.HasPrefix(rest, r.Literal) {
				n := strings.IndexByte(rest, '\n')
				if n < 0 {
					n = len(rest)
				}
				s.emit(r.Kind, r.Name, rest[:n])
				return true
			}
		case dialect.MatchBlockComment:
			if strings.HasPrefix(rest, r.Literal) {
				s.scanBlockComment(r)
				return true
			}
		case dialect.MatchQuoted:
			if strings.HasPrefix(rest, r.Literal) {
				s.scanQuoted(r)
				return true
			}
		case dialect.MatchNumeric:
			if n := scanNumeric(rest); n > 0 {
				s.emit(r.Kind, r.Name, rest[:n])
				return true
			}
		case dialect.MatchLiteral:
			if strings.HasPrefix(rest, r.Literal) {
				s.emit(r.Kind, r.Name, r.Literal)
				return true
			}
		case dialect.MatchWord:
			if n := scanWord(rest); n > 0 {
				kind := r.Kind
				if kind == token.Word && s.d.IsReserved(rest[:n]) {
					kind = token.Keyword
				}
				s.emit(kind, r.Name, rest[:n])
				return true
			}
		}
	}
	return false
}

func (s *scanner) emit(kind token.Kind, name, raw string) {
	s.out = append(s.out, token.Token{Kind: kind, Name: name, Raw: raw, Pos: s.pos})
	s.pos = s.pos.Advance(raw)
	s.off += len(raw)
}

func (s *scanner) push(name string) {
	s.modes = append(s.modes, name)
}

func (s *scanner) pop() {
	s.modes = s.modes[:len(s.modes)-1]
}

// scanQuoted consumes a quoted construct. Inside it, every delimiter except
// the closing one is plain content. Running out of input emits an
// unparsable token covering the rest of the file.
func (s *scanner) scanQuoted(r dialect.LexRule) {
	rest := s.src[s.off:]
	s.push(r.Name)
	i := len(r.Literal)
	for i < len(rest) {
		if r.EscapeBackslash && rest[i] == '\\' && i+1 < len(rest) {
			i += 2
			continue
		}
		if strings.HasPrefix(rest[i:], r.End) {
			if r.EscapeDoubled && strings.HasPrefix(rest[i+len(r.End):], r.End) {
				i += 2 * len(r.End)
				continue
			}
			s.pop()
			s.emit(r.Kind, r.Name, rest[:i+len(r.End)])
			return
		}
		i++
	}
	s.pop()
	s.emit(token.Unparsable, r.Name, rest)
}

// scanBlockComment consumes a block comment, tracking nesting depth through
// the mode stack when the rule allows nested comments.
func (s *scanner) scanBlockComment(r dialect.LexRule) {
	rest := s.src[s.off:]
	s.push(r.Name)
	i := len(r.Literal)
	for i < len(rest) {
		if r.Nested && strings.HasPrefix(rest[i:], r.Literal) {
			s.push(r.Name)
			i += len(r.Literal)
			continue
		}
		if strings.HasPrefix(rest[i:], r.End) {
			s.pop()
			i += len(r.End)
			if len(s.modes) == 0 {
				s.emit(r.Kind, r.Name, rest[:i])
				return
			}
			continue
		}
		i++
	}
	// Unwind whatever is still open.
	s.modes = s.modes[:0]
	s.emit(token.Unparsable, r.Name, rest)
}

func scanWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func scanNewline(s string) int {
	if strings.HasPrefix(s, "\r\n") {
		return 2
	}
	if len(s) > 0 && (s[0] == '\n' || s[0] == '\r') {
		return 1
	}
	return 0
}

func scanNumeric(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		if len(s) >= 2 && s[0] == '.' && isDigit(s[1]) {
			i = 2
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			return i
		}
		return 0
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i += 2
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i
}

func scanWord(s string) int {
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return b == '_' || isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
