package parser

import (
	"fmt"
	"strings"

	"github.com/nsxbet/sqlint/pkg/token"
)

// Language is what a dialect must expose for parsing: named grammar
// productions, bracket pairs, the statement separator lexeme and the name of
// the production to try per statement.
type Language interface {
	Production(name string) (Grammar, bool)
	Brackets() [][2]string
	SeparatorName() string
	RootStatement() string
}

// maxDepth bounds grammar recursion. Reaching it fails the match instead of
// overflowing the stack on hostile input.
const maxDepth = 200

// Ctx carries shared state through one match attempt.
type Ctx struct {
	Lang  Language
	depth int
}

// Match is the outcome of a successful grammar match: the segments claimed,
// in order, and the tokens left over.
type Match struct {
	Segments []*Segment
	Rest     []token.Token
}

// Grammar matches a prefix of a token slice. A failed match claims nothing,
// so callers backtrack simply by discarding the attempt.
type Grammar interface {
	Match(ctx *Ctx, toks []token.Token) (Match, bool)
}

// claimNonCode peels leading whitespace, newline and comment tokens off toks
// and returns them as leaf segments.
func claimNonCode(toks []token.Token) ([]*Segment, []token.Token) {
	i := 0
	for i < len(toks) && !toks[i].IsCode() {
		i++
	}
	if i == 0 {
		return nil, toks
	}
	segs := make([]*Segment, 0, i)
	for _, t := range toks[:i] {
		segs = append(segs, Leaf(t))
	}
	return segs, toks[i:]
}

// ---- terminals ----

type keywordG struct{ word string }

// Keyword matches one code word case-insensitively and labels the leaf as a
// keyword. It matches whether or not the lexer classified the word as
// reserved, which is what lets dialects use unreserved words in keyword
// position.
func Keyword(word string) Grammar {
	return keywordG{word: word}
}

func (g keywordG) Match(_ *Ctx, toks []token.Token) (Match, bool) {
	if len(toks) == 0 {
		return Match{}, false
	}
	t := toks[0]
	if t.Kind != token.Word && t.Kind != token.Keyword {
		return Match{}, false
	}
	if !strings.EqualFold(t.Raw, g.word) {
		return Match{}, false
	}
	return Match{Segments: []*Segment{KeywordLeaf(t)}, Rest: toks[1:]}, true
}

type namedG struct{ names []string }

// Named matches one token by its dialect lexeme name, e.g. "comma" or
// "casting_operator".
func Named(names ...string) Grammar {
	return namedG{names: names}
}

func (g namedG) Match(_ *Ctx, toks []token.Token) (Match, bool) {
	if len(toks) == 0 {
		return Match{}, false
	}
	for _, n := range g.names {
		if toks[0].Name == n {
			return Match{Segments: []*Segment{Leaf(toks[0])}, Rest: toks[1:]}, true
		}
	}
	return Match{}, false
}

type ofKindG struct{ kinds []token.Kind }

// OfKind matches one token by token kind, e.g. any literal or any bare word.
func OfKind(kinds ...token.Kind) Grammar {
	return ofKindG{kinds: kinds}
}

func (g ofKindG) Match(_ *Ctx, toks []token.Token) (Match, bool) {
	if len(toks) == 0 {
		return Match{}, false
	}
	for _, k := range g.kinds {
		if toks[0].Kind == k {
			return Match{Segments: []*Segment{Leaf(toks[0])}, Rest: toks[1:]}, true
		}
	}
	return Match{}, false
}

type refG struct{ name string }

// Ref defers to a named production of the active dialect. Unknown names are
// a dialect authoring bug and panic.
func Ref(name string) Grammar {
	return refG{name: name}
}

func (g refG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	target, ok := ctx.Lang.Production(g.name)
	if !ok {
		panic(fmt.Sprintf("parser: reference to unknown production %q", g.name))
	}
	if ctx.depth >= maxDepth {
		return Match{}, false
	}
	ctx.depth++
	defer func() { ctx.depth-- }()
	return target.Match(ctx, toks)
}

type nodeG struct {
	kind  string
	inner Grammar
}

// Node wraps whatever inner matches into a single composite of the given
// kind. A match that claims no tokens produces no node.
func Node(kind string, inner Grammar) Grammar {
	return nodeG{kind: kind, inner: inner}
}

func (g nodeG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	m, ok := g.inner.Match(ctx, toks)
	if !ok {
		return Match{}, false
	}
	if len(m.Segments) == 0 {
		return m, true
	}
	return Match{Segments: []*Segment{NewNode(g.kind, m.Segments)}, Rest: m.Rest}, true
}

// ---- combinators ----

type sequenceG struct{ elems []Grammar }

// Sequence matches its elements in order. Non-code tokens between elements
// are claimed by the sequence; non-code before the first element is left for
// the enclosing grammar.
func Sequence(elems ...Grammar) Grammar {
	return sequenceG{elems: elems}
}

func (g sequenceG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	var out []*Segment
	rest := toks
	for i, e := range g.elems {
		pad, afterPad := []*Segment(nil), rest
		if i > 0 {
			pad, afterPad = claimNonCode(rest)
		}
		m, ok := e.Match(ctx, afterPad)
		if !ok {
			return Match{}, false
		}
		if len(m.Segments) == 0 {
			// The element matched empty, so the padding before it is
			// not interstitial. Leave it unclaimed.
			continue
		}
		out = append(out, pad...)
		out = append(out, m.Segments...)
		rest = m.Rest
	}
	return Match{Segments: out, Rest: rest}, true
}

type oneOfG struct{ elems []Grammar }

// OneOf tries its alternatives in order and commits to the first that
// matches.
func OneOf(elems ...Grammar) Grammar {
	return oneOfG{elems: elems}
}

func (g oneOfG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	for _, e := range g.elems {
		if m, ok := e.Match(ctx, toks); ok {
			return m, true
		}
	}
	return Match{}, false
}

type optionalG struct{ inner Grammar }

// Optional matches its grammar or nothing.
func Optional(inner Grammar) Grammar {
	return optionalG{inner: inner}
}

func (g optionalG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	if m, ok := g.inner.Match(ctx, toks); ok {
		return m, true
	}
	return Match{Rest: toks}, true
}

type anyNumberOfG struct{ elems []Grammar }

// AnyNumberOf matches zero or more repetitions, each repetition being the
// first alternative that matches. Non-code between repetitions is claimed.
func AnyNumberOf(elems ...Grammar) Grammar {
	return anyNumberOfG{elems: elems}
}

func (g anyNumberOfG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	var out []*Segment
	rest := toks
	first := true
	for {
		pad, afterPad := []*Segment(nil), rest
		if !first {
			pad, afterPad = claimNonCode(rest)
		}
		m, ok := oneOfG{elems: g.elems}.Match(ctx, afterPad)
		if !ok || len(m.Rest) == len(afterPad) {
			// No progress. Unwind any padding and stop.
			return Match{Segments: out, Rest: rest}, true
		}
		out = append(out, pad...)
		out = append(out, m.Segments...)
		rest = m.Rest
		first = false
	}
}

type delimitedG struct {
	content       Grammar
	delimiter     Grammar
	allowTrailing bool
}

// Delimited matches one or more content matches separated by the delimiter.
// With allowTrailing, a final dangling delimiter is claimed too.
func Delimited(content, delimiter Grammar, allowTrailing bool) Grammar {
	return delimitedG{content: content, delimiter: delimiter, allowTrailing: allowTrailing}
}

func (g delimitedG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	m, ok := g.content.Match(ctx, toks)
	if !ok {
		return Match{}, false
	}
	out := m.Segments
	rest := m.Rest
	for {
		pad, afterPad := claimNonCode(rest)
		dm, ok := g.delimiter.Match(ctx, afterPad)
		if !ok {
			return Match{Segments: out, Rest: rest}, true
		}
		pad2, afterPad2 := claimNonCode(dm.Rest)
		cm, ok := g.content.Match(ctx, afterPad2)
		if !ok {
			if g.allowTrailing {
				out = append(out, pad...)
				out = append(out, dm.Segments...)
				return Match{Segments: out, Rest: dm.Rest}, true
			}
			// Leave the dangling delimiter unclaimed.
			return Match{Segments: out, Rest: rest}, true
		}
		out = append(out, pad...)
		out = append(out, dm.Segments...)
		out = append(out, pad2...)
		out = append(out, cm.Segments...)
		rest = cm.Rest
	}
}

type bracketedG struct{ content Grammar }

// Bracketed matches content enclosed by any of the dialect's bracket pairs.
// The closing bracket must pair the opening one, and a missing close fails
// the whole match.
func Bracketed(content Grammar) Grammar {
	return bracketedG{content: content}
}

func (g bracketedG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	if len(toks) == 0 {
		return Match{}, false
	}
	for _, pair := range ctx.Lang.Brackets() {
		if toks[0].Name != pair[0] {
			continue
		}
		out := []*Segment{Leaf(toks[0])}
		pad, rest := claimNonCode(toks[1:])
		m, ok := g.content.Match(ctx, rest)
		if !ok {
			return Match{}, false
		}
		out = append(out, pad...)
		out = append(out, m.Segments...)
		pad2, rest2 := claimNonCode(m.Rest)
		if len(rest2) == 0 || rest2[0].Name != pair[1] {
			return Match{}, false
		}
		out = append(out, pad2...)
		out = append(out, Leaf(rest2[0]))
		return Match{Segments: out, Rest: rest2[1:]}, true
	}
	return Match{}, false
}

type greedyUntilG struct{ targets []Grammar }

// GreedyUntil claims tokens as plain leaves until any target would match, or
// until the tokens run out. The target itself is not consumed. It matches
// even when it claims nothing.
func GreedyUntil(targets ...Grammar) Grammar {
	return greedyUntilG{targets: targets}
}

func (g greedyUntilG) Match(ctx *Ctx, toks []token.Token) (Match, bool) {
	var out []*Segment
	rest := toks
	for len(rest) > 0 {
		for _, t := range g.targets {
			if _, ok := t.Match(ctx, rest); ok {
				return Match{Segments: out, Rest: rest}, true
			}
		}
		out = append(out, Leaf(rest[0]))
		rest = rest[1:]
	}
	return Match{Segments: out, Rest: rest}, true
}

type anythingG struct{}

// Anything claims every remaining token as plain leaves.
func Anything() Grammar {
	return anythingG{}
}

func (g anythingG) Match(_ *Ctx, toks []token.Token) (Match, bool) {
	out := make([]*Segment, 0, len(toks))
	for _, t := range toks {
		out = append(out, Leaf(t))
	}
	return Match{Segments: out}, true
}

type nothingG struct{}

// Nothing never matches. Dialects use it to disable an inherited production.
func Nothing() Grammar {
	return nothingG{}
}

func (g nothingG) Match(_ *Ctx, _ []token.Token) (Match, bool) {
	return Match{}, false
}
