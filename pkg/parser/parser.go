package parser

import "github.com/nsxbet/sqlint/pkg/token"

// Parser assembles a whole-file segment tree from a token stream. It is
// tolerant by construction: statements that match the dialect grammar become
// typed composites, everything else is preserved inside unparsable segments,
// and the tree always spans the full input.
type Parser struct {
	lang Language
}

// New returns a parser for the given language definition.
func New(lang Language) *Parser {
	return &Parser{lang: lang}
}

// Parse builds the file segment. The stream is cut at every statement
// separator, each stretch is matched against the dialect's statement
// production, and a failed or partial match turns the remainder of that
// stretch into an unparsable segment. The next stretch is parsed normally,
// so one broken statement never hides the rest of the file.
func (p *Parser) Parse(toks []token.Token) *Segment {
	root := &Segment{Kind: KindFile}
	i := 0
	sep := p.lang.SeparatorName()
	for i < len(toks) {
		j := i
		for j < len(toks) && toks[j].Name != sep {
			j++
		}
		root.Children = append(root.Children, p.parseStretch(toks[i:j])...)
		if j < len(toks) {
			root.Children = append(root.Children, Leaf(toks[j]))
			j++
		}
		i = j
	}
	return root
}

// parseStretch parses the tokens of one separator-bounded stretch. Leading
// and trailing non-code stays at file level, the code core goes through the
// statement production.
func (p *Parser) parseStretch(toks []token.Token) []*Segment {
	lead, rest := claimNonCode(toks)

	end := len(rest)
	for end > 0 && !rest[end-1].IsCode() {
		end--
	}
	core, trail := rest[:end], rest[end:]

	var out []*Segment
	out = append(out, lead...)
	if len(core) > 0 {
		out = append(out, p.parseStatement(core)...)
	}
	for _, t := range trail {
		out = append(out, Leaf(t))
	}
	return out
}

func (p *Parser) parseStatement(core []token.Token) []*Segment {
	g, ok := p.lang.Production(p.lang.RootStatement())
	if !ok {
		// A dialect without its root production cannot parse anything.
		return []*Segment{unparsable(core)}
	}
	ctx := &Ctx{Lang: p.lang}
	m, ok := g.Match(ctx, core)
	if !ok {
		return []*Segment{unparsable(core)}
	}
	out := m.Segments
	if len(m.Rest) > 0 {
		// Partial match. Padding between the statement and the leftover
		// code stays at file level, the code itself is unparsable.
		pad, leftover := claimNonCode(m.Rest)
		out = append(out, pad...)
		if len(leftover) > 0 {
			out = append(out, unparsable(leftover))
		}
	}
	return out
}

func unparsable(toks []token.Token) *Segment {
	children := make([]*Segment, 0, len(toks))
	for _, t := range toks {
		children = append(children, Leaf(t))
	}
	return NewNode(KindUnparsable, children)
}
