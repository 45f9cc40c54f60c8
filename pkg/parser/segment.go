// Package parser builds a lossless segment tree from lexed tokens. Grammars
// are pure matchers over token slices, so a failed alternative never leaves a
// mark on the tree, and anything no grammar claims is preserved inside
// unparsable segments rather than dropped.
package parser

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/nsxbet/sqlint/pkg/token"
)

// Kinds produced by the parser itself. Everything else comes from dialect
// productions or token names.
const (
	KindFile       = "file"
	KindKeyword    = "keyword"
	KindUnparsable = "unparsable"
)

// Segment is one node of the parse tree. A leaf wraps exactly one token
// (Tok non-nil), a composite holds ordered children. The two are exclusive.
type Segment struct {
	Kind     string
	Tok      *token.Token
	Children []*Segment
}

// Leaf wraps a single token in a segment named after its lexeme.
func Leaf(t token.Token) *Segment {
	return &Segment{Kind: t.Name, Tok: &t}
}

// KeywordLeaf wraps a token matched in keyword position, so the tree carries
// the keyword role even when the dialect lexed the word as plain code.
func KeywordLeaf(t token.Token) *Segment {
	return &Segment{Kind: KindKeyword, Tok: &t}
}

// NewNode builds a composite segment of the given kind.
func NewNode(kind string, children []*Segment) *Segment {
	return &Segment{Kind: kind, Children: children}
}

// IsLeaf reports whether the segment wraps a single token.
func (s *Segment) IsLeaf() bool {
	return s.Tok != nil
}

// Raw reconstructs the exact source text this segment spans.
func (s *Segment) Raw() string {
	if s.IsLeaf() {
		return s.Tok.Raw
	}
	var b strings.Builder
	for _, c := range s.Children {
		b.WriteString(c.Raw())
	}
	return b.String()
}

// Pos is the position of the first byte the segment spans. Empty composites
// report the zero position.
func (s *Segment) Pos() token.Position {
	if s.IsLeaf() {
		return s.Tok.Pos
	}
	if len(s.Children) > 0 {
		return s.Children[0].Pos()
	}
	return token.Position{}
}

// End is the position immediately after the last byte the segment spans.
func (s *Segment) End() token.Position {
	if s.IsLeaf() {
		return s.Tok.End()
	}
	if len(s.Children) > 0 {
		return s.Children[len(s.Children)-1].End()
	}
	return token.Position{}
}

// IsType reports whether the segment kind is any of the given kinds.
func (s *Segment) IsType(kinds ...string) bool {
	for _, k := range kinds {
		if s.Kind == k {
			return true
		}
	}
	return false
}

// IsCode reports whether the segment carries code. Composites always do,
// leaves delegate to their token.
func (s *Segment) IsCode() bool {
	if s.IsLeaf() {
		return s.Tok.IsCode()
	}
	return true
}

// IsComment reports whether the segment is a comment leaf.
func (s *Segment) IsComment() bool {
	return s.IsLeaf() && s.Tok.IsComment()
}

// IsWhitespace reports whether the segment is a whitespace or newline leaf.
func (s *Segment) IsWhitespace() bool {
	return s.IsLeaf() && s.Tok.IsWhitespace()
}

// Walk visits the segment and its descendants in pre-order. Returning false
// from fn stops descent below that segment but continues with its siblings.
func (s *Segment) Walk(fn func(*Segment) bool) {
	if !fn(s) {
		return
	}
	for _, c := range s.Children {
		c.Walk(fn)
	}
}

// Leaves returns the ordered leaf segments under s, including s itself if it
// is a leaf.
func (s *Segment) Leaves() []*Segment {
	var out []*Segment
	s.Walk(func(seg *Segment) bool {
		if seg.IsLeaf() {
			out = append(out, seg)
		}
		return true
	})
	return out
}

// FindAll returns every descendant (and possibly s itself) of the given kind,
// in document order.
func (s *Segment) FindAll(kind string) []*Segment {
	var out []*Segment
	s.Walk(func(seg *Segment) bool {
		if seg.Kind == kind {
			out = append(out, seg)
		}
		return true
	})
	return out
}

// Tokens returns the tokens under s in document order.
func (s *Segment) Tokens() []token.Token {
	leaves := s.Leaves()
	out := make([]token.Token, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, *l.Tok)
	}
	return out
}

// CheckCoverage verifies the structural invariants of the tree: every
// composite's children are contiguous, spans never overlap, and the tree
// reproduces exactly the bytes between its own start and end.
func (s *Segment) CheckCoverage() error {
	if s.IsLeaf() {
		if len(s.Children) > 0 {
			return errors.Errorf("segment %q at %s is both leaf and composite", s.Kind, s.Pos())
		}
		return nil
	}
	for i, c := range s.Children {
		if i == 0 {
			if c.Pos() != s.Pos() {
				return errors.Errorf("segment %q at %s: first child starts at %s", s.Kind, s.Pos(), c.Pos())
			}
		} else {
			prev := s.Children[i-1]
			if c.Pos() != prev.End() {
				return errors.Errorf("segment %q: gap between %s and %s", s.Kind, prev.End(), c.Pos())
			}
		}
		if err := c.CheckCoverage(); err != nil {
			return err
		}
	}
	if len(s.Children) > 0 {
		last := s.Children[len(s.Children)-1]
		if last.End() != s.End() {
			return errors.Errorf("segment %q: last child ends at %s, segment at %s", s.Kind, last.End(), s.End())
		}
	}
	return nil
}

// Stringify renders the tree as an indented listing, one segment per line.
// Composites show only their kind, leaves add position and raw text.
func (s *Segment) Stringify() string {
	var b strings.Builder
	s.stringify(&b, 0)
	return b.String()
}

func (s *Segment) stringify(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("    ", depth))
	if s.IsLeaf() {
		b.WriteString(s.Kind)
		b.WriteString(": ")
		b.WriteString(s.Tok.Pos.String())
		b.WriteString(" ")
		b.WriteString(rawQuote(s.Tok.Raw))
		b.WriteString("\n")
		return
	}
	b.WriteString(s.Kind)
	b.WriteString(":\n")
	for _, c := range s.Children {
		c.stringify(b, depth+1)
	}
}

func rawQuote(s string) string {
	r := strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "\\t")
	return "'" + r.Replace(s) + "'"
}
