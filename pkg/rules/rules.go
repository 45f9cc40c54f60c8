// Package rules defines the lint rule framework: the Rule interface, the
// crawl context rules are evaluated against, and the registry rules add
// themselves to at import time.
package rules

import (
	"github.com/nsxbet/sqlint/pkg/dialect"
	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/token"
)

// Severity grades a finding.
type Severity int

const (
	// SeverityWarning marks a style finding. The run still fails on
	// warnings; the grade is descriptive, not a filter.
	SeverityWarning Severity = iota
	// SeverityError marks a finding that means part of the source could
	// not be checked, such as an unparsable segment.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Rule is one lint rule. Implementations must be pure: Eval reads the
// context and returns results without mutating the tree or any shared
// state, so rules can run in any order and in any selection.
type Rule interface {
	// Code is the stable identifier, e.g. "L001".
	Code() string
	// Description is the default violation message.
	Description() string
	// Severity is the grade given to this rule's violations.
	Severity() Severity
	// Eval inspects one segment in context. A nil return means no
	// violation at this segment.
	Eval(ctx *Context) []Result
}

// Context is the read-only view a rule gets of one segment during a crawl.
type Context struct {
	// Segment is the segment under evaluation.
	Segment *parser.Segment
	// Parents is the enclosing segment stack, root first.
	Parents []*parser.Segment
	// SiblingsPre and SiblingsPost are the segments before and after
	// Segment under the same parent.
	SiblingsPre  []*parser.Segment
	SiblingsPost []*parser.Segment
	// RawStack holds every leaf before Segment in document order.
	RawStack []*parser.Segment
	// Dialect is the dialect the file was parsed with.
	Dialect *dialect.Dialect
	// Settings carries the rule configuration.
	Settings Settings
	// Memory persists across the crawl for one rule and one file.
	// Rules that need earlier observations, such as a consistency
	// policy, stash them here.
	Memory map[string]any
}

// Root reports whether the segment under evaluation is the tree root.
func (c *Context) Root() bool {
	return len(c.Parents) == 0
}

// Parent returns the immediate parent, or nil at the root.
func (c *Context) Parent() *parser.Segment {
	if len(c.Parents) == 0 {
		return nil
	}
	return c.Parents[len(c.Parents)-1]
}

// PrevRaw returns the leaf immediately before the segment, or nil at the
// start of the file.
func (c *Context) PrevRaw() *parser.Segment {
	if len(c.RawStack) == 0 {
		return nil
	}
	return c.RawStack[len(c.RawStack)-1]
}

// Result is one finding. The violation position comes from Pos when set,
// otherwise from the anchor segment's start.
type Result struct {
	Anchor  *parser.Segment
	Pos     *token.Position
	Message string
}

// Violation is a positioned finding with its rule code, ready for
// aggregation.
type Violation struct {
	Code     string
	Message  string
	Severity Severity
	Pos      token.Position
}

// CheckTuple is the compact (code, line, column) form used in tests and
// machine output.
func (v Violation) CheckTuple() (string, int, int) {
	return v.Code, v.Pos.Line, v.Pos.Col
}

// Settings is the rule configuration, shared by every rule in a run.
type Settings struct {
	// TabSpaceSize is how many spaces one indent step is.
	TabSpaceSize int `yaml:"tab_space_size" json:"tab_space_size"`
	// IndentUnit is "space" or "tab".
	IndentUnit string `yaml:"indent_unit" json:"indent_unit"`
	// CapitalisationPolicy is "consistent", "upper", "lower" or
	// "capitalise".
	CapitalisationPolicy string `yaml:"capitalisation_policy" json:"capitalisation_policy"`
	// MaxLineLength is the line length limit.
	MaxLineLength int `yaml:"max_line_length" json:"max_line_length"`
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		TabSpaceSize:         4,
		IndentUnit:           "space",
		CapitalisationPolicy: "consistent",
		MaxLineLength:        80,
	}
}
