// Package dialect defines SQL dialects as data: an ordered lexer table,
// keyword sets and named grammar productions. Dialects derive from each
// other by copying and patching, and once registered they are immutable.
package dialect

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/nsxbet/sqlint/pkg/parser"
)

// Dialect is one SQL dialect. Build one with New or derive from a registered
// dialect with Copy, mutate it, then Register it. Mutating a registered
// dialect panics.
type Dialect struct {
	name       string
	lex        LexSpec
	reserved   KeywordSet
	unreserved KeywordSet
	prods      map[string]parser.Grammar
	brackets   [][2]string
	separator  string
	root       string
	frozen     bool
}

// New returns an empty dialect with the default statement separator and
// round brackets.
func New(name string) *Dialect {
	return &Dialect{
		name:       name,
		reserved:   KeywordSet{},
		unreserved: KeywordSet{},
		prods:      map[string]parser.Grammar{},
		brackets:   [][2]string{{"bracket_open", "bracket_close"}},
		separator:  "semicolon",
		root:       "statement",
	}
}

// Copy returns a deep, unfrozen copy under a new name. This is how dialects
// extend each other: copy the parent, patch the differences, register.
func (d *Dialect) Copy(name string) *Dialect {
	nd := &Dialect{
		name:       name,
		lex:        d.lex.Clone(),
		reserved:   d.reserved.Clone(),
		unreserved: d.unreserved.Clone(),
		prods:      make(map[string]parser.Grammar, len(d.prods)),
		brackets:   make([][2]string, len(d.brackets)),
		separator:  d.separator,
		root:       d.root,
	}
	for k, v := range d.prods {
		nd.prods[k] = v
	}
	copy(nd.brackets, d.brackets)
	return nd
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// LexSpec returns the ordered lexer table. Callers must not modify it.
func (d *Dialect) LexSpec() LexSpec {
	return d.lex
}

// IsReserved reports whether word is a reserved keyword.
func (d *Dialect) IsReserved(word string) bool {
	return d.reserved.Has(word)
}

// IsKeyword reports whether word is known to the dialect as a keyword,
// reserved or not.
func (d *Dialect) IsKeyword(word string) bool {
	return d.reserved.Has(word) || d.unreserved.Has(word)
}

// Production implements parser.Language.
func (d *Dialect) Production(name string) (parser.Grammar, bool) {
	g, ok := d.prods[name]
	return g, ok
}

// Brackets implements parser.Language.
func (d *Dialect) Brackets() [][2]string {
	return d.brackets
}

// SeparatorName implements parser.Language.
func (d *Dialect) SeparatorName() string {
	return d.separator
}

// RootStatement implements parser.Language.
func (d *Dialect) RootStatement() string {
	return d.root
}

// ---- builders ----

func (d *Dialect) mutable() {
	if d.frozen {
		panic("dialect: modifying registered dialect " + d.name)
	}
}

// SetLex installs the full lexer table.
func (d *Dialect) SetLex(spec LexSpec) {
	d.mutable()
	d.lex = spec
}

// PatchLexRule replaces the first lexer rule carrying the same name. Patching
// a name the table does not contain panics.
func (d *Dialect) PatchLexRule(rule LexRule) {
	d.mutable()
	i := d.lex.index(rule.Name)
	if i < 0 {
		panic("dialect: patching unknown lex rule " + rule.Name)
	}
	d.lex[i] = rule
}

// InsertLexRuleBefore inserts rules before the named anchor rule.
func (d *Dialect) InsertLexRuleBefore(anchor string, rules ...LexRule) {
	d.mutable()
	i := d.lex.index(anchor)
	if i < 0 {
		panic("dialect: inserting before unknown lex rule " + anchor)
	}
	out := make(LexSpec, 0, len(d.lex)+len(rules))
	out = append(out, d.lex[:i]...)
	out = append(out, rules...)
	out = append(out, d.lex[i:]...)
	d.lex = out
}

// RemoveLexRule removes every lexer rule with the given name.
func (d *Dialect) RemoveLexRule(name string) {
	d.mutable()
	out := d.lex[:0:0]
	for _, r := range d.lex {
		if r.Name != name {
			out = append(out, r)
		}
	}
	d.lex = out
}

// AddProduction defines a new named production. Defining a name twice
// panics; use ReplaceProduction to override an inherited one.
func (d *Dialect) AddProduction(name string, g parser.Grammar) {
	d.mutable()
	if _, ok := d.prods[name]; ok {
		panic("dialect: production " + name + " defined twice in " + d.name)
	}
	d.prods[name] = g
}

// ReplaceProduction overrides an existing production.
func (d *Dialect) ReplaceProduction(name string, g parser.Grammar) {
	d.mutable()
	if _, ok := d.prods[name]; !ok {
		panic("dialect: replacing unknown production " + name + " in " + d.name)
	}
	d.prods[name] = g
}

// AddReserved adds reserved keywords.
func (d *Dialect) AddReserved(words ...string) {
	d.mutable()
	d.reserved.Add(words...)
}

// RemoveReserved removes reserved keywords.
func (d *Dialect) RemoveReserved(words ...string) {
	d.mutable()
	d.reserved.Remove(words...)
}

// AddUnreserved adds unreserved keywords.
func (d *Dialect) AddUnreserved(words ...string) {
	d.mutable()
	d.unreserved.Add(words...)
}

// RemoveUnreserved removes unreserved keywords.
func (d *Dialect) RemoveUnreserved(words ...string) {
	d.mutable()
	d.unreserved.Remove(words...)
}

// AddBracketPair adds a bracket pair by lexeme names.
func (d *Dialect) AddBracketPair(open, close string) {
	d.mutable()
	d.brackets = append(d.brackets, [2]string{open, close})
}

// KeywordSet is a case-insensitive set of keywords.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a set from words.
func NewKeywordSet(words ...string) KeywordSet {
	s := make(KeywordSet, len(words))
	s.Add(words...)
	return s
}

// Add inserts words into the set.
func (s KeywordSet) Add(words ...string) {
	for _, w := range words {
		s[strings.ToUpper(w)] = struct{}{}
	}
}

// Remove deletes words from the set.
func (s KeywordSet) Remove(words ...string) {
	for _, w := range words {
		delete(s, strings.ToUpper(w))
	}
}

// Has reports membership, ignoring case.
func (s KeywordSet) Has(word string) bool {
	_, ok := s[strings.ToUpper(word)]
	return ok
}

// Clone returns an independent copy.
func (s KeywordSet) Clone() KeywordSet {
	out := make(KeywordSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// ---- registry ----

var (
	dialectMu sync.RWMutex
	dialects  = make(map[string]*Dialect)
)

// Register makes a dialect available by name and freezes it. Registering
// nil or the same name twice panics.
func Register(d *Dialect) {
	if d == nil {
		panic("dialect: Register dialect is nil")
	}
	dialectMu.Lock()
	defer dialectMu.Unlock()
	if _, dup := dialects[d.name]; dup {
		panic("dialect: Register called twice for dialect " + d.name)
	}
	d.frozen = true
	dialects[d.name] = d
}

// Lookup returns the registered dialect with the given name.
func Lookup(name string) (*Dialect, error) {
	dialectMu.RLock()
	defer dialectMu.RUnlock()
	d, ok := dialects[name]
	if !ok {
		return nil, errors.Errorf("unknown dialect %q, available: %s", name, strings.Join(namesLocked(), ", "))
	}
	return d, nil
}

// MustLookup is Lookup for dialects known to exist, such as the built-ins.
func MustLookup(name string) *Dialect {
	d, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	dialectMu.RLock()
	defer dialectMu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	out := make([]string, 0, len(dialects))
	for name := range dialects {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
