// Package linter provides a high-level API for SQL style linting.
//
// It wires the full pipeline together: templating, lexing, parsing, rule
// evaluation and violation aggregation. Sources never fail to lint; broken
// SQL surfaces as violations on unparsable segments instead of errors.
//
// # Quick Start
//
//	// Create a linter with the stock configuration
//	l, err := linter.New(config.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Lint a string
//	file := l.LintString("SELECT  1,2\n", "query.sql")
//	for _, v := range file.Violations {
//	    fmt.Printf("L:%d | P:%d | %s | %s\n", v.Pos.Line, v.Pos.Col, v.Code, v.Message)
//	}
//
// # Linting Paths
//
//	result, err := l.LintPaths(ctx, []string{"queries/"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats := result.Stats()
//	fmt.Printf("%d violations in %d files\n", stats.Violations, stats.Files)
//	os.Exit(stats.ExitCode)
package linter

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/nsxbet/sqlint/pkg/config"
	"github.com/nsxbet/sqlint/pkg/dialect"
	"github.com/nsxbet/sqlint/pkg/lexer"
	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/rules"
	_ "github.com/nsxbet/sqlint/pkg/rules/std"
	"github.com/nsxbet/sqlint/pkg/templater"
	"github.com/nsxbet/sqlint/pkg/token"
)

// Violation codes reserved for the pipeline itself. Rule codes start with
// "L"; these mark findings produced before any rule runs.
const (
	// CodeUnparsable marks a segment the parser could not match.
	CodeUnparsable = "PRS"
	// CodeTemplating marks a failed template render.
	CodeTemplating = "TMP"
)

// Linter runs the lint pipeline with one resolved configuration.
//
// Linter is safe for concurrent use by multiple goroutines.
type Linter struct {
	dialect   *dialect.Dialect
	templater templater.Templater
	context   map[string]any
	rules     []rules.Rule
	settings  rules.Settings
	sqlExts   []string
}

// New builds a Linter from the given configuration, resolving the dialect,
// templater and rule selection it names. A nil config means defaults.
//
// Resolution failures (unknown dialect, rule or templater) are returned as
// errors before any linting happens.
func New(cfg *config.Config) (*Linter, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	d, err := dialect.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	tmpl, err := templater.Select(cfg.Templater.Name)
	if err != nil {
		return nil, err
	}
	selected, err := selectRules(cfg.Rules)
	if err != nil {
		return nil, err
	}

	return &Linter{
		dialect:   d,
		templater: tmpl,
		context:   cfg.Templater.Context,
		rules:     selected,
		settings:  cfg.Settings,
		sqlExts:   cfg.SQLExts,
	}, nil
}

func selectRules(codes []string) ([]rules.Rule, error) {
	if len(codes) == 0 {
		return rules.All(), nil
	}
	out := make([]rules.Rule, 0, len(codes))
	for _, code := range codes {
		r, ok := rules.Get(code)
		if !ok {
			return nil, errors.Errorf("unknown rule %q, available: %s", code, strings.Join(rules.Codes(), ", "))
		}
		out = append(out, r)
	}
	return out, nil
}

// Dialect returns the dialect the linter parses with.
func (l *Linter) Dialect() *dialect.Dialect { return l.dialect }

// Rules returns the selected rules in evaluation order.
func (l *Linter) Rules() []rules.Rule { return l.rules }

// LintString lints one source and returns its violations, sorted by
// position and code. It never fails: templating errors become TMP
// violations and the raw source is linted instead, unparsable SQL becomes
// PRS violations.
func (l *Linter) LintString(src, path string) *LintedFile {
	lf := &LintedFile{Path: path}

	start := time.Now()
	rendered, err := l.templater.Process(src, path, l.context)
	if err != nil {
		slog.Warn("templating failed, linting the raw source", "path", path, "error", err)
		lf.Violations = append(lf.Violations, rules.Violation{
			Code:     CodeTemplating,
			Message:  fmt.Sprintf("Templating failed: %v", err),
			Severity: rules.SeverityError,
			Pos:      token.Position{Line: 1, Col: 1},
		})
		rendered = src
	}
	lf.Timing.Templating = time.Since(start)

	start = time.Now()
	toks := lexer.New(l.dialect).Lex(rendered)
	lf.Timing.Lexing = time.Since(start)

	start = time.Now()
	lf.Tree = parser.New(l.dialect).Parse(toks)
	lf.Timing.Parsing = time.Since(start)

	for _, seg := range lf.Tree.FindAll(parser.KindUnparsable) {
		lf.Violations = append(lf.Violations, rules.Violation{
			Code:     CodeUnparsable,
			Message:  unparsableMessage(seg),
			Severity: rules.SeverityError,
			Pos:      seg.Pos(),
		})
	}

	start = time.Now()
	lf.Violations = append(lf.Violations, rules.Run(lf.Tree, l.dialect, l.settings, l.rules)...)
	lf.Timing.Linting = time.Since(start)

	sortViolations(lf.Violations)
	slog.Debug("linted", "path", path, "violations", len(lf.Violations),
		"lex", lf.Timing.Lexing, "parse", lf.Timing.Parsing, "lint", lf.Timing.Linting)
	return lf
}

// ParseString renders and parses one source, returning the segment tree.
// Unlike LintString it reports templating failures as errors, since there
// is no violation list to carry them.
func (l *Linter) ParseString(src, path string) (*parser.Segment, error) {
	rendered, err := l.templater.Process(src, path, l.context)
	if err != nil {
		return nil, err
	}
	return parser.New(l.dialect).Parse(lexer.New(l.dialect).Lex(rendered)), nil
}

func unparsableMessage(seg *parser.Segment) string {
	raw := seg.Raw()
	if r := []rune(raw); len(r) > 40 {
		raw = string(r[:40]) + "..."
	}
	return fmt.Sprintf("Found unparsable segment: %q", raw)
}

// sortViolations orders violations by line, then column, then code. The
// sort is stable so equal findings keep their insertion order.
func sortViolations(vs []rules.Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line < b.Pos.Line
		}
		if a.Pos.Col != b.Pos.Col {
			return a.Pos.Col < b.Pos.Col
		}
		return a.Code < b.Code
	})
}
