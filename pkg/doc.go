// Package pkg provides dialect-aware SQL style linting for Go applications.
//
// sqlint lexes and parses SQL losslessly, evaluates a catalog of style
// rules over the resulting segment tree, and aggregates deterministic,
// positioned violations. Broken SQL never aborts a run: it is reported as
// unparsable segments with their own violations.
//
// # Package Structure
//
// The pkg directory contains several specialized packages:
//
//   - linter: High-level API for linting strings, files and directories
//     (recommended starting point)
//   - dialect: The dialect registry; keyword sets, lexer tables and
//     grammar productions for ansi, postgres, mysql and bigquery
//   - lexer: Lossless tokenizer driven by a dialect's lexer table
//   - parser: Error-tolerant grammar matcher producing the segment tree
//   - token: Token and position primitives shared by the pipeline
//   - rules: The rule framework, registry and tree crawler
//   - rules/std: The standard rule catalog (L001 and up)
//   - templater: Source preprocessors (raw passthrough, text/template)
//   - config: Configuration loading and defaults
//   - format: Terminal rendering of results and summaries
//   - logger: Logging setup
//   - version: Build-time version information
//
// # Getting Started
//
// For most use cases, start with the linter package:
//
//	import (
//	    "github.com/nsxbet/sqlint/pkg/config"
//	    "github.com/nsxbet/sqlint/pkg/linter"
//	)
//
//	func main() {
//	    l, err := linter.New(config.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    file := l.LintString("SELECT  1,2\n", "query.sql")
//	    for _, v := range file.Violations {
//	        fmt.Printf("%s at L%d C%d: %s\n", v.Code, v.Pos.Line, v.Pos.Col, v.Message)
//	    }
//	}
//
// # Rule Categories
//
// The standard catalog covers layout and style:
//
// Whitespace Rules: trailing whitespace, indentation consistency, spacing
// around commas and operators, runs of extra spaces.
//
// Line Rules: final newlines and maximum line length.
//
// Style Rules: keyword capitalisation policies and wildcard select
// targets.
//
// Pipeline Codes: PRS marks unparsable segments, TMP marks template
// rendering failures. Both come from the pipeline rather than a rule.
//
// # Dialects
//
// Dialects are immutable once registered. New dialects derive from
// existing ones by copy and patch:
//
//	d := dialect.MustLookup("ansi").Copy("custom")
//	d.AddReserved("QUALIFY")
//	dialect.Register(d)
//
// # Custom Rules
//
// Implement the rules.Rule interface and register it at init time:
//
//	type myRule struct{}
//
//	func (myRule) Code() string             { return "X001" }
//	func (myRule) Description() string      { return "My custom check" }
//	func (myRule) Severity() rules.Severity { return rules.SeverityWarning }
//	func (myRule) Eval(ctx *rules.Context) []rules.Result {
//	    // Inspection logic over ctx.Segment
//	    return nil
//	}
//
//	func init() {
//	    rules.Register(myRule{})
//	}
//
// # Thread Safety
//
// All public APIs are safe for concurrent use by multiple goroutines.
// Linter instances can be reused across runs; dialect tables are
// read-only after registration and shared freely between workers.
//
// # Error Handling
//
// Lint operations distinguish between:
//   - Lint findings (returned as Violations on a LintedFile)
//   - Configuration errors (returned as error from linter.New)
//
// A rule that panics during evaluation contributes no violations for that
// file; the failure is logged and every other rule still runs.
package pkg
