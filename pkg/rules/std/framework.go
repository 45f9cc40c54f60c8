// Package std holds the standard rule catalog. Every rule lives in its own
// file and registers itself at import time, so a blank import of this
// package activates the full catalog.
package std

import (
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/token"
)

// ruleMeta carries the code and default message every rule needs.
type ruleMeta struct {
	code        string
	description string
}

func (m ruleMeta) Code() string        { return m.code }
func (m ruleMeta) Description() string { return m.description }

// Every catalog rule is a style check, graded as a warning.
func (m ruleMeta) Severity() rules.Severity { return rules.SeverityWarning }

// indentAt reports whether the segment under evaluation sits at the start
// of a line, which is where indentation rules apply.
func indentAt(ctx *rules.Context) bool {
	prev := ctx.PrevRaw()
	return prev == nil || prev.Tok.Kind == token.Newline
}
