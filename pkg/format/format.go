// Package format renders lint results for the terminal: per-file headers
// with their violation rows, and the closing summary table.
package format

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nsxbet/sqlint/pkg/linter"
	"github.com/nsxbet/sqlint/pkg/rules"
	"github.com/nsxbet/sqlint/pkg/version"
)

// Formatter writes human readable lint output. Verbosity widens it: at 0
// only failing files and a short summary appear, 1 adds passing files and
// the readout banner, 2 adds the full summary statistics.
type Formatter struct {
	out     io.Writer
	verbose int
	pass    *color.Color
	fail    *color.Color
}

// New returns a formatter writing to out.
func New(out io.Writer, verbose int, noColor bool) *Formatter {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	if noColor {
		pass.DisableColor()
		fail.DisableColor()
	}
	return &Formatter{out: out, verbose: verbose, pass: pass, fail: fail}
}

// WriteResult renders the whole run: file blocks, then the summary.
func (f *Formatter) WriteResult(res *linter.Result) {
	if f.verbose >= 1 {
		f.banner("readout")
	}
	for _, lf := range res.Files() {
		if lf.IsClean() && f.verbose < 1 {
			continue
		}
		f.WriteFile(lf)
	}
	f.WriteSummary(res.Stats())
}

// WriteFile renders one file header and its violation rows. High verbosity
// adds the per-phase timing line.
func (f *Formatter) WriteFile(lf *linter.LintedFile) {
	fmt.Fprintf(f.out, "== [%s] %s\n", lf.Path, f.status(lf.IsClean()))
	if f.verbose >= 2 {
		fmt.Fprintf(f.out, "== timing: templating %v, lexing %v, parsing %v, linting %v\n",
			lf.Timing.Templating, lf.Timing.Lexing, lf.Timing.Parsing, lf.Timing.Linting)
	}
	for _, v := range lf.Violations {
		fmt.Fprintf(f.out, "L:%4d | P:%4d | %s | %s\n", v.Pos.Line, v.Pos.Col, v.Code, v.Message)
	}
}

// WriteSummary renders the closing statistics table.
func (f *Formatter) WriteSummary(stats linter.Stats) {
	f.banner("summary")
	t := f.newTable()
	if f.verbose >= 2 {
		t.AppendRow(table.Row{"files", stats.Files})
		t.AppendRow(table.Row{"violations", stats.Violations})
		t.AppendRow(table.Row{"clean files", stats.Clean})
		t.AppendRow(table.Row{"unclean files", stats.Unclean})
		t.AppendRow(table.Row{"avg per file", fmt.Sprintf("%.2f", stats.AvgPerFile)})
		t.AppendRow(table.Row{"unclean rate", fmt.Sprintf("%.0f%%", stats.UncleanRate*100)})
	} else {
		t.AppendRow(table.Row{"violations", stats.Violations})
	}
	t.AppendRow(table.Row{"status", f.status(stats.Status == linter.StatusPass)})
	t.Render()
}

// WriteRules renders the rule catalog.
func (f *Formatter) WriteRules(rs []rules.Rule) {
	t := f.newTable()
	t.AppendHeader(table.Row{"code", "severity", "description"})
	for _, r := range rs {
		t.AppendRow(table.Row{r.Code(), r.Severity(), r.Description()})
	}
	t.Render()
}

// WriteDialects renders the known dialect names.
func (f *Formatter) WriteDialects(names []string) {
	t := f.newTable()
	t.AppendHeader(table.Row{"dialect"})
	for _, name := range names {
		t.AppendRow(table.Row{name})
	}
	t.Render()
}

// WriteEnvironment renders the version environment table.
func (f *Formatter) WriteEnvironment(info version.Info) {
	t := f.newTable()
	for _, pair := range info.Environment() {
		t.AppendRow(table.Row{pair[0], pair[1]})
	}
	t.Render()
}

func (f *Formatter) banner(title string) {
	fmt.Fprintf(f.out, "==== %s ====\n", title)
}

func (f *Formatter) status(pass bool) string {
	if pass {
		return f.pass.Sprint(linter.StatusPass)
	}
	return f.fail.Sprint(linter.StatusFail)
}

// newTable returns a borderless two-column writer so the output reads as
// aligned text rather than a boxed grid.
func (f *Formatter) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	style := table.StyleDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = false
	style.Options.SeparateHeader = false
	style.Options.SeparateRows = false
	t.SetStyle(style)
	return t
}
