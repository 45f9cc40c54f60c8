package linter

import (
	"fmt"
	"time"

	"github.com/nsxbet/sqlint/pkg/parser"
	"github.com/nsxbet/sqlint/pkg/rules"
)

// Run status values.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Exit codes for the command line, BSD sysexits style.
const (
	// ExitOK means the run finished with no violations.
	ExitOK = 0
	// ExitFail means the run finished and found violations.
	ExitFail = 65
	// ExitConfig means the run could not start: unknown dialect, rule,
	// templater, unreadable path or broken configuration.
	ExitConfig = 66
)

// LintedFile is the outcome of linting one source.
type LintedFile struct {
	// Path is the file path, or "<stdin>".
	Path string

	// Violations holds every finding, sorted by line, column, code.
	Violations []rules.Violation

	// Tree is the parsed segment tree the rules ran against.
	Tree *parser.Segment

	// Timing records how long each pipeline phase took.
	Timing Timing
}

// NumViolations returns the number of findings in the file.
func (f *LintedFile) NumViolations() int { return len(f.Violations) }

// IsClean reports whether the file has no findings.
func (f *LintedFile) IsClean() bool { return len(f.Violations) == 0 }

// Timing records per-phase durations for one file.
type Timing struct {
	Templating time.Duration
	Lexing     time.Duration
	Parsing    time.Duration
	Linting    time.Duration
}

// Total returns the summed duration of all phases.
func (t Timing) Total() time.Duration {
	return t.Templating + t.Lexing + t.Parsing + t.Linting
}

// LintedPath groups the files linted for one path argument, in discovery
// order.
type LintedPath struct {
	Path  string
	Files []*LintedFile
}

// NumViolations returns the number of findings under the path.
func (p *LintedPath) NumViolations() int {
	n := 0
	for _, f := range p.Files {
		n += f.NumViolations()
	}
	return n
}

// ParsedFile is the outcome of parsing one source without linting it.
type ParsedFile struct {
	Path string
	Tree *parser.Segment
}

// Result is the outcome of one whole lint run.
type Result struct {
	// Paths holds one entry per path argument, in argument order.
	Paths []*LintedPath
}

// Files returns every linted file across all paths, in run order.
func (r *Result) Files() []*LintedFile {
	var out []*LintedFile
	for _, p := range r.Paths {
		out = append(out, p.Files...)
	}
	return out
}

// NumViolations returns the number of findings in the whole run.
func (r *Result) NumViolations() int {
	n := 0
	for _, p := range r.Paths {
		n += p.NumViolations()
	}
	return n
}

// Stats computes aggregate statistics for the run.
func (r *Result) Stats() Stats {
	s := Stats{Status: StatusPass, ExitCode: ExitOK}
	for _, f := range r.Files() {
		s.Files++
		s.Violations += f.NumViolations()
		if f.IsClean() {
			s.Clean++
		} else {
			s.Unclean++
		}
	}
	if s.Files > 0 {
		s.AvgPerFile = float64(s.Violations) / float64(s.Files)
		s.UncleanRate = float64(s.Unclean) / float64(s.Files)
	}
	if s.Violations > 0 {
		s.Status = StatusFail
		s.ExitCode = ExitFail
	}
	return s
}

// Stats summarizes a lint run.
type Stats struct {
	// Files is the number of files linted.
	Files int

	// Violations is the total number of findings.
	Violations int

	// Clean and Unclean count files with zero and nonzero findings.
	Clean   int
	Unclean int

	// AvgPerFile is Violations divided by Files.
	AvgPerFile float64

	// UncleanRate is Unclean divided by Files.
	UncleanRate float64

	// Status is StatusPass or StatusFail.
	Status string

	// ExitCode is the exit code the run should finish with.
	ExitCode int
}

// String returns a one-line human readable summary.
//
// Example output:
//
//	5 violations in 3 files (2 clean, 1 unclean): FAIL
func (s Stats) String() string {
	return fmt.Sprintf("%d violations in %d files (%d clean, %d unclean): %s",
		s.Violations, s.Files, s.Clean, s.Unclean, s.Status)
}
