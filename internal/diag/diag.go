// Package diag renders compiler diagnostics with Rust-style caret markers
// and suggestions, adapted from the contract compiler's error reporter
// (internal/errors/reporter.go in the teacher repository) to this
// compiler's Position/Diagnostic shape.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a Diagnostic.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelNote    Level = "note"
	LevelHelp    Level = "help"
)

// Position locates a diagnostic in source text.
type Position struct {
	Line   int
	Column int
}

// Suggestion proposes a fix for a Diagnostic.
type Suggestion struct {
	Message     string
	Replacement string
}

// Diagnostic is a structured compiler error, warning or note: a primary
// message, the source region it applies to, and optional suggestions/
// notes/help text. Unlike a surface-language parse error, a Diagnostic
// built from a *xir.VerificationError carries no position of its own until
// frontend.CompileError supplies one (internal/xir panics deep inside IR
// construction, far from the statement that triggered it), and Code is the
// VerificationError's Kind ("precondition", "structural", "unsupported",
// "verification") rather than a numbered error code, since this IR layer
// classifies failures by what invariant broke, not by a fixed catalog.
type Diagnostic struct {
	Level       Level
	Code        string
	Message     string
	Position    Position
	Length      int
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Reporter formats diagnostics against one source file.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for filename/source.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders d with Rust-style caret styling and color.
func (r *Reporter) Format(d Diagnostic) string {
	var out strings.Builder

	levelColor := r.levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		fmt.Fprintf(&out, "%s[%s]: %s\n", levelColor(string(d.Level)), d.Code, d.Message)
	} else {
		fmt.Fprintf(&out, "%s: %s\n", levelColor(string(d.Level)), d.Message)
	}

	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&out, "%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column)
	fmt.Fprintf(&out, "%s %s\n", indent, dim("│"))

	if d.Position.Line > 1 && d.Position.Line-1 < len(r.lines) {
		fmt.Fprintf(&out, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, d.Position.Line-1)), dim("│"), r.lines[d.Position.Line-2])
	}

	if d.Position.Line <= len(r.lines) && d.Position.Line > 0 {
		fmt.Fprintf(&out, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, d.Position.Line)), dim("│"), r.lines[d.Position.Line-1])
		fmt.Fprintf(&out, "%s %s %s\n", indent, dim("│"), r.marker(d.Position.Column, d.Length, d.Level))
	}

	if d.Position.Line < len(r.lines) {
		fmt.Fprintf(&out, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, d.Position.Line+1)), dim("│"), r.lines[d.Position.Line])
	}

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&out, "%s %s\n", indent, dim("│"))
		cyan := color.New(color.FgCyan).SprintFunc()
		for i, s := range d.Suggestions {
			if i == 0 {
				fmt.Fprintf(&out, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), s.Message)
			} else {
				fmt.Fprintf(&out, "%s %s %s\n", indent, cyan("    "), s.Message)
			}
			if s.Replacement != "" {
				fmt.Fprintf(&out, "%s %s\n", indent, dim("│"))
				repl := strings.ReplaceAll(s.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, dim("│")))
				fmt.Fprintf(&out, "%s %s %s\n", indent, cyan("│"), cyan(repl))
			}
		}
	}

	for _, note := range d.Notes {
		blue := color.New(color.FgBlue).SprintFunc()
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, dim("│"), blue("note:"), note)
	}

	if d.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, dim("│"), green("help:"), d.HelpText)
	}

	out.WriteString("\n")
	return out.String()
}

func (r *Reporter) levelColor(level Level) func(...interface{}) string {
	switch level {
	case LevelError:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case LevelWarning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case LevelNote:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case LevelHelp:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int, level Level) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", maxInt(0, column-1))
	var markerColor func(...interface{}) string
	switch level {
	case LevelWarning:
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		markerColor = color.New(color.FgRed, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	w := len(fmt.Sprintf("%d", line))
	if w < 3 {
		w = 3
	}
	return w
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
