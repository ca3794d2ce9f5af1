// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"

	"xir/internal/diag"
	"xir/internal/frontend"
	"xir/internal/frontend/semantic"
	"xir/internal/xir/text"
)

const PROMPT = ">> "

// Start runs a read-eval-print loop over in: each iteration reads one
// kernel-source function declaration (accumulating lines until its braces
// balance), translates it into a throwaway module, and prints the
// resulting XIR, mirroring the host's REPL's role relative to its own
// language.
func Start(in io.Writer, out io.Writer, src io.Reader) {
	scanner := bufio.NewScanner(src)

	for {
		fmt.Fprint(in, PROMPT)
		source, ok := readFunction(scanner)
		if !ok {
			return
		}
		if strings.TrimSpace(source) == "" {
			continue
		}

		mod, errs := frontend.CompileSource("<repl>", source, "repl")
		if len(errs) > 0 {
			reportErrors(out, source, errs)
			continue
		}
		fmt.Fprintln(out, text.Print(mod, false))
	}
}

// readFunction accumulates lines from scanner until every brace opened has
// been closed, so a multi-line "kernel fn ... { ... }" can be typed across
// several prompts. Returns ok=false at end of input.
func readFunction(scanner *bufio.Scanner) (string, bool) {
	var b strings.Builder
	depth := 0
	sawBrace := false

	for scanner.Scan() {
		line := scanner.Text()
		b.WriteString(line)
		b.WriteString("\n")

		for _, r := range line {
			switch r {
			case '{':
				depth++
				sawBrace = true
			case '}':
				depth--
			}
		}

		if sawBrace && depth <= 0 {
			return b.String(), true
		}
		if !sawBrace && strings.HasSuffix(strings.TrimSpace(line), ";") {
			return b.String(), true
		}
	}
	return b.String(), b.Len() > 0
}

func reportErrors(out io.Writer, source string, errs []error) {
	reporter := diag.NewReporter("<repl>", source)
	for _, err := range errs {
		switch e := err.(type) {
		case participle.Error:
			pos := e.Position()
			fmt.Fprint(out, reporter.Format(diag.Diagnostic{
				Level:    diag.LevelError,
				Message:  e.Message(),
				Position: diag.Position{Line: pos.Line, Column: pos.Column},
				Length:   1,
			}))
		case semantic.Error:
			fmt.Fprint(out, reporter.Format(diag.Diagnostic{
				Level:    diag.LevelError,
				Message:  e.Message,
				Position: diag.Position{Line: e.Pos.Line, Column: e.Pos.Column},
				Length:   1,
			}))
		case *frontend.CompileError:
			pos := diag.Position{Line: e.Pos.Line, Column: e.Pos.Column}
			fmt.Fprint(out, reporter.Format(diag.FromVerificationError(e.Err, pos)))
		default:
			fmt.Fprintf(out, "error: %s\n", err)
		}
	}
}
