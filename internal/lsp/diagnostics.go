package lsp

import (
	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"xir/internal/frontend"
	"xir/internal/frontend/semantic"
)

// ConvertCompileErrors transforms the errors returned by
// frontend.CompileSource into LSP diagnostics for IDE display, dispatching
// on the concrete error type the same way cmd/xirc's reporter does:
// participle syntax errors, semantic.Error scope/flow errors, and a
// *frontend.CompileError wrapping a verification failure deep in IR
// construction.
func ConvertCompileErrors(errs []error) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, err := range errs {
		switch e := err.(type) {
		case participle.Error:
			pos := e.Position()
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    rangeAt(pos.Line, pos.Column, 6),
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("parser"),
				Message:  e.Message(),
			})
		case semantic.Error:
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    rangeAt(e.Pos.Line, e.Pos.Column, 6),
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("check"),
				Message:  e.Message,
			})
		case *frontend.CompileError:
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    rangeAt(1, 1, 1),
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("verify"),
				Message:  e.Error(),
			})
		default:
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    rangeAt(1, 1, 1),
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("xirc"),
				Message:  err.Error(),
			})
		}
	}

	return diagnostics
}

// rangeAt builds an LSP range from a 1-based source line/column, converting
// to the 0-based positions the protocol requires and giving the span a
// rough width so the squiggle stays visible for short tokens.
func rangeAt(line, col, width int) protocol.Range {
	if width <= 0 {
		width = 1
	}
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(maxInt(line-1, 0)),
			Character: uint32(maxInt(col-1, 0)),
		},
		End: protocol.Position{
			Line:      uint32(maxInt(line-1, 0)),
			Character: uint32(maxInt(col-1+width, 0)),
		},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
