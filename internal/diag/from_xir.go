package diag

import (
	"strconv"

	"xir/internal/xir"
)

// FromVerificationError renders a panic recovered from internal/xir as a
// Diagnostic. internal/xir has no source position of its own (spec §7:
// precondition/structural violations are programmer errors caught deep
// inside IR construction, far from the source text that caused them); pos
// is the frontend statement that was being lowered when the panic unwound
// (frontend.CompileError.Pos), so the caret still lands somewhere useful
// instead of defaulting to line 0.
func FromVerificationError(err *xir.VerificationError, pos Position) Diagnostic {
	d := Diagnostic{
		Level:    LevelError,
		Code:     err.Kind,
		Message:  err.Error(),
		Position: pos,
		Length:   1,
	}
	if err.HasValue {
		d.Notes = append(d.Notes, "offending value: %"+strconv.FormatUint(uint64(err.Value), 10))
	}
	return d
}
