package xir

import "fmt"

// VerificationError reports a precondition violation or structural
// invariant break (spec: "Precondition violation" / "Structural invariant
// break"). These are programmer errors, not recoverable conditions: the IR
// layer panics with one rather than returning an error, matching the fail-
// fast policy that governs every builder and transform in this package.
// Callers that sit above the IR layer (the frontend translator, the CLI)
// recover the panic at their outermost call into this package and render it
// as an ordinary diagnostic.
type VerificationError struct {
	Kind    string // "precondition", "structural", "unsupported", "verification"
	Message string
	Value   ValueID
	HasValue bool
}

func (e *VerificationError) Error() string {
	if e.HasValue {
		return fmt.Sprintf("xir: %s: %s (value %%%d)", e.Kind, e.Message, e.Value)
	}
	return fmt.Sprintf("xir: %s: %s", e.Kind, e.Message)
}

func fail(kind, format string, args ...any) {
	panic(&VerificationError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func failValue(kind string, v Value, format string, args ...any) {
	err := &VerificationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if v != nil {
		err.Value = v.ID()
		err.HasValue = true
	}
	panic(err)
}
