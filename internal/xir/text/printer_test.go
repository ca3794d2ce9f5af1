package text

import (
	"fmt"
	"strings"
	"testing"

	"xir/internal/xir"
)

// buildMulAddKernel builds a kernel computing a*b + b and returning it,
// matching the printer's stable-output guarantee (spec §4.14's "single
// traversal" requirement, §6's grammar). Identifiers are whatever ValueID
// the pool assigns in construction order; callers read the exact numbers
// off the returned values rather than hardcoding them.
func buildMulAddKernel() (m *xir.Module, fn *xir.Function, a, b, mul, add, ret xir.Value) {
	m = xir.NewModule()
	p := m.Pool()
	fn = m.AddFunction(xir.FunctionKindKernel, "main", xir.F32)
	a = fn.AddArgument(p, xir.F32, false)
	b = fn.AddArgument(p, xir.F32, false)

	entry := fn.CreateBlock(p)
	builder := xir.NewBuilder(p)
	builder.SetInsertionPointAtEnd(entry)

	mul = builder.CreateArithmetic(xir.ArithMul, xir.F32, []xir.Value{a, b})
	add = builder.CreateArithmetic(xir.ArithAdd, xir.F32, []xir.Value{mul, b})
	ret = builder.CreateReturn(add)

	return m, fn, a, b, mul, add, ret
}

func idOf(v xir.Value) string { return fmt.Sprintf("%d", v.ID()) }

func TestPrintMulAddKernel(t *testing.T) {
	m, fn, a, b, mul, add, ret := buildMulAddKernel()

	out := Print(m, false)
	flat := strings.Join(strings.Fields(out), " ")

	wantHeader := fmt.Sprintf("kernel %%%s: f32(%%%s: f32, %%%s: f32) = define {", idOf(fn), idOf(a), idOf(b))
	if !strings.HasPrefix(flat, wantHeader) {
		t.Fatalf("printed output has unexpected header.\ngot:  %s\nwant prefix: %s", flat, wantHeader)
	}

	wantBody := fmt.Sprintf("%%%s: f32 = mul %%%s, %%%s; %%%s: f32 = add %%%s, %%%s; %%%s: void = return %%%s;",
		idOf(mul), idOf(a), idOf(b), idOf(add), idOf(mul), idOf(b), idOf(ret), idOf(add))
	if !strings.Contains(flat, wantBody) {
		t.Fatalf("printed output missing expected instruction sequence.\ngot:  %s\nwant substring: %s", flat, wantBody)
	}
}

func TestPrintIsDeterministic(t *testing.T) {
	m, _, _, _, _, _, _ := buildMulAddKernel()
	a := Print(m, false)
	b := Print(m, false)
	if a != b {
		t.Fatalf("Print is not deterministic across repeated calls on the same module:\n%s\n---\n%s", a, b)
	}
}

func TestParseRoundTripsPrintedModule(t *testing.T) {
	m, _, _, _, _, _, _ := buildMulAddKernel()
	src := Print(m, false)

	parsed, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed on Print's own output: %v\nsource:\n%s", err, src)
	}
	if len(parsed.Decls) != 1 || parsed.Decls[0].Func == nil {
		t.Fatalf("expected exactly one func decl, got %d decls", len(parsed.Decls))
	}
	fn := parsed.Decls[0].Func
	if fn.Kind != "kernel" {
		t.Fatalf("parsed func kind = %q, want kernel", fn.Kind)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("parsed func has %d params, want 2", len(fn.Params))
	}
	if len(fn.Blocks) != 1 || len(fn.Blocks[0].Instrs) != 3 {
		t.Fatalf("parsed func body shape mismatch: %d blocks", len(fn.Blocks))
	}
}
