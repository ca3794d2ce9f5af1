package xir

import "testing"

func TestTraceGEPFlattensChain(t *testing.T) {
	p := NewPool()
	f, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	st := Struct("Inner", []Type{I32, F32})
	arr := Array(st, 4)

	base := builder.AllocaLocal(arr)
	i0 := ZeroConstant(p, I32)
	i1 := NewConstant(p, I32, []byte{1, 0, 0, 0})

	outer := builder.CreateGEP(base, []Value{i0}, st)
	inner := builder.CreateGEP(outer, []Value{i1}, F32)
	builder.ReturnVoid()

	info := TraceGEPRunOnFunction(f)
	if len(info.Traced) != 1 || info.Traced[0] != inner {
		t.Fatalf("expected inner GEP to be reported as flattened, got %v", info.Traced)
	}
	if inner.Base() != base {
		t.Fatalf("flattened GEP base = %v, want root alloca", inner.Base())
	}
	got := inner.Indices()
	if len(got) != 2 || got[0] != i0 || got[1] != i1 {
		t.Fatalf("flattened GEP indices = %v, want [%v %v]", got, i0, i1)
	}
	if HasUses(outer) {
		t.Fatalf("outer GEP should have no remaining uses once flattened away")
	}
}
