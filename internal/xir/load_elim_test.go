package xir

import "testing"

func TestLoadEliminationReplacesRedundantLoad(t *testing.T) {
	p := NewPool()
	f, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	first := builder.CreateLoad(alloca)
	second := builder.CreateLoad(alloca)
	builder.CreateReturn(second)

	info := LoadEliminationRunOnFunction(f)
	got, ok := info.Eliminated[second]
	if !ok || got != first {
		t.Fatalf("expected second load eliminated in favor of first, got %v, ok=%v", got, ok)
	}
	if HasUses(second) {
		t.Errorf("expected eliminated load to have no remaining uses")
	}
}

func TestLoadEliminationStopsAtIntveningStore(t *testing.T) {
	p := NewPool()
	f, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	builder.CreateLoad(alloca)
	builder.CreateStore(alloca, ZeroConstant(p, I32))
	second := builder.CreateLoad(alloca)
	builder.CreateReturn(second)

	info := LoadEliminationRunOnFunction(f)
	if _, ok := info.Eliminated[second]; ok {
		t.Fatalf("a store between the two loads should block elimination")
	}
}
