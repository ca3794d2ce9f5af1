package xir

import "testing"

func TestPeepholeStoreForwardOnlyLooksAtImmediatePredecessor(t *testing.T) {
	p := NewPool()
	_, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	c := ZeroConstant(p, I32)
	builder.CreateStore(alloca, c)
	load := builder.CreateLoad(alloca)
	builder.CreateReturn(load)

	info := PeepholeStoreForwardRunOnBasicBlock(b)
	if len(info.Forwarded) != 1 {
		t.Fatalf("expected 1 forwarded load, got %d", len(info.Forwarded))
	}
	if HasUses(load) {
		t.Errorf("expected forwarded load to have no remaining uses")
	}
}

func TestPeepholeStoreForwardSkipsWhenNotImmediatelyPreceding(t *testing.T) {
	p := NewPool()
	_, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	other := builder.CreateAlloca(I32, AddressSpaceLocal)
	builder.CreateStore(alloca, ZeroConstant(p, I32))
	builder.CreateLoad(other) // unrelated instruction sits between store and load
	load := builder.CreateLoad(alloca)
	builder.CreateReturn(load)

	info := PeepholeStoreForwardRunOnBasicBlock(b)
	if len(info.Forwarded) != 0 {
		t.Fatalf("expected no forwarding when the store is not the immediately preceding instruction, got %d", len(info.Forwarded))
	}
}
