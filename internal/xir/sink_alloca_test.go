package xir

import "testing"

func TestSinkAllocaMovesSingleUseAllocaToItsUser(t *testing.T) {
	p := NewPool()
	f, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	unrelated := builder.CreateArithmetic(ArithAdd, I32, []Value{ZeroConstant(p, I32), ZeroConstant(p, I32)})
	store := builder.CreateStore(alloca, ZeroConstant(p, I32))
	builder.CreateReturn(nil)

	info := SinkAllocaRunOnFunction(f)
	if len(info.Sunken) != 1 || info.Sunken[0] != alloca {
		t.Fatalf("expected alloca reported as sunk, got %v", info.Sunken)
	}

	insts := b.Instructions()
	var allocaIdx, storeIdx, unrelatedIdx int
	for i, inst := range insts {
		switch inst {
		case Instruction(alloca):
			allocaIdx = i
		case Instruction(store):
			storeIdx = i
		case Instruction(unrelated):
			unrelatedIdx = i
		}
	}
	if allocaIdx != storeIdx-1 {
		t.Fatalf("expected alloca to sit immediately before its sole user: alloca at %d, store at %d", allocaIdx, storeIdx)
	}
	if unrelatedIdx >= allocaIdx {
		t.Fatalf("expected alloca to move past the unrelated instruction, unrelated at %d, alloca at %d", unrelatedIdx, allocaIdx)
	}
}

func TestSinkAllocaLeavesMultiUseAllocaInPlace(t *testing.T) {
	p := NewPool()
	f, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	builder.CreateStore(alloca, ZeroConstant(p, I32))
	builder.CreateLoad(alloca)
	builder.CreateReturn(nil)

	info := SinkAllocaRunOnFunction(f)
	if len(info.Sunken) != 0 {
		t.Fatalf("expected an alloca with 2 uses to stay in place, got sunk=%v", info.Sunken)
	}
	if b.Instructions()[0] != Instruction(alloca) {
		t.Fatalf("expected alloca to remain the first instruction")
	}
}
