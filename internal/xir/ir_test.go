package xir

import "testing"

func TestPoolAllocatesDistinctIDs(t *testing.T) {
	p := NewPool()
	a := p.allocID()
	b := p.allocID()
	if a == b {
		t.Errorf("expected distinct ids, got %d and %d", a, b)
	}
}

func buildSimpleFunction(p *Pool) (*Function, *BasicBlock) {
	f := newFunction(p, FunctionKindKernel, "main", Void)
	b := f.CreateBlock(p)
	return f, b
}

func TestAllocaLoadStoreUseLinkage(t *testing.T) {
	p := NewPool()
	_, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	c := ZeroConstant(p, I32)
	store := builder.CreateStore(alloca, c)
	load := builder.CreateLoad(alloca)
	builder.CreateReturn(nil)

	if !HasUses(alloca) {
		t.Fatalf("expected alloca to have uses")
	}
	uses := alloca.Uses()
	if len(uses) != 2 {
		t.Fatalf("expected 2 uses of alloca, got %d", len(uses))
	}
	if store.Pointer() != alloca {
		t.Errorf("store pointer mismatch")
	}
	if load.Pointer() != alloca {
		t.Errorf("load pointer mismatch")
	}
}

func TestReplaceAllUsesWithRedirectsOnlyOldValue(t *testing.T) {
	p := NewPool()
	_, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	c1 := ZeroConstant(p, I32)
	c2 := ZeroConstant(p, I32)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	s1 := builder.CreateStore(alloca, c1)
	s2 := builder.CreateStore(alloca, c2)
	builder.CreateReturn(nil)

	replacement := ZeroConstant(p, I32)
	ReplaceAllUsesWith(c1, replacement)

	if s1.Value() != replacement {
		t.Errorf("expected s1's value operand to be replaced")
	}
	if s2.Value() == replacement {
		t.Errorf("did not expect s2's value operand to be touched")
	}
	if HasUses(c1) {
		t.Errorf("expected old value to have no remaining uses")
	}
}

func TestBasicBlockInsertAndRemove(t *testing.T) {
	p := NewPool()
	_, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	a := builder.CreateAlloca(I32, AddressSpaceLocal)
	ret := builder.CreateReturn(nil)

	insts := b.Instructions()
	if len(insts) != 2 || insts[0] != Instruction(a) || insts[1] != Instruction(ret) {
		t.Fatalf("unexpected instruction order: %v", insts)
	}

	b.Remove(a)
	insts = b.Instructions()
	if len(insts) != 1 || insts[0] != Instruction(ret) {
		t.Fatalf("expected alloca removed, got %v", insts)
	}
	if HasUses(a) {
		t.Errorf("removed instruction's operand uses should be uninstalled")
	}
}

func TestDeferredInstallBeforeLinking(t *testing.T) {
	p := NewPool()
	c := ZeroConstant(p, I32)

	alloca := NewAlloca(p, I32, AddressSpaceLocal)
	store := NewStore(p, alloca, c)
	if HasUses(alloca) {
		t.Errorf("expected no uses installed before the instruction is linked into a block")
	}

	f := newFunction(p, FunctionKindKernel, "f", Void)
	b := f.CreateBlock(p)
	b.PushBack(alloca)
	b.PushBack(store)

	if !HasUses(alloca) {
		t.Errorf("expected uses installed once linked into a block")
	}
}

func TestStructLayoutAlignsMembers(t *testing.T) {
	st := Struct("S", []Type{I8, I32, I8})
	if st.Size() != 12 {
		t.Errorf("expected padded size 12, got %d", st.Size())
	}
	if st.MemberOffset(1) != 4 {
		t.Errorf("expected second member offset 4, got %d", st.MemberOffset(1))
	}
}

func TestDCERemovesDeadPureInstructions(t *testing.T) {
	p := NewPool()
	f, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	dead := builder.CreateArithmetic(ArithAdd, I32, []Value{ZeroConstant(p, I32), ZeroConstant(p, I32)})
	builder.CreateReturn(nil)

	info := DCERunOnFunction(f)
	found := false
	for _, inst := range info.RemovedInstructions {
		if inst == Instruction(dead) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected dead arithmetic instruction to be removed")
	}
	if len(b.Instructions()) != 1 {
		t.Errorf("expected only the return instruction to remain, got %d", len(b.Instructions()))
	}
}

func TestStoreForwardReplacesLoad(t *testing.T) {
	p := NewPool()
	f, b := buildSimpleFunction(p)
	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(b)

	alloca := builder.CreateAlloca(I32, AddressSpaceLocal)
	c := ZeroConstant(p, I32)
	builder.CreateStore(alloca, c)
	load := builder.CreateLoad(alloca)
	builder.CreateReturn(load)

	info := StoreForwardRunOnFunction(f)
	if len(info.Forwarded) != 1 {
		t.Fatalf("expected 1 forwarded load, got %d", len(info.Forwarded))
	}
	if HasUses(load) {
		t.Errorf("expected load to have no remaining uses after forwarding")
	}
}

func TestDomTreeSimpleDiamond(t *testing.T) {
	p := NewPool()
	f := newFunction(p, FunctionKindKernel, "f", Void)
	entry := f.CreateBlock(p)
	thenB := f.CreateBlock(p)
	elseB := f.CreateBlock(p)
	merge := f.CreateBlock(p)

	eb := NewBuilder(p)
	eb.SetInsertionPointAtEnd(entry)
	eb.CreateIf(ZeroConstant(p, Bool), thenB, elseB, merge)

	tb := NewBuilder(p)
	tb.SetInsertionPointAtEnd(thenB)
	tb.CreateBranch(merge)

	elb := NewBuilder(p)
	elb.SetInsertionPointAtEnd(elseB)
	elb.CreateBranch(merge)

	mb := NewBuilder(p)
	mb.SetInsertionPointAtEnd(merge)
	mb.CreateReturn(nil)

	dt := ComputeDomTree(f)
	if dt.ImmediateDominator(thenB) != entry {
		t.Errorf("expected entry to dominate thenB")
	}
	if dt.ImmediateDominator(merge) != entry {
		t.Errorf("expected entry to be merge's immediate dominator, got %v", dt.ImmediateDominator(merge))
	}
	if !dt.Dominates(entry, merge) {
		t.Errorf("expected entry to dominate merge")
	}
	if dt.StrictlyDominates(merge, merge) {
		t.Errorf("a block does not strictly dominate itself")
	}
}
