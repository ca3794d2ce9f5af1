package xir

// DCEInfo records every instruction removed by a dead-code-elimination
// pass (spec §4.12; original_source/passes/dce.h).
type DCEInfo struct {
	RemovedInstructions []Instruction
}

// isPure reports whether an instruction of this kind may be dropped when
// unused: it has no observable side effect beyond producing its result
// (original_source/passes/dce.h's purity table, generalized over every
// instruction kind this port defines; SPEC_FULL.md Open Question 3).
// Stores, resource writes, atomics, thread-group operations (the block
// barrier among them), prints, asserts, assumes, calls (which may
// themselves have effects the caller can't see into) and every terminator
// are impure. An intrinsic is pure only if it is IntrinsicNop or
// IntrinsicAutodiffGradient.
func isPure(inst Instruction) bool {
	switch inst.InstructionKind() {
	case KindStore, KindResourceWrite, KindAtomic, KindPrint, KindAssert,
		KindAssume, KindCall, KindRasterDiscard, KindRayQueryObjectWrite,
		KindThreadGroup:
		return false
	}
	if inst.InstructionKind() == KindIntrinsic {
		switch inst.(*IntrinsicInst).Op() {
		case IntrinsicNop, IntrinsicAutodiffGradient:
			return true
		}
		return false
	}
	if inst.IsTerminator() {
		return false
	}
	return true
}

// DCERunOnFunction removes every instruction in fn that is pure and has no
// remaining uses, repeating to a fixpoint since removing one dead
// instruction can make its own operands' defining instructions dead in
// turn. An AllocaInst is removed the same way, once nothing uses it at
// all; an alloca that is still the pointer of a Store (directly or through
// a GEP) is kept, together with those stores, since stores are impure.
// Blocks unreachable from the entry block are dropped wholesale
// ("unreachable-code elimination").
func DCERunOnFunction(fn *Function) *DCEInfo {
	info := &DCEInfo{}
	eliminateUnreachableBlocks(fn, info)
	for {
		removedAny := false
		for _, b := range fn.Blocks() {
			for _, inst := range b.Instructions() {
				if !isPure(inst) {
					continue
				}
				if HasUses(inst) {
					continue
				}
				b.Remove(inst)
				info.RemovedInstructions = append(info.RemovedInstructions, inst)
				removedAny = true
			}
		}
		if !removedAny {
			break
		}
	}
	return info
}

// DCERunOnModule runs DCERunOnFunction over every function in m that has a
// body.
func DCERunOnModule(m *Module) map[*Function]*DCEInfo {
	out := map[*Function]*DCEInfo{}
	for _, f := range m.Functions() {
		if f.Kind() == FunctionKindExternal {
			continue
		}
		out[f] = DCERunOnFunction(f)
	}
	return out
}

func eliminateUnreachableBlocks(fn *Function, info *DCEInfo) {
	entry := fn.EntryBlock()
	if entry == nil {
		return
	}
	reachable := map[*BasicBlock]bool{entry: true}
	worklist := []*BasicBlock{entry}
	for len(worklist) > 0 {
		b := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, s := range successorsOf(b) {
			if s != nil && !reachable[s] {
				reachable[s] = true
				worklist = append(worklist, s)
			}
		}
	}
	for _, b := range fn.Blocks() {
		if !reachable[b] {
			for _, inst := range b.Instructions() {
				info.RemovedInstructions = append(info.RemovedInstructions, inst)
			}
			fn.RemoveBlock(b)
		}
	}
}
