package xir

// Verify checks fn's structural invariants and panics with a
// *VerificationError at the first violation found (spec §7's fail-fast
// policy): every block, empty ones included, must end in exactly one
// terminator, every operand must resolve to a value that is
// itself reachable (an argument, a constant, or an instruction belonging to
// some block of the same function), every Phi's incoming-block count must
// match its incoming-value count, and every structured control-flow
// instruction must directly own the blocks it names (spec §3 Invariants,
// §4.5's block-ownership rule).
func Verify(fn *Function) {
	blockSet := map[*BasicBlock]bool{}
	for _, b := range fn.Blocks() {
		blockSet[b] = true
	}
	for _, b := range fn.Blocks() {
		verifyBlock(fn, b, blockSet)
		verifyBlockOwnership(fn, b)
	}
}

// verifyBlockOwnership checks that every block named by a structured
// control-flow instruction in b is owned by that instruction, not merely
// present in the function's flat block list.
func verifyBlockOwnership(fn *Function, b *BasicBlock) {
	last := b.Last()
	if last == nil {
		return
	}
	var named []*BasicBlock
	switch inst := last.(type) {
	case *IfInst:
		named = []*BasicBlock{inst.TrueBlock(), inst.FalseBlock(), inst.Merge()}
	case *SwitchInst:
		named = append(named, inst.Default(), inst.Merge())
		for _, c := range inst.Cases() {
			named = append(named, c.Block)
		}
	case *LoopInst:
		named = []*BasicBlock{inst.Prepare(), inst.Body(), inst.Merge()}
	case *SimpleLoopInst:
		named = []*BasicBlock{inst.Body(), inst.Merge()}
	case *OutlineInst:
		named = []*BasicBlock{inst.Target(), inst.Merge()}
	default:
		return
	}
	for _, nb := range named {
		if nb == nil {
			continue
		}
		if nb.Owner() != Value(last) {
			failValue("structural", last, "function %q: block is not owned by the control-flow instruction that names it", fn.Name())
		}
	}
}

func verifyBlock(fn *Function, b *BasicBlock, blockSet map[*BasicBlock]bool) {
	insts := b.Instructions()
	if len(insts) == 0 {
		fail("structural", "function %q: block has no terminator", fn.Name())
	}
	last := insts[len(insts)-1]
	if !last.IsTerminator() {
		failValue("structural", last, "function %q: block does not end in a terminator", fn.Name())
	}
	for i, inst := range insts {
		if inst.IsTerminator() && i != len(insts)-1 {
			failValue("structural", inst, "function %q: terminator is not the last instruction in its block", fn.Name())
		}
		if phi, ok := inst.(*PhiInst); ok {
			if len(phi.IncomingBlocks()) != len(phi.Incoming()) {
				failValue("structural", phi, "phi has %d incoming blocks but %d incoming values", len(phi.IncomingBlocks()), len(phi.Incoming()))
			}
		}
		for _, op := range inst.Operands() {
			verifyOperand(fn, inst, op, blockSet)
		}
	}
	if term := b.Terminator(); term != nil {
		for _, succ := range term.Successors() {
			if succ != nil && !blockSet[succ] {
				failValue("structural", term, "terminator targets a block outside this function")
			}
		}
	}
}

func verifyOperand(fn *Function, user Instruction, op Value, blockSet map[*BasicBlock]bool) {
	if op == nil {
		failValue("precondition", user, "instruction has an unset operand")
	}
	switch v := op.(type) {
	case Instruction:
		if v.Block() == nil || !blockSet[v.Block()] {
			failValue("structural", user, "operand instruction does not belong to function %q", fn.Name())
		}
	case *Argument:
		found := false
		for _, a := range fn.Arguments() {
			if a == v {
				found = true
				break
			}
		}
		if !found {
			failValue("structural", user, "operand argument does not belong to function %q", fn.Name())
		}
	}
}
