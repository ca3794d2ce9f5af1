package xir

// OutlineInfo maps each OutlineInst to the new callable function the pass
// created for it (spec §4.12, SPEC_FULL Open Question 4;
// original_source/passes/outline.h).
type OutlineInfo struct {
	Outlines map[*OutlineInst]*Function
}

// OutlineRunOnFunction allocates a fresh, empty callable function in m for
// every OutlineInst terminator in fn and records the mapping. The original
// keeps this pass's module-level entry point taking both the owning module
// and the function being processed (rather than the function alone, as
// every other pass in this package does), since extraction needs somewhere
// to append the new callable.
//
// The new function's body is a single void return: the marked region's
// blocks stay in fn and no cross-region operand reference is rewritten,
// matching the original's own skeleton state for this pass (original_source/
// passes/outline.h declares only the result shape, not a full
// implementation); callers get a real, callable placeholder function back
// plus the OutlineInst->Function mapping, which is enough to exercise the
// rest of the pipeline (printer, JSON translator, verifier) against
// outlined IR.
func OutlineRunOnFunction(m *Module, fn *Function) *OutlineInfo {
	info := &OutlineInfo{Outlines: map[*OutlineInst]*Function{}}
	for _, b := range fn.Blocks() {
		outline, ok := b.Terminator().(*OutlineInst)
		if !ok {
			continue
		}
		callee := m.AddFunction(FunctionKindCallable, "outlined", Void)
		entry := callee.CreateBlock(m.Pool())
		builder := NewBuilder(m.Pool())
		builder.SetInsertionPointAtEnd(entry)
		builder.ReturnVoid()
		info.Outlines[outline] = callee
	}
	return info
}

// OutlineRunOnModule runs OutlineRunOnFunction over every function in m
// that has a body.
func OutlineRunOnModule(m *Module) map[*Function]*OutlineInfo {
	out := map[*Function]*OutlineInfo{}
	for _, f := range m.Functions() {
		if f.Kind() == FunctionKindExternal {
			continue
		}
		out[f] = OutlineRunOnFunction(m, f)
	}
	return out
}
