package xir

// TraceGEPInfo records every GEP flattened by the pass: a chain of
// GEP-of-GEP instructions collapsed into one GEP against the root base
// with a concatenated index list (spec §4.12;
// original_source/passes/trace_gep.h's x/y/z worked example).
type TraceGEPInfo struct {
	Traced []*GEPInst
}

// TraceGEPRunOnFunction flattens every chain of GEP-of-GEP in fn: a GEP
// whose base operand is itself the result of another GEP is rewritten to
// index directly off that GEP's own base, with the two index chains
// concatenated in order.
func TraceGEPRunOnFunction(fn *Function) *TraceGEPInfo {
	info := &TraceGEPInfo{}
	for _, b := range fn.Blocks() {
		for _, inst := range b.Instructions() {
			gep, ok := inst.(*GEPInst)
			if !ok {
				continue
			}
			if traceGEPChain(gep) {
				info.Traced = append(info.Traced, gep)
			}
		}
	}
	return info
}

// TraceGEPRunOnModule runs TraceGEPRunOnFunction over every function in m
// that has a body.
func TraceGEPRunOnModule(m *Module) map[*Function]*TraceGEPInfo {
	out := map[*Function]*TraceGEPInfo{}
	for _, f := range m.Functions() {
		if f.Kind() == FunctionKindExternal {
			continue
		}
		out[f] = TraceGEPRunOnFunction(f)
	}
	return out
}

// traceGEPChain flattens gep's base chain in place, returning true if any
// flattening occurred.
func traceGEPChain(gep *GEPInst) bool {
	baseGEP, ok := gep.Base().(*GEPInst)
	if !ok {
		return false
	}
	flattened := false
	for {
		indices := append(append([]Value{}, baseGEP.Indices()...), gep.Indices()...)
		gep.SetOperand(0, baseGEP.Base())
		gep.setOperandCount(1 + len(indices))
		for i := len(gep.operands) - 1; i >= 1; i-- {
			gep.SetOperand(i, nil)
		}
		for n, idx := range indices {
			gep.SetOperand(n+1, idx)
		}
		flattened = true
		next, ok := gep.Base().(*GEPInst)
		if !ok {
			break
		}
		baseGEP = next
	}
	return flattened
}
