package xir

// SinkAllocaInfo records every alloca sunk closer to its first use (spec
// §4.12; original_source/passes/sink_alloca.h). The original keeps this
// pass a skeleton pending a fuller escape analysis; this port matches
// that scope rather than inventing a more complete sink than the source
// material specifies.
type SinkAllocaInfo struct {
	Sunken []*AllocaInst
}

// SinkAllocaRunOnFunction moves every AllocaInst in fn's entry block that
// has exactly one using instruction to sit immediately before that
// instruction, shrinking the live range of the reserved storage. Allocas
// with zero or multiple uses are left in place.
func SinkAllocaRunOnFunction(fn *Function) *SinkAllocaInfo {
	info := &SinkAllocaInfo{}
	entry := fn.EntryBlock()
	if entry == nil {
		return info
	}
	for _, inst := range entry.Instructions() {
		alloca, ok := inst.(*AllocaInst)
		if !ok {
			continue
		}
		uses := alloca.Uses()
		if len(uses) != 1 {
			continue
		}
		user, ok := uses[0].User().(Instruction)
		if !ok || user.Block() == nil || user == alloca {
			continue
		}
		entry.Remove(alloca)
		user.Block().InsertBefore(user, alloca)
		info.Sunken = append(info.Sunken, alloca)
	}
	return info
}

// SinkAllocaRunOnModule runs SinkAllocaRunOnFunction over every function in
// m that has a body.
func SinkAllocaRunOnModule(m *Module) map[*Function]*SinkAllocaInfo {
	out := map[*Function]*SinkAllocaInfo{}
	for _, f := range m.Functions() {
		if f.Kind() == FunctionKindExternal {
			continue
		}
		out[f] = SinkAllocaRunOnFunction(f)
	}
	return out
}
