package xir

// LocalLoadEliminationInfo maps each eliminated load to the earlier load it
// was replaced by (spec §4.12;
// original_source/passes/local_load_elimination.h).
type LocalLoadEliminationInfo struct {
	Eliminated map[*LoadInst]*LoadInst
}

// LoadEliminationRunOnFunction replaces any load from a pointer that was
// already loaded earlier in the same straight-line block (with no
// intervening store/call/atomic to that pointer) with the first load's
// result, over every block of fn (spec §4.12).
func LoadEliminationRunOnFunction(fn *Function) *LocalLoadEliminationInfo {
	info := &LocalLoadEliminationInfo{Eliminated: map[*LoadInst]*LoadInst{}}
	for _, b := range fn.Blocks() {
		loadEliminationBlock(b, info)
	}
	return info
}

// LoadEliminationRunOnModule runs LoadEliminationRunOnFunction over every
// function in m that has a body.
func LoadEliminationRunOnModule(m *Module) map[*Function]*LocalLoadEliminationInfo {
	out := map[*Function]*LocalLoadEliminationInfo{}
	for _, f := range m.Functions() {
		if f.Kind() == FunctionKindExternal {
			continue
		}
		out[f] = LoadEliminationRunOnFunction(f)
	}
	return out
}

func loadEliminationBlock(b *BasicBlock, info *LocalLoadEliminationInfo) {
	firstLoad := map[Value]*LoadInst{}
	for _, inst := range b.Instructions() {
		switch v := inst.(type) {
		case *LoadInst:
			if fl, ok := firstLoad[v.Pointer()]; ok {
				ReplaceAllUsesWith(v, fl)
				info.Eliminated[v] = fl
				continue
			}
			firstLoad[v.Pointer()] = v
		case *StoreInst:
			delete(firstLoad, v.Pointer())
		case *CallInst, *AtomicInst:
			firstLoad = map[Value]*LoadInst{}
		}
	}
}
