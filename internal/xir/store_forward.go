package xir

// LocalStoreForwardInfo maps each forwarded load to the store it was
// forwarded from (spec §4.12; original_source/passes/local_store_forward.h).
// Neither the forwarded loads nor their stores are removed here; a
// forwarded load is left without uses, so DCE reclaims it, while the store
// is impure and stays.
type LocalStoreForwardInfo struct {
	Forwarded map[*LoadInst]*StoreInst
}

// StoreForwardRunOnFunction runs straight-line store-to-load forwarding
// over every block of fn independently, in reverse-postorder so that a
// block's forwarding candidates are resolved after its dominating blocks'
// (spec §4.12).
func StoreForwardRunOnFunction(fn *Function) *LocalStoreForwardInfo {
	info := &LocalStoreForwardInfo{Forwarded: map[*LoadInst]*StoreInst{}}
	entry := fn.EntryBlock()
	if entry == nil {
		return info
	}
	for _, b := range reversePostorder(entry, successorsOf) {
		storeForwardBlock(b, info)
	}
	return info
}

// StoreForwardRunOnModule runs StoreForwardRunOnFunction over every
// function in m that has a body.
func StoreForwardRunOnModule(m *Module) map[*Function]*LocalStoreForwardInfo {
	out := map[*Function]*LocalStoreForwardInfo{}
	for _, f := range m.Functions() {
		if f.Kind() == FunctionKindExternal {
			continue
		}
		out[f] = StoreForwardRunOnFunction(f)
	}
	return out
}

// storeForwardBlock walks one block front to back, tracking the most
// recent known value stored at each pointer operand seen so far, and
// replaces any load from a still-live pointer with that value.
func storeForwardBlock(b *BasicBlock, info *LocalStoreForwardInfo) {
	last := map[Value]*StoreInst{}
	for _, inst := range b.Instructions() {
		switch v := inst.(type) {
		case *StoreInst:
			last[v.Pointer()] = v
		case *LoadInst:
			if st, ok := last[v.Pointer()]; ok {
				ReplaceAllUsesWith(v, st.Value())
				info.Forwarded[v] = st
			}
		case *CallInst, *AtomicInst:
			// A call or atomic may write through any pointer it was handed;
			// conservatively forget every tracked store.
			last = map[Value]*StoreInst{}
		}
	}
}
