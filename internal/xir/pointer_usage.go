package xir

// PointerUsage classifies how a pointer value is touched across a block:
// Kill bits mark fields fully overwritten (dead before they're read),
// Touch bits mark fields read or written at all, and Live bits mark fields
// whose current value may still be observed by a later read (spec
// §4.12-adjacent; original_source/passes/pointer_usage.h, which declares
// only this data shape — the analysis entry point itself is supplemented
// here, since the header ends without one).
type PointerUsage struct {
	Kill  *AggregateFieldBitmask
	Touch *AggregateFieldBitmask
	Live  *AggregateFieldBitmask
}

// PointerUsageMap associates each pointer-typed value observed in a block
// with its usage classification.
type PointerUsageMap map[Value]*PointerUsage

// BasicBlockPointerUsage holds the usage map flowing into (In) and out of
// (Out) one basic block, for the backward liveness-style propagation
// ComputePointerUsage performs.
type BasicBlockPointerUsage struct {
	In, Out PointerUsageMap
}

func newPointerUsage(elemType Type) *PointerUsage {
	return &PointerUsage{
		Kill:  NewAggregateFieldBitmask(elemType),
		Touch: NewAggregateFieldBitmask(elemType),
		Live:  NewAggregateFieldBitmask(elemType),
	}
}

// ComputePointerUsage computes, for every block in fn, which fields of
// every local pointer (Alloca result) are killed, touched and live on
// entry and exit, via one backward fixpoint pass over the CFG: Live(block)
// starts from the union of successors' Live(entry), propagated backward
// through the block's stores (which kill the fields they fully overwrite)
// and loads (which mark the fields they read as live), matching the
// Killed/Touched/Live definitions in the original header.
func ComputePointerUsage(fn *Function) map[*BasicBlock]*BasicBlockPointerUsage {
	result := map[*BasicBlock]*BasicBlockPointerUsage{}
	blocks := fn.Blocks()
	for _, b := range blocks {
		result[b] = &BasicBlockPointerUsage{In: PointerUsageMap{}, Out: PointerUsageMap{}}
	}

	changed := true
	for changed {
		changed = false
		for i := len(blocks) - 1; i >= 0; i-- {
			b := blocks[i]
			bbu := result[b]
			out := PointerUsageMap{}
			for _, s := range successorsOf(b) {
				if s == nil {
					continue
				}
				for ptr, usage := range result[s].In {
					merged, ok := out[ptr]
					if !ok {
						merged = newPointerUsage(ptr.Type().Elem())
						out[ptr] = merged
					}
					merged.Live = merged.Live.Or(usage.Live)
				}
			}
			bbu.Out = out

			in := clonePointerUsageMap(out)
			for idx := len(b.Instructions()) - 1; idx >= 0; idx-- {
				inst := b.Instructions()[idx]
				switch v := inst.(type) {
				case *StoreInst:
					ptr := v.Pointer()
					usage := ensurePointerUsage(in, ptr)
					usage.Touch = fullMask(ptr)
					usage.Kill = fullMask(ptr)
					usage.Live = NewAggregateFieldBitmask(ptr.Type().Elem())
				case *LoadInst:
					ptr := v.Pointer()
					usage := ensurePointerUsage(in, ptr)
					usage.Touch = fullMask(ptr)
					usage.Live = fullMask(ptr)
				}
			}
			if !mapsEqual(bbu.In, in) {
				bbu.In = in
				changed = true
			}
		}
	}
	return result
}

func ensurePointerUsage(m PointerUsageMap, ptr Value) *PointerUsage {
	if u, ok := m[ptr]; ok {
		return u
	}
	u := newPointerUsage(ptr.Type().Elem())
	m[ptr] = u
	return u
}

func fullMask(ptr Value) *AggregateFieldBitmask {
	mask := NewAggregateFieldBitmask(ptr.Type().Elem())
	for i := 0; i < mask.Size(); i++ {
		mask.Set(i, true)
	}
	return mask
}

func clonePointerUsageMap(m PointerUsageMap) PointerUsageMap {
	out := make(PointerUsageMap, len(m))
	for k, v := range m {
		out[k] = &PointerUsage{Kill: v.Kill, Touch: v.Touch, Live: v.Live}
	}
	return out
}

func mapsEqual(a, b PointerUsageMap) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !bitmaskEqual(av.Live, bv.Live) {
			return false
		}
	}
	return true
}

func bitmaskEqual(a, b *AggregateFieldBitmask) bool {
	if a.nbits != b.nbits {
		return false
	}
	for i := 0; i < a.nbits; i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}
