package xir

// sentinelInst is the head/tail marker of a BasicBlock's instruction list.
// It is never a real instruction (it carries no operands and never appears
// in Instructions()), but its Block() is the owning block, so an
// instruction spliced next to it inherits that block, matching the
// original's sentinel-bounded intrusive list (original_source/instruction.h).
type sentinelInst struct {
	instBase
}

func newSentinel() *sentinelInst {
	s := &sentinelInst{}
	s.self = s
	return s
}

// BasicBlock is a straight-line sequence of instructions ending in exactly
// one terminator once fully built (spec §3, §4.1). Instructions are held in
// a doubly linked list bounded by head/tail sentinels so that insertion,
// removal and splicing are O(1) at any position.
type BasicBlock struct {
	valueBase
	head, tail *sentinelInst
	fn         *Function
	owner      Value
}

func newBasicBlock(p *Pool) *BasicBlock {
	b := &BasicBlock{head: newSentinel(), tail: newSentinel()}
	b.init(p, Void)
	b.head.next = b.tail
	b.tail.prev = b.head
	b.head.block = b
	b.tail.block = b
	return b
}

func (b *BasicBlock) ValueKind() ValueKind { return ValueKindBasicBlock }

// Function returns the function this block belongs to, or nil if it has
// not yet been attached to one.
func (b *BasicBlock) Function() *Function { return b.fn }

// Owner returns the value that directly owns this block: the Function
// itself for a plain branch-target block, or the structured control-flow
// instruction (If/Switch/Loop/SimpleLoop/Outline) that names it as one of
// its then/else/merge/prepare/body/case/target blocks (spec §3 Invariants,
// §4.5's block-ownership rule). Every block has an owner once it is
// reachable from a function; a block fresh off Function.CreateBlock is
// owned by the function until a control-flow instruction claims it.
func (b *BasicBlock) Owner() Value { return b.owner }

// setOwner reassigns direct ownership, used by Function.CreateBlock and by
// the NewIf/NewSwitch/NewLoop/NewSimpleLoop/NewOutline constructors when
// they claim the blocks they name.
func (b *BasicBlock) setOwner(v Value) { b.owner = v }

// First returns the block's first real instruction, or nil if empty.
func (b *BasicBlock) First() Instruction {
	if n := b.head.next; n != b.tail {
		return n
	}
	return nil
}

// Last returns the block's last real instruction, or nil if empty.
func (b *BasicBlock) Last() Instruction {
	if p := b.tail.prev; p != b.head {
		return p
	}
	return nil
}

// Terminator returns the block's terminator instruction, or nil if the
// block does not yet end in one (spec §4.1: every well-formed block ends
// in exactly one terminator, but a block under construction may not).
func (b *BasicBlock) Terminator() Terminator {
	last := b.Last()
	if last == nil {
		return nil
	}
	if t, ok := last.(Terminator); ok {
		return t
	}
	return nil
}

// Instructions returns every real instruction in the block, in list order.
func (b *BasicBlock) Instructions() []Instruction {
	out := make([]Instruction, 0)
	for i := b.head.next; i != b.tail; i = i.Next() {
		out = append(out, i)
	}
	return out
}

// IsEmpty reports whether the block holds no real instructions.
func (b *BasicBlock) IsEmpty() bool { return b.head.next == b.tail }

// InsertBefore splices inst immediately before mark. mark must already be
// linked into this block (or be the block's tail sentinel, reached via
// PushBack's internal use).
func (b *BasicBlock) InsertBefore(mark, inst Instruction) {
	insertInstBefore(mark, inst)
}

// InsertAfter splices inst immediately after mark.
func (b *BasicBlock) InsertAfter(mark, inst Instruction) {
	insertInstAfter(mark, inst)
}

// PushBack appends inst as the block's new last instruction.
func (b *BasicBlock) PushBack(inst Instruction) {
	insertInstBefore(b.tail, inst)
}

// PushFront prepends inst as the block's new first instruction.
func (b *BasicBlock) PushFront(inst Instruction) {
	insertInstAfter(b.head, inst)
}

// Remove unlinks inst from this block's instruction list.
func (b *BasicBlock) Remove(inst Instruction) {
	removeInst(inst)
}

// Predecessors returns every block in fn whose terminator lists b as a
// successor. This is computed on demand (not cached) since callers that
// need it repeatedly (dominator construction) build their own CFG maps.
func (b *BasicBlock) Predecessors(fn *Function) []*BasicBlock {
	var preds []*BasicBlock
	for _, other := range fn.Blocks() {
		term := other.Terminator()
		if term == nil {
			continue
		}
		for _, succ := range term.Successors() {
			if succ == b {
				preds = append(preds, other)
				break
			}
		}
	}
	return preds
}
