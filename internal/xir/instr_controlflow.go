package xir

// claimBlocks reassigns direct ownership of each of blocks to inst,
// implementing the block-ownership rule for structured control-flow
// instructions (spec §3 Invariants, §4.5): an If/Switch/Loop/SimpleLoop/
// Outline owns the blocks it names, not the enclosing Function, even
// though every block still also appears in Function.Blocks() for
// iteration and dominator-tree construction. nil entries (an absent
// default case, say) are skipped.
func claimBlocks(inst Instruction, blocks ...*BasicBlock) {
	for _, b := range blocks {
		if b != nil {
			b.setOwner(inst)
		}
	}
}

// PhiInst selects a value depending on which predecessor block control
// arrived from (spec §4.5). Unlike most instructions it is not a
// terminator: phis are collected at the head of a block, ahead of its
// first non-phi instruction.
type PhiInst struct {
	instBase
	blocks []*BasicBlock
}

func NewPhi(p *Pool, typ Type) *PhiInst {
	i := &PhiInst{}
	i.self = i
	i.kind = KindPhi
	i.init(p, typ)
	return i
}

// AddIncoming appends one (predecessor block, value) edge.
func (i *PhiInst) AddIncoming(block *BasicBlock, val Value) {
	i.blocks = append(i.blocks, block)
	i.addOperand(val)
}

func (i *PhiInst) Incoming() []Value       { return i.Operands() }
func (i *PhiInst) IncomingBlocks() []*BasicBlock { return i.blocks }

// ValueForBlock returns the incoming value associated with pred, or nil if
// pred is not one of this phi's predecessors.
func (i *PhiInst) ValueForBlock(pred *BasicBlock) Value {
	for n, b := range i.blocks {
		if b == pred {
			return i.Operand(n)
		}
	}
	return nil
}

// BranchInst unconditionally transfers control to Target (spec §4.5).
type BranchInst struct {
	termBase
	target *BasicBlock
}

func NewBranch(p *Pool, target *BasicBlock) *BranchInst {
	i := &BranchInst{target: target}
	i.self = i
	i.kind = KindBranch
	i.init(p, Void)
	return i
}

func (i *BranchInst) Target() *BasicBlock     { return i.target }
func (i *BranchInst) Successors() []*BasicBlock { return []*BasicBlock{i.target} }

// IfInst is the structured two-way branch: exactly one of TrueBlock/
// FalseBlock runs, and control rejoins at Merge (spec §4.5).
type IfInst struct {
	termBase
	trueBlock, falseBlock, merge *BasicBlock
}

func NewIf(p *Pool, cond Value, trueBlock, falseBlock, merge *BasicBlock) *IfInst {
	i := &IfInst{trueBlock: trueBlock, falseBlock: falseBlock, merge: merge}
	i.self = i
	i.kind = KindIf
	i.init(p, Void)
	i.setOperandCount(1)
	i.SetOperand(0, cond)
	claimBlocks(i, trueBlock, falseBlock, merge)
	return i
}

func (i *IfInst) Condition() Value      { return i.Operand(0) }
func (i *IfInst) TrueBlock() *BasicBlock  { return i.trueBlock }
func (i *IfInst) FalseBlock() *BasicBlock { return i.falseBlock }
func (i *IfInst) Merge() *BasicBlock      { return i.merge }
func (i *IfInst) Successors() []*BasicBlock {
	return []*BasicBlock{i.trueBlock, i.falseBlock}
}

// SwitchCase pairs a constant case value with the block it dispatches to.
type SwitchCase struct {
	Value int64
	Block *BasicBlock
}

// SwitchInst dispatches to one of several blocks based on an integer
// value, falling back to Default if no case matches, rejoining at Merge
// (spec §4.5).
type SwitchInst struct {
	termBase
	cases   []SwitchCase
	def     *BasicBlock
	merge   *BasicBlock
}

func NewSwitch(p *Pool, val Value, def, merge *BasicBlock) *SwitchInst {
	i := &SwitchInst{def: def, merge: merge}
	i.self = i
	i.kind = KindSwitch
	i.init(p, Void)
	i.setOperandCount(1)
	i.SetOperand(0, val)
	claimBlocks(i, def, merge)
	return i
}

func (i *SwitchInst) AddCase(value int64, block *BasicBlock) {
	i.cases = append(i.cases, SwitchCase{Value: value, Block: block})
	claimBlocks(i, block)
}

func (i *SwitchInst) Value() Value       { return i.Operand(0) }
func (i *SwitchInst) Cases() []SwitchCase { return i.cases }
func (i *SwitchInst) Default() *BasicBlock { return i.def }
func (i *SwitchInst) Merge() *BasicBlock   { return i.merge }
func (i *SwitchInst) Successors() []*BasicBlock {
	out := make([]*BasicBlock, 0, len(i.cases)+1)
	for _, c := range i.cases {
		out = append(out, c.Block)
	}
	return append(out, i.def)
}

// LoopInst is a structured loop with a re-evaluated condition each
// iteration: Prepare runs once per iteration before Body, and when Prepare's
// own condition test fails control leaves to Merge (spec §4.5). Break
// instructions inside Body target Merge directly; Continue instructions
// target Prepare.
type LoopInst struct {
	termBase
	prepare, body, merge *BasicBlock
}

func NewLoop(p *Pool, prepare, body, merge *BasicBlock) *LoopInst {
	i := &LoopInst{prepare: prepare, body: body, merge: merge}
	i.self = i
	i.kind = KindLoop
	i.init(p, Void)
	claimBlocks(i, prepare, body, merge)
	return i
}

func (i *LoopInst) Prepare() *BasicBlock { return i.prepare }
func (i *LoopInst) Body() *BasicBlock    { return i.body }
func (i *LoopInst) Merge() *BasicBlock   { return i.merge }
func (i *LoopInst) Successors() []*BasicBlock {
	return []*BasicBlock{i.prepare}
}

// SimpleLoopInst is an unconditional loop with no separate prepare stage:
// Body runs repeatedly until a Break inside it transfers to Merge (spec
// §4.5). It exists as a distinct instruction, rather than LoopInst with an
// empty Prepare, because the original keeps the two shapes separate for
// backend codegen.
type SimpleLoopInst struct {
	termBase
	body, merge *BasicBlock
}

func NewSimpleLoop(p *Pool, body, merge *BasicBlock) *SimpleLoopInst {
	i := &SimpleLoopInst{body: body, merge: merge}
	i.self = i
	i.kind = KindSimpleLoop
	i.init(p, Void)
	claimBlocks(i, body, merge)
	return i
}

func (i *SimpleLoopInst) Body() *BasicBlock  { return i.body }
func (i *SimpleLoopInst) Merge() *BasicBlock { return i.merge }
func (i *SimpleLoopInst) Successors() []*BasicBlock {
	return []*BasicBlock{i.body}
}

// OutlineInst marks a region (Target) as a candidate for extraction into a
// standalone callable function by the outline transform (spec §4.12,
// outline.go); control always falls through Target then rejoins at Merge,
// so it behaves like an If with a single, always-taken branch until the
// pass runs.
type OutlineInst struct {
	termBase
	target, merge *BasicBlock
}

func NewOutline(p *Pool, target, merge *BasicBlock) *OutlineInst {
	i := &OutlineInst{target: target, merge: merge}
	i.self = i
	i.kind = KindOutline
	i.init(p, Void)
	claimBlocks(i, target, merge)
	return i
}

func (i *OutlineInst) Target() *BasicBlock { return i.target }
func (i *OutlineInst) Merge() *BasicBlock  { return i.merge }
func (i *OutlineInst) Successors() []*BasicBlock {
	return []*BasicBlock{i.target}
}

// BreakInst transfers control out of the nearest enclosing Loop/
// SimpleLoop/Switch to its Merge block (spec §4.5).
type BreakInst struct {
	termBase
	target *BasicBlock
}

func NewBreak(p *Pool, target *BasicBlock) *BreakInst {
	i := &BreakInst{target: target}
	i.self = i
	i.kind = KindBreak
	i.init(p, Void)
	return i
}

func (i *BreakInst) Target() *BasicBlock       { return i.target }
func (i *BreakInst) Successors() []*BasicBlock { return []*BasicBlock{i.target} }

// ContinueInst transfers control back to the nearest enclosing loop's next
// iteration test (LoopInst's Prepare, or SimpleLoopInst's Body).
type ContinueInst struct {
	termBase
	target *BasicBlock
}

func NewContinue(p *Pool, target *BasicBlock) *ContinueInst {
	i := &ContinueInst{target: target}
	i.self = i
	i.kind = KindContinue
	i.init(p, Void)
	return i
}

func (i *ContinueInst) Target() *BasicBlock       { return i.target }
func (i *ContinueInst) Successors() []*BasicBlock { return []*BasicBlock{i.target} }

// ReturnInst exits the enclosing function, optionally carrying a value
// (nil for functions returning Void).
type ReturnInst struct {
	termBase
}

func NewReturn(p *Pool, val Value) *ReturnInst {
	i := &ReturnInst{}
	i.self = i
	i.kind = KindReturn
	i.init(p, Void)
	if val != nil {
		i.setOperandCount(1)
		i.SetOperand(0, val)
	}
	return i
}

func (i *ReturnInst) ReturnValue() Value          { return i.Operand(0) }
func (i *ReturnInst) Successors() []*BasicBlock   { return nil }

// UnreachableInst marks a point control can never reach; present so DCE and
// the verifier have an explicit witness for exhaustive switches/matches
// (spec §4.5, §4.12).
type UnreachableInst struct {
	termBase
}

func NewUnreachable(p *Pool) *UnreachableInst {
	i := &UnreachableInst{}
	i.self = i
	i.kind = KindUnreachable
	i.init(p, Void)
	return i
}

func (i *UnreachableInst) Successors() []*BasicBlock { return nil }
