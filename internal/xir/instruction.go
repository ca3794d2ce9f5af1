package xir

// InstructionKind tags the dynamic instruction kind, used by the printer,
// the purity table (dce.go) and every transform that needs an exhaustive
// switch over instruction shapes (spec §4.5, §4.6).
type InstructionKind int

const (
	KindAlloca InstructionKind = iota
	KindLoad
	KindStore
	KindGEP
	KindCast
	KindCall
	KindIntrinsic
	KindArithmetic
	KindAtomic
	KindResourceQuery
	KindResourceRead
	KindResourceWrite
	KindThreadGroup
	KindRayQueryObjectRead
	KindRayQueryObjectWrite
	KindPrint
	KindAssert
	KindAssume
	KindClock
	KindRasterDiscard
	KindPhi
	KindIf
	KindSwitch
	KindLoop
	KindSimpleLoop
	KindOutline
	KindBreak
	KindContinue
	KindReturn
	KindUnreachable
	KindBranch
	KindRayQueryLoop
	KindRayQueryDispatch
)

func (k InstructionKind) String() string {
	names := [...]string{
		"alloca", "load", "store", "gep", "cast", "call", "intrinsic",
		"arithmetic", "atomic", "resource_query", "resource_read",
		"resource_write", "thread_group", "ray_query_object_read",
		"ray_query_object_write", "print", "assert", "assume", "clock",
		"raster_discard", "phi", "if", "switch", "loop", "simple_loop",
		"outline", "break", "continue", "return", "unreachable", "branch",
		"ray_query_loop", "ray_query_dispatch",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Instruction is every node that can live in a basic block's instruction
// list (spec §4.1, §4.5, §4.6). Terminator instructions additionally
// implement Terminator.
type Instruction interface {
	User
	InstructionKind() InstructionKind
	Block() *BasicBlock
	Prev() Instruction
	Next() Instruction
	IsTerminator() bool

	setBlock(*BasicBlock)
	setPrev(Instruction)
	setNext(Instruction)
}

// Terminator is the subset of instructions that may end a basic block:
// Branch, If, Switch, Loop, SimpleLoop, Break, Continue, Return,
// Unreachable, RayQueryLoop, RayQueryDispatch (spec §4.5, §4.7).
type Terminator interface {
	Instruction
	// Successors returns the blocks this terminator may transfer control
	// to, in a stable, kind-specific order (used by dom tree construction
	// and DCE's reachability walk).
	Successors() []*BasicBlock
}

// instBase is embedded by every concrete instruction. It supplies the
// doubly linked sentinel-list pointers (block.go's BasicBlock owns the
// head/tail sentinels) in addition to userBase's operand/use bookkeeping.
type instBase struct {
	userBase
	block      *BasicBlock
	prev, next Instruction
	kind       InstructionKind
}

func (i *instBase) InstructionKind() InstructionKind { return i.kind }
func (i *instBase) ValueKind() ValueKind             { return ValueKindInstruction }
func (i *instBase) Block() *BasicBlock               { return i.block }
func (i *instBase) Prev() Instruction                { return i.prev }
func (i *instBase) Next() Instruction                { return i.next }
func (i *instBase) IsTerminator() bool               { return false }

func (i *instBase) setBlock(b *BasicBlock) { i.block = b }
func (i *instBase) setPrev(p Instruction)  { i.prev = p }
func (i *instBase) setNext(n Instruction)  { i.next = n }

// termBase is embedded instead of instBase by every terminator kind; it
// overrides IsTerminator so the common "does this block end here" check
// never needs a type switch.
type termBase struct {
	instBase
}

func (t *termBase) IsTerminator() bool { return true }

// insertInstBefore splices inst immediately before mark in mark's block's
// instruction list, installing inst's operand uses (spec §4.1, §4.3
// deferred-install).
func insertInstBefore(mark, inst Instruction) {
	b := mark.Block()
	p := mark.Prev()
	inst.setPrev(p)
	inst.setNext(mark)
	p.setNext(inst)
	mark.setPrev(inst)
	inst.setBlock(b)
	if ub, ok := inst.(interface{ installOperandUses() }); ok {
		ub.installOperandUses()
	}
}

// insertInstAfter splices inst immediately after mark.
func insertInstAfter(mark, inst Instruction) {
	b := mark.Block()
	n := mark.Next()
	inst.setPrev(mark)
	inst.setNext(n)
	mark.setNext(inst)
	n.setPrev(inst)
	inst.setBlock(b)
	if ub, ok := inst.(interface{ installOperandUses() }); ok {
		ub.installOperandUses()
	}
}

// removeInst unlinks inst from its block's instruction list and
// uninstalls its operand uses (spec §4.3 deferred-install, reverse
// direction).
func removeInst(inst Instruction) {
	p, n := inst.Prev(), inst.Next()
	p.setNext(n)
	n.setPrev(p)
	inst.setPrev(nil)
	inst.setNext(nil)
	inst.setBlock(nil)
	if ub, ok := inst.(interface{ uninstallOperandUses() }); ok {
		ub.uninstallOperandUses()
	}
}
