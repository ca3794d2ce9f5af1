package xir

// AllocaInst reserves local or thread-group-shared storage for one value
// of Elem and yields a pointer to it (spec §4.6). It is always placed at
// the entry of a function's first block by convention, though the builder
// does not enforce that placement itself.
type AllocaInst struct {
	instBase
	elem  Type
	space AddressSpace
}

// NewAlloca allocates an AllocaInst of the given element type and address
// space. The instruction's own type is ptr<elem>.
func NewAlloca(p *Pool, elem Type, space AddressSpace) *AllocaInst {
	i := &AllocaInst{elem: elem, space: space}
	i.self = i
	i.kind = KindAlloca
	i.init(p, Pointer(elem, space))
	return i
}

func (i *AllocaInst) ElemType() Type          { return i.elem }
func (i *AllocaInst) AddressSpace() AddressSpace { return i.space }

// LoadInst reads the value currently stored at a pointer operand (spec
// §4.6).
type LoadInst struct {
	instBase
}

func NewLoad(p *Pool, ptr Value) *LoadInst {
	pt, ok := ptr.Type().(*PointerType)
	if !ok {
		fail("precondition", "load operand is not a pointer")
	}
	i := &LoadInst{}
	i.self = i
	i.kind = KindLoad
	i.init(p, pt.Elem())
	i.setOperandCount(1)
	i.SetOperand(0, ptr)
	return i
}

func (i *LoadInst) Pointer() Value { return i.Operand(0) }

// StoreInst writes a value to a pointer operand. Its own value type is
// Void; it exists purely for its side effect (spec §4.6).
type StoreInst struct {
	instBase
}

func NewStore(p *Pool, ptr, val Value) *StoreInst {
	i := &StoreInst{}
	i.self = i
	i.kind = KindStore
	i.init(p, Void)
	i.setOperandCount(2)
	i.SetOperand(0, ptr)
	i.SetOperand(1, val)
	return i
}

func (i *StoreInst) Pointer() Value { return i.Operand(0) }
func (i *StoreInst) Value() Value   { return i.Operand(1) }

// GEPInst ("get element pointer") computes a pointer to a nested field or
// element of the aggregate pointed to by its base operand, following a
// chain of constant-or-dynamic indices (spec §4.6). trace_gep.go flattens
// chains of GEP-of-GEP down to a single GEP against the root base.
type GEPInst struct {
	instBase
}

// NewGEP allocates a GEPInst over base with the given index operands (the
// first indexed into base's pointee, matching the original's LLVM-style
// GEP semantics: index 0 steps through array/pointer elements, subsequent
// indices step into aggregate members). resultElem is the element type at
// the end of the index chain; the instruction's own type is ptr<resultElem>
// in base's address space.
func NewGEP(p *Pool, base Value, indices []Value, resultElem Type) *GEPInst {
	bt, ok := base.Type().(*PointerType)
	if !ok {
		fail("precondition", "gep base operand is not a pointer")
	}
	i := &GEPInst{}
	i.self = i
	i.kind = KindGEP
	i.init(p, Pointer(resultElem, bt.Space()))
	i.setOperandCount(1 + len(indices))
	i.SetOperand(0, base)
	for n, idx := range indices {
		i.SetOperand(n+1, idx)
	}
	return i
}

func (i *GEPInst) Base() Value        { return i.Operand(0) }
func (i *GEPInst) Indices() []Value   { return i.Operands()[1:] }

// CastOp enumerates the conversion kinds a CastInst may perform (spec
// §4.6's per-pair static_cast semantics).
type CastOp int

const (
	CastStatic CastOp = iota // numeric conversion between scalar/vector types
	CastBitwise                // reinterpret bits, same size
)

// CastInst converts a value from one type to another (spec §4.6).
type CastInst struct {
	instBase
	op CastOp
}

func NewCast(p *Pool, op CastOp, val Value, to Type) *CastInst {
	i := &CastInst{op: op}
	i.self = i
	i.kind = KindCast
	i.init(p, to)
	i.setOperandCount(1)
	i.SetOperand(0, val)
	return i
}

func (i *CastInst) Op() CastOp     { return i.op }
func (i *CastInst) Source() Value  { return i.Operand(0) }

func (op CastOp) String() string {
	switch op {
	case CastStatic:
		return "static_cast"
	case CastBitwise:
		return "bit_cast"
	default:
		return "unknown"
	}
}

// CallInst invokes a Function (callable or external) with the given
// argument operands (spec §4.6, §4.9).
type CallInst struct {
	instBase
	callee *Function
}

func NewCall(p *Pool, callee *Function, args []Value) *CallInst {
	i := &CallInst{callee: callee}
	i.self = i
	i.kind = KindCall
	i.init(p, callee.ReturnType())
	i.setOperandCount(len(args))
	for n, a := range args {
		i.SetOperand(n, a)
	}
	return i
}

func (i *CallInst) Callee() *Function { return i.callee }
func (i *CallInst) Args() []Value     { return i.Operands() }
