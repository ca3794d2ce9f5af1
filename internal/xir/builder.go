package xir

// Builder holds a single insertion point and appends newly constructed
// instructions immediately after it, advancing the insertion point to each
// new instruction in turn (spec §4.8; original_source/builder.h; kanso's
// internal/ir/builder.go's single-cursor construction style, generalized
// from AST-statement-driven emission to direct instruction-helper calls).
// A Builder is cheap to create and carries no state beyond its pool, its
// insertion point and the block that point lies in, so translators
// typically keep one Builder per function under construction.
type Builder struct {
	pool  *Pool
	ip    Instruction
	block *BasicBlock
}

// NewBuilder creates a builder with no insertion point set. SetInsertionPoint
// or SetInsertionPointAtEnd must be called before any Create* method.
func NewBuilder(p *Pool) *Builder { return &Builder{pool: p} }

// SetInsertionPoint positions the builder so that subsequent instructions
// are inserted immediately after mark.
func (b *Builder) SetInsertionPoint(mark Instruction) {
	b.ip = mark
	b.block = mark.Block()
}

// SetInsertionPointAtEnd positions the builder at the end of block: after
// its last instruction, or after its head sentinel if the block is
// currently empty.
func (b *Builder) SetInsertionPointAtEnd(block *BasicBlock) {
	b.block = block
	if last := block.Last(); last != nil {
		b.ip = last
		return
	}
	b.ip = block.head
}

// InsertionBlock returns the block the builder currently inserts into, or
// nil if no insertion point has been set yet.
func (b *Builder) InsertionBlock() *BasicBlock { return b.block }

func (b *Builder) insert(inst Instruction) Instruction {
	if b.ip == nil {
		fail("precondition", "builder has no insertion point set")
	}
	insertInstAfter(b.ip, inst)
	b.ip = inst
	return inst
}

func (b *Builder) CreateAlloca(elem Type, space AddressSpace) *AllocaInst {
	i := NewAlloca(b.pool, elem, space)
	b.insert(i)
	return i
}

// AllocaLocal and AllocaShared are CreateAlloca shorthand for the two
// address spaces (spec §4.8; original_source/builder.h's alloca_local/
// alloca_shared).
func (b *Builder) AllocaLocal(elem Type) *AllocaInst  { return b.CreateAlloca(elem, AddressSpaceLocal) }
func (b *Builder) AllocaShared(elem Type) *AllocaInst { return b.CreateAlloca(elem, AddressSpaceShared) }

func (b *Builder) CreateLoad(ptr Value) *LoadInst {
	i := NewLoad(b.pool, ptr)
	b.insert(i)
	return i
}

func (b *Builder) CreateStore(ptr, val Value) *StoreInst {
	i := NewStore(b.pool, ptr, val)
	b.insert(i)
	return i
}

func (b *Builder) CreateGEP(base Value, indices []Value, resultElem Type) *GEPInst {
	i := NewGEP(b.pool, base, indices, resultElem)
	b.insert(i)
	return i
}

func (b *Builder) CreateCast(op CastOp, val Value, to Type) *CastInst {
	i := NewCast(b.pool, op, val, to)
	b.insert(i)
	return i
}

// StaticCastIfNecessary returns val unchanged if it is already of type to,
// otherwise inserts a CastStatic conversion (spec §4.8;
// original_source/builder.h's static_cast_if_necessary). This is the
// conditional-cast check every call site that targets a fixed parameter or
// field type would otherwise hand-roll itself.
func (b *Builder) StaticCastIfNecessary(to Type, val Value) Value {
	if val.Type() == to {
		return val
	}
	return b.CreateCast(CastStatic, val, to)
}

// BitCastIfNecessary is StaticCastIfNecessary's bitwise-reinterpret
// counterpart (original_source/builder.h's bit_cast_if_necessary).
func (b *Builder) BitCastIfNecessary(to Type, val Value) Value {
	if val.Type() == to {
		return val
	}
	return b.CreateCast(CastBitwise, val, to)
}

func (b *Builder) CreateCall(callee *Function, args []Value) *CallInst {
	i := NewCall(b.pool, callee, args)
	b.insert(i)
	return i
}

func (b *Builder) CreateIntrinsic(op IntrinsicOp, typ Type, operands []Value) *IntrinsicInst {
	i := NewIntrinsic(b.pool, op, typ, operands)
	b.insert(i)
	return i
}

func (b *Builder) CreateArithmetic(op ArithmeticOp, typ Type, operands []Value) *ArithmeticInst {
	i := NewArithmetic(b.pool, op, typ, operands)
	b.insert(i)
	return i
}

func (b *Builder) CreateAtomic(op AtomicOp, typ Type, base Value, indices, values []Value) *AtomicInst {
	i := NewAtomic(b.pool, op, typ, base, indices, values)
	b.insert(i)
	return i
}

func (b *Builder) CreateResourceQuery(op ResourceQueryOp, typ Type, operands []Value) *ResourceQueryInst {
	i := NewResourceQuery(b.pool, op, typ, operands)
	b.insert(i)
	return i
}

func (b *Builder) CreateResourceRead(op ResourceReadOp, typ Type, operands []Value) *ResourceReadInst {
	i := NewResourceRead(b.pool, op, typ, operands)
	b.insert(i)
	return i
}

func (b *Builder) CreateResourceWrite(op ResourceWriteOp, operands []Value) *ResourceWriteInst {
	i := NewResourceWrite(b.pool, op, operands)
	b.insert(i)
	return i
}

func (b *Builder) CreateThreadGroup(op ThreadGroupOp, typ Type, operands []Value) *ThreadGroupInst {
	i := NewThreadGroup(b.pool, op, typ, operands)
	b.insert(i)
	return i
}

func (b *Builder) CreatePrint(format string, args []Value) *PrintInst {
	i := NewPrint(b.pool, format, args)
	b.insert(i)
	return i
}

func (b *Builder) CreateAssert(cond Value, message string) *AssertInst {
	i := NewAssert(b.pool, cond, message)
	b.insert(i)
	return i
}

func (b *Builder) CreateAssume(cond Value) *AssumeInst {
	i := NewAssume(b.pool, cond)
	b.insert(i)
	return i
}

func (b *Builder) CreateClock() *ClockInst {
	i := NewClock(b.pool)
	b.insert(i)
	return i
}

func (b *Builder) CreateRasterDiscard() *RasterDiscardInst {
	i := NewRasterDiscard(b.pool)
	b.insert(i)
	return i
}

func (b *Builder) CreatePhi(typ Type) *PhiInst {
	i := NewPhi(b.pool, typ)
	b.insert(i)
	return i
}

func (b *Builder) CreateBranch(target *BasicBlock) *BranchInst {
	i := NewBranch(b.pool, target)
	b.insert(i)
	return i
}

func (b *Builder) CreateIf(cond Value, trueBlock, falseBlock, merge *BasicBlock) *IfInst {
	i := NewIf(b.pool, cond, trueBlock, falseBlock, merge)
	b.insert(i)
	return i
}

func (b *Builder) CreateSwitch(val Value, def, merge *BasicBlock) *SwitchInst {
	i := NewSwitch(b.pool, val, def, merge)
	b.insert(i)
	return i
}

func (b *Builder) CreateLoop(prepare, body, merge *BasicBlock) *LoopInst {
	i := NewLoop(b.pool, prepare, body, merge)
	b.insert(i)
	return i
}

func (b *Builder) CreateSimpleLoop(body, merge *BasicBlock) *SimpleLoopInst {
	i := NewSimpleLoop(b.pool, body, merge)
	b.insert(i)
	return i
}

func (b *Builder) CreateOutline(target, merge *BasicBlock) *OutlineInst {
	i := NewOutline(b.pool, target, merge)
	b.insert(i)
	return i
}

func (b *Builder) CreateBreak(target *BasicBlock) *BreakInst {
	i := NewBreak(b.pool, target)
	b.insert(i)
	return i
}

func (b *Builder) CreateContinue(target *BasicBlock) *ContinueInst {
	i := NewContinue(b.pool, target)
	b.insert(i)
	return i
}

func (b *Builder) CreateReturn(val Value) *ReturnInst {
	i := NewReturn(b.pool, val)
	b.insert(i)
	return i
}

// ReturnVoid is CreateReturn(nil) (spec §4.8; original_source/builder.h's
// return_void), named for the common case of terminating a Void-returning
// function.
func (b *Builder) ReturnVoid() *ReturnInst { return b.CreateReturn(nil) }

func (b *Builder) CreateUnreachable() *UnreachableInst {
	i := NewUnreachable(b.pool)
	b.insert(i)
	return i
}

func (b *Builder) CreateRayQueryObjectRead(op RayQueryObjectReadOp, typ Type, queryObject Value) *RayQueryObjectReadInst {
	i := NewRayQueryObjectRead(b.pool, op, typ, queryObject)
	b.insert(i)
	return i
}

func (b *Builder) CreateRayQueryObjectWrite(op RayQueryObjectWriteOp, queryObject Value, extra []Value) *RayQueryObjectWriteInst {
	i := NewRayQueryObjectWrite(b.pool, op, queryObject, extra)
	b.insert(i)
	return i
}

func (b *Builder) CreateRayQueryLoop(dispatchBlock *BasicBlock) *RayQueryLoopInst {
	i := NewRayQueryLoop(b.pool, dispatchBlock)
	b.insert(i)
	return i
}

func (b *Builder) CreateRayQueryDispatch(queryObject Value, exit, onSurface, onProcedural *BasicBlock) *RayQueryDispatchInst {
	i := NewRayQueryDispatch(b.pool, queryObject, exit, onSurface, onProcedural)
	b.insert(i)
	return i
}
