package xir

// RayQueryObjectReadOp reads state off the implicit ray-query object inside
// a ray-query loop body: the world-space ray, the current candidate hit (as
// either a triangle or a procedural primitive), the already-committed hit,
// and Maxwell's extensions for probing which candidate kind is pending or
// whether the query has already terminated (spec §4.7;
// original_source/instructions/ray_query.h).
type RayQueryObjectReadOp int

const (
	RayQueryReadWorldSpaceRay RayQueryObjectReadOp = iota
	RayQueryReadProceduralCandidateHit
	RayQueryReadTriangleCandidateHit
	RayQueryReadCommittedHit
	RayQueryReadIsTriangleCandidate
	RayQueryReadIsProceduralCandidate
	RayQueryReadIsTerminated
)

// RayQueryObjectWriteOp commits (or rejects) the pending candidate hit, or
// terminates the query early. Maxwell's extension adds an explicit
// "proceed" to re-enter the traversal loop after inspecting a candidate
// without committing it.
type RayQueryObjectWriteOp int

const (
	RayQueryWriteCommitTriangle RayQueryObjectWriteOp = iota
	RayQueryWriteCommitProcedural
	RayQueryWriteTerminate
	RayQueryWriteProceed
)

// RayQueryObjectReadInst reads one field of the ray-query object operand.
type RayQueryObjectReadInst struct {
	instBase
	op RayQueryObjectReadOp
}

func NewRayQueryObjectRead(p *Pool, op RayQueryObjectReadOp, typ Type, queryObject Value) *RayQueryObjectReadInst {
	i := &RayQueryObjectReadInst{op: op}
	i.self = i
	i.kind = KindRayQueryObjectRead
	i.init(p, typ)
	i.setOperandCount(1)
	i.SetOperand(0, queryObject)
	return i
}

func (i *RayQueryObjectReadInst) Op() RayQueryObjectReadOp { return i.op }
func (i *RayQueryObjectReadInst) QueryObject() Value       { return i.Operand(0) }

// RayQueryObjectWriteInst commits, rejects, proceeds or terminates the
// ray-query object operand. Its value type is Void.
type RayQueryObjectWriteInst struct {
	instBase
	op RayQueryObjectWriteOp
}

func NewRayQueryObjectWrite(p *Pool, op RayQueryObjectWriteOp, queryObject Value, extra []Value) *RayQueryObjectWriteInst {
	i := &RayQueryObjectWriteInst{op: op}
	i.self = i
	i.kind = KindRayQueryObjectWrite
	i.init(p, Void)
	i.setOperandCount(1 + len(extra))
	i.SetOperand(0, queryObject)
	for n, v := range extra {
		i.SetOperand(n+1, v)
	}
	return i
}

func (i *RayQueryObjectWriteInst) Op() RayQueryObjectWriteOp { return i.op }
func (i *RayQueryObjectWriteInst) QueryObject() Value        { return i.Operand(0) }

// RayQueryLoopInst drives the implicit hardware traversal loop: each
// iteration transfers to Dispatch, which in turn forks to one of the
// surface/procedural candidate blocks or exits once traversal completes
// (spec §4.7's ray-query control-flow shape).
type RayQueryLoopInst struct {
	termBase
	dispatchBlock *BasicBlock
}

func NewRayQueryLoop(p *Pool, dispatchBlock *BasicBlock) *RayQueryLoopInst {
	i := &RayQueryLoopInst{dispatchBlock: dispatchBlock}
	i.self = i
	i.kind = KindRayQueryLoop
	i.init(p, Void)
	return i
}

func (i *RayQueryLoopInst) DispatchBlock() *BasicBlock { return i.dispatchBlock }
func (i *RayQueryLoopInst) Successors() []*BasicBlock {
	return []*BasicBlock{i.dispatchBlock}
}

// RayQueryDispatchInst is the three-way fork at the head of one traversal
// iteration: it forks to OnSurfaceCandidate or OnProceduralCandidate
// depending on the pending candidate's kind, or to Exit once traversal has
// produced no further candidates (spec §4.7).
type RayQueryDispatchInst struct {
	termBase
	exit, onSurface, onProcedural *BasicBlock
}

func NewRayQueryDispatch(p *Pool, queryObject Value, exit, onSurface, onProcedural *BasicBlock) *RayQueryDispatchInst {
	i := &RayQueryDispatchInst{exit: exit, onSurface: onSurface, onProcedural: onProcedural}
	i.self = i
	i.kind = KindRayQueryDispatch
	i.init(p, Void)
	i.setOperandCount(1)
	i.SetOperand(0, queryObject)
	return i
}

func (i *RayQueryDispatchInst) QueryObject() Value          { return i.Operand(0) }
func (i *RayQueryDispatchInst) Exit() *BasicBlock             { return i.exit }
func (i *RayQueryDispatchInst) OnSurfaceCandidate() *BasicBlock    { return i.onSurface }
func (i *RayQueryDispatchInst) OnProceduralCandidate() *BasicBlock { return i.onProcedural }
func (i *RayQueryDispatchInst) Successors() []*BasicBlock {
	return []*BasicBlock{i.exit, i.onSurface, i.onProcedural}
}
