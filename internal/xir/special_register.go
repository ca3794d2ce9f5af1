package xir

// SpecialRegisterTag names one of the fixed per-invocation registers a
// kernel can read but never writes or allocates (spec §3;
// original_source/include/luisa/xir/special_register.h's
// DerivedSpecialRegisterTag).
type SpecialRegisterTag int

const (
	SpecialRegisterThreadID SpecialRegisterTag = iota
	SpecialRegisterBlockID
	SpecialRegisterWarpLaneID
	SpecialRegisterDispatchID
	SpecialRegisterKernelID
	SpecialRegisterObjectID
	SpecialRegisterBlockSize
	SpecialRegisterWarpSize
	SpecialRegisterDispatchSize
)

// String returns the lowercase mnemonic the textual printer emits for this
// tag (spec §4.14, e.g. "%3.thread_id"), matching the original's to_string.
func (t SpecialRegisterTag) String() string {
	switch t {
	case SpecialRegisterThreadID:
		return "thread_id"
	case SpecialRegisterBlockID:
		return "block_id"
	case SpecialRegisterWarpLaneID:
		return "warp_lane_id"
	case SpecialRegisterDispatchID:
		return "dispatch_id"
	case SpecialRegisterKernelID:
		return "kernel_id"
	case SpecialRegisterObjectID:
		return "object_id"
	case SpecialRegisterBlockSize:
		return "block_size"
	case SpecialRegisterWarpSize:
		return "warp_size"
	case SpecialRegisterDispatchSize:
		return "dispatch_size"
	default:
		return "unknown"
	}
}

// specialRegisterType returns the fixed result type for a special register
// tag: the per-axis registers (thread/block/dispatch id, block/dispatch
// size) are uint3, the scalar ones (warp lane id, kernel id, object id,
// warp size) are plain u32.
func specialRegisterType(tag SpecialRegisterTag) Type {
	switch tag {
	case SpecialRegisterThreadID, SpecialRegisterBlockID, SpecialRegisterDispatchID,
		SpecialRegisterBlockSize, SpecialRegisterDispatchSize:
		return Vector(U32, 3)
	default:
		return U32
	}
}

// SpecialRegister is a value kind reading one of the fixed dispatch
// registers (thread id, block id, warp lane id, dispatch id, kernel id,
// object id, block size, warp size, dispatch size). It is never an
// instruction: like an Argument, it has no position in a block's
// instruction list and exists purely to be referenced as an operand (spec
// §3; original_source/include/luisa/xir/special_register.h).
type SpecialRegister struct {
	valueBase
	tag SpecialRegisterTag
}

// NewSpecialRegister allocates the special register for tag, with the
// fixed result type that tag implies.
func NewSpecialRegister(p *Pool, tag SpecialRegisterTag) *SpecialRegister {
	r := &SpecialRegister{tag: tag}
	r.init(p, specialRegisterType(tag))
	return r
}

func (r *SpecialRegister) ValueKind() ValueKind        { return ValueKindSpecialRegister }
func (r *SpecialRegister) Tag() SpecialRegisterTag     { return r.tag }
func (r *SpecialRegister) String() string              { return r.tag.String() }
