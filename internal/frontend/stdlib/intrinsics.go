// Package stdlib is the name-resolution table for the kernel-source
// language's built-in functions, adapted from the contract compiler's
// internal/stdlib module registry (name -> signature lookup) to a flat
// catalog of intrinsic names backed by internal/xir.IntrinsicOp.
package stdlib

import "xir/internal/xir"

// Intrinsic describes one built-in function available to kernel source.
// Register is non-nil for the fixed dispatch registers (thread id, block
// id, ...): these never lower to an IntrinsicInst, since they read a
// xir.SpecialRegister value instead (spec §3; see translateCall).
type Intrinsic struct {
	Name     string
	Op       xir.IntrinsicOp
	Arity    int // -1 means variadic
	Register *xir.SpecialRegisterTag
}

func regTag(t xir.SpecialRegisterTag) *xir.SpecialRegisterTag { return &t }

var catalog = []Intrinsic{
	{"thread_id", xir.IntrinsicThreadID, 0, regTag(xir.SpecialRegisterThreadID)},
	{"block_id", xir.IntrinsicBlockID, 0, regTag(xir.SpecialRegisterBlockID)},
	{"dispatch_id", xir.IntrinsicDispatchID, 0, regTag(xir.SpecialRegisterDispatchID)},
	{"dispatch_size", xir.IntrinsicDispatchSize, 0, regTag(xir.SpecialRegisterDispatchSize)},
	{"block_size", xir.IntrinsicBlockSize, 0, regTag(xir.SpecialRegisterBlockSize)},
	{"warp_lane_id", xir.IntrinsicWarpLaneID, 0, regTag(xir.SpecialRegisterWarpLaneID)},
	{"kernel_id", xir.IntrinsicKernelID, 0, regTag(xir.SpecialRegisterKernelID)},
	{"object_id", xir.IntrinsicObjectID, 0, regTag(xir.SpecialRegisterObjectID)},
	{"warp_size", xir.IntrinsicWarpSize, 0, regTag(xir.SpecialRegisterWarpSize)},
	{"sync_block", xir.IntrinsicSynchronizeBlock, 0, nil},
	{"sin", xir.IntrinsicSin, 1, nil},
	{"cos", xir.IntrinsicCos, 1, nil},
	{"tan", xir.IntrinsicTan, 1, nil},
	{"sqrt", xir.IntrinsicSqrt, 1, nil},
	{"rsqrt", xir.IntrinsicRsqrt, 1, nil},
	{"abs", xir.IntrinsicAbs, 1, nil},
	{"floor", xir.IntrinsicFloor, 1, nil},
	{"ceil", xir.IntrinsicCeil, 1, nil},
	{"exp", xir.IntrinsicExp, 1, nil},
	{"log", xir.IntrinsicLog, 1, nil},
	{"pow", xir.IntrinsicPow, 2, nil},
	{"min", xir.IntrinsicMin, 2, nil},
	{"max", xir.IntrinsicMax, 2, nil},
	{"clamp", xir.IntrinsicClamp, 3, nil},
	{"dot", xir.IntrinsicDot, 2, nil},
	{"cross", xir.IntrinsicCross, 2, nil},
	{"normalize", xir.IntrinsicNormalize, 1, nil},
	{"length", xir.IntrinsicLength, 1, nil},
	{"warp_active_all_equal", xir.IntrinsicWarpActiveAllEqual, 1, nil},
	{"warp_active_sum", xir.IntrinsicWarpActiveSum, 1, nil},
}

var byName = func() map[string]Intrinsic {
	m := make(map[string]Intrinsic, len(catalog))
	for _, i := range catalog {
		m[i.Name] = i
	}
	return m
}()

// Lookup resolves a call-site name to its Intrinsic definition.
func Lookup(name string) (Intrinsic, bool) {
	i, ok := byName[name]
	return i, ok
}
