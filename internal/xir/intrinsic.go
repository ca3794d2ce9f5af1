package xir

// IntrinsicOp enumerates every built-in operation that does not warrant its
// own instruction kind: unary/binary arithmetic, thread-coordination
// registers, block/warp synchronization and collectives, the math and
// linear-algebra library, atomics, resource access, autodiff markers,
// ray-tracing and ray-query operations, rasterization queries and indirect
// dispatch control (spec §4.6; original_source/instructions/intrinsic.h).
// It intentionally overlaps ArithmeticOp, AtomicOp and the resource op
// enums: each of those is the canonical SSA form for its slice of this
// space, kept as a separate instruction kind rather than folded back into
// IntrinsicInst (see SPEC_FULL.md's Open Question decisions).
type IntrinsicOp int

const (
	IntrinsicNop IntrinsicOp = iota

	// Unary.
	IntrinsicUnaryPlus
	IntrinsicUnaryMinus
	IntrinsicUnaryNot
	IntrinsicUnaryBitNot

	// Binary arithmetic, logic, bitwise, shift, rotate, comparison.
	IntrinsicBinaryAdd
	IntrinsicBinarySub
	IntrinsicBinaryMul
	IntrinsicBinaryDiv
	IntrinsicBinaryMod
	IntrinsicBinaryAnd
	IntrinsicBinaryOr
	IntrinsicBinaryBitAnd
	IntrinsicBinaryBitOr
	IntrinsicBinaryBitXor
	IntrinsicBinaryShl
	IntrinsicBinaryShr
	IntrinsicBinaryRotl
	IntrinsicBinaryRotr
	IntrinsicBinaryLess
	IntrinsicBinaryLessEqual
	IntrinsicBinaryGreater
	IntrinsicBinaryGreaterEqual
	IntrinsicBinaryEqual
	IntrinsicBinaryNotEqual

	// Thread coordination.
	IntrinsicThreadID
	IntrinsicBlockID
	IntrinsicWarpLaneID
	IntrinsicDispatchID
	IntrinsicKernelID
	IntrinsicObjectID
	IntrinsicBlockSize
	IntrinsicWarpSize
	IntrinsicDispatchSize
	IntrinsicSynchronizeBlock

	// Math library.
	IntrinsicAll
	IntrinsicAny
	IntrinsicSelect
	IntrinsicClamp
	IntrinsicSaturate
	IntrinsicLerp
	IntrinsicSmoothstep
	IntrinsicStep
	IntrinsicAbs
	IntrinsicMin
	IntrinsicMax
	IntrinsicClz
	IntrinsicCtz
	IntrinsicPopcount
	IntrinsicReverse
	IntrinsicIsInf
	IntrinsicIsNan
	IntrinsicSin
	IntrinsicCos
	IntrinsicTan
	IntrinsicAsin
	IntrinsicAcos
	IntrinsicAtan
	IntrinsicAtan2
	IntrinsicSinh
	IntrinsicCosh
	IntrinsicTanh
	IntrinsicAsinh
	IntrinsicAcosh
	IntrinsicAtanh
	IntrinsicExp
	IntrinsicExp2
	IntrinsicExp10
	IntrinsicLog
	IntrinsicLog2
	IntrinsicLog10
	IntrinsicPow
	IntrinsicPowInt
	IntrinsicSqrt
	IntrinsicRsqrt
	IntrinsicCeil
	IntrinsicFloor
	IntrinsicFract
	IntrinsicTrunc
	IntrinsicRound
	IntrinsicRint
	IntrinsicFma
	IntrinsicCopysign

	// Vector/matrix.
	IntrinsicCross
	IntrinsicDot
	IntrinsicLength
	IntrinsicLengthSquared
	IntrinsicNormalize
	IntrinsicFaceforward
	IntrinsicReflect
	IntrinsicReduceSum
	IntrinsicReduceProduct
	IntrinsicReduceMin
	IntrinsicReduceMax
	IntrinsicOuterProduct
	IntrinsicMatrixCompNeg
	IntrinsicMatrixCompAdd
	IntrinsicMatrixCompSub
	IntrinsicMatrixCompMul
	IntrinsicMatrixCompDiv
	IntrinsicMatrixLinalgMul
	IntrinsicMatrixDeterminant
	IntrinsicMatrixTranspose
	IntrinsicMatrixInverse

	// Atomics (see AtomicOp for the canonical SSA form; these mirror it so
	// the original's atomic intrinsics decode losslessly through this enum
	// as well).
	IntrinsicAtomicExchange
	IntrinsicAtomicCompareExchange
	IntrinsicAtomicFetchAdd
	IntrinsicAtomicFetchSub
	IntrinsicAtomicFetchAnd
	IntrinsicAtomicFetchOr
	IntrinsicAtomicFetchXor
	IntrinsicAtomicFetchMin
	IntrinsicAtomicFetchMax

	// Buffer/texture/bindless resource access.
	IntrinsicBufferRead
	IntrinsicBufferWrite
	IntrinsicBufferSize
	IntrinsicByteBufferRead
	IntrinsicByteBufferWrite
	IntrinsicByteBufferSize
	IntrinsicTexture2DRead
	IntrinsicTexture2DWrite
	IntrinsicTexture2DSize
	IntrinsicTexture2DSample
	IntrinsicTexture2DSampleLevel
	IntrinsicTexture2DSampleGrad
	IntrinsicTexture2DSampleGradLevel
	IntrinsicTexture3DRead
	IntrinsicTexture3DWrite
	IntrinsicTexture3DSize
	IntrinsicTexture3DSample
	IntrinsicTexture3DSampleLevel
	IntrinsicTexture3DSampleGrad
	IntrinsicTexture3DSampleGradLevel
	IntrinsicBindlessTexture2DSample
	IntrinsicBindlessTexture2DSampleLevel
	IntrinsicBindlessTexture2DSampleGrad
	IntrinsicBindlessTexture2DRead
	IntrinsicBindlessTexture2DReadLevel
	IntrinsicBindlessTexture2DSize
	IntrinsicBindlessTexture2DSizeLevel
	IntrinsicBindlessTexture3DSample
	IntrinsicBindlessTexture3DSampleLevel
	IntrinsicBindlessTexture3DSampleGrad
	IntrinsicBindlessTexture3DRead
	IntrinsicBindlessTexture3DReadLevel
	IntrinsicBindlessTexture3DSize
	IntrinsicBindlessTexture3DSizeLevel
	IntrinsicBindlessBufferRead
	IntrinsicBindlessBufferWrite
	IntrinsicBindlessBufferSize
	IntrinsicBindlessBufferType
	IntrinsicBindlessByteBufferRead
	IntrinsicBindlessByteBufferWrite
	IntrinsicBindlessByteBufferSize
	IntrinsicBufferDeviceAddress
	IntrinsicBindlessBufferDeviceAddress
	IntrinsicDeviceAddressRead
	IntrinsicDeviceAddressWrite

	// Aggregates.
	IntrinsicAggregate
	IntrinsicShuffle
	IntrinsicInsert
	IntrinsicExtract

	// Autodiff markers.
	IntrinsicAutodiffRequiresGradient
	IntrinsicAutodiffGradient
	IntrinsicAutodiffGradientMarker
	IntrinsicAutodiffAccumulateGradient
	IntrinsicAutodiffBackward
	IntrinsicAutodiffDetach

	// Ray tracing.
	IntrinsicRayTracingInstanceTransform
	IntrinsicRayTracingSetInstanceTransform
	IntrinsicRayTracingInstanceUserID
	IntrinsicRayTracingSetInstanceUserID
	IntrinsicRayTracingInstanceVisibilityMask
	IntrinsicRayTracingSetInstanceVisibilityMask
	IntrinsicRayTracingInstanceMotionMatrix
	IntrinsicRayTracingSetInstanceMotionMatrix
	IntrinsicRayTracingInstanceMotionSRT
	IntrinsicRayTracingSetInstanceMotionSRT
	IntrinsicRayTracingTraceClosest
	IntrinsicRayTracingTraceAny
	IntrinsicRayTracingQueryAll
	IntrinsicRayTracingQueryAny
	IntrinsicRayTracingTraceClosestMotionBlur
	IntrinsicRayTracingTraceAnyMotionBlur
	IntrinsicRayTracingQueryAllMotionBlur
	IntrinsicRayTracingQueryAnyMotionBlur

	// Rasterization.
	IntrinsicRasterDiscard
	IntrinsicRasterDDX
	IntrinsicRasterDDY

	// Warp collectives (mirrored by ThreadGroupOp for the dedicated
	// instruction kind; kept here too since the original's IntrinsicInst
	// can still carry them).
	IntrinsicWarpIsFirstActiveLane
	IntrinsicWarpActiveAllEqual
	IntrinsicWarpActiveBitAnd
	IntrinsicWarpActiveBitOr
	IntrinsicWarpActiveBitXor
	IntrinsicWarpActiveCountBits
	IntrinsicWarpActiveMax
	IntrinsicWarpActiveMin
	IntrinsicWarpActiveProduct
	IntrinsicWarpActiveSum
	IntrinsicWarpActiveAll
	IntrinsicWarpActiveAny
	IntrinsicWarpActiveBitMask
	IntrinsicWarpPrefixCountBits
	IntrinsicWarpPrefixSum
	IntrinsicWarpPrefixProduct
	IntrinsicWarpReadLane
	IntrinsicWarpReadFirstActiveLane

	// Indirect dispatch.
	IntrinsicIndirectDispatchSetKernel
	IntrinsicIndirectDispatchSetCount

	// Shader execution reorder.
	IntrinsicShaderExecutionReorder
)

// IntrinsicInst invokes one IntrinsicOp over its operand list (spec §4.6).
type IntrinsicInst struct {
	instBase
	op IntrinsicOp
}

func NewIntrinsic(p *Pool, op IntrinsicOp, typ Type, operands []Value) *IntrinsicInst {
	i := &IntrinsicInst{op: op}
	i.self = i
	i.kind = KindIntrinsic
	i.init(p, typ)
	i.setOperandCount(len(operands))
	for n, v := range operands {
		i.SetOperand(n, v)
	}
	return i
}

func (i *IntrinsicInst) Op() IntrinsicOp { return i.op }
