package xir

// ArithmeticOp is the canonical SSA form for unary/binary arithmetic, the
// math library and vector/matrix operations: ArithmeticInst is what the
// translator and every transform emit and match against for this slice of
// the operation space, while IntrinsicInst's overlapping members exist
// only for round-tripping IR produced outside this pipeline (see
// SPEC_FULL.md Open Question decisions; original_source/instructions/arithmetic.h).
type ArithmeticOp int

const (
	ArithUnaryPlus ArithmeticOp = iota
	ArithUnaryMinus
	ArithUnaryNot
	ArithUnaryBitNot

	ArithAdd
	ArithSub
	ArithMul
	ArithDiv
	ArithMod
	ArithAnd
	ArithOr
	ArithBitAnd
	ArithBitOr
	ArithBitXor
	ArithShl
	ArithShr
	ArithRotl
	ArithRotr
	ArithLess
	ArithLessEqual
	ArithGreater
	ArithGreaterEqual
	ArithEqual
	ArithNotEqual

	ArithAll
	ArithAny
	ArithSelect
	ArithClamp
	ArithSaturate
	ArithLerp
	ArithSmoothstep
	ArithStep
	ArithAbs
	ArithMin
	ArithMax
	ArithClz
	ArithCtz
	ArithPopcount
	ArithReverse
	ArithIsInf
	ArithIsNan
	ArithSin
	ArithCos
	ArithTan
	ArithAsin
	ArithAcos
	ArithAtan
	ArithAtan2
	ArithSinh
	ArithCosh
	ArithTanh
	ArithExp
	ArithExp2
	ArithExp10
	ArithLog
	ArithLog2
	ArithLog10
	ArithPow
	ArithPowInt
	ArithSqrt
	ArithRsqrt
	ArithCeil
	ArithFloor
	ArithFract
	ArithTrunc
	ArithRound
	ArithRint
	ArithFma
	ArithCopysign

	ArithCross
	ArithDot
	ArithLength
	ArithLengthSquared
	ArithNormalize
	ArithFaceforward
	ArithReflect
	ArithReduceSum
	ArithReduceProduct
	ArithReduceMin
	ArithReduceMax
	ArithOuterProduct
	ArithMatrixCompNeg
	ArithMatrixCompAdd
	ArithMatrixCompSub
	ArithMatrixCompMul
	ArithMatrixCompDiv
	ArithMatrixLinalgMul
	ArithMatrixDeterminant
	ArithMatrixTranspose
	ArithMatrixInverse

	ArithAggregate
	ArithShuffle
	ArithInsert
	ArithExtract
)

// ArithmeticInst applies an ArithmeticOp to its operand list.
type ArithmeticInst struct {
	instBase
	op ArithmeticOp
}

func NewArithmetic(p *Pool, op ArithmeticOp, typ Type, operands []Value) *ArithmeticInst {
	i := &ArithmeticInst{op: op}
	i.self = i
	i.kind = KindArithmetic
	i.init(p, typ)
	i.setOperandCount(len(operands))
	for n, v := range operands {
		i.SetOperand(n, v)
	}
	return i
}

func (i *ArithmeticInst) Op() ArithmeticOp { return i.op }

// String returns the mnemonic the textual printer emits for this op (spec
// §6's instr grammar; original_source/instructions/arithmetic.h's to_string).
func (op ArithmeticOp) String() string {
	switch op {
	case ArithUnaryPlus:
		return "unary_plus"
	case ArithUnaryMinus:
		return "unary_minus"
	case ArithUnaryNot:
		return "unary_not"
	case ArithUnaryBitNot:
		return "unary_bit_not"
	case ArithAdd:
		return "add"
	case ArithSub:
		return "sub"
	case ArithMul:
		return "mul"
	case ArithDiv:
		return "div"
	case ArithMod:
		return "mod"
	case ArithAnd:
		return "and"
	case ArithOr:
		return "or"
	case ArithBitAnd:
		return "bit_and"
	case ArithBitOr:
		return "bit_or"
	case ArithBitXor:
		return "bit_xor"
	case ArithShl:
		return "shl"
	case ArithShr:
		return "shr"
	case ArithRotl:
		return "rotl"
	case ArithRotr:
		return "rotr"
	case ArithLess:
		return "lt"
	case ArithLessEqual:
		return "le"
	case ArithGreater:
		return "gt"
	case ArithGreaterEqual:
		return "ge"
	case ArithEqual:
		return "eq"
	case ArithNotEqual:
		return "ne"
	case ArithAll:
		return "all"
	case ArithAny:
		return "any"
	case ArithSelect:
		return "select"
	case ArithClamp:
		return "clamp"
	case ArithSaturate:
		return "saturate"
	case ArithLerp:
		return "lerp"
	case ArithSmoothstep:
		return "smoothstep"
	case ArithStep:
		return "step"
	case ArithAbs:
		return "abs"
	case ArithMin:
		return "min"
	case ArithMax:
		return "max"
	case ArithClz:
		return "clz"
	case ArithCtz:
		return "ctz"
	case ArithPopcount:
		return "popcount"
	case ArithReverse:
		return "reverse"
	case ArithIsInf:
		return "is_inf"
	case ArithIsNan:
		return "is_nan"
	case ArithSin:
		return "sin"
	case ArithCos:
		return "cos"
	case ArithTan:
		return "tan"
	case ArithAsin:
		return "asin"
	case ArithAcos:
		return "acos"
	case ArithAtan:
		return "atan"
	case ArithAtan2:
		return "atan2"
	case ArithSinh:
		return "sinh"
	case ArithCosh:
		return "cosh"
	case ArithTanh:
		return "tanh"
	case ArithExp:
		return "exp"
	case ArithExp2:
		return "exp2"
	case ArithExp10:
		return "exp10"
	case ArithLog:
		return "log"
	case ArithLog2:
		return "log2"
	case ArithLog10:
		return "log10"
	case ArithPow:
		return "pow"
	case ArithPowInt:
		return "pow_int"
	case ArithSqrt:
		return "sqrt"
	case ArithRsqrt:
		return "rsqrt"
	case ArithCeil:
		return "ceil"
	case ArithFloor:
		return "floor"
	case ArithFract:
		return "fract"
	case ArithTrunc:
		return "trunc"
	case ArithRound:
		return "round"
	case ArithRint:
		return "rint"
	case ArithFma:
		return "fma"
	case ArithCopysign:
		return "copysign"
	case ArithCross:
		return "cross"
	case ArithDot:
		return "dot"
	case ArithLength:
		return "length"
	case ArithLengthSquared:
		return "length_squared"
	case ArithNormalize:
		return "normalize"
	case ArithFaceforward:
		return "faceforward"
	case ArithReflect:
		return "reflect"
	case ArithReduceSum:
		return "reduce_sum"
	case ArithReduceProduct:
		return "reduce_product"
	case ArithReduceMin:
		return "reduce_min"
	case ArithReduceMax:
		return "reduce_max"
	case ArithOuterProduct:
		return "outer_product"
	case ArithMatrixCompNeg:
		return "matrix_comp_neg"
	case ArithMatrixCompAdd:
		return "matrix_comp_add"
	case ArithMatrixCompSub:
		return "matrix_comp_sub"
	case ArithMatrixCompMul:
		return "matrix_comp_mul"
	case ArithMatrixCompDiv:
		return "matrix_comp_div"
	case ArithMatrixLinalgMul:
		return "matrix_linalg_mul"
	case ArithMatrixDeterminant:
		return "matrix_determinant"
	case ArithMatrixTranspose:
		return "matrix_transpose"
	case ArithMatrixInverse:
		return "matrix_inverse"
	case ArithAggregate:
		return "aggregate"
	case ArithShuffle:
		return "shuffle"
	case ArithInsert:
		return "insert"
	case ArithExtract:
		return "extract"
	default:
		return "unknown"
	}
}
