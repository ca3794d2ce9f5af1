package xir

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// constSmallBufLen is the inline capacity up to which a Constant's payload
// is stored directly in the struct instead of on the heap, mirroring the
// small-buffer optimization of the original's Constant (Design Notes §9).
// It is one pointer width (8 bytes), which covers every scalar; anything
// larger spills to heap.
const constSmallBufLen = 8

// Constant is a typed, immutable literal value (spec §4.4). Its payload is
// an opaque little-endian byte encoding of the value under its type.
// Unlike a bare byte copy, a Constant normalizes its own data on
// construction and on every rewrite: bool fields collapse to exactly
// 0x00/0x01 and struct padding is always zeroed, so two constants with the
// same type and the same logical value always compare bytewise-equal and
// hash identically, regardless of what garbage the caller's source bytes
// carried in the padding or in a bool's upper bits.
type Constant struct {
	valueBase
	small   [constSmallBufLen]byte
	heap    []byte
	isSmall bool
	size    int
	hash    uint64
}

// NewConstant allocates a constant of type typ from the given bytes. len
// (data) must equal typ.Size(). data is read once to fill the constant's
// normalized internal storage; it is never aliased.
func NewConstant(p *Pool, typ Type, data []byte) *Constant {
	if len(data) != typ.Size() {
		fail("precondition", "constant data length %d does not match type %s size %d", len(data), typ, typ.Size())
	}
	c := &Constant{size: typ.Size()}
	c.init(p, typ)
	if c.size <= constSmallBufLen {
		c.isSmall = true
	} else {
		c.heap = make([]byte, c.size)
	}
	c.SetData(data)
	return c
}

func (c *Constant) ValueKind() ValueKind { return ValueKindConstant }

// buf returns the live backing storage for this constant's bytes: writes
// through the returned slice are writes to the constant.
func (c *Constant) buf() []byte {
	if c.isSmall {
		return c.small[:c.size]
	}
	return c.heap
}

// Bytes returns the constant's raw little-endian payload.
func (c *Constant) Bytes() []byte { return c.buf() }

// SetData rewrites the constant's value in place, keeping its type fixed
// (a Constant's type can never change after construction). data is
// normalized exactly as NewConstant normalizes its constructor argument:
// bools collapse to 0/1, and any struct padding the type's layout implies
// stays zeroed. Passing nil zeroes the constant entirely.
func (c *Constant) SetData(data []byte) {
	dst := c.buf()
	for i := range dst {
		dst[i] = 0
	}
	if data != nil {
		fillConstantData(c.Type(), data, dst)
	}
	c.hash = c.computeHash()
}

// Hash returns a content hash combining the constant's type and its
// normalized byte payload (spec §4.4; original_source/src/xir/constant.cpp
// combines type()->hash() with hash64(data(), size(), seed)). Two
// constants with the same type and the same logical value always hash
// equally, which is what lets Module.CreateConstant deduplicate literals.
func (c *Constant) Hash() uint64 { return c.hash }

func (c *Constant) computeHash() uint64 {
	h := xxhash.New()
	_, _ = h.Write([]byte(c.Type().String()))
	_, _ = h.Write(c.buf())
	return h.Sum64()
}

// fillConstantData recursively copies src into dst under typ's shape,
// ported from the original's xir_constant_fill_data: scalars and bools
// are copied/normalized directly, and vectors, matrices, arrays and
// structs recurse member-by-member so that any padding a struct's layout
// introduces is left untouched (and therefore stays zeroed, since dst was
// memset to zero by the caller before this runs).
func fillConstantData(typ Type, src, dst []byte) {
	switch {
	case typ == Bool:
		var v byte
		if src[0] != 0 {
			v = 1
		}
		dst[0] = v
	case typ.Members() != nil:
		offset := 0
		for _, m := range typ.Members() {
			offset = alignUp(offset, m.Align())
			fillConstantData(m, src[offset:], dst[offset:])
			offset += m.Size()
		}
	case typ.Tag() == TagMatrix:
		// A matrix is laid out as Dim column vectors, each Dim elements
		// wide; recursing through a synthetic vector type reuses the
		// vector path's element-wise copy (and bool normalization, for
		// the degenerate case of a bool matrix).
		elem := typ.Elem()
		dim := typ.Dim()
		col := Vector(elem, dim)
		colSize := elem.Size() * dim
		for i := 0; i < dim; i++ {
			fillConstantData(col, src[i*colSize:], dst[i*colSize:])
		}
	case typ.Tag() == TagVector, typ.Tag() == TagArray:
		elem := typ.Elem()
		elemSize := elem.Size()
		for i := 0; i < typ.Dim(); i++ {
			fillConstantData(elem, src[i*elemSize:], dst[i*elemSize:])
		}
	default:
		n := typ.Size()
		copy(dst[:n], src[:n])
	}
}

// ZeroConstant returns a zero-valued constant of typ, with the full,
// recursively zeroed byte layout (spec §4.4).
func ZeroConstant(p *Pool, typ Type) *Constant {
	return NewConstant(p, typ, make([]byte, typ.Size()))
}

// AsBool reinterprets a bool-typed constant's single normalized byte.
func (c *Constant) AsBool() bool {
	c.requireTag(TagBool)
	return c.buf()[0] != 0
}

// AsUint64 reinterprets an unsigned-integer-typed constant's bytes as a
// little-endian value, zero-extended to 64 bits.
func (c *Constant) AsUint64() uint64 {
	switch c.Type().Tag() {
	case TagU8:
		return uint64(c.buf()[0])
	case TagU16:
		return uint64(binary.LittleEndian.Uint16(c.buf()))
	case TagU32:
		return uint64(binary.LittleEndian.Uint32(c.buf()))
	case TagU64:
		return binary.LittleEndian.Uint64(c.buf())
	default:
		fail("precondition", "constant of type %s is not an unsigned integer", c.Type())
		return 0
	}
}

// AsInt64 reinterprets a signed-integer-typed constant's bytes as a
// little-endian value, sign-extended to 64 bits.
func (c *Constant) AsInt64() int64 {
	switch c.Type().Tag() {
	case TagI8:
		return int64(int8(c.buf()[0]))
	case TagI16:
		return int64(int16(binary.LittleEndian.Uint16(c.buf())))
	case TagI32:
		return int64(int32(binary.LittleEndian.Uint32(c.buf())))
	case TagI64:
		return int64(binary.LittleEndian.Uint64(c.buf()))
	default:
		fail("precondition", "constant of type %s is not a signed integer", c.Type())
		return 0
	}
}

// AsFloat64 reinterprets a float-typed constant's bytes, widening f32 to
// float64; f16 is not supported since Go has no native half-float type.
func (c *Constant) AsFloat64() float64 {
	switch c.Type().Tag() {
	case TagF32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(c.buf())))
	case TagF64:
		return math.Float64frombits(binary.LittleEndian.Uint64(c.buf()))
	default:
		fail("precondition", "constant of type %s is not a 32- or 64-bit float", c.Type())
		return 0
	}
}

func (c *Constant) requireTag(tag TypeTag) {
	if c.Type().Tag() != tag {
		fail("precondition", "constant of type %s does not have tag %v", c.Type(), tag)
	}
}
