package xir

import "testing"

func TestConstantNormalizesBoolToZeroOrOne(t *testing.T) {
	p := NewPool()
	c := NewConstant(p, Bool, []byte{0x7f})
	if c.Bytes()[0] != 1 {
		t.Fatalf("bool constant byte = %#x, want 0x01", c.Bytes()[0])
	}
	if !c.AsBool() {
		t.Fatalf("expected AsBool true")
	}
}

func TestConstantZeroesStructPadding(t *testing.T) {
	// { i8, i32 } has 3 bytes of padding before the i32 member.
	st := Struct("Padded", []Type{I8, I32})
	p := NewPool()
	src := make([]byte, st.Size())
	for i := range src {
		src[i] = 0xff
	}
	c := NewConstant(p, st, src)
	want := []byte{0xff, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}
	got := c.Bytes()
	if len(got) != len(want) {
		t.Fatalf("constant size = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x (padding must stay zeroed)", i, got[i], want[i])
		}
	}
}

func TestConstantHashEqualForEqualValue(t *testing.T) {
	p := NewPool()
	a := NewConstant(p, I32, []byte{1, 0, 0, 0})
	b := NewConstant(p, I32, []byte{1, 0, 0, 0})
	if a.Hash() != b.Hash() {
		t.Fatalf("equal-value constants hashed differently: %x vs %x", a.Hash(), b.Hash())
	}
}

func TestConstantHashDiffersByType(t *testing.T) {
	p := NewPool()
	i := NewConstant(p, I32, []byte{1, 0, 0, 0})
	f := NewConstant(p, F32, []byte{1, 0, 0, 0})
	if i.Hash() == f.Hash() {
		t.Fatalf("constants of different type hashed equally: %x", i.Hash())
	}
}

func TestConstantHashDiffersByValue(t *testing.T) {
	p := NewPool()
	a := NewConstant(p, I32, []byte{1, 0, 0, 0})
	b := NewConstant(p, I32, []byte{2, 0, 0, 0})
	if a.Hash() == b.Hash() {
		t.Fatalf("constants of different value hashed equally: %x", a.Hash())
	}
}

func TestConstantLargePayloadSpillsToHeap(t *testing.T) {
	big := Array(F32, 8) // 32 bytes, past constSmallBufLen
	p := NewPool()
	c := NewConstant(p, big, make([]byte, big.Size()))
	if c.isSmall {
		t.Fatalf("expected a %d-byte constant to spill to the heap", big.Size())
	}
	if len(c.Bytes()) != big.Size() {
		t.Fatalf("Bytes() length = %d, want %d", len(c.Bytes()), big.Size())
	}
}

func TestZeroConstantIsAllZero(t *testing.T) {
	p := NewPool()
	c := ZeroConstant(p, Vector(F32, 4))
	for i, b := range c.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d of zero constant = %#x, want 0", i, b)
		}
	}
}

func TestConstantAsIntegerRoundTrips(t *testing.T) {
	p := NewPool()
	c := NewConstant(p, I32, []byte{0xff, 0xff, 0xff, 0xff})
	if got := c.AsInt64(); got != -1 {
		t.Fatalf("AsInt64() = %d, want -1", got)
	}
	u := NewConstant(p, U32, []byte{0xff, 0xff, 0xff, 0xff})
	if got := u.AsUint64(); got != 0xffffffff {
		t.Fatalf("AsUint64() = %d, want %d", got, uint64(0xffffffff))
	}
}
