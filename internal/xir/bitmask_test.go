package xir

import "testing"

// Apple { x: i32, b: bool, y: float2, j: Juice } where Juice { m: matrix<f32,3>[10] }.
func buildAppleType() Type {
	juice := Struct("Juice", []Type{Array(Matrix(F32, 3), 10)})
	return Struct("Apple", []Type{I32, Bool, Vector(F32, 2), juice})
}

func TestAggregateFieldBitmaskLeafCount(t *testing.T) {
	apple := buildAppleType()
	m := NewAggregateFieldBitmask(apple)
	if got, want := m.Size(), 1+1+2+10*9; got != want {
		t.Fatalf("leaf count = %d, want %d", got, want)
	}
}

func TestAggregateFieldBitmaskAccessChain(t *testing.T) {
	apple := buildAppleType()

	one := NewAggregateFieldBitmask(apple)
	r1 := one.AccessMut(3, 0, 2, 1)
	if r1.Len() != 1 {
		t.Fatalf("access(3,0,2,1) range length = %d, want 1", r1.Len())
	}
	r1.Set(0, true)

	two := NewAggregateFieldBitmask(apple)
	r2 := two.AccessMut(2)
	if r2.Len() != 2 {
		t.Fatalf("access(2) range length = %d, want 2", r2.Len())
	}
	r2.Set(0, true)
	r2.Set(1, true)

	if got := countSetBits(one); got != 1 {
		t.Fatalf("first mask has %d bits set, want 1", got)
	}
	if got := countSetBits(two); got != 2 {
		t.Fatalf("second mask has %d bits set, want 2", got)
	}

	union := one.Or(two)
	if got := countSetBits(union); got != 3 {
		t.Fatalf("union has %d bits set, want 3", got)
	}
}

func countSetBits(m *AggregateFieldBitmask) int {
	n := 0
	for i := 0; i < m.Size(); i++ {
		if m.Get(i) {
			n++
		}
	}
	return n
}

func TestAggregateFieldBitmaskAccessWholeMask(t *testing.T) {
	apple := buildAppleType()
	m := NewAggregateFieldBitmask(apple)
	r := m.Access()
	if r.Len() != m.Size() {
		t.Fatalf("access() with no indices should span the whole mask: got %d, want %d", r.Len(), m.Size())
	}
}
