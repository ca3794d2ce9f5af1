package xir

import "testing"

func TestSpecialRegisterTypes(t *testing.T) {
	p := NewPool()
	cases := []struct {
		tag  SpecialRegisterTag
		want Type
	}{
		{SpecialRegisterThreadID, Vector(U32, 3)},
		{SpecialRegisterBlockSize, Vector(U32, 3)},
		{SpecialRegisterWarpLaneID, U32},
		{SpecialRegisterKernelID, U32},
	}
	for _, c := range cases {
		r := NewSpecialRegister(p, c.tag)
		if r.Type().String() != c.want.String() {
			t.Errorf("%s: type = %s, want %s", c.tag, r.Type(), c.want)
		}
		if r.ValueKind() != ValueKindSpecialRegister {
			t.Errorf("%s: ValueKind = %v, want ValueKindSpecialRegister", c.tag, r.ValueKind())
		}
	}
}

func TestSpecialRegisterTagString(t *testing.T) {
	if got := SpecialRegisterThreadID.String(); got != "thread_id" {
		t.Errorf("SpecialRegisterThreadID.String() = %q, want %q", got, "thread_id")
	}
	if got := SpecialRegisterTag(999).String(); got != "unknown" {
		t.Errorf("out-of-range tag String() = %q, want %q", got, "unknown")
	}
}
