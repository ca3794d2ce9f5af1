package xir

// User is any value that references other values as operands; every
// instruction is one, and no other value kind in this package is
// (spec §4.3).
type User interface {
	Value
	// Operands returns the operand values in order, nil-holes included for
	// not-yet-set operands.
	Operands() []Value
	// Operand returns the i'th operand, or nil if unset or out of range.
	Operand(i int) Value
	// SetOperand replaces the i'th operand, maintaining use-list linkage if
	// this user is currently linked into a block.
	SetOperand(i int, v Value)
	linked() bool
	setLinked(bool)
}

// userBase is embedded by every concrete instruction (and any other
// concrete User). self must be assigned by the concrete constructor to
// point back at the outer value: Go embedding gives userBase no way to
// recover the dynamic type wrapping it, so every Use's User() must be
// routed through this explicit self-reference instead of through userBase
// itself (spec Design Notes, CRTP replacement).
type userBase struct {
	valueBase
	self     User
	operands []*Use
	isLinked bool
}

func (u *userBase) linked() bool    { return u.isLinked }
func (u *userBase) setLinked(v bool) { u.isLinked = v }

func (u *userBase) Operands() []Value {
	out := make([]Value, len(u.operands))
	for i, use := range u.operands {
		if use != nil {
			out[i] = use.value
		}
	}
	return out
}

func (u *userBase) Operand(i int) Value {
	if i < 0 || i >= len(u.operands) || u.operands[i] == nil {
		return nil
	}
	return u.operands[i].value
}

// setOperandCount grows (never shrinks) the operand slot array to n
// entries, used by constructors that know their fixed operand shape
// up-front (spec §4.3: every instruction kind has a known, fixed-or-
// variadic operand arity).
func (u *userBase) setOperandCount(n int) {
	if n <= len(u.operands) {
		return
	}
	grown := make([]*Use, n)
	copy(grown, u.operands)
	u.operands = grown
}

// SetOperand installs (or replaces) the i'th operand. If this user is
// currently linked into a block, the new operand's use-list edge is
// installed immediately; otherwise installation is deferred to the next
// BasicBlock.InsertBefore/InsertAfter call that links this user (spec
// §4.3's deferred-install rule).
func (u *userBase) SetOperand(i int, v Value) {
	u.setOperandCount(i + 1)
	if old := u.operands[i]; old != nil {
		if u.isLinked {
			old.value.usev().remove(old)
		}
		u.operands[i] = nil
	}
	if v == nil {
		return
	}
	use := &Use{value: v, user: u.self, operand: i}
	u.operands[i] = use
	if u.isLinked {
		v.usev().pushFront(use)
	}
}

// addOperand appends v as a new trailing operand, used by
// PhiInst.AddIncoming to grow its operand list one incoming value at a time.
func (u *userBase) addOperand(v Value) int {
	i := len(u.operands)
	u.operands = append(u.operands, nil)
	u.SetOperand(i, v)
	return i
}

// installOperandUses links every currently-set operand's use edge into its
// value's use-list. Called exactly once, when this user is inserted into a
// basic block.
func (u *userBase) installOperandUses() {
	if u.isLinked {
		return
	}
	u.isLinked = true
	for _, use := range u.operands {
		if use != nil {
			use.value.usev().pushFront(use)
		}
	}
}

// uninstallOperandUses unlinks every operand's use edge from its value's
// use-list. Called exactly once, when this user is removed from its basic
// block.
func (u *userBase) uninstallOperandUses() {
	if !u.isLinked {
		return
	}
	u.isLinked = false
	for _, use := range u.operands {
		if use != nil {
			use.value.usev().remove(use)
		}
	}
}
