package xir

// ValueKind tags the dynamic kind of a Value for switch-based dispatch in
// the printer, verifier and transforms, taking the place of the original's
// virtual dispatch (spec Design Notes: CRTP replaced by a tagged union).
type ValueKind int

const (
	ValueKindConstant ValueKind = iota
	ValueKindArgument
	ValueKindBasicBlock
	ValueKindFunction
	ValueKindInstruction
	ValueKindSpecialRegister
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindConstant:
		return "constant"
	case ValueKindArgument:
		return "argument"
	case ValueKindBasicBlock:
		return "basic_block"
	case ValueKindFunction:
		return "function"
	case ValueKindInstruction:
		return "instruction"
	case ValueKindSpecialRegister:
		return "special_register"
	default:
		return "unknown"
	}
}

// Value is anything that can be used as an operand: a constant, an
// argument, a basic block, a function or an instruction (spec §3 Value).
// Branch targets and call callees are held as typed fields of their
// instructions, not as operands.
type Value interface {
	ID() ValueID
	ValueKind() ValueKind
	Type() Type
	// Metadata returns the value's attached metadata list. Instructions and
	// functions use this for debug names, source locations and comments
	// (spec §4.10); other value kinds return an empty list.
	Metadata() *MetadataList
	// Uses returns every Use currently referencing this value, in
	// front-to-back list order (spec §4.3 P2).
	Uses() []*Use
	usev() *useList
}

// valueBase is embedded by every concrete value kind. It carries the
// identity, type and def-use bookkeeping shared by constants, arguments,
// basic blocks, functions and instructions.
type valueBase struct {
	id   ValueID
	typ  Type
	md   MetadataList
	uses useList
}

func (v *valueBase) ID() ValueID         { return v.id }
func (v *valueBase) Type() Type          { return v.typ }
func (v *valueBase) Metadata() *MetadataList { return &v.md }
func (v *valueBase) usev() *useList      { return &v.uses }

func (v *valueBase) Uses() []*Use {
	out := make([]*Use, 0, v.uses.len)
	for u := v.uses.front; u != nil; u = u.next {
		out = append(out, u)
	}
	return out
}

func (v *valueBase) init(p *Pool, typ Type) {
	v.id = p.allocID()
	v.typ = typ
}

// HasUses reports whether anything still references this value. Transforms
// such as dead-code elimination and local-load/store forwarding use this to
// decide whether a value can be dropped (spec §4.12).
func HasUses(v Value) bool { return v.usev().len > 0 }

// ReplaceAllUsesWith redirects every current use of old to point at
// replacement, preserving front-to-back use order (spec §4.3 P2). old and
// replacement need not share a type; callers are responsible for type
// compatibility.
func ReplaceAllUsesWith(old, replacement Value) {
	if old == replacement {
		return
	}
	olist := old.usev()
	uses := make([]*Use, 0, olist.len)
	for u := olist.front; u != nil; u = u.next {
		uses = append(uses, u)
	}
	for i := len(uses) - 1; i >= 0; i-- {
		u := uses[i]
		olist.remove(u)
		u.value = replacement
		replacement.usev().pushFront(u)
	}
}
