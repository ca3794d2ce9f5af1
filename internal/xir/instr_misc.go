package xir

// PrintInst formats its operands to the host-side debug log at runtime
// (spec §4.6). Its value type is Void.
type PrintInst struct {
	instBase
	format string
}

func NewPrint(p *Pool, format string, args []Value) *PrintInst {
	i := &PrintInst{format: format}
	i.self = i
	i.kind = KindPrint
	i.init(p, Void)
	i.setOperandCount(len(args))
	for n, v := range args {
		i.SetOperand(n, v)
	}
	return i
}

func (i *PrintInst) Format() string { return i.format }
func (i *PrintInst) Args() []Value  { return i.Operands() }

// AssertInst aborts the invocation if its condition operand is false,
// surfacing message in the host-side diagnostic (spec §4.6).
type AssertInst struct {
	instBase
	message string
}

func NewAssert(p *Pool, cond Value, message string) *AssertInst {
	i := &AssertInst{message: message}
	i.self = i
	i.kind = KindAssert
	i.init(p, Void)
	i.setOperandCount(1)
	i.SetOperand(0, cond)
	return i
}

func (i *AssertInst) Condition() Value { return i.Operand(0) }
func (i *AssertInst) Message() string  { return i.message }

// AssumeInst asserts a condition to the optimizer without a runtime check:
// transforms may use it to justify simplifications, but it has no codegen
// effect of its own (spec §4.6).
type AssumeInst struct {
	instBase
}

func NewAssume(p *Pool, cond Value) *AssumeInst {
	i := &AssumeInst{}
	i.self = i
	i.kind = KindAssume
	i.init(p, Void)
	i.setOperandCount(1)
	i.SetOperand(0, cond)
	return i
}

func (i *AssumeInst) Condition() Value { return i.Operand(0) }

// ClockInst reads a monotonically increasing per-invocation cycle counter,
// used for profiling instrumentation (spec §4.6).
type ClockInst struct {
	instBase
}

func NewClock(p *Pool) *ClockInst {
	i := &ClockInst{}
	i.self = i
	i.kind = KindClock
	i.init(p, U64)
	return i
}

// RasterDiscardInst discards the current fragment in a rasterization
// pipeline stage (spec §4.6). Its value type is Void.
type RasterDiscardInst struct {
	instBase
}

func NewRasterDiscard(p *Pool) *RasterDiscardInst {
	i := &RasterDiscardInst{}
	i.self = i
	i.kind = KindRasterDiscard
	i.init(p, Void)
	return i
}
