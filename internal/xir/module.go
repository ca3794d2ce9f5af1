package xir

// Module is the top-level compilation unit: one Pool, every function
// translated into it, and the constants and metadata that live at module
// scope rather than inside any one function (spec §3, §4.9). A Module owns
// its Pool; nothing constructs IR against one Pool from two Modules.
type Module struct {
	pool      *Pool
	id        string
	functions []*Function
	constants []*Constant
	md        MetadataList
}

// NewModule creates an empty module backed by a fresh pool.
func NewModule() *Module {
	p := NewPool()
	return &Module{pool: p, id: p.ID()}
}

// Pool returns the module's backing arena.
func (m *Module) Pool() *Pool { return m.pool }

// ID returns the module's unique identity string (shared with its pool's,
// since a module and its pool have a 1:1 lifetime).
func (m *Module) ID() string { return m.id }

// Metadata returns the module's own metadata list (e.g. a source-file
// NameMD), distinct from any function or instruction's list.
func (m *Module) Metadata() *MetadataList { return &m.md }

// Constants returns every module-level constant, in creation order. The
// textual printer emits these ahead of any function body (spec §4.14).
func (m *Module) Constants() []*Constant { return m.constants }

// CreateConstant allocates a new module-level constant of type typ from
// data and appends it to the module, deduplicating against any existing
// constant of the same type and hash so that repeated literals (e.g. the
// same float constant folded at two call sites) share one slot.
func (m *Module) CreateConstant(typ Type, data []byte) *Constant {
	c := NewConstant(m.pool, typ, data)
	for _, existing := range m.constants {
		if existing.Type() == typ && existing.Hash() == c.Hash() && bytesEqual(existing.Bytes(), c.Bytes()) {
			return existing
		}
	}
	m.constants = append(m.constants, c)
	return c
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Functions returns every function in the module, in declaration order.
func (m *Module) Functions() []*Function { return m.functions }

// AddFunction creates a new function of the given kind and appends it to
// the module.
func (m *Module) AddFunction(kind FunctionKind, name string, retType Type) *Function {
	f := newFunction(m.pool, kind, name, retType)
	m.functions = append(m.functions, f)
	return f
}

// Kernels returns every kernel-kind function, in declaration order.
func (m *Module) Kernels() []*Function { return m.byKind(FunctionKindKernel) }

// Callables returns every callable-kind function, in declaration order.
func (m *Module) Callables() []*Function { return m.byKind(FunctionKindCallable) }

// Externals returns every external-kind function, in declaration order.
func (m *Module) Externals() []*Function { return m.byKind(FunctionKindExternal) }

func (m *Module) byKind(kind FunctionKind) []*Function {
	var out []*Function
	for _, f := range m.functions {
		if f.Kind() == kind {
			out = append(out, f)
		}
	}
	return out
}

// FunctionByName returns the first function with the given name, or nil.
func (m *Module) FunctionByName(name string) *Function {
	for _, f := range m.functions {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
