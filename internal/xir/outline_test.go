package xir

import "testing"

func TestOutlineRunOnFunctionAddsCallablePerOutline(t *testing.T) {
	p := NewPool()
	m := NewModule()
	fn := m.AddFunction(FunctionKindKernel, "main", Void)

	entry := fn.CreateBlock(p)
	target := fn.CreateBlock(p)
	merge := fn.CreateBlock(p)

	tb := NewBuilder(p)
	tb.SetInsertionPointAtEnd(target)
	tb.CreateBranch(merge)

	mb := NewBuilder(p)
	mb.SetInsertionPointAtEnd(merge)
	mb.ReturnVoid()

	eb := NewBuilder(p)
	eb.SetInsertionPointAtEnd(entry)
	outline := eb.CreateOutline(target, merge)

	before := len(m.Functions())
	info := OutlineRunOnFunction(m, fn)

	callee, ok := info.Outlines[outline]
	if !ok {
		t.Fatalf("expected an outline entry for the OutlineInst")
	}
	if callee.Kind() != FunctionKindCallable {
		t.Errorf("expected extracted function to be callable, got %v", callee.Kind())
	}
	if len(m.Functions()) != before+1 {
		t.Errorf("expected exactly one new function to be added to the module")
	}
}

func TestOutlineRunOnModuleSkipsExternals(t *testing.T) {
	m := NewModule()
	m.AddFunction(FunctionKindExternal, "ext", Void)

	out := OutlineRunOnModule(m)
	if len(out) != 0 {
		t.Fatalf("expected external functions to be skipped, got %d entries", len(out))
	}
}
