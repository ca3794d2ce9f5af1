// Package frontend ties internal/frontend's parser, type registry and
// semantic checker together and translates a checked kernel-source module
// into internal/xir, following the statement mapping fixed by this
// project's external interface (scope -> nothing extra; if -> IfInst;
// switch -> SwitchInst; while/for -> LoopInst; loop -> SimpleLoopInst;
// return/break/continue -> their matching terminator; assign -> StoreInst;
// expression statements -> the expression's instruction with its result
// discarded; print -> PrintInst; a CommentStmt attaches as metadata to the
// next let, assignment, print, assert or assume lowered after it, and the
// parser elides source comments, so a parsed module carries no
// CommentStmt), grounded on the contract compiler's builder.go AST-to-IR
// traversal shape.
package frontend

import (
	"fmt"

	"xir/internal/frontend/ast"
	"xir/internal/frontend/parser"
	"xir/internal/frontend/semantic"
	"xir/internal/frontend/stdlib"
	"xir/internal/frontend/types"
	"xir/internal/xir"
)

// CompileError wraps a *xir.VerificationError panic recovered at this
// package's translation boundary (spec §7's Go-rendering note: the IR
// layer panics on programmer error, and the frontend is the first layer
// positioned to turn that into an ordinary error a caller can report). Pos
// is the source statement being translated when the panic unwound, so a
// caller can point a caret at the offending kernel-source line instead of
// only printing the IR-level message internal/xir has no position of its
// own to attach.
type CompileError struct {
	Err *xir.VerificationError
	Pos ast.Position
}

func (e *CompileError) Error() string { return e.Err.Error() }

// CompileSource parses, checks and translates one kernel-source file into
// a fresh XIR module named moduleName.
func CompileSource(filename, source, moduleName string) (m *xir.Module, errs []error) {
	astMod, err := parser.ParseSource(filename, source)
	if err != nil {
		return nil, []error{err}
	}

	registry := types.NewRegistry()
	for _, s := range astMod.Structs {
		if err := registry.DeclareStruct(s); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	checker := semantic.NewChecker(registry)
	if checkErrs := checker.CheckModule(astMod); len(checkErrs) > 0 {
		for _, e := range checkErrs {
			errs = append(errs, e)
		}
		return nil, errs
	}

	t := NewTranslator(registry)
	module, err := t.TranslateModule(astMod)
	if err != nil {
		return nil, []error{err}
	}
	return module, nil
}

// Translator lowers a checked ast.Module into a xir.Module.
type Translator struct {
	registry *types.Registry
	// curPos tracks the statement currently being lowered, so a panic
	// recovered in TranslateModule can still report a source position even
	// though internal/xir itself carries none.
	curPos ast.Position
}

// NewTranslator creates a Translator resolving types against registry.
func NewTranslator(registry *types.Registry) *Translator {
	return &Translator{registry: registry}
}

// TranslateModule allocates a fresh xir.Module and lowers every function
// in m into it, recovering any *xir.VerificationError panic from the IR
// layer as a returned error (spec §7).
func (t *Translator) TranslateModule(m *ast.Module) (mod *xir.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ve, ok := r.(*xir.VerificationError); ok {
				err = &CompileError{Err: ve, Pos: t.curPos}
				return
			}
			panic(r)
		}
	}()

	mod = xir.NewModule()

	// Declare every function's signature before translating any body, so
	// a function may call a sibling declared later in the source file.
	declared := make([]*xir.Function, len(m.Functions))
	for i, fn := range m.Functions {
		xf, terr := t.declareFunction(mod, fn)
		if terr != nil {
			return nil, terr
		}
		declared[i] = xf
	}
	for i, fn := range m.Functions {
		if fn.Kind == ast.FunctionExternal {
			continue
		}
		if terr := t.translateFunctionBody(mod, declared[i], fn); terr != nil {
			return nil, terr
		}
	}
	return mod, nil
}

func functionKind(k ast.FunctionKind) xir.FunctionKind {
	switch k {
	case ast.FunctionKernel:
		return xir.FunctionKindKernel
	case ast.FunctionExternal:
		return xir.FunctionKindExternal
	default:
		return xir.FunctionKindCallable
	}
}

// fnCtx carries the translation state for one function: the in-progress
// xir.Function/Builder, the local-variable environment (every local is an
// Alloca, read/written through Load/Store so mutation is uniform), and
// the break/continue targets of enclosing loops and switches.
type fnCtx struct {
	t              *Translator
	mod            *xir.Module
	pool           *xir.Pool
	fn             *xir.Function
	b              *xir.Builder
	locals         map[string]*xir.AllocaInst
	localTys       map[string]xir.Type
	breaks         []*xir.BasicBlock
	continues      []*xir.BasicBlock
	pendingComment string
	specialRegs    map[xir.SpecialRegisterTag]*xir.SpecialRegister
}

// specialRegister returns the (function-scoped, cached) SpecialRegister
// value for tag, allocating it on first use so that every read of e.g.
// thread_id within one function shares a single operand value.
func (c *fnCtx) specialRegister(tag xir.SpecialRegisterTag) *xir.SpecialRegister {
	if c.specialRegs == nil {
		c.specialRegs = make(map[xir.SpecialRegisterTag]*xir.SpecialRegister)
	}
	if r, ok := c.specialRegs[tag]; ok {
		return r
	}
	r := xir.NewSpecialRegister(c.pool, tag)
	c.specialRegs[tag] = r
	return r
}

func (t *Translator) declareFunction(mod *xir.Module, f *ast.Function) (*xir.Function, error) {
	retType, err := t.registry.Resolve(f.Return)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", f.Name, err)
	}

	fn := mod.AddFunction(functionKind(f.Kind), f.Name, retType)
	pool := mod.Pool()

	for _, p := range f.Params {
		pt, err := t.registry.Resolve(p.Type)
		if err != nil {
			return nil, fmt.Errorf("function %s param %s: %w", f.Name, p.Name, err)
		}
		byRef := p.ByRef || types.IsResourceType(p.Type)
		fn.AddArgument(pool, pt, byRef)
	}
	return fn, nil
}

func (t *Translator) translateFunctionBody(mod *xir.Module, fn *xir.Function, f *ast.Function) error {
	pool := mod.Pool()
	entry := fn.CreateBlock(pool)
	b := xir.NewBuilder(pool)
	b.SetInsertionPointAtEnd(entry)

	ctx := &fnCtx{t: t, mod: mod, pool: pool, fn: fn, b: b, locals: map[string]*xir.AllocaInst{}, localTys: map[string]xir.Type{}}

	for i, p := range f.Params {
		arg := fn.Arguments()[i]
		alloca := b.AllocaLocal(arg.Type())
		b.CreateStore(alloca, arg)
		ctx.locals[p.Name] = alloca
		ctx.localTys[p.Name] = arg.Type()
	}

	if err := ctx.translateBlock(f.Body); err != nil {
		return err
	}

	if !blockTerminated(b) {
		if fn.ReturnType() == xir.Void {
			b.ReturnVoid()
		} else {
			b.CreateUnreachable()
		}
	}

	return nil
}

func blockTerminated(b *xir.Builder) bool {
	blk := b.InsertionBlock()
	if blk == nil {
		return false
	}
	return blk.Terminator() != nil
}

func (c *fnCtx) translateBlock(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if blockTerminated(c.b) {
			// Code after a terminator (e.g. after a nested return) is
			// unreachable and dropped rather than appended past a
			// terminator, which internal/xir's verifier forbids.
			continue
		}
		if err := c.translateStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *fnCtx) translateStmt(stmt ast.Stmt) error {
	c.t.curPos = stmt.NodePos()
	switch s := stmt.(type) {
	case *ast.CommentStmt:
		c.pendingComment = s.Text
		return nil
	case *ast.LetStmt:
		return c.translateLet(s)
	case *ast.AssignStmt:
		return c.translateAssign(s)
	case *ast.ExprStmt:
		_, err := c.translateExpr(s.Expr)
		return err
	case *ast.ReturnStmt:
		return c.translateReturn(s)
	case *ast.BreakStmt:
		if len(c.breaks) == 0 {
			return fmt.Errorf("break outside of a loop or switch")
		}
		c.b.CreateBreak(c.breaks[len(c.breaks)-1])
		return nil
	case *ast.ContinueStmt:
		if len(c.continues) == 0 {
			return fmt.Errorf("continue outside of a loop")
		}
		c.b.CreateContinue(c.continues[len(c.continues)-1])
		return nil
	case *ast.IfStmt:
		return c.translateIf(s)
	case *ast.ForStmt:
		return c.translateFor(s)
	case *ast.WhileStmt:
		return c.translateWhile(s)
	case *ast.LoopStmt:
		return c.translateLoop(s)
	case *ast.SwitchStmt:
		return c.translateSwitch(s)
	case *ast.PrintStmt:
		args, err := c.translateExprs(s.Args)
		if err != nil {
			return err
		}
		c.attachComment(c.b.CreatePrint(s.Format, args))
		return nil
	case *ast.AssertStmt:
		cond, err := c.translateExpr(s.Cond)
		if err != nil {
			return err
		}
		c.attachComment(c.b.CreateAssert(cond, s.Message))
		return nil
	case *ast.AssumeStmt:
		cond, err := c.translateExpr(s.Cond)
		if err != nil {
			return err
		}
		c.attachComment(c.b.CreateAssume(cond))
		return nil
	}
	return fmt.Errorf("unsupported statement %T", stmt)
}

func (c *fnCtx) attachComment(v xir.Value) {
	if c.pendingComment == "" {
		return
	}
	v.Metadata().Add(xir.NewCommentMD(c.pendingComment))
	c.pendingComment = ""
}

func (c *fnCtx) translateLet(s *ast.LetStmt) error {
	val, err := c.translateExpr(s.Expr)
	if err != nil {
		return err
	}
	typ := val.Type()
	if s.Type != nil {
		resolved, err := c.t.registry.Resolve(s.Type)
		if err != nil {
			return err
		}
		typ = resolved
		val = c.b.StaticCastIfNecessary(typ, val)
	}
	alloca := c.b.AllocaLocal(typ)
	c.b.CreateStore(alloca, val)
	c.attachComment(alloca)
	c.locals[s.Name] = alloca
	c.localTys[s.Name] = typ
	return nil
}

func (c *fnCtx) translateAssign(s *ast.AssignStmt) error {
	ptr, err := c.translateLValue(s.Target)
	if err != nil {
		return err
	}
	val, err := c.translateExpr(s.Value)
	if err != nil {
		return err
	}
	if pt, ok := ptr.Type().(*xir.PointerType); ok {
		val = c.b.StaticCastIfNecessary(pt.Elem(), val)
	}
	c.attachComment(c.b.CreateStore(ptr, val))
	return nil
}

// translateLValue resolves an assignment target to the pointer Store
// should write through: a bare identifier is its local's alloca; an
// index or field expression is lowered to a GEP off the base lvalue.
func (c *fnCtx) translateLValue(e ast.Expr) (xir.Value, error) {
	switch ex := e.(type) {
	case *ast.IdentExpr:
		alloca, ok := c.locals[ex.Name]
		if !ok {
			return nil, fmt.Errorf("assignment to undeclared variable %s", ex.Name)
		}
		return alloca, nil
	case *ast.IndexExpr:
		base, err := c.translateLValue(ex.Target)
		if err != nil {
			return nil, err
		}
		idx, err := c.translateExpr(ex.Index)
		if err != nil {
			return nil, err
		}
		elem := elementType(base.Type())
		return c.b.CreateGEP(base, []xir.Value{idx}, elem), nil
	}
	return nil, fmt.Errorf("field assignment is not supported; only indexed assignment through buffers and arrays is")
}

func elementType(t xir.Type) xir.Type {
	if t == nil {
		return xir.Void
	}
	if e := t.Elem(); e != nil {
		return e
	}
	return t
}

func (c *fnCtx) translateReturn(s *ast.ReturnStmt) error {
	if s.Value == nil {
		c.b.ReturnVoid()
		return nil
	}
	val, err := c.translateExpr(s.Value)
	if err != nil {
		return err
	}
	c.b.CreateReturn(val)
	return nil
}

func (c *fnCtx) translateIf(s *ast.IfStmt) error {
	cond, err := c.translateExpr(s.Cond)
	if err != nil {
		return err
	}
	thenBlock := c.fn.CreateBlock(c.pool)
	elseBlock := c.fn.CreateBlock(c.pool)
	merge := c.fn.CreateBlock(c.pool)
	c.b.CreateIf(cond, thenBlock, elseBlock, merge)

	c.b.SetInsertionPointAtEnd(thenBlock)
	if err := c.translateBlock(s.Then); err != nil {
		return err
	}
	if !blockTerminated(c.b) {
		c.b.CreateBranch(merge)
	}

	c.b.SetInsertionPointAtEnd(elseBlock)
	if err := c.translateBlock(s.Else); err != nil {
		return err
	}
	if !blockTerminated(c.b) {
		c.b.CreateBranch(merge)
	}

	c.b.SetInsertionPointAtEnd(merge)
	return nil
}

// translateFor lowers a counted "for name in low..high" loop to a
// LoopInst: Prepare compares the induction variable against high and
// branches to Body or Merge, Body runs the loop statements then
// increments the induction variable and continues back to Prepare.
func (c *fnCtx) translateFor(s *ast.ForStmt) error {
	low, err := c.translateExpr(s.Low)
	if err != nil {
		return err
	}
	idxAlloca := c.b.AllocaLocal(low.Type())
	c.b.CreateStore(idxAlloca, low)
	c.locals[s.Name] = idxAlloca
	c.localTys[s.Name] = low.Type()

	prepare := c.fn.CreateBlock(c.pool)
	body := c.fn.CreateBlock(c.pool)
	merge := c.fn.CreateBlock(c.pool)
	c.b.CreateLoop(prepare, body, merge)

	c.b.SetInsertionPointAtEnd(prepare)
	high, err := c.translateExpr(s.High)
	if err != nil {
		return err
	}
	cur := c.b.CreateLoad(idxAlloca)
	cond := c.b.CreateArithmetic(xir.ArithLess, xir.Bool, []xir.Value{cur, high})
	c.b.CreateIf(cond, body, merge, merge)

	c.b.SetInsertionPointAtEnd(body)
	c.breaks = append(c.breaks, merge)
	c.continues = append(c.continues, prepare)
	if err := c.translateBlock(s.Body); err != nil {
		return err
	}
	c.breaks = c.breaks[:len(c.breaks)-1]
	c.continues = c.continues[:len(c.continues)-1]
	if !blockTerminated(c.b) {
		cur := c.b.CreateLoad(idxAlloca)
		one := xir.NewConstant(c.pool, cur.Type(), encodeI32(1))
		next := c.b.CreateArithmetic(xir.ArithAdd, cur.Type(), []xir.Value{cur, one})
		c.b.CreateStore(idxAlloca, next)
		c.b.CreateContinue(prepare)
	}

	c.b.SetInsertionPointAtEnd(merge)
	return nil
}

func (c *fnCtx) translateWhile(s *ast.WhileStmt) error {
	prepare := c.fn.CreateBlock(c.pool)
	body := c.fn.CreateBlock(c.pool)
	merge := c.fn.CreateBlock(c.pool)
	c.b.CreateLoop(prepare, body, merge)

	c.b.SetInsertionPointAtEnd(prepare)
	cond, err := c.translateExpr(s.Cond)
	if err != nil {
		return err
	}
	c.b.CreateIf(cond, body, merge, merge)

	c.b.SetInsertionPointAtEnd(body)
	c.breaks = append(c.breaks, merge)
	c.continues = append(c.continues, prepare)
	if err := c.translateBlock(s.Body); err != nil {
		return err
	}
	c.breaks = c.breaks[:len(c.breaks)-1]
	c.continues = c.continues[:len(c.continues)-1]
	if !blockTerminated(c.b) {
		c.b.CreateContinue(prepare)
	}

	c.b.SetInsertionPointAtEnd(merge)
	return nil
}

// translateLoop lowers an unconditional "loop { ... }" to a
// SimpleLoopInst: Body repeats via Continue back to itself until a Break
// or Return exits it.
func (c *fnCtx) translateLoop(s *ast.LoopStmt) error {
	body := c.fn.CreateBlock(c.pool)
	merge := c.fn.CreateBlock(c.pool)
	c.b.CreateSimpleLoop(body, merge)

	c.b.SetInsertionPointAtEnd(body)
	c.breaks = append(c.breaks, merge)
	c.continues = append(c.continues, body)
	if err := c.translateBlock(s.Body); err != nil {
		return err
	}
	c.breaks = c.breaks[:len(c.breaks)-1]
	c.continues = c.continues[:len(c.continues)-1]
	if !blockTerminated(c.b) {
		c.b.CreateContinue(body)
	}

	c.b.SetInsertionPointAtEnd(merge)
	return nil
}

func (c *fnCtx) translateSwitch(s *ast.SwitchStmt) error {
	val, err := c.translateExpr(s.Value)
	if err != nil {
		return err
	}
	merge := c.fn.CreateBlock(c.pool)
	def := merge
	if s.Default != nil {
		def = c.fn.CreateBlock(c.pool)
	}
	sw := c.b.CreateSwitch(val, def, merge)

	c.breaks = append(c.breaks, merge)
	for _, cs := range s.Cases {
		caseBlock := c.fn.CreateBlock(c.pool)
		sw.AddCase(cs.Value, caseBlock)
		c.b.SetInsertionPointAtEnd(caseBlock)
		// A trailing break in source is redundant with falling through to
		// merge and is simply not re-emitted (spec §6: "trailing break
		// instructions are removed").
		if err := c.translateBlock(trimTrailingBreak(cs.Body)); err != nil {
			return err
		}
		if !blockTerminated(c.b) {
			c.b.CreateBranch(merge)
		}
	}
	if s.Default != nil {
		c.b.SetInsertionPointAtEnd(def)
		if err := c.translateBlock(trimTrailingBreak(s.Default)); err != nil {
			return err
		}
		if !blockTerminated(c.b) {
			c.b.CreateBranch(merge)
		}
	}
	c.breaks = c.breaks[:len(c.breaks)-1]

	c.b.SetInsertionPointAtEnd(merge)
	return nil
}

func trimTrailingBreak(stmts []ast.Stmt) []ast.Stmt {
	if n := len(stmts); n > 0 {
		if _, ok := stmts[n-1].(*ast.BreakStmt); ok {
			return stmts[:n-1]
		}
	}
	return stmts
}

func (c *fnCtx) translateExprs(exprs []ast.Expr) ([]xir.Value, error) {
	out := make([]xir.Value, len(exprs))
	for i, e := range exprs {
		v, err := c.translateExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *fnCtx) translateExpr(e ast.Expr) (xir.Value, error) {
	switch ex := e.(type) {
	case *ast.LiteralExpr:
		return c.translateLiteral(ex)
	case *ast.IdentExpr:
		alloca, ok := c.locals[ex.Name]
		if !ok {
			return nil, fmt.Errorf("undeclared identifier %s", ex.Name)
		}
		return c.b.CreateLoad(alloca), nil
	case *ast.ParenExpr:
		return c.translateExpr(ex.Value)
	case *ast.UnaryExpr:
		v, err := c.translateExpr(ex.Value)
		if err != nil {
			return nil, err
		}
		op, ok := unaryOp(ex.Op)
		if !ok {
			return nil, fmt.Errorf("unsupported unary operator %q", ex.Op)
		}
		return c.b.CreateArithmetic(op, v.Type(), []xir.Value{v}), nil
	case *ast.BinaryExpr:
		l, err := c.translateExpr(ex.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.translateExpr(ex.Right)
		if err != nil {
			return nil, err
		}
		op, resultTy, ok := binaryOp(ex.Op, l.Type())
		if !ok {
			return nil, fmt.Errorf("unsupported binary operator %q", ex.Op)
		}
		return c.b.CreateArithmetic(op, resultTy, []xir.Value{l, r}), nil
	case *ast.CallExpr:
		return c.translateCall(ex)
	case *ast.IndexExpr:
		ptr, err := c.translateLValue(ex)
		if err != nil {
			return nil, err
		}
		return c.b.CreateLoad(ptr), nil
	case *ast.FieldExpr:
		return c.translateSwizzle(ex)
	}
	return nil, fmt.Errorf("unsupported expression %T", e)
}

var swizzleIndex = map[byte]int32{'x': 0, 'y': 1, 'z': 2, 'w': 3}

// translateSwizzle reads a single vector component by name (x/y/z/w),
// the only form of field access this language supports: struct field
// access by name is out of scope (spec non-goal: no struct literal
// support in the kernel-source frontend, only opaque resource handles
// and vector/matrix math).
func (c *fnCtx) translateSwizzle(ex *ast.FieldExpr) (xir.Value, error) {
	if len(ex.Field) != 1 {
		return nil, fmt.Errorf("unsupported field access %q; only single-component vector swizzles (x/y/z/w) are supported", ex.Field)
	}
	idx, ok := swizzleIndex[ex.Field[0]]
	if !ok {
		return nil, fmt.Errorf("unknown vector component %q", ex.Field)
	}
	target, err := c.translateExpr(ex.Target)
	if err != nil {
		return nil, err
	}
	elem := elementType(target.Type())
	index := xir.NewConstant(c.pool, xir.I32, encodeI32(idx))
	return c.b.CreateArithmetic(xir.ArithExtract, elem, []xir.Value{target, index}), nil
}

func (c *fnCtx) translateLiteral(ex *ast.LiteralExpr) (xir.Value, error) {
	if isFloatLiteral(ex.Text) {
		f, err := parseFloat(ex.Text)
		if err != nil {
			return nil, err
		}
		return xir.NewConstant(c.pool, xir.F32, encodeF32(f)), nil
	}
	n, err := parseInt(ex.Text)
	if err != nil {
		return nil, err
	}
	return xir.NewConstant(c.pool, xir.I32, encodeI32(int32(n))), nil
}

func (c *fnCtx) translateCall(ex *ast.CallExpr) (xir.Value, error) {
	if intr, ok := stdlib.Lookup(ex.Callee); ok {
		if intr.Register != nil {
			return c.specialRegister(*intr.Register), nil
		}
		args, err := c.translateExprs(ex.Args)
		if err != nil {
			return nil, err
		}
		resultTy := xir.Void
		if len(args) > 0 {
			resultTy = args[0].Type()
		}
		return c.b.CreateIntrinsic(intr.Op, resultTy, args), nil
	}

	callee := c.mod.FunctionByName(ex.Callee)
	if callee == nil {
		return nil, fmt.Errorf("call to unknown function %s", ex.Callee)
	}
	args, err := c.translateExprs(ex.Args)
	if err != nil {
		return nil, err
	}
	return c.b.CreateCall(callee, args), nil
}

func unaryOp(op string) (xir.ArithmeticOp, bool) {
	switch op {
	case "-":
		return xir.ArithUnaryMinus, true
	case "!":
		return xir.ArithUnaryNot, true
	case "~":
		return xir.ArithUnaryBitNot, true
	}
	return 0, false
}

func binaryOp(op string, lhsType xir.Type) (xir.ArithmeticOp, xir.Type, bool) {
	switch op {
	case "+":
		return xir.ArithAdd, lhsType, true
	case "-":
		return xir.ArithSub, lhsType, true
	case "*":
		return xir.ArithMul, lhsType, true
	case "/":
		return xir.ArithDiv, lhsType, true
	case "%":
		return xir.ArithMod, lhsType, true
	case "&":
		return xir.ArithBitAnd, lhsType, true
	case "|":
		return xir.ArithBitOr, lhsType, true
	case "^":
		return xir.ArithBitXor, lhsType, true
	case "&&":
		return xir.ArithAnd, xir.Bool, true
	case "||":
		return xir.ArithOr, xir.Bool, true
	case "==":
		return xir.ArithEqual, xir.Bool, true
	case "!=":
		return xir.ArithNotEqual, xir.Bool, true
	case "<":
		return xir.ArithLess, xir.Bool, true
	case "<=":
		return xir.ArithLessEqual, xir.Bool, true
	case ">":
		return xir.ArithGreater, xir.Bool, true
	case ">=":
		return xir.ArithGreaterEqual, xir.Bool, true
	}
	return 0, nil, false
}
