// Package semantic checks a parsed kernel-source module before
// translation to XIR, adapted from the contract compiler's
// internal/semantic flow analyzer (definite-return and unused-variable
// checks driven by a per-function walk) to this language's statement set.
package semantic

import (
	"fmt"

	"xir/internal/frontend/ast"
	"xir/internal/frontend/types"
)

// Error is one checker diagnostic, carrying the AST position it applies to.
type Error struct {
	Pos     ast.Position
	Message string
}

func (e Error) Error() string { return fmt.Sprintf("%s: %s", formatPos(e.Pos), e.Message) }

func formatPos(p ast.Position) string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Checker validates a Module against the registry of declared types.
type Checker struct {
	registry *types.Registry
	errors   []Error
}

// NewChecker creates a Checker backed by registry, which must already have
// every struct in the module declared (callers typically call
// Registry.DeclareStruct for each ast.StructDecl before constructing one).
func NewChecker(registry *types.Registry) *Checker {
	return &Checker{registry: registry}
}

// CheckModule runs every per-function check and returns the accumulated
// errors, or nil if the module is well formed.
func (c *Checker) CheckModule(m *ast.Module) []Error {
	c.errors = nil
	for _, fn := range m.Functions {
		c.checkFunction(fn)
	}
	return c.errors
}

func (c *Checker) errorf(pos ast.Position, format string, args ...any) {
	c.errors = append(c.errors, Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (c *Checker) checkFunction(fn *ast.Function) {
	if fn.Kind == ast.FunctionExternal {
		if fn.Body != nil {
			c.errorf(fn.Pos, "external function %s must not have a body", fn.Name)
		}
		return
	}
	if fn.Body == nil {
		c.errorf(fn.Pos, "function %s has no body", fn.Name)
		return
	}

	for _, p := range fn.Params {
		if _, err := c.registry.Resolve(p.Type); err != nil {
			c.errorf(p.Pos, "parameter %s: %s", p.Name, err)
		}
	}
	if fn.Return != nil {
		if _, err := c.registry.Resolve(fn.Return); err != nil {
			c.errorf(fn.Pos, "return type: %s", err)
		}
	}

	scope := newScope(nil)
	for _, p := range fn.Params {
		scope.declare(p.Name)
	}

	returns := c.checkBlock(fn.Body, scope, loopDepth(0))
	if fn.Return != nil && !returns {
		c.errorf(fn.Pos, "function %s must return a value on every path", fn.Name)
	}
}

type loopDepth int

// scope tracks locals declared so far, to flag use-before-declare; child
// scopes see their parent's names. Redeclaring a name is not reported.
type scope struct {
	parent *scope
	names  map[string]bool
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: map[string]bool{}}
}

func (s *scope) declare(name string) { s.names[name] = true }

func (s *scope) has(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.names[name] {
			return true
		}
	}
	return false
}

// checkBlock walks stmts, reporting errors, and returns whether every
// execution path through it definitely returns.
func (c *Checker) checkBlock(body []ast.Stmt, parent *scope, depth loopDepth) bool {
	s := newScope(parent)
	returns := false
	for i, stmt := range body {
		if returns {
			c.errorf(stmt.NodePos(), "unreachable statement after a statement that always returns")
		}
		if r := c.checkStmt(stmt, s, depth); r {
			returns = true
		}
		_ = i
	}
	return returns
}

func (c *Checker) checkStmt(stmt ast.Stmt, s *scope, depth loopDepth) bool {
	switch st := stmt.(type) {
	case *ast.LetStmt:
		c.checkExpr(st.Expr, s)
		s.declare(st.Name)
		return false
	case *ast.AssignStmt:
		c.checkExpr(st.Target, s)
		c.checkExpr(st.Value, s)
		return false
	case *ast.ExprStmt:
		c.checkExpr(st.Expr, s)
		return false
	case *ast.ReturnStmt:
		if st.Value != nil {
			c.checkExpr(st.Value, s)
		}
		return true
	case *ast.BreakStmt:
		if depth == 0 {
			c.errorf(st.Pos, "break outside of a loop or switch")
		}
		return false
	case *ast.ContinueStmt:
		if depth == 0 {
			c.errorf(st.Pos, "continue outside of a loop")
		}
		return false
	case *ast.IfStmt:
		c.checkExpr(st.Cond, s)
		thenReturns := c.checkBlock(st.Then, s, depth)
		if st.Else == nil {
			return false
		}
		elseReturns := c.checkBlock(st.Else, s, depth)
		return thenReturns && elseReturns
	case *ast.ForStmt:
		c.checkExpr(st.Low, s)
		c.checkExpr(st.High, s)
		body := newScope(s)
		body.declare(st.Name)
		c.checkBlock(st.Body, body, depth+1)
		return false
	case *ast.WhileStmt:
		c.checkExpr(st.Cond, s)
		c.checkBlock(st.Body, s, depth+1)
		return false
	case *ast.LoopStmt:
		// An unconditional loop only completes via break/return inside it;
		// it is conservatively never treated as a definite return here,
		// matching the translator's own SimpleLoopInst shape (spec §4.9).
		c.checkBlock(st.Body, s, depth+1)
		return false
	case *ast.SwitchStmt:
		c.checkExpr(st.Value, s)
		allReturn := st.Default != nil
		if st.Default != nil {
			allReturn = c.checkBlock(st.Default, s, depth+1) && allReturn
		}
		for _, cs := range st.Cases {
			if !c.checkBlock(cs.Body, s, depth+1) {
				allReturn = false
			}
		}
		return allReturn
	case *ast.PrintStmt:
		for _, a := range st.Args {
			c.checkExpr(a, s)
		}
		return false
	case *ast.AssertStmt:
		c.checkExpr(st.Cond, s)
		return false
	case *ast.AssumeStmt:
		c.checkExpr(st.Cond, s)
		return false
	case *ast.CommentStmt:
		return false
	}
	return false
}

func (c *Checker) checkExpr(e ast.Expr, s *scope) {
	switch ex := e.(type) {
	case *ast.IdentExpr:
		if !s.has(ex.Name) {
			c.errorf(ex.Pos, "undeclared identifier %s", ex.Name)
		}
	case *ast.UnaryExpr:
		c.checkExpr(ex.Value, s)
	case *ast.BinaryExpr:
		c.checkExpr(ex.Left, s)
		c.checkExpr(ex.Right, s)
	case *ast.CallExpr:
		for _, a := range ex.Args {
			c.checkExpr(a, s)
		}
	case *ast.IndexExpr:
		c.checkExpr(ex.Target, s)
		c.checkExpr(ex.Index, s)
	case *ast.FieldExpr:
		c.checkExpr(ex.Target, s)
	case *ast.ParenExpr:
		c.checkExpr(ex.Value, s)
	}
}
