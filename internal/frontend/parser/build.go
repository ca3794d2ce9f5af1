package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"xir/internal/frontend/ast"
)

func pos(filename string, p lexer.Position) ast.Position {
	return ast.Position{Filename: filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func build(filename string, m *gModule) (*ast.Module, error) {
	out := &ast.Module{}
	for _, item := range m.Items {
		switch {
		case item.Struct != nil:
			s, err := buildStruct(filename, item.Struct)
			if err != nil {
				return nil, err
			}
			out.Structs = append(out.Structs, s)
		case item.Function != nil:
			f, err := buildFunction(filename, item.Function)
			if err != nil {
				return nil, err
			}
			out.Functions = append(out.Functions, f)
		}
	}
	return out, nil
}

func buildStruct(filename string, s *gStruct) (*ast.StructDecl, error) {
	out := &ast.StructDecl{Name: s.Name}
	for _, m := range s.Members {
		out.Members = append(out.Members, &ast.StructMember{Name: m.Name, Type: buildType(m.Type)})
	}
	return out, nil
}

func buildType(t *gType) *ast.TypeExpr {
	if t == nil {
		return nil
	}
	out := &ast.TypeExpr{Name: t.Name}
	for _, a := range t.Args {
		// An integer generic argument like the 3 in vec<f32, 3> parses as
		// a gType whose Name is the literal digits; fold it into IntArgs.
		if isAllDigits(a.Name) && len(a.Args) == 0 {
			out.IntArgs = append(out.IntArgs, atoi(a.Name))
			continue
		}
		out.Args = append(out.Args, buildType(a))
	}
	return out
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int64 {
	var n int64
	for _, r := range s {
		n = n*10 + int64(r-'0')
	}
	return n
}

func buildFunction(filename string, f *gFunction) (*ast.Function, error) {
	kind := ast.FunctionCallable
	switch f.Kind {
	case "kernel":
		kind = ast.FunctionKernel
	case "external":
		kind = ast.FunctionExternal
	}

	out := &ast.Function{
		Pos:    pos(filename, f.Pos),
		Kind:   kind,
		Name:   f.Name,
		Return: buildType(f.Return),
	}
	for _, p := range f.Params {
		out.Params = append(out.Params, &ast.Param{Name: p.Name, Type: buildType(p.Type), ByRef: p.ByRef})
	}
	if f.Body != nil {
		stmts, err := buildBlock(filename, f.Body)
		if err != nil {
			return nil, err
		}
		out.Body = stmts
	}
	return out, nil
}

func buildBlock(filename string, b *gBlock) ([]ast.Stmt, error) {
	if b == nil {
		return nil, nil
	}
	out := make([]ast.Stmt, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmt, err := buildStmt(filename, s)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

func buildStmt(filename string, s *gStmt) (ast.Stmt, error) {
	p := pos(filename, s.Pos)
	switch {
	case s.Comment != nil:
		return &ast.CommentStmt{Pos: p, Text: s.Comment.Text}, nil
	case s.Let != nil:
		return &ast.LetStmt{Pos: p, Mut: s.Let.Mut, Name: s.Let.Name, Type: buildType(s.Let.Type), Expr: buildExpr(filename, s.Let.Expr)}, nil
	case s.If != nil:
		then, err := buildBlock(filename, s.If.Then)
		if err != nil {
			return nil, err
		}
		els, err := buildBlock(filename, s.If.Else)
		if err != nil {
			return nil, err
		}
		return &ast.IfStmt{Pos: p, Cond: buildExpr(filename, s.If.Cond), Then: then, Else: els}, nil
	case s.For != nil:
		body, err := buildBlock(filename, s.For.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStmt{Pos: p, Name: s.For.Name, Low: buildExpr(filename, s.For.Low), High: buildExpr(filename, s.For.High), Body: body}, nil
	case s.While != nil:
		body, err := buildBlock(filename, s.While.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Pos: p, Cond: buildExpr(filename, s.While.Cond), Body: body}, nil
	case s.Loop != nil:
		body, err := buildBlock(filename, s.Loop.Body)
		if err != nil {
			return nil, err
		}
		return &ast.LoopStmt{Pos: p, Body: body}, nil
	case s.Switch != nil:
		return buildSwitch(filename, p, s.Switch)
	case s.Return != nil:
		return &ast.ReturnStmt{Pos: p, Value: buildExpr(filename, s.Return.Expr)}, nil
	case s.Break != nil:
		return &ast.BreakStmt{Pos: p}, nil
	case s.Continue != nil:
		return &ast.ContinueStmt{Pos: p}, nil
	case s.Print != nil:
		args := make([]ast.Expr, len(s.Print.Args))
		for i, a := range s.Print.Args {
			args[i] = buildExpr(filename, a)
		}
		return &ast.PrintStmt{Pos: p, Format: unquote(s.Print.Format), Args: args}, nil
	case s.Assert != nil:
		return &ast.AssertStmt{Pos: p, Cond: buildExpr(filename, s.Assert.Cond), Message: unquote(s.Assert.Message)}, nil
	case s.Assume != nil:
		return &ast.AssumeStmt{Pos: p, Cond: buildExpr(filename, s.Assume.Cond)}, nil
	case s.Assign != nil:
		return &ast.AssignStmt{Pos: p, Target: buildExpr(filename, s.Assign.Target), Value: buildExpr(filename, s.Assign.Value)}, nil
	case s.ExprStmt != nil:
		return &ast.ExprStmt{Pos: p, Expr: buildExpr(filename, s.ExprStmt.Expr)}, nil
	}
	return nil, syntaxErrorf("empty statement at %d:%d", s.Pos.Line, s.Pos.Column)
}

func buildSwitch(filename string, p ast.Position, sw *gSwitch) (ast.Stmt, error) {
	out := &ast.SwitchStmt{Pos: p, Value: buildExpr(filename, sw.Value)}
	for _, c := range sw.Cases {
		body, err := buildBlock(filename, c.Body)
		if err != nil {
			return nil, err
		}
		out.Cases = append(out.Cases, &ast.SwitchCase{Value: c.Value, Body: body})
	}
	if sw.Default != nil {
		body, err := buildBlock(filename, sw.Default)
		if err != nil {
			return nil, err
		}
		out.Default = body
	}
	return out, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
