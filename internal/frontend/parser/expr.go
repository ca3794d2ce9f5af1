package parser

import "xir/internal/frontend/ast"

// precedence ranks binary operators from loosest to tightest binding, used
// by buildExpr's precedence-climbing pass over the grammar's flat
// left/Ops operator chain (gExpr never nests by precedence itself).
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"|": 5, "^": 5, "&": 6,
	"+": 7, "-": 7,
	"*": 8, "/": 8, "%": 8,
}

type opOperand struct {
	op  string
	rhs ast.Expr
}

func buildExpr(filename string, e *gExpr) ast.Expr {
	if e == nil {
		return nil
	}
	left := buildUnary(filename, e.Left)
	ops := make([]opOperand, len(e.Ops))
	for i, o := range e.Ops {
		ops[i] = opOperand{op: o.Operator, rhs: buildUnary(filename, o.Right)}
	}
	result, rest := climb(left, ops, 0)
	_ = rest
	return result
}

// climb consumes ops greedily while their precedence is >= minPrec,
// building a left-associative tree; ops with equal precedence chain
// left-to-right, matching C-family associativity for these operators.
func climb(left ast.Expr, ops []opOperand, minPrec int) (ast.Expr, []opOperand) {
	for len(ops) > 0 {
		prec := precedence[ops[0].op]
		if prec < minPrec {
			break
		}
		op := ops[0]
		rest := ops[1:]
		var next ast.Expr
		next, rest = climb(op.rhs, rest, prec+1)
		left = &ast.BinaryExpr{Pos: left.NodePos(), Op: op.op, Left: left, Right: next}
		ops = rest
	}
	return left, ops
}

func buildUnary(filename string, u *gUnary) ast.Expr {
	val := buildPostfix(filename, u.Value)
	if u.Operator == "" {
		return val
	}
	return &ast.UnaryExpr{Pos: val.NodePos(), Op: u.Operator, Value: val}
}

func buildPostfix(filename string, p *gPostfix) ast.Expr {
	out := buildPrimary(filename, p.Primary)
	for _, suf := range p.Suffix {
		switch {
		case suf.Field != nil:
			out = &ast.FieldExpr{Pos: out.NodePos(), Target: out, Field: *suf.Field}
		case suf.Index != nil:
			out = &ast.IndexExpr{Pos: out.NodePos(), Target: out, Index: buildExpr(filename, suf.Index)}
		}
	}
	return out
}

func buildPrimary(filename string, p *gPrimary) ast.Expr {
	at := pos(filename, p.Pos)
	switch {
	case p.Call != nil:
		args := make([]ast.Expr, len(p.Call.Args))
		for i, a := range p.Call.Args {
			args[i] = buildExpr(filename, a)
		}
		return &ast.CallExpr{Pos: at, Callee: p.Call.Name, Args: args}
	case p.Float != nil:
		return &ast.LiteralExpr{Pos: at, Text: *p.Float}
	case p.Int != nil:
		return &ast.LiteralExpr{Pos: at, Text: *p.Int}
	case p.Ident != nil:
		return &ast.IdentExpr{Pos: at, Name: *p.Ident}
	case p.Parens != nil:
		return &ast.ParenExpr{Pos: at, Value: buildExpr(filename, p.Parens)}
	}
	return nil
}
