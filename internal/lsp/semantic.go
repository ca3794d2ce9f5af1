package lsp

import "xir/internal/frontend/ast"

// SemanticToken represents a single LSP semantic token entry. Line and
// StartChar are 0-based positions, TokenType is an index into
// SemanticTokenTypes, and TokenModifiers is a bitmask over
// SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(m *ast.Module) []SemanticToken {
	var tokens []SemanticToken
	if m == nil {
		return tokens
	}

	for _, s := range m.Structs {
		tokens = append(tokens, makeToken(s.Pos, s.Name, "type", 1))
		for _, field := range s.Members {
			tokens = append(tokens, makeToken(field.Pos, field.Name, "property", 1))
			tokens = append(tokens, typeToken(field.Type)...)
		}
	}

	for _, f := range m.Functions {
		tokens = append(tokens, makeToken(f.Pos, f.Name, "function", 1))
		for _, p := range f.Params {
			tokens = append(tokens, makeToken(p.Pos, p.Name, "parameter", 0))
			tokens = append(tokens, typeToken(p.Type)...)
		}
		tokens = append(tokens, typeToken(f.Return)...)
		tokens = append(tokens, walkStmts(f.Body)...)
	}

	return tokens
}

func walkStmts(stmts []ast.Stmt) []SemanticToken {
	var tokens []SemanticToken
	for _, s := range stmts {
		tokens = append(tokens, walkStmt(s)...)
	}
	return tokens
}

func walkStmt(s ast.Stmt) []SemanticToken {
	var tokens []SemanticToken
	switch st := s.(type) {
	case *ast.LetStmt:
		tokens = append(tokens, makeToken(st.Pos, st.Name, "variable", 1))
		tokens = append(tokens, walkExpr(st.Expr)...)
	case *ast.AssignStmt:
		tokens = append(tokens, walkExpr(st.Target)...)
		tokens = append(tokens, walkExpr(st.Value)...)
	case *ast.ExprStmt:
		tokens = append(tokens, walkExpr(st.Expr)...)
	case *ast.ReturnStmt:
		tokens = append(tokens, walkExpr(st.Value)...)
	case *ast.IfStmt:
		tokens = append(tokens, walkExpr(st.Cond)...)
		tokens = append(tokens, walkStmts(st.Then)...)
		tokens = append(tokens, walkStmts(st.Else)...)
	case *ast.ForStmt:
		tokens = append(tokens, makeToken(st.Pos, st.Name, "variable", 1))
		tokens = append(tokens, walkExpr(st.Low)...)
		tokens = append(tokens, walkExpr(st.High)...)
		tokens = append(tokens, walkStmts(st.Body)...)
	case *ast.WhileStmt:
		tokens = append(tokens, walkExpr(st.Cond)...)
		tokens = append(tokens, walkStmts(st.Body)...)
	case *ast.LoopStmt:
		tokens = append(tokens, walkStmts(st.Body)...)
	case *ast.SwitchStmt:
		tokens = append(tokens, walkExpr(st.Value)...)
		for _, c := range st.Cases {
			tokens = append(tokens, walkStmts(c.Body)...)
		}
		tokens = append(tokens, walkStmts(st.Default)...)
	case *ast.AssertStmt:
		tokens = append(tokens, walkExpr(st.Cond)...)
	case *ast.AssumeStmt:
		tokens = append(tokens, walkExpr(st.Cond)...)
	case *ast.PrintStmt:
		for _, a := range st.Args {
			tokens = append(tokens, walkExpr(a)...)
		}
	}
	return tokens
}

func walkExpr(e ast.Expr) []SemanticToken {
	var tokens []SemanticToken
	switch ex := e.(type) {
	case nil:
		return nil
	case *ast.IdentExpr:
		tokens = append(tokens, makeToken(ex.Pos, ex.Name, "variable", 0))
	case *ast.UnaryExpr:
		tokens = append(tokens, walkExpr(ex.Value)...)
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpr(ex.Left)...)
		tokens = append(tokens, walkExpr(ex.Right)...)
	case *ast.CallExpr:
		tokens = append(tokens, makeToken(ex.Pos, ex.Callee, "function", 0))
		for _, a := range ex.Args {
			tokens = append(tokens, walkExpr(a)...)
		}
	case *ast.IndexExpr:
		tokens = append(tokens, walkExpr(ex.Target)...)
		tokens = append(tokens, walkExpr(ex.Index)...)
	case *ast.FieldExpr:
		tokens = append(tokens, walkExpr(ex.Target)...)
	case *ast.ParenExpr:
		tokens = append(tokens, walkExpr(ex.Value)...)
	}
	return tokens
}

func makeToken(pos ast.Position, name, tokenType string, decl int) SemanticToken {
	return SemanticToken{
		Line:           uint32(maxInt(pos.Line-1, 0)),
		StartChar:      uint32(maxInt(pos.Column-1, 0)),
		Length:         uint32(len(name)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: decl << indexOf("declaration", SemanticTokenModifiers),
	}
}

func typeToken(t *ast.TypeExpr) []SemanticToken {
	if t == nil {
		return nil
	}
	tokens := []SemanticToken{makeToken(t.Pos, t.Name, "type", 0)}
	for _, arg := range t.Args {
		tokens = append(tokens, typeToken(arg)...)
	}
	return tokens
}

func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return -1
}
