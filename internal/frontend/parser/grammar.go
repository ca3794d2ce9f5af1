// Package parser parses the kernel-source language into
// internal/frontend/ast trees, using github.com/alecthomas/participle/v2
// the way the contract compiler's own experimental participle grammar
// (grammar/grammar.go in the host repository) is shaped: a dedicated
// grammar-tree struct set built by participle's struct tags, converted to
// the project's real AST by a separate build pass (build.go) rather than
// parsed directly into it.
package parser

import "github.com/alecthomas/participle/v2/lexer"

// gModule is the grammar-tree root: zero or more struct or function
// declarations.
type gModule struct {
	Items []*gItem `@@*`
}

type gItem struct {
	Struct   *gStruct   `  @@`
	Function *gFunction `| @@`
}

type gStruct struct {
	Name    string      `"struct" @Ident "{"`
	Members []*gMember  `@@* "}"`
}

type gMember struct {
	Name string `@Ident ":"`
	Type *gType `@@ ","`
}

type gType struct {
	// Name also accepts an Int token so a generic argument that is a bare
	// count (the 3 in vec<f32, 3>) parses as a gType; build.go folds an
	// all-digit Name into ast.TypeExpr.IntArgs.
	Name string   `@(Ident | Int)`
	Args []*gType `[ "<" @@ { "," @@ } ">" ]`
}

type gFunction struct {
	Pos      lexer.Position
	Kind     string       `@("kernel" | "callable" | "external") "fn"`
	Name     string       `@Ident "("`
	Params   []*gParam    `[ @@ { "," @@ } ] ")"`
	Return   *gType       `[ "->" @@ ]`
	Body     *gBlock      `[ @@ ] [ ";" ]`
}

type gParam struct {
	Name  string `@Ident ":"`
	ByRef bool   `[ @"&" ]`
	Type  *gType `@@`
}

type gBlock struct {
	Statements []*gStmt `"{" @@* "}"`
}

type gStmt struct {
	Pos      lexer.Position
	Comment  *gComment  `  @@`
	Let      *gLet      `| @@`
	If       *gIf       `| @@`
	For      *gFor      `| @@`
	While    *gWhile    `| @@`
	Loop     *gLoop     `| @@`
	Switch   *gSwitch   `| @@`
	Return   *gReturn   `| @@`
	Break    *gBreak    `| @@`
	Continue *gContinue `| @@`
	Print    *gPrint    `| @@`
	Assert   *gAssert   `| @@`
	Assume   *gAssume   `| @@`
	Assign   *gAssign   `| @@`
	ExprStmt *gExprStmt `| @@`
}

type gComment struct {
	Text string `@Comment`
}

type gLet struct {
	Mut  bool   `"let" [ @"mut" ]`
	Name string `@Ident`
	Type *gType `[ ":" @@ ]`
	Expr *gExpr `"=" @@ ";"`
}

type gIf struct {
	Cond *gExpr  `"if" @@`
	Then *gBlock `@@`
	Else *gBlock `[ "else" @@ ]`
}

type gFor struct {
	Name string  `"for" @Ident "in"`
	Low  *gExpr  `@@ ".."`
	High *gExpr  `@@`
	Body *gBlock `@@`
}

type gWhile struct {
	Cond *gExpr  `"while" @@`
	Body *gBlock `@@`
}

type gLoop struct {
	Body *gBlock `"loop" @@`
}

type gSwitchCase struct {
	Value int64   `"case" @Int ":"`
	Body  *gBlock `@@`
}

type gSwitch struct {
	Value   *gExpr         `"switch" @@ "{"`
	Cases   []*gSwitchCase `@@*`
	Default *gBlock        `[ "default" ":" @@ ] "}"`
}

type gReturn struct {
	Expr *gExpr `"return" [ @@ ] ";"`
}

type gBreak struct {
	Present bool `@"break" ";"`
}

type gContinue struct {
	Present bool `@"continue" ";"`
}

type gPrint struct {
	Format string   `"print" "(" @String`
	Args   []*gExpr `[ "," @@ { "," @@ } ] ")" ";"`
}

type gAssert struct {
	Cond    *gExpr `"assert" "(" @@`
	Message string `[ "," @String ] ")" ";"`
}

type gAssume struct {
	Cond *gExpr `"assume" "(" @@ ")" ";"`
}

type gAssign struct {
	Target *gExpr `@@ "="`
	Value  *gExpr `@@ ";"`
}

type gExprStmt struct {
	Expr *gExpr `@@ ";"`
}

// gExpr is a flat operator/operand chain; build.go applies precedence
// climbing to turn it into a properly nested ast.Expr.
type gExpr struct {
	Left *gUnary  `@@`
	Ops  []*gBinOp `{ @@ }`
}

type gBinOp struct {
	Operator string  `@("||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%" | "&" | "|" | "^")`
	Right    *gUnary `@@`
}

type gUnary struct {
	Operator string    `[ @("-" | "!" | "~") ]`
	Value    *gPostfix `@@`
}

type gPostfix struct {
	Primary *gPrimary     `@@`
	Suffix  []*gPostfixOp `{ @@ }`
}

type gPostfixOp struct {
	Field *string  `  "." @Ident`
	Index *gExpr   `| "[" @@ "]"`
}

type gPrimary struct {
	Pos    lexer.Position
	Call   *gCall  `  @@`
	Float  *string `| @Float`
	Int    *string `| @Int`
	Ident  *string `| @Ident`
	Parens *gExpr  `| "(" @@ ")"`
}

type gCall struct {
	Name string   `@Ident "("`
	Args []*gExpr `[ @@ { "," @@ } ] ")"`
}
