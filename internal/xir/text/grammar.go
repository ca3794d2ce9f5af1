package text

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar below mirrors the stable textual grammar sketch verbatim
// (spec §6): struct/const/func decls at module scope, a func body as
// nested blocks of semicolon-terminated instructions. It is built against
// exactly what Print emits, so the two stay in sync by construction;
// internal/frontend's own AST never round-trips through this form, this
// parser exists for inspecting/diffing printed IR.
var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Number", Pattern: `[-+]?[0-9]+`},
	{Name: "Ident", Pattern: `%[A-Za-z0-9_][A-Za-z0-9_.]*|[A-Za-z_][A-Za-z0-9_.]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Punct", Pattern: `[{}()\[\]:,=<>&;]`},
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},
})

// TypeAST is a recursive descent over the canonical type grammar (spec
// §4.14): a bare name (i32, a struct's Tn alias, ...), an optional
// leading '&' for a by-reference argument type, and optional angle-bracket
// type/dimension arguments (vector<f32, 4>, ptr<T3>, array<f32, 4>, ...).
type TypeAST struct {
	Ref  bool          `parser:"@'&'?"`
	Name string        `parser:"@Ident"`
	Args []*TypeArgAST `parser:"('<' @@ (',' @@)* '>')?"`
}

// TypeArgAST is one comma-separated argument inside a type's angle
// brackets: either a nested type or a bare dimension/length number.
type TypeArgAST struct {
	Type *TypeAST `parser:"  @@"`
	Num  *int     `parser:"| @Number"`
}

// StructDeclAST is "type Tn = struct { member_type, ... };".
type StructDeclAST struct {
	Name    string     `parser:"'type' @Ident '=' 'struct' '{'"`
	Members []*TypeAST `parser:"(@@ (',' @@)*)? '}' ';'"`
}

// ConstDeclAST is "const %n: type = 0x...;".
type ConstDeclAST struct {
	Name  string   `parser:"'const' @Ident ':'"`
	Type  *TypeAST `parser:"@@"`
	Value string   `parser:"'=' @Hex ';'"`
}

// ParamAST is one "%n: type" or "%n: &type" function argument.
type ParamAST struct {
	Name string   `parser:"@Ident ':'"`
	Type *TypeAST `parser:"@@"`
}

// OperandAST captures one operand token run up to the next ',' or ';':
// a plain identifier/register reference, a "case N -> %m" / "default ->
// %m" / "merge -> %m" switch edge, or a "%block: %value" phi edge.
type OperandAST struct {
	Case    string `parser:"(  @'case' @Number '->' @Ident"`
	Default string `parser:"|  @'default' '->' @Ident"`
	Merge   string `parser:"|  @'merge' '->' @Ident"`
	Phi     string `parser:"|  @Ident ':' @Ident"`
	Plain   string `parser:"|  @Ident )"`
}

// InstrAST is "%n: type = mnemonic operand*;", optionally preceded by a
// bracket metadata line (spec §6's Metadata section).
type InstrAST struct {
	Metadata *MetadataAST `parser:"@@?"`
	Result   string       `parser:"@Ident ':'"`
	Type     *TypeAST     `parser:"@@ '='"`
	Mnemonic string       `parser:"@Ident"`
	Operands []*OperandAST `parser:"(@@ (',' @@)*)? ';'"`
}

// MetadataAST is "[name = ident, location = (\"path\", line), comment =
// \"text\"]" (spec §6).
type MetadataAST struct {
	Name     string `parser:"'[' ('name' '=' @Ident)?"`
	File     string `parser:"(',' 'location' '=' '(' @String"`
	Line     int    `parser:"',' @Number ')')?"`
	Comment  string `parser:"(',' 'comment' '=' @String)? ']'"`
}

// BlockAST is "%n: { instr* }".
type BlockAST struct {
	Label  string      `parser:"@Ident ':' '{'"`
	Instrs []*InstrAST `parser:"@@* '}'"`
}

// FuncDeclAST is "func_kind %n (: type)? (arg_list) (= define { block* })? ;"
type FuncDeclAST struct {
	Metadata *MetadataAST `parser:"@@?"`
	Kind     string       `parser:"@('kernel' | 'callable' | 'external')"`
	Name     string       `parser:"@Ident"`
	Ret      *TypeAST     `parser:"(':' @@)?"`
	Params   []*ParamAST  `parser:"'(' (@@ (',' @@)*)? ')'"`
	Blocks   []*BlockAST  `parser:"(('=' 'define' '{' @@* '}' ';') | ';')"`
}

// DeclAST is one top-level module declaration.
type DeclAST struct {
	Struct *StructDeclAST `parser:"  @@"`
	Const  *ConstDeclAST  `parser:"| @@"`
	Func   *FuncDeclAST   `parser:"| @@"`
}

// ModuleAST is the full parsed module: every struct/const/func decl, in
// the order Print emits them.
type ModuleAST struct {
	Decls []*DeclAST `parser:"@@*"`
}

var parser = participle.MustBuild[ModuleAST](
	participle.Lexer(textLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// Parse reads text printed by Print back into its declaration tree.
func Parse(src string) (*ModuleAST, error) {
	return parser.ParseString("", src)
}
