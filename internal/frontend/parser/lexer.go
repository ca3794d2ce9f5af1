package parser

import "github.com/alecthomas/participle/v2/lexer"

// kernelLexer tokenizes kernel-source files, following the same rule
// ordering discipline as the contract compiler's experimental participle
// grammar (grammar/lexer.go): comments and numbers before identifiers,
// multi-character operators before single-character punctuation. Keywords
// have no rule of their own; they lex as Ident and the grammar matches
// them by literal value.
var kernelLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `0x[0-9a-fA-F]+|[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "String", Pattern: `"(\\.|[^"])*"`},
	{Name: "Operator", Pattern: `(\.\.|==|!=|<=|>=|&&|\|\||\+=|-=|\*=|/=|->|[-+*/%<>=!&|^~])`},
	{Name: "Punct", Pattern: `[{}()\[\],:;.]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
