package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"xir/internal/frontend/ast"
)

var kernelParser = participle.MustBuild[gModule](
	participle.Lexer(kernelLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseSource parses filename's contents into a kernel-source AST. The
// returned error, when non-nil, implements participle.Error and carries a
// source Position usable for diagnostic reporting.
func ParseSource(filename, source string) (*ast.Module, error) {
	tree, err := kernelParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return build(filename, tree)
}

// ParseExpr parses a single expression, used by repl/ to evaluate one-off
// expressions without wrapping them in a function.
func ParseExpr(source string) (ast.Expr, error) {
	p := participle.MustBuild[gExpr](
		participle.Lexer(kernelLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
	tree, err := p.ParseString("", source)
	if err != nil {
		return nil, err
	}
	return buildExpr("", tree), nil
}

// errSyntax wraps a structural shape the grammar allows but the language
// rejects (e.g. a statement that matched no alternative); kept distinct from
// participle's own parse errors since it carries no token position.
type errSyntax struct{ msg string }

func (e errSyntax) Error() string { return e.msg }

func syntaxErrorf(format string, args ...any) error {
	return errSyntax{msg: fmt.Sprintf(format, args...)}
}
