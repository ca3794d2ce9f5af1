package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xir/internal/frontend/ast"
)

func TestParseEmptyKernel(t *testing.T) {
	source := `kernel fn main() {
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)
	assert.NotNil(t, mod)
	assert.Len(t, mod.Functions, 1)
	assert.Equal(t, ast.FunctionKernel, mod.Functions[0].Kind)
	assert.Equal(t, "main", mod.Functions[0].Name)
	assert.Empty(t, mod.Functions[0].Body)
}

func TestParseStructDecl(t *testing.T) {
	source := `struct Particle {
    position: vec<f32, 3>,
    velocity: vec<f32, 3>,
    mass: f32,
}

kernel fn step() {
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)
	assert.Len(t, mod.Structs, 1)

	s := mod.Structs[0]
	assert.Equal(t, "Particle", s.Name)
	assert.Len(t, s.Members, 3)
	assert.Equal(t, "position", s.Members[0].Name)
	assert.Equal(t, "vec", s.Members[0].Type.Name)
	assert.Equal(t, []int64{3}, s.Members[0].Type.IntArgs)
}

func TestParseParamsAndReturn(t *testing.T) {
	source := `callable fn add(a: i32, b: i32) -> i32 {
    return a + b;
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)
	assert.Len(t, mod.Functions, 1)

	fn := mod.Functions[0]
	assert.Equal(t, ast.FunctionCallable, fn.Kind)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "i32", fn.Params[0].Type.Name)
	assert.NotNil(t, fn.Return)
	assert.Equal(t, "i32", fn.Return.Name)
	assert.Len(t, fn.Body, 1)

	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	assert.True(t, ok)
	assert.NotNil(t, ret.Value)
}

func TestParseExternalFunctionHasNoBody(t *testing.T) {
	source := `external fn device_reset(buf: buffer<f32>);`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)
	assert.Len(t, mod.Functions, 1)
	assert.Equal(t, ast.FunctionExternal, mod.Functions[0].Kind)
	assert.Nil(t, mod.Functions[0].Body)
}

func TestParseIfElseAndLet(t *testing.T) {
	source := `kernel fn classify(x: i32) {
    let mut y: i32 = 0;
    if x > 0 {
        y = 1;
    } else {
        y = -1;
    }
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)
	body := mod.Functions[0].Body
	assert.Len(t, body, 2)

	let, ok := body[0].(*ast.LetStmt)
	assert.True(t, ok)
	assert.True(t, let.Mut)
	assert.Equal(t, "y", let.Name)

	ifStmt, ok := body[1].(*ast.IfStmt)
	assert.True(t, ok)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)
}

func TestParseForWhileLoop(t *testing.T) {
	source := `kernel fn loops() {
    for i in 0..10 {
        continue;
    }
    while true {
        break;
    }
    loop {
        break;
    }
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)
	body := mod.Functions[0].Body
	assert.Len(t, body, 3)

	forStmt, ok := body[0].(*ast.ForStmt)
	assert.True(t, ok)
	assert.Equal(t, "i", forStmt.Name)

	_, ok = body[1].(*ast.WhileStmt)
	assert.True(t, ok)

	_, ok = body[2].(*ast.LoopStmt)
	assert.True(t, ok)
}

func TestParseSwitch(t *testing.T) {
	source := `kernel fn pick(x: i32) {
    switch x {
        case 0: {
            return;
        }
        case 1: {
            return;
        }
        default: {
            return;
        }
    }
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)

	sw, ok := mod.Functions[0].Body[0].(*ast.SwitchStmt)
	assert.True(t, ok)
	assert.Len(t, sw.Cases, 2)
	assert.Equal(t, int64(0), sw.Cases[0].Value)
	assert.Equal(t, int64(1), sw.Cases[1].Value)
	assert.NotNil(t, sw.Default)
}

func TestParseExpressionPrecedence(t *testing.T) {
	source := `callable fn f() -> i32 {
    return 1 + 2 * 3 == 7 && 1 < 2;
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)

	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	top, ok := ret.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "&&", top.Op)

	left, ok := top.Left.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "==", left.Op)

	addSide, ok := left.Left.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", addSide.Op)

	mulSide, ok := addSide.Right.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "*", mulSide.Op)
}

func TestParseCallAndIndexAndSwizzle(t *testing.T) {
	source := `callable fn f(v: vec<f32, 3>, a: array<f32, 4>) -> f32 {
    return dot(v, v) + a[0] + v.x;
}`
	mod, err := ParseSource("test.xk", source)
	assert.NoError(t, err)

	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	assert.NotNil(t, ret.Value)

	outer, ok := ret.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", outer.Op)
}

func TestParseExprStandalone(t *testing.T) {
	expr, err := ParseExpr("1 + 2 * 3")
	assert.NoError(t, err)
	assert.NotNil(t, expr)

	bin, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}
