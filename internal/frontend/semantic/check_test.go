package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xir/internal/frontend/parser"
	"xir/internal/frontend/types"
)

func checkSource(t *testing.T, source string) []Error {
	t.Helper()
	mod, err := parser.ParseSource("test.xk", source)
	assert.NoError(t, err)
	reg := types.NewRegistry()
	for _, s := range mod.Structs {
		assert.NoError(t, reg.DeclareStruct(s))
	}
	return NewChecker(reg).CheckModule(mod)
}

func TestCheckWellFormedFunction(t *testing.T) {
	errs := checkSource(t, `callable fn add(a: i32, b: i32) -> i32 {
    return a + b;
}`)
	assert.Empty(t, errs)
}

func TestCheckMissingReturnOnSomePath(t *testing.T) {
	errs := checkSource(t, `callable fn pick(x: i32) -> i32 {
    if x > 0 {
        return 1;
    }
}`)
	assert.NotEmpty(t, errs)
}

func TestCheckIfElseBothReturnIsDefinite(t *testing.T) {
	errs := checkSource(t, `callable fn pick(x: i32) -> i32 {
    if x > 0 {
        return 1;
    } else {
        return 0;
    }
}`)
	assert.Empty(t, errs)
}

func TestCheckUndeclaredIdentifier(t *testing.T) {
	errs := checkSource(t, `kernel fn f() {
    let y: i32 = x;
}`)
	assert.NotEmpty(t, errs)
}

func TestCheckBreakOutsideLoop(t *testing.T) {
	errs := checkSource(t, `kernel fn f() {
    break;
}`)
	assert.NotEmpty(t, errs)
}

func TestCheckBreakInsideLoopIsFine(t *testing.T) {
	errs := checkSource(t, `kernel fn f() {
    loop {
        break;
    }
}`)
	assert.Empty(t, errs)
}

func TestCheckUnreachableAfterReturn(t *testing.T) {
	errs := checkSource(t, `callable fn f() -> i32 {
    return 1;
    return 2;
}`)
	assert.NotEmpty(t, errs)
}

func TestCheckExternalFunctionWithoutBodyIsFine(t *testing.T) {
	errs := checkSource(t, `external fn device_op(v: i32);`)
	assert.Empty(t, errs)
}
