package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xir/internal/xir"
)

func TestCompileSourceSimpleKernel(t *testing.T) {
	source := `kernel fn fill(out: buffer<f32>, value: f32) {
    let i: i32 = thread_id();
}`
	mod, errs := CompileSource("fill.xk", source, "fill_module")
	assert.Empty(t, errs)
	assert.NotNil(t, mod)
	assert.Len(t, mod.Kernels(), 1)

	fn := mod.Kernels()[0]
	assert.Equal(t, "fill", fn.Name())
	assert.Len(t, fn.Arguments(), 2)
	assert.NotEmpty(t, fn.Blocks())
}

func TestCompileSourceIfElseProducesMergeBlock(t *testing.T) {
	source := `callable fn classify(x: i32) -> i32 {
    if x > 0 {
        return 1;
    } else {
        return -1;
    }
}`
	mod, errs := CompileSource("classify.xk", source, "m")
	assert.Empty(t, errs)
	fn := mod.Callables()[0]
	// entry, then, else, merge
	assert.GreaterOrEqual(t, len(fn.Blocks()), 4)
}

func TestCompileSourceForLoopUsesLoopTerminator(t *testing.T) {
	source := `kernel fn sum_range(out: buffer<i32>) {
    let mut total: i32 = 0;
    for i in 0..10 {
        total = total + i;
    }
}`
	mod, errs := CompileSource("sum.xk", source, "m")
	assert.Empty(t, errs)
	fn := mod.Kernels()[0]

	foundLoop := false
	for _, b := range fn.Blocks() {
		if _, ok := b.Terminator().(*xir.LoopInst); ok {
			foundLoop = true
		}
	}
	assert.True(t, foundLoop, "expected a LoopInst terminator somewhere in the function")
}

func TestCompileSourceLoopStatementUsesSimpleLoopTerminator(t *testing.T) {
	source := `kernel fn spin() {
    loop {
        break;
    }
}`
	mod, errs := CompileSource("spin.xk", source, "m")
	assert.Empty(t, errs)
	fn := mod.Kernels()[0]

	foundSimpleLoop := false
	for _, b := range fn.Blocks() {
		if _, ok := b.Terminator().(*xir.SimpleLoopInst); ok {
			foundSimpleLoop = true
		}
	}
	assert.True(t, foundSimpleLoop, "expected a SimpleLoopInst terminator somewhere in the function")
}

func TestCompileSourceForwardReferenceBetweenFunctions(t *testing.T) {
	source := `callable fn a() -> i32 {
    return b();
}

callable fn b() -> i32 {
    return 1;
}`
	mod, errs := CompileSource("fwd.xk", source, "m")
	assert.Empty(t, errs)
	assert.Len(t, mod.Callables(), 2)
}

func TestCompileSourceCallToIntrinsic(t *testing.T) {
	source := `callable fn len2(v: vec<f32, 3>) -> f32 {
    return dot(v, v);
}`
	mod, errs := CompileSource("len.xk", source, "m")
	assert.Empty(t, errs)
	assert.Len(t, mod.Callables(), 1)
}

func TestCompileSourceVectorSwizzle(t *testing.T) {
	source := `callable fn x_component(v: vec<f32, 3>) -> f32 {
    return v.x;
}`
	mod, errs := CompileSource("swizzle.xk", source, "m")
	assert.Empty(t, errs)
	assert.Len(t, mod.Callables(), 1)
}

func TestCompileSourceSyntaxErrorIsReported(t *testing.T) {
	source := `kernel fn broken( {
}`
	_, errs := CompileSource("broken.xk", source, "m")
	assert.NotEmpty(t, errs)
}

func TestCompileSourceSemanticErrorIsReported(t *testing.T) {
	source := `kernel fn f() {
    let y: i32 = undeclared_name;
}`
	_, errs := CompileSource("sem.xk", source, "m")
	assert.NotEmpty(t, errs)
}

func TestCompileSourceSwitchTrimsTrailingBreak(t *testing.T) {
	source := `kernel fn pick(x: i32) {
    switch x {
        case 0: {
            break;
        }
        default: {
        }
    }
}`
	mod, errs := CompileSource("switch.xk", source, "m")
	assert.Empty(t, errs)
	fn := mod.Kernels()[0]

	foundSwitch := false
	for _, b := range fn.Blocks() {
		if _, ok := b.Terminator().(*xir.SwitchInst); ok {
			foundSwitch = true
		}
	}
	assert.True(t, foundSwitch)
}
