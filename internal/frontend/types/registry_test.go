package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xir/internal/frontend/ast"
	"xir/internal/xir"
)

func typeExpr(name string, args ...*ast.TypeExpr) *ast.TypeExpr {
	return &ast.TypeExpr{Name: name, Args: args}
}

func TestResolveScalars(t *testing.T) {
	r := NewRegistry()
	got, err := r.Resolve(typeExpr("f32"))
	assert.NoError(t, err)
	assert.Equal(t, xir.F32, got)

	got, err = r.Resolve(typeExpr("bool"))
	assert.NoError(t, err)
	assert.Equal(t, xir.Bool, got)
}

func TestResolveNilIsVoid(t *testing.T) {
	r := NewRegistry()
	got, err := r.Resolve(nil)
	assert.NoError(t, err)
	assert.Equal(t, xir.Void, got)
}

func TestResolveVectorAndMatrix(t *testing.T) {
	r := NewRegistry()
	vecTy := &ast.TypeExpr{Name: "vec", Args: []*ast.TypeExpr{typeExpr("f32")}, IntArgs: []int64{3}}
	got, err := r.Resolve(vecTy)
	assert.NoError(t, err)
	assert.Equal(t, xir.Vector(xir.F32, 3), got)

	matTy := &ast.TypeExpr{Name: "mat", Args: []*ast.TypeExpr{typeExpr("f32")}, IntArgs: []int64{4}}
	got, err = r.Resolve(matTy)
	assert.NoError(t, err)
	assert.Equal(t, xir.Matrix(xir.F32, 4), got)
}

func TestResolveArrayPtrBuffer(t *testing.T) {
	r := NewRegistry()

	arr := &ast.TypeExpr{Name: "array", Args: []*ast.TypeExpr{typeExpr("i32")}, IntArgs: []int64{8}}
	got, err := r.Resolve(arr)
	assert.NoError(t, err)
	assert.Equal(t, xir.Array(xir.I32, 8), got)

	ptr := typeExpr("ptr", typeExpr("i32"))
	got, err = r.Resolve(ptr)
	assert.NoError(t, err)
	assert.Equal(t, xir.Pointer(xir.I32, xir.AddressSpaceLocal), got)

	buf := typeExpr("buffer", typeExpr("f32"))
	got, err = r.Resolve(buf)
	assert.NoError(t, err)
	assert.Equal(t, xir.Buffer(xir.F32), got)
}

func TestResolveUnknownType(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve(typeExpr("not_a_type"))
	assert.Error(t, err)
}

func TestDeclareAndResolveStruct(t *testing.T) {
	r := NewRegistry()
	decl := &ast.StructDecl{
		Name: "Particle",
		Members: []*ast.StructMember{
			{Name: "mass", Type: typeExpr("f32")},
		},
	}
	assert.NoError(t, r.DeclareStruct(decl))

	got, err := r.Resolve(typeExpr("Particle"))
	assert.NoError(t, err)
	st, ok := got.(*xir.StructType)
	assert.True(t, ok)
	assert.Len(t, st.Members(), 1)
}

func TestIsResourceType(t *testing.T) {
	assert.True(t, IsResourceType(typeExpr("buffer", typeExpr("f32"))))
	assert.True(t, IsResourceType(typeExpr("accel")))
	assert.False(t, IsResourceType(typeExpr("i32")))
	assert.False(t, IsResourceType(nil))
}
