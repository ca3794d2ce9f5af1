// Package types resolves the kernel-source language's type syntax
// (internal/frontend/ast.TypeExpr) into internal/xir.Type values, adapted
// from the contract compiler's internal/types registry (builtin-type
// lookup by name, generic-argument validation) to the GPU scalar/vector/
// matrix/resource type system described by internal/xir/types.go.
package types

import (
	"fmt"

	"xir/internal/frontend/ast"
	"xir/internal/xir"
)

// scalarNames maps the language's scalar keywords to their xir.Type.
var scalarNames = map[string]xir.Type{
	"bool": xir.Bool,
	"i8":   xir.I8,
	"u8":   xir.U8,
	"i16":  xir.I16,
	"u16":  xir.U16,
	"i32":  xir.I32,
	"u32":  xir.U32,
	"i64":  xir.I64,
	"u64":  xir.U64,
	"f16":  xir.F16,
	"f32":  xir.F32,
	"f64":  xir.F64,
	"void": xir.Void,
}

// Registry resolves struct declarations and TypeExprs to xir.Type values.
type Registry struct {
	structs map[string]*xir.StructType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{structs: map[string]*xir.StructType{}}
}

// DeclareStruct registers a named struct's layout, resolving its member
// types against types already known to the registry. Members must be
// declared before the struct itself is referenced by name elsewhere.
func (r *Registry) DeclareStruct(decl *ast.StructDecl) error {
	members := make([]xir.Type, len(decl.Members))
	for i, m := range decl.Members {
		t, err := r.Resolve(m.Type)
		if err != nil {
			return fmt.Errorf("struct %s member %s: %w", decl.Name, m.Name, err)
		}
		members[i] = t
	}
	r.structs[decl.Name] = xir.Struct(decl.Name, members)
	return nil
}

// Resolve turns a parsed TypeExpr into a xir.Type.
func (r *Registry) Resolve(t *ast.TypeExpr) (xir.Type, error) {
	if t == nil {
		return xir.Void, nil
	}
	if scalar, ok := scalarNames[t.Name]; ok {
		return scalar, nil
	}
	if st, ok := r.structs[t.Name]; ok {
		return st, nil
	}

	switch t.Name {
	case "vec":
		elem, n, err := r.resolveGenericElemAndCount(t, "vec")
		if err != nil {
			return nil, err
		}
		return xir.Vector(elem, n), nil
	case "mat":
		elem, n, err := r.resolveGenericElemAndCount(t, "mat")
		if err != nil {
			return nil, err
		}
		return xir.Matrix(elem, n), nil
	case "array":
		if len(t.Args) != 1 || len(t.IntArgs) != 1 {
			return nil, fmt.Errorf("array requires one type argument and one length, got %s", t.Name)
		}
		elem, err := r.Resolve(t.Args[0])
		if err != nil {
			return nil, err
		}
		return xir.Array(elem, int(t.IntArgs[0])), nil
	case "ptr":
		if len(t.Args) != 1 {
			return nil, fmt.Errorf("ptr requires one type argument")
		}
		elem, err := r.Resolve(t.Args[0])
		if err != nil {
			return nil, err
		}
		return xir.Pointer(elem, xir.AddressSpaceLocal), nil
	case "shared_ptr":
		if len(t.Args) != 1 {
			return nil, fmt.Errorf("shared_ptr requires one type argument")
		}
		elem, err := r.Resolve(t.Args[0])
		if err != nil {
			return nil, err
		}
		return xir.Pointer(elem, xir.AddressSpaceShared), nil
	case "buffer":
		if len(t.Args) != 1 {
			return nil, fmt.Errorf("buffer requires one type argument")
		}
		elem, err := r.Resolve(t.Args[0])
		if err != nil {
			return nil, err
		}
		return xir.Buffer(elem), nil
	case "texture":
		if len(t.Args) != 1 || len(t.IntArgs) != 1 {
			return nil, fmt.Errorf("texture requires one type argument and one dimension")
		}
		elem, err := r.Resolve(t.Args[0])
		if err != nil {
			return nil, err
		}
		return xir.Texture(elem, int(t.IntArgs[0])), nil
	case "bindless_array":
		return xir.BindlessArray, nil
	case "accel":
		return xir.Accel, nil
	}

	return nil, fmt.Errorf("unknown type %q", t.Name)
}

func (r *Registry) resolveGenericElemAndCount(t *ast.TypeExpr, name string) (xir.Type, int, error) {
	if len(t.Args) != 1 || len(t.IntArgs) != 1 {
		return nil, 0, fmt.Errorf("%s requires one type argument and one count", name)
	}
	elem, err := r.Resolve(t.Args[0])
	if err != nil {
		return nil, 0, err
	}
	return elem, int(t.IntArgs[0]), nil
}

// IsResourceType reports whether t's name denotes a resource handle type
// (buffer/texture/bindless_array/accel), which parameters carrying it are
// implicitly passed by reference to.
func IsResourceType(t *ast.TypeExpr) bool {
	if t == nil {
		return false
	}
	switch t.Name {
	case "buffer", "texture", "bindless_array", "accel":
		return true
	}
	return false
}
