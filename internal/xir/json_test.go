package xir

import (
	"encoding/json"
	"testing"
)

func TestToJSONRoundTripsModuleShape(t *testing.T) {
	m := NewModule()
	p := m.Pool()
	fn := m.AddFunction(FunctionKindKernel, "main", F32)
	entry := fn.CreateBlock(p)

	builder := NewBuilder(p)
	builder.SetInsertionPointAtEnd(entry)
	sum := builder.CreateArithmetic(ArithAdd, F32, []Value{ZeroConstant(p, F32), ZeroConstant(p, F32)})
	builder.CreateReturn(sum)

	out, err := ToJSON(m)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("ToJSON output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["id"] != m.ID() {
		t.Fatalf("decoded module id = %v, want %v", decoded["id"], m.ID())
	}

	functions, ok := decoded["functions"].([]any)
	if !ok || len(functions) != 1 {
		t.Fatalf("expected exactly one function in the decoded JSON, got %v", decoded["functions"])
	}
	fnObj := functions[0].(map[string]any)
	if fnObj["name"] != "main" {
		t.Errorf("decoded function name = %v, want main", fnObj["name"])
	}
	if fnObj["kind"] != fn.Kind().String() {
		t.Errorf("decoded function kind = %v, want %v", fnObj["kind"], fn.Kind().String())
	}

	blocks, ok := fnObj["blocks"].([]any)
	if !ok || len(blocks) != 1 {
		t.Fatalf("expected exactly one block, got %v", fnObj["blocks"])
	}
	blockObj := blocks[0].(map[string]any)
	instrs, ok := blockObj["instructions"].([]any)
	if !ok || len(instrs) != 2 {
		t.Fatalf("expected 2 instructions (arithmetic + return), got %v", blockObj["instructions"])
	}
}

func TestToJSONOmitsBlocksForExternalFunction(t *testing.T) {
	m := NewModule()
	m.AddFunction(FunctionKindExternal, "ext", Void)

	out, err := ToJSON(m)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("ToJSON output is not valid JSON: %v", err)
	}
	functions := decoded["functions"].([]any)
	fnObj := functions[0].(map[string]any)
	if _, present := fnObj["blocks"]; present {
		t.Errorf("expected blocks to be omitted for a function with no body, got %v", fnObj["blocks"])
	}
}
