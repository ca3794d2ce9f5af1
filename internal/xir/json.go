package xir

import "encoding/json"

// jsonValue is the serializable shape of one operand reference: a kind tag
// plus a pool-local id, since a Value's identity outside this package is
// exactly its ValueID (spec §4.14, §6; original_source/translators/
// xir2json.h declares only the function signature, not a schema, so the
// shape below is this port's own, kept intentionally close to the textual
// printer's naming).
type jsonValue struct {
	Kind string  `json:"kind"`
	ID   ValueID `json:"id"`
}

type jsonInstruction struct {
	ID       ValueID     `json:"id"`
	Kind     string      `json:"kind"`
	Type     string      `json:"type,omitempty"`
	Operands []jsonValue `json:"operands,omitempty"`
}

type jsonBlock struct {
	ID           ValueID           `json:"id"`
	Instructions []jsonInstruction `json:"instructions"`
}

type jsonFunction struct {
	ID     ValueID     `json:"id"`
	Name   string      `json:"name"`
	Kind   string      `json:"kind"`
	Return string      `json:"return_type"`
	Blocks []jsonBlock `json:"blocks,omitempty"`
}

type jsonModule struct {
	ID        string         `json:"id"`
	Functions []jsonFunction `json:"functions"`
}

func toJSONValue(v Value) jsonValue {
	if v == nil {
		return jsonValue{Kind: "none"}
	}
	return jsonValue{Kind: v.ValueKind().String(), ID: v.ID()}
}

func toJSONInstruction(inst Instruction) jsonInstruction {
	ji := jsonInstruction{ID: inst.ID(), Kind: inst.InstructionKind().String()}
	if t := inst.Type(); t != nil {
		ji.Type = t.String()
	}
	for _, op := range inst.Operands() {
		ji.Operands = append(ji.Operands, toJSONValue(op))
	}
	return ji
}

func toJSONBlock(b *BasicBlock) jsonBlock {
	jb := jsonBlock{ID: b.ID()}
	for _, inst := range b.Instructions() {
		jb.Instructions = append(jb.Instructions, toJSONInstruction(inst))
	}
	return jb
}

func toJSONFunction(f *Function) jsonFunction {
	jf := jsonFunction{
		ID:     f.ID(),
		Name:   f.Name(),
		Kind:   f.Kind().String(),
		Return: f.ReturnType().String(),
	}
	for _, b := range f.Blocks() {
		jf.Blocks = append(jf.Blocks, toJSONBlock(b))
	}
	return jf
}

// ToJSON renders m as the tree described by spec §4.14/§6's JSON
// translator (original_source/translators/xir2json.h's
// xir_to_json_translate), indented for readability.
func ToJSON(m *Module) (string, error) {
	jm := jsonModule{ID: m.ID()}
	for _, f := range m.Functions() {
		jm.Functions = append(jm.Functions, toJSONFunction(f))
	}
	b, err := json.MarshalIndent(jm, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
