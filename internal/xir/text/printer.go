// Package text implements the stable textual round-trip format for xir
// modules: a deterministic printer (Print) and a participle-based parser
// (Parse) for reading it back (spec §4.14, §6;
// original_source/translators/xir2text.h).
package text

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"xir/internal/xir"
)

// Print renders m as text following the stable grammar (spec §6): a
// prelude of struct type declarations and module-level constants, then one
// decl per function. Identifiers are %<n>, taken directly from each
// value's pool-assigned ValueID, which is allocated in construction order
// and therefore stable for a given module shape (spec §4.14's "single
// traversal" requirement).
func Print(m *xir.Module, debugInfo bool) string {
	p := &printer{sb: &strings.Builder{}, debugInfo: debugInfo}
	p.collectStructs(m)
	for _, s := range p.structOrder {
		p.printStructDecl(s)
	}
	for _, c := range m.Constants() {
		p.printConstDecl(c)
	}
	if len(p.structOrder) > 0 || len(m.Constants()) > 0 {
		p.sb.WriteString("\n")
	}
	for i, f := range m.Functions() {
		if i > 0 {
			p.sb.WriteString("\n")
		}
		p.printFunction(f)
	}
	return p.sb.String()
}

type printer struct {
	sb          *strings.Builder
	debugInfo   bool
	structOrder []*xir.StructType
	structSeen  map[*xir.StructType]bool
	structName  map[*xir.StructType]string
}

// collectStructs walks every type reachable from the module's constants and
// function signatures/bodies and assigns each distinct struct shape a
// sequential Tn name the first time it is encountered, so nested structs
// are declared before the structs that embed them.
func (p *printer) collectStructs(m *xir.Module) {
	p.structSeen = map[*xir.StructType]bool{}
	p.structName = map[*xir.StructType]string{}
	for _, c := range m.Constants() {
		p.visitType(c.Type())
	}
	for _, f := range m.Functions() {
		p.visitType(f.ReturnType())
		for _, a := range f.Arguments() {
			p.visitType(a.Type())
		}
		for _, b := range f.Blocks() {
			for _, inst := range b.Instructions() {
				p.visitType(inst.Type())
			}
		}
	}
}

func (p *printer) visitType(t xir.Type) {
	if t == nil {
		return
	}
	switch t.Tag() {
	case xir.TagStruct:
		st := t.(*xir.StructType)
		if p.structSeen[st] {
			return
		}
		p.structSeen[st] = true
		for _, m := range st.Members() {
			p.visitType(m)
		}
		p.structName[st] = fmt.Sprintf("T%d", len(p.structOrder))
		p.structOrder = append(p.structOrder, st)
	case xir.TagVector, xir.TagMatrix, xir.TagArray, xir.TagPointer,
		xir.TagBuffer, xir.TagTexture2D, xir.TagTexture3D:
		p.visitType(t.Elem())
	}
}

// typeName prints t canonically (spec §4.14), substituting the assigned Tn
// alias anywhere a struct type appears, including nested inside a vector,
// array, matrix, pointer, buffer or texture element type.
func (p *printer) typeName(t xir.Type) string {
	if t == nil {
		return "void"
	}
	switch t.Tag() {
	case xir.TagStruct:
		return p.structName[t.(*xir.StructType)]
	case xir.TagVector:
		return fmt.Sprintf("vector<%s, %d>", p.typeName(t.Elem()), t.Dim())
	case xir.TagMatrix:
		return fmt.Sprintf("matrix<%s, %d>", p.typeName(t.Elem()), t.Dim())
	case xir.TagArray:
		return fmt.Sprintf("array<%s, %d>", p.typeName(t.Elem()), t.Dim())
	case xir.TagPointer:
		return fmt.Sprintf("ptr<%s>", p.typeName(t.Elem()))
	case xir.TagBuffer:
		return fmt.Sprintf("buffer<%s>", p.typeName(t.Elem()))
	case xir.TagTexture2D:
		return fmt.Sprintf("texture2d<%s>", p.typeName(t.Elem()))
	case xir.TagTexture3D:
		return fmt.Sprintf("texture3d<%s>", p.typeName(t.Elem()))
	default:
		return t.String()
	}
}

func (p *printer) printStructDecl(s *xir.StructType) {
	fmt.Fprintf(p.sb, "type %s = struct {", p.structName[s])
	for i, m := range s.Members() {
		if i > 0 {
			p.sb.WriteString(",")
		}
		p.sb.WriteString(" ")
		p.sb.WriteString(p.typeName(m))
	}
	p.sb.WriteString(" };\n")
}

func (p *printer) printConstDecl(c *xir.Constant) {
	fmt.Fprintf(p.sb, "const %s: %s = %s;\n", valueName(c), p.typeName(c.Type()), hexBytes(c.Bytes()))
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteString("0x")
	for _, by := range b {
		fmt.Fprintf(&sb, "%02x", by)
	}
	return sb.String()
}

func (p *printer) printFunction(f *xir.Function) {
	p.printMetadataLine(f, "")
	fmt.Fprintf(p.sb, "%s %s", f.Kind().String(), valueName(f))
	if f.ReturnType() != xir.Void {
		fmt.Fprintf(p.sb, ": %s", p.typeName(f.ReturnType()))
	}
	p.sb.WriteString("(")
	for i, a := range f.Arguments() {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		fmt.Fprintf(p.sb, "%s: %s", valueName(a), p.argTypeName(a))
	}
	p.sb.WriteString(")")
	if f.Kind() == xir.FunctionKindExternal {
		p.sb.WriteString(";\n")
		return
	}
	p.sb.WriteString(" = define {\n")
	for _, b := range f.Blocks() {
		p.printBlock(b)
	}
	p.sb.WriteString("};\n")
}

func (p *printer) argTypeName(a *xir.Argument) string {
	if a.ByRef() {
		return "&" + p.typeName(a.Type())
	}
	return p.typeName(a.Type())
}

func (p *printer) printBlock(b *xir.BasicBlock) {
	fmt.Fprintf(p.sb, "  %s: {\n", blockLabel(b))
	for _, inst := range b.Instructions() {
		p.printInstruction(inst)
	}
	p.sb.WriteString("  }\n")
}

func (p *printer) printInstruction(inst xir.Instruction) {
	p.printMetadataLine(inst, "    ")
	p.sb.WriteString("    ")
	fmt.Fprintf(p.sb, "%s: %s = %s", valueName(inst), p.typeName(inst.Type()), mnemonic(inst))
	ops := p.operandStrings(inst)
	if len(ops) > 0 {
		p.sb.WriteString(" ")
		p.sb.WriteString(strings.Join(ops, ", "))
	}
	p.sb.WriteString(";\n")
}

// mnemonic is an ArithmeticInst/CastInst's own op name, or the generic
// instruction kind name for every other kind (spec §6's instr grammar).
func mnemonic(inst xir.Instruction) string {
	switch i := inst.(type) {
	case *xir.ArithmeticInst:
		return i.Op().String()
	case *xir.CastInst:
		return i.Op().String()
	default:
		return inst.InstructionKind().String()
	}
}

// operandStrings renders an instruction's operand* list. Value operands
// come first in their def order; structured control-flow instructions then
// append the blocks they name, and PhiInst and SwitchInst use a dedicated
// shape since they pair values with blocks (or case constants with
// blocks) rather than a flat value list.
func (p *printer) operandStrings(inst xir.Instruction) []string {
	switch i := inst.(type) {
	case *xir.PhiInst:
		return p.phiOperands(i)
	case *xir.SwitchInst:
		return p.switchOperands(i)
	}
	var out []string
	for _, op := range inst.Operands() {
		out = append(out, p.operandName(op))
	}
	for _, b := range blockOperands(inst) {
		out = append(out, p.operandName(b))
	}
	return out
}

func (p *printer) phiOperands(phi *xir.PhiInst) []string {
	blocks := phi.IncomingBlocks()
	values := phi.Incoming()
	out := make([]string, len(blocks))
	for i := range blocks {
		out[i] = fmt.Sprintf("%s: %s", p.operandName(blocks[i]), p.operandName(values[i]))
	}
	return out
}

func (p *printer) switchOperands(sw *xir.SwitchInst) []string {
	out := []string{p.operandName(sw.Value())}
	for _, c := range sw.Cases() {
		out = append(out, fmt.Sprintf("case %d -> %s", c.Value, p.operandName(c.Block)))
	}
	if sw.Default() != nil {
		out = append(out, fmt.Sprintf("default -> %s", p.operandName(sw.Default())))
	}
	if sw.Merge() != nil {
		out = append(out, fmt.Sprintf("merge -> %s", p.operandName(sw.Merge())))
	}
	return out
}

// blockOperands returns the basic blocks a structured control-flow
// instruction names, beyond its value operands (spec §4.5). SwitchInst is
// handled separately by switchOperands since its cases carry constants the
// generic path can't express.
func blockOperands(inst xir.Instruction) []*xir.BasicBlock {
	switch i := inst.(type) {
	case *xir.BranchInst:
		return []*xir.BasicBlock{i.Target()}
	case *xir.IfInst:
		return []*xir.BasicBlock{i.TrueBlock(), i.FalseBlock(), i.Merge()}
	case *xir.LoopInst:
		return []*xir.BasicBlock{i.Prepare(), i.Body(), i.Merge()}
	case *xir.SimpleLoopInst:
		return []*xir.BasicBlock{i.Body(), i.Merge()}
	case *xir.OutlineInst:
		return []*xir.BasicBlock{i.Target(), i.Merge()}
	case *xir.BreakInst:
		return []*xir.BasicBlock{i.Target()}
	case *xir.ContinueInst:
		return []*xir.BasicBlock{i.Target()}
	case *xir.RayQueryLoopInst:
		return []*xir.BasicBlock{i.DispatchBlock()}
	case *xir.RayQueryDispatchInst:
		return []*xir.BasicBlock{i.Exit(), i.OnSurfaceCandidate(), i.OnProceduralCandidate()}
	default:
		return nil
	}
}

// printMetadataLine emits the bracket-format metadata line the spec places
// immediately before its annotated entity (spec §6's "Metadata" section),
// only when debugInfo is set and the entity actually carries metadata.
func (p *printer) printMetadataLine(v xir.Value, indent string) {
	if !p.debugInfo {
		return
	}
	mds := v.Metadata().All()
	if len(mds) == 0 {
		return
	}
	var fields []string
	for _, md := range mds {
		switch m := md.(type) {
		case *xir.NameMD:
			fields = append(fields, "name = "+strcase.ToSnake(m.Name()))
		case *xir.LocationMD:
			fields = append(fields, fmt.Sprintf("location = (%q, %d)", m.File(), m.Line()))
		case *xir.CommentMD:
			fields = append(fields, fmt.Sprintf("comment = %q", m.Comment()))
		}
	}
	if len(fields) == 0 {
		return
	}
	fmt.Fprintf(p.sb, "%s[%s]\n", indent, strings.Join(fields, ", "))
}

func blockLabel(b *xir.BasicBlock) string { return fmt.Sprintf("%%%d", b.ID()) }

func valueName(v xir.Value) string { return fmt.Sprintf("%%%d", v.ID()) }

func (p *printer) operandName(v xir.Value) string {
	if v == nil {
		return "<null>"
	}
	if sr, ok := v.(*xir.SpecialRegister); ok {
		return fmt.Sprintf("%%%d.%s", sr.ID(), sr.Tag())
	}
	return valueName(v)
}
