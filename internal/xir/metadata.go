package xir

// DerivedMetadataTag identifies the concrete shape of a Metadata node,
// taking the place of virtual dispatch the way ValueKind does for values
// (original_source/metadata.h).
type DerivedMetadataTag int

const (
	MetadataTagName DerivedMetadataTag = iota
	MetadataTagLocation
	MetadataTagComment
)

// Metadata is a node in a value's metadata list: a debug name, a source
// location or a free-form comment (spec §4.10). Metadata forms its own
// intrusive forward list per value rather than a flat bag, so that e.g. a
// NameMD and a LocationMD can both be attached to the same instruction
// without either replacing the other.
type Metadata interface {
	Tag() DerivedMetadataTag
	next() Metadata
	setNext(Metadata)
}

type metadataBase struct {
	nextMD Metadata
}

func (m *metadataBase) next() Metadata       { return m.nextMD }
func (m *metadataBase) setNext(n Metadata)   { m.nextMD = n }

// MetadataList is the forward list of Metadata nodes attached to one
// value. Every Value embeds one (spec §4.10); most values never populate
// it.
type MetadataList struct {
	head Metadata
}

// Add pushes md to the front of the list.
func (l *MetadataList) Add(md Metadata) {
	md.setNext(l.head)
	l.head = md
}

// All returns every metadata node in the list, front to back.
func (l *MetadataList) All() []Metadata {
	var out []Metadata
	for m := l.head; m != nil; m = m.next() {
		out = append(out, m)
	}
	return out
}

// Find returns the first node with the given tag, or nil.
func (l *MetadataList) Find(tag DerivedMetadataTag) Metadata {
	for m := l.head; m != nil; m = m.next() {
		if m.Tag() == tag {
			return m
		}
	}
	return nil
}

// NameMD attaches a debug name to a value (e.g. a local variable's source
// name); with debug info on, the printer shows it snake-cased as the
// `name = ...` field of the value's bracket metadata line.
type NameMD struct {
	metadataBase
	name string
}

func NewNameMD(name string) *NameMD { return &NameMD{name: name} }

func (m *NameMD) Tag() DerivedMetadataTag { return MetadataTagName }
func (m *NameMD) Name() string            { return m.name }
func (m *NameMD) SetName(name string)     { m.name = name }

// LocationMD attaches a source file/line to a value.
type LocationMD struct {
	metadataBase
	file string
	line int
}

func NewLocationMD(file string, line int) *LocationMD {
	return &LocationMD{file: file, line: line}
}

func (m *LocationMD) Tag() DerivedMetadataTag { return MetadataTagLocation }
func (m *LocationMD) File() string            { return m.file }
func (m *LocationMD) Line() int               { return m.line }
func (m *LocationMD) SetFile(f string)        { m.file = f }
func (m *LocationMD) SetLine(l int)           { m.line = l }

// CommentMD attaches a free-form comment to a value; with debug info on,
// the textual printer shows it as a quoted `comment = ...` field of the
// value's bracket metadata line (spec §4.14).
type CommentMD struct {
	metadataBase
	comment string
}

func NewCommentMD(comment string) *CommentMD { return &CommentMD{comment: comment} }

func (m *CommentMD) Tag() DerivedMetadataTag { return MetadataTagComment }
func (m *CommentMD) Comment() string         { return m.comment }
func (m *CommentMD) SetComment(c string)     { m.comment = c }
