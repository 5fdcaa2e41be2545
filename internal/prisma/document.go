package prisma

import (
	"regexp"
	"slices"
	"strings"
)

// Document is a parsed schema: an ordered sequence of top-level lines and
// blocks.
type Document struct {
	Nodes []Node
}

// Node is either a top-level *Line or a *Block.
type Node interface {
	writeTo(sb *strings.Builder)
}

// Line is a single schema line. Text includes the line terminator, if any.
type Line struct {
	Kind LineKind
	// Number is the 1-based line number in the parsed input, or 0 for lines
	// inserted after parsing.
	Number int
	Text   string
	// Field is set for LineField.
	Field *Field
	// Attribute is the directive name for LineBlockAttribute, e.g. "@@map".
	Attribute string
}

// Block is a brace-delimited definition such as a model or an enum.
type Block struct {
	Keyword string
	Name    string
	Open    *Line
	Body    []*Line
	Close   *Line
}

// Field is a parsed field declaration.
type Field struct {
	Name       string
	Type       TypeRef
	Attributes []string

	// byte offsets of Type.Name within the owning Line.Text
	typeStart int
	typeEnd   int
}

// TypeRef is a field type with its list and nullability markers.
type TypeRef struct {
	Name     string
	List     bool
	Optional bool
}

// String returns the type as written in the schema.
func (t TypeRef) String() string {
	s := t.Name
	if t.List {
		s += "[]"
	}

	if t.Optional {
		s += "?"
	}

	return s
}

// HasAttribute reports whether the field carries the given attribute, e.g.
// "@relation".
func (f *Field) HasAttribute(name string) bool {
	return slices.Contains(f.Attributes, name)
}

func (l *Line) writeTo(sb *strings.Builder) {
	sb.WriteString(l.Text)
}

func (b *Block) writeTo(sb *strings.Builder) {
	b.Open.writeTo(sb)

	for _, l := range b.Body {
		l.writeTo(sb)
	}

	b.Close.writeTo(sb)
}

// String serializes the document. An unmodified document serializes to the
// exact parsed input.
func (d *Document) String() string {
	var sb strings.Builder

	for _, n := range d.Nodes {
		n.writeTo(&sb)
	}

	return sb.String()
}

// Blocks returns every block in document order.
func (d *Document) Blocks() []*Block {
	var blocks []*Block

	for _, n := range d.Nodes {
		if b, ok := n.(*Block); ok {
			blocks = append(blocks, b)
		}
	}

	return blocks
}

// Models returns every model block in document order.
func (d *Document) Models() []*Block {
	var models []*Block

	for _, b := range d.Blocks() {
		if b.IsModel() {
			models = append(models, b)
		}
	}

	return models
}

// ModelNames returns the declared names of all models in document order.
func (d *Document) ModelNames() []string {
	models := d.Models()
	names := make([]string, 0, len(models))

	for _, m := range models {
		names = append(names, m.Name)
	}

	return names
}

// FindModels returns every model declared with exactly the given name.
// More than one result means the schema is ambiguous.
func (d *Document) FindModels(name string) []*Block {
	var found []*Block

	for _, m := range d.Models() {
		if m.Name == name {
			found = append(found, m)
		}
	}

	return found
}

// IsModel reports whether the block is a model definition.
func (b *Block) IsModel() bool {
	return b.Keyword == "model"
}

// HasFields reports whether body lines of this block are field declarations.
func (b *Block) HasFields() bool {
	switch b.Keyword {
	case "model", "view", "type":
		return true
	default:
		return false
	}
}

// Fields returns the field declaration lines of the block.
func (b *Block) Fields() []*Line {
	var fields []*Line

	for _, l := range b.Body {
		if l.Kind == LineField {
			fields = append(fields, l)
		}
	}

	return fields
}

// BlockAttribute returns the first "@@" directive line with the given name.
func (b *Block) BlockAttribute(name string) (*Line, bool) {
	for _, l := range b.Body {
		if l.Kind == LineBlockAttribute && l.Attribute == name {
			return l, true
		}
	}

	return nil, false
}

var mapArgRe = regexp.MustCompile(`^\s*@@map\(\s*(?:name\s*:\s*)?"((?:[^"\\]|\\.)*)"`)

// MappedName returns the storage name from an existing @@map directive. The
// boolean reports whether the directive exists at all; the name is empty when
// its argument cannot be read.
func (b *Block) MappedName() (string, bool) {
	l, ok := b.BlockAttribute("@@map")
	if !ok {
		return "", false
	}

	m := mapArgRe.FindStringSubmatch(l.Content())
	if m == nil {
		return "", true
	}

	return m[1], true
}

// AppendBlockAttribute inserts a directive line as the last body line, right
// before the closing brace. The line reuses the body's indentation and the
// header's line terminator.
func (b *Block) AppendBlockAttribute(directive string) *Line {
	term := b.Open.Terminator()
	if term == "" {
		term = "\n"
	}

	line := &Line{
		Kind:      LineBlockAttribute,
		Text:      b.bodyIndent() + directive + term,
		Attribute: blockAttributeName(directive),
	}
	b.Body = append(b.Body, line)

	return line
}

const defaultIndent = "  "

// bodyIndent is the indentation of the first field or directive in the body.
func (b *Block) bodyIndent() string {
	for _, l := range b.Body {
		if l.Kind == LineField || l.Kind == LineBlockAttribute {
			return l.Indent()
		}
	}

	return defaultIndent
}

// Content returns the line text without its terminator.
func (l *Line) Content() string {
	content, _ := cutTerminator(l.Text)
	return content
}

// Terminator returns "\n", "\r\n" or "" for a final unterminated line.
func (l *Line) Terminator() string {
	_, term := cutTerminator(l.Text)
	return term
}

// Indent returns the leading whitespace of the line.
func (l *Line) Indent() string {
	content := l.Content()
	return content[:len(content)-len(strings.TrimLeft(content, " \t"))]
}

// SetFieldType replaces the field's type name in place, keeping every other
// byte of the line, including list and nullability markers.
func (l *Line) SetFieldType(name string) {
	f := l.Field
	if f == nil {
		return
	}

	l.Text = l.Text[:f.typeStart] + name + l.Text[f.typeEnd:]
	f.Type.Name = name
	f.typeEnd = f.typeStart + len(name)
}

func cutTerminator(text string) (string, string) {
	if strings.HasSuffix(text, "\r\n") {
		return text[:len(text)-2], "\r\n"
	}

	if strings.HasSuffix(text, "\n") {
		return text[:len(text)-1], "\n"
	}

	return text, ""
}
