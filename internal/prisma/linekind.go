package prisma

//go:generate go tool stringer -type=LineKind -trimprefix=Line -output=linekind_string.go

// LineKind classifies a schema line.
type LineKind int

const (
	// LineOther is any line the parser does not interpret: top-level text,
	// enum values, datasource and generator settings.
	LineOther LineKind = iota
	LineBlank
	LineComment
	// LineField is a field declaration inside a model, view or type block.
	LineField
	// LineBlockAttribute is a "@@" directive inside a block.
	LineBlockAttribute
	LineOpen
	LineClose
)
