package prisma

import (
	"regexp"
	"strings"
)

var (
	headerRe    = regexp.MustCompile(`^\s*(model|view|type|enum|datasource|generator)\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{(.*)$`)
	fieldRe     = regexp.MustCompile(`^(\s*)([A-Za-z_][A-Za-z0-9_]*)(\s+)([A-Za-z_][A-Za-z0-9_]*)(\[\])?(\?)?(\s.*)?$`)
	directiveRe = regexp.MustCompile(`^\s*(@@[A-Za-z_][A-Za-z0-9_.]*)`)
	attributeRe = regexp.MustCompile(`@{1,2}[A-Za-z_][A-Za-z0-9_.]*`)
)

// Parse splits a schema into top-level lines and blocks.
// It fails with a *ParseError when a block cannot be delimited reliably.
func Parse(src string) (*Document, error) {
	doc := &Document{}

	var current *Block

	for i, text := range splitLines(src) {
		num := i + 1
		content, _ := cutTerminator(text)

		if current == nil {
			block, err := parseHeader(text, content, num)
			if err != nil {
				return nil, err
			}

			if block != nil {
				current = block
				continue
			}

			doc.Nodes = append(doc.Nodes, classifyTopLevel(text, content, num))

			continue
		}

		line, err := parseBodyLine(current, text, content, num)
		if err != nil {
			return nil, err
		}

		if line.Kind == LineClose {
			current.Close = line
			doc.Nodes = append(doc.Nodes, current)
			current = nil

			continue
		}

		current.Body = append(current.Body, line)
	}

	if current != nil {
		return nil, &ParseError{Line: current.Open.Number, Block: current.Name, Err: ErrUnterminatedBlock}
	}

	return doc, nil
}

// splitLines splits src after each "\n". Concatenating the result gives src.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}

	lines := strings.SplitAfter(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func parseHeader(text, content string, num int) (*Block, error) {
	m := headerRe.FindStringSubmatch(content)
	if m == nil {
		return nil, nil
	}

	if strings.TrimSpace(stripCode(m[3])) != "" {
		return nil, &ParseError{Line: num, Block: m[2], Err: ErrInlineBlock}
	}

	return &Block{
		Keyword: m[1],
		Name:    m[2],
		Open:    &Line{Kind: LineOpen, Number: num, Text: text},
	}, nil
}

func classifyTopLevel(text, content string, num int) *Line {
	trimmed := strings.TrimSpace(content)

	kind := LineOther

	switch {
	case trimmed == "":
		kind = LineBlank
	case strings.HasPrefix(trimmed, "//"):
		kind = LineComment
	}

	return &Line{Kind: kind, Number: num, Text: text}
}

func parseBodyLine(block *Block, text, content string, num int) (*Line, error) {
	line := &Line{Kind: LineOther, Number: num, Text: text}
	trimmed := strings.TrimSpace(content)
	code := stripCode(content)

	switch {
	case strings.TrimSpace(code) == "}":
		line.Kind = LineClose
		return line, nil
	case strings.ContainsAny(code, "{}"):
		return nil, &ParseError{Line: num, Block: block.Name, Err: ErrNestedBlock}
	case trimmed == "":
		line.Kind = LineBlank
	case strings.HasPrefix(trimmed, "//"):
		line.Kind = LineComment
	case strings.HasPrefix(trimmed, "@@"):
		line.Kind = LineBlockAttribute
		line.Attribute = blockAttributeName(content)
	case block.HasFields():
		if f := parseField(content, code); f != nil {
			line.Kind = LineField
			line.Field = f
		}
	}

	return line, nil
}

// parseField parses a field declaration. code is content with string
// literals blanked and the trailing comment removed, so attribute names are
// only read from real syntax.
func parseField(content, code string) *Field {
	idx := fieldRe.FindStringSubmatchIndex(content)
	if idx == nil {
		return nil
	}

	f := &Field{
		Name:      content[idx[4]:idx[5]],
		Type:      TypeRef{Name: content[idx[8]:idx[9]]},
		typeStart: idx[8],
		typeEnd:   idx[9],
	}
	f.Type.List = idx[10] >= 0
	f.Type.Optional = idx[12] >= 0

	if idx[14] >= 0 && idx[14] < len(code) {
		for _, attr := range attributeRe.FindAllString(code[idx[14]:], -1) {
			if !strings.HasPrefix(attr, "@@") {
				f.Attributes = append(f.Attributes, attr)
			}
		}
	}

	return f
}

// stripCode blanks the contents of string literals and drops a trailing
// "//" comment. The result has the same length as s up to the comment.
func stripCode(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	inString := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case inString && c == '\\' && i+1 < len(s):
			sb.WriteString("  ")
			i++
		case inString && c == '"':
			inString = false
			sb.WriteByte(c)
		case inString:
			sb.WriteByte(' ')
		case c == '"':
			inString = true
			sb.WriteByte(c)
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			return sb.String()
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

func blockAttributeName(directive string) string {
	m := directiveRe.FindStringSubmatch(directive)
	if m == nil {
		return ""
	}

	return m[1]
}
