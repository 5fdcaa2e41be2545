package rewrite

import (
	"fmt"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/prisma"
)

// RelationRenamer rewrites the type of relation fields from From to To.
// Only fields that carry @relation are touched; the list and nullability
// markers are kept.
type RelationRenamer struct {
	From string
	To   string
}

// Name implements Pass.
func (p RelationRenamer) Name() string {
	return "rename-relation:" + p.From
}

// Apply implements Pass.
func (p RelationRenamer) Apply(doc *prisma.Document, diags *diagnostic.Diagnostics) {
	renamed, alreadyRenamed := 0, 0

	for _, block := range doc.Blocks() {
		if !block.HasFields() {
			continue
		}

		for _, line := range block.Fields() {
			f := line.Field

			switch {
			case f.Type.Name == p.To && f.HasAttribute(relationAttribute):
				alreadyRenamed++
			case f.Type.Name != p.From:
			case !f.HasAttribute(relationAttribute):
				diags.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticInfo,
					Code:     CodeRelationMarkerMissing,
					Message:  fmt.Sprintf("field typed %s has no %s, left unchanged", f.Type, relationAttribute),
					Model:    block.Name,
					Field:    f.Name,
					Line:     line.Number,
				})
			default:
				before := f.Type.String()
				line.SetFieldType(p.To)
				renamed++

				diags.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticInfo,
					Code:     CodeRelationRenamed,
					Message:  fmt.Sprintf("relation type %s -> %s", before, f.Type),
					Model:    block.Name,
					Field:    f.Name,
					Line:     line.Number,
				})
			}
		}
	}

	switch {
	case renamed > 0:
	case alreadyRenamed > 0:
		diags.AddInfo(CodeRelationAlreadyRenamed,
			fmt.Sprintf("%d relation field(s) already typed %s", alreadyRenamed, p.To), "", "")
	default:
		diags.AddWarning(CodeRelationTypeNotFound,
			fmt.Sprintf("no relation field typed %s found", p.From), "", "")
	}
}
