package rewrite

import (
	"fmt"
	"strconv"
	"strings"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/naming"
	"schema-normalizer/internal/prisma"
)

// Injector adds a storage mapping to each target model that lacks one. The
// mapping records the target name verbatim.
type Injector struct {
	Targets []string
}

// Name implements Pass.
func (Injector) Name() string {
	return "inject-map"
}

// Apply implements Pass. Targets are independent: a missing or duplicated
// target does not stop the others.
func (p Injector) Apply(doc *prisma.Document, diags *diagnostic.Diagnostics) {
	known := doc.ModelNames()

	for _, target := range p.Targets {
		models := doc.FindModels(target)

		switch len(models) {
		case 0:
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        CodeModelNotFound,
				Message:     fmt.Sprintf("model %q not found, skipped", target),
				Model:       target,
				Suggestions: naming.Closest(target, known, suggestionLimit, naming.DefaultSuggestionThreshold),
			})

			continue
		case 1:
		default:
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     CodeDuplicateModel,
				Message:  fmt.Sprintf("model %q is declared %d times (lines %s), skipped", target, len(models), openLines(models)),
				Model:    target,
				Line:     models[1].Open.Number,
			})

			continue
		}

		injectOne(models[0], diags)
	}
}

func injectOne(model *prisma.Block, diags *diagnostic.Diagnostics) {
	if mapped, ok := model.MappedName(); ok {
		attr, _ := model.BlockAttribute(mapDirective)
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticInfo,
			Code:     CodeAlreadyMapped,
			Message:  fmt.Sprintf("model already maps to %q", mapped),
			Model:    model.Name,
			Line:     attr.Number,
		})

		return
	}

	model.AppendBlockAttribute(fmt.Sprintf(`%s("%s")`, mapDirective, model.Name))
	diags.Add(diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticInfo,
		Code:     CodeMapInjected,
		Message:  fmt.Sprintf("added %s(%q)", mapDirective, model.Name),
		Model:    model.Name,
		Line:     model.Close.Number,
	})
}

func openLines(blocks []*prisma.Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, strconv.Itoa(b.Open.Number))
	}

	return strings.Join(lines, ", ")
}
