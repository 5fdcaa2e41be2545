package rewrite

import (
	"fmt"

	"schema-normalizer/internal/config"
	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/prisma"
)

// Pass is a single normalization rule applied to a parsed document.
type Pass interface {
	// Name identifies the pass in logs.
	Name() string
	// Apply mutates doc in place and reports findings into diags.
	Apply(doc *prisma.Document, diags *diagnostic.Diagnostics)
}

// Result is the outcome of running passes over a schema.
type Result struct {
	// Schema is the rewritten schema text.
	Schema string
	// Changed reports whether Schema differs from the input.
	Changed bool
	// Diagnostics collects what every pass did or skipped.
	Diagnostics diagnostic.Diagnostics
}

// Err returns the combined error diagnostics, or nil.
func (r *Result) Err() error {
	return r.Diagnostics.Error()
}

// Edits returns the number of edits applied to the schema.
func (r *Result) Edits() int {
	return len(r.Diagnostics.ByCode(CodeMapInjected)) + len(r.Diagnostics.ByCode(CodeRelationRenamed))
}

// Run parses schema once, applies passes in order and serializes the
// document once. It fails only when the schema cannot be split into blocks
// reliably; every other problem is reported in Result.Diagnostics.
func Run(schema string, passes ...Pass) (*Result, error) {
	doc, err := prisma.Parse(schema)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	res := &Result{}
	for _, p := range passes {
		p.Apply(doc, &res.Diagnostics)
	}

	res.Schema = doc.String()
	res.Changed = res.Schema != schema

	return res, nil
}

// Inject adds @@map annotations to the target models of schema.
func Inject(schema string, targets []string) (*Result, error) {
	return Run(schema, Injector{Targets: targets})
}

// RenameRelationType rewrites relation fields typed from to type to.
func RenameRelationType(schema, from, to string) (*Result, error) {
	return Run(schema, RelationRenamer{From: from, To: to})
}

// FromConfig builds the configured passes: the injector first, then one
// renamer per relation rename, in configuration order.
func FromConfig(cfg *config.Config) []Pass {
	passes := make([]Pass, 0, 1+len(cfg.RelationRenames))
	if len(cfg.TargetModels) > 0 {
		passes = append(passes, Injector{Targets: cfg.TargetModels})
	}

	for _, rr := range cfg.RelationRenames {
		passes = append(passes, RelationRenamer{From: rr.From, To: rr.To})
	}

	return passes
}
