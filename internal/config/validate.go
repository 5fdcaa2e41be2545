package config

import (
	"fmt"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/naming"
)

// Validate checks names and renames for mistakes that would make a run
// silently wrong.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if cfg.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported config version %q", cfg.Version), "", "")
	}

	seenTargets := map[string]struct{}{}

	for _, name := range cfg.TargetModels {
		if !isValidIdent(name) {
			res.AddError("invalid_target_model", fmt.Sprintf("invalid model name %q", name), name, "")
			continue
		}

		if _, ok := seenTargets[name]; ok {
			res.AddWarning("duplicate_target_model", fmt.Sprintf("model %q is listed more than once", name), name, "")
			continue
		}

		seenTargets[name] = struct{}{}
	}

	seenFrom := map[string]struct{}{}

	for _, rr := range cfg.RelationRenames {
		validateRename(res, rr, seenFrom)
	}

	return res
}

func validateRename(res *diagnostic.Diagnostics, rr RelationRename, seenFrom map[string]struct{}) {
	if !isValidIdent(rr.From) {
		res.AddError("invalid_rename_from", fmt.Sprintf("invalid relation type %q", rr.From), "", rr.From)
		return
	}

	if !isValidIdent(rr.To) {
		res.AddError("invalid_rename_to", fmt.Sprintf("invalid relation type %q", rr.To), "", rr.From)
		return
	}

	if rr.From == rr.To {
		res.AddError("rename_is_noop", fmt.Sprintf("relation rename %s -> %s changes nothing", rr.From, rr.To), "", rr.From)
		return
	}

	if _, ok := seenFrom[rr.From]; ok {
		res.AddError("duplicate_rename", fmt.Sprintf("relation type %q is renamed more than once", rr.From), "", rr.From)
		return
	}

	seenFrom[rr.From] = struct{}{}

	if !naming.IsPascalCase(rr.To) {
		res.AddWarning("non_canonical_rename", fmt.Sprintf("%q is not PascalCase", rr.To), "", rr.From)
	}
}

// isValidIdent checks if a string is a valid schema identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
