package naming

import (
	"unicode"

	"github.com/go-openapi/inflect"
)

// Canonical returns the conventional model name for a table-style name:
// singular and PascalCase.
//
// Examples:
//   - "merchants" -> "Merchant"
//   - "provider_credentials" -> "ProviderCredential"
//   - "Payout" -> "Payout"
func Canonical(name string) string {
	if name == "" {
		return ""
	}

	return inflect.Camelize(inflect.Singularize(name))
}

// IsPascalCase reports whether name starts with an upper-case letter and
// contains no separators.
func IsPascalCase(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}

	for _, r := range runes {
		if isSeparator(r) {
			return false
		}
	}

	return true
}
