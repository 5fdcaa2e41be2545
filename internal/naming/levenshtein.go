package naming

import (
	"sort"
)

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// two rows instead of the full matrix
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns 1 - distance/maxLen over the normalized identifiers.
// 1.0 means the identifiers are equal after normalization.
func Similarity(a, b string) float64 {
	normA := NormalizeIdent(a)
	normB := NormalizeIdent(b)

	if len(normA) == 0 && len(normB) == 0 {
		return 1.0
	}

	maxLen := max(len(normA), len(normB))

	return 1.0 - float64(Levenshtein(normA, normB))/float64(maxLen)
}

// DefaultSuggestionThreshold is the minimum Similarity for Closest results
// used in diagnostics.
const DefaultSuggestionThreshold = 0.6

// Closest returns up to limit candidates whose Similarity to name is at
// least threshold, best first. Ties keep candidate order.
func Closest(name string, candidates []string, limit int, threshold float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= threshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
