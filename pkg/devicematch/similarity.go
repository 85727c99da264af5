package devicematch

import (
	"strings"
)

// Similarity returns a normalized edit-distance similarity in [0, 1].
// Shortcuts: 1.0 on exact equality (case-insensitive) and 0.8 when one
// string contains the other; otherwise 1 - distance/maxLen.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	distance := levenshtein(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshtein computes edit distance with a two-row rolling table.
// Recomputed per call with no caching; fine for catalogs of a few hundred
// entries. TODO: index or memoize pairs if catalogs grow past that.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// keywords splits a descriptor into lowercase tokens, dropping short filler
func keywords(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/' || r == '.'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}
