package core

import (
	"sort"
	"strings"

	"github.com/huangsam/trustspot/schema"
)

// DefaultAffixes are the decorations squatters append to or strip from
// popular names. A bare "js" covers fused forms like "lodashjs".
var DefaultAffixes = []string{"-js", "-node", "-lib", "-pkg", "-core", "-new", "js"}

// homoglyphGroups maps visually confusable characters to one canonical
// representative per group.
var homoglyphGroups = map[rune]rune{
	'1': 'l', 'i': 'l', '|': 'l',
	'0': 'o',
	'3': 'e',
	'5': 's',
	'4': 'a', '@': 'a',
	'9': 'g',
	'6': 'b',
}

// maxEditDistance is the Levenshtein radius treated as suspicious.
const maxEditDistance = 2

// TyposquatDetector flags package names that imitate well-known packages.
// A name that IS a reference entry is safe by definition; the reference
// list asserts legitimacy, not risk.
type TyposquatDetector struct {
	reference map[string]struct{}
	names     []string
	affixes   []string
}

// NewTyposquatDetector builds a detector over the built-in reference list,
// optionally extended with extra names. A non-empty affix list replaces the
// default affix set.
func NewTyposquatDetector(extraNames, affixes []string) *TyposquatDetector {
	reference := make(map[string]struct{}, len(popularPackages)+len(extraNames))
	for _, name := range popularPackages {
		reference[name] = struct{}{}
	}
	for _, name := range extraNames {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			reference[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(reference))
	for name := range reference {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(affixes) == 0 {
		affixes = DefaultAffixes
	}
	return &TyposquatDetector{reference: reference, names: names, affixes: affixes}
}

// Check reports whether a package name is suspiciously close to a reference
// entry. SimilarNames lists every reference entry the name imitates, sorted.
func (d *TyposquatDetector) Check(name string) schema.TyposquatResult {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if _, ok := d.reference[normalized]; ok {
		return schema.TyposquatResult{IsRisky: false, MinDistance: 0}
	}

	similar := make(map[string]int)
	for _, ref := range d.names {
		if distance, ok := levenshteinAtMost(normalized, ref, maxEditDistance); ok && distance > 0 {
			similar[ref] = distance
			continue
		}
		if d.structuralMatch(normalized, ref) {
			similar[ref] = levenshteinFull(normalized, ref)
		}
	}

	if len(similar) == 0 {
		return schema.TyposquatResult{IsRisky: false}
	}

	result := schema.TyposquatResult{IsRisky: true, MinDistance: int(^uint(0) >> 1)}
	for ref, distance := range similar {
		result.SimilarNames = append(result.SimilarNames, ref)
		if distance < result.MinDistance {
			result.MinDistance = distance
		}
	}
	sort.Strings(result.SimilarNames)
	return result
}

// structuralMatch applies imitation heuristics that plain edit distance
// misses or over-penalizes.
func (d *TyposquatDetector) structuralMatch(name, ref string) bool {
	// Affix addition or removal, like "lodash-js" or "expressjs".
	for _, affix := range d.affixes {
		if name == ref+affix || name+affix == ref {
			return true
		}
	}

	// Single homoglyph substitution, like "1odash" for "lodash".
	if isSingleHomoglyph(name, ref) {
		return true
	}

	// Separator manipulation, like "lo-dash" or "lo.dash".
	if name != ref && squashSeparators(name) == squashSeparators(ref) {
		return true
	}

	// Adjacent transposition, like "exrpess" for "express".
	if isTransposition(name, ref) {
		return true
	}

	// Trailing-digit imitation, like "lodash2".
	if stripped := strings.TrimRight(name, "0123456789"); stripped != name && stripped == ref {
		return true
	}

	return false
}

// isSingleHomoglyph reports whether a and b are identical except for exactly
// one position holding visually confusable characters.
func isSingleHomoglyph(a, b string) bool {
	if len(a) != len(b) || a == b {
		return false
	}
	substituted := false
	for i := range len(a) {
		if a[i] == b[i] {
			continue
		}
		if substituted || !confusable(rune(a[i]), rune(b[i])) {
			return false
		}
		substituted = true
	}
	return substituted
}

// confusable reports whether two characters fold to the same canonical form.
func confusable(a, b rune) bool {
	if canonical, ok := homoglyphGroups[a]; ok {
		a = canonical
	}
	if canonical, ok := homoglyphGroups[b]; ok {
		b = canonical
	}
	return a == b
}

// squashSeparators removes hyphens, underscores and dots.
func squashSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.':
			return -1
		}
		return r
	}, s)
}

// isTransposition reports whether a and b differ by exactly one swap of
// adjacent characters.
func isTransposition(a, b string) bool {
	if len(a) != len(b) || a == b {
		return false
	}
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return a[i] == b[i+1] && a[i+1] == b[i] && a[i+2:] == b[i+2:]
		}
	}
	return false
}

// levenshteinAtMost computes the edit distance between a and b with a
// two-row matrix, bailing out early when the distance must exceed max.
// The boolean is false when the distance exceeds max.
func levenshteinAtMost(a, b string, max int) (int, bool) {
	if diff := len(a) - len(b); diff > max || -diff > max {
		return 0, false
	}
	distance := levenshteinFull(a, b)
	if distance > max {
		return 0, false
	}
	return distance, true
}

// levenshteinFull computes the unbounded edit distance between a and b.
func levenshteinFull(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
