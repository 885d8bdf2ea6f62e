package schedule

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// DefaultSimilarity is the Jaro-Winkler score above which two distinct class
// names are reported as likely typos of each other.
const DefaultSimilarity = 0.92

// NamePair is two schedule names that look alike.
type NamePair struct {
	A, B  string
	Score float64
}

// SimilarNames returns pairs of distinct entry names whose case-folded
// Jaro-Winkler similarity is at least threshold. Each such pair would split
// one class across two folders.
func SimilarNames(entries []Entry, threshold float64) []NamePair {
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		names = append(names, e.Name)
	}

	var pairs []NamePair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			score := float64(edlib.JaroWinklerSimilarity(strings.ToLower(names[i]), strings.ToLower(names[j])))
			if score >= threshold {
				pairs = append(pairs, NamePair{A: names[i], B: names[j], Score: score})
			}
		}
	}
	return pairs
}
