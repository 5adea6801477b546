// Package suggest finds near-matches for a mistyped command name.
package suggest

import (
	"sort"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be offered.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, best
// first, ties broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return nil
	}
	var matches []scored
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, scored{name, score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score == matches[j].score {
			return matches[i].name < matches[j].name
		}
		return matches[i].score > matches[j].score
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.name)
	}
	return result
}

func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	maxLen := float64(max(len(a), len(b)))
	return 1.0 - float64(levenshtein(a, b))/maxLen
}

// levenshtein computes edit distance with a rolling two-row table.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
