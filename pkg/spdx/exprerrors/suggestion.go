package exprerrors

import (
	"fmt"
	"strings"
)

// SuggestID suggests a registered identifier when an unknown license or
// exception id is encountered. It uses Levenshtein distance over the
// lowercased forms so case differences never mask a near match.
func SuggestID(unknown string, known []string) string {
	if len(known) == 0 {
		return ""
	}

	lower := strings.ToLower(unknown)
	minDistance := 1000
	var bestMatch string

	for _, id := range known {
		dist := levenshteinDistance(lower, strings.ToLower(id))
		if dist < minDistance {
			minDistance = dist
			bestMatch = id
		}
	}

	// Only suggest if the distance is reasonable (< 5 edits).
	if minDistance < 5 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	return ""
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
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

	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
