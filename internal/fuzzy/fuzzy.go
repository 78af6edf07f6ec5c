// Package fuzzy provides edit-distance matching for go-params error
// suggestions: when a strict parse hits an unknown option, the closest
// registered alias is offered back to the caller.
package fuzzy

import "strings"

// Matcher finds the closest candidate within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given max edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// FindBest returns the candidate with the smallest edit distance to the
// input, or "" when nothing is within the maximum distance. Exact matches
// are skipped; they are not typos.
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}

	input = strings.ToLower(input)
	best := ""
	bestDistance := m.maxDistance + 1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if input == lower {
			continue
		}

		distance := m.levenshteinDistance(input, lower)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best
}

// levenshteinDistance calculates edit distance between two strings.
// Two-row rolling computation with early termination past maxDistance.
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previousRow := make([]int, len(a)+1)
	currentRow := make([]int, len(a)+1)

	for i := range previousRow {
		previousRow[i] = i
	}

	for i := 1; i <= len(b); i++ {
		currentRow[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}

			currentRow[j] = minThree(
				currentRow[j-1]+1,     // insertion
				previousRow[j]+1,      // deletion
				previousRow[j-1]+cost, // substitution
			)

			if currentRow[j] < minInRow {
				minInRow = currentRow[j]
			}
		}

		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(a)]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// FindBestOption finds the closest registered option alias to the input.
func FindBestOption(input string, options []string, maxDistance int) string {
	matcher := NewMatcher(maxDistance)
	return matcher.FindBest(input, options)
}
