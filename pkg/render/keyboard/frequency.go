package keyboard

import (
	"maps"
	"slices"
	"strings"
)

// FrequencyMap counts occurrences of each character of a lowercased text.
// Keys are single characters so they compare directly with
// [KeyDescriptor.Key].
type FrequencyMap map[string]int

// Count lowercases text and counts each character.
func Count(text string) FrequencyMap {
	m := make(FrequencyMap)
	for _, r := range strings.ToLower(text) {
		m[string(r)]++
	}
	return m
}

// Max returns the highest count, or 0 for an empty map.
func (m FrequencyMap) Max() int {
	best := 0
	for _, n := range m {
		best = max(best, n)
	}
	return best
}

// Intensity returns count/max for ch, in (0, 1], or 0 if ch is absent.
func (m FrequencyMap) Intensity(ch string) float64 {
	n := m[ch]
	if n == 0 {
		return 0
	}
	return float64(n) / float64(m.Max())
}

// Chars returns the counted characters in sorted order.
func (m FrequencyMap) Chars() []string {
	return slices.Sorted(maps.Keys(m))
}
