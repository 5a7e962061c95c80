package expr

import "strings"

// Span is one bounded substring located inside a source string.
// Start and End are byte offsets into the source such that
// source[Start:End] == Text, after trim offsets have been applied.
type Span struct {
	Start int
	End   int
	Text  string
}

// ExtractSpans finds every substring of s bounded by the left marker and the
// right marker and returns them in source order.
//
// The pairing is a shallow heuristic, not a balanced-bracket matcher: each
// right marker is paired with the closest left marker preceding it. A right
// marker with no preceding left marker produces no span. When several right
// markers sit immediately next to each other with no characters between them,
// only the first of the run counts as a boundary.
//
// trimLeft and trimRight shift the extracted region after the markers
// themselves have been excluded: the text is
// s[leftEnd+trimLeft : rightStart+trimRight], where leftEnd is the offset just
// past the left marker and rightStart is the offset of the right marker.
//
// A nil/empty result means "no grouping"; callers are expected to operate on
// the whole input in that case.
func ExtractSpans(s, left, right string, trimLeft, trimRight int) []Span {
	if left == "" || right == "" {
		return nil
	}

	rights := collapseAdjacent(indexAll(s, right), len(right))
	lefts := indexAll(s, left)
	if len(rights) == 0 || len(lefts) == 0 {
		return nil
	}

	var spans []Span
	for _, r := range rights {
		l, ok := nearestPreceding(lefts, r)
		if !ok {
			// unmatched right marker, not an error
			continue
		}
		start := l + len(left) + trimLeft
		end := r + trimRight
		if start < 0 || end > len(s) || start > end {
			continue
		}
		spans = append(spans, Span{Start: start, End: end, Text: s[start:end]})
	}
	return spans
}

// indexAll returns the starting offsets of every non-overlapping occurrence
// of pattern in s, left to right.
func indexAll(s, pattern string) []int {
	var positions []int
	for offset := 0; ; {
		i := strings.Index(s[offset:], pattern)
		if i < 0 {
			break
		}
		positions = append(positions, offset+i)
		offset += i + len(pattern)
	}
	return positions
}

// collapseAdjacent keeps only the first marker of each run of matches that
// start exactly where the previous one ends (e.g. a doubled delimiter).
func collapseAdjacent(positions []int, width int) []int {
	if len(positions) < 2 {
		return positions
	}
	kept := positions[:1]
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+width {
			continue
		}
		kept = append(kept, positions[i])
	}
	return kept
}

// nearestPreceding returns the largest position strictly before limit.
// positions must be sorted ascending, which indexAll guarantees.
func nearestPreceding(positions []int, limit int) (int, bool) {
	best, found := 0, false
	for _, p := range positions {
		if p >= limit {
			break
		}
		best, found = p, true
	}
	return best, found
}
