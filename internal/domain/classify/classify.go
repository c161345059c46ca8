// Package classify turns free-form answers into segment and motivation
// signals.
package classify

import (
	"strings"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/text"
)

const prefixRunes = 5

// Distribution holds a weight per segment. Weights sum to 1 after
// Normalize unless every weight is zero.
type Distribution map[catalog.Segment]float64

// Sum returns the total weight.
func (d Distribution) Sum() float64 {
	var total float64
	for _, v := range d {
		total += v
	}
	return total
}

// Normalize scales weights to sum to 1. A zero distribution is left
// untouched.
func (d Distribution) Normalize() {
	total := d.Sum()
	if total == 0 {
		return
	}
	for k, v := range d {
		d[k] = v / total
	}
}

// Top2 returns the two highest-weighted segments. Ties resolve by
// catalogue declaration order, so the result is stable.
func (d Distribution) Top2() (catalog.Segment, catalog.Segment) {
	var first, second catalog.Segment
	var firstW, secondW float64 = -1, -1
	for _, s := range catalog.Segments {
		w := d[s]
		switch {
		case w > firstW:
			second, secondW = first, firstW
			first, firstW = s, w
		case w > secondW:
			second, secondW = s, w
		}
	}
	return first, second
}

// tokenMatches reports whether the token matches a keyword: either the
// token starts with the keyword, or the keyword starts with the first
// five runes of the token.
func tokenMatches(token string, keywords []string) bool {
	prefix := text.TruncateRunes(token, prefixRunes)
	for _, kw := range keywords {
		if strings.HasPrefix(token, kw) || strings.HasPrefix(kw, prefix) {
			return true
		}
	}
	return false
}

// Segments scores a set of free-form activity answers against the
// segment keyword tables. Each answer carries a total weight of 1,
// split evenly across the segments it matches, so ambiguous answers do
// not dominate.
func Segments(activities []string) Distribution {
	dist := make(Distribution, len(catalog.Segments))
	for _, s := range catalog.Segments {
		dist[s] = 0
	}
	for _, answer := range activities {
		tokens := text.Tokenize(answer)
		var matched []catalog.Segment
		for _, s := range catalog.Segments {
			for _, token := range tokens {
				if tokenMatches(token, catalog.SegmentKeywords[s]) {
					matched = append(matched, s)
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		credit := 1.0 / float64(len(matched))
		for _, s := range matched {
			dist[s] += credit
		}
	}
	dist.Normalize()
	return dist
}

// Motivation counts keyword hits per motivation across the answer and
// returns the raw counts.
func Motivation(answer string) map[catalog.Motivation]int {
	counts := make(map[catalog.Motivation]int, len(catalog.Motivations))
	for _, m := range catalog.Motivations {
		counts[m] = 0
	}
	for _, token := range text.Tokenize(answer) {
		for _, m := range catalog.Motivations {
			if tokenMatches(token, catalog.MotivationKeywords[m]) {
				counts[m]++
			}
		}
	}
	return counts
}

// PrimaryMotivation picks the motivation with the highest count. Ties
// resolve by catalogue declaration order; an all-zero count falls back
// to the default motivation.
func PrimaryMotivation(counts map[catalog.Motivation]int) catalog.Motivation {
	best := catalog.DefaultMotivation
	bestCount := 0
	for _, m := range catalog.Motivations {
		if counts[m] > bestCount {
			best, bestCount = m, counts[m]
		}
	}
	return best
}
