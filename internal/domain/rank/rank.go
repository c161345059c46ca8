// Package rank orders profession candidates and picks income
// directions from questionnaire answers.
package rank

import (
	"sort"

	"github.com/selfcraft/atlas/internal/domain/catalog"
)

const maxProfessions = 10

// Professions returns up to ten catalogue entries for the segment,
// ordered so that professions tagged with the primary motivation come
// first. The sort is stable: within each score bucket the catalogue
// order is preserved, so identical inputs always produce identical
// output.
func Professions(segment catalog.Segment, motivation catalog.Motivation) []catalog.Profession {
	source := catalog.SegmentProfessions[segment]
	ranked := make([]catalog.Profession, len(source))
	copy(ranked, source)

	score := func(p catalog.Profession) int {
		for _, tag := range p.Tags {
			if tag == motivation {
				return 2
			}
		}
		return 1
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})

	if len(ranked) > maxProfessions {
		ranked = ranked[:maxProfessions]
	}
	return ranked
}

// MotivationMatches reports whether the profession's tag set contains
// the motivation. The burnout calculator uses this for its mismatch
// penalty.
func MotivationMatches(p catalog.Profession, m catalog.Motivation) bool {
	for _, tag := range p.Tags {
		if tag == m {
			return true
		}
	}
	return false
}
