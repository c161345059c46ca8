package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/classify"
	"github.com/selfcraft/atlas/internal/domain/indices"
)

// BuildPsychReport assembles the full psychological profile document:
// profile identity, segment evidence, monetization ladder, burnout
// risk and a 30-day starter plan. Section order is fixed; the burnout
// section is always present.
func BuildPsychReport(
	segments classify.Distribution,
	motivationCounts map[catalog.Motivation]int,
	primary catalog.Motivation,
	selectedProfession catalog.Profession,
) Document {
	topSeg, _ := segments.Top2()
	burnout := indices.BurnoutScore(selectedProfession, primary, motivationCounts, segments)
	risk := indices.BurnoutRisk(burnout)
	profileName := catalog.ProfileName(primary, topSeg)

	doc := Document{
		heading(1, "Your psychological profile"),
		paragraph(fmt.Sprintf("Personality type: %s", profileName)),
		paragraph(fmt.Sprintf("Leading direction: %s", catalog.SegmentNames[topSeg])),
		paragraph(motivationLine(primary, motivationCounts)),
		heading(2, "What gives you energy"),
		paragraph(catalog.SegmentEnergy[topSeg]),
		heading(2, "Where you will burn out"),
		paragraph(catalog.SegmentBurnoutRisk[topSeg]),
		heading(2, "Work format that fits"),
		paragraph(catalog.SegmentFormat[topSeg]),
		divider(),

		heading(1, "Why this direction"),
		bullets(topSegmentLines(segments)...),
		paragraph(fmt.Sprintf("The profession %q is a direct match for your type.", selectedProfession.Name)),
		divider(),

		heading(1, "Monetization options"),
		bullets(
			"Start: "+catalog.Monetization[topSeg].Start,
			"Grow: "+catalog.Monetization[topSeg].Mid,
			"Scale: "+catalog.Monetization[topSeg].Scale,
		),
		divider(),

		heading(1, fmt.Sprintf("Burnout risk: %s", riskName(risk))),
		callout(burnoutNarrative(risk)),
		divider(),

		heading(1, "Your 30-day plan"),
		bullets(catalog.Plan30[topSeg]...),
		divider(),

		paragraph("Save this result. It is based on your real answers."),
	}
	return doc
}

func motivationLine(primary catalog.Motivation, counts map[catalog.Motivation]int) string {
	line := fmt.Sprintf("Leading motivation: %s", catalog.MotivationNames[primary])
	if extra := secondaryMotivations(primary, counts); extra != "" {
		line += fmt.Sprintf(" (also: %s)", extra)
	}
	return line
}

// secondaryMotivations names up to two other motivations with lexical
// evidence, strongest first, declaration order on ties.
func secondaryMotivations(primary catalog.Motivation, counts map[catalog.Motivation]int) string {
	var rest []catalog.Motivation
	for _, m := range catalog.Motivations {
		if m != primary && counts[m] > 0 {
			rest = append(rest, m)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return counts[rest[i]] > counts[rest[j]]
	})
	if len(rest) > 2 {
		rest = rest[:2]
	}
	out := ""
	for i, m := range rest {
		if i > 0 {
			out += " + "
		}
		out += catalog.MotivationNames[m]
	}
	return out
}

// topSegmentLines renders the three strongest segments with rounded
// percentage shares.
func topSegmentLines(segments classify.Distribution) []string {
	total := segments.Sum()
	if total == 0 {
		total = 1
	}

	ordered := make([]catalog.Segment, len(catalog.Segments))
	copy(ordered, catalog.Segments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return segments[ordered[i]] > segments[ordered[j]]
	})

	lines := make([]string, 0, 3)
	for _, s := range ordered[:3] {
		pct := int(math.Round(segments[s] / total * 100))
		lines = append(lines, fmt.Sprintf("%s: %d%%", catalog.SegmentNames[s], pct))
	}
	return lines
}

func riskName(r indices.BurnoutLabel) string {
	switch r {
	case indices.BurnoutLow:
		return "low"
	case indices.BurnoutMedium:
		return "medium"
	default:
		return "high"
	}
}

func burnoutNarrative(r indices.BurnoutLabel) string {
	switch r {
	case indices.BurnoutLow:
		return "The chosen direction matches your motivation and disposition well. The risk is minimal."
	case indices.BurnoutMedium:
		return "There is a slight mismatch between your motivation and the chosen direction. Watch the balance."
	default:
		return "High risk: motivation and direction may conflict. Consider adding elements of meaning to the work."
	}
}

// ProfessionNames flattens a ranked list for display.
func ProfessionNames(ranked []catalog.Profession) []string {
	names := make([]string, len(ranked))
	for i, p := range ranked {
		names[i] = p.Name
	}
	return names
}
