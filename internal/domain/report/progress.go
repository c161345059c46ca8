package report

import (
	"fmt"

	"github.com/selfcraft/atlas/internal/domain/progress"
	"github.com/selfcraft/atlas/pkg/random"
)

// closingThreshold is the history size at which the closing line stops
// being fixed and becomes a random choice between the first two
// options.
const closingThreshold = 3

var progressClosings = [3]string{
	"Keep the rhythm: one honest check-in a week beats a perfect plan.",
	"The numbers are yours. Use them to choose one small adjustment for the coming week.",
	"A first entry is a baseline, not a verdict. The picture appears with the next one.",
}

var deltaNarratives = map[progress.DeltaLabel]string{
	progress.DeltaStrongUp:   "strong growth",
	progress.DeltaMildUp:     "slight growth",
	progress.DeltaNone:       "no change",
	progress.DeltaMildDown:   "slight dip",
	progress.DeltaStrongDown: "strong dip",
}

// BuildProgressComparison formats a check-in against its predecessor.
// With no predecessor it produces the first-entry variant. historyCount
// counts stored check-ins including the current one; the closing line
// is index 2 below three and a uniform choice between the first two
// from the third check-in on.
func BuildProgressComparison(
	current progress.Entry,
	previous *progress.Entry,
	metrics []progress.MetricDef,
	historyCount int,
	rng random.Source,
) Document {
	if previous == nil {
		doc := Document{
			heading(1, "First check-in recorded"),
			paragraph(fmt.Sprintf("Focus: %s", current.MainFocus)),
		}
		if current.KeyThought != "" {
			doc = append(doc, paragraph(fmt.Sprintf("Thought: %s", current.KeyThought)))
		}
		doc = append(doc, divider(), paragraph(progressClosings[2]))
		return doc
	}

	c := progress.Compare(current, *previous, metrics)

	lines := make([]string, 0, len(c.Deltas))
	for _, d := range c.Deltas {
		lines = append(lines, fmt.Sprintf("%s: %d → %d (%s), %s",
			d.Metric.Label, d.Previous, d.Current, signed(d.Delta), deltaNarratives[d.Label]))
	}

	doc := Document{
		heading(1, "Comparison with the previous check-in"),
		bullets(lines...),
		divider(),
		heading(2, "Overall dynamic"),
		paragraph(trendNarrative(c.Trend)),
		paragraph(fmt.Sprintf("Grew: %d · Fell: %d · Unchanged: %d", c.Grew, c.Fell, c.Unchanged)),
		divider(),
		heading(2, "Focus"),
		paragraph(focusNarrative(current, *previous)),
		paragraph(fmt.Sprintf("Current focus: %s", current.MainFocus)),
		divider(),
		heading(2, "Summary"),
	}

	idx := 2
	if historyCount >= closingThreshold {
		idx = rng.IntN(2)
	}
	doc = append(doc, paragraph(progressClosings[idx]))
	return doc
}

func signed(d int) string {
	if d > 0 {
		return fmt.Sprintf("+%d", d)
	}
	return fmt.Sprintf("%d", d)
}

func trendNarrative(t progress.Trend) string {
	switch t {
	case progress.TrendPositive:
		return "Most metrics grew since the last check-in. The direction is working."
	case progress.TrendNegative:
		return "Most metrics dipped since the last check-in. Worth a lighter week and a look at the load."
	default:
		return "The picture is stable. No sharp moves either way."
	}
}

func focusNarrative(current, previous progress.Entry) string {
	if current.MainFocus == previous.MainFocus {
		return "The focus held steady. Consistency compounds."
	}
	return "The focus shifted since last time. Make sure it was a choice, not a drift."
}
