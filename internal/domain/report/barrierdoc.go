package report

import (
	"fmt"

	"github.com/selfcraft/atlas/internal/domain/barrier"
)

// BuildBarrierDocument narrates a recalled failed attempt: where it
// broke, what anxiety curve it followed and how the same step would
// feel with the named strengths in play.
func BuildBarrierDocument(
	steps []barrier.Step,
	breakStep int,
	profile barrier.Profile,
	newY int,
	weakness string,
	strengths []string,
) Document {
	text := barrier.ProfileTexts[profile]

	doc := Document{
		heading(1, "Your breaking point, replayed"),
		heading(2, text.Title),
		paragraph(text.Description),
	}

	if breakStep >= 0 && breakStep < len(steps) {
		step := steps[breakStep]
		doc = append(doc,
			divider(),
			heading(2, "Where it broke"),
			paragraph(fmt.Sprintf("Step %d: %s", breakStep+1, step.Text)),
			paragraph(fmt.Sprintf("Belief was at %d, anxiety at %d. That is the moment the attempt stalled.", step.X, step.Y)),
		)
		if newY < step.Y {
			doc = append(doc, callout(fmt.Sprintf(
				"With your strengths applied, anxiety at this step drops from %d to %d. The same wall, a lower climb.",
				step.Y, newY)))
		}
	} else {
		doc = append(doc,
			divider(),
			heading(2, "Where it broke"),
			paragraph("No single breaking point stands out. The attempt faded rather than snapped, which usually means the goal lost its pull before anxiety ever peaked."),
		)
	}

	if weakness != "" {
		doc = append(doc,
			heading(2, "What was working against you"),
			paragraph(weakness),
		)
	}
	if len(strengths) > 0 {
		doc = append(doc,
			heading(2, "What you had on your side"),
			bullets(strengths...),
		)
	}

	doc = append(doc, callout("A failed attempt is data, not a verdict. Rerun the same route with the anxiety accounted for."))

	return doc
}
