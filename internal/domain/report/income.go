package report

import (
	"fmt"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/rank"
)

// IncomeDocument formats the income-direction result: the winning
// direction, the accumulator evidence, and five starter occupations.
func IncomeDocument(scores rank.IncomeScores, direction catalog.Direction) Document {
	evidence := make([]string, 0, len(catalog.DirectionPriority))
	for _, d := range catalog.DirectionPriority {
		evidence = append(evidence, fmt.Sprintf("%s: %d", catalog.DirectionNames[d], scores.ByDirection(d)))
	}

	ideas := make([]string, 0, len(catalog.DirectionIdeas[direction]))
	for _, p := range catalog.DirectionIdeas[direction] {
		ideas = append(ideas, p.Name)
	}

	return Document{
		heading(1, fmt.Sprintf("Your income direction: %s", catalog.DirectionNames[direction])),
		paragraph("The direction with the strongest overlap between your answers and the day-to-day reality of the work."),
		divider(),
		heading(2, "How the directions scored"),
		bullets(evidence...),
		divider(),
		heading(2, "Where to start"),
		bullets(ideas...),
		callout("Pick one occupation from the list and aim for the first paid order within two weeks."),
	}
}
