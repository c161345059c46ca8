package report

import (
	"fmt"

	"github.com/selfcraft/atlas/internal/domain/indices"
	"github.com/selfcraft/atlas/internal/domain/plan"
)

// PlanDocument formats a built plan as a document: strategy header,
// conditional advisory callouts, the 12-week schedule and the
// checkpoints.
func PlanDocument(p plan.FinalPlan) Document {
	doc := Document{
		heading(1, "Personal development plan for 3 months"),
		heading(2, fmt.Sprintf("Strategy: %s", strategyName(p.Strategy))),
		paragraph(fmt.Sprintf("Direction: %s", p.DirectionName)),
		paragraph(fmt.Sprintf("Readiness index: %d/10", p.Readiness)),
	}

	if p.LowReadiness {
		doc = append(doc, callout("Start by restoring energy and discipline. The plan ramps up gradually."))
	}
	if p.LowTime {
		doc = append(doc, callout(fmt.Sprintf("The workload is adapted to your available time (%d h/week).", p.TimePerWeek)))
	}
	if p.HighTime {
		doc = append(doc, callout(fmt.Sprintf("An accelerated scaling block is added to month 3 (%d h/week available).", p.TimePerWeek)))
	}
	if p.ActiveSearch {
		doc = append(doc, callout("An active client search block is added: the gap to your income goal exceeds 70%."))
	}
	if p.Scaling {
		doc = append(doc, callout("A rate-raising and scaling block is added: you are already close to your goal."))
	}

	for mi, month := range p.Months {
		doc = append(doc, divider(), heading(2, fmt.Sprintf("Month %d: %s", mi+1, month.Title)))
		for wi, week := range month.Weeks {
			doc = append(doc,
				heading(3, fmt.Sprintf("Week %d: %s", mi*4+wi+1, week.Focus)),
				bullets(week.Tasks...),
			)
		}
	}

	doc = append(doc,
		divider(),
		heading(2, "Checkpoints"),
		bullets(p.Checkpoints...),
	)
	return doc
}

func strategyName(s indices.Strategy) string {
	switch s {
	case indices.StrategyIntensive:
		return "Intensive"
	case indices.StrategyBalanced:
		return "Balanced"
	default:
		return "Soft entry"
	}
}
