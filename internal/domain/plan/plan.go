// Package plan builds a three-month development plan from readiness
// inputs and a static per-direction task template.
package plan

import (
	"math"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/indices"
)

const (
	lowTimeThreshold  = 7
	highTimeThreshold = 20
	lowTimeKeepRatio  = 0.7
	highGapThreshold  = 70
	lowGapThreshold   = 30
	lowReadinessMax   = 4

	scalingTitleSuffix = " (+ accelerated scaling)"
)

var activeSearchTasks = []string{
	"Active client search: reach out to 5 new prospects this week",
	"Join one industry event or community this week",
}

var scalingTasks = []string{
	"Raise your rate by 20-30% for new clients",
	"Offer current clients an extended package",
}

// SuggestDirection maps a profiled top segment to the income direction a
// plan defaults to when the questionnaire leaves direction unset.
func SuggestDirection(seg catalog.Segment) (catalog.Direction, bool) {
	dir, ok := catalog.SegmentToDirection[seg]
	return dir, ok
}

// UserInputs is the full planning questionnaire. Values are immutable
// once the plan is built.
type UserInputs struct {
	Direction     catalog.Direction `json:"direction"`
	Energy        int               `json:"energy_level"`
	Motivation    int               `json:"motivation_level"`
	Confidence    int               `json:"confidence_level"`
	TimePerWeek   int               `json:"time_per_week"`
	IncomeTarget  int               `json:"income_target"`
	CurrentIncome int               `json:"current_income"`
}

// Week is one week of the schedule.
type Week struct {
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// Month is one month of the schedule, always four weeks.
type Month struct {
	Title string  `json:"title"`
	Weeks [4]Week `json:"weeks"`
}

// Template is a full three-month schedule for one direction and tier.
type Template [3]Month

// FinalPlan is the derived, read-only planning result.
type FinalPlan struct {
	Direction     catalog.Direction `json:"direction"`
	DirectionName string            `json:"direction_name"`
	Strategy      indices.Strategy  `json:"strategy"`
	Readiness     int               `json:"readiness_index"`
	TimePerWeek   int               `json:"time_per_week"`
	IncomeTarget  int               `json:"income_target"`
	CurrentIncome int               `json:"current_income"`
	GapPercent    float64           `json:"gap_percent"`

	LowTime      bool `json:"low_time"`
	HighTime     bool `json:"high_time"`
	ActiveSearch bool `json:"active_search"`
	Scaling      bool `json:"scaling"`
	LowReadiness bool `json:"low_readiness"`

	Months      [3]Month `json:"months"`
	Checkpoints []string `json:"checkpoints"`
}

// Build computes the readiness index, picks the strategy tier and
// derives the adapted schedule. The static template is deep-copied
// before any transformation, so repeat builds never observe another
// session's mutations.
func Build(in UserInputs) FinalPlan {
	readiness := indices.Readiness(in.Energy, in.Motivation, in.Confidence)
	strategy := indices.DefineStrategy(readiness)
	gap := indices.GapPercent(float64(in.IncomeTarget), float64(in.CurrentIncome))

	p := FinalPlan{
		Direction:     in.Direction,
		DirectionName: catalog.DirectionNames[in.Direction],
		Strategy:      strategy,
		Readiness:     readiness,
		TimePerWeek:   in.TimePerWeek,
		IncomeTarget:  in.IncomeTarget,
		CurrentIncome: in.CurrentIncome,
		GapPercent:    gap,
		LowTime:       in.TimePerWeek < lowTimeThreshold,
		HighTime:      in.TimePerWeek > highTimeThreshold,
		ActiveSearch:  gap > highGapThreshold,
		Scaling:       gap < lowGapThreshold,
		LowReadiness:  readiness <= lowReadinessMax,
		Checkpoints:   append([]string(nil), Checkpoints[in.Direction]...),
	}

	tpl := Templates[in.Direction][strategy]
	for mi := range tpl {
		month := Month{Title: tpl[mi].Title}
		for wi := range tpl[mi].Weeks {
			src := tpl[mi].Weeks[wi]
			tasks := append([]string(nil), src.Tasks...)

			if p.LowTime {
				keep := int(math.Ceil(float64(len(tasks)) * lowTimeKeepRatio))
				tasks = tasks[:keep]
			}
			if p.ActiveSearch && mi >= 1 && wi == 3 {
				tasks = append(tasks, activeSearchTasks...)
			}
			if p.Scaling && mi >= 1 && wi == 3 {
				tasks = append(tasks, scalingTasks...)
			}

			month.Weeks[wi] = Week{Focus: src.Focus, Tasks: tasks}
		}
		if mi == 2 && p.HighTime {
			month.Title += scalingTitleSuffix
		}
		p.Months[mi] = month
	}

	return p
}
