package rank

import (
	"strings"

	"github.com/selfcraft/atlas/internal/domain/catalog"
)

// IncomeAnswers holds the raw categorical answers of the income
// questionnaire, keyed by question id.
type IncomeAnswers map[string]string

// IncomeScores carries one accumulator per direction.
type IncomeScores struct {
	Body     int
	Sales    int
	Online   int
	Creative int
	Soft     int
}

// ByDirection returns the accumulator for a direction.
func (s IncomeScores) ByDirection(d catalog.Direction) int {
	switch d {
	case catalog.DirectionBody:
		return s.Body
	case catalog.DirectionSales:
		return s.Sales
	case catalog.DirectionOnline:
		return s.Online
	case catalog.DirectionCreative:
		return s.Creative
	default:
		return s.Soft
	}
}

// CalcIncomeScores increments the five direction accumulators from
// substring cues in the raw answers. The answer vocabulary is Russian;
// the rules and weights mirror the questionnaire's fixed options and
// must not be reordered.
func CalcIncomeScores(answers IncomeAnswers) IncomeScores {
	var s IncomeScores

	bodyInterest := strings.ToLower(answers["body_interest"])
	touchComfort := strings.ToLower(answers["touch_comfort"])
	physicalLoad := strings.ToLower(answers["physical_load"])
	offlineAvailable := strings.ToLower(answers["offline_available"])
	startReady := answers["start_ready"]
	likesPeople := strings.ToLower(answers["likes_people"])
	energyLevel := strings.ToLower(answers["energy_level"])
	incomeTarget := answers["income_target"]
	onlineAvailable := strings.ToLower(answers["online_available"])
	goal := strings.ToLower(answers["goal"])
	strength := strings.ToLower(answers["strength"])
	timePerWeek := answers["time_per_week"]

	startReadyHigh := strings.Contains(startReady, "7") ||
		strings.Contains(startReady, "9") ||
		strings.Contains(startReady, "10")
	startReadyLow := strings.Contains(startReady, "1") ||
		strings.Contains(startReady, "4") ||
		strings.Contains(startReady, "5") ||
		strings.Contains(startReady, "6")

	switch {
	case strings.Contains(bodyInterest, "да"):
		s.Body += 3
	case strings.Contains(bodyInterest, "возможно"):
		s.Body += 2
	}
	switch {
	case strings.Contains(touchComfort, "да") && !strings.Contains(touchComfort, "скорее"):
		s.Body += 3
	case strings.Contains(touchComfort, "скорее"):
		s.Body += 2
	}
	switch {
	case strings.Contains(physicalLoad, "хорошо"):
		s.Body += 2
	case strings.Contains(physicalLoad, "нормально"):
		s.Body++
	}
	if strings.Contains(offlineAvailable, "да") {
		s.Body++
	}
	if startReadyHigh {
		s.Body++
	}

	switch {
	case strings.Contains(likesPeople, "очень"):
		s.Sales += 3
	case strings.Contains(likesPeople, "нормально"):
		s.Sales++
	}
	switch {
	case strings.Contains(energyLevel, "высокий"):
		s.Sales += 2
	case strings.Contains(energyLevel, "средний"):
		s.Sales++
	}
	if strings.Contains(incomeTarget, "50") || strings.Contains(incomeTarget, "100") {
		s.Sales++
	}

	if strings.Contains(onlineAvailable, "да") {
		s.Online += 2
	}
	if strings.Contains(likesPeople, "минимум") {
		s.Online += 3
	}
	if strings.Contains(offlineAvailable, "нет") {
		s.Online += 2
	}

	if strings.Contains(goal, "реализация") {
		s.Creative += 2
	}
	if strings.Contains(strength, "создаю") || strings.Contains(strength, "придумываю") {
		s.Creative += 2
	}

	if strings.Contains(energyLevel, "низкий") {
		s.Soft += 3
	}
	if startReadyLow {
		s.Soft += 2
	}
	if strings.Contains(timePerWeek, "до 5") || strings.Contains(timePerWeek, "5 часов") {
		s.Soft++
	}

	return s
}

// PickDirection returns the direction with the highest accumulator.
// Ties resolve by the declared priority order.
func PickDirection(s IncomeScores) catalog.Direction {
	max := s.Body
	for _, d := range catalog.DirectionPriority[1:] {
		if v := s.ByDirection(d); v > max {
			max = v
		}
	}
	for _, d := range catalog.DirectionPriority {
		if s.ByDirection(d) == max {
			return d
		}
	}
	return catalog.DirectionSoft
}
