// Package barrier analyzes a step-by-step retrospective of a stalled
// attempt: where the break happened, how anxiety behaved, and how much
// support lowers it.
package barrier

import "strings"

// Step is one recalled action with self-rated belief (x) and anxiety
// (y), both on a 0-10 scale.
type Step struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// Profile classifies the anxiety curve over the recalled steps.
type Profile string

const (
	ProfileAmbitiousAnxious Profile = "ambitious_anxious"
	ProfileLowBelief        Profile = "low_belief"
	ProfileFearOfEvaluation Profile = "fear_of_evaluation"
	ProfileChronicAnxiety   Profile = "chronic_anxiety"
	ProfileBalanced         Profile = "balanced"
)

// ProfileText is the narrative attached to a profile.
type ProfileText struct {
	Title       string
	Description string
}

// ProfileTexts holds the narrative per profile.
var ProfileTexts = map[Profile]ProfileText{
	ProfileAmbitiousAnxious: {
		Title:       "Ambitious but anxious",
		Description: "You move boldly toward high goals, yet inner tension grows with every bit of progress. Learning to sustain your own growth is the key.",
	},
	ProfileLowBelief: {
		Title:       "Low belief in success",
		Description: "You did not believe in the result from the very start. That is not weakness, it is a signal: you need a foothold before the first step.",
	},
	ProfileFearOfEvaluation: {
		Title:       "Fear of evaluation",
		Description: "Anxiety spikes sharply, usually at moments when others can see or judge you. That is the classic breakdown trigger.",
	},
	ProfileChronicAnxiety: {
		Title:       "Chronic anxiety",
		Description: "Tension built gradually and evenly. Not one explosion but a long background hum that eventually drained the resource.",
	},
	ProfileBalanced: {
		Title:       "Balanced type",
		Description: "You moved steadily. The break came from one specific point, not a systemic problem. That is the easiest kind to fix.",
	},
}

// DetectBreakPoint finds the step where the attempt broke: the first
// step with anxiety at 7 or higher, otherwise the first step where
// belief collapsed to under half of the previous one. Returns -1 when
// neither signal is present.
func DetectBreakPoint(steps []Step) int {
	for i, s := range steps {
		if s.Y >= 7 {
			return i
		}
	}
	for i := 1; i < len(steps); i++ {
		if float64(steps[i].X) < float64(steps[i-1].X)*0.5 {
			return i
		}
	}
	return -1
}

// RecalcY lowers the original anxiety rating according to how much
// additional support was named. One extra strength cuts fear-type
// weaknesses by 2 and burnout by 1; two or more cut any weakness by 3.
// The result never goes below zero.
func RecalcY(originalY int, weakness string, additionalCount int) int {
	reduction := 0
	lowered := strings.ToLower(weakness)

	switch {
	case additionalCount >= 2:
		reduction = 3
	case additionalCount == 1:
		switch {
		case strings.Contains(lowered, "страх") || strings.Contains(lowered, "самозванца"):
			reduction = 2
		case strings.Contains(lowered, "выгорание"):
			reduction = 1
		default:
			reduction = 2
		}
	}

	if out := originalY - reduction; out > 0 {
		return out
	}
	return 0
}

// DetectProfile classifies the anxiety curve. Empty input yields the
// empty profile.
func DetectProfile(steps []Step) Profile {
	if len(steps) == 0 {
		return ""
	}

	var sumX, sumY, maxY, minY int
	maxY, minY = steps[0].Y, steps[0].Y
	for _, s := range steps {
		sumX += s.X
		sumY += s.Y
		if s.Y > maxY {
			maxY = s.Y
		}
		if s.Y < minY {
			minY = s.Y
		}
	}
	avgX := float64(sumX) / float64(len(steps))
	avgY := float64(sumY) / float64(len(steps))
	spread := maxY - minY

	switch {
	case avgX >= 7 && avgY >= 7:
		return ProfileAmbitiousAnxious
	case avgX <= 4:
		return ProfileLowBelief
	case spread >= 5:
		return ProfileFearOfEvaluation
	case avgY >= 5 && spread <= 3:
		return ProfileChronicAnxiety
	default:
		return ProfileBalanced
	}
}
