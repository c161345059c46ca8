// Package indices holds the pure composite-index calculators shared by
// the assessment tools.
package indices

import (
	"math"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/classify"
	"github.com/selfcraft/atlas/internal/domain/rank"
)

// Strategy tiers govern plan intensity.
type Strategy string

const (
	StrategyIntensive Strategy = "intensive"
	StrategyBalanced  Strategy = "balanced"
	StrategySoft      Strategy = "soft"
)

// BurnoutLabel bands the additive burnout score.
type BurnoutLabel string

const (
	BurnoutLow    BurnoutLabel = "low"
	BurnoutMedium BurnoutLabel = "medium"
	BurnoutHigh   BurnoutLabel = "high"
)

const tiedTopEpsilon = 0.05

// Readiness returns the rounded mean of the three self-reported
// scalars, each clamped to [1,10].
func Readiness(energy, motivation, confidence int) int {
	sum := clamp(energy) + clamp(motivation) + clamp(confidence)
	return int(math.Round(float64(sum) / 3))
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// DefineStrategy maps the readiness index to a tier. Boundaries are
// inclusive on the high side: 8 is intensive, 7 is balanced.
func DefineStrategy(readiness int) Strategy {
	switch {
	case readiness >= 8:
		return StrategyIntensive
	case readiness >= 5:
		return StrategyBalanced
	default:
		return StrategySoft
	}
}

// GapPercent computes how far current income is from the target, in
// percent. A non-positive target reads as fully unmet.
func GapPercent(target, current float64) float64 {
	if target <= 0 {
		return 100
	}
	return (target - current) / target * 100
}

// BurnoutScore sums three independent penalty rules: +2 when the
// selected profession's tags exclude the primary motivation, +2 when
// money is the only detected motivation, +1 when the top two segment
// scores are within 0.05 of each other.
func BurnoutScore(
	profession catalog.Profession,
	motivation catalog.Motivation,
	motivationCounts map[catalog.Motivation]int,
	segments classify.Distribution,
) int {
	score := 0
	if !rank.MotivationMatches(profession, motivation) {
		score += 2
	}
	if moneyOnly(motivationCounts) {
		score += 2
	}
	first, second := segments.Top2()
	if math.Abs(segments[first]-segments[second]) < tiedTopEpsilon {
		score++
	}
	return score
}

func moneyOnly(counts map[catalog.Motivation]int) bool {
	nonzero := 0
	moneyHit := false
	for m, c := range counts {
		if c > 0 {
			nonzero++
			if m == catalog.MotivationMoney {
				moneyHit = true
			}
		}
	}
	return nonzero == 1 && moneyHit
}

// BurnoutRisk bands the burnout score: 0-1 low, 2-3 medium, 4+ high.
func BurnoutRisk(score int) BurnoutLabel {
	switch {
	case score <= 1:
		return BurnoutLow
	case score <= 3:
		return BurnoutMedium
	default:
		return BurnoutHigh
	}
}
