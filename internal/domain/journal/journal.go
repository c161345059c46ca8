// Package journal aggregates diary entries into weekly statistics and
// per-entry emotional analysis.
package journal

import (
	"math"
	"strings"
	"time"

	"github.com/selfcraft/atlas/internal/domain/text"
)

const (
	weeklyWindow       = 7
	topEmotionLimit    = 5
	difficultyKeyRunes = 30
	repeatingThreshold = 3
)

// Emotion is a labeled feeling with the situation that triggered it.
type Emotion struct {
	Label   string `json:"label"`
	Trigger string `json:"trigger"`
}

// Entry is one completed journaling session. Entries are append-only
// and never edited after creation. EmotionTags, PatternTags and
// Intensity are derived at processing time and stored so later entries
// can compare against them.
type Entry struct {
	Date         time.Time `json:"date"`
	Achievements []string  `json:"achievements"`
	Actions      []string  `json:"actions"`
	Emotions     []Emotion `json:"emotions"`
	Difficulties []string  `json:"difficulties"`
	Insights     []string  `json:"insights"`
	Gratitude    []string  `json:"gratitude"`
	Energy       int       `json:"energy"`
	Stress       int       `json:"stress"`
	EmotionTags  []string  `json:"emotion_tags,omitempty"`
	PatternTags  []string  `json:"pattern_tags,omitempty"`
	Intensity    int       `json:"intensity_score"`
	Report       string    `json:"report"`
}

// FreeText collects every free-text answer of the entry, the input the
// keyword detectors scan.
func (e Entry) FreeText() []string {
	texts := make([]string, 0,
		len(e.Achievements)+len(e.Actions)+len(e.Difficulties)+
			len(e.Insights)+len(e.Gratitude)+2*len(e.Emotions))
	texts = append(texts, e.Achievements...)
	texts = append(texts, e.Actions...)
	for _, em := range e.Emotions {
		texts = append(texts, em.Label, em.Trigger)
	}
	texts = append(texts, e.Difficulties...)
	texts = append(texts, e.Insights...)
	texts = append(texts, e.Gratitude...)
	return texts
}

// Analyze fills the derived detection fields from the entry's free
// text. Already-set fields are overwritten.
func (e *Entry) Analyze() {
	texts := e.FreeText()
	e.EmotionTags, e.Intensity = DetectEmotions(texts)
	e.PatternTags = DetectPatterns(texts)
}

// WeeklyStats summarizes the most recent seven entries.
type WeeklyStats struct {
	AvgEnergy             float64
	AvgStress             float64
	TopEmotions           []string
	RepeatingDifficulties []string
}

// Weekly computes aggregate statistics over the most recent seven
// entries. Returns ErrNotEnoughEntries when fewer than seven are
// stored.
func Weekly(entries []Entry) (WeeklyStats, error) {
	if len(entries) < weeklyWindow {
		return WeeklyStats{}, ErrNotEnoughEntries
	}
	window := entries[len(entries)-weeklyWindow:]

	var energy, stress int
	for _, e := range window {
		energy += e.Energy
		stress += e.Stress
	}

	return WeeklyStats{
		AvgEnergy:             round1(float64(energy) / weeklyWindow),
		AvgStress:             round1(float64(stress) / weeklyWindow),
		TopEmotions:           topEmotions(window),
		RepeatingDifficulties: repeatingDifficulties(window),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// topEmotions returns up to five most frequent emotion labels. Ties
// keep the order in which a label was first encountered.
func topEmotions(window []Entry) []string {
	counts := make(map[string]int)
	var order []string
	for _, e := range window {
		for _, em := range e.Emotions {
			if _, seen := counts[em.Label]; !seen {
				order = append(order, em.Label)
			}
			counts[em.Label]++
		}
	}

	top := make([]string, len(order))
	copy(top, order)
	// insertion sort keeps first-encountered order among equal counts
	for i := 1; i < len(top); i++ {
		for j := i; j > 0 && counts[top[j]] > counts[top[j-1]]; j-- {
			top[j], top[j-1] = top[j-1], top[j]
		}
	}
	if len(top) > topEmotionLimit {
		top = top[:topEmotionLimit]
	}
	return top
}

// repeatingDifficulties flags difficulty texts whose lowercased
// 30-rune prefix recurs at least three times inside the window.
func repeatingDifficulties(window []Entry) []string {
	counts := make(map[string]int)
	first := make(map[string]string)
	var order []string
	for _, e := range window {
		for _, d := range e.Difficulties {
			key := text.TruncateRunes(strings.ToLower(d), difficultyKeyRunes)
			if _, seen := counts[key]; !seen {
				order = append(order, key)
				first[key] = d
			}
			counts[key]++
		}
	}

	var repeating []string
	for _, key := range order {
		if counts[key] >= repeatingThreshold {
			repeating = append(repeating, first[key])
		}
	}
	return repeating
}
