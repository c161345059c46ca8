package report

import (
	"fmt"
	"strings"

	"github.com/selfcraft/atlas/internal/domain/journal"
	"github.com/selfcraft/atlas/pkg/random"
)

// patternRepeatMin is how many prior entries must share a pattern tag
// before the recurring-pattern warning appears.
const patternRepeatMin = 2

const reflectionPromptCount = 3

func labelList(tags []string, labels map[string]string) string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		if name, ok := labels[tag]; ok {
			names[i] = name
		} else {
			names[i] = tag
		}
	}
	return strings.Join(names, ", ")
}

func sharedPatternCount(history []journal.Entry, tags []string) int {
	count := 0
	for _, prev := range history {
		for _, tag := range tags {
			if containsString(prev.PatternTags, tag) {
				count++
				break
			}
		}
	}
	return count
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func intensityDynamic(current, previous int) string {
	switch {
	case current > previous:
		return "Emotional intensity is higher than in your previous entry. Be a little gentler with yourself today."
	case current < previous:
		return "Emotional intensity is lower than in your previous entry. Something is easing."
	default:
		return "Emotional intensity is at the level of your previous entry."
	}
}

// BuildJournalDocument assembles the day summary for a completed
// journal entry. The entry's detection fields must be filled before the
// call; history is chronological and feeds the weekly section, the
// recurring-pattern warning and the intensity dynamic.
func BuildJournalDocument(entry journal.Entry, history []journal.Entry, rng random.Source) Document {
	doc := Document{
		heading(1, "Your day, recorded"),
		paragraph(fmt.Sprintf("Energy %d/10 · Stress %d/10", entry.Energy, entry.Stress)),
	}

	if len(entry.Achievements) > 0 {
		doc = append(doc, heading(2, "Achievements"), bullets(entry.Achievements...))
	}
	if len(entry.Emotions) > 0 {
		lines := make([]string, 0, len(entry.Emotions))
		for _, em := range entry.Emotions {
			if em.Trigger != "" {
				lines = append(lines, fmt.Sprintf("%s: %s", em.Label, em.Trigger))
			} else {
				lines = append(lines, em.Label)
			}
		}
		doc = append(doc, heading(2, "Emotions of the day"), bullets(lines...))
	} else {
		doc = append(doc, paragraph("No distinct emotions named today. That is information too."))
	}
	if len(entry.EmotionTags) > 0 {
		doc = append(doc, paragraph(fmt.Sprintf(
			"Your wording carries traces of: %s.",
			labelList(entry.EmotionTags, journal.EmotionLabels))))
	}
	if len(entry.PatternTags) > 0 {
		doc = append(doc,
			heading(2, "Thought patterns"),
			paragraph(fmt.Sprintf(
				"The entry shows signs of %s.",
				labelList(entry.PatternTags, journal.PatternLabels))))
		if sharedPatternCount(history, entry.PatternTags) >= patternRepeatMin {
			doc = append(doc, callout(
				"One of these patterns has appeared in earlier entries too. A recurring pattern deserves a closer look."))
		}
	}
	if len(history) > 0 {
		doc = append(doc, paragraph(intensityDynamic(entry.Intensity, history[len(history)-1].Intensity)))
	}
	if len(entry.Insights) > 0 {
		doc = append(doc, heading(2, "Insights"), bullets(entry.Insights...))
	}
	if len(entry.Gratitude) > 0 {
		doc = append(doc, heading(2, "Gratitude"), bullets(entry.Gratitude...))
	}

	all := append(append([]journal.Entry(nil), history...), entry)
	if stats, err := journal.Weekly(all); err == nil {
		doc = append(doc,
			divider(),
			heading(2, "Your week in numbers"),
			paragraph(fmt.Sprintf("Average energy %.1f · average stress %.1f", stats.AvgEnergy, stats.AvgStress)),
		)
		if len(stats.TopEmotions) > 0 {
			doc = append(doc, bullets(stats.TopEmotions...))
		}
		if len(stats.RepeatingDifficulties) > 0 {
			doc = append(doc, callout(fmt.Sprintf(
				"A difficulty keeps coming back: %q. It may deserve a dedicated plan.",
				stats.RepeatingDifficulties[0])))
		}
	}

	doc = append(doc, divider(), callout(journal.Support(entry.FreeText(), rng)))
	doc = append(doc,
		heading(2, "Questions to sit with"),
		bullets(journal.PickPrompts(rng, reflectionPromptCount)...))

	return doc
}
