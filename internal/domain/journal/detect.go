package journal

import (
	"strings"

	"github.com/selfcraft/atlas/pkg/random"
)

// DictEntry is one category of an ordered keyword dictionary. Slices
// rather than maps keep detection order deterministic.
type DictEntry struct {
	Tag      string
	Keywords []string
}

// EmotionDict categorizes raw answer text into emotion tags. The
// keyword vocabulary is Russian because detection runs against the
// questionnaire's answer language.
var EmotionDict = []DictEntry{
	{Tag: "anxiety", Keywords: []string{"тревога", "тревож", "страх", "нервнича", "переживаю", "волнуюсь", "паника", "беспокоюсь"}},
	{Tag: "anger", Keywords: []string{"злость", "раздражение", "бесит", "злюсь", "агрессия", "ненавижу"}},
	{Tag: "sadness", Keywords: []string{"грусть", "печаль", "тоска", "пустота", "одиночество", "одинок", "плачу"}},
	{Tag: "exhaustion", Keywords: []string{"устал", "нет сил", "выгорание", "выдохся", "истощ", "не могу"}},
	{Tag: "guilt", Keywords: []string{"вина", "виноват", "стыдно", "стыд", "должен был"}},
	{Tag: "joy", Keywords: []string{"радость", "рад", "доволен", "счастлив", "вдохнов", "горжусь"}},
}

// EmotionLabels maps detected emotion tags to display names.
var EmotionLabels = map[string]string{
	"anxiety":    "anxiety",
	"anger":      "anger",
	"sadness":    "sadness",
	"exhaustion": "exhaustion",
	"guilt":      "guilt",
	"joy":        "joy",
}

// PatternLabels maps thought-pattern tags to display names.
var PatternLabels = map[string]string{
	"self_criticism":   "self-criticism",
	"catastrophizing":  "catastrophizing",
	"avoidance":        "avoidance",
	"overgeneralizing": "overgeneralizing",
}

// PatternDict flags recurring thought patterns.
var PatternDict = []DictEntry{
	{Tag: "self_criticism", Keywords: []string{"я плохой", "у меня не получ", "я неудачник", "сам виноват", "недостаточно хорош"}},
	{Tag: "catastrophizing", Keywords: []string{"все пропало", "всё пропало", "ничего не выйдет", "это конец", "катастрофа"}},
	{Tag: "avoidance", Keywords: []string{"отложил", "не стал делать", "избега", "завтра начну", "потом сделаю"}},
	{Tag: "overgeneralizing", Keywords: []string{"всегда так", "никогда не", "у всех лучше", "как обычно"}},
}

func matchKeywords(combined string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(combined, kw) {
			hits++
		}
	}
	return hits
}

// DetectEmotions scans the free-text answers for emotional vocabulary.
// Each matched category adds its tag; categories with two or more
// keyword hits raise the intensity score by 1, four or more by 2.
func DetectEmotions(texts []string) (tags []string, score int) {
	combined := strings.ToLower(strings.Join(texts, " "))
	for _, entry := range EmotionDict {
		hits := matchKeywords(combined, entry.Keywords)
		if hits == 0 {
			continue
		}
		tags = append(tags, entry.Tag)
		switch {
		case hits >= 4:
			score += 2
		case hits >= 2:
			score++
		}
	}
	return tags, score
}

// DetectPatterns returns the thought-pattern tags whose phrase list
// matches the answers.
func DetectPatterns(texts []string) []string {
	combined := strings.ToLower(strings.Join(texts, " "))
	var tags []string
	for _, entry := range PatternDict {
		if matchKeywords(combined, entry.Keywords) > 0 {
			tags = append(tags, entry.Tag)
		}
	}
	return tags
}

// supportTemplate pairs trigger keywords with candidate support lines.
type supportTemplate struct {
	keywords []string
	texts    []string
}

var supportTemplates = []supportTemplate{
	{
		keywords: []string{"тревога", "страх", "нервничаю", "переживаю", "волнуюсь", "паника", "беспокоюсь"},
		texts: []string{
			"Anxiety is a signal, not a verdict. Observing it instead of running from it is already an important step.",
			"Naming anxiety takes away part of its power. Your answers show you are coping.",
		},
	},
	{
		keywords: []string{"злость", "раздражение", "бесит", "злюсь", "агрессия", "ненавижу"},
		texts: []string{
			"Anger is energy. The question is not how to suppress it but where to direct it, and you have started working on that.",
			"Irritation often points at a crossed boundary. Noticing it is a healthy reaction.",
		},
	},
	{
		keywords: []string{"грусть", "печаль", "тоска", "пустота", "одиночество", "одинок", "плачу"},
		texts: []string{
			"Sadness is part of life and it does not make you weak. The capacity to feel is a strength.",
			"You are not alone in this. Deciding to write your thoughts down is already an act of self-care.",
		},
	},
	{
		keywords: []string{"устал", "нет сил", "выгорание", "выдохся", "истощён", "не могу"},
		texts: []string{
			"Tiredness is the body asking for a pause. You are not lazy, you deserve recovery.",
			"When energy is low, even small steps count. This entry is one of them.",
		},
	},
	{
		keywords: []string{"вина", "виноват", "стыдно", "стыд", "должен был"},
		texts: []string{
			"Guilt often means you care. Self-criticism without action only drains you, and you are already moving.",
			"You do not have to be perfect. Being honest with yourself is enough, and you are doing it right now.",
		},
	},
}

var genericSupport = []string{
	"You did important work today. Observing yourself is already a step toward change.",
	"Every time you stop and reflect, you get a little closer to yourself. That matters.",
	"You did not just write thoughts down, you gave yourself space to think. That is more than it seems.",
}

// Support picks an encouraging line keyed off the emotional vocabulary
// in the answers. The first matching template wins; the line within
// the template is chosen by the random source.
func Support(texts []string, rng random.Source) string {
	combined := strings.ToLower(strings.Join(texts, " "))
	for _, tpl := range supportTemplates {
		for _, kw := range tpl.keywords {
			if strings.Contains(combined, kw) {
				return tpl.texts[rng.IntN(len(tpl.texts))]
			}
		}
	}
	return genericSupport[rng.IntN(len(genericSupport))]
}

// ReflectionPrompts is the pool of follow-up questions for a completed
// entry.
var ReflectionPrompts = []string{
	"What would you tell a friend in the same situation?",
	"What is one small thing that went better than expected today?",
	"If this feeling could speak, what would it ask for?",
	"What did this situation teach you about your boundaries?",
	"What would make tomorrow 1% easier?",
	"Which of your strengths helped you get through today?",
	"What are you ready to let go of?",
}

// PickPrompts selects n distinct reflection prompts using the random
// source for the shuffle.
func PickPrompts(rng random.Source, n int) []string {
	pool := make([]string, len(ReflectionPrompts))
	copy(pool, ReflectionPrompts)
	for i := len(pool) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
