package catalog

// Keyword tables drive the fuzzy prefix matching in the classifiers. The
// vocabulary is Russian because classification runs against the original
// questionnaire's answer language; entries are lowercase stems so that the
// prefix rule approximates stemming without a morphological analyzer.

// SegmentKeywords maps each segment to its keyword stems.
var SegmentKeywords = map[Segment][]string{
	SegmentCreative: {
		"творч", "творю", "рису", "дизайн", "музык", "сочин",
		"креатив", "фотограф", "видео", "монтаж", "иллюстр", "пишу",
	},
	SegmentHelpPeople: {
		"помога", "помощ", "помочь", "поддерж", "забот", "выслуш",
		"спаса", "волонт", "психолог", "лечу",
	},
	SegmentAnalytics: {
		"анализ", "аналит", "данн", "таблиц", "цифр", "расчет",
		"расчёт", "отчет", "отчёт", "логик", "статист",
	},
	SegmentBusiness: {
		"бизнес", "продаж", "предприним", "сделк", "торг",
		"маркет", "запуск", "инвест", "стартап",
	},
	SegmentEducation: {
		"обуча", "преподава", "объясня", "настав", "курс",
		"урок", "школ", "лекци", "репетит",
	},
	SegmentCommunication: {
		"общени", "общать", "общаю", "перегово", "выступ", "коммуник",
		"блог", "подкаст", "ведущ", "сообществ",
	},
	SegmentManagement: {
		"организ", "управл", "руковод", "координ", "планиру",
		"команд", "контрол", "делеги",
	},
	SegmentPractical: {
		"руками", "готовл", "ремонт", "мастер", "шью",
		"строи", "собира", "чиню", "вяжу",
	},
	SegmentResearch: {
		"исследу", "изуча", "экспер", "наук", "разбира",
		"тести", "гипотез", "копаюсь",
	},
	SegmentFreedom: {
		"свобод", "путешеств", "фрилан", "удален", "удалён",
		"независ", "кочев", "гибк",
	},
}

// MotivationKeywords maps each motivation driver to its keyword stems.
var MotivationKeywords = map[Motivation][]string{
	MotivationMeaning: {
		"смысл", "польз", "помога", "важн", "мисси", "ценност", "вклад",
	},
	MotivationMoney: {
		"деньг", "доход", "зарабо", "зарабат", "финанс", "прибыл", "обеспеч",
	},
	MotivationRecognition: {
		"признан", "извест", "слав", "попул", "уважен", "замет",
	},
	MotivationFreedom: {
		"свобод", "независ", "самосто", "график", "выбира",
	},
	MotivationProcess: {
		"процесс", "интерес", "увлека", "нрав", "люб", "удовольств",
	},
	MotivationStatus: {
		"статус", "карьер", "должност", "рост", "престиж",
	},
}
