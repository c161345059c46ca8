// Package catalog holds the immutable reference data the engine classifies
// against: segments, motivations, income directions, keyword tables, the
// profession catalogue and the narrative text tables. Everything in this
// package is load-once reference data; callers must never mutate it.
package catalog

// Segment is one of the fixed interest/occupation categories.
type Segment string

// Segment keys. Declaration order is the tie-break order for ranking.
const (
	SegmentCreative      Segment = "creative"
	SegmentHelpPeople    Segment = "help_people"
	SegmentAnalytics     Segment = "analytics"
	SegmentBusiness      Segment = "business"
	SegmentEducation     Segment = "education"
	SegmentCommunication Segment = "communication"
	SegmentManagement    Segment = "management"
	SegmentPractical     Segment = "practical"
	SegmentResearch      Segment = "research"
	SegmentFreedom       Segment = "freedom"
)

// Segments lists all segments in catalogue order. Ties in classification
// scores are resolved by position in this slice.
var Segments = []Segment{
	SegmentCreative,
	SegmentHelpPeople,
	SegmentAnalytics,
	SegmentBusiness,
	SegmentEducation,
	SegmentCommunication,
	SegmentManagement,
	SegmentPractical,
	SegmentResearch,
	SegmentFreedom,
}

// SegmentNames maps segment keys to display names.
var SegmentNames = map[Segment]string{
	SegmentCreative:      "Creativity & self-expression",
	SegmentHelpPeople:    "Helping & caring for people",
	SegmentAnalytics:     "Analytics & systems",
	SegmentBusiness:      "Entrepreneurship & money",
	SegmentEducation:     "Teaching & knowledge sharing",
	SegmentCommunication: "Communication & influence",
	SegmentManagement:    "Organization & management",
	SegmentPractical:     "Hands-on work",
	SegmentResearch:      "Research & discovery",
	SegmentFreedom:       "Independent work & freedom",
}

// Motivation is one of the fixed motivation drivers.
type Motivation string

// Motivation keys in catalogue order.
const (
	MotivationMeaning     Motivation = "meaning"
	MotivationMoney       Motivation = "money"
	MotivationRecognition Motivation = "recognition"
	MotivationFreedom     Motivation = "freedom"
	MotivationProcess     Motivation = "process"
	MotivationStatus      Motivation = "status"
)

// DefaultMotivation is returned when free text carries no lexical evidence
// for any driver. Downstream report content depends on this exact fallback.
const DefaultMotivation = MotivationProcess

// Motivations lists all motivation drivers in catalogue order.
var Motivations = []Motivation{
	MotivationMeaning,
	MotivationMoney,
	MotivationRecognition,
	MotivationFreedom,
	MotivationProcess,
	MotivationStatus,
}

// MotivationNames maps motivation keys to display names.
var MotivationNames = map[Motivation]string{
	MotivationMeaning:     "Meaning & usefulness",
	MotivationMoney:       "Money & income",
	MotivationRecognition: "Recognition & fame",
	MotivationFreedom:     "Freedom & independence",
	MotivationProcess:     "Love of the craft",
	MotivationStatus:      "Status & career",
}

// Direction is one of the income directions matched by the income tool.
type Direction string

// Direction keys. DirectionPriority fixes the tie-break order.
const (
	DirectionBody     Direction = "body"
	DirectionSales    Direction = "sales"
	DirectionOnline   Direction = "online"
	DirectionCreative Direction = "creative"
	DirectionSoft     Direction = "soft"
)

// DirectionPriority is the declared tie-break order for equal scores.
var DirectionPriority = []Direction{
	DirectionBody,
	DirectionSales,
	DirectionOnline,
	DirectionCreative,
	DirectionSoft,
}

// DirectionNames maps direction keys to display names.
var DirectionNames = map[Direction]string{
	DirectionBody:     "Body & hands-on services",
	DirectionSales:    "Sales & communication",
	DirectionOnline:   "Online services",
	DirectionCreative: "Creative work",
	DirectionSoft:     "Soft start",
}

// SegmentToDirection suggests an income direction from a stored
// psychological profile's top segment.
var SegmentToDirection = map[Segment]Direction{
	SegmentCreative:      DirectionCreative,
	SegmentBusiness:      DirectionSales,
	SegmentAnalytics:     DirectionOnline,
	SegmentCommunication: DirectionSoft,
	SegmentEducation:     DirectionSoft,
	SegmentManagement:    DirectionSales,
	SegmentPractical:     DirectionBody,
	SegmentHelpPeople:    DirectionSoft,
	SegmentResearch:      DirectionOnline,
	SegmentFreedom:       DirectionOnline,
}
