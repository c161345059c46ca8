package catalog

// Profession is a catalogue entry with the motivation drivers it serves.
type Profession struct {
	Name string
	Tags []Motivation
}

// SegmentProfessions lists ten professions per segment. List order is the
// secondary sort key for ranking, so entries must not be reordered.
var SegmentProfessions = map[Segment][]Profession{
	SegmentCreative: {
		{Name: "Content creator / blogger", Tags: []Motivation{MotivationRecognition, MotivationFreedom}},
		{Name: "Designer (graphics, UX)", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "Copywriter / storyteller", Tags: []Motivation{MotivationFreedom, MotivationProcess}},
		{Name: "Photographer", Tags: []Motivation{MotivationFreedom, MotivationRecognition}},
		{Name: "Videographer / editor", Tags: []Motivation{MotivationRecognition, MotivationProcess}},
		{Name: "Illustrator", Tags: []Motivation{MotivationProcess, MotivationMeaning}},
		{Name: "Musician / sound designer", Tags: []Motivation{MotivationProcess, MotivationRecognition}},
		{Name: "Social media manager", Tags: []Motivation{MotivationRecognition, MotivationFreedom}},
		{Name: "Art director", Tags: []Motivation{MotivationStatus, MotivationRecognition}},
		{Name: "Film director / screenwriter", Tags: []Motivation{MotivationRecognition, MotivationProcess}},
	},
	SegmentHelpPeople: {
		{Name: "Psychologist / coach", Tags: []Motivation{MotivationMeaning, MotivationProcess}},
		{Name: "Nutritionist", Tags: []Motivation{MotivationMeaning, MotivationFreedom}},
		{Name: "Fitness trainer", Tags: []Motivation{MotivationMeaning, MotivationRecognition}},
		{Name: "Mediator / conflict specialist", Tags: []Motivation{MotivationMeaning, MotivationStatus}},
		{Name: "HR / recruiter", Tags: []Motivation{MotivationMeaning, MotivationStatus}},
		{Name: "Social worker", Tags: []Motivation{MotivationMeaning}},
		{Name: "Massage / bodywork therapist", Tags: []Motivation{MotivationMeaning, MotivationFreedom}},
		{Name: "Nonprofit manager", Tags: []Motivation{MotivationMeaning}},
		{Name: "Online consultant", Tags: []Motivation{MotivationFreedom, MotivationMeaning}},
		{Name: "Rehabilitation specialist", Tags: []Motivation{MotivationMeaning, MotivationProcess}},
	},
	SegmentAnalytics: {
		{Name: "Data analyst", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "Financial analyst", Tags: []Motivation{MotivationMoney, MotivationStatus}},
		{Name: "Business analyst", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "Data scientist", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "Auditor", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "SEO specialist", Tags: []Motivation{MotivationProcess, MotivationFreedom}},
		{Name: "Product analyst", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "Accountant / tax consultant", Tags: []Motivation{MotivationMoney, MotivationStatus}},
		{Name: "Systems analyst", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "Market researcher", Tags: []Motivation{MotivationProcess, MotivationMoney}},
	},
	SegmentBusiness: {
		{Name: "Entrepreneur / startup founder", Tags: []Motivation{MotivationMoney, MotivationStatus, MotivationFreedom}},
		{Name: "Trader / investor", Tags: []Motivation{MotivationMoney, MotivationFreedom}},
		{Name: "Sales manager", Tags: []Motivation{MotivationMoney, MotivationRecognition}},
		{Name: "Marketer", Tags: []Motivation{MotivationMoney, MotivationRecognition}},
		{Name: "Franchisee", Tags: []Motivation{MotivationMoney, MotivationStatus}},
		{Name: "Real estate agent", Tags: []Motivation{MotivationMoney, MotivationFreedom}},
		{Name: "Affiliate marketer", Tags: []Motivation{MotivationMoney, MotivationFreedom}},
		{Name: "E-commerce entrepreneur", Tags: []Motivation{MotivationMoney, MotivationFreedom}},
		{Name: "Business consultant", Tags: []Motivation{MotivationMoney, MotivationStatus}},
		{Name: "Procurement specialist", Tags: []Motivation{MotivationMoney, MotivationProcess}},
	},
	SegmentEducation: {
		{Name: "Online teacher / course author", Tags: []Motivation{MotivationMeaning, MotivationFreedom, MotivationMoney}},
		{Name: "Business trainer", Tags: []Motivation{MotivationMeaning, MotivationRecognition}},
		{Name: "Tutor", Tags: []Motivation{MotivationMeaning, MotivationFreedom}},
		{Name: "Instructional designer", Tags: []Motivation{MotivationProcess, MotivationMeaning}},
		{Name: "Early childhood educator", Tags: []Motivation{MotivationMeaning}},
		{Name: "Online course curator", Tags: []Motivation{MotivationMeaning, MotivationFreedom}},
		{Name: "Mentor", Tags: []Motivation{MotivationMeaning, MotivationStatus}},
		{Name: "Author of learning materials", Tags: []Motivation{MotivationProcess, MotivationFreedom}},
		{Name: "Lecturer / public speaker", Tags: []Motivation{MotivationRecognition, MotivationMeaning}},
		{Name: "Corporate trainer", Tags: []Motivation{MotivationMoney, MotivationStatus}},
	},
	SegmentCommunication: {
		{Name: "Event host", Tags: []Motivation{MotivationRecognition, MotivationProcess}},
		{Name: "PR specialist", Tags: []Motivation{MotivationRecognition, MotivationStatus}},
		{Name: "Journalist / editor", Tags: []Motivation{MotivationRecognition, MotivationMeaning}},
		{Name: "Public speaker", Tags: []Motivation{MotivationRecognition, MotivationStatus}},
		{Name: "Community manager", Tags: []Motivation{MotivationMeaning, MotivationRecognition}},
		{Name: "Podcaster", Tags: []Motivation{MotivationRecognition, MotivationFreedom}},
		{Name: "Negotiator", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "Account manager", Tags: []Motivation{MotivationMoney, MotivationRecognition}},
		{Name: "Advertising manager", Tags: []Motivation{MotivationMoney, MotivationStatus}},
		{Name: "Networking organizer", Tags: []Motivation{MotivationRecognition, MotivationMeaning}},
	},
	SegmentManagement: {
		{Name: "Project manager", Tags: []Motivation{MotivationStatus, MotivationProcess}},
		{Name: "Product manager", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "Chief operating officer", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "HR director", Tags: []Motivation{MotivationStatus, MotivationMeaning}},
		{Name: "Event manager", Tags: []Motivation{MotivationProcess, MotivationRecognition}},
		{Name: "Scrum master", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "Head of department", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "Operations manager", Tags: []Motivation{MotivationStatus, MotivationProcess}},
		{Name: "HR business partner", Tags: []Motivation{MotivationStatus, MotivationMeaning}},
		{Name: "Director of development", Tags: []Motivation{MotivationStatus, MotivationMoney}},
	},
	SegmentPractical: {
		{Name: "Craftsperson", Tags: []Motivation{MotivationProcess, MotivationFreedom}},
		{Name: "Chef", Tags: []Motivation{MotivationProcess, MotivationRecognition}},
		{Name: "Pastry chef", Tags: []Motivation{MotivationProcess, MotivationFreedom}},
		{Name: "Hairdresser / stylist", Tags: []Motivation{MotivationRecognition, MotivationFreedom}},
		{Name: "Nail / beauty artist", Tags: []Motivation{MotivationRecognition, MotivationFreedom}},
		{Name: "Tattoo artist", Tags: []Motivation{MotivationRecognition, MotivationProcess}},
		{Name: "Sports instructor", Tags: []Motivation{MotivationMeaning, MotivationRecognition}},
		{Name: "Car mechanic / repair specialist", Tags: []Motivation{MotivationProcess, MotivationMoney}},
		{Name: "Farmer / agro-entrepreneur", Tags: []Motivation{MotivationFreedom, MotivationMoney}},
		{Name: "Construction foreman", Tags: []Motivation{MotivationMoney, MotivationProcess}},
	},
	SegmentResearch: {
		{Name: "UX researcher", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "Marketing researcher", Tags: []Motivation{MotivationProcess, MotivationMoney}},
		{Name: "Technical writer", Tags: []Motivation{MotivationProcess, MotivationFreedom}},
		{Name: "Cybersecurity specialist", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "Biotechnologist", Tags: []Motivation{MotivationMeaning, MotivationStatus}},
		{Name: "Sociologist / anthropologist", Tags: []Motivation{MotivationMeaning, MotivationProcess}},
		{Name: "AI/ML specialist", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "QA engineer", Tags: []Motivation{MotivationProcess, MotivationStatus}},
		{Name: "R&D manager", Tags: []Motivation{MotivationStatus, MotivationProcess}},
		{Name: "Patent attorney", Tags: []Motivation{MotivationStatus, MotivationMoney}},
	},
	SegmentFreedom: {
		{Name: "Digital nomad", Tags: []Motivation{MotivationFreedom, MotivationProcess}},
		{Name: "Freelancer", Tags: []Motivation{MotivationFreedom, MotivationMoney}},
		{Name: "Online entrepreneur", Tags: []Motivation{MotivationFreedom, MotivationMoney}},
		{Name: "Course creator", Tags: []Motivation{MotivationFreedom, MotivationMoney}},
		{Name: "Dropshipper / e-commerce", Tags: []Motivation{MotivationFreedom, MotivationMoney}},
		{Name: "Remote consultant", Tags: []Motivation{MotivationFreedom, MotivationStatus}},
		{Name: "Author of passive products", Tags: []Motivation{MotivationFreedom, MotivationMoney}},
		{Name: "Online coach", Tags: []Motivation{MotivationFreedom, MotivationMeaning}},
		{Name: "Automation specialist", Tags: []Motivation{MotivationFreedom, MotivationProcess}},
		{Name: "Content entrepreneur", Tags: []Motivation{MotivationFreedom, MotivationRecognition}},
	},
}

// DirectionIdeas lists five starter occupations per income direction.
var DirectionIdeas = map[Direction][]Profession{
	DirectionBody: {
		{Name: "Massage therapist", Tags: []Motivation{MotivationMeaning, MotivationFreedom}},
		{Name: "Personal fitness trainer", Tags: []Motivation{MotivationMeaning, MotivationRecognition}},
		{Name: "Cosmetologist", Tags: []Motivation{MotivationRecognition, MotivationMoney}},
		{Name: "Manual therapist", Tags: []Motivation{MotivationMeaning, MotivationProcess}},
		{Name: "Stretching instructor", Tags: []Motivation{MotivationProcess, MotivationMeaning}},
	},
	DirectionSales: {
		{Name: "Sales manager", Tags: []Motivation{MotivationMoney, MotivationRecognition}},
		{Name: "Real estate agent", Tags: []Motivation{MotivationMoney, MotivationFreedom}},
		{Name: "Telesales specialist", Tags: []Motivation{MotivationMoney, MotivationProcess}},
		{Name: "Retail team lead", Tags: []Motivation{MotivationStatus, MotivationMoney}},
		{Name: "Partnership manager", Tags: []Motivation{MotivationStatus, MotivationRecognition}},
	},
	DirectionOnline: {
		{Name: "Virtual assistant", Tags: []Motivation{MotivationFreedom, MotivationProcess}},
		{Name: "Targeted ads specialist", Tags: []Motivation{MotivationMoney, MotivationFreedom}},
		{Name: "Online support agent", Tags: []Motivation{MotivationProcess, MotivationMeaning}},
		{Name: "Marketplace manager", Tags: []Motivation{MotivationMoney, MotivationProcess}},
		{Name: "Community moderator", Tags: []Motivation{MotivationMeaning, MotivationFreedom}},
	},
	DirectionCreative: {
		{Name: "Illustrator on commission", Tags: []Motivation{MotivationProcess, MotivationRecognition}},
		{Name: "Wedding photographer", Tags: []Motivation{MotivationRecognition, MotivationMoney}},
		{Name: "Handmade goods seller", Tags: []Motivation{MotivationProcess, MotivationFreedom}},
		{Name: "Video editor", Tags: []Motivation{MotivationProcess, MotivationMoney}},
		{Name: "Interior decorator", Tags: []Motivation{MotivationRecognition, MotivationProcess}},
	},
	DirectionSoft: {
		{Name: "Weekend workshop host", Tags: []Motivation{MotivationMeaning, MotivationProcess}},
		{Name: "Pet sitter", Tags: []Motivation{MotivationMeaning, MotivationFreedom}},
		{Name: "Proofreader", Tags: []Motivation{MotivationProcess, MotivationFreedom}},
		{Name: "Survey researcher", Tags: []Motivation{MotivationProcess, MotivationMoney}},
		{Name: "Rental manager", Tags: []Motivation{MotivationMoney, MotivationFreedom}},
	},
}

// FindProfession resolves a profession by display name, checking the
// given segment's list first. Unknown names fall back to the segment's
// first entry so a typo in a client never breaks scoring.
func FindProfession(name string, top Segment) Profession {
	for _, p := range SegmentProfessions[top] {
		if p.Name == name {
			return p
		}
	}
	for _, s := range Segments {
		for _, p := range SegmentProfessions[s] {
			if p.Name == name {
				return p
			}
		}
	}
	if list := SegmentProfessions[top]; len(list) > 0 {
		return list[0]
	}
	return Profession{Name: name}
}
