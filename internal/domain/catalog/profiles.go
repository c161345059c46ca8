package catalog

// FallbackProfileName is used when the motivation/segment pair has no
// matrix entry.
const FallbackProfileName = "Unique profile"

// ProfileMatrix maps motivation x segment to a named archetype. Column
// order follows Segments.
var ProfileMatrix = map[Motivation]map[Segment]string{
	MotivationMeaning: {
		SegmentCreative:      "Inspiring creator",
		SegmentHelpPeople:    "Guide of souls",
		SegmentAnalytics:     "Seeker of truth",
		SegmentBusiness:      "Mission-driven entrepreneur",
		SegmentEducation:     "Enlightener",
		SegmentCommunication: "Voice of change",
		SegmentManagement:    "Servant leader",
		SegmentPractical:     "Master with a mission",
		SegmentResearch:      "Discoverer of meaning",
		SegmentFreedom:       "Free philosopher",
	},
	MotivationMoney: {
		SegmentCreative:      "Commercial artist",
		SegmentHelpPeople:    "Premium helper",
		SegmentAnalytics:     "Profit analyst",
		SegmentBusiness:      "Money magnet",
		SegmentEducation:     "Expert with a price tag",
		SegmentCommunication: "Deal maker",
		SegmentManagement:    "Results director",
		SegmentPractical:     "Master of monetization",
		SegmentResearch:      "Innovation investor",
		SegmentFreedom:       "Independent earner",
	},
	MotivationRecognition: {
		SegmentCreative:      "Star of the stage",
		SegmentHelpPeople:    "Beloved mentor",
		SegmentAnalytics:     "Authoritative expert",
		SegmentBusiness:      "Public entrepreneur",
		SegmentEducation:     "Charismatic teacher",
		SegmentCommunication: "Media personality",
		SegmentManagement:    "Visible leader",
		SegmentPractical:     "Renowned craftsperson",
		SegmentResearch:      "Cited researcher",
		SegmentFreedom:       "Famous free spirit",
	},
	MotivationFreedom: {
		SegmentCreative:      "Free artist",
		SegmentHelpPeople:    "Independent helper",
		SegmentAnalytics:     "Remote analyst",
		SegmentBusiness:      "Owner of own game",
		SegmentEducation:     "Nomad educator",
		SegmentCommunication: "Voice without borders",
		SegmentManagement:    "Flexible organizer",
		SegmentPractical:     "Master of own schedule",
		SegmentResearch:      "Independent researcher",
		SegmentFreedom:       "Absolute freelancer",
	},
	MotivationProcess: {
		SegmentCreative:      "Craft enthusiast",
		SegmentHelpPeople:    "Attentive practitioner",
		SegmentAnalytics:     "Puzzle solver",
		SegmentBusiness:      "Systems builder",
		SegmentEducation:     "Patient explainer",
		SegmentCommunication: "Conversation artist",
		SegmentManagement:    "Process architect",
		SegmentPractical:     "Flow craftsperson",
		SegmentResearch:      "Curious experimenter",
		SegmentFreedom:       "Explorer of paths",
	},
	MotivationStatus: {
		SegmentCreative:      "Elite creator",
		SegmentHelpPeople:    "Status expert",
		SegmentAnalytics:     "Career analyst",
		SegmentBusiness:      "Empire builder",
		SegmentEducation:     "Titled educator",
		SegmentCommunication: "High-profile communicator",
		SegmentManagement:    "Top manager",
		SegmentPractical:     "Master of the guild",
		SegmentResearch:      "Distinguished scientist",
		SegmentFreedom:       "Premium consultant",
	},
}

// ProfileName resolves the archetype for a motivation/segment pair.
func ProfileName(m Motivation, s Segment) string {
	if row, ok := ProfileMatrix[m]; ok {
		if name, ok := row[s]; ok {
			return name
		}
	}
	return FallbackProfileName
}

// SegmentEnergy describes where the segment draws energy from.
var SegmentEnergy = map[Segment]string{
	SegmentCreative:      "You are energized by creating something new: ideas, images, forms. Routine without room for self-expression drains you fast.",
	SegmentHelpPeople:    "You are energized by direct contact with people and visible positive change in their lives. Work without human impact feels empty.",
	SegmentAnalytics:     "You are energized by untangling complexity: finding patterns, building models, getting to the precise answer. Vague goals and hand-waving drain you.",
	SegmentBusiness:      "You are energized by the game itself: deals, growth, risk and reward. Slow, capped environments with no upside drain you.",
	SegmentEducation:     "You are energized by the moment someone understands something thanks to you. Teaching into the void, without feedback, drains you.",
	SegmentCommunication: "You are energized by live exchange: conversations, audiences, negotiations. Long stretches of silent solo work drain you.",
	SegmentManagement:    "You are energized by bringing order to chaos and moving a team toward a result. Responsibility without authority drains you.",
	SegmentPractical:     "You are energized by tangible results you can touch, taste or use. Abstract work with nothing to show drains you.",
	SegmentResearch:      "You are energized by questions nobody has answered yet. Shallow tasks with known outcomes drain you.",
	SegmentFreedom:       "You are energized by autonomy: your own pace, your own rules, your own route. Rigid schedules and micromanagement drain you.",
}

// SegmentBurnoutRisk names the typical burnout trap of the segment.
var SegmentBurnoutRisk = map[Segment]string{
	SegmentCreative:      "Burnout trap: endless revisions for clients who want something 'safe'. Protect space for projects that are yours alone.",
	SegmentHelpPeople:    "Burnout trap: carrying other people's pain home. Boundaries and recovery rituals are part of the profession, not a luxury.",
	SegmentAnalytics:     "Burnout trap: perfectionism over data that will never be clean. Learn to ship the 'good enough' answer.",
	SegmentBusiness:      "Burnout trap: treating every setback as a personal defeat. Separate the experiment's result from your worth.",
	SegmentEducation:     "Burnout trap: giving the same material until it loses meaning for you. Keep learning something yourself.",
	SegmentCommunication: "Burnout trap: being 'on' for everyone until nothing is left for you. Schedule silence the way you schedule meetings.",
	SegmentManagement:    "Burnout trap: absorbing every problem of the team. Delegation is a skill, not a weakness.",
	SegmentPractical:     "Burnout trap: undercharging because the work feels easy to you. Price the result, not the effort.",
	SegmentResearch:      "Burnout trap: disappearing into the rabbit hole with no checkpoints. Fix deadlines for intermediate outputs.",
	SegmentFreedom:       "Burnout trap: freedom turning into drift. Without your own structure, autonomy eats itself.",
}

// SegmentFormat suggests the work format that fits the segment.
var SegmentFormat = map[Segment]string{
	SegmentCreative:      "Best format: project work with creative control. Studio, freelance or a personal brand beat a rigid staff role.",
	SegmentHelpPeople:    "Best format: private practice or a small team where you see the people you help, not tickets in a queue.",
	SegmentAnalytics:     "Best format: deep-work blocks with minimal meetings. Remote or hybrid roles with clear deliverables suit you.",
	SegmentBusiness:      "Best format: your own venture or a role with a share of the result. Fixed salary ceilings will frustrate you.",
	SegmentEducation:     "Best format: a mix of live teaching and reusable products such as courses or guides. Pure lecture treadmills burn you out.",
	SegmentCommunication: "Best format: client-facing or audience-facing roles. Let others handle the paperwork.",
	SegmentManagement:    "Best format: a team and a mandate. Individual-contributor roles undersell you.",
	SegmentPractical:     "Best format: your own workshop, studio or practice. The closer to the end customer, the better the margin and the satisfaction.",
	SegmentResearch:      "Best format: long-cycle projects with protected focus time. Avoid roles that interrupt you hourly.",
	SegmentFreedom:       "Best format: freelance, consulting or a product of your own. Choose clients, not bosses.",
}

// Plan30 is the four-step 30-day starter plan per segment.
var Plan30 = map[Segment][]string{
	SegmentCreative: {
		"Week 1: assemble a portfolio of 5-7 works and register on a freelance marketplace",
		"Week 2: publish the first works and message 10 potential clients",
		"Week 3: take the first order, even cheap, for the sake of a review",
		"Week 4: analyze demand and raise your price by 30%",
	},
	SegmentHelpPeople: {
		"Week 1: pick a niche: coaching, psychology, nutrition or fitness",
		"Week 2: run 3 free sessions for acquaintances and collect feedback",
		"Week 3: set an introductory price and book 2 paid sessions",
		"Week 4: gather testimonials and announce your practice publicly",
	},
	SegmentAnalytics: {
		"Week 1: pick a toolset and finish one crash course on it",
		"Week 2: build 2 sample analyses on open data for the portfolio",
		"Week 3: respond to 10 freelance analytics requests",
		"Week 4: deliver the first order and ask for a recommendation",
	},
	SegmentBusiness: {
		"Week 1: pick a product and study 5 competitors",
		"Week 2: make 20 sales attempts via your existing network",
		"Week 3: close the first deals and record what worked",
		"Week 4: double down on the channel with the best conversion",
	},
	SegmentEducation: {
		"Week 1: choose your teaching topic and outline a mini-course",
		"Week 2: run 2 free lessons and collect feedback",
		"Week 3: announce a paid group or individual slots",
		"Week 4: hold the first paid lessons and refine the program",
	},
	SegmentCommunication: {
		"Week 1: choose a format: podcast, blog, hosting or community",
		"Week 2: publish or host 3 times and note the response",
		"Week 3: reach out to 10 potential clients or partners",
		"Week 4: land the first paid engagement",
	},
	SegmentManagement: {
		"Week 1: document a project you have already organized as a case",
		"Week 2: offer coordination help to 3 small teams or projects",
		"Week 3: take one project under management, even small",
		"Week 4: deliver a visible result and ask for a testimonial",
	},
	SegmentPractical: {
		"Week 1: pick your craft and prepare a small starter batch or service",
		"Week 2: sell or deliver to the first 3 customers among acquaintances",
		"Week 3: list your work on a marketplace or local board",
		"Week 4: review margins and raise the price where demand held",
	},
	SegmentResearch: {
		"Week 1: pick a research-flavored service: testing, analysis, writing",
		"Week 2: produce 2 sample deliverables for the portfolio",
		"Week 3: pitch 10 potential clients with the samples",
		"Week 4: complete the first order and systematize the process",
	},
	SegmentFreedom: {
		"Week 1: choose one remote-friendly skill and polish it",
		"Week 2: set up profiles on 2 platforms and send 10 proposals",
		"Week 3: deliver the first remote order",
		"Week 4: build a weekly routine that fits your freedom",
	},
}

// MonetizationPath is the three-stage money ladder shown in the career
// report for one segment.
type MonetizationPath struct {
	Start string
	Mid   string
	Scale string
}

// Monetization maps each segment to its start/grow/scale options.
var Monetization = map[Segment]MonetizationPath{
	SegmentCreative: {
		Start: "freelance orders on marketplaces, selling digital goods (prints, templates), running social accounts for a small fee",
		Mid:   "retainer clients on subscription, selling courses or presets, monetizing an audience through ads and donations",
		Scale: "an agency or production studio, your own brand, licensing your content",
	},
	SegmentHelpPeople: {
		Start: "one-on-one consultations at an hourly rate, group sessions in social media, small courses",
		Mid:   "30-90 day coaching programs, your own online school, partnerships with clinics or fitness studios",
		Scale: "a large online school, franchising your methodology, books and public talks",
	},
	SegmentAnalytics: {
		Start: "freelance audits of sites, ads or finances, one-off analytical reports, consultations",
		Mid:   "outsourced analytics for 3-5 steady clients, an analyst position in a company",
		Scale: "an analytics agency, a SaaS product, your own analytical methodology",
	},
	SegmentBusiness: {
		Start: "arbitrage, reselling, dropshipping and affiliate programs, without quitting your job",
		Mid:   "your own business with a team of 3-7, an online product with an automated funnel",
		Scale: "scaling through partners, a franchise, venture investment",
	},
	SegmentEducation: {
		Start: "tutoring, workshops, short intensives on your topic",
		Mid:   "an authored online course, a mentorship program, corporate trainings",
		Scale: "an online university, an education platform, publishing study materials",
	},
	SegmentCommunication: {
		Start: "hosting events for a small fee, PR consultations, running social accounts",
		Mid:   "a communications agency, personal branding, regular speaking engagements",
		Scale: "a media company, books, your own show or podcast with sponsors",
	},
	SegmentManagement: {
		Start: "outsourced project management, event organization, process consulting",
		Mid:   "a PM or COO role in a company, your own operations agency",
		Scale: "managing partner, a holding, a consulting firm",
	},
	SegmentPractical: {
		Start: "private orders and services near home, selling handmade goods",
		Mid:   "your own workshop or studio, steady clients on subscription",
		Scale: "a brand, a franchise, teaching the craft",
	},
	SegmentResearch: {
		Start: "freelance research for businesses, writing articles and materials on your topic",
		Mid:   "an R&D position or research company role, consulting",
		Scale: "your own research center, publications, grants",
	},
	SegmentFreedom: {
		Start: "remote employment, freelancing on international marketplaces",
		Mid:   "your own online product or service, working with foreign clients",
		Scale: "passive income from courses, SaaS or investments, full financial independence",
	},
}
