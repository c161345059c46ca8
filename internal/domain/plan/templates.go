package plan

import (
	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/indices"
)

// Checkpoints are the per-direction milestones shown after the
// schedule. Copied into every FinalPlan, never aliased.
var Checkpoints = map[catalog.Direction][]string{
	catalog.DirectionBody: {
		"End of month 1: certificate or practice course started, 3 trial sessions done",
		"End of month 2: 5 paying clients, first testimonials collected",
		"End of month 3: steady weekly schedule, price list revised upward",
	},
	catalog.DirectionSales: {
		"End of month 1: niche picked, script drafted, 20 practice calls made",
		"End of month 2: first commissions earned, conversion tracked weekly",
		"End of month 3: stable pipeline, income above the starting baseline",
	},
	catalog.DirectionOnline: {
		"End of month 1: service packaged, profile live on 2 platforms",
		"End of month 2: 3 recurring clients, portfolio case published",
		"End of month 3: waiting list or raised rate, one process automated",
	},
	catalog.DirectionCreative: {
		"End of month 1: portfolio of 5 works assembled and published",
		"End of month 2: first 3 commissions delivered, pricing tested",
		"End of month 3: signature style defined, inbound requests arriving",
	},
	catalog.DirectionSoft: {
		"End of month 1: one small offer tested on friendly audience",
		"End of month 2: first paid orders, comfortable weekly rhythm found",
		"End of month 3: decision made about scaling up or keeping it light",
	},
}

// Templates is the static 3-month schedule per direction and strategy
// tier. Reference data only: Build deep-copies before transforming.
var Templates = map[catalog.Direction]map[indices.Strategy]Template{
	catalog.DirectionBody: {
		indices.StrategyIntensive: {
			{
				Title: "Skills and first practice",
				Weeks: [4]Week{
					{Focus: "Choose your niche and standard", Tasks: []string{
						"Pick one body-practice niche and write down why",
						"Compare 3 certification courses and enroll in one",
						"Set up a dedicated practice space at home",
						"Announce your new direction to 10 people",
					}},
					{Focus: "Daily technique practice", Tasks: []string{
						"Practice core techniques 5 days this week",
						"Record one session on video and review it",
						"Study anatomy basics for 3 evenings",
						"Find a practice partner for feedback",
					}},
					{Focus: "Trial sessions", Tasks: []string{
						"Run 3 free trial sessions for acquaintances",
						"Collect written feedback after each session",
						"Fix the two weakest points from the feedback",
						"Draft your service description",
					}},
					{Focus: "First paid offer", Tasks: []string{
						"Set an introductory price and publish the offer",
						"Book at least 2 paid sessions",
						"Prepare a simple booking routine",
						"Review the month and adjust the niche if needed",
					}},
				},
			},
			{
				Title: "Clients and reputation",
				Weeks: [4]Week{
					{Focus: "Visibility where clients are", Tasks: []string{
						"Publish before/after stories from trial sessions",
						"List your service on 2 local platforms",
						"Ask every client for a referral",
						"Partner with one adjacent specialist",
					}},
					{Focus: "Quality of the session", Tasks: []string{
						"Design a repeatable session structure",
						"Add one advanced technique to your toolkit",
						"Collect 3 written testimonials",
						"Track client results in a simple log",
					}},
					{Focus: "Retention", Tasks: []string{
						"Offer a 5-session package to active clients",
						"Set up reminders for repeat bookings",
						"Call back every client from month 1",
						"Review pricing against local market",
					}},
					{Focus: "Steady schedule", Tasks: []string{
						"Fill a fixed weekly schedule at least half",
						"Close the month with an income tally",
						"Write down what brought each client",
						"Plan month 3 capacity",
					}},
				},
			},
			{
				Title: "Full schedule and raised rates",
				Weeks: [4]Week{
					{Focus: "Raise the bar", Tasks: []string{
						"Raise your rate for new clients",
						"Introduce a premium session format",
						"Publish a client success story",
						"Drop the least profitable activity",
					}},
					{Focus: "Systematize", Tasks: []string{
						"Template your intake and follow-up messages",
						"Block recovery time in the schedule",
						"Buy or upgrade one piece of equipment",
						"Document your session protocols",
					}},
					{Focus: "Expand reach", Tasks: []string{
						"Run one workshop or group session",
						"Cross-promote with 2 local businesses",
						"Ask top clients for referrals again",
						"Test one new client channel",
					}},
					{Focus: "Consolidate", Tasks: []string{
						"Compare month 3 income to month 1",
						"Decide: solo practice, studio, or team",
						"Write your 6-month goal",
						"Celebrate the first quarter properly",
					}},
				},
			},
		},
		indices.StrategyBalanced: {
			{
				Title: "Foundation without rush",
				Weeks: [4]Week{
					{Focus: "Orient yourself", Tasks: []string{
						"Pick a body-practice niche that fits your energy",
						"Enroll in one course or find a mentor",
						"Tell 5 people about your plan",
					}},
					{Focus: "Learn the craft", Tasks: []string{
						"Practice techniques 3 days this week",
						"Study one anatomy topic",
						"Watch 2 sessions by an experienced practitioner",
					}},
					{Focus: "First hands-on", Tasks: []string{
						"Run 2 free trial sessions",
						"Collect feedback in writing",
						"Adjust your approach from the feedback",
					}},
					{Focus: "Package the offer", Tasks: []string{
						"Write a one-paragraph service description",
						"Set an introductory price",
						"Book 1 paid session",
					}},
				},
			},
			{
				Title: "First clients",
				Weeks: [4]Week{
					{Focus: "Show your work", Tasks: []string{
						"Publish your offer on 1 local platform",
						"Share one client story",
						"Ask 2 clients for referrals",
					}},
					{Focus: "Improve the session", Tasks: []string{
						"Refine your session structure",
						"Add one new technique",
						"Collect 2 testimonials",
					}},
					{Focus: "Build rhythm", Tasks: []string{
						"Serve at least 2 clients this week",
						"Set fixed working hours",
						"Log income and expenses",
					}},
					{Focus: "Review and adjust", Tasks: []string{
						"Review what worked this month",
						"Adjust price or format once",
						"Plan month 3 workload",
					}},
				},
			},
			{
				Title: "Steady practice",
				Weeks: [4]Week{
					{Focus: "Deepen skills", Tasks: []string{
						"Take one advanced module or masterclass",
						"Practice the new material on 2 clients",
						"Write down your signature approach",
					}},
					{Focus: "Strengthen retention", Tasks: []string{
						"Offer a session package to regulars",
						"Reconnect with every past client",
						"Collect one detailed success story",
					}},
					{Focus: "Grow carefully", Tasks: []string{
						"Test one new client channel",
						"Raise the rate for new clients slightly",
						"Partner with one adjacent specialist",
					}},
					{Focus: "Close the quarter", Tasks: []string{
						"Tally the quarter's income",
						"Decide your next 3-month focus",
						"Write your 6-month goal",
					}},
				},
			},
		},
		indices.StrategySoft: {
			{
				Title: "Gentle start",
				Weeks: [4]Week{
					{Focus: "Explore without pressure", Tasks: []string{
						"Read about 3 body-practice niches",
						"Try one practice on yourself daily",
					}},
					{Focus: "Small learning step", Tasks: []string{
						"Watch one beginner course module",
						"Practice 20 minutes, 3 times this week",
					}},
					{Focus: "First safe try", Tasks: []string{
						"Offer one free session to a close friend",
						"Write down how it felt",
					}},
					{Focus: "Reflect", Tasks: []string{
						"Decide whether this direction feels right",
						"Note your energy level each day",
					}},
				},
			},
			{
				Title: "Tiny steps forward",
				Weeks: [4]Week{
					{Focus: "Repeat and improve", Tasks: []string{
						"Run one more free session",
						"Pick one thing to do better",
					}},
					{Focus: "Light structure", Tasks: []string{
						"Choose one fixed practice day per week",
						"Prepare a simple session checklist",
					}},
					{Focus: "Dip into paid work", Tasks: []string{
						"Name a small price for the next session",
						"Ask one person to book it",
					}},
					{Focus: "Look back kindly", Tasks: []string{
						"List what you learned this month",
						"Rest one full weekend",
					}},
				},
			},
			{
				Title: "Choose your pace",
				Weeks: [4]Week{
					{Focus: "Stabilize the habit", Tasks: []string{
						"Keep one session per week",
						"Keep the daily self-practice going",
					}},
					{Focus: "Small visibility", Tasks: []string{
						"Tell your circle you take bookings",
						"Share one short story about your practice",
					}},
					{Focus: "Optional growth", Tasks: []string{
						"Decide if you want a second weekly slot",
						"Price the next month of sessions",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Write what changed in 3 months",
						"Choose: continue soft, or step up",
					}},
				},
			},
		},
	},
	catalog.DirectionSales: {
		indices.StrategyIntensive: {
			{
				Title: "Pipeline from day one",
				Weeks: [4]Week{
					{Focus: "Pick the offer that sells", Tasks: []string{
						"Choose a product or service you believe in",
						"Write a one-sentence value pitch",
						"List 50 potential prospects",
						"Draft your first outreach script",
						"Set a weekly call quota",
						"Prepare objection answers for the top 5 objections",
					}},
					{Focus: "Volume practice", Tasks: []string{
						"Make 20 outreach attempts this week",
						"Record and review 2 of your calls",
						"Refine the script after every 5 calls",
						"Track every contact in a simple CRM sheet",
					}},
					{Focus: "First closes", Tasks: []string{
						"Push 5 warm prospects to a decision",
						"Close at least 1 deal",
						"Ask every 'no' for the real reason",
						"Tighten your follow-up cadence",
					}},
					{Focus: "Review the funnel", Tasks: []string{
						"Compute your week-by-week conversion",
						"Double down on the best-performing channel",
						"Drop the weakest script variant",
						"Set month 2 revenue target",
					}},
				},
			},
			{
				Title: "Conversion and commissions",
				Weeks: [4]Week{
					{Focus: "Sharpen targeting", Tasks: []string{
						"Profile your 3 best prospects so far",
						"Rebuild the prospect list around that profile",
						"Test a second outreach channel",
						"Shadow or study one strong closer",
					}},
					{Focus: "Negotiate better", Tasks: []string{
						"Practice price anchoring in 5 conversations",
						"Stop discounting below your floor",
						"Write down every objection you hear",
						"Close 2 deals this week",
					}},
					{Focus: "Systematic follow-up", Tasks: []string{
						"Revive 10 stalled conversations",
						"Set automated reminders for follow-ups",
						"Ask 3 customers for referrals",
						"Log commissions earned to date",
					}},
					{Focus: "Month tally", Tasks: []string{
						"Compare conversion month 2 vs month 1",
						"Compute earnings per hour spent",
						"Pick one skill gap to fix in month 3",
						"Plan next month's quota",
					}},
				},
			},
			{
				Title: "Scale the pipeline",
				Weeks: [4]Week{
					{Focus: "Bigger deals", Tasks: []string{
						"Target 5 higher-value prospects",
						"Prepare a case study of a happy customer",
						"Negotiate one multi-unit or repeat deal",
						"Raise your minimum deal size",
					}},
					{Focus: "Leverage", Tasks: []string{
						"Automate prospect research",
						"Batch your outreach into fixed blocks",
						"Build a referral ask into every close",
						"Test one partnership channel",
					}},
					{Focus: "Consistency", Tasks: []string{
						"Hit the weekly quota every day on schedule",
						"Keep the CRM sheet fully current",
						"Review all lost deals for one pattern",
						"Close at least 3 deals",
					}},
					{Focus: "Quarter close", Tasks: []string{
						"Tally quarter commissions vs baseline",
						"Decide: employed sales role or own book",
						"Write the next quarter's revenue goal",
						"Take two full recovery days",
					}},
				},
			},
		},
		indices.StrategyBalanced: {
			{
				Title: "Learn by selling",
				Weeks: [4]Week{
					{Focus: "Choose and prepare", Tasks: []string{
						"Pick one product or service to sell",
						"Write a short value pitch",
						"List 20 potential prospects",
					}},
					{Focus: "First conversations", Tasks: []string{
						"Hold 8 sales conversations",
						"Note the objections you hear",
						"Improve the pitch once",
					}},
					{Focus: "Close the first deal", Tasks: []string{
						"Follow up with every warm prospect",
						"Close at least 1 deal",
						"Ask what convinced the buyer",
					}},
					{Focus: "Light review", Tasks: []string{
						"Count conversations vs closes",
						"Keep the channel that worked",
						"Set a modest month 2 target",
					}},
				},
			},
			{
				Title: "Build the habit",
				Weeks: [4]Week{
					{Focus: "Steady outreach", Tasks: []string{
						"Make 10 outreach attempts",
						"Keep contacts in one sheet",
						"Practice one objection answer",
					}},
					{Focus: "Better conversations", Tasks: []string{
						"Ask more questions before pitching",
						"Close 1 deal",
						"Request 1 referral",
					}},
					{Focus: "Follow-up discipline", Tasks: []string{
						"Revive 5 stalled conversations",
						"Set reminders for follow-ups",
						"Log your earnings so far",
					}},
					{Focus: "Adjust", Tasks: []string{
						"Review what stalls your deals",
						"Fix one step of your funnel",
						"Plan month 3 quota",
					}},
				},
			},
			{
				Title: "Make it pay",
				Weeks: [4]Week{
					{Focus: "Raise quality", Tasks: []string{
						"Write a one-page case study",
						"Target slightly bigger prospects",
						"Hold your price in 3 negotiations",
					}},
					{Focus: "Expand gently", Tasks: []string{
						"Test one new outreach channel",
						"Ask every buyer for a referral",
						"Close 2 deals this month",
					}},
					{Focus: "Consolidate", Tasks: []string{
						"Keep the weekly outreach rhythm",
						"Clean up the contact sheet",
						"Review all lost deals once",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Tally quarter results",
						"Decide your next step in sales",
						"Write a 6-month goal",
					}},
				},
			},
		},
		indices.StrategySoft: {
			{
				Title: "Warm-up",
				Weeks: [4]Week{
					{Focus: "Observe and learn", Tasks: []string{
						"Watch 3 recorded sales conversations",
						"Write down 5 phrases you liked",
					}},
					{Focus: "Practice safely", Tasks: []string{
						"Pitch to 2 friendly listeners",
						"Note what felt uncomfortable",
					}},
					{Focus: "One real try", Tasks: []string{
						"Hold 2 real sales conversations",
						"Celebrate regardless of outcome",
					}},
					{Focus: "Reflect", Tasks: []string{
						"Decide if selling can feel natural for you",
						"Pick what to practice next",
					}},
				},
			},
			{
				Title: "Small wins",
				Weeks: [4]Week{
					{Focus: "Short sessions", Tasks: []string{
						"Hold 3 conversations this week",
						"Keep notes after each",
					}},
					{Focus: "Close something tiny", Tasks: []string{
						"Aim for one small yes",
						"Ask what made the person agree",
					}},
					{Focus: "Gentle structure", Tasks: []string{
						"Fix two short selling slots per week",
						"Prepare a three-line script",
					}},
					{Focus: "Look back", Tasks: []string{
						"List your month's small wins",
						"Rest a full weekend",
					}},
				},
			},
			{
				Title: "Your own pace",
				Weeks: [4]Week{
					{Focus: "Keep the rhythm", Tasks: []string{
						"Hold 3 conversations weekly",
						"Track yes/no outcomes",
					}},
					{Focus: "Slightly bolder", Tasks: []string{
						"Name your price without apologizing",
						"Follow up once per prospect",
					}},
					{Focus: "Optional growth", Tasks: []string{
						"Decide whether to raise weekly volume",
						"Ask one happy buyer for a referral",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Write what changed in 3 months",
						"Choose: continue soft, or step up",
					}},
				},
			},
		},
	},
	catalog.DirectionOnline: {
		indices.StrategyIntensive: {
			{
				Title: "Package and publish",
				Weeks: [4]Week{
					{Focus: "Define the service", Tasks: []string{
						"Pick one online service you can deliver now",
						"Write a clear one-paragraph offer",
						"Research rates of 10 competitors",
						"Set your introductory price",
					}},
					{Focus: "Go live", Tasks: []string{
						"Create profiles on 2 freelance platforms",
						"Publish 3 portfolio pieces or mock projects",
						"Send 10 proposals",
						"Set up a work tracking sheet",
					}},
					{Focus: "First orders", Tasks: []string{
						"Land and deliver the first order",
						"Over-deliver once deliberately",
						"Request a written review",
						"Send 10 more proposals",
					}},
					{Focus: "Tighten the loop", Tasks: []string{
						"Template your proposal text",
						"Compute win rate per platform",
						"Raise activity on the better platform",
						"Set month 2 income target",
					}},
				},
			},
			{
				Title: "Recurring clients",
				Weeks: [4]Week{
					{Focus: "Repeatable delivery", Tasks: []string{
						"Write a delivery checklist for your service",
						"Cut delivery time by batching similar work",
						"Deliver 2 orders this week",
						"Publish one case study",
					}},
					{Focus: "Turn orders into retainers", Tasks: []string{
						"Offer a monthly package to 3 past clients",
						"Land 1 recurring client",
						"Define your communication routine",
						"Keep sending 5 proposals weekly",
					}},
					{Focus: "Reputation", Tasks: []string{
						"Collect 3 reviews across platforms",
						"Update the portfolio with real results",
						"Ask for referrals from every happy client",
						"Raise your listed rate slightly",
					}},
					{Focus: "Month tally", Tasks: []string{
						"Tally month 2 income vs month 1",
						"Identify your most profitable service variant",
						"Drop the least profitable one",
						"Plan month 3 capacity",
					}},
				},
			},
			{
				Title: "Systems and scale",
				Weeks: [4]Week{
					{Focus: "Automate", Tasks: []string{
						"Automate one repetitive delivery step",
						"Template all client communication",
						"Set up invoicing that takes minutes",
						"Free up 3 hours per week",
					}},
					{Focus: "Premium positioning", Tasks: []string{
						"Raise the rate for new clients",
						"Rewrite the offer around outcomes",
						"Publish your best case study",
						"Decline one bad-fit request",
					}},
					{Focus: "Widen the funnel", Tasks: []string{
						"Test one channel beyond the platforms",
						"Reconnect with every past client",
						"Land 1 client at the new rate",
						"Keep 2 retainers running",
					}},
					{Focus: "Quarter close", Tasks: []string{
						"Compare quarter income to the baseline",
						"Decide: freelance, agency, or product",
						"Write the next quarter's plan",
						"Take two full days off",
					}},
				},
			},
		},
		indices.StrategyBalanced: {
			{
				Title: "Set up shop",
				Weeks: [4]Week{
					{Focus: "Pick the service", Tasks: []string{
						"Choose one online service to offer",
						"Write a short offer text",
						"Check competitor rates",
					}},
					{Focus: "Create presence", Tasks: []string{
						"Make a profile on 1 platform",
						"Add 2 portfolio pieces",
						"Send 5 proposals",
					}},
					{Focus: "First delivery", Tasks: []string{
						"Deliver your first order well",
						"Ask for a review",
						"Send 5 more proposals",
					}},
					{Focus: "Review", Tasks: []string{
						"Note what clients responded to",
						"Adjust the offer once",
						"Set a month 2 goal",
					}},
				},
			},
			{
				Title: "Regular work",
				Weeks: [4]Week{
					{Focus: "Delivery rhythm", Tasks: []string{
						"Deliver 1-2 orders this week",
						"Write a delivery checklist",
						"Keep proposals going out",
					}},
					{Focus: "Client care", Tasks: []string{
						"Offer a repeat package to a past client",
						"Collect 2 reviews",
						"Update the portfolio",
					}},
					{Focus: "Sharpen pricing", Tasks: []string{
						"Raise the listed rate slightly",
						"Track hours per order",
						"Drop underpriced work",
					}},
					{Focus: "Month review", Tasks: []string{
						"Tally the month's income",
						"Pick the best service variant",
						"Plan month 3",
					}},
				},
			},
			{
				Title: "Stabilize income",
				Weeks: [4]Week{
					{Focus: "Retainers", Tasks: []string{
						"Pitch a monthly package to 2 clients",
						"Land 1 recurring arrangement",
						"Define your weekly routine",
					}},
					{Focus: "Efficiency", Tasks: []string{
						"Template proposals and replies",
						"Batch similar tasks",
						"Free 2 hours per week",
					}},
					{Focus: "Light growth", Tasks: []string{
						"Test one new channel",
						"Reconnect with past clients",
						"Publish one case study",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Compare quarter income to start",
						"Write your 6-month goal",
						"Decide the next focus",
					}},
				},
			},
		},
		indices.StrategySoft: {
			{
				Title: "Look around",
				Weeks: [4]Week{
					{Focus: "Explore options", Tasks: []string{
						"Browse 3 freelance platforms",
						"List 5 services you could offer",
					}},
					{Focus: "Pick one thing", Tasks: []string{
						"Choose the easiest service to start",
						"Draft a two-line offer",
					}},
					{Focus: "Tiny test", Tasks: []string{
						"Do one free or cheap order for practice",
						"Write down how long it took",
					}},
					{Focus: "Reflect", Tasks: []string{
						"Decide if online work suits you",
						"Note your comfortable weekly hours",
					}},
				},
			},
			{
				Title: "First real orders",
				Weeks: [4]Week{
					{Focus: "Gentle publishing", Tasks: []string{
						"Create one platform profile",
						"Send 3 proposals",
					}},
					{Focus: "Deliver once", Tasks: []string{
						"Complete one paid order",
						"Ask for a short review",
					}},
					{Focus: "Keep it going", Tasks: []string{
						"Send 3 more proposals",
						"Fix one thing in your offer",
					}},
					{Focus: "Look back", Tasks: []string{
						"List the month's small wins",
						"Rest a full weekend",
					}},
				},
			},
			{
				Title: "Find your rhythm",
				Weeks: [4]Week{
					{Focus: "Stable trickle", Tasks: []string{
						"Aim for one order per week",
						"Keep a simple income note",
					}},
					{Focus: "Small improvements", Tasks: []string{
						"Add one portfolio piece",
						"Raise your price a little",
					}},
					{Focus: "Optional growth", Tasks: []string{
						"Decide whether to add a second platform",
						"Ask a happy client for a referral",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Write what changed in 3 months",
						"Choose: continue soft, or step up",
					}},
				},
			},
		},
	},
	catalog.DirectionCreative: {
		indices.StrategyIntensive: {
			{
				Title: "Portfolio sprint",
				Weeks: [4]Week{
					{Focus: "Define your lane", Tasks: []string{
						"Pick one creative niche and style",
						"Study 5 creators you admire",
						"Plan 5 portfolio pieces",
						"Set a daily creation slot",
					}},
					{Focus: "Produce", Tasks: []string{
						"Finish 2 portfolio pieces",
						"Share work-in-progress publicly",
						"Ask 3 peers for critique",
						"Iterate on the critique",
					}},
					{Focus: "Publish", Tasks: []string{
						"Finish 3 more pieces",
						"Assemble the portfolio page",
						"Publish on 2 relevant platforms",
						"Write your artist statement",
					}},
					{Focus: "Open for commissions", Tasks: []string{
						"Announce you take commissions",
						"Price 3 typical commission types",
						"Pitch 5 potential clients directly",
						"Set month 2 commission target",
					}},
				},
			},
			{
				Title: "First commissions",
				Weeks: [4]Week{
					{Focus: "Land work", Tasks: []string{
						"Deliver 1 commission end to end",
						"Pitch 10 more prospects",
						"Post finished work with process notes",
						"Collect the first testimonial",
					}},
					{Focus: "Deliver and learn", Tasks: []string{
						"Deliver 2 commissions",
						"Time each stage of your process",
						"Refine your brief template",
						"Raise visibility with one collab",
					}},
					{Focus: "Pricing confidence", Tasks: []string{
						"Compare your rates to 5 peers",
						"Raise your base rate",
						"Decline one underpriced request",
						"Publish a before/after case",
					}},
					{Focus: "Month tally", Tasks: []string{
						"Tally commissions and income",
						"Identify your best-selling format",
						"Plan month 3 around it",
						"Refresh the portfolio",
					}},
				},
			},
			{
				Title: "Signature and demand",
				Weeks: [4]Week{
					{Focus: "Sharpen the signature", Tasks: []string{
						"Define what makes your work recognizable",
						"Produce 2 signature pieces",
						"Update your positioning text",
						"Retire weakest portfolio items",
					}},
					{Focus: "Inbound flow", Tasks: []string{
						"Post consistently 4 times this week",
						"Engage with 10 potential clients",
						"Set up a simple commission form",
						"Deliver ongoing commissions on time",
					}},
					{Focus: "Bigger projects", Tasks: []string{
						"Pitch 3 larger-scope projects",
						"Package a premium offering",
						"Land 1 project at the new rate",
						"Document your process publicly",
					}},
					{Focus: "Quarter close", Tasks: []string{
						"Compare quarter income to baseline",
						"Decide: freelance, studio, or products",
						"Write next quarter's creative goal",
						"Take a deliberate rest week-end",
					}},
				},
			},
		},
		indices.StrategyBalanced: {
			{
				Title: "Build the body of work",
				Weeks: [4]Week{
					{Focus: "Choose direction", Tasks: []string{
						"Pick one creative niche",
						"Collect 10 references you love",
						"Schedule 3 creation sessions weekly",
					}},
					{Focus: "Create", Tasks: []string{
						"Finish 1-2 portfolio pieces",
						"Ask one peer for feedback",
						"Apply the feedback",
					}},
					{Focus: "Show it", Tasks: []string{
						"Publish finished work on 1 platform",
						"Write a short description for each piece",
						"Follow 10 relevant accounts",
					}},
					{Focus: "First offer", Tasks: []string{
						"Announce commission availability",
						"Set starter prices",
						"Pitch 3 potential clients",
					}},
				},
			},
			{
				Title: "Commissions begin",
				Weeks: [4]Week{
					{Focus: "Deliver", Tasks: []string{
						"Complete your first commission",
						"Ask for a testimonial",
						"Keep posting weekly",
					}},
					{Focus: "Refine process", Tasks: []string{
						"Write a simple client brief form",
						"Time your delivery stages",
						"Deliver 1 more commission",
					}},
					{Focus: "Price check", Tasks: []string{
						"Compare rates with peers",
						"Adjust your prices once",
						"Publish a case with process shots",
					}},
					{Focus: "Month review", Tasks: []string{
						"Tally income and hours",
						"Pick your best format",
						"Plan month 3",
					}},
				},
			},
			{
				Title: "Recognizable work",
				Weeks: [4]Week{
					{Focus: "Style focus", Tasks: []string{
						"Name the elements of your style",
						"Create 1 signature piece",
						"Update the portfolio order",
					}},
					{Focus: "Steady flow", Tasks: []string{
						"Keep 1 commission in progress",
						"Post twice this week",
						"Engage with 5 potential clients",
					}},
					{Focus: "Gentle growth", Tasks: []string{
						"Pitch 1 larger project",
						"Raise the base rate slightly",
						"Collect one more testimonial",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Compare quarter vs the start",
						"Write your 6-month creative goal",
						"Choose the next focus",
					}},
				},
			},
		},
		indices.StrategySoft: {
			{
				Title: "Create for joy",
				Weeks: [4]Week{
					{Focus: "Low-stakes making", Tasks: []string{
						"Create something small 3 times this week",
						"Keep everything, judge nothing",
					}},
					{Focus: "Find your pull", Tasks: []string{
						"Note which pieces felt best to make",
						"Collect 5 inspiring references",
					}},
					{Focus: "Share once", Tasks: []string{
						"Show one piece to a friendly audience",
						"Write down the reactions",
					}},
					{Focus: "Reflect", Tasks: []string{
						"Decide which direction pulls you",
						"Plan next month's pace",
					}},
				},
			},
			{
				Title: "Quiet consistency",
				Weeks: [4]Week{
					{Focus: "Keep making", Tasks: []string{
						"Finish 1 small piece weekly",
						"Maintain a simple archive",
					}},
					{Focus: "Soft publishing", Tasks: []string{
						"Post one piece publicly",
						"Thank everyone who responds",
					}},
					{Focus: "Tiny commerce", Tasks: []string{
						"Name a price if someone asks",
						"Offer one piece for sale",
					}},
					{Focus: "Look back", Tasks: []string{
						"List the month's finished work",
						"Rest a full weekend",
					}},
				},
			},
			{
				Title: "Your own pace",
				Weeks: [4]Week{
					{Focus: "Rhythm", Tasks: []string{
						"Keep the weekly finishing habit",
						"Post every other week",
					}},
					{Focus: "First commission", Tasks: []string{
						"Accept one small commission",
						"Deliver it without rushing",
					}},
					{Focus: "Optional growth", Tasks: []string{
						"Decide whether to open commissions wide",
						"Price your typical piece",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Write what changed in 3 months",
						"Choose: continue soft, or step up",
					}},
				},
			},
		},
	},
	catalog.DirectionSoft: {
		indices.StrategyIntensive: {
			{
				Title: "Fast low-pressure launch",
				Weeks: [4]Week{
					{Focus: "Pick the lightest offer", Tasks: []string{
						"List 5 low-stress ways you could earn",
						"Pick the one with fastest first money",
						"Define a tiny pilot version",
						"Tell 10 people about the pilot",
					}},
					{Focus: "Pilot it", Tasks: []string{
						"Deliver the pilot to 2 people",
						"Collect honest feedback",
						"Fix the two biggest issues",
						"Decide the pilot price",
					}},
					{Focus: "First revenue", Tasks: []string{
						"Sell the offer to 2 paying customers",
						"Keep delivery under your time budget",
						"Write down every hour spent",
						"Ask both customers for referrals",
					}},
					{Focus: "Shape the routine", Tasks: []string{
						"Fix 2 working blocks per week",
						"Template the delivery steps",
						"Tally month 1 earnings",
						"Set month 2 target",
					}},
				},
			},
			{
				Title: "Comfortable growth",
				Weeks: [4]Week{
					{Focus: "More of what works", Tasks: []string{
						"Serve 3 customers this week",
						"Keep the routine boundaries firm",
						"Publish one short story about the offer",
						"Collect 2 testimonials",
					}},
					{Focus: "Remove friction", Tasks: []string{
						"Automate booking or ordering",
						"Cut one annoying step from delivery",
						"Prepare answers to common questions",
						"Keep serving on schedule",
					}},
					{Focus: "Stretch slightly", Tasks: []string{
						"Raise the price for new customers",
						"Test one adjacent offer variant",
						"Ask regulars what else they'd buy",
						"Track income weekly",
					}},
					{Focus: "Month tally", Tasks: []string{
						"Tally month 2 vs month 1",
						"Check hours stayed within budget",
						"Keep or kill the offer variant",
						"Plan month 3",
					}},
				},
			},
			{
				Title: "Decide the ceiling",
				Weeks: [4]Week{
					{Focus: "Optimize", Tasks: []string{
						"Identify the most profitable hour type",
						"Shift the schedule toward it",
						"Drop the least pleasant task",
						"Keep quality steady",
					}},
					{Focus: "Secure regulars", Tasks: []string{
						"Offer a simple subscription or bundle",
						"Land 2 repeat arrangements",
						"Thank every loyal customer personally",
						"Keep income tracking current",
					}},
					{Focus: "Test the ceiling", Tasks: []string{
						"Raise prices once more for newcomers",
						"Measure demand at the new price",
						"Decline work beyond your hours",
						"Note how the workload feels",
					}},
					{Focus: "Quarter close", Tasks: []string{
						"Tally the quarter's earnings",
						"Decide: keep it light or scale up",
						"Write the next quarter's intent",
						"Take a full rest weekend",
					}},
				},
			},
		},
		indices.StrategyBalanced: {
			{
				Title: "Easy does it",
				Weeks: [4]Week{
					{Focus: "Choose the offer", Tasks: []string{
						"List 3 low-stress earning ideas",
						"Pick one and define a tiny version",
						"Tell 5 people about it",
					}},
					{Focus: "Try it", Tasks: []string{
						"Deliver to 1-2 friendly testers",
						"Collect feedback",
						"Adjust once",
					}},
					{Focus: "First money", Tasks: []string{
						"Sell to 1 paying customer",
						"Track the hours it took",
						"Ask for a referral",
					}},
					{Focus: "Review", Tasks: []string{
						"Check it fits your time and energy",
						"Set a light month 2 target",
						"Fix your weekly working block",
					}},
				},
			},
			{
				Title: "Gentle routine",
				Weeks: [4]Week{
					{Focus: "Serve steadily", Tasks: []string{
						"Serve 2 customers this week",
						"Keep boundaries around your hours",
						"Collect 1 testimonial",
					}},
					{Focus: "Simplify", Tasks: []string{
						"Template the repetitive parts",
						"Simplify booking or ordering",
						"Keep serving on schedule",
					}},
					{Focus: "Small stretch", Tasks: []string{
						"Nudge the price up for newcomers",
						"Ask customers what else they need",
						"Publish one short story",
					}},
					{Focus: "Month review", Tasks: []string{
						"Tally earnings and hours",
						"Confirm it still feels light",
						"Plan month 3",
					}},
				},
			},
			{
				Title: "Keep or grow",
				Weeks: [4]Week{
					{Focus: "Best hours", Tasks: []string{
						"Find your most profitable activity",
						"Shift one block toward it",
						"Drop one draining task",
					}},
					{Focus: "Regulars", Tasks: []string{
						"Offer a repeat bundle",
						"Land 1 regular customer",
						"Thank loyal customers",
					}},
					{Focus: "Check the ceiling", Tasks: []string{
						"Test one higher price",
						"Note demand and your energy",
						"Decline overflow politely",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Tally the quarter",
						"Decide: keep light or scale",
						"Write a 6-month intent",
					}},
				},
			},
		},
		indices.StrategySoft: {
			{
				Title: "Barely-there start",
				Weeks: [4]Week{
					{Focus: "Just look", Tasks: []string{
						"List 3 things people thank you for",
						"Circle the one that feels effortless",
					}},
					{Focus: "Micro pilot", Tasks: []string{
						"Do it once for someone, free",
						"Write down how it felt",
					}},
					{Focus: "Tiny price", Tasks: []string{
						"Name a small price",
						"Offer it to one person",
					}},
					{Focus: "Reflect", Tasks: []string{
						"Decide if you want to continue",
						"Note your energy through the month",
					}},
				},
			},
			{
				Title: "Soft repetition",
				Weeks: [4]Week{
					{Focus: "Once a week", Tasks: []string{
						"Deliver once this week",
						"Keep a one-line journal about it",
					}},
					{Focus: "Feedback", Tasks: []string{
						"Ask one customer what to improve",
						"Improve that one thing",
					}},
					{Focus: "Stay visible", Tasks: []string{
						"Mention your offer to 2 people",
						"Accept one more order",
					}},
					{Focus: "Look back", Tasks: []string{
						"List the month's small wins",
						"Rest fully one weekend",
					}},
				},
			},
			{
				Title: "Quiet stability",
				Weeks: [4]Week{
					{Focus: "Hold the rhythm", Tasks: []string{
						"Keep one delivery per week",
						"Track earnings in one note",
					}},
					{Focus: "Tiny polish", Tasks: []string{
						"Improve one detail of the offer",
						"Collect one kind review",
					}},
					{Focus: "Optional step", Tasks: []string{
						"Decide whether to add a second slot",
						"Adjust the price if it felt too low",
					}},
					{Focus: "Quarter review", Tasks: []string{
						"Write what changed in 3 months",
						"Choose: continue soft, or step up",
					}},
				},
			},
		},
	},
}
