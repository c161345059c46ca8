package loadtest

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/selfcraft/atlas/internal/domain/barrier"
	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/journal"
	"github.com/selfcraft/atlas/internal/domain/model"
	"github.com/selfcraft/atlas/internal/domain/plan"
	"github.com/selfcraft/atlas/internal/domain/progress"
	"github.com/selfcraft/atlas/pkg/logger"
)

// Answer pools are Russian because the classifiers match against the
// original questionnaire's answer language.
var activityPool = []string{
	"рисую иллюстрации и обложки",
	"помогаю друзьям разбираться с проблемами",
	"веду таблицы и считаю расходы",
	"организую мероприятия для команды",
	"преподаю английский школьникам",
	"снимаю и монтирую видео",
	"чиню технику руками",
	"изучаю новые темы и копаюсь в деталях",
	"веду блог и общаюсь с подписчиками",
	"планирую запуски и продажи",
}

var motivationPool = []string{
	"хочу приносить пользу людям",
	"хочу зарабатывать и обеспечить семью",
	"мне важно признание и известность",
	"хочу свободу и гибкий график",
	"мне нравится сам процесс работы",
	"хочу карьерный рост и статус",
}

var incomeAnswerPool = []map[string]string{
	{"body_interest": "да", "physical_load": "хорошо", "offline_available": "да"},
	{"likes_people": "очень", "energy_level": "высокий", "income_target": "100"},
	{"online_available": "да", "likes_people": "минимум", "time_per_week": "до 5 часов"},
	{"strength": "создаю и придумываю", "goal": "реализация"},
	{"energy_level": "низкий", "start_ready": "1"},
}

var difficultyPool = []string{
	"не хватает времени на себя",
	"клиент долго не отвечает",
	"страх показать работу",
}

var insightPool = []string{
	"маленькие шаги работают лучше рывков",
	"отдых тоже часть работы",
}

// Generate builds NumSessions submissions spread across users and tools.
func Generate(ctx context.Context, config *Config) []model.Submission {
	logger.Get().Info(ctx, "generating sessions",
		logger.Int("numSessions", config.NumSessions),
		logger.Int("numUsers", config.NumUsers),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := make([]model.UserContext, config.NumUsers)
	for i := range users {
		users[i] = model.UserContext{
			UserID:      uuid.NewString(),
			DisplayName: fmt.Sprintf("load-user-%d", i),
		}
	}

	subs := make([]model.Submission, config.NumSessions)
	for i := range subs {
		tool := model.Tools[i%len(model.Tools)]
		subs[i] = model.Submission{
			SubmissionID: uuid.NewString(),
			User:         users[rng.Intn(len(users))],
			Tool:         tool,
			SubmittedAt:  time.Now().UTC(),
		}
		fillPayload(&subs[i], tool, rng)
	}

	return subs
}

func fillPayload(sub *model.Submission, tool model.Tool, rng *rand.Rand) {
	switch tool {
	case model.ToolPsych:
		sub.Psych = &model.PsychInput{
			Activities: []string{
				activityPool[rng.Intn(len(activityPool))],
				activityPool[rng.Intn(len(activityPool))],
			},
			MotivationText: motivationPool[rng.Intn(len(motivationPool))],
		}
	case model.ToolIncome:
		sub.Income = &model.IncomeInput{
			Answers: incomeAnswerPool[rng.Intn(len(incomeAnswerPool))],
		}
	case model.ToolPlan:
		sub.Plan = &model.PlanInput{Inputs: plan.UserInputs{
			Direction:     catalog.DirectionPriority[rng.Intn(len(catalog.DirectionPriority))],
			Energy:        1 + rng.Intn(10),
			Motivation:    1 + rng.Intn(10),
			Confidence:    1 + rng.Intn(10),
			TimePerWeek:   1 + rng.Intn(40),
			IncomeTarget:  500 + rng.Intn(3000),
			CurrentIncome: rng.Intn(1000),
		}}
	case model.ToolProgress:
		sub.Progress = &model.ProgressIn{Entry: progress.Entry{
			Date:      time.Now().UTC(),
			Values:    randomMetricValues(rng),
			MainFocus: "first paying clients",
		}}
	case model.ToolJournal:
		sub.Journal = &model.JournalIn{Entry: journal.Entry{
			Date:         time.Now().UTC(),
			Achievements: []string{"closed one task"},
			Difficulties: []string{difficultyPool[rng.Intn(len(difficultyPool))]},
			Insights:     []string{insightPool[rng.Intn(len(insightPool))]},
			Energy:       1 + rng.Intn(10),
			Stress:       1 + rng.Intn(10),
		}}
	case model.ToolBarrier:
		sub.Barrier = &model.BarrierIn{
			Context:      "past launch attempt",
			MainWeakness: "страх оценки",
			Steps: []barrier.Step{
				{Index: 0, Text: "decided to start", X: 6 + rng.Intn(4), Y: 1 + rng.Intn(3)},
				{Index: 1, Text: "told friends about it", X: 4 + rng.Intn(4), Y: 3 + rng.Intn(4)},
				{Index: 2, Text: "published the offer", X: 2 + rng.Intn(4), Y: 5 + rng.Intn(5)},
			},
		}
	}
}

func randomMetricValues(rng *rand.Rand) map[string]int {
	values := make(map[string]int, len(progress.DefaultMetrics))
	for _, m := range progress.DefaultMetrics {
		values[m.Key] = 1 + rng.Intn(10)
	}
	return values
}
