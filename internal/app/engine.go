package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/selfcraft/atlas/internal/adapters/repository"
	"github.com/selfcraft/atlas/internal/domain/barrier"
	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/classify"
	"github.com/selfcraft/atlas/internal/domain/indices"
	"github.com/selfcraft/atlas/internal/domain/journal"
	"github.com/selfcraft/atlas/internal/domain/model"
	"github.com/selfcraft/atlas/internal/domain/plan"
	"github.com/selfcraft/atlas/internal/domain/progress"
	"github.com/selfcraft/atlas/internal/domain/rank"
	"github.com/selfcraft/atlas/internal/domain/report"
	"github.com/selfcraft/atlas/pkg/metrics"
	"github.com/selfcraft/atlas/pkg/random"
	"github.com/selfcraft/atlas/pkg/render"
)

// journalHistoryWindow bounds how much diary history feeds weekly stats.
const journalHistoryWindow = 30

// Engine runs the deterministic assessment engines. It reads prior
// snapshots for tools that compare against history and never mutates
// the store itself.
type Engine struct {
	history repository.Store
	rng     random.Source
}

// NewEngine creates an Engine over the given history store. A nil rng
// falls back to the process-wide source.
func NewEngine(history repository.Store, rng random.Source) *Engine {
	if rng == nil {
		rng = random.Default()
	}
	return &Engine{history: history, rng: rng}
}

// Process scores a submission and builds its report document.
func (e *Engine) Process(ctx context.Context, s model.Submission) (model.Snapshot, error) {
	if err := s.Validate(); err != nil {
		return model.Snapshot{}, fmt.Errorf("engine: %w", err)
	}

	snap := model.Snapshot{
		ID:        uuid.NewString(),
		UserID:    s.User.UserID,
		Tool:      s.Tool,
		CreatedAt: time.Now().UTC(),
	}

	var doc report.Document
	switch s.Tool {
	case model.ToolPsych:
		doc = e.processPsych(&snap, *s.Psych)
	case model.ToolIncome:
		doc = e.processIncome(&snap, *s.Income)
	case model.ToolPlan:
		doc = e.processPlan(ctx, &snap, *s.Plan)
	case model.ToolProgress:
		doc = e.processProgress(ctx, &snap, *s.Progress)
	case model.ToolJournal:
		doc = e.processJournal(ctx, &snap, *s.Journal)
	case model.ToolBarrier:
		doc = e.processBarrier(&snap, *s.Barrier)
	default:
		return model.Snapshot{}, fmt.Errorf("engine: %w: %q", model.ErrUnknownTool, s.Tool)
	}

	snap.Document = doc
	snap.ReportText = render.PlainText(doc)
	metrics.RecordReportBuilt(string(s.Tool))

	return snap, nil
}

func (e *Engine) processPsych(snap *model.Snapshot, in model.PsychInput) report.Document {
	dist := classify.Segments(in.Activities)
	counts := classify.Motivation(in.MotivationText)
	primary := classify.PrimaryMotivation(counts)
	top, _ := dist.Top2()

	selected := catalog.FindProfession(in.SelectedProfession, top)
	ranked := rank.Professions(top, primary)
	score := indices.BurnoutScore(selected, primary, counts, dist)

	snap.Psych = &model.PsychResult{
		Segments:     dist,
		TopSegment:   top,
		Motivations:  counts,
		Primary:      primary,
		ProfileName:  catalog.ProfileName(primary, top),
		Professions:  ranked,
		BurnoutScore: score,
		BurnoutRisk:  indices.BurnoutRisk(score),
	}

	return report.BuildPsychReport(dist, counts, primary, selected)
}

func (e *Engine) processIncome(snap *model.Snapshot, in model.IncomeInput) report.Document {
	scores := rank.CalcIncomeScores(in.Answers)
	direction := rank.PickDirection(scores)

	snap.Income = &model.IncomeResult{
		Scores:    scores,
		Direction: direction,
	}

	return report.IncomeDocument(scores, direction)
}

func (e *Engine) processPlan(ctx context.Context, snap *model.Snapshot, in model.PlanInput) report.Document {
	inputs := in.Inputs
	if _, known := plan.Templates[inputs.Direction]; !known {
		// Fall back to the direction implied by the user's latest
		// psych profile, then to the priority default.
		inputs.Direction = catalog.DirectionPriority[len(catalog.DirectionPriority)-1]
		if last, err := e.history.Latest(ctx, snap.UserID, model.ToolPsych); err == nil && last.Psych != nil {
			if dir, ok := plan.SuggestDirection(last.Psych.TopSegment); ok {
				inputs.Direction = dir
			}
		}
	}

	built := plan.Build(inputs)
	snap.Plan = &built

	return report.PlanDocument(built)
}

func (e *Engine) processProgress(ctx context.Context, snap *model.Snapshot, in model.ProgressIn) report.Document {
	// Counts include the check-in being processed; it is appended to the
	// store only after this snapshot is built.
	historyCount := e.history.CountFor(ctx, snap.UserID, model.ToolProgress) + 1

	var previous *progress.Entry
	if last, err := e.history.Latest(ctx, snap.UserID, model.ToolProgress); err == nil && last.Progress != nil {
		prev := last.Progress.Entry
		previous = &prev
	}

	result := model.ProgressResult{Entry: in.Entry}
	if previous != nil {
		cmp := progress.Compare(in.Entry, *previous, progress.DefaultMetrics)
		result.Comparison = &cmp
	}
	snap.Progress = &result

	return report.BuildProgressComparison(in.Entry, previous, progress.DefaultMetrics, historyCount, e.rng)
}

func (e *Engine) processJournal(ctx context.Context, snap *model.Snapshot, in model.JournalIn) report.Document {
	var history []journal.Entry
	if recent, err := e.history.Recent(ctx, snap.UserID, model.ToolJournal, journalHistoryWindow); err == nil {
		// Recent is newest first; weekly stats want chronological order.
		for i := len(recent) - 1; i >= 0; i-- {
			if recent[i].Journal != nil {
				history = append(history, *recent[i].Journal)
			}
		}
	}

	entry := in.Entry
	entry.Analyze()
	doc := report.BuildJournalDocument(entry, history, e.rng)
	entry.Report = render.PlainText(doc)
	snap.Journal = &entry

	return doc
}

func (e *Engine) processBarrier(snap *model.Snapshot, in model.BarrierIn) report.Document {
	breakStep := barrier.DetectBreakPoint(in.Steps)
	profile := barrier.DetectProfile(in.Steps)

	newY := 0
	if breakStep >= 0 && breakStep < len(in.Steps) {
		newY = barrier.RecalcY(in.Steps[breakStep].Y, in.MainWeakness, len(in.AdditionalStrengths))
	}

	snap.Barrier = &model.BarrierResult{
		BreakStep: breakStep,
		Profile:   profile,
		NewY:      newY,
	}

	return report.BuildBarrierDocument(in.Steps, breakStep, profile, newY, in.MainWeakness, in.AdditionalStrengths)
}
