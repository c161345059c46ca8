// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/selfcraft/atlas/internal/domain/barrier"
	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/classify"
	"github.com/selfcraft/atlas/internal/domain/indices"
	"github.com/selfcraft/atlas/internal/domain/journal"
	"github.com/selfcraft/atlas/internal/domain/plan"
	"github.com/selfcraft/atlas/internal/domain/progress"
	"github.com/selfcraft/atlas/internal/domain/rank"
	"github.com/selfcraft/atlas/internal/domain/report"
)

// UserContext identifies the subject of a run. Supplied explicitly by
// the caller; the engine never looks identity up ambiently.
type UserContext struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
}

// Submission carries one completed questionnaire into the processing
// pipeline. Exactly one payload pointer matching Tool is set.
type Submission struct {
	SubmissionID string       `json:"submission_id"` // unique id for idempotency
	User         UserContext  `json:"user"`
	Tool         Tool         `json:"tool"`
	SubmittedAt  time.Time    `json:"submitted_at"`
	Psych        *PsychInput  `json:"psych,omitempty"`
	Income       *IncomeInput `json:"income,omitempty"`
	Plan         *PlanInput   `json:"plan,omitempty"`
	Progress     *ProgressIn  `json:"progress,omitempty"`
	Journal      *JournalIn   `json:"journal,omitempty"`
	Barrier      *BarrierIn   `json:"barrier,omitempty"`
}

// PsychInput is the psychological-profile questionnaire.
type PsychInput struct {
	Activities         []string `json:"activities"`
	MotivationText     string   `json:"motivation_text"`
	SelectedProfession string   `json:"selected_profession"`
}

// IncomeInput is the raw categorical answer set of the income tool.
type IncomeInput struct {
	Answers rank.IncomeAnswers `json:"answers"`
}

// PlanInput wraps the planning questionnaire.
type PlanInput struct {
	Inputs plan.UserInputs `json:"inputs"`
}

// ProgressIn is one progress check-in.
type ProgressIn struct {
	Entry progress.Entry `json:"entry"`
}

// JournalIn is one completed journaling session.
type JournalIn struct {
	Entry journal.Entry `json:"entry"`
}

// BarrierIn is the barrier retrospective: recalled steps plus the
// named weakness and supporting strengths.
type BarrierIn struct {
	Context             string         `json:"context"`
	Steps               []barrier.Step `json:"steps"`
	MainWeakness        string         `json:"main_weakness"`
	AdditionalStrengths []string       `json:"additional_strengths"`
}

// PsychResult is the terminal snapshot of a psych run.
type PsychResult struct {
	Segments     classify.Distribution        `json:"segments"`
	TopSegment   catalog.Segment              `json:"top_segment"`
	Motivations  map[catalog.Motivation]int   `json:"motivations"`
	Primary      catalog.Motivation           `json:"primary_motivation"`
	ProfileName  string                       `json:"profile_name"`
	Professions  []catalog.Profession         `json:"professions"`
	BurnoutScore int                          `json:"burnout_score"`
	BurnoutRisk  indices.BurnoutLabel         `json:"burnout_risk"`
}

// IncomeResult is the terminal snapshot of an income run.
type IncomeResult struct {
	Scores    rank.IncomeScores `json:"scores"`
	Direction catalog.Direction `json:"direction"`
}

// ProgressResult pairs the stored entry with its delta classification.
type ProgressResult struct {
	Entry      progress.Entry      `json:"entry"`
	Comparison *progress.Comparison `json:"comparison,omitempty"` // nil on the first entry
}

// BarrierResult is the terminal snapshot of a barrier run.
type BarrierResult struct {
	BreakStep int             `json:"break_step"`
	Profile   barrier.Profile `json:"profile"`
	NewY      int             `json:"new_y"` // anxiety at the break step after recalculation
}

// Snapshot is the stored outcome of one processed submission. Append
// only; never recomputed from stored form.
type Snapshot struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Tool      Tool      `json:"tool"`
	CreatedAt time.Time `json:"created_at"`

	Psych    *PsychResult    `json:"psych,omitempty"`
	Income   *IncomeResult   `json:"income,omitempty"`
	Plan     *plan.FinalPlan `json:"plan,omitempty"`
	Progress *ProgressResult `json:"progress,omitempty"`
	Journal  *journal.Entry  `json:"journal,omitempty"`
	Barrier  *BarrierResult  `json:"barrier,omitempty"`

	Document   report.Document `json:"document,omitempty"`
	ReportText string          `json:"report_text,omitempty"`
}
