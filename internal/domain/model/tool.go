package model

import (
	"errors"
	"fmt"
)

// Tool names one of the assessment engines.
type Tool string

const (
	ToolPsych    Tool = "psych"
	ToolIncome   Tool = "income"
	ToolPlan     Tool = "plan"
	ToolProgress Tool = "progress"
	ToolJournal  Tool = "journal"
	ToolBarrier  Tool = "barrier"
)

// Tools lists every known tool.
var Tools = []Tool{ToolPsych, ToolIncome, ToolPlan, ToolProgress, ToolJournal, ToolBarrier}

// ErrUnknownTool is returned for a tool name outside the fixed set.
var ErrUnknownTool = errors.New("model: unknown tool")

// ParseTool validates a tool name from the wire.
func ParseTool(s string) (Tool, error) {
	for _, t := range Tools {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// Validate checks that exactly the payload matching the tool is set.
func (s *Submission) Validate() error {
	if s.SubmissionID == "" {
		return errors.New("model: submission id required")
	}
	if s.User.UserID == "" {
		return errors.New("model: user id required")
	}
	switch s.Tool {
	case ToolPsych:
		if s.Psych == nil {
			return errors.New("model: psych payload required")
		}
	case ToolIncome:
		if s.Income == nil {
			return errors.New("model: income payload required")
		}
	case ToolPlan:
		if s.Plan == nil {
			return errors.New("model: plan payload required")
		}
	case ToolProgress:
		if s.Progress == nil {
			return errors.New("model: progress payload required")
		}
	case ToolJournal:
		if s.Journal == nil {
			return errors.New("model: journal payload required")
		}
	case ToolBarrier:
		if s.Barrier == nil {
			return errors.New("model: barrier payload required")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTool, s.Tool)
	}
	return nil
}
