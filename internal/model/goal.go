package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPriority orders goals by importance.
type GoalPriority string

const (
	// PriorityLow marks a low priority goal.
	PriorityLow GoalPriority = "low"
	// PriorityMedium marks a medium priority goal.
	PriorityMedium GoalPriority = "medium"
	// PriorityHigh marks a high priority goal.
	PriorityHigh GoalPriority = "high"
)

// GoalStatus tracks the lifecycle of a savings goal.
type GoalStatus string

const (
	// GoalStatusActive means the goal is being saved toward.
	GoalStatusActive GoalStatus = "active"
	// GoalStatusCompleted means the target has been reached.
	GoalStatusCompleted GoalStatus = "completed"
	// GoalStatusPaused means contributions are on hold.
	GoalStatusPaused GoalStatus = "paused"
)

// Goal represents a savings goal. EstimatedMonths, IsRealistic and
// AISuggestion are derived by the goal projector from the canonical fields
// and refreshed on every write and read through the engine.
type Goal struct {
	CreatedAt           time.Time       `json:"createdAt"`
	TargetDate          time.Time       `json:"targetDate"`
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description,omitempty"`
	ImageURL            string          `json:"imageUrl,omitempty"`
	Category            string          `json:"category"`
	AISuggestion        string          `json:"aiSuggestion,omitempty"`
	Priority            GoalPriority    `json:"priority"`
	Status              GoalStatus      `json:"status"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
	CurrentAmount       decimal.Decimal `json:"currentAmount"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	EstimatedMonths     int             `json:"estimatedMonths"`
	IsRealistic         bool            `json:"isRealistic"`
}
