package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LimitPeriod is the accrual window of a spending limit.
type LimitPeriod string

const (
	// PeriodBiweekly resets every 14 days.
	PeriodBiweekly LimitPeriod = "biweekly"
	// PeriodMonthly resets every month.
	PeriodMonthly LimitPeriod = "monthly"
	// PeriodBimonthly resets every two months.
	PeriodBimonthly LimitPeriod = "bimonthly"
	// PeriodQuarterly resets every three months.
	PeriodQuarterly LimitPeriod = "quarterly"
	// PeriodSemiannual resets every six months.
	PeriodSemiannual LimitPeriod = "semiannual"
	// PeriodAnnual resets every year.
	PeriodAnnual LimitPeriod = "annual"
)

// StartType selects how the limit's start date is anchored.
type StartType string

const (
	// StartToday anchors the cycle on the creation day.
	StartToday StartType = "today"
	// StartFirstDay anchors the cycle on the first day of the month.
	StartFirstDay StartType = "first_day"
	// StartLastDay anchors the cycle on the last day of the month.
	StartLastDay StartType = "last_day"
)

// LimitState classifies how close a limit is to its threshold.
type LimitState string

const (
	// LimitOK means usage is below the alert threshold.
	LimitOK LimitState = "ok"
	// LimitNear means usage reached the alert threshold.
	LimitNear LimitState = "near"
	// LimitExceeded means the accrued amount reached the limit.
	LimitExceeded LimitState = "exceeded"
)

// Limit represents a spending limit on a category. CurrentAmount accrues via
// the ledger engine for every settled expense matching the category (and
// subcategory, when set). It is not capped; exceeding LimitAmount is the
// intended signal.
type Limit struct {
	CreatedAt      time.Time       `json:"createdAt"`
	StartDate      time.Time       `json:"startDate"`
	ResetDate      time.Time       `json:"resetDate"`
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory,omitempty"`
	Period         LimitPeriod     `json:"period"`
	StartType      StartType       `json:"startType"`
	LimitAmount    decimal.Decimal `json:"limitAmount"`
	CurrentAmount  decimal.Decimal `json:"currentAmount"`
	AlertThreshold int             `json:"alertThreshold"` // percentage, 1-100
	IsActive       bool            `json:"isActive"`
}

// Matches reports whether an expense with the given category and subcategory
// accrues against this limit. A limit without a subcategory filter matches
// any subcategory.
func (l *Limit) Matches(category, subcategory string) bool {
	if !l.IsActive || l.Category != category {
		return false
	}
	if l.Subcategory != "" && l.Subcategory != subcategory {
		return false
	}
	return true
}
