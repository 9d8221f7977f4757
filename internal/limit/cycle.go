// Package limit manages spending limit cycles: reset date computation,
// usage classification and period rollover.
package limit

import (
	"math"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/shopspring/decimal"
)

// NextResetDate returns the end of the accrual window that starts at start.
func NextResetDate(start time.Time, period model.LimitPeriod) time.Time {
	switch period {
	case model.PeriodBiweekly:
		return start.AddDate(0, 0, 14)
	case model.PeriodMonthly:
		return start.AddDate(0, 1, 0)
	case model.PeriodBimonthly:
		return start.AddDate(0, 2, 0)
	case model.PeriodQuarterly:
		return start.AddDate(0, 3, 0)
	case model.PeriodSemiannual:
		return start.AddDate(0, 6, 0)
	case model.PeriodAnnual:
		return start.AddDate(1, 0, 0)
	}
	return start
}

// StartDateFor anchors a limit's start date according to its start type.
func StartDateFor(startType model.StartType, now time.Time) time.Time {
	switch startType {
	case model.StartFirstDay:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case model.StartLastDay:
		return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
	default:
		return now
	}
}

// UsagePercentage returns how much of the limit has been spent, capped at
// 100 for display. The stored current amount itself is never capped.
func UsagePercentage(current, limitAmount decimal.Decimal) float64 {
	if !limitAmount.IsPositive() {
		return 0
	}
	pct, _ := current.Div(limitAmount).Mul(decimal.NewFromInt(100)).Float64()
	return math.Min(pct, 100)
}

// Classify reports how close the limit is to its threshold.
func Classify(l *model.Limit) model.LimitState {
	if l.CurrentAmount.GreaterThanOrEqual(l.LimitAmount) {
		return model.LimitExceeded
	}
	if UsagePercentage(l.CurrentAmount, l.LimitAmount) >= float64(l.AlertThreshold) {
		return model.LimitNear
	}
	return model.LimitOK
}

// Rollover advances the limit into its current accrual window. When now has
// passed the reset date, the accrued amount is zeroed and the reset date
// advanced period by period until it lies in the future. Returns true when
// the limit was modified.
func Rollover(l *model.Limit, now time.Time) bool {
	if !now.After(l.ResetDate) {
		return false
	}
	for !l.ResetDate.After(now) {
		l.StartDate = l.ResetDate
		l.ResetDate = NextResetDate(l.ResetDate, l.Period)
	}
	l.CurrentAmount = decimal.Zero
	return true
}
