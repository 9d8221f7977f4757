// Package goal computes savings goal projections: how long a goal will take
// at the stated monthly contribution and whether the target date is feasible.
package goal

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Projection is the derived view of a goal, recomputed from the canonical
// fields on every write and read.
type Projection struct {
	Suggestion      string
	RequiredMonthly decimal.Decimal
	EstimatedMonths int
	MonthsAvailable int
	IsRealistic     bool
}

// EstimateMonths returns how many months are needed to reach the target at
// the given monthly contribution. Returns 0 when monthly is not positive
// (sentinel, not an error).
func EstimateMonths(target, current, monthly decimal.Decimal) int {
	if !monthly.IsPositive() {
		return 0
	}
	remaining := target.Sub(current)
	if !remaining.IsPositive() {
		return 0
	}
	return int(remaining.Div(monthly).Ceil().IntPart())
}

// MonthsAvailable returns the number of months between today and the target
// date, approximated as ceil(days / 30).
func MonthsAvailable(targetDate, today time.Time) int {
	days := targetDate.Sub(today).Hours() / 24
	return int(math.Ceil(days / 30))
}

// RequiredMonthly returns the contribution needed to reach the target within
// the months available, rounded up to whole units. Returns 0 when no months
// are available.
func RequiredMonthly(target, current decimal.Decimal, monthsAvailable int) decimal.Decimal {
	if monthsAvailable <= 0 {
		return decimal.Zero
	}
	remaining := target.Sub(current)
	if !remaining.IsPositive() {
		return decimal.Zero
	}
	return remaining.Div(decimal.NewFromInt(int64(monthsAvailable))).Ceil()
}

// Project computes the full projection for a goal. The suggestion text is
// produced only when the plan is unrealistic and a contribution was stated.
func Project(target, current, monthly decimal.Decimal, targetDate, today time.Time) Projection {
	p := Projection{
		EstimatedMonths: EstimateMonths(target, current, monthly),
		MonthsAvailable: MonthsAvailable(targetDate, today),
	}
	p.IsRealistic = p.EstimatedMonths <= p.MonthsAvailable
	p.RequiredMonthly = RequiredMonthly(target, current, p.MonthsAvailable)

	if !p.IsRealistic && monthly.IsPositive() {
		p.Suggestion = fmt.Sprintf(
			"Para alcançar sua meta até %s, você precisaria poupar %s€ por mês em vez de %s€.",
			targetDate.Format("02/01/2006"),
			p.RequiredMonthly.StringFixed(2),
			monthly.StringFixed(2),
		)
	}
	return p
}

// ProgressPercentage returns how much of the target has been saved, capped
// at 100 for display.
func ProgressPercentage(target, current decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	pct, _ := current.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	return math.Min(pct, 100)
}
