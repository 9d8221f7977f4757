package goal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestEstimateMonths(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		current string
		monthly string
		want    int
	}{
		{
			name:    "exact division",
			target:  "1000",
			current: "0",
			monthly: "100",
			want:    10,
		},
		{
			name:    "rounds up partial months",
			target:  "1000",
			current: "0",
			monthly: "300",
			want:    4,
		},
		{
			name:    "counts only the remaining amount",
			target:  "1000",
			current: "700",
			monthly: "100",
			want:    3,
		},
		{
			name:    "zero contribution yields zero sentinel",
			target:  "1000",
			current: "0",
			monthly: "0",
			want:    0,
		},
		{
			name:    "already reached",
			target:  "1000",
			current: "1000",
			monthly: "100",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateMonths(d(tt.target), d(tt.current), d(tt.monthly))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthsAvailable(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, MonthsAvailable(today.AddDate(0, 0, 300), today))
	assert.Equal(t, 1, MonthsAvailable(today.AddDate(0, 0, 15), today))
	assert.LessOrEqual(t, MonthsAvailable(today.AddDate(0, 0, -10), today), 0)
}

func TestRequiredMonthly(t *testing.T) {
	assert.True(t, RequiredMonthly(d("1000"), d("0"), 6).Equal(d("167")))
	assert.True(t, RequiredMonthly(d("1000"), d("400"), 6).Equal(d("100")))
	assert.True(t, RequiredMonthly(d("1000"), d("0"), 0).IsZero())
	assert.True(t, RequiredMonthly(d("1000"), d("1000"), 6).IsZero())
}

func TestProject(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("realistic plan", func(t *testing.T) {
		// 10 months needed, 10 months available.
		p := Project(d("1000"), d("0"), d("100"), today.AddDate(0, 0, 300), today)

		require.Equal(t, 10, p.EstimatedMonths)
		require.Equal(t, 10, p.MonthsAvailable)
		assert.True(t, p.IsRealistic)
		assert.Empty(t, p.Suggestion)
	})

	t.Run("unrealistic plan suggests a higher contribution", func(t *testing.T) {
		// 10 months needed, 6 available: 1000/6 rounds up to 167.
		targetDate := today.AddDate(0, 0, 180)
		p := Project(d("1000"), d("0"), d("100"), targetDate, today)

		require.Equal(t, 10, p.EstimatedMonths)
		require.Equal(t, 6, p.MonthsAvailable)
		assert.False(t, p.IsRealistic)
		assert.True(t, p.RequiredMonthly.Equal(d("167")))
		assert.Contains(t, p.Suggestion, "167.00")
		assert.Contains(t, p.Suggestion, "100.00")
		assert.Contains(t, p.Suggestion, targetDate.Format("02/01/2006"))
	})

	t.Run("no contribution stated means no suggestion", func(t *testing.T) {
		p := Project(d("1000"), d("0"), d("0"), today.AddDate(0, 0, 30), today)

		assert.Equal(t, 0, p.EstimatedMonths)
		assert.Empty(t, p.Suggestion)
	})
}

func TestProgressPercentage(t *testing.T) {
	assert.InDelta(t, 50, ProgressPercentage(d("1000"), d("500")), 0.001)
	assert.InDelta(t, 100, ProgressPercentage(d("1000"), d("1500")), 0.001)
	assert.InDelta(t, 0, ProgressPercentage(d("0"), d("500")), 0.001)
}
