package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWon(t *testing.T) {
	cases := map[string]string{
		"0":         "₩0",
		"999":       "₩999",
		"1000":      "₩1,000",
		"12500.5":   "₩12,501",
		"1234567":   "₩1,234,567",
		"-45000":    "-₩45,000",
		"100000000": "₩100,000,000",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatWon(decimal.RequireFromString(in)), in)
	}
}

func TestGoalProgress(t *testing.T) {
	goal := &Goal{
		TargetAmount: decimal.NewFromInt(300000),
		SavedAmount:  decimal.NewFromInt(100000),
	}
	assert.Equal(t, "33.3", goal.ProgressPercent().String())
	assert.Equal(t, "200000", goal.Remaining().String())
	assert.False(t, goal.Completed())

	goal.SavedAmount = decimal.NewFromInt(350000)
	assert.Equal(t, "100", goal.ProgressPercent().String())
	assert.True(t, goal.Remaining().IsZero())
	assert.True(t, goal.Completed())

	empty := &Goal{}
	assert.True(t, empty.ProgressPercent().IsZero())
}

func TestSeenBadges(t *testing.T) {
	at := "2024-01-01T00:00:00Z"
	seen := SeenBadges{"A": at}

	assert.True(t, seen.HasSeen(&Badge{Code: "A", Earned: true, EarnedAt: &at}))
	assert.False(t, seen.HasSeen(&Badge{Code: "B", Earned: true, EarnedAt: &at}))

	later := "2024-02-01T00:00:00Z"
	assert.False(t, seen.HasSeen(&Badge{Code: "A", Earned: true, EarnedAt: &later}))

	clone := seen.Clone()
	clone["B"] = later
	assert.Len(t, seen, 1)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 10))
	assert.Equal(t, "███░░░░░░░", ProgressBar(33, 10))
	assert.Equal(t, "██████████", ProgressBar(100, 10))
	assert.Equal(t, "██████████", ProgressBar(140, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(-5, 10))
}
