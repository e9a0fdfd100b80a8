package models

import (
	"github.com/shopspring/decimal"
)

// Goal is a savings goal with its computed progress
type Goal struct {
	// ID is the server identifier of the goal
	ID int64 `json:"id" yaml:"id"`

	// Title is the name the user gave the goal
	Title string `json:"title" yaml:"title"`

	// TargetAmount is the amount the user wants to save
	TargetAmount decimal.Decimal `json:"targetAmount" yaml:"targetAmount"`

	// SavedAmount is the amount saved so far
	SavedAmount decimal.Decimal `json:"savedAmount" yaml:"savedAmount"`

	// ImageURL is an optional cover image
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`

	// CreatedAt is the creation timestamp as sent by the server
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// ProgressPercent returns saved/target as a percentage clamped to [0, 100]
func (g *Goal) ProgressPercent() decimal.Decimal {
	if g == nil || !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	pct := g.SavedAmount.Div(g.TargetAmount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct.Round(1)
}

// Remaining returns how much is left to reach the target, never negative
func (g *Goal) Remaining() decimal.Decimal {
	if g == nil {
		return decimal.Zero
	}
	left := g.TargetAmount.Sub(g.SavedAmount)
	if left.IsNegative() {
		return decimal.Zero
	}
	return left
}

// Completed reports whether the target has been reached
func (g *Goal) Completed() bool {
	return g != nil && g.TargetAmount.IsPositive() && g.SavedAmount.GreaterThanOrEqual(g.TargetAmount)
}
