package savings

import (
	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Config holds configuration for the savings service
type Config struct {
	Client tikkle.Client

	// Scanner is optional; without one no badge scan follows a savings entry
	Scanner BadgeScanner

	Logger *zap.Logger
}

// SummaryInput contains parameters for the home summary
type SummaryInput struct{}

// SummaryOutput is the home screen: goals, totals and earned badges
type SummaryOutput struct {
	Goals []*models.Goal

	// EarnedBadges are the earned badges in server order
	EarnedBadges []*models.Badge

	TotalSaved  decimal.Decimal
	TotalTarget decimal.Decimal
}

// ListGoalsInput contains parameters for listing goals
type ListGoalsInput struct{}

// ListGoalsOutput contains the user's goals
type ListGoalsOutput struct {
	Goals []*models.Goal
}

// GetGoalInput contains parameters for a goal detail
type GetGoalInput struct {
	GoalID int64

	// Page of savings entries, zero-based
	Page int

	// Size of the page; the client default applies when zero
	Size int
}

// GetGoalOutput contains a goal and one page of its entries
type GetGoalOutput struct {
	Goal *models.Goal
	Logs *models.Page[*models.SavingsLog]
}

// CreateGoalInput contains parameters for creating a goal
type CreateGoalInput struct {
	Title        string
	TargetAmount decimal.Decimal
}

// CreateGoalOutput contains the created goal
type CreateGoalOutput struct {
	Goal *models.Goal
}

// RecordSavingInput contains a savings entry
type RecordSavingInput struct {
	GoalID int64
	Amount decimal.Decimal
	Memo   string
}

// RecordSavingOutput contains the recorded entry and the goal after it
type RecordSavingOutput struct {
	Log *models.SavingsLog

	// Goal is nil when the refreshed goal could not be fetched
	Goal *models.Goal
}
