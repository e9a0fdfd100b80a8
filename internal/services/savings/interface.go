package savings

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tikkle/internal/services/savings Service

import "context"

// Service manages savings goals and entries
type Service interface {
	// Summary returns the goals and earned badges shown on the home screen
	Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)

	// ListGoals returns the user's goals with progress
	ListGoals(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error)

	// GetGoal returns a goal and a page of its savings entries
	GetGoal(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error)

	// CreateGoal creates a savings goal
	CreateGoal(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error)

	// RecordSaving records a savings entry and scans for newly earned badges
	RecordSaving(ctx context.Context, input *RecordSavingInput) (*RecordSavingOutput, error)
}

// BadgeScanner is told when an action may have earned a badge
type BadgeScanner interface {
	TriggerScan(ctx context.Context)
}
