package tikkle

import (
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/shopspring/decimal"
)

// ListBadgesInput contains parameters for listing badges
type ListBadgesInput struct{}

// ListBadgesOutput contains the badges in server order
type ListBadgesOutput struct {
	Badges []*models.Badge
}

// ListGoalsInput contains parameters for listing goals
type ListGoalsInput struct{}

// ListGoalsOutput contains the user's goals
type ListGoalsOutput struct {
	Goals []*models.Goal
}

// GetGoalInput contains parameters for retrieving a goal
type GetGoalInput struct {
	GoalID int64
}

// GetGoalOutput contains the requested goal
type GetGoalOutput struct {
	Goal *models.Goal
}

// CreateGoalInput contains parameters for creating a goal
type CreateGoalInput struct {
	// Title is the goal name
	Title string `validate:"required,max=100"`

	// TargetAmount must be positive
	TargetAmount decimal.Decimal
}

// CreateGoalOutput contains the created goal
type CreateGoalOutput struct {
	Goal *models.Goal
}

// ListSavingsLogsInput contains parameters for listing savings entries
type ListSavingsLogsInput struct {
	GoalID int64

	// Page is zero-based
	Page int `validate:"gte=0"`

	// Size defaults to 10
	Size int `validate:"gte=0,lte=100"`
}

// ListSavingsLogsOutput contains one page of savings entries
type ListSavingsLogsOutput struct {
	Page *models.Page[*models.SavingsLog]
}

// AddSavingsLogInput contains parameters for recording a savings entry
type AddSavingsLogInput struct {
	GoalID int64 `validate:"required"`

	// Amount must be positive
	Amount decimal.Decimal

	Memo string `validate:"max=200"`
}

// AddSavingsLogOutput contains the recorded entry
type AddSavingsLogOutput struct {
	Log *models.SavingsLog
}

// MyGroupsInput contains parameters for listing rank groups
type MyGroupsInput struct{}

// MyGroupsOutput contains the user's rank groups
type MyGroupsOutput struct {
	Groups []*models.RankGroup
}

// GetGroupInput contains parameters for retrieving a rank group
type GetGroupInput struct {
	GroupID int64
}

// GetGroupOutput contains a rank group and its members
type GetGroupOutput struct {
	Group *models.RankGroupDetail
}

// CreateGroupInput contains parameters for creating a rank group
type CreateGroupInput struct {
	Name string `validate:"required,max=50"`
}

// CreateGroupOutput contains the created group
type CreateGroupOutput struct {
	Group *models.RankGroup
}

// JoinByCodeInput contains the invite code to redeem
type JoinByCodeInput struct {
	Code string `validate:"required"`
}

// JoinByCodeOutput contains the joined group
type JoinByCodeOutput struct {
	Group *models.RankGroup
}

// CreateInviteInput contains parameters for issuing an invite code
type CreateInviteInput struct {
	GroupID int64

	// TTLHours is how long the code stays valid
	TTLHours int `validate:"gte=1,lte=720"`

	// MaxUses caps redemptions
	MaxUses int `validate:"gte=1"`
}

// CreateInviteOutput contains the issued invite
type CreateInviteOutput struct {
	Invite *models.InviteLink
}

// LeaveGroupInput contains the group to leave
type LeaveGroupInput struct {
	GroupID int64
}
