package tikkle

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/tikkle/internal/clients/tikkle Client

import (
	"context"

	"github.com/KirkDiggler/tikkle/internal/models"
)

// Client is the request/response contract of the remote savings API
type Client interface {
	// Me returns the session's account
	Me(ctx context.Context) (*models.Account, error)

	// LoginURL builds the social-login redirect for a provider
	LoginURL(provider models.LoginProvider) (string, error)

	// Logout ends the server session
	Logout(ctx context.Context) error

	// ListBadges returns every badge definition with the user's earned status
	ListBadges(ctx context.Context, input *ListBadgesInput) (*ListBadgesOutput, error)

	// ListGoals returns the user's savings goals
	ListGoals(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error)

	// GetGoal returns a single goal
	GetGoal(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error)

	// CreateGoal creates a savings goal
	CreateGoal(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error)

	// ListSavingsLogs returns a page of a goal's savings entries
	ListSavingsLogs(ctx context.Context, input *ListSavingsLogsInput) (*ListSavingsLogsOutput, error)

	// AddSavingsLog records a savings entry against a goal
	AddSavingsLog(ctx context.Context, input *AddSavingsLogInput) (*AddSavingsLogOutput, error)

	// MyGroups returns the rank groups the user belongs to
	MyGroups(ctx context.Context, input *MyGroupsInput) (*MyGroupsOutput, error)

	// GetGroup returns a rank group with member standings
	GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error)

	// CreateGroup creates a rank group owned by the user
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// JoinByCode redeems an invite code
	JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error)

	// CreateInvite issues an invite code for a group
	CreateInvite(ctx context.Context, input *CreateInviteInput) (*CreateInviteOutput, error)

	// LeaveGroup removes the user from a group
	LeaveGroup(ctx context.Context, input *LeaveGroupInput) error
}
