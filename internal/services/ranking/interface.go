package ranking

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tikkle/internal/services/ranking Service

import "context"

// Service manages rank groups where friends compare savings
type Service interface {
	// MyGroups returns the groups the user belongs to
	MyGroups(ctx context.Context, input *MyGroupsInput) (*MyGroupsOutput, error)

	// Leaderboard returns a group's members ordered by total saved
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// CreateGroup creates a group
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// JoinByCode redeems an invite code
	JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error)

	// CreateInvite issues a shareable invite link
	CreateInvite(ctx context.Context, input *CreateInviteInput) (*CreateInviteOutput, error)

	// LeaveGroup removes the user from a group
	LeaveGroup(ctx context.Context, input *LeaveGroupInput) error
}
