package ranking

import (
	"time"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/common/clock"
	"github.com/KirkDiggler/tikkle/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultInviteTTLHours is how long an invite stays valid unless asked otherwise
	DefaultInviteTTLHours = 72

	// DefaultInviteMaxUses caps redemptions unless asked otherwise
	DefaultInviteMaxUses = 50
)

// Config holds configuration for the ranking service
type Config struct {
	Client tikkle.Client

	// InviteOrigin is the web origin invite links point at
	InviteOrigin string

	Clock  clock.Clock
	Logger *zap.Logger
}

// MyGroupsInput contains parameters for listing groups
type MyGroupsInput struct{}

// MyGroupsOutput contains the user's groups
type MyGroupsOutput struct {
	Groups []*models.RankGroup
}

// LeaderboardInput selects the group to rank
type LeaderboardInput struct {
	GroupID int64
}

// LeaderboardOutput contains ranked members, first place first
type LeaderboardOutput struct {
	GroupID int64
	Rows    []*models.LeaderRow
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	Name string
}

// CreateGroupOutput contains the created group
type CreateGroupOutput struct {
	Group *models.RankGroup
}

// JoinByCodeInput contains an invite code or invite link
type JoinByCodeInput struct {
	Code string
}

// JoinByCodeOutput contains the joined group
type JoinByCodeOutput struct {
	Group *models.RankGroup
}

// CreateInviteInput contains parameters for an invite
type CreateInviteInput struct {
	GroupID int64

	// TTLHours defaults to DefaultInviteTTLHours
	TTLHours int

	// MaxUses defaults to DefaultInviteMaxUses
	MaxUses int
}

// CreateInviteOutput contains the invite and the link to share
type CreateInviteOutput struct {
	Invite *models.InviteLink

	// URL is <origin>/join/<code>
	URL string

	// ExpiresIn is zero when the server sent no parseable expiry
	ExpiresIn time.Duration
}

// LeaveGroupInput contains the group to leave
type LeaveGroupInput struct {
	GroupID int64
}
