package ranking

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/common/clock"
	"github.com/KirkDiggler/tikkle/internal/models"
	"go.uber.org/zap"
)

const joinPath = "/join/"

// service implements the Service interface
type service struct {
	client tikkle.Client
	origin string
	clock  clock.Clock
	logger *zap.Logger
}

// NewService creates a new ranking service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	if cfg.InviteOrigin == "" {
		return nil, ErrEmptyOrigin
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		client: cfg.Client,
		origin: strings.TrimRight(cfg.InviteOrigin, "/"),
		clock:  c,
		logger: logger.Named("ranking"),
	}, nil
}

// MyGroups returns the user's groups
func (s *service) MyGroups(ctx context.Context, input *MyGroupsInput) (*MyGroupsOutput, error) {
	output, err := s.client.MyGroups(ctx, &tikkle.MyGroupsInput{})
	if err != nil {
		return nil, err
	}

	return &MyGroupsOutput{
		Groups: output.Groups,
	}, nil
}

// Leaderboard ranks members by total saved, ties broken by name
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GroupID <= 0 {
		return nil, ErrInvalidGroupID
	}

	output, err := s.client.GetGroup(ctx, &tikkle.GetGroupInput{GroupID: input.GroupID})
	if err != nil {
		return nil, err
	}

	rows := make([]*models.LeaderRow, 0, len(output.Group.Members))
	for _, row := range output.Group.Members {
		if row != nil {
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Name < rows[j].Name
	})

	return &LeaderboardOutput{
		GroupID: input.GroupID,
		Rows:    rows,
	}, nil
}

// CreateGroup creates a group
func (s *service) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	output, err := s.client.CreateGroup(ctx, &tikkle.CreateGroupInput{Name: name})
	if err != nil {
		return nil, err
	}

	return &CreateGroupOutput{
		Group: output.Group,
	}, nil
}

// JoinByCode accepts a bare code or a full invite link
func (s *service) JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	code := InviteCode(input.Code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	output, err := s.client.JoinByCode(ctx, &tikkle.JoinByCodeInput{Code: code})
	if err != nil {
		return nil, err
	}

	s.logger.Info("joined rank group", zap.Int64("group_id", output.Group.ID))

	return &JoinByCodeOutput{
		Group: output.Group,
	}, nil
}

// CreateInvite issues an invite and builds the link to share
func (s *service) CreateInvite(ctx context.Context, input *CreateInviteInput) (*CreateInviteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GroupID <= 0 {
		return nil, ErrInvalidGroupID
	}

	ttl := input.TTLHours
	if ttl <= 0 {
		ttl = DefaultInviteTTLHours
	}

	maxUses := input.MaxUses
	if maxUses <= 0 {
		maxUses = DefaultInviteMaxUses
	}

	output, err := s.client.CreateInvite(ctx, &tikkle.CreateInviteInput{
		GroupID:  input.GroupID,
		TTLHours: ttl,
		MaxUses:  maxUses,
	})
	if err != nil {
		return nil, err
	}

	result := &CreateInviteOutput{
		Invite: output.Invite,
		URL:    s.origin + joinPath + url.PathEscape(output.Invite.Code),
	}

	if expiresAt, err := time.Parse(time.RFC3339, output.Invite.ExpiresAt); err == nil {
		if left := expiresAt.Sub(s.clock.Now()); left > 0 {
			result.ExpiresIn = left
		}
	}

	return result, nil
}

// LeaveGroup removes the user from a group
func (s *service) LeaveGroup(ctx context.Context, input *LeaveGroupInput) error {
	if input == nil {
		return ErrNilInput
	}

	if input.GroupID <= 0 {
		return ErrInvalidGroupID
	}

	return s.client.LeaveGroup(ctx, &tikkle.LeaveGroupInput{GroupID: input.GroupID})
}

// InviteCode extracts the code from an invite link, or returns the
// trimmed input when it is already a code
func InviteCode(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.LastIndex(raw, joinPath); i >= 0 {
		raw = raw[i+len(joinPath):]
	}
	raw = strings.TrimRight(raw, "/")

	if code, err := url.PathUnescape(raw); err == nil {
		return code
	}
	return raw
}
