package tikkle

import (
	"context"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/tikkle/internal/models"
)

// MyGroups fetches GET /api/rank/groups
func (c *client) MyGroups(ctx context.Context, input *MyGroupsInput) (*MyGroupsOutput, error) {
	var groups []*models.RankGroup
	if err := c.do(ctx, http.MethodGet, "/api/rank/groups", nil, &groups); err != nil {
		return nil, err
	}

	return &MyGroupsOutput{
		Groups: groups,
	}, nil
}

// GetGroup fetches GET /api/rank/groups/{id}
func (c *client) GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GroupID <= 0 {
		return nil, ErrInvalidID
	}

	var detail models.RankGroupDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/rank/groups/%d", input.GroupID), nil, &detail); err != nil {
		return nil, err
	}

	return &GetGroupOutput{
		Group: &detail,
	}, nil
}

// CreateGroup posts to /api/rank/groups
func (c *client) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	body := map[string]string{"name": input.Name}

	var group models.RankGroup
	if err := c.do(ctx, http.MethodPost, "/api/rank/groups", body, &group); err != nil {
		return nil, err
	}

	return &CreateGroupOutput{
		Group: &group,
	}, nil
}

// JoinByCode posts to /api/rank/join
func (c *client) JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	body := map[string]string{"code": input.Code}

	var group models.RankGroup
	if err := c.do(ctx, http.MethodPost, "/api/rank/join", body, &group); err != nil {
		return nil, err
	}

	return &JoinByCodeOutput{
		Group: &group,
	}, nil
}

// CreateInvite posts to /api/rank/groups/{id}/invites
func (c *client) CreateInvite(ctx context.Context, input *CreateInviteInput) (*CreateInviteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GroupID <= 0 {
		return nil, ErrInvalidID
	}
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	body := map[string]int{
		"ttlHours": input.TTLHours,
		"maxUses":  input.MaxUses,
	}

	var invite models.InviteLink
	path := fmt.Sprintf("/api/rank/groups/%d/invites", input.GroupID)
	if err := c.do(ctx, http.MethodPost, path, body, &invite); err != nil {
		return nil, err
	}

	return &CreateInviteOutput{
		Invite: &invite,
	}, nil
}

// LeaveGroup posts to /api/rank/groups/{id}/leave
func (c *client) LeaveGroup(ctx context.Context, input *LeaveGroupInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.GroupID <= 0 {
		return ErrInvalidID
	}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/rank/groups/%d/leave", input.GroupID), nil, nil)
}
