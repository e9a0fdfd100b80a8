package tikkle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/tikkle/internal/models"
)

// ListBadges fetches GET /api/badges; nothing is cached
func (c *client) ListBadges(ctx context.Context, input *ListBadgesInput) (*ListBadgesOutput, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/badges", nil, &raw); err != nil {
		return nil, err
	}

	badges, err := c.ParseBadges(raw)
	if err != nil {
		return nil, err
	}

	return &ListBadgesOutput{
		Badges: badges,
	}, nil
}

// ParseBadges decodes and validates a badge list. Any malformed entry
// rejects the whole payload.
func (c *client) ParseBadges(data []byte) ([]*models.Badge, error) {
	var badges []*models.Badge
	if err := json.Unmarshal(data, &badges); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if badges == nil {
		return nil, fmt.Errorf("%w: expected a badge list", ErrInvalidPayload)
	}

	for i, b := range badges {
		if b == nil {
			return nil, fmt.Errorf("%w: badge %d is null", ErrInvalidPayload, i)
		}
		if err := c.validate.Struct(b); err != nil {
			return nil, fmt.Errorf("%w: badge %d: %v", ErrInvalidPayload, i, err)
		}
	}

	return badges, nil
}
