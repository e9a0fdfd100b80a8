package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tikkle/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetAnnouncementMessage returns the headline and body for a badge popup
	GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error)

	// GetCelebrationMessage returns a short line posted with the celebration effect
	GetCelebrationMessage(ctx context.Context, input *GetCelebrationMessageInput) (*GetCelebrationMessageOutput, error)

	// GetSavingRecordedMessage returns feedback after a savings entry
	GetSavingRecordedMessage(ctx context.Context, input *GetSavingRecordedMessageInput) (*GetSavingRecordedMessageOutput, error)

	// GetLeaderboardMessage returns a line for a member's standing in a rank group
	GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
