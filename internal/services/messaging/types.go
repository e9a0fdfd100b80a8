package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/shopspring/decimal"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType classifies failures shown to the user
type ErrorType string

const (
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeNetwork      ErrorType = "network"
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeUnknown      ErrorType = "unknown"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Rand picks among message variants; seeded from the clock when nil
	Rand *rand.Rand
}

// GetAnnouncementMessageInput contains the badge being announced
type GetAnnouncementMessageInput struct {
	Badge *models.Badge

	// Tone is optional and defaults to ToneCelebration
	Tone MessageTone
}

// GetAnnouncementMessageOutput contains the popup copy
type GetAnnouncementMessageOutput struct {
	// Title is the popup headline
	Title string

	// Message is the popup body
	Message string

	Tone MessageTone
}

// GetCelebrationMessageInput contains the badge being celebrated
type GetCelebrationMessageInput struct {
	Badge *models.Badge
}

// GetCelebrationMessageOutput contains the celebration line
type GetCelebrationMessageOutput struct {
	Message string
}

// GetSavingRecordedMessageInput describes a savings entry just recorded
type GetSavingRecordedMessageInput struct {
	// Goal is the goal after the entry, when known
	Goal *models.Goal

	// Amount is the amount saved
	Amount decimal.Decimal

	Tone MessageTone
}

// GetSavingRecordedMessageOutput contains the feedback copy
type GetSavingRecordedMessageOutput struct {
	Title   string
	Message string
}

// GetLeaderboardMessageInput describes one row of a rank group
type GetLeaderboardMessageInput struct {
	Name string

	// Rank is zero-based
	Rank int

	TotalMembers int

	// Total is what the member has saved
	Total int64
}

// GetLeaderboardMessageOutput contains the leaderboard line
type GetLeaderboardMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// PreferredTone is optional
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the error copy
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
