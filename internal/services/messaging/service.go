package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrNilInput = errors.New("input cannot be nil")
	ErrNilBadge = errors.New("badge cannot be nil")
)

var fifty = decimal.NewFromInt(50)

// service implements the Service interface
type service struct {
	// rand is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	var r *rand.Rand
	if config != nil {
		r = config.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// GetAnnouncementMessage returns the headline and body for a badge popup
func (s *service) GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Badge == nil {
		return nil, ErrNilBadge
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneCelebration
	}

	badge := input.Badge

	var titles, messages []string
	switch tone {
	case ToneFunny:
		titles = []string{
			"Look at you!",
			"Well, well, well",
			"Achievement unlocked",
		}
		messages = []string{
			fmt.Sprintf("You earned %s. Your wallet is quietly proud of you.", badge.Title),
			fmt.Sprintf("%s is yours. The coffee shop will miss you.", badge.Title),
			fmt.Sprintf("A wild %s appeared. You caught it by not spending money.", badge.Title),
		}
	case ToneNeutral:
		titles = []string{"Badge earned"}
		messages = []string{fmt.Sprintf("You earned %s.", badge.Title)}
	default:
		titles = []string{
			"New badge!",
			"Badge earned!",
			"You did it!",
		}
		messages = []string{
			fmt.Sprintf("Congratulations! %s is now on your shelf.", badge.Title),
			fmt.Sprintf("%s earned. Every little bit adds up!", badge.Title),
			fmt.Sprintf("You just unlocked %s. Keep the streak going!", badge.Title),
		}
	}

	message := s.pick(messages)
	if badge.Description != "" {
		message = fmt.Sprintf("%s\n%s", message, badge.Description)
	}

	return &GetAnnouncementMessageOutput{
		Title:   s.pick(titles),
		Message: message,
		Tone:    tone,
	}, nil
}

// GetCelebrationMessage returns a short line posted with the celebration effect
func (s *service) GetCelebrationMessage(ctx context.Context, input *GetCelebrationMessageInput) (*GetCelebrationMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Badge == nil {
		return nil, ErrNilBadge
	}

	icon := input.Badge.Icon
	if icon == "" {
		icon = "🏅"
	}

	messages := []string{
		fmt.Sprintf("🎉 %s %s! 🎉", icon, input.Badge.Title),
		fmt.Sprintf("🎊 Confetti for %s %s!", icon, input.Badge.Title),
		fmt.Sprintf("✨ %s %s unlocked ✨", icon, input.Badge.Title),
	}

	return &GetCelebrationMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetSavingRecordedMessage returns feedback after a savings entry
func (s *service) GetSavingRecordedMessage(ctx context.Context, input *GetSavingRecordedMessageInput) (*GetSavingRecordedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	amount := models.FormatWon(input.Amount)
	goal := input.Goal

	var titles, messages []string
	switch {
	case goal == nil:
		titles = []string{"Saved!"}
		messages = []string{
			fmt.Sprintf("%s saved.", amount),
			fmt.Sprintf("%s tucked away.", amount),
		}
	case goal.Completed():
		titles = []string{
			"Goal reached!",
			"Target hit!",
		}
		messages = []string{
			fmt.Sprintf("%s saved and %s is fully funded. Treat yourself (responsibly).", amount, goal.Title),
			fmt.Sprintf("That %s finished %s. Time to pick the next goal!", amount, goal.Title),
		}
	case goal.ProgressPercent().GreaterThanOrEqual(fifty):
		titles = []string{
			"Over halfway!",
			"Nice one!",
		}
		messages = []string{
			fmt.Sprintf("%s saved. %s is %s%% done, only %s to go.", amount, goal.Title, goal.ProgressPercent(), models.FormatWon(goal.Remaining())),
			fmt.Sprintf("%s closer to %s. The finish line is in sight.", amount, goal.Title),
		}
	default:
		titles = []string{
			"Saved!",
			"Good start!",
			"Every bit counts",
		}
		messages = []string{
			fmt.Sprintf("%s saved toward %s (%s%%).", amount, goal.Title, goal.ProgressPercent()),
			fmt.Sprintf("%s into %s. Small steps, big goals.", amount, goal.Title),
			fmt.Sprintf("%s more for %s. Keep it rolling!", amount, goal.Title),
		}
	}

	return &GetSavingRecordedMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetLeaderboardMessage returns a line for a member's standing in a rank group
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	total := models.FormatWon(decimal.NewFromInt(input.Total))

	var messages []string
	switch {
	case input.Rank == 0:
		messages = []string{
			fmt.Sprintf("🥇 %s leads with %s saved!", input.Name, total),
			fmt.Sprintf("🥇 %s is the savings champion at %s.", input.Name, total),
		}
	case input.Rank == 1:
		messages = []string{
			fmt.Sprintf("🥈 %s is close behind with %s.", input.Name, total),
		}
	case input.Rank == 2:
		messages = []string{
			fmt.Sprintf("🥉 %s holds third with %s.", input.Name, total),
		}
	case input.TotalMembers > 3 && input.Rank == input.TotalMembers-1:
		messages = []string{
			fmt.Sprintf("%s: %s. Plenty of room to climb!", input.Name, total),
			fmt.Sprintf("%s: %s. The comeback starts now.", input.Name, total),
		}
	default:
		messages = []string{
			fmt.Sprintf("%d. %s: %s", input.Rank+1, input.Name, total),
		}
	}

	return &GetLeaderboardMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeUnauthorized:
		messages = []string{
			"You are signed out. Run `tikkle login-url` and sign in again.",
		}
		if tone == ToneFunny {
			messages = append(messages, "Who goes there? Sign in first and we'll talk money.")
		}
	case ErrorTypeNetwork:
		messages = []string{
			"The savings server is not answering. Try again in a moment.",
		}
		if tone == ToneFunny {
			messages = append(messages, "The server went out for coffee. Ironic, we know.")
		}
	case ErrorTypeInvalidInput:
		messages = []string{
			"That doesn't look right. Check the values and try again.",
		}
	case ErrorTypeNotFound:
		messages = []string{
			"We couldn't find that. It may have been removed.",
		}
	default:
		messages = []string{
			"Something went wrong. Please try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
