package messaging

import (
	"context"
	"math/rand"
	"testing"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(1))})
	s.Require().NoError(err)
	s.service = svc
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestAnnouncementMentionsBadge() {
	badge := &models.Badge{Code: "FIRST_SAVE", Title: "First Save", Description: "Record your first saving"}

	for _, tone := range []MessageTone{"", ToneFunny, ToneNeutral, ToneEncouraging} {
		output, err := s.service.GetAnnouncementMessage(s.ctx, &GetAnnouncementMessageInput{Badge: badge, Tone: tone})
		s.Require().NoError(err)
		s.NotEmpty(output.Title)
		s.Contains(output.Message, "First Save")
		s.Contains(output.Message, "Record your first saving")
	}

	output, err := s.service.GetAnnouncementMessage(s.ctx, &GetAnnouncementMessageInput{Badge: badge})
	s.Require().NoError(err)
	s.Equal(ToneCelebration, output.Tone)
}

func (s *MessagingServiceTestSuite) TestAnnouncementNeutral() {
	output, err := s.service.GetAnnouncementMessage(s.ctx, &GetAnnouncementMessageInput{
		Badge: &models.Badge{Code: "A", Title: "Saver"},
		Tone:  ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Badge earned", output.Title)
	s.Equal("You earned Saver.", output.Message)
}

func (s *MessagingServiceTestSuite) TestNilInputs() {
	_, err := s.service.GetAnnouncementMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.GetAnnouncementMessage(s.ctx, &GetAnnouncementMessageInput{})
	s.ErrorIs(err, ErrNilBadge)

	_, err = s.service.GetCelebrationMessage(s.ctx, &GetCelebrationMessageInput{})
	s.ErrorIs(err, ErrNilBadge)

	_, err = s.service.GetSavingRecordedMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *MessagingServiceTestSuite) TestCelebrationUsesIcon() {
	output, err := s.service.GetCelebrationMessage(s.ctx, &GetCelebrationMessageInput{
		Badge: &models.Badge{Code: "A", Title: "Saver", Icon: "🐷"},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "🐷 Saver")

	output, err = s.service.GetCelebrationMessage(s.ctx, &GetCelebrationMessageInput{
		Badge: &models.Badge{Code: "A", Title: "Saver"},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "🏅 Saver")
}

func (s *MessagingServiceTestSuite) TestSavingRecordedByProgress() {
	completed := &models.Goal{
		Title:        "Laptop",
		TargetAmount: decimal.NewFromInt(100000),
		SavedAmount:  decimal.NewFromInt(100000),
	}
	output, err := s.service.GetSavingRecordedMessage(s.ctx, &GetSavingRecordedMessageInput{
		Goal:   completed,
		Amount: decimal.NewFromInt(5000),
	})
	s.Require().NoError(err)
	s.Contains([]string{"Goal reached!", "Target hit!"}, output.Title)
	s.Contains(output.Message, "₩5,000")

	early := &models.Goal{
		Title:        "Trip",
		TargetAmount: decimal.NewFromInt(1000000),
		SavedAmount:  decimal.NewFromInt(10000),
	}
	output, err = s.service.GetSavingRecordedMessage(s.ctx, &GetSavingRecordedMessageInput{
		Goal:   early,
		Amount: decimal.NewFromInt(10000),
	})
	s.Require().NoError(err)
	s.Contains([]string{"Saved!", "Good start!", "Every bit counts"}, output.Title)
	s.Contains(output.Message, "Trip")

	output, err = s.service.GetSavingRecordedMessage(s.ctx, &GetSavingRecordedMessageInput{
		Amount: decimal.NewFromInt(700),
	})
	s.Require().NoError(err)
	s.Equal("Saved!", output.Title)
	s.Contains(output.Message, "₩700")
}

func (s *MessagingServiceTestSuite) TestLeaderboardPodium() {
	output, err := s.service.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{
		Name: "Mina", Rank: 0, TotalMembers: 5, Total: 1500000,
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "🥇 Mina")
	s.Contains(output.Message, "₩1,500,000")

	output, err = s.service.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{
		Name: "Joon", Rank: 3, TotalMembers: 5, Total: 0,
	})
	s.Require().NoError(err)
	s.Equal("4. Joon: ₩0", output.Message)
}

func (s *MessagingServiceTestSuite) TestErrorMessages() {
	output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeUnauthorized})
	s.Require().NoError(err)
	s.Contains(output.Message, "signed out")
	s.Equal(ToneNeutral, output.Tone)

	output, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "mystery"})
	s.Require().NoError(err)
	s.Equal("Something went wrong. Please try again.", output.Message)
}
