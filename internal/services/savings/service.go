package savings

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	client  tikkle.Client
	scanner BadgeScanner
	logger  *zap.Logger
}

// NewService creates a new savings service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		client:  cfg.Client,
		scanner: cfg.Scanner,
		logger:  logger.Named("savings"),
	}, nil
}

// Summary fetches goals and badges concurrently
func (s *service) Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	var (
		goals  *tikkle.ListGoalsOutput
		badges *tikkle.ListBadgesOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = s.client.ListGoals(gctx, &tikkle.ListGoalsInput{})
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		badges, err = s.client.ListBadges(gctx, &tikkle.ListBadgesInput{})
		if err != nil {
			return fmt.Errorf("failed to list badges: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	output := &SummaryOutput{
		Goals:       goals.Goals,
		TotalSaved:  decimal.Zero,
		TotalTarget: decimal.Zero,
	}

	for _, goal := range goals.Goals {
		output.TotalSaved = output.TotalSaved.Add(goal.SavedAmount)
		output.TotalTarget = output.TotalTarget.Add(goal.TargetAmount)
	}

	output.EarnedBadges = EarnedBadges(badges.Badges)

	return output, nil
}

// ListGoals returns the user's goals
func (s *service) ListGoals(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	output, err := s.client.ListGoals(ctx, &tikkle.ListGoalsInput{})
	if err != nil {
		return nil, err
	}

	return &ListGoalsOutput{
		Goals: output.Goals,
	}, nil
}

// GetGoal fetches the goal and a page of its entries concurrently
func (s *service) GetGoal(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GoalID <= 0 {
		return nil, ErrInvalidGoalID
	}

	var (
		goal *tikkle.GetGoalOutput
		logs *tikkle.ListSavingsLogsOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goal, err = s.client.GetGoal(gctx, &tikkle.GetGoalInput{GoalID: input.GoalID})
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.client.ListSavingsLogs(gctx, &tikkle.ListSavingsLogsInput{
			GoalID: input.GoalID,
			Page:   input.Page,
			Size:   input.Size,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load goal %d: %w", input.GoalID, err)
	}

	return &GetGoalOutput{
		Goal: goal.Goal,
		Logs: logs.Page,
	}, nil
}

// CreateGoal creates a goal
func (s *service) CreateGoal(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	if !input.TargetAmount.IsPositive() {
		return nil, ErrNonPositiveMoney
	}

	output, err := s.client.CreateGoal(ctx, &tikkle.CreateGoalInput{
		Title:        title,
		TargetAmount: input.TargetAmount,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("goal created", zap.String("title", title))

	return &CreateGoalOutput{
		Goal: output.Goal,
	}, nil
}

// RecordSaving records an entry, refreshes the goal and asks for a badge
// scan. The scan is not run when the entry fails.
func (s *service) RecordSaving(ctx context.Context, input *RecordSavingInput) (*RecordSavingOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GoalID <= 0 {
		return nil, ErrInvalidGoalID
	}

	if !input.Amount.IsPositive() {
		return nil, ErrNonPositiveMoney
	}

	added, err := s.client.AddSavingsLog(ctx, &tikkle.AddSavingsLogInput{
		GoalID: input.GoalID,
		Amount: input.Amount,
		Memo:   strings.TrimSpace(input.Memo),
	})
	if err != nil {
		return nil, err
	}

	output := &RecordSavingOutput{
		Log: added.Log,
	}

	goal, err := s.client.GetGoal(ctx, &tikkle.GetGoalInput{GoalID: input.GoalID})
	if err != nil {
		s.logger.Warn("goal refresh failed after saving",
			zap.Int64("goal_id", input.GoalID),
			zap.Error(err),
		)
	} else {
		output.Goal = goal.Goal
	}

	if s.scanner != nil {
		s.scanner.TriggerScan(ctx)
	}

	return output, nil
}

// EarnedBadges filters a badge list down to earned badges
func EarnedBadges(badges []*models.Badge) []*models.Badge {
	var earned []*models.Badge
	for _, badge := range badges {
		if badge.Earned {
			earned = append(earned, badge)
		}
	}
	return earned
}
