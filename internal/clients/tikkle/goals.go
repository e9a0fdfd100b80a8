package tikkle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/shopspring/decimal"
)

const defaultLogPageSize = 10

var hundred = decimal.NewFromInt(100)

// goalDTO covers both goal shapes the server has shipped
type goalDTO struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	TargetAmount  decimal.Decimal  `json:"targetAmount"`
	TotalSaved    *decimal.Decimal `json:"totalSaved"`
	ProgressPct   *decimal.Decimal `json:"progressPct"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	ImageURL      string           `json:"imageUrl"`
	CreatedAt     string           `json:"createdAt"`
}

// toGoal derives the saved amount from whichever field the server sent
func (d *goalDTO) toGoal() *models.Goal {
	saved := decimal.Zero
	switch {
	case d.TotalSaved != nil:
		saved = *d.TotalSaved
	case d.ProgressPct != nil:
		saved = d.ProgressPct.Div(hundred).Mul(d.TargetAmount).Round(0)
	case d.CurrentAmount != nil:
		saved = *d.CurrentAmount
	}

	return &models.Goal{
		ID:           d.ID,
		Title:        d.Title,
		TargetAmount: d.TargetAmount,
		SavedAmount:  saved,
		ImageURL:     d.ImageURL,
		CreatedAt:    d.CreatedAt,
	}
}

// ListGoals fetches GET /api/goals
func (c *client) ListGoals(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	var dtos []*goalDTO
	if err := c.do(ctx, http.MethodGet, "/api/goals", nil, &dtos); err != nil {
		return nil, err
	}

	goals := make([]*models.Goal, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		goals = append(goals, dto.toGoal())
	}

	return &ListGoalsOutput{
		Goals: goals,
	}, nil
}

// GetGoal fetches GET /api/goals/{id}
func (c *client) GetGoal(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GoalID <= 0 {
		return nil, ErrInvalidID
	}

	var dto goalDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/goals/%d", input.GoalID), nil, &dto); err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: dto.toGoal(),
	}, nil
}

// CreateGoal posts to /api/goals. The server has answered with the goal,
// or with the whole goal list; both are accepted.
func (c *client) CreateGoal(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := c.validateInput(input); err != nil {
		return nil, err
	}
	if !input.TargetAmount.IsPositive() {
		return nil, ErrNonPositiveMoney
	}

	body := struct {
		Title        string      `json:"title"`
		TargetAmount json.Number `json:"targetAmount"`
	}{
		Title:        input.Title,
		TargetAmount: json.Number(input.TargetAmount.String()),
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/goals", body, &raw); err != nil {
		return nil, err
	}

	output := &CreateGoalOutput{}

	var single goalDTO
	if err := json.Unmarshal(raw, &single); err == nil {
		output.Goal = single.toGoal()
		return output, nil
	}

	var list []*goalDTO
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] != nil && list[i].Title == input.Title {
			output.Goal = list[i].toGoal()
			break
		}
	}

	return output, nil
}

// ListSavingsLogs fetches GET /api/goals/{id}/logs
func (c *client) ListSavingsLogs(ctx context.Context, input *ListSavingsLogsInput) (*ListSavingsLogsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GoalID <= 0 {
		return nil, ErrInvalidID
	}
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	size := input.Size
	if size == 0 {
		size = defaultLogPageSize
	}

	var page models.Page[*models.SavingsLog]
	path := fmt.Sprintf("/api/goals/%d/logs?page=%d&size=%d", input.GoalID, input.Page, size)
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}

	return &ListSavingsLogsOutput{
		Page: &page,
	}, nil
}

// AddSavingsLog posts to /api/savings-logs
func (c *client) AddSavingsLog(ctx context.Context, input *AddSavingsLogInput) (*AddSavingsLogOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := c.validateInput(input); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, ErrNonPositiveMoney
	}

	body := struct {
		GoalID int64       `json:"goalId"`
		Amount json.Number `json:"amount"`
		Memo   string      `json:"memo,omitempty"`
	}{
		GoalID: input.GoalID,
		Amount: json.Number(input.Amount.String()),
		Memo:   input.Memo,
	}

	var log models.SavingsLog
	if err := c.do(ctx, http.MethodPost, "/api/savings-logs", body, &log); err != nil {
		return nil, err
	}

	return &AddSavingsLogOutput{
		Log: &log,
	}, nil
}
