package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	"github.com/KirkDiggler/tikkle/internal/services/savings"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const barWidth = 20

func (a *app) listGoals(c *cli.Context) error {
	svc, err := a.loadSavings(nil)
	if err != nil {
		return err
	}

	output, err := svc.ListGoals(c.Context, &savings.ListGoalsInput{})
	if err != nil {
		return err
	}

	return a.render(output.Goals, func(w *tabwriter.Writer) {
		writeGoals(w, output.Goals)
	})
}

func writeGoals(w *tabwriter.Writer, goals []*models.Goal) {
	row(w, "ID", "TITLE", "SAVED", "TARGET", "PROGRESS")
	for _, goal := range goals {
		row(w,
			fmt.Sprint(goal.ID),
			goal.Title,
			models.FormatWon(goal.SavedAmount),
			models.FormatWon(goal.TargetAmount),
			fmt.Sprintf("%s %s%%", models.ProgressBar(goal.ProgressPercent().IntPart(), barWidth), goal.ProgressPercent()),
		)
	}
}

func (a *app) showGoal(c *cli.Context) error {
	goalID, err := parseID(c.Args().First(), "goal id")
	if err != nil {
		return err
	}

	svc, err := a.loadSavings(nil)
	if err != nil {
		return err
	}

	output, err := svc.GetGoal(c.Context, &savings.GetGoalInput{
		GoalID: goalID,
		Page:   c.Int("page"),
		Size:   c.Int("size"),
	})
	if err != nil {
		return err
	}

	return a.render(output, func(w *tabwriter.Writer) {
		writeGoals(w, []*models.Goal{output.Goal})
		row(w)
		row(w, "DATE", "AMOUNT", "MEMO")
		if output.Logs == nil {
			return
		}
		for _, entry := range output.Logs.Content {
			row(w, entry.CreatedAt, models.FormatWon(entry.Amount), entry.Memo)
		}
		row(w)
		row(w, fmt.Sprintf("page %d of %d", output.Logs.Number+1, output.Logs.TotalPages))
	})
}

func (a *app) createGoal(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("usage: tikkle goals create <title> <target-amount>")
	}

	args := c.Args().Slice()
	title := strings.Join(args[:len(args)-1], " ")
	target, err := parseWon(args[len(args)-1])
	if err != nil {
		return err
	}

	svc, err := a.loadSavings(nil)
	if err != nil {
		return err
	}

	output, err := svc.CreateGoal(c.Context, &savings.CreateGoalInput{
		Title:        title,
		TargetAmount: target,
	})
	if err != nil {
		return err
	}

	return a.render(output.Goal, func(w *tabwriter.Writer) {
		writeGoals(w, []*models.Goal{output.Goal})
	})
}

func (a *app) summary(c *cli.Context) error {
	svc, err := a.loadSavings(nil)
	if err != nil {
		return err
	}

	output, err := svc.Summary(c.Context, &savings.SummaryInput{})
	if err != nil {
		return err
	}

	return a.render(output, func(w *tabwriter.Writer) {
		row(w, "SAVED", models.FormatWon(output.TotalSaved))
		row(w, "TARGET", models.FormatWon(output.TotalTarget))
		row(w)
		writeGoals(w, output.Goals)
		row(w)
		row(w, "EARNED BADGES")
		for _, badge := range output.EarnedBadges {
			row(w, strings.TrimSpace(badge.Icon+" "+badge.Title), badge.EarnedAtValue())
		}
	})
}

// save records the entry with a live announcer so a badge earned by this
// saving is shown before the command exits
func (a *app) save(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("usage: tikkle save <goal-id> <amount>")
	}

	goalID, err := parseID(c.Args().Get(0), "goal id")
	if err != nil {
		return err
	}

	amount, err := parseWon(c.Args().Get(1))
	if err != nil {
		return err
	}

	session, err := a.startTerminalSession(c.Context)
	if err != nil {
		return err
	}
	defer session.stop()

	svc, err := a.loadSavings(session.announcer)
	if err != nil {
		return err
	}

	// taken before the saving so a badge it earns is seen as new
	a.baseline(c.Context, session.announcer)

	output, err := svc.RecordSaving(c.Context, &savings.RecordSavingInput{
		GoalID: goalID,
		Amount: amount,
		Memo:   c.String("memo"),
	})
	if err != nil {
		return err
	}

	msg, err := a.messaging.GetSavingRecordedMessage(c.Context, &messaging.GetSavingRecordedMessageInput{
		Goal:   output.Goal,
		Amount: amount,
	})
	if err != nil {
		a.logger.Debug("saving copy unavailable", zap.Error(err))
	} else {
		fmt.Fprintf(a.out, "%s %s\n", msg.Title, msg.Message)
	}

	return session.drain(c.Context)
}
