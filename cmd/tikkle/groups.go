package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	"github.com/KirkDiggler/tikkle/internal/services/ranking"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func (a *app) listGroups(c *cli.Context) error {
	output, err := a.ranking.MyGroups(c.Context, &ranking.MyGroupsInput{})
	if err != nil {
		return err
	}

	return a.render(output.Groups, func(w *tabwriter.Writer) {
		writeGroups(w, output.Groups)
	})
}

func writeGroups(w *tabwriter.Writer, groups []*models.RankGroup) {
	row(w, "ID", "NAME")
	for _, group := range groups {
		row(w, fmt.Sprint(group.ID), group.Name)
	}
}

func (a *app) leaderboard(c *cli.Context) error {
	groupID, err := parseID(c.Args().First(), "group id")
	if err != nil {
		return err
	}

	output, err := a.ranking.Leaderboard(c.Context, &ranking.LeaderboardInput{GroupID: groupID})
	if err != nil {
		return err
	}

	return a.render(output, func(w *tabwriter.Writer) {
		row(w, "RANK", "NAME", "TOTAL", "LAST 30 DAYS")
		for i, member := range output.Rows {
			row(w,
				fmt.Sprint(i+1),
				member.Name,
				models.FormatWon(decimal.NewFromInt(member.Total)),
				models.FormatWon(decimal.NewFromInt(member.Last30d)),
			)
		}

		if len(output.Rows) == 0 {
			return
		}
		msg, err := a.messaging.GetLeaderboardMessage(c.Context, &messaging.GetLeaderboardMessageInput{
			Name:         output.Rows[0].Name,
			Total:        output.Rows[0].Total,
			Rank:         0,
			TotalMembers: len(output.Rows),
		})
		if err == nil {
			row(w)
			row(w, msg.Message)
		}
	})
}

func (a *app) createGroup(c *cli.Context) error {
	name := strings.Join(c.Args().Slice(), " ")

	output, err := a.ranking.CreateGroup(c.Context, &ranking.CreateGroupInput{Name: name})
	if err != nil {
		return err
	}

	return a.render(output.Group, func(w *tabwriter.Writer) {
		writeGroups(w, []*models.RankGroup{output.Group})
	})
}

func (a *app) joinGroup(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("usage: tikkle groups join <code-or-link>")
	}

	output, err := a.ranking.JoinByCode(c.Context, &ranking.JoinByCodeInput{Code: c.Args().First()})
	if err != nil {
		return err
	}

	return a.render(output.Group, func(w *tabwriter.Writer) {
		writeGroups(w, []*models.RankGroup{output.Group})
	})
}

func (a *app) invite(c *cli.Context) error {
	groupID, err := parseID(c.Args().First(), "group id")
	if err != nil {
		return err
	}

	output, err := a.ranking.CreateInvite(c.Context, &ranking.CreateInviteInput{
		GroupID:  groupID,
		TTLHours: c.Int("ttl-hours"),
		MaxUses:  c.Int("max-uses"),
	})
	if err != nil {
		return err
	}

	return a.render(output, func(w *tabwriter.Writer) {
		row(w, "LINK", output.URL)
		row(w, "CODE", output.Invite.Code)
		if output.ExpiresIn > 0 {
			row(w, "EXPIRES IN", output.ExpiresIn.Round(time.Second).String())
		}
	})
}

func (a *app) leaveGroup(c *cli.Context) error {
	groupID, err := parseID(c.Args().First(), "group id")
	if err != nil {
		return err
	}

	if err := a.ranking.LeaveGroup(c.Context, &ranking.LeaveGroupInput{GroupID: groupID}); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, "Left the group.")
	return err
}
