package main

import (
	"github.com/urfave/cli/v2"
)

// Global flags
const (
	flagAPIURL   = "api-url"
	flagSession  = "session"
	flagProfile  = "profile"
	flagStorage  = "storage"
	flagOutput   = "output"
	flagLogLevel = "log-level"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

func (a *app) cli() *cli.App {
	app := cli.NewApp()
	app.Name = "tikkle"
	app.Usage = "Save a little at a time, and get a badge for it"
	app.Writer = a.out
	app.Before = a.before
	app.After = a.after
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: flagAPIURL, Usage: "savings server origin (TIKKLE_API_URL)"},
		&cli.StringFlag{Name: flagSession, Usage: "session cookie value (TIKKLE_SESSION)"},
		&cli.StringFlag{Name: flagProfile, Usage: "profile the seen badges are kept under (TIKKLE_PROFILE)"},
		&cli.StringFlag{Name: flagStorage, Usage: "file, redis or memory (TIKKLE_STORAGE)"},
		&cli.StringFlag{Name: flagOutput, Aliases: []string{"o"}, Value: outputTable, Usage: "table or yaml"},
		&cli.StringFlag{Name: flagLogLevel, Usage: "debug, info, warn or error (LOG_LEVEL)"},
	}
	app.Commands = []*cli.Command{
		{
			Name:     "me",
			Usage:    "Show the signed-in account",
			Category: "Account",
			Action:   a.me,
		},
		{
			Name:      "login-url",
			Usage:     "Print the social login link",
			ArgsUsage: "<kakao|naver|google>",
			Category:  "Account",
			Action:    a.loginURL,
		},
		{
			Name:     "logout",
			Usage:    "End the server session",
			Category: "Account",
			Action:   a.logout,
		},
		{
			Name:     "goals",
			Usage:    "List and manage savings goals",
			Category: "Savings",
			Action:   a.listGoals,
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "List goals with their progress",
					Action: a.listGoals,
				},
				{
					Name:      "show",
					Usage:     "Show a goal and its savings entries",
					ArgsUsage: "<goal-id>",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "page", Usage: "page of entries, zero-based"},
						&cli.IntFlag{Name: "size", Usage: "entries per page"},
					},
					Action: a.showGoal,
				},
				{
					Name:      "create",
					Usage:     "Create a goal",
					ArgsUsage: "<title> <target-amount>",
					Action:    a.createGoal,
				},
			},
		},
		{
			Name:      "save",
			Usage:     "Record a savings entry and check for new badges",
			ArgsUsage: "<goal-id> <amount>",
			Category:  "Savings",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "memo", Aliases: []string{"m"}, Usage: "what you skipped buying"},
			},
			Action: a.save,
		},
		{
			Name:     "summary",
			Usage:    "Show totals, goals and earned badges",
			Category: "Savings",
			Action:   a.summary,
		},
		{
			Name:     "badges",
			Usage:    "List every badge and whether it is earned",
			Category: "Badges",
			Action:   a.badges,
		},
		{
			Name:     "scan",
			Usage:    "Check once for newly earned badges and show them",
			Category: "Badges",
			Action:   a.scan,
		},
		{
			Name:     "watch",
			Usage:    "Keep checking for new badges until interrupted",
			Category: "Badges",
			Flags: []cli.Flag{
				&cli.DurationFlag{Name: "interval", Usage: "time between scans (TIKKLE_SCAN_INTERVAL)"},
			},
			Action: a.watch,
		},
		{
			Name:     "groups",
			Usage:    "Rank groups and leaderboards",
			Category: "Ranking",
			Action:   a.listGroups,
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "List your groups",
					Action: a.listGroups,
				},
				{
					Name:      "leaderboard",
					Usage:     "Rank a group's members by total saved",
					ArgsUsage: "<group-id>",
					Action:    a.leaderboard,
				},
				{
					Name:      "create",
					Usage:     "Create a group",
					ArgsUsage: "<name>",
					Action:    a.createGroup,
				},
				{
					Name:      "join",
					Usage:     "Join a group with an invite code or link",
					ArgsUsage: "<code-or-link>",
					Action:    a.joinGroup,
				},
				{
					Name:      "invite",
					Usage:     "Create an invite link for a group",
					ArgsUsage: "<group-id>",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "ttl-hours", Usage: "hours the invite stays valid"},
						&cli.IntFlag{Name: "max-uses", Usage: "how many times it can be redeemed"},
					},
					Action: a.invite,
				},
				{
					Name:      "leave",
					Usage:     "Leave a group",
					ArgsUsage: "<group-id>",
					Action:    a.leaveGroup,
				},
			},
		},
		{
			Name:        "bot",
			Usage:       "Run the Discord bot",
			Category:    "Discord",
			Description: "Announces new badges in DISCORD_CHANNEL_ID and serves /tikkle.",
			Action:      a.bot,
		},
	}
	return app
}
