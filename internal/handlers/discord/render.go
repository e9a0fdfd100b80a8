package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorEarned = 0xF5B700
	colorLocked = 0x8C8C8C
	colorGoals  = 0x2ECC71
	colorError  = 0xE74C3C
)

const (
	badgeFooter   = "Press Close to dismiss"
	maxEmbedField = 25
	progressWidth = 10
)

// RenderBadgeAnnouncement builds the embed shown for a newly earned badge
func RenderBadgeAnnouncement(badge *models.Badge, headline, body string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       headline,
		Description: body,
		Color:       colorLocked,
		Footer: &discordgo.MessageEmbedFooter{
			Text: badgeFooter,
		},
	}

	title := strings.TrimSpace(badge.Icon + " " + badge.Title)
	if badge.Earned {
		embed.Color = colorEarned
		title += "  ·  earned!"
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Badge", Value: title},
	}

	if earnedAt := badge.EarnedAtValue(); earnedAt != "" {
		// Discord renders the embed timestamp in the reader's timezone
		embed.Timestamp = earnedAt
	}

	if strings.HasPrefix(badge.Icon, "http://") || strings.HasPrefix(badge.Icon, "https://") {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: badge.Icon}
		embed.Fields[0].Value = strings.TrimSpace(strings.TrimPrefix(title, badge.Icon))
	}

	return embed
}

// RenderCloseButton builds the action row carrying the close button
func RenderCloseButton() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Close",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonCloseBadge,
				},
			},
		},
	}
}

// RenderBadgeList builds an embed listing every badge with its status
func RenderBadgeList(badges []*models.Badge) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Badges",
		Color: colorEarned,
	}

	if len(badges) == 0 {
		embed.Description = "No badges yet."
		return embed
	}

	earned := 0
	for _, badge := range badges {
		if badge.Earned {
			earned++
		}
		if len(embed.Fields) == maxEmbedField {
			continue
		}

		status := "🔒 locked"
		if badge.Earned {
			status = "✅ earned"
		}

		value := status
		if badge.Description != "" {
			value = fmt.Sprintf("%s\n%s", status, badge.Description)
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   strings.TrimSpace(badge.Icon + " " + badge.Title),
			Value:  value,
			Inline: true,
		})
	}

	embed.Description = fmt.Sprintf("%d of %d earned", earned, len(badges))
	return embed
}

// RenderGoals builds an embed with progress bars for each goal
func RenderGoals(goals []*models.Goal, totalSaved, totalTarget string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Savings goals",
		Color: colorGoals,
	}

	if len(goals) == 0 {
		embed.Description = "No goals yet. Create one with `tikkle goals create`."
		return embed
	}

	embed.Description = fmt.Sprintf("Saved %s of %s", totalSaved, totalTarget)

	for i, goal := range goals {
		if i == maxEmbedField {
			break
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: goal.Title,
			Value: fmt.Sprintf("%s %s%%\n%s / %s",
				models.ProgressBar(goal.ProgressPercent().IntPart(), progressWidth),
				goal.ProgressPercent(),
				models.FormatWon(goal.SavedAmount),
				models.FormatWon(goal.TargetAmount),
			),
		})
	}

	return embed
}
