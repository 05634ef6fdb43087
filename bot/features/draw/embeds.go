package draw

import (
	"fmt"
	"strings"

	"decklab/bot/common"
	"decklab/probability"
	"decklab/service"

	"github.com/bwmarrin/discordgo"
)

// drawTableEmbed renders the per-copy odds table
func drawTableEmbed(cardName string, handSize int, rows []probability.DrawRow) *discordgo.MessageEmbed {
	var table strings.Builder
	table.WriteString(fmt.Sprintf("%-8s %-10s %s\n", "Copies", "Exactly", "At least"))
	table.WriteString(strings.Repeat("-", 30) + "\n")
	for _, row := range rows {
		table.WriteString(fmt.Sprintf("%-8d %-10s %s\n",
			row.Copies,
			common.FormatPercent(row.ExactPercent),
			common.FormatPercent(row.AtLeastPercent)))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎴 Opening hand odds: %s", cardName),
		Description: common.CodeBlock(table.String()),
		Color:       0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Hand size: %d", handSize),
		},
	}
}

// oddsEmbed renders the result of a multi-card constraint query
func oddsEmbed(constraints []service.CardConstraint, handSize int, percent float64) *discordgo.MessageEmbed {
	var lines []string
	for _, c := range constraints {
		if c.Min == c.Max {
			lines = append(lines, fmt.Sprintf("• exactly %d × %s", c.Min, c.CardName))
		} else {
			lines = append(lines, fmt.Sprintf("• %d to %d × %s", c.Min, c.Max, c.CardName))
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "🎲 Combined opening hand odds",
		Description: strings.Join(lines, "\n"),
		Color:       0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Probability",
				Value:  "**" + common.FormatPercent(percent) + "**",
				Inline: true,
			},
			{
				Name:   "Hand size",
				Value:  fmt.Sprintf("%d", handSize),
				Inline: true,
			},
		},
	}
}
