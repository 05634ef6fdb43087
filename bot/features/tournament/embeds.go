package tournament

import (
	"fmt"
	"strings"

	"decklab/bot/common"
	"decklab/models"
	"decklab/probability"

	"github.com/bwmarrin/discordgo"
)

// matchRecordedEmbed confirms a logged round and shows the running record
func matchRecordedEmbed(match *models.Match, record *models.Record) *discordgo.MessageEmbed {
	outcome := "Loss"
	color := 0xe74c3c
	if match.Won {
		outcome = "Win"
		color = 0x2ecc71
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ Round %d recorded: %s", match.Round, outcome),
		Description: fmt.Sprintf("Tournament: **%s**", match.TournamentName),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Your record",
				Value:  common.FormatRecord(record.Wins, record.Losses),
				Inline: true,
			},
		},
	}
}

// standingsEmbed renders the expected Swiss field distribution
func standingsEmbed(numPlayers, numRounds int, standings []probability.SwissStanding) *discordgo.MessageEmbed {
	var table strings.Builder
	table.WriteString(fmt.Sprintf("%-8s %-10s %s\n", "Record", "Expected", "Range"))
	table.WriteString(strings.Repeat("-", 30) + "\n")
	for _, st := range standings {
		table.WriteString(fmt.Sprintf("%-8s %-10.2f %d-%d\n",
			common.FormatRecord(st.Wins, st.Losses),
			st.ExpectedCount,
			st.LowerBound,
			st.UpperBound))
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Expected Swiss standings",
		Description: common.CodeBlock(table.String()),
		Color:       0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d players, %d rounds", numPlayers, numRounds),
		},
	}
}

// topCutEmbed renders a qualification estimate
func topCutEmbed(result *models.TopCutResult, totalPlayers, totalRounds int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎯 Top %d chances: %s", result.TargetRank, common.FormatPercent(result.Percent)),
		Description: fmt.Sprintf("Tournament: **%s**", result.TournamentName),
		Color:       0x9b59b6,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Current record",
				Value:  common.FormatRecord(result.Wins, result.Losses),
				Inline: true,
			},
			{
				Name:   "Rounds left",
				Value:  fmt.Sprintf("%d", result.RemainingRounds),
				Inline: true,
			},
			{
				Name:   "Field",
				Value:  fmt.Sprintf("%d players, %d rounds", totalPlayers, totalRounds),
				Inline: true,
			},
		},
	}
}
