package decks

import (
	"fmt"
	"strings"

	"decklab/bot/common"
	"decklab/models"

	"github.com/bwmarrin/discordgo"
)

// deckImportedEmbed confirms a successful import
func deckImportedEmbed(deck *models.Deck) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📥 Imported deck: %s", deck.Name),
		Description: fmt.Sprintf("Stored as deck #%d", deck.ID),
		Color:       0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Main", Value: fmt.Sprintf("%d cards", len(deck.Main)), Inline: true},
			{Name: "Extra", Value: fmt.Sprintf("%d cards", len(deck.Extra)), Inline: true},
			{Name: "Side", Value: fmt.Sprintf("%d cards", len(deck.Side)), Inline: true},
		},
	}
}

// deckListEmbed renders a user's stored decks as a fixed-width table
func deckListEmbed(summaries []*models.DeckSummary) *discordgo.MessageEmbed {
	var table strings.Builder
	table.WriteString(fmt.Sprintf("%-6s %-24s %-5s %-6s %s\n", "ID", "Name", "Main", "Extra", "Side"))
	table.WriteString(strings.Repeat("-", 48) + "\n")
	for _, s := range summaries {
		table.WriteString(fmt.Sprintf("%-6d %-24s %-5d %-6d %d\n",
			s.ID,
			common.TruncateName(s.Name, 24),
			s.MainSize,
			s.ExtraSize,
			s.SideSize))
	}

	return &discordgo.MessageEmbed{
		Title:       "🗂️ Your decks",
		Description: common.CodeBlock(table.String()),
		Color:       0x3498db,
	}
}

// deckShowEmbed renders the full card lists of a deck, one section per
// field, with copy counts collapsed
func deckShowEmbed(deck *models.Deck, cards map[int64]*models.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎴 %s", deck.Name),
		Color: 0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Deck #%d", deck.ID),
		},
	}

	sections := []struct {
		name string
		ids  []int64
	}{
		{"Main", deck.Main},
		{"Extra", deck.Extra},
		{"Side", deck.Side},
	}

	for _, section := range sections {
		if len(section.ids) == 0 {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%d)", section.name, len(section.ids)),
			Value: formatSection(section.ids, cards),
		})
	}

	return embed
}

// formatSection collapses a card id list into "Nx Name" lines, keeping
// first-seen order
func formatSection(ids []int64, cards map[int64]*models.Card) string {
	counts := make(map[int64]int)
	var order []int64
	for _, id := range ids {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var lines []string
	for _, id := range order {
		name := fmt.Sprintf("#%d", id)
		if card, ok := cards[id]; ok {
			name = card.Name
		}
		lines = append(lines, fmt.Sprintf("%dx %s", counts[id], name))
	}
	return strings.Join(lines, "\n")
}

// allDeckIDs returns the distinct card ids across a stored deck's
// sections
func allDeckIDs(deck *models.Deck) []int64 {
	list := models.DeckList{Main: deck.Main, Extra: deck.Extra, Side: deck.Side}
	return list.AllIDs()
}
