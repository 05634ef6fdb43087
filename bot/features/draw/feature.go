package draw

import (
	"decklab/bot/common"
	"decklab/service"

	"github.com/bwmarrin/discordgo"
)

// Feature represents the draw-odds feature
type Feature struct {
	deckService     service.DeckService
	defaultHandSize int
}

// NewFeature creates a new draw-odds feature instance
func NewFeature(deckService service.DeckService, defaultHandSize int) *Feature {
	return &Feature{
		deckService:     deckService,
		defaultHandSize: defaultHandSize,
	}
}

// HandleCommand handles the /draw command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: table or odds")
		return
	}

	switch options[0].Name {
	case "table":
		f.handleTable(s, i, options[0].Options)
	case "odds":
		f.handleOdds(s, i, options[0].Options)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}
