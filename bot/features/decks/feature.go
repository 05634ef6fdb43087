package decks

import (
	"decklab/bot/common"
	"decklab/service"

	"github.com/bwmarrin/discordgo"
)

// Feature represents the deck management feature
type Feature struct {
	deckService service.DeckService
	cardService service.CardService
}

// NewFeature creates a new deck management feature instance
func NewFeature(deckService service.DeckService, cardService service.CardService) *Feature {
	return &Feature{
		deckService: deckService,
		cardService: cardService,
	}
}

// HandleCommand handles the /deck command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: import, list, show or delete")
		return
	}

	switch options[0].Name {
	case "import":
		f.handleImport(s, i, options[0].Options)
	case "list":
		f.handleList(s, i)
	case "show":
		f.handleShow(s, i, options[0].Options)
	case "delete":
		f.handleDelete(s, i, options[0].Options)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}
