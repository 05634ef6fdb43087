package tournament

import (
	"decklab/bot/common"
	"decklab/service"

	"github.com/bwmarrin/discordgo"
)

// Feature represents the tournament tracking feature
type Feature struct {
	tournamentService service.TournamentService
}

// NewFeature creates a new tournament tracking feature instance
func NewFeature(tournamentService service.TournamentService) *Feature {
	return &Feature{
		tournamentService: tournamentService,
	}
}

// HandleCommand handles the /tournament command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: record, reset, standings or topcut")
		return
	}

	switch options[0].Name {
	case "record":
		f.handleRecord(s, i, options[0].Options)
	case "reset":
		f.handleReset(s, i, options[0].Options)
	case "standings":
		f.handleStandings(s, i, options[0].Options)
	case "topcut":
		f.handleTopCut(s, i, options[0].Options)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}
