package draw

import (
	"context"

	"decklab/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleTable computes the per-copy odds table for one card of a deck
func (f *Feature) handleTable(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var deckID int64
	var cardName string
	handSize := f.defaultHandSize

	for _, opt := range options {
		switch opt.Name {
		case "deck":
			deckID = opt.IntValue()
		case "card":
			cardName = opt.StringValue()
		case "hand":
			handSize = int(opt.IntValue())
		}
	}

	rows, err := f.deckService.DrawTable(ctx, deckID, cardName, handSize)
	if err != nil {
		log.WithFields(log.Fields{
			"deckID": deckID,
			"card":   cardName,
		}).Errorf("Error building draw table: %v", err)
		common.RespondWithError(s, i, "Unable to build the draw table: "+err.Error())
		return
	}

	embed := drawTableEmbed(cardName, handSize, rows)
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error sending draw table response: %v", err)
	}
}

// handleOdds evaluates a multi-card constraint spec against a deck
func (f *Feature) handleOdds(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var deckID int64
	var spec string
	handSize := f.defaultHandSize

	for _, opt := range options {
		switch opt.Name {
		case "deck":
			deckID = opt.IntValue()
		case "spec":
			spec = opt.StringValue()
		case "hand":
			handSize = int(opt.IntValue())
		}
	}

	constraints, err := ParseConstraints(spec)
	if err != nil {
		common.RespondWithError(s, i, "Invalid constraint spec: "+err.Error())
		return
	}

	percent, err := f.deckService.SolveDeckConstraints(ctx, deckID, constraints, handSize)
	if err != nil {
		log.WithFields(log.Fields{
			"deckID": deckID,
			"spec":   spec,
		}).Errorf("Error solving constraints: %v", err)
		common.RespondWithError(s, i, "Unable to compute the odds: "+err.Error())
		return
	}

	embed := oddsEmbed(constraints, handSize, percent)
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error sending odds response: %v", err)
	}
}
