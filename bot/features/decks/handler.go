package decks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"decklab/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// attachmentClient fetches uploaded deck files from Discord's CDN
var attachmentClient = &http.Client{Timeout: 30 * time.Second}

// handleImport stores a deck uploaded as a ydk file attachment
func (f *Feature) handleImport(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to identify you: "+err.Error())
		return
	}

	var name string
	var attachmentID string
	for _, opt := range options {
		switch opt.Name {
		case "name":
			name = opt.StringValue()
		case "file":
			attachmentID = opt.Value.(string)
		}
	}

	attachment, ok := i.ApplicationCommandData().Resolved.Attachments[attachmentID]
	if !ok {
		common.RespondWithError(s, i, "Please attach a .ydk deck file")
		return
	}

	// Fetching the attachment and resolving card metadata can take a
	// while, so defer before doing any work.
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring deck import response: %v", err)
		return
	}

	resp, err := attachmentClient.Get(attachment.URL)
	if err != nil {
		log.WithField("url", attachment.URL).Errorf("Error downloading deck attachment: %v", err)
		common.FollowUpWithError(s, i, "Unable to download the deck file")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		common.FollowUpWithError(s, i, fmt.Sprintf("Unable to download the deck file (status %d)", resp.StatusCode))
		return
	}

	deck, err := f.deckService.ImportDeck(ctx, userID, name, resp.Body)
	if err != nil {
		log.WithFields(log.Fields{
			"userID": userID,
			"name":   name,
		}).Errorf("Error importing deck: %v", err)
		common.FollowUpWithError(s, i, "Unable to import the deck: "+err.Error())
		return
	}

	embed := deckImportedEmbed(deck)
	if _, err := common.FollowUpWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error sending deck import response: %v", err)
	}
}

// handleList shows all decks the user has stored
func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to identify you: "+err.Error())
		return
	}

	summaries, err := f.deckService.ListDecks(ctx, userID)
	if err != nil {
		log.WithField("userID", userID).Errorf("Error listing decks: %v", err)
		common.RespondWithError(s, i, "Unable to list your decks")
		return
	}

	if len(summaries) == 0 {
		common.RespondWithError(s, i, "You have no stored decks yet. Use `/deck import` to add one")
		return
	}

	embed := deckListEmbed(summaries)
	if err := common.RespondWithEmbed(s, i, embed, true); err != nil {
		log.Errorf("Error sending deck list response: %v", err)
	}
}

// handleShow displays the card lists of one stored deck
func (f *Feature) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var deckID int64
	for _, opt := range options {
		if opt.Name == "deck" {
			deckID = opt.IntValue()
		}
	}

	embed, err := f.buildShowEmbed(ctx, deckID)
	if err != nil {
		log.WithField("deckID", deckID).Errorf("Error showing deck: %v", err)
		common.RespondWithError(s, i, err.Error())
		return
	}

	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error sending deck show response: %v", err)
	}
}

// buildShowEmbed loads a deck and its card metadata and renders the
// card-list embed. An id with no stored deck is an error.
func (f *Feature) buildShowEmbed(ctx context.Context, deckID int64) (*discordgo.MessageEmbed, error) {
	deck, err := f.deckService.GetDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("unable to load deck %d: %w", deckID, err)
	}
	if deck == nil {
		return nil, fmt.Errorf("deck %d not found", deckID)
	}

	cards, err := f.cardService.ResolveCards(ctx, allDeckIDs(deck))
	if err != nil {
		return nil, fmt.Errorf("unable to resolve the deck's cards: %w", err)
	}

	return deckShowEmbed(deck, cards), nil
}

// handleDelete removes one of the user's decks
func (f *Feature) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to identify you: "+err.Error())
		return
	}

	var deckID int64
	for _, opt := range options {
		if opt.Name == "deck" {
			deckID = opt.IntValue()
		}
	}

	if err := f.deckService.DeleteDeck(ctx, userID, deckID); err != nil {
		log.WithFields(log.Fields{
			"userID": userID,
			"deckID": deckID,
		}).Errorf("Error deleting deck: %v", err)
		common.RespondWithError(s, i, "Unable to delete the deck: "+err.Error())
		return
	}

	if err := common.RespondWithSuccess(s, i, fmt.Sprintf("Deleted deck #%d", deckID), true); err != nil {
		log.Errorf("Error sending deck delete response: %v", err)
	}
}
