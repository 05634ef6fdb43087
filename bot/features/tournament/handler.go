package tournament

import (
	"context"
	"fmt"

	"decklab/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleRecord logs one round result for the invoking player
func (f *Feature) handleRecord(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to identify you: "+err.Error())
		return
	}

	var tournamentName string
	var round int
	var won bool
	for _, opt := range options {
		switch opt.Name {
		case "tournament":
			tournamentName = opt.StringValue()
		case "round":
			round = int(opt.IntValue())
		case "won":
			won = opt.BoolValue()
		}
	}

	match, err := f.tournamentService.RecordMatch(ctx, userID, tournamentName, round, won)
	if err != nil {
		log.WithFields(log.Fields{
			"userID":     userID,
			"tournament": tournamentName,
			"round":      round,
		}).Errorf("Error recording match: %v", err)
		common.RespondWithError(s, i, "Unable to record the match: "+err.Error())
		return
	}

	record, err := f.tournamentService.PlayerRecord(ctx, userID, tournamentName)
	if err != nil {
		log.WithFields(log.Fields{
			"userID":     userID,
			"tournament": tournamentName,
		}).Errorf("Error loading player record: %v", err)
		common.RespondWithError(s, i, "Match recorded, but loading your record failed")
		return
	}

	embed := matchRecordedEmbed(match, record)
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error sending match record response: %v", err)
	}
}

// handleReset drops the invoking player's log for one tournament
func (f *Feature) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to identify you: "+err.Error())
		return
	}

	var tournamentName string
	for _, opt := range options {
		if opt.Name == "tournament" {
			tournamentName = opt.StringValue()
		}
	}

	if err := f.tournamentService.ResetTournament(ctx, userID, tournamentName); err != nil {
		log.WithFields(log.Fields{
			"userID":     userID,
			"tournament": tournamentName,
		}).Errorf("Error resetting tournament: %v", err)
		common.RespondWithError(s, i, "Unable to reset the tournament: "+err.Error())
		return
	}

	if err := common.RespondWithSuccess(s, i, fmt.Sprintf("Cleared your results for **%s**", tournamentName), true); err != nil {
		log.Errorf("Error sending tournament reset response: %v", err)
	}
}

// handleStandings shows the idealized Swiss field distribution
func (f *Feature) handleStandings(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var numPlayers, numRounds int
	for _, opt := range options {
		switch opt.Name {
		case "players":
			numPlayers = int(opt.IntValue())
		case "rounds":
			numRounds = int(opt.IntValue())
		}
	}

	standings := f.tournamentService.Standings(numPlayers, numRounds)
	if len(standings) == 0 {
		common.RespondWithError(s, i, "Players and rounds must both be positive")
		return
	}

	embed := standingsEmbed(numPlayers, numRounds, standings)
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error sending standings response: %v", err)
	}
}

// handleTopCut estimates the invoking player's chance of making the cut
func (f *Feature) handleTopCut(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to identify you: "+err.Error())
		return
	}

	var tournamentName string
	var totalPlayers, totalRounds, targetRank int
	for _, opt := range options {
		switch opt.Name {
		case "tournament":
			tournamentName = opt.StringValue()
		case "players":
			totalPlayers = int(opt.IntValue())
		case "rounds":
			totalRounds = int(opt.IntValue())
		case "cut":
			targetRank = int(opt.IntValue())
		}
	}

	result, err := f.tournamentService.TopCutProbability(ctx, userID, tournamentName, totalPlayers, totalRounds, targetRank)
	if err != nil {
		log.WithFields(log.Fields{
			"userID":     userID,
			"tournament": tournamentName,
		}).Errorf("Error estimating top cut probability: %v", err)
		common.RespondWithError(s, i, fmt.Sprintf("Unable to estimate your top %d chances: %s", targetRank, err.Error()))
		return
	}

	embed := topCutEmbed(result, totalPlayers, totalRounds)
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Error sending top cut response: %v", err)
	}
}
