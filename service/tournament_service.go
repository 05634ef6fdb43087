package service

import (
	"context"
	"fmt"

	"decklab/events"
	"decklab/models"
	"decklab/probability"
)

type tournamentService struct {
	uowFactory UnitOfWorkFactory
	calc       *probability.Calculator
}

// NewTournamentService creates a new tournament service
func NewTournamentService(uowFactory UnitOfWorkFactory, calc *probability.Calculator) TournamentService {
	return &tournamentService{
		uowFactory: uowFactory,
		calc:       calc,
	}
}

func (s *tournamentService) RecordMatch(ctx context.Context, playerDiscordID int64, tournamentName string, round int, won bool) (*models.Match, error) {
	if tournamentName == "" {
		return nil, fmt.Errorf("tournament name must not be empty")
	}
	if round <= 0 {
		return nil, fmt.Errorf("round must be positive")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	match := &models.Match{
		PlayerDiscordID: playerDiscordID,
		TournamentName:  tournamentName,
		Round:           round,
		Won:             won,
	}
	if err := uow.MatchRepository().Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to record match: %w", err)
	}

	uow.EventBus().Publish(events.MatchRecordedEvent{
		MatchID:         match.ID,
		PlayerDiscordID: playerDiscordID,
		TournamentName:  tournamentName,
		Round:           round,
		Won:             won,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return match, nil
}

func (s *tournamentService) PlayerRecord(ctx context.Context, playerDiscordID int64, tournamentName string) (*models.Record, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	matches, err := uow.MatchRepository().GetByPlayerAndTournament(ctx, playerDiscordID, tournamentName)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament log: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	record := &models.Record{}
	for _, match := range matches {
		if match.Won {
			record.Wins++
		} else {
			record.Losses++
		}
	}

	return record, nil
}

func (s *tournamentService) ResetTournament(ctx context.Context, playerDiscordID int64, tournamentName string) error {
	if tournamentName == "" {
		return fmt.Errorf("tournament name must not be empty")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.MatchRepository().DeleteTournament(ctx, playerDiscordID, tournamentName); err != nil {
		return fmt.Errorf("failed to reset tournament: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *tournamentService) Standings(numPlayers, numRounds int) []probability.SwissStanding {
	return s.calc.SwissStandings(numPlayers, numRounds)
}

func (s *tournamentService) TopCutProbability(ctx context.Context, playerDiscordID int64, tournamentName string, totalPlayers, totalRounds, targetRank int) (*models.TopCutResult, error) {
	record, err := s.PlayerRecord(ctx, playerDiscordID, tournamentName)
	if err != nil {
		return nil, err
	}

	percent := s.calc.TopRankProbability(totalPlayers, totalRounds, targetRank, record.Wins, record.Losses)

	remaining := totalRounds - (record.Wins + record.Losses)
	if remaining < 0 {
		remaining = 0
	}

	return &models.TopCutResult{
		TournamentName:  tournamentName,
		Wins:            record.Wins,
		Losses:          record.Losses,
		RemainingRounds: remaining,
		TargetRank:      targetRank,
		Percent:         percent,
	}, nil
}
