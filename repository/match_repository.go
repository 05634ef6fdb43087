package repository

import (
	"context"
	"fmt"

	"decklab/database"
	"decklab/models"
)

// MatchRepository implements the tournament log over postgres
type MatchRepository struct {
	q queryable
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{q: db.Pool}
}

// newMatchRepositoryWithTx creates a new match repository with a transaction
func newMatchRepositoryWithTx(tx queryable) *MatchRepository {
	return &MatchRepository{q: tx}
}

// Create stores a round result
func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (player_discord_id, tournament_name, round, won)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		match.PlayerDiscordID,
		match.TournamentName,
		match.Round,
		match.Won,
	).Scan(&match.ID, &match.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record round %d of %q for player %d: %w",
			match.Round, match.TournamentName, match.PlayerDiscordID, err)
	}

	return nil
}

// GetByPlayerAndTournament returns a player's results in round order
func (r *MatchRepository) GetByPlayerAndTournament(ctx context.Context, playerDiscordID int64, tournamentName string) ([]*models.Match, error) {
	query := `
		SELECT id, player_discord_id, tournament_name, round, won, created_at
		FROM matches
		WHERE player_discord_id = $1 AND tournament_name = $2
		ORDER BY round ASC
	`

	rows, err := r.q.Query(ctx, query, playerDiscordID, tournamentName)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches for player %d in %q: %w", playerDiscordID, tournamentName, err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		var match models.Match
		err := rows.Scan(
			&match.ID,
			&match.PlayerDiscordID,
			&match.TournamentName,
			&match.Round,
			&match.Won,
			&match.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, &match)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return matches, nil
}

// DeleteTournament drops a player's log for one tournament
func (r *MatchRepository) DeleteTournament(ctx context.Context, playerDiscordID int64, tournamentName string) error {
	query := `
		DELETE FROM matches
		WHERE player_discord_id = $1 AND tournament_name = $2
	`

	if _, err := r.q.Exec(ctx, query, playerDiscordID, tournamentName); err != nil {
		return fmt.Errorf("failed to delete tournament %q for player %d: %w", tournamentName, playerDiscordID, err)
	}

	return nil
}
