package models

import "time"

// Match represents one recorded round result in a player's tournament log.
type Match struct {
	ID              int64     `db:"id"`
	PlayerDiscordID int64     `db:"player_discord_id"`
	TournamentName  string    `db:"tournament_name"`
	Round           int       `db:"round"`
	Won             bool      `db:"won"`
	CreatedAt       time.Time `db:"created_at"`
}

// Record is a player's aggregated win/loss tally in one tournament.
type Record struct {
	Wins   int
	Losses int
}

// TopCutResult is the outcome of a qualification estimate (returned to
// the user).
type TopCutResult struct {
	TournamentName  string
	Wins            int
	Losses          int
	RemainingRounds int
	TargetRank      int
	Percent         float64
}
