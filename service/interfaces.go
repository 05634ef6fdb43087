package service

import (
	"context"
	"io"

	"decklab/events"
	"decklab/models"
	"decklab/probability"
)

// CardRepository defines the interface for the card metadata cache
type CardRepository interface {
	// GetByIDs retrieves cached cards for the given ids; missing ids are
	// simply absent from the result
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error)

	// GetByName retrieves a cached card by exact name, case-insensitive
	GetByName(ctx context.Context, name string) (*models.Card, error)

	// Upsert inserts or refreshes cached card metadata
	Upsert(ctx context.Context, cards []*models.Card) error
}

// DeckRepository defines the interface for stored deck access
type DeckRepository interface {
	// Create stores a new deck and fills in its generated fields
	Create(ctx context.Context, deck *models.Deck) error

	// GetByID retrieves a deck by its ID
	GetByID(ctx context.Context, id int64) (*models.Deck, error)

	// GetByOwner returns all decks owned by a Discord user
	GetByOwner(ctx context.Context, ownerDiscordID int64) ([]*models.Deck, error)

	// Update replaces the card lists and name of an existing deck
	Update(ctx context.Context, deck *models.Deck) error

	// Delete removes a deck
	Delete(ctx context.Context, id int64) error
}

// MatchRepository defines the interface for the tournament log
type MatchRepository interface {
	// Create stores a round result
	Create(ctx context.Context, match *models.Match) error

	// GetByPlayerAndTournament returns a player's results in round order
	GetByPlayerAndTournament(ctx context.Context, playerDiscordID int64, tournamentName string) ([]*models.Match, error)

	// DeleteTournament drops a player's log for one tournament
	DeleteTournament(ctx context.Context, playerDiscordID int64, tournamentName string) error
}

// EventPublisher defines the interface for publishing events within a
// unit of work
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork bundles the repositories behind a single transaction
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CardRepository() CardRepository
	DeckRepository() DeckRepository
	MatchRepository() MatchRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// CardFetcher defines the interface to the remote card metadata API
type CardFetcher interface {
	// FetchCards looks up metadata for the given card ids
	FetchCards(ctx context.Context, ids []int64) ([]*models.Card, error)
}

// CardService defines the interface for card metadata operations
type CardService interface {
	// ResolveCards returns metadata for the given ids, fetching and
	// caching whatever the local cache is missing
	ResolveCards(ctx context.Context, ids []int64) (map[int64]*models.Card, error)

	// FindByName returns a cached card by name, or nil when unknown
	FindByName(ctx context.Context, name string) (*models.Card, error)
}

// DeckService defines the interface for deck operations
type DeckService interface {
	// ImportDeck parses a ydk deck list, resolves its card metadata and
	// stores the deck
	ImportDeck(ctx context.Context, ownerDiscordID int64, name string, r io.Reader) (*models.Deck, error)

	// ListDecks returns summaries of a user's stored decks
	ListDecks(ctx context.Context, ownerDiscordID int64) ([]*models.DeckSummary, error)

	// GetDeck returns a stored deck by id
	GetDeck(ctx context.Context, deckID int64) (*models.Deck, error)

	// DeleteDeck removes a deck, verifying ownership
	DeleteDeck(ctx context.Context, ownerDiscordID, deckID int64) error

	// DrawTable computes the opening-hand odds table for one card of a
	// stored deck, identified by name
	DrawTable(ctx context.Context, deckID int64, cardName string, handSize int) ([]probability.DrawRow, error)

	// SolveDeckConstraints computes the chance that an opening hand
	// satisfies every named card-count constraint simultaneously
	SolveDeckConstraints(ctx context.Context, deckID int64, constraints []CardConstraint, handSize int) (float64, error)
}

// CardConstraint is a per-card [min,max] opening-hand bound, matched by
// card name against the deck's resolved metadata
type CardConstraint struct {
	CardName string
	Min      int
	Max      int
}

// TournamentService defines the interface for tournament log operations
type TournamentService interface {
	// RecordMatch logs one round result for a player
	RecordMatch(ctx context.Context, playerDiscordID int64, tournamentName string, round int, won bool) (*models.Match, error)

	// PlayerRecord returns a player's aggregated record in a tournament
	PlayerRecord(ctx context.Context, playerDiscordID int64, tournamentName string) (*models.Record, error)

	// ResetTournament drops a player's log for one tournament so the
	// results can be re-recorded
	ResetTournament(ctx context.Context, playerDiscordID int64, tournamentName string) error

	// Standings returns the idealized Swiss field distribution
	Standings(numPlayers, numRounds int) []probability.SwissStanding

	// TopCutProbability estimates a player's chance of finishing inside
	// the cut from their stored record
	TopCutProbability(ctx context.Context, playerDiscordID int64, tournamentName string, totalPlayers, totalRounds, targetRank int) (*models.TopCutResult, error)
}
