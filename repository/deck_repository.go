package repository

import (
	"context"
	"fmt"

	"decklab/database"
	"decklab/models"
	"github.com/jackc/pgx/v5"
)

// DeckRepository implements stored deck access over postgres
type DeckRepository struct {
	q queryable
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db *database.DB) *DeckRepository {
	return &DeckRepository{q: db.Pool}
}

// newDeckRepositoryWithTx creates a new deck repository with a transaction
func newDeckRepositoryWithTx(tx queryable) *DeckRepository {
	return &DeckRepository{q: tx}
}

// Create stores a new deck and fills in its generated fields
func (r *DeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	query := `
		INSERT INTO decks (owner_discord_id, name, main_ids, extra_ids, side_ids)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		deck.OwnerDiscordID,
		deck.Name,
		deck.Main,
		deck.Extra,
		deck.Side,
	).Scan(&deck.ID, &deck.CreatedAt, &deck.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create deck %q for user %d: %w", deck.Name, deck.OwnerDiscordID, err)
	}

	return nil
}

// GetByID retrieves a deck by its ID
func (r *DeckRepository) GetByID(ctx context.Context, id int64) (*models.Deck, error) {
	query := `
		SELECT id, owner_discord_id, name, main_ids, extra_ids, side_ids, created_at, updated_at
		FROM decks
		WHERE id = $1
	`

	var deck models.Deck
	err := r.q.QueryRow(ctx, query, id).Scan(
		&deck.ID,
		&deck.OwnerDiscordID,
		&deck.Name,
		&deck.Main,
		&deck.Extra,
		&deck.Side,
		&deck.CreatedAt,
		&deck.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deck %d: %w", id, err)
	}

	return &deck, nil
}

// GetByOwner returns all decks owned by a Discord user, newest first
func (r *DeckRepository) GetByOwner(ctx context.Context, ownerDiscordID int64) ([]*models.Deck, error) {
	query := `
		SELECT id, owner_discord_id, name, main_ids, extra_ids, side_ids, created_at, updated_at
		FROM decks
		WHERE owner_discord_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, ownerDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get decks for user %d: %w", ownerDiscordID, err)
	}
	defer rows.Close()

	var decks []*models.Deck
	for rows.Next() {
		var deck models.Deck
		err := rows.Scan(
			&deck.ID,
			&deck.OwnerDiscordID,
			&deck.Name,
			&deck.Main,
			&deck.Extra,
			&deck.Side,
			&deck.CreatedAt,
			&deck.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, &deck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decks: %w", err)
	}

	return decks, nil
}

// Update replaces the card lists and name of an existing deck
func (r *DeckRepository) Update(ctx context.Context, deck *models.Deck) error {
	query := `
		UPDATE decks
		SET name = $1, main_ids = $2, extra_ids = $3, side_ids = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := r.q.Exec(ctx, query, deck.Name, deck.Main, deck.Extra, deck.Side, deck.ID)
	if err != nil {
		return fmt.Errorf("failed to update deck %d: %w", deck.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("deck %d not found", deck.ID)
	}

	return nil
}

// Delete removes a deck
func (r *DeckRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.q.Exec(ctx, `DELETE FROM decks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deck %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("deck %d not found", id)
	}

	return nil
}
