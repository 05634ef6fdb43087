package repository

import (
	"context"
	"fmt"

	"decklab/database"
	"decklab/models"
	"github.com/jackc/pgx/v5"
)

// CardRepository implements the card metadata cache over postgres
type CardRepository struct {
	q queryable
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *database.DB) *CardRepository {
	return &CardRepository{q: db.Pool}
}

// newCardRepositoryWithTx creates a new card repository with a transaction
func newCardRepositoryWithTx(tx queryable) *CardRepository {
	return &CardRepository{q: tx}
}

// GetByIDs retrieves cached cards for the given ids; ids with no cached
// row are simply absent from the result
func (r *CardRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, type, description, fetched_at
		FROM cards
		WHERE id = ANY($1)
	`

	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards by ids: %w", err)
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		var card models.Card
		err := rows.Scan(
			&card.ID,
			&card.Name,
			&card.Type,
			&card.Description,
			&card.FetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

// GetByName retrieves a cached card by exact name, case-insensitive
func (r *CardRepository) GetByName(ctx context.Context, name string) (*models.Card, error) {
	query := `
		SELECT id, name, type, description, fetched_at
		FROM cards
		WHERE LOWER(name) = LOWER($1)
	`

	var card models.Card
	err := r.q.QueryRow(ctx, query, name).Scan(
		&card.ID,
		&card.Name,
		&card.Type,
		&card.Description,
		&card.FetchedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card by name %q: %w", name, err)
	}

	return &card, nil
}

// Upsert inserts or refreshes cached card metadata
func (r *CardRepository) Upsert(ctx context.Context, cards []*models.Card) error {
	query := `
		INSERT INTO cards (id, name, type, description, fetched_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    type = EXCLUDED.type,
		    description = EXCLUDED.description,
		    fetched_at = NOW()
	`

	for _, card := range cards {
		if _, err := r.q.Exec(ctx, query, card.ID, card.Name, card.Type, card.Description); err != nil {
			return fmt.Errorf("failed to upsert card %d: %w", card.ID, err)
		}
	}

	return nil
}
