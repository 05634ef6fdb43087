package models

import "time"

// Card represents cached metadata for a single card, keyed by its
// printed passcode.
type Card struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	FetchedAt   time.Time `db:"fetched_at"`
}
