package models

import "time"

// Maximum copies of a single card allowed across a deck list.
const MaxCopiesPerCard = 3

// DeckList holds the three id lists parsed from an uploaded deck file,
// before any metadata has been resolved.
type DeckList struct {
	Main  []int64
	Extra []int64
	Side  []int64
}

// CopyCounts returns how many copies of each card id appear across all
// three sections.
func (d *DeckList) CopyCounts() map[int64]int {
	counts := make(map[int64]int)
	for _, section := range [][]int64{d.Main, d.Extra, d.Side} {
		for _, id := range section {
			counts[id]++
		}
	}
	return counts
}

// AllIDs returns the distinct card ids across all three sections, in
// first-seen order.
func (d *DeckList) AllIDs() []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, section := range [][]int64{d.Main, d.Extra, d.Side} {
		for _, id := range section {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Deck represents a stored deck owned by a Discord user.
type Deck struct {
	ID             int64     `db:"id"`
	OwnerDiscordID int64     `db:"owner_discord_id"`
	Name           string    `db:"name"`
	Main           []int64   `db:"main_ids"`
	Extra          []int64   `db:"extra_ids"`
	Side           []int64   `db:"side_ids"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// MainCopiesOf returns how many copies of the given card id sit in the
// main deck, the pool that opening hands are drawn from.
func (d *Deck) MainCopiesOf(cardID int64) int {
	count := 0
	for _, id := range d.Main {
		if id == cardID {
			count++
		}
	}
	return count
}

// DeckSummary is the listing view of a deck (returned to the user).
type DeckSummary struct {
	ID        int64
	Name      string
	MainSize  int
	ExtraSize int
	SideSize  int
}
