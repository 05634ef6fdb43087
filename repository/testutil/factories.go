package testutil

import (
	"fmt"
	"time"

	"decklab/models"
)

// CreateTestCard creates a test card with default metadata
func CreateTestCard(id int64, name string) *models.Card {
	return &models.Card{
		ID:          id,
		Name:        name,
		Type:        "Effect Monster",
		Description: fmt.Sprintf("Test text for %s", name),
		FetchedAt:   time.Now(),
	}
}

// CreateTestDeck creates a test deck with a 40 card main deck
func CreateTestDeck(ownerDiscordID int64, name string) *models.Deck {
	main := make([]int64, 0, 40)
	for i := 0; i < 40; i++ {
		// ids repeat in threes to mimic playsets
		main = append(main, int64(1000+i/3))
	}
	return &models.Deck{
		OwnerDiscordID: ownerDiscordID,
		Name:           name,
		Main:           main,
		Extra:          []int64{2000, 2001},
		Side:           []int64{3000},
	}
}

// CreateTestMatch creates a test match result
func CreateTestMatch(playerDiscordID int64, tournamentName string, round int, won bool) *models.Match {
	return &models.Match{
		PlayerDiscordID: playerDiscordID,
		TournamentName:  tournamentName,
		Round:           round,
		Won:             won,
	}
}
