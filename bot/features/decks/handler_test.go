package decks

import (
	"context"
	"testing"

	"decklab/models"
	"decklab/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShowEmbed_UnknownDeck(t *testing.T) {
	ctx := context.Background()

	mockDecks := new(service.MockDeckService)
	mockCards := new(service.MockCardService)
	feature := NewFeature(mockDecks, mockCards)

	// An id with no stored deck comes back as (nil, nil).
	mockDecks.On("GetDeck", ctx, int64(404)).Return(nil, nil)

	embed, err := feature.buildShowEmbed(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, embed)
	assert.Contains(t, err.Error(), "not found")
	mockCards.AssertNotCalled(t, "ResolveCards")
}

func TestBuildShowEmbed(t *testing.T) {
	ctx := context.Background()

	mockDecks := new(service.MockDeckService)
	mockCards := new(service.MockCardService)
	feature := NewFeature(mockDecks, mockCards)

	deck := &models.Deck{
		ID:    7,
		Name:  "blue-eyes",
		Main:  []int64{89631139, 89631139, 89631139},
		Extra: []int64{44508094},
	}

	mockDecks.On("GetDeck", ctx, int64(7)).Return(deck, nil)
	mockCards.On("ResolveCards", ctx, []int64{89631139, 44508094}).Return(map[int64]*models.Card{
		89631139: {ID: 89631139, Name: "Blue-Eyes White Dragon"},
		44508094: {ID: 44508094, Name: "Stardust Dragon"},
	}, nil)

	embed, err := feature.buildShowEmbed(ctx, 7)

	require.NoError(t, err)
	require.NotNil(t, embed)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Main (3)", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "3x Blue-Eyes White Dragon")
	assert.Contains(t, embed.Fields[1].Value, "1x Stardust Dragon")

	mockDecks.AssertExpectations(t)
	mockCards.AssertExpectations(t)
}
