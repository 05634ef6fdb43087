package repository

import (
	"context"
	"testing"

	"decklab/repository/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	deck := testutil.CreateTestDeck(123456, "blue-eyes")
	require.NoError(t, repo.Create(ctx, deck))
	assert.NotZero(t, deck.ID)
	assert.False(t, deck.CreatedAt.IsZero())

	loaded, err := repo.GetByID(ctx, deck.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, deck.OwnerDiscordID, loaded.OwnerDiscordID)
	assert.Equal(t, deck.Main, loaded.Main)
	assert.Equal(t, deck.Extra, loaded.Extra)
	assert.Equal(t, deck.Side, loaded.Side)
}

func TestDeckRepository_GetByID_NotFound(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDeckRepository(testDB.DB)

	deck, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, deck)
}

func TestDeckRepository_GetByOwner(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.CreateTestDeck(111, "first")))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestDeck(111, "second")))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestDeck(222, "other-owner")))

	decks, err := repo.GetByOwner(ctx, 111)
	require.NoError(t, err)
	assert.Len(t, decks, 2)
	for _, d := range decks {
		assert.Equal(t, int64(111), d.OwnerDiscordID)
	}
}

func TestDeckRepository_UpdateAndDelete(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	deck := testutil.CreateTestDeck(333, "editable")
	require.NoError(t, repo.Create(ctx, deck))

	deck.Name = "renamed"
	deck.Side = []int64{4000, 4001}
	require.NoError(t, repo.Update(ctx, deck))

	loaded, err := repo.GetByID(ctx, deck.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "renamed", loaded.Name)
	assert.Equal(t, []int64{4000, 4001}, loaded.Side)

	require.NoError(t, repo.Delete(ctx, deck.ID))

	gone, err := repo.GetByID(ctx, deck.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting again reports the missing row.
	assert.Error(t, repo.Delete(ctx, deck.ID))
}
