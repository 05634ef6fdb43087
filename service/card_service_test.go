package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"decklab/events"
	"decklab/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardService_ResolveCards_AllCached(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockCardRepo := new(MockCardRepository)
	mockFetcher := new(MockCardFetcher)

	mockUoW.SetRepositories(mockCardRepo, nil, nil)

	service := NewCardService(mockFactory, mockFetcher, 0)

	cached := []*models.Card{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockCardRepo.On("GetByIDs", ctx, []int64{1, 2}).Return(cached, nil)

	resolved, err := service.ResolveCards(ctx, []int64{1, 2})

	require.NoError(t, err)
	assert.Len(t, resolved, 2)
	assert.Equal(t, "Alpha", resolved[1].Name)
	assert.Equal(t, "Beta", resolved[2].Name)

	// Everything came from the cache, so nothing was fetched or published.
	mockFetcher.AssertNotCalled(t, "FetchCards")
	assert.Empty(t, mockUoW.PublishedEvents())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCardRepo.AssertExpectations(t)
}

func TestCardService_ResolveCards_FetchesMisses(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockCardRepo := new(MockCardRepository)
	mockFetcher := new(MockCardFetcher)

	mockUoW.SetRepositories(mockCardRepo, nil, nil)

	service := NewCardService(mockFactory, mockFetcher, 0)

	cached := []*models.Card{{ID: 1, Name: "Alpha"}}
	fetched := []*models.Card{{ID: 2, Name: "Beta"}, {ID: 3, Name: "Gamma"}}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockCardRepo.On("GetByIDs", ctx, []int64{1, 2, 3}).Return(cached, nil)
	mockFetcher.On("FetchCards", ctx, []int64{2, 3}).Return(fetched, nil)
	mockCardRepo.On("Upsert", ctx, fetched).Return(nil)

	resolved, err := service.ResolveCards(ctx, []int64{1, 2, 3})

	require.NoError(t, err)
	assert.Len(t, resolved, 3)

	published := mockUoW.PublishedEvents()
	require.Len(t, published, 1)
	cachedEvent, ok := published[0].(events.CardsCachedEvent)
	require.True(t, ok)
	assert.Equal(t, []int64{2, 3}, cachedEvent.CardIDs)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCardRepo.AssertExpectations(t)
	mockFetcher.AssertExpectations(t)
}

func TestCardService_ResolveCards_RefetchesStaleEntries(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockCardRepo := new(MockCardRepository)
	mockFetcher := new(MockCardFetcher)

	mockUoW.SetRepositories(mockCardRepo, nil, nil)

	service := NewCardService(mockFactory, mockFetcher, time.Hour)

	cached := []*models.Card{
		{ID: 1, Name: "Alpha", FetchedAt: time.Now()},
		{ID: 2, Name: "Beta (old)", FetchedAt: time.Now().Add(-2 * time.Hour)},
	}
	refetched := []*models.Card{{ID: 2, Name: "Beta"}}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockCardRepo.On("GetByIDs", ctx, []int64{1, 2}).Return(cached, nil)
	mockFetcher.On("FetchCards", ctx, []int64{2}).Return(refetched, nil)
	mockCardRepo.On("Upsert", ctx, refetched).Return(nil)

	resolved, err := service.ResolveCards(ctx, []int64{1, 2})

	require.NoError(t, err)
	assert.Equal(t, "Alpha", resolved[1].Name)
	assert.Equal(t, "Beta", resolved[2].Name)
	mockFetcher.AssertExpectations(t)
}

func TestCardService_ResolveCards_FetchFailure(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockCardRepo := new(MockCardRepository)
	mockFetcher := new(MockCardFetcher)

	mockUoW.SetRepositories(mockCardRepo, nil, nil)

	service := NewCardService(mockFactory, mockFetcher, 0)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockCardRepo.On("GetByIDs", ctx, []int64{7}).Return([]*models.Card{}, nil)
	mockFetcher.On("FetchCards", ctx, []int64{7}).Return(nil, errors.New("api down"))

	_, err := service.ResolveCards(ctx, []int64{7})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestCardService_ResolveCards_EmptyInput(t *testing.T) {
	mockFactory := new(MockUnitOfWorkFactory)
	mockFetcher := new(MockCardFetcher)

	service := NewCardService(mockFactory, mockFetcher, 0)

	resolved, err := service.ResolveCards(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resolved)

	// No transaction is opened for an empty lookup.
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCardService_FindByName(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockCardRepo := new(MockCardRepository)

	mockUoW.SetRepositories(mockCardRepo, nil, nil)

	service := NewCardService(mockFactory, new(MockCardFetcher), 0)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockCardRepo.On("GetByName", ctx, "Dark Magician").Return(&models.Card{ID: 46986414, Name: "Dark Magician"}, nil)

	card, err := service.FindByName(ctx, "Dark Magician")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, int64(46986414), card.ID)
}
