package service

import (
	"context"
	"io"

	"decklab/models"
	"decklab/probability"

	"github.com/stretchr/testify/mock"
)

// MockCardService is a mock implementation of CardService
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) ResolveCards(ctx context.Context, ids []int64) (map[int64]*models.Card, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*models.Card), args.Error(1)
}

func (m *MockCardService) FindByName(ctx context.Context, name string) (*models.Card, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

// MockDeckService is a mock implementation of DeckService
type MockDeckService struct {
	mock.Mock
}

func (m *MockDeckService) ImportDeck(ctx context.Context, ownerDiscordID int64, name string, r io.Reader) (*models.Deck, error) {
	args := m.Called(ctx, ownerDiscordID, name, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckService) ListDecks(ctx context.Context, ownerDiscordID int64) ([]*models.DeckSummary, error) {
	args := m.Called(ctx, ownerDiscordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DeckSummary), args.Error(1)
}

func (m *MockDeckService) GetDeck(ctx context.Context, deckID int64) (*models.Deck, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckService) DeleteDeck(ctx context.Context, ownerDiscordID, deckID int64) error {
	args := m.Called(ctx, ownerDiscordID, deckID)
	return args.Error(0)
}

func (m *MockDeckService) DrawTable(ctx context.Context, deckID int64, cardName string, handSize int) ([]probability.DrawRow, error) {
	args := m.Called(ctx, deckID, cardName, handSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]probability.DrawRow), args.Error(1)
}

func (m *MockDeckService) SolveDeckConstraints(ctx context.Context, deckID int64, constraints []CardConstraint, handSize int) (float64, error) {
	args := m.Called(ctx, deckID, constraints, handSize)
	return args.Get(0).(float64), args.Error(1)
}
