package service

import (
	"context"

	"decklab/events"
	"decklab/models"

	"github.com/stretchr/testify/mock"
)

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

func (m *MockCardRepository) GetByName(ctx context.Context, name string) (*models.Card, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) Upsert(ctx context.Context, cards []*models.Card) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

// MockDeckRepository is a mock implementation of DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckRepository) GetByID(ctx context.Context, id int64) (*models.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetByOwner(ctx context.Context, ownerDiscordID int64) ([]*models.Deck, error) {
	args := m.Called(ctx, ownerDiscordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deck), args.Error(1)
}

func (m *MockDeckRepository) Update(ctx context.Context, deck *models.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMatchRepository is a mock implementation of MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *models.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetByPlayerAndTournament(ctx context.Context, playerDiscordID int64, tournamentName string) ([]*models.Match, error) {
	args := m.Called(ctx, playerDiscordID, tournamentName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) DeleteTournament(ctx context.Context, playerDiscordID int64, tournamentName string) error {
	args := m.Called(ctx, playerDiscordID, tournamentName)
	return args.Error(0)
}

// MockCardFetcher is a mock implementation of CardFetcher
type MockCardFetcher struct {
	mock.Mock
}

func (m *MockCardFetcher) FetchCards(ctx context.Context, ids []int64) ([]*models.Card, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

// recordingPublisher collects events published inside a unit of work
type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(e events.Event) {
	p.published = append(p.published, e)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	cardRepo  CardRepository
	deckRepo  DeckRepository
	matchRepo MatchRepository
	publisher *recordingPublisher
}

// SetRepositories wires the repositories returned by this unit of work
func (m *MockUnitOfWork) SetRepositories(cardRepo CardRepository, deckRepo DeckRepository, matchRepo MatchRepository) {
	m.cardRepo = cardRepo
	m.deckRepo = deckRepo
	m.matchRepo = matchRepo
	m.publisher = &recordingPublisher{}
}

// PublishedEvents returns the events published through this unit of work
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	if m.publisher == nil {
		return nil
	}
	return m.publisher.published
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) CardRepository() CardRepository {
	return m.cardRepo
}

func (m *MockUnitOfWork) DeckRepository() DeckRepository {
	return m.deckRepo
}

func (m *MockUnitOfWork) MatchRepository() MatchRepository {
	return m.matchRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.publisher
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
