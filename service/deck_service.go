package service

import (
	"context"
	"fmt"
	"io"

	"decklab/deck"
	"decklab/events"
	"decklab/models"
	"decklab/probability"
)

type deckService struct {
	uowFactory UnitOfWorkFactory
	cards      CardService
	calc       *probability.Calculator
}

// NewDeckService creates a new deck service
func NewDeckService(uowFactory UnitOfWorkFactory, cards CardService, calc *probability.Calculator) DeckService {
	return &deckService{
		uowFactory: uowFactory,
		cards:      cards,
		calc:       calc,
	}
}

func (s *deckService) ImportDeck(ctx context.Context, ownerDiscordID int64, name string, r io.Reader) (*models.Deck, error) {
	if name == "" {
		return nil, fmt.Errorf("deck name must not be empty")
	}

	list, err := deck.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deck list: %w", err)
	}
	if err := deck.Validate(list); err != nil {
		return nil, fmt.Errorf("invalid deck list: %w", err)
	}
	if len(list.Main) == 0 {
		return nil, fmt.Errorf("deck list has no main deck cards")
	}

	// Warm the metadata cache so later name lookups hit locally.
	if _, err := s.cards.ResolveCards(ctx, list.AllIDs()); err != nil {
		return nil, fmt.Errorf("failed to resolve card metadata: %w", err)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	stored := &models.Deck{
		OwnerDiscordID: ownerDiscordID,
		Name:           name,
		Main:           list.Main,
		Extra:          list.Extra,
		Side:           list.Side,
	}
	if err := uow.DeckRepository().Create(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to store deck: %w", err)
	}

	uow.EventBus().Publish(events.DeckImportedEvent{
		DeckID:         stored.ID,
		OwnerDiscordID: ownerDiscordID,
		Name:           name,
		MainSize:       len(list.Main),
		ExtraSize:      len(list.Extra),
		SideSize:       len(list.Side),
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stored, nil
}

func (s *deckService) ListDecks(ctx context.Context, ownerDiscordID int64) ([]*models.DeckSummary, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	decks, err := uow.DeckRepository().GetByOwner(ctx, ownerDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	summaries := make([]*models.DeckSummary, 0, len(decks))
	for _, d := range decks {
		summaries = append(summaries, &models.DeckSummary{
			ID:        d.ID,
			Name:      d.Name,
			MainSize:  len(d.Main),
			ExtraSize: len(d.Extra),
			SideSize:  len(d.Side),
		})
	}

	return summaries, nil
}

func (s *deckService) GetDeck(ctx context.Context, deckID int64) (*models.Deck, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	stored, err := uow.DeckRepository().GetByID(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stored, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, ownerDiscordID, deckID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	stored, err := uow.DeckRepository().GetByID(ctx, deckID)
	if err != nil {
		return fmt.Errorf("failed to get deck: %w", err)
	}
	if stored == nil {
		return fmt.Errorf("deck %d not found", deckID)
	}
	if stored.OwnerDiscordID != ownerDiscordID {
		return fmt.Errorf("deck %d does not belong to you", deckID)
	}

	if err := uow.DeckRepository().Delete(ctx, deckID); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *deckService) DrawTable(ctx context.Context, deckID int64, cardName string, handSize int) ([]probability.DrawRow, error) {
	stored, copies, err := s.deckAndCopies(ctx, deckID, cardName)
	if err != nil {
		return nil, err
	}

	return s.calc.BuildDrawTable(len(stored.Main), copies, handSize), nil
}

func (s *deckService) SolveDeckConstraints(ctx context.Context, deckID int64, constraints []CardConstraint, handSize int) (float64, error) {
	stored, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return 0, err
	}
	if stored == nil {
		return 0, fmt.Errorf("deck %d not found", deckID)
	}

	groups := make([]probability.Group, 0, len(constraints))
	for _, constraint := range constraints {
		card, err := s.cards.FindByName(ctx, constraint.CardName)
		if err != nil {
			return 0, err
		}
		if card == nil {
			return 0, fmt.Errorf("unknown card %q", constraint.CardName)
		}

		groups = append(groups, probability.Group{
			Name:        card.Name,
			CountInPool: stored.MainCopiesOf(card.ID),
			MinDesired:  constraint.Min,
			MaxDesired:  constraint.Max,
		})
	}

	return s.calc.SolveConstraints(len(stored.Main), handSize, groups), nil
}

// deckAndCopies loads a deck and counts the main-deck copies of the
// named card.
func (s *deckService) deckAndCopies(ctx context.Context, deckID int64, cardName string) (*models.Deck, int, error) {
	stored, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, 0, err
	}
	if stored == nil {
		return nil, 0, fmt.Errorf("deck %d not found", deckID)
	}

	card, err := s.cards.FindByName(ctx, cardName)
	if err != nil {
		return nil, 0, err
	}
	if card == nil {
		return nil, 0, fmt.Errorf("unknown card %q", cardName)
	}

	return stored, stored.MainCopiesOf(card.ID), nil
}
