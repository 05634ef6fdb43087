package service

import (
	"context"
	"fmt"
	"time"

	"decklab/events"
	"decklab/models"
)

type cardService struct {
	uowFactory UnitOfWorkFactory
	fetcher    CardFetcher
	cacheTTL   time.Duration // zero disables expiry
}

// NewCardService creates a new card metadata service
func NewCardService(uowFactory UnitOfWorkFactory, fetcher CardFetcher, cacheTTL time.Duration) CardService {
	return &cardService{
		uowFactory: uowFactory,
		fetcher:    fetcher,
		cacheTTL:   cacheTTL,
	}
}

func (s *cardService) ResolveCards(ctx context.Context, ids []int64) (map[int64]*models.Card, error) {
	resolved := make(map[int64]*models.Card, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	cached, err := uow.CardRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read card cache: %w", err)
	}
	for _, card := range cached {
		if s.cacheTTL > 0 && time.Since(card.FetchedAt) > s.cacheTTL {
			// Stale entry; refetch it below.
			continue
		}
		resolved[card.ID] = card
	}

	var misses []int64
	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			misses = append(misses, id)
		}
	}

	if len(misses) > 0 {
		fetched, err := s.fetcher.FetchCards(ctx, misses)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %d uncached cards: %w", len(misses), err)
		}

		if err := uow.CardRepository().Upsert(ctx, fetched); err != nil {
			return nil, fmt.Errorf("failed to cache fetched cards: %w", err)
		}

		fetchedIDs := make([]int64, 0, len(fetched))
		for _, card := range fetched {
			resolved[card.ID] = card
			fetchedIDs = append(fetchedIDs, card.ID)
		}
		uow.EventBus().Publish(events.CardsCachedEvent{CardIDs: fetchedIDs})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return resolved, nil
}

func (s *cardService) FindByName(ctx context.Context, name string) (*models.Card, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	card, err := uow.CardRepository().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up card %q: %w", name, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return card, nil
}
