package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeDeckImported  EventType = "deck_imported"
	EventTypeCardsCached   EventType = "cards_cached"
	EventTypeMatchRecorded EventType = "match_recorded"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// DeckImportedEvent represents a deck list that was parsed and stored
type DeckImportedEvent struct {
	DeckID         int64
	OwnerDiscordID int64
	Name           string
	MainSize       int
	ExtraSize      int
	SideSize       int
}

func (e DeckImportedEvent) Type() EventType {
	return EventTypeDeckImported
}

// CardsCachedEvent represents card metadata fetched from the remote API
// and written to the local cache
type CardsCachedEvent struct {
	CardIDs []int64
}

func (e CardsCachedEvent) Type() EventType {
	return EventTypeCardsCached
}

// MatchRecordedEvent represents a tournament round result that was logged
type MatchRecordedEvent struct {
	MatchID         int64
	PlayerDiscordID int64
	TournamentName  string
	Round           int
	Won             bool
}

func (e MatchRecordedEvent) Type() EventType {
	return EventTypeMatchRecorded
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus stashes events raised during a unit of work and only
// hands them to the real bus after the enclosing commit succeeds.
type TransactionalBus struct {
	real    *Bus
	pending []Event // stashed until Flush
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush is called after a successful DB commit.
func (b *TransactionalBus) Flush(ctx context.Context) error {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending events to the main event bus")

	// Events outlive the transaction context, so emit on a fresh one.
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// Discard is called after a rollback to drop any stashed events.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
