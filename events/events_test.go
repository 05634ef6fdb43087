package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitReachesSubscribers(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	var mu sync.Mutex
	var received []Event
	done := make(chan struct{})

	bus.Subscribe(EventTypeDeckImported, func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		close(done)
	})

	bus.Emit(ctx, DeckImportedEvent{DeckID: 1, OwnerDiscordID: 42, Name: "test", MainSize: 40})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	imported, ok := received[0].(DeckImportedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(1), imported.DeckID)
	assert.Equal(t, 40, imported.MainSize)
}

func TestBus_EmitIgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	called := make(chan struct{}, 1)
	bus.Subscribe(EventTypeMatchRecorded, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	bus.Emit(ctx, CardsCachedEvent{CardIDs: []int64{1, 2}})

	select {
	case <-called:
		t.Fatal("handler for a different event type was invoked")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTransactionalBus_FlushAndDiscard(t *testing.T) {
	real := NewBus()
	ctx := context.Background()

	var mu sync.Mutex
	count := 0
	flushed := make(chan struct{}, 10)
	real.Subscribe(EventTypeMatchRecorded, func(ctx context.Context, event Event) {
		mu.Lock()
		count++
		mu.Unlock()
		flushed <- struct{}{}
	})

	t.Run("discard drops pending events", func(t *testing.T) {
		tb := NewTransactionalBus(real)
		tb.Publish(MatchRecordedEvent{MatchID: 1})
		tb.Discard()
		require.NoError(t, tb.Flush(ctx))

		select {
		case <-flushed:
			t.Fatal("discarded event was emitted")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("flush emits pending events once", func(t *testing.T) {
		tb := NewTransactionalBus(real)
		tb.Publish(MatchRecordedEvent{MatchID: 2})
		tb.Publish(MatchRecordedEvent{MatchID: 3})
		require.NoError(t, tb.Flush(ctx))

		for i := 0; i < 2; i++ {
			select {
			case <-flushed:
			case <-time.After(2 * time.Second):
				t.Fatal("pending event was not emitted")
			}
		}

		// A second flush must not replay anything.
		require.NoError(t, tb.Flush(ctx))
		select {
		case <-flushed:
			t.Fatal("event was emitted twice")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
