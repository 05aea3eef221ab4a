package conversion

import (
	"context"
	"sync"
	"time"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/interfaces"
)

const DefaultJournalCapacity = 1000

// Journal is the append-only event log. Every entry is persisted to the
// backing store and kept in a bounded in-memory buffer for cheap reads.
type Journal struct {
	// config
	capacity int

	// state
	mutex  sync.RWMutex
	recent *deque.Deque[Event]

	// deps
	store EventStore
	log   interfaces.ILogger
}

func NewJournal(store EventStore, capacity int, log interfaces.ILogger) *Journal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &Journal{
		capacity: capacity,
		recent:   deque.New[Event](),
		store:    store,
		log:      log,
	}
}

func (j *Journal) Record(ctx context.Context, event Event) error {
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now().UTC()

	if err := j.store.Append(ctx, event); err != nil {
		return err
	}

	j.mutex.Lock()
	j.recent.PushBack(event)
	for j.recent.Len() > j.capacity {
		j.recent.PopFront()
	}
	j.mutex.Unlock()

	j.log.Infow("event recorded",
		"kind", event.Kind,
		"account", event.Account.Hex(),
		"amount", event.Amount,
	)
	return nil
}

// Recent returns up to limit latest events, newest first. Served from the
// in-memory buffer when it holds enough entries, otherwise from the backing
// store (the buffer starts empty on every restart).
func (j *Journal) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > j.capacity {
		limit = j.capacity
	}

	j.mutex.RLock()
	if buffered := j.recent.Len(); buffered >= limit {
		events := make([]Event, 0, limit)
		for i := 0; i < limit; i++ {
			events = append(events, j.recent.At(buffered-1-i))
		}
		j.mutex.RUnlock()
		return events, nil
	}
	j.mutex.RUnlock()

	return j.store.List(ctx, limit)
}
