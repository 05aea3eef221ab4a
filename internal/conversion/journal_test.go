package conversion

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/lib"
)

func TestJournalRecordAssignsIDAndPersists(t *testing.T) {
	store := NewEventStoreMock()
	journal := NewJournal(store, 10, lib.NewTestLogger())

	err := journal.Record(context.Background(), Event{
		Kind:    EventConversionExecuted,
		Account: lib.GetRandomAddr(),
		Amount:  big.NewInt(42),
	})
	require.NoError(t, err)

	require.Len(t, store.Events, 1)
	require.NotEmpty(t, store.Events[0].ID)
	require.False(t, store.Events[0].CreatedAt.IsZero())
}

func TestJournalRecentNewestFirst(t *testing.T) {
	journal := NewJournal(NewEventStoreMock(), 10, lib.NewTestLogger())

	for i := 0; i < 5; i++ {
		err := journal.Record(context.Background(), Event{
			Kind:   EventConversionExecuted,
			Amount: big.NewInt(int64(i)),
		})
		require.NoError(t, err)
	}

	events, err := journal.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	requireAmount(t, 4, events[0].Amount)
	requireAmount(t, 2, events[2].Amount)

	all, err := journal.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestJournalCapacityBound(t *testing.T) {
	journal := NewJournal(NewEventStoreMock(), 3, lib.NewTestLogger())

	for i := 0; i < 10; i++ {
		err := journal.Record(context.Background(), Event{
			Kind:   EventConversionExecuted,
			Amount: big.NewInt(int64(i)),
		})
		require.NoError(t, err)
	}

	events, err := journal.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	requireAmount(t, 9, events[0].Amount)
	requireAmount(t, 7, events[2].Amount)
}

// history persisted before a restart must stay readable: a journal whose
// buffer cannot satisfy the request falls through to the store
func TestJournalRecentStoreFallback(t *testing.T) {
	store := NewEventStoreMock()
	seeded := NewJournal(store, 10, lib.NewTestLogger())
	for i := 0; i < 4; i++ {
		err := seeded.Record(context.Background(), Event{
			Kind:   EventConversionExecuted,
			Amount: big.NewInt(int64(i)),
		})
		require.NoError(t, err)
	}

	// a fresh journal over the same store starts with an empty buffer
	restarted := NewJournal(store, 10, lib.NewTestLogger())
	events, err := restarted.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	requireAmount(t, 3, events[0].Amount)
	requireAmount(t, 1, events[2].Amount)
	require.Equal(t, 1, store.ListCalls)

	// once the buffer can serve the request the store is not consulted
	full := NewJournal(store, 10, lib.NewTestLogger())
	err = full.Record(context.Background(), Event{Kind: EventPaused})
	require.NoError(t, err)
	_, err = full.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, store.ListCalls)

	store.ListErr = fmt.Errorf("database locked")
	_, err = restarted.Recent(context.Background(), 3)
	require.ErrorIs(t, err, store.ListErr)
}

func TestJournalStoreFailure(t *testing.T) {
	store := NewEventStoreMock()
	store.AppendErr = fmt.Errorf("disk full")
	journal := NewJournal(store, 10, lib.NewTestLogger())

	err := journal.Record(context.Background(), Event{Kind: EventPaused})
	require.ErrorIs(t, err, store.AppendErr)

	events, err := journal.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Empty(t, events)
}
