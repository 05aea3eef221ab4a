package eventstore

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/lib"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account := lib.GetRandomAddr()

	event := conversion.Event{
		ID:        uuid.NewString(),
		Kind:      conversion.EventConversionExecuted,
		Account:   account,
		Amount:    big.NewInt(12345),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Append(ctx, event))

	events, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	require.Equal(t, event.ID, got.ID)
	require.Equal(t, event.Kind, got.Kind)
	require.Equal(t, account, got.Account)
	require.Zero(t, got.Amount.Cmp(event.Amount))
	require.Equal(t, event.CreatedAt.Unix(), got.CreatedAt.Unix())
	require.Nil(t, got.Window)
}

func TestWindowEventRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	window := conversion.Window{
		Start: time.Now().UTC().Truncate(time.Second),
		End:   time.Now().UTC().Truncate(time.Second).Add(7 * 24 * time.Hour),
	}
	event := conversion.Event{
		ID:        uuid.NewString(),
		Kind:      conversion.EventWindowUpdated,
		Account:   lib.GetRandomAddr(),
		Window:    &window,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Append(ctx, event))

	events, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Window)
	require.True(t, events[0].Window.Start.Equal(window.Start))
	require.True(t, events[0].Window.End.Equal(window.End))
	require.Nil(t, events[0].Amount)
}

func TestListNewestFirstWithLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		event := conversion.Event{
			ID:        uuid.NewString(),
			Kind:      conversion.EventConversionExecuted,
			Account:   lib.GetRandomAddr(),
			Amount:    big.NewInt(int64(i)),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.Append(ctx, event))
	}

	events, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Zero(t, events[0].Amount.Cmp(big.NewInt(4)))
	require.Zero(t, events[2].Amount.Cmp(big.NewInt(2)))
}

func TestAppendDuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	event := conversion.Event{
		ID:        uuid.NewString(),
		Kind:      conversion.EventPaused,
		Account:   lib.GetRandomAddr(),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Append(ctx, event))
	require.Error(t, store.Append(ctx, event))
}
