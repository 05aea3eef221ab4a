// Package eventstore persists the authority's observable events to SQLite
// so off-process observers can tail them after a restart.
package eventstore

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		account TEXT NOT NULL,
		amount TEXT,
		window_start INTEGER,
		window_end INTEGER,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Append(ctx context.Context, event conversion.Event) error {
	var amount *string
	if event.Amount != nil {
		v := event.Amount.String()
		amount = &v
	}

	var windowStart, windowEnd *int64
	if event.Window != nil {
		start, end := event.Window.Start.Unix(), event.Window.End.Unix()
		windowStart, windowEnd = &start, &end
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, kind, account, amount, window_start, window_end, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, string(event.Kind), event.Account.Hex(), amount, windowStart, windowEnd, event.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// List returns up to limit events, newest first
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]conversion.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, account, amount, window_start, window_end, created_at
		FROM events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []conversion.Event
	for rows.Next() {
		var (
			event                  conversion.Event
			kind, account          string
			amount                 sql.NullString
			windowStart, windowEnd sql.NullInt64
			createdAt              int64
		)
		err = rows.Scan(&event.ID, &kind, &account, &amount, &windowStart, &windowEnd, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		event.Kind = conversion.EventKind(kind)
		event.Account = common.HexToAddress(account)
		event.CreatedAt = time.Unix(createdAt, 0).UTC()
		if amount.Valid {
			value, ok := new(big.Int).SetString(amount.String, 10)
			if !ok {
				return nil, fmt.Errorf("malformed amount %q in event %s", amount.String, event.ID)
			}
			event.Amount = value
		}
		if windowStart.Valid && windowEnd.Valid {
			event.Window = &conversion.Window{
				Start: time.Unix(windowStart.Int64, 0).UTC(),
				End:   time.Unix(windowEnd.Int64, 0).UTC(),
			}
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ conversion.EventStore = new(SQLiteStore)
