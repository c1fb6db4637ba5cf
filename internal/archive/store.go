// Package archive persists forged wards to a local SQLite database, one row
// per sealing.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Ward is one archived forging: who sealed it, what they chose, and when.
type Ward struct {
	ID          string
	ForgedAt    time.Time
	Player      string
	Energy      string
	ColorHex    string
	Symbol      string
	SigilText   string
	SigilPoints int
}

const schema = `CREATE TABLE IF NOT EXISTS wards (
	id           TEXT PRIMARY KEY,
	forged_at    INTEGER NOT NULL,
	player       TEXT NOT NULL,
	energy       TEXT NOT NULL,
	color_hex    TEXT NOT NULL,
	symbol       TEXT NOT NULL,
	sigil_text   TEXT NOT NULL,
	sigil_points INTEGER NOT NULL
)`

// Store provides SQLite-backed persistence for forged wards.
type Store struct {
	db *sql.DB
}

// Open opens the ward archive at path, creating the table on first use.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create wards table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts one forged ward. A missing ID or timestamp is minted here.
func (s *Store) Save(ctx context.Context, w Ward) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("archive is not configured")
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.ForgedAt.IsZero() {
		w.ForgedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO wards (id, forged_at, player, energy, color_hex, symbol, sigil_text, sigil_points)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		w.ForgedAt.UTC().UnixMilli(),
		w.Player,
		w.Energy,
		w.ColorHex,
		w.Symbol,
		w.SigilText,
		w.SigilPoints,
	)
	if err != nil {
		return fmt.Errorf("save ward: %w", err)
	}
	return nil
}

// Count returns the number of archived wards.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("archive is not configured")
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count wards: %w", err)
	}
	return n, nil
}

// Recent returns up to limit wards, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Ward, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("archive is not configured")
	}
	if limit < 1 {
		limit = 1
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, forged_at, player, energy, color_hex, symbol, sigil_text, sigil_points
		 FROM wards
		 ORDER BY forged_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list wards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	wards := make([]Ward, 0, limit)
	for rows.Next() {
		var w Ward
		var forgedAt int64
		if err := rows.Scan(&w.ID, &forgedAt, &w.Player, &w.Energy, &w.ColorHex, &w.Symbol, &w.SigilText, &w.SigilPoints); err != nil {
			return nil, fmt.Errorf("scan ward: %w", err)
		}
		w.ForgedAt = time.UnixMilli(forgedAt).UTC()
		wards = append(wards, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wards: %w", err)
	}
	return wards, nil
}
