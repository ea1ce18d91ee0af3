// Package storage persists the working keyword collection between CLI
// invocations in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"seogen/internal/keyword"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	query := `CREATE TABLE IF NOT EXISTS keywords (
		id INTEGER PRIMARY KEY,
		text TEXT NOT NULL,
		search_volume INTEGER NOT NULL,
		intent TEXT,
		difficulty REAL,
		cost_per_click REAL,
		role TEXT NOT NULL DEFAULT '',
		ord INTEGER NOT NULL,
		parent_id INTEGER
	)`
	_, err := s.db.Exec(query)
	return err
}

// SaveCollection replaces the stored collection wholesale, mirroring the
// copy-on-write semantics of the in-memory operations.
func (s *SQLiteStore) SaveCollection(ctx context.Context, records []keyword.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM keywords`); err != nil {
		return fmt.Errorf("failed to clear keywords: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO keywords
		(id, text, search_volume, intent, difficulty, cost_per_click, role, ord, parent_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		var parent sql.NullInt64
		if r.ParentID != nil {
			parent = sql.NullInt64{Int64: int64(*r.ParentID), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, r.ID, r.Text, r.SearchVolume, r.Intent,
			r.Difficulty, r.CostPerClick, string(r.Role), r.Order, parent); err != nil {
			return fmt.Errorf("failed to insert keyword %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// LoadCollection returns the stored collection ordered by rank. An empty
// store means no collection has been imported yet.
func (s *SQLiteStore) LoadCollection(ctx context.Context) ([]keyword.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, search_volume, intent,
		difficulty, cost_per_click, role, ord, parent_id FROM keywords ORDER BY ord`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]keyword.Record, 0)
	for rows.Next() {
		var r keyword.Record
		var role string
		var intent sql.NullString
		var parent sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Text, &r.SearchVolume, &intent,
			&r.Difficulty, &r.CostPerClick, &role, &r.Order, &parent); err != nil {
			return nil, err
		}
		r.Intent = intent.String
		r.Role = keyword.Role(role)
		if parent.Valid {
			p := int(parent.Int64)
			r.ParentID = &p
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, keyword.ErrNoCollection
	}
	return records, nil
}
