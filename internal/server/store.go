package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"todocli/internal/model"
)

// ErrNotFound reports an id with no backing row.
var ErrNotFound = errors.New("todo not found")

const schema = `
CREATE TABLE IF NOT EXISTS todos (
    id        TEXT PRIMARY KEY,
    title     TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0
);
`

// Store persists todos in a single SQLite file. Listing follows rowid,
// so insertion order is the collection order clients observe.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed creates) the database at path.
// Use ":memory:" for throwaway stores.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps :memory: stores coherent; SQLite allows a
	// single writer anyway.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect db: %w", err)
	}
	// WAL plus busy_timeout keeps concurrent local access from
	// tripping "database is locked".
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) List(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, completed FROM todos ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		var completed int
		if err := rows.Scan(&it.ID, &it.Title, &completed); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		it.Completed = completed != 0
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return items, nil
}

func (s *Store) Get(ctx context.Context, id model.ID) (model.Item, error) {
	var it model.Item
	var completed int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, completed FROM todos WHERE id = ?`, id.String(),
	).Scan(&it.ID, &it.Title, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, ErrNotFound
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get todo: %w", err)
	}
	it.Completed = completed != 0
	return it, nil
}

// Create inserts a new pending todo and assigns its id.
func (s *Store) Create(ctx context.Context, title string) (model.Item, error) {
	it := model.Item{ID: model.ID(uuid.NewString()), Title: title}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (id, title, completed) VALUES (?, ?, 0)`,
		it.ID.String(), it.Title,
	)
	if err != nil {
		return model.Item{}, fmt.Errorf("insert todo: %w", err)
	}
	return it, nil
}

// Patch applies the non-nil fields and returns the stored record.
func (s *Store) Patch(ctx context.Context, id model.ID, title *string, completed *bool) (model.Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return model.Item{}, err
	}
	if title != nil {
		it.Title = *title
	}
	if completed != nil {
		it.Completed = *completed
	}
	done := 0
	if it.Completed {
		done = 1
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, completed = ? WHERE id = ?`,
		it.Title, done, it.ID.String(),
	)
	if err != nil {
		return model.Item{}, fmt.Errorf("update todo: %w", err)
	}
	return it, nil
}

func (s *Store) Delete(ctx context.Context, id model.ID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
