package dom

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store is the SQLite-backed element store.
// Uses WAL mode for concurrent read access; writes are single-connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens an element store at the given path.
// Use ":memory:" for an isolated in-memory store.
//
// This function is idempotent - safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY errors and keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Put inserts an element or overwrites the element with the same id.
// The original seq is preserved on overwrite so ByTag ordering is stable.
func (s *Store) Put(ctx context.Context, el Element) error {
	if el.ID == "" {
		return fmt.Errorf("put element: id must not be empty")
	}
	if el.Tag == "" {
		return fmt.Errorf("put element: tag must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO elements (id, tag, value, seq)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM elements))
		ON CONFLICT(id) DO UPDATE SET tag = excluded.tag, value = excluded.value
	`, el.ID, el.Tag, el.Value)
	if err != nil {
		return fmt.Errorf("put element: %w", err)
	}

	return nil
}

// ElementByID looks up an element by identifier.
// An absent element yields (nil, nil) - absence is a result, not an error.
func (s *Store) ElementByID(ctx context.Context, id string) (*Element, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, tag, value FROM elements WHERE id = ?
	`, id)

	var el Element
	if err := row.Scan(&el.ID, &el.Tag, &el.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query element %q: %w", id, err)
	}

	return &el, nil
}

// ElementsByTag returns all elements with the given tag in deterministic
// order. Returns an empty slice (not nil) when no elements match.
func (s *Store) ElementsByTag(ctx context.Context, tag string) ([]Element, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tag, value FROM elements
		WHERE tag = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, tag)
	if err != nil {
		return nil, fmt.Errorf("query elements by tag %q: %w", tag, err)
	}
	defer rows.Close()

	elements := []Element{}
	for rows.Next() {
		var el Element
		if err := rows.Scan(&el.ID, &el.Tag, &el.Value); err != nil {
			return nil, fmt.Errorf("scan element: %w", err)
		}
		elements = append(elements, el)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate elements: %w", err)
	}

	return elements, nil
}

// setValue performs a single field write on an existing element.
func (s *Store) setValue(ctx context.Context, id, value string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE elements SET value = ? WHERE id = ?
	`, value, id)
	if err != nil {
		return fmt.Errorf("set value on %q: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set value on %q: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("set value on %q: element no longer present", id)
	}

	return nil
}
