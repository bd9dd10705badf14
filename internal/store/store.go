// Package store wraps the hosted backend's table API in the handful of
// generic verbs every content kind shares: ordered list, singleton fetch,
// insert, update-by-id, delete-by-id and row count. Each verb is a single
// round trip with no retry or batching.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

var (
	// ErrNotFound means the targeted row does not exist. For singletons
	// callers substitute hardcoded defaults rather than failing.
	ErrNotFound = errors.New("store: row not found")

	// ErrConflict means an update carried a stale updated_at precondition:
	// the row exists but someone else wrote it first.
	ErrConflict = errors.New("store: stale update precondition")
)

// Store executes table operations against the Supabase PostgREST API.
type Store struct {
	db  *supa.Client
	log *logrus.Logger
}

func New(db *supa.Client, log *logrus.Logger) *Store {
	return &Store{db: db, log: log}
}

// immutable columns are stripped from every write payload; the backend
// assigns them.
var immutableColumns = [...]string{"id", "created_at", "updated_at"}

func stripImmutable(payload map[string]interface{}) map[string]interface{} {
	for _, col := range immutableColumns {
		delete(payload, col)
	}
	return payload
}

// ListOrdered returns every row of table ascending by sort_order.
// activeOnly restricts the result to is_active = true rows (the
// public-facing variant).
func ListOrdered[T any](s *Store, table string, activeOnly bool) ([]T, error) {
	query := s.db.From(table).Select("*", "", false)
	if activeOnly {
		query = query.Eq("is_active", "true")
	}
	body, _, err := query.
		Order("sort_order", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s rows: %w", table, err)
	}
	return rows, nil
}

// ListBoardPosts returns posts of a board table, pinned first, then
// newest first.
func ListBoardPosts[T any](s *Store, table string, activeOnly bool) ([]T, error) {
	query := s.db.From(table).Select("*", "", false)
	if activeOnly {
		query = query.Eq("is_active", "true")
	}
	body, _, err := query.
		Order("is_pinned", &postgrest.OrderOpts{Ascending: false}).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s rows: %w", table, err)
	}
	return rows, nil
}

// FindBoardMenu returns the menu item that links a board table into the
// navigation. Board routes resolve through this lookup; no item means the
// board is not published.
func FindBoardMenu[T any](s *Store, boardTable string) (*T, error) {
	body, _, err := s.db.From(TableMenuItems).
		Select("*", "", false).
		Eq("menu_type", "board").
		Eq("board_table_name", boardTable).
		Eq("is_active", "true").
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("resolving board %s: %w", boardTable, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding board menu row: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// GetSingleton fetches the single row of a settings table. ErrNotFound
// when the table is empty.
func GetSingleton[T any](s *Store, table string) (*T, error) {
	body, _, err := s.db.From(table).
		Select("*", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching %s singleton: %w", table, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s singleton: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// GetByID fetches one row by primary key.
func GetByID[T any](s *Store, table, id string) (*T, error) {
	body, _, err := s.db.From(table).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching %s %s: %w", table, id, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s row: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Insert creates a row and returns the backend's representation of it
// (server-assigned id and timestamps included).
func Insert[T any](s *Store, table string, payload map[string]interface{}) (*T, error) {
	body, _, err := s.db.From(table).
		Insert(stripImmutable(payload), false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", table, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s insert response: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("inserting into %s: empty representation", table)
	}
	return &rows[0], nil
}

// UpdateByID applies a partial update and returns the updated row.
// A non-nil expectedUpdatedAt makes the write conditional: when the row
// has been modified since that timestamp the update matches zero rows and
// ErrConflict is returned (ErrNotFound if the row is gone entirely).
func UpdateByID[T any](s *Store, table, id string, payload map[string]interface{}, expectedUpdatedAt *time.Time) (*T, error) {
	payload = stripImmutable(payload)
	payload["updated_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	query := s.db.From(table).
		Update(payload, "representation", "").
		Eq("id", id)
	if expectedUpdatedAt != nil {
		query = query.Eq("updated_at", expectedUpdatedAt.UTC().Format(time.RFC3339Nano))
	}
	body, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", table, id, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s update response: %w", table, err)
	}
	if len(rows) == 0 {
		if expectedUpdatedAt != nil {
			// Distinguish a stale precondition from a deleted row.
			if _, err := GetByID[T](s, table, id); err == nil {
				return nil, ErrConflict
			}
		}
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// DeleteByID removes a row. Deleting an id that no longer exists is a
// no-op success; callers treat delete as idempotent.
func (s *Store) DeleteByID(table, id string) error {
	_, _, err := s.db.From(table).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", table, id, err)
	}
	return nil
}

// UpsertSingleton writes a settings table's single row: updates it in
// place when one exists, inserts the first row otherwise.
func UpsertSingleton[T any](s *Store, table string, payload map[string]interface{}) (*T, error) {
	existing, err := GetSingleton[idRow](s, table)
	switch {
	case err == nil:
		return UpdateByID[T](s, table, existing.ID, payload, nil)
	case errors.Is(err, ErrNotFound):
		return Insert[T](s, table, payload)
	default:
		return nil, err
	}
}

type idRow struct {
	ID string `json:"id"`
}

// Count returns the exact row count of a table without fetching rows.
func (s *Store) Count(table string) (int64, error) {
	_, count, err := s.db.From(table).
		Select("*", "exact", true).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return count, nil
}
