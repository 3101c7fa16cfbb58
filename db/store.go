// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mbickford/boardshelf/models"
)

var ErrNotFound = errors.New("not found")

// Store wraps the SQL connection with driver-aware queries. Queries are
// written with $N placeholders (postgres form) and rebound to ? for
// sqlite.
type Store struct {
	db     *sql.DB
	driver string
}

func NewStore(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

func (s *Store) CreateSchema() error {
	return CreateSchema(s.db)
}

func (s *Store) rebind(query string) string {
	if s.driver == "postgres" {
		return query
	}
	var b strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// SaveCollection replaces the cached collection for a username in one
// transaction.
func (s *Store) SaveCollection(username string, items []models.CollectionItem, fetchedAt time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.rebind(`
		INSERT INTO collection (username, fetched_at)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET fetched_at = excluded.fetched_at
	`), username, fetchedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert collection: %w", err)
	}

	if _, err := tx.Exec(s.rebind(`DELETE FROM collection_item WHERE username = $1`), username); err != nil {
		return fmt.Errorf("failed to clear collection items: %w", err)
	}

	insert := s.rebind(`
		INSERT INTO collection_item
			(username, position, id, name, type, min_players, max_players,
			 min_playtime, max_playtime, user_rating, average_rating, average_weight, polls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`)
	for i, it := range items {
		polls, err := json.Marshal(it.Polls)
		if err != nil {
			return fmt.Errorf("failed to encode polls for item %d: %w", it.ID, err)
		}
		_, err = tx.Exec(insert,
			username, i, it.ID, it.Name, it.Type,
			it.MinPlayers, it.MaxPlayers, it.MinPlaytime, it.MaxPlaytime,
			it.UserRating, it.AverageRating, it.AverageWeight, string(polls))
		if err != nil {
			return fmt.Errorf("failed to insert item %d: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit collection: %w", err)
	}
	return nil
}

// LoadCollection restores a cached collection in its stored order.
// Returns ErrNotFound when the username was never fetched.
func (s *Store) LoadCollection(username string) ([]models.CollectionItem, time.Time, error) {
	var fetchedAt time.Time
	err := s.db.QueryRow(s.rebind(`
		SELECT fetched_at FROM collection WHERE username = $1
	`), username).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, ErrNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query collection: %w", err)
	}

	rows, err := s.db.Query(s.rebind(`
		SELECT id, name, type, min_players, max_players,
		       min_playtime, max_playtime, user_rating, average_rating, average_weight, polls
		FROM collection_item
		WHERE username = $1
		ORDER BY position
	`), username)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query collection items: %w", err)
	}
	defer rows.Close()

	items := []models.CollectionItem{}
	for rows.Next() {
		var it models.CollectionItem
		var polls string
		err := rows.Scan(&it.ID, &it.Name, &it.Type, &it.MinPlayers, &it.MaxPlayers,
			&it.MinPlaytime, &it.MaxPlaytime, &it.UserRating, &it.AverageRating,
			&it.AverageWeight, &polls)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan collection item: %w", err)
		}
		if err := json.Unmarshal([]byte(polls), &it.Polls); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to decode polls for item %d: %w", it.ID, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read collection items: %w", err)
	}

	return items, fetchedAt, nil
}

// SavedView is one persisted share target.
type SavedView struct {
	ID        string
	Slug      string
	Username  string
	Query     string
	CreatedAt time.Time
}

func (s *Store) SaveView(v SavedView) error {
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO saved_view (id, slug, username, query, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`), v.ID, v.Slug, v.Username, v.Query, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert saved view: %w", err)
	}
	return nil
}

func (s *Store) GetView(slug string) (SavedView, error) {
	var v SavedView
	err := s.db.QueryRow(s.rebind(`
		SELECT id, slug, username, query, created_at
		FROM saved_view
		WHERE slug = $1
	`), slug).Scan(&v.ID, &v.Slug, &v.Username, &v.Query, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return SavedView{}, ErrNotFound
	}
	if err != nil {
		return SavedView{}, fmt.Errorf("failed to query saved view: %w", err)
	}
	return v, nil
}
