// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable across sqlite and postgres: no serial types, no NOW(),
// timestamps always bound explicitly.
const schema = `
-- Cached collections, one row per username
CREATE TABLE IF NOT EXISTS collection (
    username TEXT PRIMARY KEY,
    fetched_at TIMESTAMP NOT NULL
);

-- Collection items; polls holds the suggested_numplayers entries as JSON
CREATE TABLE IF NOT EXISTS collection_item (
    username TEXT NOT NULL REFERENCES collection(username) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    id INTEGER NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    min_players INTEGER NOT NULL,
    max_players INTEGER NOT NULL,
    min_playtime INTEGER NOT NULL,
    max_playtime INTEGER NOT NULL,
    user_rating REAL,
    average_rating REAL NOT NULL,
    average_weight REAL NOT NULL,
    polls TEXT NOT NULL,
    PRIMARY KEY (username, id)
);

CREATE INDEX IF NOT EXISTS idx_collection_item_username ON collection_item(username);

-- Saved filter views addressable by share slug
CREATE TABLE IF NOT EXISTS saved_view (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    username TEXT NOT NULL,
    query TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saved_view_slug ON saved_view(slug);
`
