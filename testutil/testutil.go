// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mbickford/boardshelf/cliparse"
	"github.com/mbickford/boardshelf/db"
	"github.com/mbickford/boardshelf/models"
)

// SetupTestStore creates a fresh in-memory sqlite store with the full
// schema. Hermetic: no external database needed.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second pooled connection would see a different :memory: database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	store := db.NewStore(conn, "sqlite")
	if err := store.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4180,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		BGGBaseURL:   "http://bgg.invalid/xmlapi2",
		ViewSlugSalt: "test-slug-salt",
	}
}

// Ptr returns a pointer to v, for optional numeric fields in fixtures.
func Ptr(v float64) *float64 { return &v }

// Game builds a plain boardgame fixture with sane defaults: one poll
// bucket per supported player count, with no vote data. Tests that care
// about poll details replace Polls outright.
func Game(id int, name string, minPlayers, maxPlayers int) models.CollectionItem {
	polls := make([]models.PollEntry, 0, maxPlayers-minPlayers+1)
	for n := minPlayers; n <= maxPlayers; n++ {
		polls = append(polls, Poll(strconv.Itoa(n), n, 0, -1))
	}
	return models.CollectionItem{
		ItemInfo: models.ItemInfo{
			ID:            id,
			Name:          name,
			Type:          models.TypeBoardgame,
			MinPlayers:    minPlayers,
			MaxPlayers:    maxPlayers,
			MinPlaytime:   30,
			MaxPlaytime:   60,
			AverageRating: 7.0,
			AverageWeight: 2.5,
		},
		Polls: polls,
	}
}

// Poll builds one poll bucket fixture. notRec < 0 means no vote data.
func Poll(numPlayers string, value int, score, notRec float64) models.PollEntry {
	entry := models.PollEntry{
		NumPlayers:       numPlayers,
		PlayerCountValue: value,
		SortScore:        score,
	}
	if notRec >= 0 {
		entry.NotRecommendedPercent = &notRec
	}
	return entry
}

// SeedCollection stores a collection fixture for a username.
func SeedCollection(t *testing.T, store *db.Store, username string, items []models.CollectionItem) {
	t.Helper()
	if err := store.SaveCollection(username, items, time.Now()); err != nil {
		t.Fatalf("Failed to seed collection: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
