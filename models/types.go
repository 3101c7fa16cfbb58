// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Item type constants (BGG subtype values)
const (
	TypeBoardgame = "boardgame"
	TypeExpansion = "boardgameexpansion"
)

// PollEntry is one bucket of the suggested_numplayers poll attached to a
// collection item.
type PollEntry struct {
	// NumPlayers is the raw poll label, e.g. "4" or "4+".
	NumPlayers string `json:"numplayers"`
	// PlayerCountValue is the comparable numeric form of NumPlayers;
	// open-ended labels like "4+" map to label value + 1.
	PlayerCountValue int `json:"player_count_value"`
	// SortScore is the recommendation strength derived from poll votes.
	SortScore float64 `json:"sort_score"`
	// NotRecommendedPercent is nil when the bucket received no votes.
	NotRecommendedPercent *float64 `json:"not_recommended_percent"`
}

// ItemInfo holds the scalar attributes of a collection item, shared
// between the raw and annotated forms.
type ItemInfo struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	MinPlayers    int      `json:"min_players"`
	MaxPlayers    int      `json:"max_players"`
	MinPlaytime   int      `json:"min_playtime"`
	MaxPlaytime   int      `json:"max_playtime"`
	UserRating    *float64 `json:"user_rating"` // nil = not rated by the user
	AverageRating float64  `json:"average_rating"`
	AverageWeight float64  `json:"average_weight"`
}

// CollectionItem is one immutable entry of a fetched collection.
type CollectionItem struct {
	ItemInfo
	Polls []PollEntry `json:"polls"`
}

// AnnotatedPollEntry is a PollEntry marked with membership in the active
// player-count filter range.
type AnnotatedPollEntry struct {
	PollEntry
	WithinRange bool `json:"is_player_count_within_range"`
}

// AnnotatedItem is a fresh copy of a CollectionItem produced by the
// pipeline; the source collection is never mutated.
type AnnotatedItem struct {
	ItemInfo
	Polls []AnnotatedPollEntry `json:"polls"`
}

// Request types

// ActionRequest carries one dispatched filter action. Type selects the
// action; Min/Max accompany range sets, Value accompanies username and
// ratings-mode sets. A null Max on a range set means open-ended.
type ActionRequest struct {
	Type  string   `json:"type"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Value string   `json:"value,omitempty"`
}

type SaveViewRequest struct {
	Username string `json:"username"`
	Query    string `json:"query"`
}

// Response types

type CollectionSummary struct {
	Username  string    `json:"username"`
	ItemCount string    `json:"item_count"`
	FetchedAt time.Time `json:"fetched_at"`
	Age       string    `json:"age"`
}

type RefreshResponse struct {
	Username  string `json:"username"`
	ItemCount string `json:"item_count"`
}

type SaveViewResponse struct {
	Slug     string `json:"slug"`
	ShareURL string `json:"share_url"`
}

type SavedViewResponse struct {
	Slug     string `json:"slug"`
	Username string `json:"username"`
	Query    string `json:"query"`
	Location string `json:"location"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
