// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"github.com/mbickford/boardshelf/params"
)

// RatingsMode selects which rating an item is filtered and labeled by.
type RatingsMode string

const (
	ModeNone    RatingsMode = "none"
	ModeAverage RatingsMode = "average"
	ModeUser    RatingsMode = "user"
)

// Query-string keys for the persisted filter state.
const (
	KeyUsername    = "username"
	KeyPlayerCount = "players"
	KeyPlaytime    = "playtime"
	KeyComplexity  = "complexity"
	KeyRating      = "rating"
	KeyMode        = "mode"
	KeyExpansions  = "expansions"
	KeyInvalid     = "invalid"
	KeyNotRec      = "notrec"
	KeyDebug       = "debug"
)

// State is the full set of active criteria for one session. It is built
// once from the persisted store, mutated only through Reduce, and every
// transition produces a full replacement value.
type State struct {
	Username string `json:"username"`

	PlayerCount params.Range `json:"player_count"`
	Playtime    params.Range `json:"playtime"`
	Complexity  params.Range `json:"complexity"`
	Rating      params.Range `json:"rating"`

	Mode RatingsMode `json:"ratings_mode"`

	ShowExpansions         bool `json:"show_expansions"`
	ShowInvalidPlayerCount bool `json:"show_invalid_player_count"`
	ShowNotRecommended     bool `json:"show_not_recommended"`
	Debug                  bool `json:"debug"`
}

// DefaultState returns the state every session starts from before the
// persisted store is consulted.
func DefaultState() State {
	return State{
		PlayerCount: PlayerCount.Default(),
		Playtime:    Playtime.Default(),
		Complexity:  Complexity.Default(),
		Rating:      Rating.Default(),
		Mode:        ModeAverage,
	}
}

// StateFromStore decodes the full filter state from the persisted store.
// Malformed or missing values fall back to defaults; this never fails.
func StateFromStore(store params.Store) State {
	st := DefaultState()
	st.Username = store.Get(KeyUsername)
	for _, c := range RangeCriteria {
		st = c.WithValue(st, c.decode(store))
	}
	st.Mode = parseMode(store.Get(KeyMode))
	for _, c := range BoolCriteria {
		st = c.withValue(st, params.ParseBool(store.Get(c.Key)))
	}
	return st
}

// Sync writes the state back into the persisted store. An unnamed
// session's filters are not worth preserving, so it no-ops without a
// username.
func Sync(st State, store params.Store) {
	if st.Username == "" {
		return
	}
	store.Set(KeyUsername, st.Username)
	for _, c := range RangeCriteria {
		c.SetQueryParam(store, st)
	}
	encodeMode(store, st.Mode)
	for _, c := range BoolCriteria {
		c.SetQueryParam(store, st)
	}
}

func parseMode(raw string) RatingsMode {
	switch RatingsMode(raw) {
	case ModeNone, ModeUser:
		return RatingsMode(raw)
	}
	return ModeAverage
}

func encodeMode(store params.Store, mode RatingsMode) {
	if mode == ModeAverage {
		store.Delete(KeyMode)
		return
	}
	store.Set(KeyMode, string(mode))
}
