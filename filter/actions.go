// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"fmt"
	"sync"

	"github.com/mbickford/boardshelf/params"
)

// Action is the closed set of filter state transitions. The marker method
// keeps the set closed at compile time; Reduce's type switch is the
// exhaustive dispatch table.
type Action interface {
	isAction()
}

type SetPlayerCount struct{ Range params.Range }
type SetPlaytime struct{ Range params.Range }
type SetComplexity struct{ Range params.Range }
type SetRating struct{ Range params.Range }
type SetUsername struct{ Name string }
type SetRatingsMode struct{ Mode RatingsMode }
type ToggleExpansions struct{}
type ToggleInvalidPlayerCount struct{}
type ToggleNotRecommended struct{}

func (SetPlayerCount) isAction()           {}
func (SetPlaytime) isAction()              {}
func (SetComplexity) isAction()            {}
func (SetRating) isAction()                {}
func (SetUsername) isAction()              {}
func (SetRatingsMode) isAction()           {}
func (ToggleExpansions) isAction()         {}
func (ToggleInvalidPlayerCount) isAction() {}
func (ToggleNotRecommended) isAction()     {}

// Reduce applies one action to the state and returns the full replacement.
// It is pure: same state and action, same result, no side effects. An
// action outside the closed set is a programmer error and panics.
func Reduce(st State, a Action) State {
	switch a := a.(type) {
	case SetPlayerCount:
		return PlayerCount.WithValue(st, a.Range)
	case SetPlaytime:
		return Playtime.WithValue(st, a.Range)
	case SetComplexity:
		return Complexity.WithValue(st, a.Range)
	case SetRating:
		return Rating.WithValue(st, a.Range)
	case SetUsername:
		st.Username = a.Name
		return st
	case SetRatingsMode:
		st.Mode = parseMode(string(a.Mode))
		return st
	case ToggleExpansions:
		return Expansions.Toggle(st)
	case ToggleInvalidPlayerCount:
		return InvalidPlayerCount.Toggle(st)
	case ToggleNotRecommended:
		return NotRecommended.Toggle(st)
	default:
		panic(fmt.Sprintf("filter: unhandled action %T", a))
	}
}

// Dispatcher serializes action application: one action fully resolves,
// including its store sync, before the next is processed. Readers only
// ever see fully-settled State values.
type Dispatcher struct {
	mu    sync.Mutex
	store params.Store
}

func NewDispatcher(store params.Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// Dispatch reduces the action, syncs the new state into the store, and
// returns the new state.
func (d *Dispatcher) Dispatch(st State, a Action) State {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := Reduce(st, a)
	Sync(next, d.store)
	return next
}
