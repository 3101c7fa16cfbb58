// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import "github.com/mbickford/boardshelf/params"

// BoolCriterion is the shared control behind the on/off toggles. All
// toggles default to false and share the codec in params.
type BoolCriterion struct {
	Key   string
	value func(*State) *bool
}

// Toggle returns st with this criterion's flag flipped.
func (c *BoolCriterion) Toggle(st State) State {
	*c.value(&st) = !*c.value(&st)
	return st
}

// Value extracts this criterion's flag from the state.
func (c *BoolCriterion) Value(st State) bool {
	return *c.value(&st)
}

// SetQueryParam encodes the flag, omitting the key when false.
func (c *BoolCriterion) SetQueryParam(store params.Store, st State) {
	params.EncodeBool(store, c.Key, c.Value(st), false)
}

func (c *BoolCriterion) withValue(st State, v bool) State {
	*c.value(&st) = v
	return st
}

var Expansions = &BoolCriterion{
	Key:   KeyExpansions,
	value: func(st *State) *bool { return &st.ShowExpansions },
}

var InvalidPlayerCount = &BoolCriterion{
	Key:   KeyInvalid,
	value: func(st *State) *bool { return &st.ShowInvalidPlayerCount },
}

var NotRecommended = &BoolCriterion{
	Key:   KeyNotRec,
	value: func(st *State) *bool { return &st.ShowNotRecommended },
}

var Debug = &BoolCriterion{
	Key:   KeyDebug,
	value: func(st *State) *bool { return &st.Debug },
}

var BoolCriteria = []*BoolCriterion{Expansions, InvalidPlayerCount, NotRecommended, Debug}
