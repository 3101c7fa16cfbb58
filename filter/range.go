// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"math"
	"strconv"

	"github.com/mbickford/boardshelf/models"
	"github.com/mbickford/boardshelf/params"
)

// Tick is one labeled position on a slider.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// SliderConfig is the presentation configuration for one range criterion.
// Step 0 means continuous.
type SliderConfig struct {
	Key   string  `json:"key"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
	Ticks []Tick  `json:"ticks"`
	Label string  `json:"label"`
}

// RangeCriterion is the shared control behind the four range filters.
// Each instance differs only in its domain, step, open-endedness, label,
// state field, and membership predicate; codec and transition logic are
// common.
//
// Open-ended criteria expose one slider position past the finite domain
// max (players: 11 rendered "10+", playtime: 241 rendered "240+"). The
// persisted form carries that sentinel number; in State it is +Inf.
type RangeCriterion struct {
	Key       string
	Domain    params.Range // finite domain; OpenEnded adds the +Inf position
	Step      float64      // 0 = continuous
	OpenEnded bool

	label   func(State) string
	ticks   func() []Tick
	value   func(*State) *params.Range
	matches func(State, models.ItemInfo) bool
}

// Default returns the criterion's full-domain range, open end included.
func (c *RangeCriterion) Default() params.Range {
	if c.OpenEnded {
		return params.Range{Min: c.Domain.Min, Max: math.Inf(1)}
	}
	return c.Domain
}

// Value extracts this criterion's range from the state.
func (c *RangeCriterion) Value(st State) params.Range {
	return *c.value(&st)
}

// WithValue returns st with only this criterion's field replaced. The
// input is re-clamped into the domain even though callers are expected to
// send clamped values.
func (c *RangeCriterion) WithValue(st State, r params.Range) State {
	*c.value(&st) = c.normalize(r)
	return st
}

// Matches is the membership predicate for one item under the current state.
func (c *RangeCriterion) Matches(st State, info models.ItemInfo) bool {
	return c.matches(st, info)
}

// Config returns everything a slider widget needs to render this
// criterion.
func (c *RangeCriterion) Config(st State) SliderConfig {
	return SliderConfig{
		Key:   c.Key,
		Min:   c.Domain.Min,
		Max:   c.sliderMax(),
		Step:  c.Step,
		Ticks: c.ticks(),
		Label: c.label(st),
	}
}

// SetQueryParam encodes this criterion's value into the store, omitting
// the key when the value is the default.
func (c *RangeCriterion) SetQueryParam(store params.Store, st State) {
	params.EncodeRange(store, c.Key, c.toSlider(c.Value(st)), c.toSlider(c.Default()))
}

func (c *RangeCriterion) decode(store params.Store) params.Range {
	slider := params.Range{Min: c.Domain.Min, Max: c.sliderMax()}
	raw := params.ParseRange(store.Get(c.Key), slider, c.toSlider(c.Default()))
	return c.fromSlider(raw)
}

// sliderMax is the highest encodable position: the domain max, plus the
// sentinel position for open-ended criteria.
func (c *RangeCriterion) sliderMax() float64 {
	if c.OpenEnded {
		return c.Domain.Max + 1
	}
	return c.Domain.Max
}

func (c *RangeCriterion) toSlider(r params.Range) params.Range {
	if math.IsInf(r.Max, 1) {
		r.Max = c.sliderMax()
	}
	return r
}

func (c *RangeCriterion) fromSlider(r params.Range) params.Range {
	if c.OpenEnded && r.Max >= c.sliderMax() {
		r.Max = math.Inf(1)
	}
	r.Min = params.Clamp(r.Min, c.Domain.Min, c.Domain.Max)
	return r
}

func (c *RangeCriterion) normalize(r params.Range) params.Range {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	r.Min = params.Clamp(r.Min, c.Domain.Min, c.Domain.Max)
	if c.OpenEnded && r.Max >= c.sliderMax() {
		r.Max = math.Inf(1)
	}
	if !(c.OpenEnded && math.IsInf(r.Max, 1)) {
		r.Max = params.Clamp(r.Max, c.Domain.Min, c.Domain.Max)
	}
	if c.Step > 0 {
		r.Min = snap(r.Min, c.Step)
		if !math.IsInf(r.Max, 1) {
			r.Max = snap(r.Max, c.Step)
		}
	}
	return r
}

func snap(v, step float64) float64 {
	// Round through the step's decimal precision to avoid float drift
	// (7.3000000001 must encode as "7.3").
	snapped := math.Round(v/step) * step
	return math.Round(snapped*100) / 100
}

// The four concrete criteria.

var PlayerCount = &RangeCriterion{
	Key:       KeyPlayerCount,
	Domain:    params.Range{Min: 1, Max: 10},
	Step:      1,
	OpenEnded: true,
	label:     func(State) string { return "Number of players" },
	ticks: func() []Tick {
		ticks := make([]Tick, 0, 11)
		for v := 1; v <= 10; v++ {
			ticks = append(ticks, Tick{Value: float64(v), Label: strconv.Itoa(v)})
		}
		return append(ticks, Tick{Value: 11, Label: "10+"})
	},
	value: func(st *State) *params.Range { return &st.PlayerCount },
	matches: func(st State, info models.ItemInfo) bool {
		// A party-size criterion is about capability: the game's own
		// declared interval has to intersect the filter, not contain a
		// single point.
		return st.PlayerCount.Overlaps(float64(info.MinPlayers), float64(info.MaxPlayers))
	},
}

var Playtime = &RangeCriterion{
	Key:       KeyPlaytime,
	Domain:    params.Range{Min: 0, Max: 240},
	OpenEnded: true,
	label:     func(State) string { return "Playtime in minutes" },
	ticks: func() []Tick {
		ticks := make([]Tick, 0, 6)
		for v := 0; v <= 240; v += 60 {
			ticks = append(ticks, Tick{Value: float64(v), Label: strconv.Itoa(v)})
		}
		return append(ticks, Tick{Value: 241, Label: "240+"})
	},
	value: func(st *State) *params.Range { return &st.Playtime },
	matches: func(st State, info models.ItemInfo) bool {
		return st.Playtime.Overlaps(float64(info.MinPlaytime), float64(info.MaxPlaytime))
	},
}

var Complexity = &RangeCriterion{
	Key:    KeyComplexity,
	Domain: params.Range{Min: 1, Max: 5},
	label:  func(State) string { return "Complexity" },
	ticks: func() []Tick {
		ticks := make([]Tick, 0, 5)
		for v := 1; v <= 5; v++ {
			ticks = append(ticks, Tick{Value: float64(v), Label: strconv.Itoa(v)})
		}
		return ticks
	},
	value: func(st *State) *params.Range { return &st.Complexity },
	matches: func(st State, info models.ItemInfo) bool {
		return st.Complexity.Contains(info.AverageWeight)
	},
}

var Rating = &RangeCriterion{
	Key:    KeyRating,
	Domain: params.Range{Min: 1, Max: 10},
	Step:   0.1,
	label: func(st State) string {
		switch st.Mode {
		case ModeUser:
			return "Your rating"
		case ModeAverage:
			return "Average rating"
		}
		return "Rating"
	},
	ticks: func() []Tick {
		ticks := make([]Tick, 0, 10)
		for v := 1; v <= 10; v++ {
			ticks = append(ticks, Tick{Value: float64(v), Label: strconv.Itoa(v)})
		}
		return ticks
	},
	value: func(st *State) *params.Range { return &st.Rating },
}

// Assigned in init to avoid an initialization cycle: the closure calls
// ratingValue, which reads Rating.Domain.
func init() {
	Rating.matches = func(st State, info models.ItemInfo) bool {
		if st.Mode == ModeNone {
			return true
		}
		return st.Rating.Contains(ratingValue(st.Mode, info))
	}
}

// ratingValue picks the compared rating for the active mode. Missing
// ratings (an unrated game, or a game BGG has no votes for) compare as the
// domain minimum so they are never excluded by the default range.
func ratingValue(mode RatingsMode, info models.ItemInfo) float64 {
	if mode == ModeUser {
		if info.UserRating == nil {
			return Rating.Domain.Min
		}
		return *info.UserRating
	}
	if info.AverageRating <= 0 {
		return Rating.Domain.Min
	}
	return info.AverageRating
}

// RangeCriteria lists the range controls in the pipeline's fixed filter
// order: player count, playtime, complexity, ratings.
var RangeCriteria = []*RangeCriterion{PlayerCount, Playtime, Complexity, Rating}
