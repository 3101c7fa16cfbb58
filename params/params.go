// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package params

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Store is a flat string key-value location that filter state is encoded
// into, typically the page URL's query string. Injected everywhere so the
// codec and sync logic stay testable without an ambient environment.
type Store interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

// URLStore adapts url.Values to the Store interface.
type URLStore struct {
	values url.Values
}

func NewURLStore(values url.Values) *URLStore {
	if values == nil {
		values = url.Values{}
	}
	return &URLStore{values: values}
}

func (s *URLStore) Get(key string) string { return s.values.Get(key) }
func (s *URLStore) Set(key, value string) { s.values.Set(key, value) }
func (s *URLStore) Delete(key string) { s.values.Del(key) }
func (s *URLStore) Values() url.Values { return s.values }

// Encode returns the canonical query-string form of the store.
func (s *URLStore) Encode() string { return s.values.Encode() }

// Range is an inclusive [Min, Max] interval. Max may be +Inf for
// open-ended criteria.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Overlaps reports whether [lo, hi] intersects the range. Used for
// capability-style criteria (a 2-4 player game matches a 3-6 filter).
func (r Range) Overlaps(lo, hi float64) bool {
	return lo <= r.Max && hi >= r.Min
}

type rangeJSON struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max"`
}

// MarshalJSON encodes an infinite Max as null; JSON has no Inf literal.
func (r Range) MarshalJSON() ([]byte, error) {
	out := rangeJSON{Min: r.Min}
	if !math.IsInf(r.Max, 1) {
		max := r.Max
		out.Max = &max
	}
	return json.Marshal(out)
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var in rangeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Min = in.Min
	if in.Max == nil {
		r.Max = math.Inf(1)
	} else {
		r.Max = *in.Max
	}
	return nil
}

// Clamp pins v into [lo, hi]. Idempotent.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseRange decodes "n" or "n-m" into a Range. A missing or non-numeric
// part falls back to the matching default bound; numeric parts are clamped
// into [domain.Min, domain.Max]. Never fails: unparsable input yields def.
func ParseRange(raw string, domain, def Range) Range {
	if raw == "" {
		return def
	}

	minPart := raw
	maxPart := ""
	hasMax := false
	if i := strings.IndexByte(raw, '-'); i >= 0 {
		minPart = raw[:i]
		maxPart = raw[i+1:]
		hasMax = true
	}

	out := Range{Min: def.Min, Max: def.Max}
	if v, err := strconv.ParseFloat(minPart, 64); err == nil {
		out.Min = Clamp(v, domain.Min, domain.Max)
	}
	if hasMax {
		if v, err := strconv.ParseFloat(maxPart, 64); err == nil {
			out.Max = Clamp(v, domain.Min, domain.Max)
		}
	} else if _, err := strconv.ParseFloat(minPart, 64); err == nil {
		// "n" is shorthand for the point range [n, n].
		out.Max = out.Min
	}

	if out.Min > out.Max {
		out.Min, out.Max = out.Max, out.Min
	}
	return out
}

// EncodeRange writes the range under key, or deletes the key when the
// value equals its default so the persisted form stays minimal.
func EncodeRange(store Store, key string, value, def Range) {
	if value == def {
		store.Delete(key)
		return
	}
	if value.Min == value.Max {
		store.Set(key, formatBound(value.Min))
		return
	}
	store.Set(key, formatBound(value.Min)+"-"+formatBound(value.Max))
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseBool decodes the canonical boolean encoding. Accepts 1/true/yes
// case-insensitively; anything else, including absence, is false.
func ParseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// EncodeBool writes "1" or "0" under key, omitting the key when the value
// equals its default.
func EncodeBool(store Store, key string, value, def bool) {
	if value == def {
		store.Delete(key)
		return
	}
	if value {
		store.Set(key, "1")
	} else {
		store.Set(key, "0")
	}
}
