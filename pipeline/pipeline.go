// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mbickford/boardshelf/filter"
	"github.com/mbickford/boardshelf/models"
)

// TraceFunc observes the surviving items after each stage. It must not
// mutate them; the pipeline output is identical with or without a trace.
type TraceFunc func(stage string, items []models.AnnotatedItem)

// Apply runs the full filtering/sorting pipeline over a raw collection.
// Pure and deterministic: the input slice is never mutated, and identical
// arguments always yield identically-ordered output.
func Apply(st filter.State, items []models.CollectionItem) []models.AnnotatedItem {
	return ApplyTraced(st, items, nil)
}

// ApplyTraced is Apply with an optional stage tap for debug
// instrumentation.
func ApplyTraced(st filter.State, items []models.CollectionItem, trace TraceFunc) []models.AnnotatedItem {
	tap := func(stage string, out []models.AnnotatedItem) {
		if trace != nil {
			trace(stage, out)
		}
	}

	// Stage 1: drop expansions unless shown. Annotated copies are built
	// here so every later stage works on the same shape; the flags are
	// settled in the annotation stage.
	out := make([]models.AnnotatedItem, 0, len(items))
	for _, it := range items {
		if it.Type != models.TypeBoardgame && !st.ShowExpansions {
			continue
		}
		out = append(out, annotatedCopy(it))
	}
	tap("expansions", out)

	// Stage 2: without ShowInvalidPlayerCount, project each item's poll
	// down to the buckets inside its own declared player range.
	if !st.ShowInvalidPlayerCount {
		for i := range out {
			out[i].Polls = projectValid(out[i])
		}
	}
	tap("valid player counts", out)

	// Stage 3: the four criterion filters, in their fixed order. The
	// filters commute; the order is kept for trace parity.
	for _, c := range filter.RangeCriteria {
		kept := out[:0:0]
		for _, it := range out {
			if c.Matches(st, it.ItemInfo) {
				kept = append(kept, it)
			}
		}
		out = kept
		tap(c.Key, out)
	}

	// Stage 4: mark each remaining poll bucket with membership in the
	// active player-count range.
	active := st.PlayerCount
	for i := range out {
		for j := range out[i].Polls {
			out[i].Polls[j].WithinRange = active.Contains(float64(out[i].Polls[j].PlayerCountValue))
		}
	}
	tap("annotate", out)

	// Stage 5: drop items no in-range bucket recommends. A bucket with no
	// vote data is not grounds for exclusion.
	if !st.ShowNotRecommended && !st.ShowInvalidPlayerCount {
		kept := out[:0:0]
		for _, it := range out {
			if recommendedSomewhere(it) {
				kept = append(kept, it)
			}
		}
		out = kept
	}
	tap("not recommended", out)

	sortItems(st, out)
	tap("sort", out)

	return out
}

func annotatedCopy(it models.CollectionItem) models.AnnotatedItem {
	polls := make([]models.AnnotatedPollEntry, len(it.Polls))
	for i, p := range it.Polls {
		polls[i] = models.AnnotatedPollEntry{PollEntry: p}
	}
	return models.AnnotatedItem{ItemInfo: it.ItemInfo, Polls: polls}
}

func projectValid(it models.AnnotatedItem) []models.AnnotatedPollEntry {
	kept := make([]models.AnnotatedPollEntry, 0, len(it.Polls))
	for _, p := range it.Polls {
		if p.PlayerCountValue >= it.MinPlayers && p.PlayerCountValue <= it.MaxPlayers {
			kept = append(kept, p)
		}
	}
	return kept
}

func recommendedSomewhere(it models.AnnotatedItem) bool {
	for _, p := range it.Polls {
		if !p.WithinRange {
			continue
		}
		if p.NotRecommendedPercent == nil || *p.NotRecommendedPercent <= 50 {
			return true
		}
	}
	return false
}

// sortItems orders the view. With an active player-count selection the
// best-recommended games for that party size come first; otherwise the
// collection reads alphabetically.
func sortItems(st filter.State, out []models.AnnotatedItem) {
	if st.PlayerCount != filter.PlayerCount.Default() {
		scores := make(map[int]float64, len(out))
		for _, it := range out {
			scores[it.ID] = recommendationScore(it)
		}
		sort.SliceStable(out, func(i, j int) bool {
			return scores[out[i].ID] > scores[out[j].ID]
		})
		return
	}

	coll := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(out[i].Name, out[j].Name) < 0
	})
}

func recommendationScore(it models.AnnotatedItem) float64 {
	var sum float64
	for _, p := range it.Polls {
		if p.WithinRange {
			sum += p.SortScore
		}
	}
	return sum
}
