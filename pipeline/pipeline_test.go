// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/mbickford/boardshelf/filter"
	"github.com/mbickford/boardshelf/models"
	"github.com/mbickford/boardshelf/params"
	"github.com/mbickford/boardshelf/testutil"
)

func names(items []models.AnnotatedItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestApply_ExpansionFilter(t *testing.T) {
	expansion := testutil.Game(2, "Seafarers", 3, 4)
	expansion.Type = models.TypeExpansion
	items := []models.CollectionItem{testutil.Game(1, "Catan", 3, 4), expansion}

	st := filter.DefaultState()
	out := Apply(st, items)
	if !reflect.DeepEqual(names(out), []string{"Catan"}) {
		t.Errorf("Expected expansions dropped, got %v", names(out))
	}

	// An expansion stays excluded regardless of every other criterion
	// until the toggle allows it.
	st.PlayerCount = params.Range{Min: 3, Max: 4}
	out = Apply(st, items)
	for _, it := range out {
		if it.Type == models.TypeExpansion {
			t.Error("Expected expansion excluded despite matching ranges")
		}
	}

	st = filter.DefaultState()
	st.ShowExpansions = true
	out = Apply(st, items)
	if len(out) != 2 {
		t.Errorf("Expected both items with expansions shown, got %v", names(out))
	}
}

func TestApply_InvalidPollProjection(t *testing.T) {
	item := testutil.Game(1, "Catan", 3, 4)
	item.Polls = []models.PollEntry{
		testutil.Poll("2", 2, 1, 80), // outside the game's own 3-4 range
		testutil.Poll("3", 3, 5, 10),
		testutil.Poll("4", 4, 8, 5),
		testutil.Poll("4+", 5, -2, 90), // outside again
	}

	st := filter.DefaultState()
	out := Apply(st, []models.CollectionItem{item})
	if len(out) != 1 {
		t.Fatalf("Expected one item, got %d", len(out))
	}
	if len(out[0].Polls) != 2 {
		t.Fatalf("Expected out-of-range poll buckets projected away, got %d", len(out[0].Polls))
	}
	if out[0].Polls[0].NumPlayers != "3" || out[0].Polls[1].NumPlayers != "4" {
		t.Errorf("Expected buckets 3 and 4 to survive, got %+v", out[0].Polls)
	}

	st.ShowInvalidPlayerCount = true
	out = Apply(st, []models.CollectionItem{item})
	if len(out[0].Polls) != 4 {
		t.Errorf("Expected all poll buckets kept, got %d", len(out[0].Polls))
	}
}

// Scenario: a 2-4 player game never matches a [5,6] filter; the intervals
// are disjoint.
func TestApply_PlayerCountNeedsOverlap(t *testing.T) {
	st := filter.DefaultState()
	st.PlayerCount = params.Range{Min: 5, Max: 6}

	out := Apply(st, []models.CollectionItem{testutil.Game(1, "Catan", 2, 4)})
	if len(out) != 0 {
		t.Errorf("Expected no overlap, got %v", names(out))
	}
}

func TestApply_Annotation(t *testing.T) {
	item := testutil.Game(1, "Catan", 1, 10)
	item.Polls = []models.PollEntry{
		testutil.Poll("2", 2, 1, 10),
		testutil.Poll("3", 3, 5, 10),
		testutil.Poll("4+", 5, 2, 10),
	}

	st := filter.DefaultState()
	st.PlayerCount = params.Range{Min: 3, Max: math.Inf(1)}

	out := Apply(st, []models.CollectionItem{item})
	if len(out) != 1 {
		t.Fatalf("Expected one item, got %d", len(out))
	}

	flags := []bool{}
	for _, p := range out[0].Polls {
		flags = append(flags, p.WithinRange)
	}
	// Bucket 2 is below, bucket 3 inside, "4+" maps to 5 and is inside.
	if !reflect.DeepEqual(flags, []bool{false, true, true}) {
		t.Errorf("Expected [false true true], got %v", flags)
	}
}

func TestApply_NotRecommendedFilter(t *testing.T) {
	liked := testutil.Game(1, "Catan", 3, 3)
	liked.Polls = []models.PollEntry{testutil.Poll("3", 3, 5, 40)}

	disliked := testutil.Game(2, "Monopoly", 3, 3)
	disliked.Polls = []models.PollEntry{testutil.Poll("3", 3, -5, 80)}

	items := []models.CollectionItem{liked, disliked}

	st := filter.DefaultState()
	out := Apply(st, items)
	if !reflect.DeepEqual(names(out), []string{"Catan"}) {
		t.Errorf("Expected widely not-recommended item dropped, got %v", names(out))
	}

	st.ShowNotRecommended = true
	if out := Apply(st, items); len(out) != 2 {
		t.Errorf("Expected both kept with the toggle on, got %v", names(out))
	}

	// ShowInvalidPlayerCount also bypasses the recommendation gate.
	st = filter.DefaultState()
	st.ShowInvalidPlayerCount = true
	if out := Apply(st, items); len(out) != 2 {
		t.Errorf("Expected both kept with invalid counts shown, got %v", names(out))
	}
}

// Scenario: missing vote data is not grounds for exclusion.
func TestApply_MissingVoteDataKeepsItem(t *testing.T) {
	item := testutil.Game(1, "Obscurity", 3, 3)
	item.Polls = []models.PollEntry{testutil.Poll("3", 3, 0, -1)} // no vote data

	st := filter.DefaultState()
	out := Apply(st, []models.CollectionItem{item})
	if len(out) != 1 {
		t.Error("Expected item with missing vote data retained")
	}

	// But an item whose only in-range bucket is widely not recommended
	// still drops.
	item.Polls = []models.PollEntry{testutil.Poll("3", 3, 0, 80)}
	out = Apply(st, []models.CollectionItem{item})
	if len(out) != 0 {
		t.Error("Expected item with only a not-recommended bucket dropped")
	}
}

func TestApply_SortByNameAtDefaultRange(t *testing.T) {
	items := []models.CollectionItem{
		testutil.Game(1, "Terraforming Mars", 1, 5),
		testutil.Game(2, "Azul", 2, 4),
		testutil.Game(3, "Éclair", 2, 4), // locale-aware: É sorts with E
		testutil.Game(4, "Brass", 2, 4),
	}

	out := Apply(filter.DefaultState(), items)
	expected := []string{"Azul", "Brass", "Éclair", "Terraforming Mars"}
	if !reflect.DeepEqual(names(out), expected) {
		t.Errorf("Expected %v, got %v", expected, names(out))
	}
}

func TestApply_SortByRecommendationWithActiveRange(t *testing.T) {
	weak := testutil.Game(1, "Aardvark", 1, 6)
	weak.Polls = []models.PollEntry{
		testutil.Poll("3", 3, 1, 10),
		testutil.Poll("4", 4, 99, 10), // out of the active range, ignored
	}

	strong := testutil.Game(2, "Zulu", 1, 6)
	strong.Polls = []models.PollEntry{testutil.Poll("3", 3, 8, 10)}

	st := filter.DefaultState()
	st.PlayerCount = params.Range{Min: 3, Max: 3}

	out := Apply(st, []models.CollectionItem{weak, strong})
	expected := []string{"Zulu", "Aardvark"}
	if !reflect.DeepEqual(names(out), expected) {
		t.Errorf("Expected score-descending order %v, got %v", expected, names(out))
	}
}

func TestApply_Deterministic(t *testing.T) {
	items := []models.CollectionItem{
		testutil.Game(1, "Catan", 3, 4),
		testutil.Game(2, "Azul", 2, 4),
		testutil.Game(3, "Brass", 2, 4),
	}
	st := filter.DefaultState()
	st.PlayerCount = params.Range{Min: 2, Max: 4}

	first := Apply(st, items)
	second := Apply(st, items)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical input")
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	item := testutil.Game(1, "Catan", 3, 4)
	item.Polls = []models.PollEntry{
		testutil.Poll("2", 2, 1, 80),
		testutil.Poll("3", 3, 5, 10),
	}
	items := []models.CollectionItem{item}

	Apply(filter.DefaultState(), items)

	if len(items[0].Polls) != 2 {
		t.Error("Expected the source poll list untouched")
	}
}

// Widening a range never removes an item; narrowing never adds one.
func TestApply_FilterMonotonicity(t *testing.T) {
	items := []models.CollectionItem{
		testutil.Game(1, "Catan", 3, 4),
		testutil.Game(2, "Azul", 2, 4),
		testutil.Game(3, "Twilight Struggle", 2, 2),
		testutil.Game(4, "Diplomacy", 5, 7),
	}

	st := filter.DefaultState()
	st.PlayerCount = params.Range{Min: 3, Max: 4}
	narrow := Apply(st, items)

	st.PlayerCount = params.Range{Min: 2, Max: 5}
	wide := Apply(st, items)

	present := map[string]bool{}
	for _, n := range names(wide) {
		present[n] = true
	}
	for _, n := range names(narrow) {
		if !present[n] {
			t.Errorf("Widening removed %q", n)
		}
	}
	if len(wide) < len(narrow) {
		t.Error("Expected the wider range to keep at least as many items")
	}
}

func TestApplyTraced_TapObservesEveryStage(t *testing.T) {
	items := []models.CollectionItem{testutil.Game(1, "Catan", 3, 4)}

	var stages []string
	trace := func(stage string, out []models.AnnotatedItem) {
		stages = append(stages, stage)
	}

	traced := ApplyTraced(filter.DefaultState(), items, trace)
	plain := Apply(filter.DefaultState(), items)

	expected := []string{
		"expansions", "valid player counts",
		"players", "playtime", "complexity", "rating",
		"annotate", "not recommended", "sort",
	}
	if !reflect.DeepEqual(stages, expected) {
		t.Errorf("Expected stages %v, got %v", expected, stages)
	}

	// The tap never changes the output.
	if !reflect.DeepEqual(traced, plain) {
		t.Error("Expected traced output identical to untraced output")
	}
}
