// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pipeline turns a raw collection into the annotated, filtered,
sorted view for the current filter state.

Stages run in a fixed order: expansion filter, valid-player-count
projection, the four criterion filters, poll annotation, the
not-recommended filter, and the sort. Apply is pure — it copies items
rather than touching the shared source slice — and re-entrant across
independent calls.

ApplyTraced threads an optional tap through every stage boundary for
debug instrumentation. The tap observes surviving items; it can never
change what the pipeline returns.
*/
package pipeline
