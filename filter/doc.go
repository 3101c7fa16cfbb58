// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package filter holds the filter state for one browsing session and the
criterion controls that read, transition, and persist it.

# State

State is a single value per session: four inclusive ranges (player count,
playtime, complexity, rating), a ratings mode, a username, and four
toggles. It is decoded once from the persisted store (StateFromStore),
replaced wholesale by every transition, and written back by Sync — which
deliberately no-ops for unnamed sessions.

# Criterion Controls

RangeCriterion and BoolCriterion factor the shared codec, transition, and
presentation logic out of the individual filters; each concrete criterion
supplies only its domain, step, state field, label, and membership
predicate. Open-ended criteria (player count, playtime) persist an extra
slider position past the domain max that means "no upper bound" and
appears in State as +Inf.

# Actions

Action is a closed tagged union with one variant per settable field.
Reduce is the pure transition; Dispatcher wraps it with store sync and
serializes concurrent callers. Dispatching an unknown Action variant
panics: the set is closed, so a miss is a programming error, not input.
*/
package filter
