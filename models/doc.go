// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

  - CollectionItem: one immutable entry of a fetched BGG collection,
    carrying its ordered suggested_numplayers PollEntry list
  - PollEntry: one player-count recommendation bucket with a derived
    recommendation score and not-recommended percentage
  - AnnotatedItem / AnnotatedPollEntry: pipeline output, a fresh copy of a
    collection item whose poll entries are marked with membership in the
    active player-count range

Missing numeric data (an unrated game, a poll bucket with no votes) is
modeled as a nil *float64, never NaN: the value is absent, and absence
must not break JSON encoding or exclude an item from filtering.

# Request Types

  - ActionRequest: one dispatched filter action (type + payload)
  - SaveViewRequest: a canonical query string to persist under a share slug

# Response Types

  - CollectionSummary, RefreshResponse: cache bookkeeping
  - SaveViewResponse, SavedViewResponse: share slug round trip
  - ErrorResponse: error, message
*/
package models
