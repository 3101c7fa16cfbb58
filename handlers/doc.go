// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP surface.

  - CollectionHandler: cache summary and BGG refresh
  - ViewHandler: the filtered/sorted/annotated view (GET) and the action
    dispatch entry point (POST), both keyed off the query-string filter
    state
  - ShareHandler: saved views behind short share slugs

The view endpoints treat the URL query string as the persisted filter
state: GET decodes it leniently (malformed values fall back to defaults),
POST dispatches one action against it and returns the canonical location
for the new state. Nothing here ever rejects a malformed filter value;
only malformed request bodies and unknown action names are client errors.
*/
package handlers
