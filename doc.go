// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Boardshelf API server.

Boardshelf caches a user's BoardGameGeek collection and serves a
filterable, sortable view of it, with the whole filter selection encoded
round-trippably in the page URL's query string so any view is shareable.

# Starting the Server

The server reads configuration from CLI flags, the environment, or a
local .env file:

	VIEW_SLUG_SALT=... go run main.go

Or with flags:

	go run main.go -p 4180 -d boardshelf.db -slug-salt ...

# Configuration

Required settings:

  - VIEW_SLUG_SALT (-slug-salt): Secret for share slug HMAC

Optional settings:

  - PORT (-p): Server port (default: 4180)
  - DATABASE_URL (-d): Postgres connection string or sqlite file path
    (default: boardshelf.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - BGG_BASE_URL (-bgg): BGG XML API base (default: the real API)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (collections, view, dispatch, share)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - params: Persisted-parameter codec over the URL query string
  - filter: Filter state, criterion controls, reducer, sync
  - pipeline: The filtering/sorting/annotation pipeline
  - bgg: BGG XML API client
  - db: Schema and collection/saved-view storage
  - ident: Share slug generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
