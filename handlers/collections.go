// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mbickford/boardshelf/bgg"
	"github.com/mbickford/boardshelf/db"
	"github.com/mbickford/boardshelf/middleware"
	"github.com/mbickford/boardshelf/models"
)

type CollectionHandler struct {
	store *db.Store
	bgg   *bgg.Client
}

func NewCollectionHandler(store *db.Store, client *bgg.Client) *CollectionHandler {
	return &CollectionHandler{store: store, bgg: client}
}

// GetCollection handles GET /collections/{username}
// Returns cache bookkeeping, not the items; items are served by the view.
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	items, fetchedAt, err := h.store.LoadCollection(username)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Collection not fetched yet")
		return
	}
	if err != nil {
		slog.Error("failed to load collection", "username", username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CollectionSummary{
		Username:  username,
		ItemCount: humanize.Comma(int64(len(items))),
		FetchedAt: fetchedAt,
		Age:       humanize.Time(fetchedAt),
	})
}

// Refresh handles POST /collections/{username}/refresh
// Fetches the collection from BGG and replaces the cached copy.
func (h *CollectionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	items, err := h.bgg.Collection(r.Context(), username)
	if errors.Is(err, bgg.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such user or empty collection")
		return
	}
	if errors.Is(err, bgg.ErrQueued) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "BGG is still preparing the collection export, retry shortly")
		return
	}
	if err != nil {
		slog.Error("collection fetch failed", "username", username, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch collection from BGG")
		return
	}

	if err := h.store.SaveCollection(username, items, time.Now()); err != nil {
		slog.Error("failed to save collection", "username", username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save collection")
		return
	}

	slog.Info("collection refreshed", "username", username, "items", len(items))

	middleware.JSONResponse(w, http.StatusOK, models.RefreshResponse{
		Username:  username,
		ItemCount: humanize.Comma(int64(len(items))),
	})
}
