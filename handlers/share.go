// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/mbickford/boardshelf/cliparse"
	"github.com/mbickford/boardshelf/db"
	"github.com/mbickford/boardshelf/filter"
	"github.com/mbickford/boardshelf/ident"
	"github.com/mbickford/boardshelf/middleware"
	"github.com/mbickford/boardshelf/models"
	"github.com/mbickford/boardshelf/params"
)

type ShareHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewShareHandler(store *db.Store, cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{store: store, cfg: cfg}
}

// SaveView handles POST /views
// Persists a canonical form of the submitted filter query under a short
// share slug.
func (h *ShareHandler) SaveView(w http.ResponseWriter, r *http.Request) {
	var req models.SaveViewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	values, err := url.ParseQuery(req.Query)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid query string")
		return
	}

	// Round the query through the state machinery so the stored form is
	// canonical and minimal regardless of what the client sent.
	st := filter.StateFromStore(params.NewURLStore(values))
	st.Username = req.Username
	canonical := params.NewURLStore(nil)
	filter.Sync(st, canonical)

	viewID := uuid.NewString()
	slug := ident.ShareSlug(viewID, h.cfg.ViewSlugSalt)

	err = h.store.SaveView(db.SavedView{
		ID:        viewID,
		Slug:      slug,
		Username:  req.Username,
		Query:     canonical.Encode(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to save view", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save view")
		return
	}

	slog.Info("view saved", "slug", slug, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.SaveViewResponse{
		Slug:     slug,
		ShareURL: "/v/" + slug,
	})
}

// GetSavedView handles GET /v/{slug}
// Resolves a share slug back into the location carrying its filter state.
func (h *ShareHandler) GetSavedView(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	view, err := h.store.GetView(slug)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "View not found")
		return
	}
	if err != nil {
		slog.Error("failed to load saved view", "slug", slug, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SavedViewResponse{
		Slug:     view.Slug,
		Username: view.Username,
		Query:    view.Query,
		Location: "/collections/" + view.Username + "/view?" + view.Query,
	})
}
