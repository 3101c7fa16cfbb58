// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mbickford/boardshelf/db"
	"github.com/mbickford/boardshelf/filter"
	"github.com/mbickford/boardshelf/middleware"
	"github.com/mbickford/boardshelf/models"
	"github.com/mbickford/boardshelf/params"
	"github.com/mbickford/boardshelf/pipeline"
)

// ViewResponse carries everything the rendering shell needs: the settled
// state, per-criterion slider configuration, the annotated items, and the
// canonical query string for the address bar.
type ViewResponse struct {
	State          filter.State                   `json:"state"`
	Configs        map[string]filter.SliderConfig `json:"configs"`
	Items          []models.AnnotatedItem         `json:"items"`
	CanonicalQuery string                         `json:"canonical_query"`
}

// DispatchResponse carries the state after one action and the location
// the client should navigate to (replace, not push: one entry per
// committed change).
type DispatchResponse struct {
	State    filter.State `json:"state"`
	Location string       `json:"location"`
}

type ViewHandler struct {
	store *db.Store
}

func NewViewHandler(store *db.Store) *ViewHandler {
	return &ViewHandler{store: store}
}

// GetView handles GET /collections/{username}/view
// The query string is the persisted filter state; malformed values fall
// back to defaults rather than failing.
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	items, _, err := h.store.LoadCollection(username)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Collection not fetched yet")
		return
	}
	if err != nil {
		slog.Error("failed to load collection", "username", username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	qstore := params.NewURLStore(r.URL.Query())
	st := filter.StateFromStore(qstore)
	st.Username = username // the path segment is the session identity

	var trace pipeline.TraceFunc
	if st.Debug {
		trace = slogTrace
	}
	view := pipeline.ApplyTraced(st, items, trace)

	middleware.JSONResponse(w, http.StatusOK, ViewResponse{
		State:          st,
		Configs:        sliderConfigs(st),
		Items:          view,
		CanonicalQuery: canonicalQuery(st),
	})
}

// Dispatch handles POST /collections/{username}/view/actions
// Applies one filter action to the state encoded in the query string and
// returns the new state plus the location carrying it.
func (h *ViewHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	var req models.ActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	action, err := actionFromRequest(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	qstore := params.NewURLStore(r.URL.Query())
	st := filter.StateFromStore(qstore)
	st.Username = username

	next := filter.NewDispatcher(qstore).Dispatch(st, action)

	slog.Info("action dispatched", "username", username, "action", req.Type)

	middleware.JSONResponse(w, http.StatusOK, DispatchResponse{
		State:    next,
		Location: "/collections/" + username + "/view?" + qstore.Encode(),
	})
}

// actionFromRequest maps the wire action names onto the closed Action
// set. An unknown name is a client error here; only an unhandled variant
// inside filter.Reduce is a programming error.
func actionFromRequest(req models.ActionRequest) (filter.Action, error) {
	rangeOf := func(c *filter.RangeCriterion) params.Range {
		r := c.Default()
		if req.Min != nil {
			r.Min = *req.Min
		}
		if req.Max != nil {
			r.Max = *req.Max
		}
		return r
	}

	switch req.Type {
	case "set-player-count":
		return filter.SetPlayerCount{Range: rangeOf(filter.PlayerCount)}, nil
	case "set-playtime":
		return filter.SetPlaytime{Range: rangeOf(filter.Playtime)}, nil
	case "set-complexity":
		return filter.SetComplexity{Range: rangeOf(filter.Complexity)}, nil
	case "set-rating":
		return filter.SetRating{Range: rangeOf(filter.Rating)}, nil
	case "set-username":
		return filter.SetUsername{Name: req.Value}, nil
	case "set-ratings-mode":
		return filter.SetRatingsMode{Mode: filter.RatingsMode(req.Value)}, nil
	case "toggle-expansions":
		return filter.ToggleExpansions{}, nil
	case "toggle-invalid-player-count":
		return filter.ToggleInvalidPlayerCount{}, nil
	case "toggle-not-recommended":
		return filter.ToggleNotRecommended{}, nil
	}
	return nil, fmt.Errorf("unknown action type %q", req.Type)
}

func sliderConfigs(st filter.State) map[string]filter.SliderConfig {
	configs := make(map[string]filter.SliderConfig, len(filter.RangeCriteria))
	for _, c := range filter.RangeCriteria {
		configs[c.Key] = c.Config(st)
	}
	return configs
}

// canonicalQuery re-encodes the settled state into its minimal persisted
// form.
func canonicalQuery(st filter.State) string {
	store := params.NewURLStore(nil)
	filter.Sync(st, store)
	return store.Encode()
}

// slogTrace logs every surviving item after each pipeline stage. Debug
// only; observes and never mutates.
func slogTrace(stage string, items []models.AnnotatedItem) {
	for _, it := range items {
		slog.Debug("pipeline item", slog.Group(stage, "id", it.ID, "name", it.Name))
	}
}
