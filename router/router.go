// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/mbickford/boardshelf/bgg"
	"github.com/mbickford/boardshelf/cliparse"
	"github.com/mbickford/boardshelf/db"
	"github.com/mbickford/boardshelf/handlers"
	"github.com/mbickford/boardshelf/middleware"
)

func NewRouter(store *db.Store, client *bgg.Client, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	collectionHandler := handlers.NewCollectionHandler(store, client)
	viewHandler := handlers.NewViewHandler(store)
	shareHandler := handlers.NewShareHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Collection cache
	mux.HandleFunc("GET /collections/{username}", middleware.WithLogging(collectionHandler.GetCollection))
	mux.HandleFunc("POST /collections/{username}/refresh", middleware.WithLogging(collectionHandler.Refresh))

	// Filtered view and action dispatch
	mux.HandleFunc("GET /collections/{username}/view", middleware.WithLogging(viewHandler.GetView))
	mux.HandleFunc("POST /collections/{username}/view/actions", middleware.WithLogging(viewHandler.Dispatch))

	// Shareable saved views
	mux.HandleFunc("POST /views", middleware.WithLogging(shareHandler.SaveView))
	mux.HandleFunc("GET /v/{slug}", middleware.WithLogging(shareHandler.GetSavedView))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("boardshelf API v1"))
	})

	return mux
}
