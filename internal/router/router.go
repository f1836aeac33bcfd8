package router

import (
	"net/http"

	"catering-suggest/internal/handler"
	"catering-suggest/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	suggestionHandler *handler.SuggestionHandler,
	catalogHandler *handler.CatalogHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", catalogHandler.Health)

	// Register routes both with and without trailing slash
	mux.HandleFunc("/api/suggestions", suggestionHandler.Create)
	mux.HandleFunc("/api/suggestions/", suggestionHandler.Create)
	mux.HandleFunc("/api/menus", suggestionHandler.Menus)
	mux.HandleFunc("/api/menus/", suggestionHandler.Menus)
	mux.HandleFunc("/api/products", catalogHandler.List)
	mux.HandleFunc("/api/products/", catalogHandler.List)
	mux.HandleFunc("/api/catalog/refresh", catalogHandler.Refresh)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
