package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"catering-suggest/internal/model"
	"catering-suggest/internal/service"

	"github.com/rs/zerolog"
)

// CatalogWarningHeader is set on text responses generated without a catalog.
const CatalogWarningHeader = "X-Catalog-Warning"

// SuggestionHandler handles suggestion-related HTTP requests.
type SuggestionHandler struct {
	service service.SuggestionService
	logger  zerolog.Logger
}

// NewSuggestionHandler creates a new suggestion handler.
func NewSuggestionHandler(service service.SuggestionService, logger zerolog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
		logger:  logger.With().Str("handler", "suggestion").Logger(),
	}
}

// Create handles POST /api/suggestions requests.
func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost, h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req model.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.Generate(r.Context(), req.Text)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	if wantsText(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if resp.Warning != "" {
			w.Header().Set(CatalogWarningHeader, "catalog unavailable")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(resp.Text))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Menus handles GET /api/menus requests.
func (h *SuggestionHandler) Menus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Menus())
}

func wantsText(r *http.Request) bool {
	if r.URL.Query().Get("format") == "text" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/plain")
}
