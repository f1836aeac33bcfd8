package handler

import (
	"net/http"
	"strconv"
	"time"

	"catering-suggest/internal/model"
	"catering-suggest/internal/service"

	"github.com/rs/zerolog"
)

// HealthResponse reports service and catalog state.
type HealthResponse struct {
	Status  string        `json:"status"`
	Catalog CatalogHealth `json:"catalog"`
}

// CatalogHealth describes the current catalog snapshot.
type CatalogHealth struct {
	Products  int        `json:"products"`
	FetchedAt *time.Time `json:"fetchedAt,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}

// RefreshResponse is returned after a successful manual refresh.
type RefreshResponse struct {
	Products int `json:"products"`
}

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/products requests with pagination.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet, h.logger)
		return
	}

	query := r.URL.Query()

	limit, err := intParam(query.Get("limit"), 10)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid limit parameter", h.logger)
		return
	}

	offset, err := intParam(query.Get("offset"), 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid offset parameter", h.logger)
		return
	}

	products, err := h.service.GetAll(r.Context(), limit, offset, query.Get("category"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Refresh handles POST /api/catalog/refresh requests.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost, h.logger)
		return
	}

	count, err := h.service.Refresh(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{Products: count})
}

// Health handles GET /health requests. A failed last refresh reports "degraded".
func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Status()

	resp := HealthResponse{
		Status:  "healthy",
		Catalog: CatalogHealth{Products: len(snapshot.Products)},
	}
	if !snapshot.FetchedAt.IsZero() {
		fetchedAt := snapshot.FetchedAt
		resp.Catalog.FetchedAt = &fetchedAt
	}
	if snapshot.Err != nil {
		resp.Status = "degraded"
		resp.Catalog.LastError = snapshot.Err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}

func intParam(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
