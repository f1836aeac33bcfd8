// Package catalog fetches the product catalog and keeps the latest snapshot.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"catering-suggest/internal/model"
	"catering-suggest/internal/repository"

	"github.com/rs/zerolog"
)

// DefaultURL is the public product catalog endpoint.
const DefaultURL = "https://picasso.co.il/api/products"

// maxCatalogBytes caps the size of a catalog response body.
const maxCatalogBytes = 10 << 20

// ErrUnexpectedStatus is returned when the catalog endpoint answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected catalog response status")

// Source supplies the full product list in catalog order.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Fetch returns every product of the catalog.
	Fetch(ctx context.Context) ([]model.Product, error)
}

// HTTPSource reads the catalog with a single GET request.
type HTTPSource struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPSource creates a catalog source for url with the given request timeout.
func NewHTTPSource(url string, timeout time.Duration, logger zerolog.Logger) *HTTPSource {
	return NewHTTPSourceWithClient(url, &http.Client{Timeout: timeout}, logger)
}

// NewHTTPSourceWithClient creates a catalog source using client.
func NewHTTPSourceWithClient(url string, client *http.Client, logger zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: client,
		logger: logger.With().Str("component", "catalog-http").Logger(),
	}
}

// Name implements Source.
func (s *HTTPSource) Name() string {
	return "http"
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("catalog request failed")
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", s.url).
			Msg("catalog endpoint returned an error status")
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}

	products, skipped, err := DecodeProducts(body)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("failed to decode catalog")
		return nil, err
	}

	if skipped > 0 {
		s.logger.Warn().Int("skipped", skipped).Msg("catalog contained non-object entries")
	}

	s.logger.Debug().Int("products", len(products)).Msg("catalog fetched")

	return products, nil
}

// RepositorySource reads the catalog from the product repository.
type RepositorySource struct {
	repo repository.ProductRepository
}

// NewRepositorySource creates a catalog source backed by repo.
func NewRepositorySource(repo repository.ProductRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

// Name implements Source.
func (s *RepositorySource) Name() string {
	return "postgres"
}

// Fetch implements Source.
func (s *RepositorySource) Fetch(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from repository: %w", err)
	}
	return products, nil
}
