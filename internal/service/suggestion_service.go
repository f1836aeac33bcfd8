package service

import (
	"context"

	"catering-suggest/internal/estimator"
	"catering-suggest/internal/headcount"
	"catering-suggest/internal/menu"
	"catering-suggest/internal/model"
	"catering-suggest/internal/render"

	"github.com/rs/zerolog"
)

// suggestionService implements SuggestionService.
type suggestionService struct {
	store      CatalogStore
	classifier *menu.Classifier
	estimator  *estimator.Estimator
	logger     zerolog.Logger
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(store CatalogStore, classifier *menu.Classifier, est *estimator.Estimator, logger zerolog.Logger) SuggestionService {
	return &suggestionService{
		store:      store,
		classifier: classifier,
		estimator:  est,
		logger:     logger.With().Str("service", "suggestion").Logger(),
	}
}

// Generate builds a suggestion. An unavailable catalog is reported as a warning, not an error.
func (s *suggestionService) Generate(ctx context.Context, text string) (*model.SuggestionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := s.store.Snapshot()

	label := s.classifier.Classify(text)
	participants := headcount.Extract(text)

	suggestion := s.estimator.Estimate(participants, snapshot.Products)
	suggestion.MenuLabel = string(label)

	resp := &model.SuggestionResponse{
		Suggestion: suggestion,
		Text:       render.Text(suggestion),
		Warning:    snapshot.Warning(),
	}

	s.logger.Debug().
		Str("menu", suggestion.MenuLabel).
		Int("participants", participants).
		Int("catalog_size", len(snapshot.Products)).
		Float64("total_cost", suggestion.TotalCost).
		Bool("catalog_warning", resp.Warning != "").
		Msg("generated suggestion")

	return resp, nil
}

// Menus lists the keyword table.
func (s *suggestionService) Menus() model.MenuResponse {
	table := s.classifier.Table()

	entries := make([]model.MenuEntry, 0, len(table.Entries))
	for _, e := range table.Entries {
		entries = append(entries, model.MenuEntry{
			Label:    string(e.Label),
			Keywords: e.Keywords,
		})
	}

	return model.MenuResponse{
		Menus:    entries,
		Fallback: string(table.Fallback),
	}
}
