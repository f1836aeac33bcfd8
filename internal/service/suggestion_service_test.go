package service

import (
	"context"
	"errors"
	"testing"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/estimator"
	"catering-suggest/internal/menu"
	"catering-suggest/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.Product {
	return []model.Product{
		{ID: "1", Name: "עוגת שוקולד", Category: "מתוקים", Price: 10},
		{ID: "2", Name: "בורקס", Category: "מלוחים", Price: 5},
		{ID: "3", Name: "עוגיות", Category: "מתוקים", Price: 8},
		{ID: "4", Name: "קיש", Category: "מלוחים", Price: 7},
		{ID: "5", Name: "מקרון", Category: "מתוקים", Price: 12},
		{ID: "6", Name: "פוקאצ'ה", Category: "מלוחים", Price: 9},
	}
}

func newTestSuggestionService(store CatalogStore) SuggestionService {
	return NewSuggestionService(
		store,
		menu.NewClassifier(menu.DefaultTable()),
		estimator.New(estimator.DefaultConfig()),
		zerolog.Nop(),
	)
}

func TestSuggestionService_Generate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		text             string
		snapshot         catalog.Snapshot
		wantLabel        string
		wantParticipants int
		wantTotal        float64
		wantWarning      string
	}{
		{
			name:             "Parve dinner with explicit headcount",
			text:             "הרמת כוסית ל-45 איש, עדיפות לפרווה",
			snapshot:         catalog.Snapshot{Products: testCatalog()},
			wantLabel:        "ארוחת ערב פרווה – אחרי צום / ערב חג",
			wantParticipants: 45,
			// sweets 10+8+12, savories 5+7, 3 trays
			wantTotal: 30 + 12 + 177,
		},
		{
			name:             "After work dinner with default headcount",
			text:             "אני רוצה ארוחת ערב לצוות",
			snapshot:         catalog.Snapshot{Products: testCatalog()},
			wantLabel:        "After Work – ארוחת ערב חלבית קלה",
			wantParticipants: 20,
			wantTotal:        30 + 12 + 118,
		},
		{
			name:             "Unmatched text falls back",
			text:             "משהו כללי ל-10 משתתפים",
			snapshot:         catalog.Snapshot{Products: testCatalog()},
			wantLabel:        string(menu.FallbackLabel),
			wantParticipants: 10,
			wantTotal:        30 + 12 + 59,
		},
		{
			name:             "Catalog unavailable returns warning",
			text:             "יום הולדת ל-30 איש",
			snapshot:         catalog.Snapshot{Products: []model.Product{}, Err: errors.New("timeout")},
			wantLabel:        "ימי הולדת במשרד",
			wantParticipants: 30,
			wantTotal:        118,
			wantWarning:      model.CatalogWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockCatalogStore)
			store.On("Snapshot").Return(tt.snapshot)

			svc := newTestSuggestionService(store)
			resp, err := svc.Generate(ctx, tt.text)

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantLabel, resp.Suggestion.MenuLabel)
			assert.Equal(t, tt.wantParticipants, resp.Suggestion.Participants)
			assert.InDelta(t, tt.wantTotal, resp.Suggestion.TotalCost, 0.0001)
			assert.Equal(t, tt.wantWarning, resp.Warning)
			assert.Contains(t, resp.Text, "• תפריט מזוהה: "+tt.wantLabel)
			store.AssertExpectations(t)
		})
	}
}

func TestSuggestionService_Generate_ContextCancelled(t *testing.T) {
	store := new(MockCatalogStore)
	svc := newTestSuggestionService(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := svc.Generate(ctx, "ל-20 איש")

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, resp)
	store.AssertNotCalled(t, "Snapshot")
}

func TestSuggestionService_Menus(t *testing.T) {
	svc := newTestSuggestionService(new(MockCatalogStore))

	resp := svc.Menus()

	table := menu.DefaultTable()
	require.Len(t, resp.Menus, len(table.Entries))
	for i, e := range table.Entries {
		assert.Equal(t, string(e.Label), resp.Menus[i].Label)
		assert.Equal(t, e.Keywords, resp.Menus[i].Keywords)
	}
	assert.Equal(t, string(menu.FallbackLabel), resp.Fallback)
}
