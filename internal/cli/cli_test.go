package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catering-suggest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
	{"id": 1, "name": "עוגת גבינה", "category": "מתוקים", "price": 15},
	{"id": 2, "name": "בורקס", "category": "מלוחים", "price": "6.5"},
	{"id": 3, "name": "רוגלך", "category": "מתוקים", "price": 4}
]`

func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Text(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, catalogJSON)

	stdout, stderr, err := execute(t, "", "--catalog-url", srv.URL, "הרמת כוסית ל-45 איש, עדיפות לפרווה")

	require.NoError(t, err)
	assert.Contains(t, stdout, "• תפריט מזוהה: ארוחת ערב פרווה – אחרי צום / ערב חג")
	assert.Contains(t, stdout, "• כמות משתתפים: 45")
	assert.Contains(t, stdout, "- 90 פריטים מלוחים:\n  • בורקס\n")
	assert.Contains(t, stdout, "- 135 פריטים מתוקים:\n  • עוגת גבינה\n  • רוגלך\n")
	assert.Contains(t, stdout, "- 3 מגשי ירקות")
	assert.Contains(t, stdout, "כ-202.5 ₪")
	assert.NotContains(t, stderr, model.CatalogWarning)
}

func TestRootCommand_StdinAndJSON(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, catalogJSON)

	stdout, _, err := execute(t, "ישיבת צוות ל-12 משתתפים\n", "--catalog-url", srv.URL, "--json")
	require.NoError(t, err)

	var resp model.SuggestionResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "כיבוד קל למפגש צוות / ישיבה", resp.Suggestion.MenuLabel)
	assert.Equal(t, 12, resp.Suggestion.Participants)
	assert.Equal(t, 36, resp.Suggestion.SweetQty)
	assert.Empty(t, resp.Warning)
}

func TestRootCommand_CatalogUnavailable(t *testing.T) {
	srv := newCatalogServer(t, http.StatusInternalServerError, `oops`)

	stdout, stderr, err := execute(t, "", "--catalog-url", srv.URL, "יום הולדת")

	require.NoError(t, err)
	assert.Contains(t, stderr, model.CatalogWarning)
	assert.Contains(t, stdout, "• כמות משתתפים: 20")
	assert.Contains(t, stdout, "כ-118 ₪")
}

func TestRootCommand_MenuFile(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `[]`)

	path := filepath.Join(t.TempDir(), "menus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
menus:
  - label: "שבת חתן"
    keywords: ["חתן"]
fallback: "אחר"
`), 0o600))

	stdout, _, err := execute(t, "", "--catalog-url", srv.URL, "--menu-file", path, "שבת חתן ל-60 איש")

	require.NoError(t, err)
	assert.Contains(t, stdout, "• תפריט מזוהה: שבת חתן")
}

func TestRootCommand_MenuFileMissing(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `[]`)

	_, _, err := execute(t, "", "--catalog-url", srv.URL, "--menu-file", filepath.Join(t.TempDir(), "nope.yaml"), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load menu table")
}

func TestRootCommand_NoText(t *testing.T) {
	_, _, err := execute(t, "   \n")

	require.ErrorIs(t, err, ErrNoText)
}
