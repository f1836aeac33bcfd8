// Package menu maps free-text event descriptions to catering menu labels.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Label identifies one catering menu.
type Label string

// FallbackLabel is returned when no keyword of any menu appears in the text.
const FallbackLabel Label = "תפריט כללי – דרושה התאמה ידנית"

// Entry is one menu together with the keywords that select it.
type Entry struct {
	Label    Label    `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// KeywordTable is the ordered set of menus. Entry order is match priority:
// the first entry with a matching keyword wins.
type KeywordTable struct {
	Entries  []Entry `yaml:"menus"`
	Fallback Label   `yaml:"fallback"`
}

// ErrEmptyTable is returned when a table declares no menus.
var ErrEmptyTable = errors.New("keyword table has no menus")

// DefaultTable returns the built-in table of ten menus.
func DefaultTable() KeywordTable {
	return KeywordTable{
		Entries: []Entry{
			{Label: "Happy Hour – חלבי", Keywords: []string{"האפי האוור", "שעת שמחה", "happy hour"}},
			{Label: "After Work – ארוחת ערב חלבית קלה", Keywords: []string{"אחרי העבודה", "ארוחת ערב", "after work"}},
			{Label: "כיבוד קל למפגש צוות / ישיבה", Keywords: []string{"ישיבת צוות", "מפגש צוות", "כיבוד קל"}},
			{Label: "קפה של בוקר – Light Morning", Keywords: []string{"קפה של בוקר", "light morning", "הפסקת קפה"}},
			{Label: "ברכות והוקרות – אירוע פרידה / קידום", Keywords: []string{"פרידה", "קידום", "ברכות", "אירוע הוקרה"}},
			{Label: "אירוע לקוחות / פרזנטציה עסקית", Keywords: []string{"אירוע לקוחות", "פרזנטציה", "פגישה עסקית"}},
			{Label: "ארוחת ערב פרווה – אחרי צום / ערב חג", Keywords: []string{"ערב חג", "צום", "פרווה"}},
			{Label: "Sweet Time – הפסקת עשר מתוקה", Keywords: []string{"הפסקת עשר", "שעה עשר", "מתוק"}},
			{Label: "ימי הולדת במשרד", Keywords: []string{"יום הולדת", "ימי הולדת", "חגיגת יום הולדת"}},
			{Label: "כיבוד לאירוע חינוך / גני ילדים", Keywords: []string{"גן ילדים", "חינוך", "גני ילדים", "תלמידים"}},
		},
		Fallback: FallbackLabel,
	}
}

// ParseTable decodes a YAML keyword table. A missing fallback label
// defaults to FallbackLabel.
func ParseTable(data []byte) (KeywordTable, error) {
	var table KeywordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return KeywordTable{}, fmt.Errorf("failed to decode keyword table: %w", err)
	}

	if table.Fallback == "" {
		table.Fallback = FallbackLabel
	}

	if err := table.Validate(); err != nil {
		return KeywordTable{}, err
	}

	return table, nil
}

// Validate checks that every menu has a unique label and only non-blank keywords.
func (t KeywordTable) Validate() error {
	if len(t.Entries) == 0 {
		return ErrEmptyTable
	}

	if strings.TrimSpace(string(t.Fallback)) == "" {
		return fmt.Errorf("fallback label is required")
	}

	seen := make(map[Label]struct{}, len(t.Entries))
	for i, entry := range t.Entries {
		if strings.TrimSpace(string(entry.Label)) == "" {
			return fmt.Errorf("menu %d: label is required", i)
		}
		if _, dup := seen[entry.Label]; dup {
			return fmt.Errorf("menu %q: duplicate label", entry.Label)
		}
		seen[entry.Label] = struct{}{}

		if len(entry.Keywords) == 0 {
			return fmt.Errorf("menu %q: at least one keyword is required", entry.Label)
		}
		for _, kw := range entry.Keywords {
			// A blank keyword would match every text.
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("menu %q: blank keyword", entry.Label)
			}
		}
	}

	return nil
}
