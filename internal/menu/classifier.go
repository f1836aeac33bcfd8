package menu

import "strings"

// Classifier picks a menu label for a free-text request. It is safe for
// concurrent use; the table is copied at construction and never modified.
type Classifier struct {
	table   KeywordTable
	entries []Entry // keywords lower-cased
}

// NewClassifier builds a classifier over a copy of table.
func NewClassifier(table KeywordTable) *Classifier {
	if table.Fallback == "" {
		table.Fallback = FallbackLabel
	}

	original := make([]Entry, len(table.Entries))
	lowered := make([]Entry, len(table.Entries))
	for i, entry := range table.Entries {
		keywords := make([]string, len(entry.Keywords))
		folded := make([]string, len(entry.Keywords))
		for j, kw := range entry.Keywords {
			keywords[j] = kw
			folded[j] = strings.ToLower(kw)
		}
		original[i] = Entry{Label: entry.Label, Keywords: keywords}
		lowered[i] = Entry{Label: entry.Label, Keywords: folded}
	}

	return &Classifier{
		table:   KeywordTable{Entries: original, Fallback: table.Fallback},
		entries: lowered,
	}
}

// Classify returns the first label, in table order, with any keyword contained
// in the lower-cased text. If nothing matches it returns the fallback label.
func (c *Classifier) Classify(text string) Label {
	lower := strings.ToLower(text)
	for _, entry := range c.entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Label
			}
		}
	}
	return c.table.Fallback
}

// Table returns the table the classifier was built from.
func (c *Classifier) Table() KeywordTable {
	entries := make([]Entry, len(c.table.Entries))
	for i, entry := range c.table.Entries {
		entries[i] = Entry{Label: entry.Label, Keywords: append([]string(nil), entry.Keywords...)}
	}
	return KeywordTable{Entries: entries, Fallback: c.table.Fallback}
}
