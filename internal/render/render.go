// Package render formats a suggestion as the Hebrew text block shown to users.
package render

import (
	"fmt"
	"math"
	"strings"

	"catering-suggest/internal/model"

	"github.com/dustin/go-humanize"
)

// upgradeOptions is the fixed list appended to every suggestion.
var upgradeOptions = []string{
	"מיץ טבעי סחוט (1 לאדם)",
	"יין (1 לכל 20 משתתפים)",
	"סט כלים",
	"כוסות צ׳ייסר (1.2 לאדם)",
}

// Text renders s as a multi-line block.
func Text(s model.Suggestion) string {
	var b strings.Builder

	fmt.Fprintf(&b, "• תפריט מזוהה: %s\n", s.MenuLabel)
	fmt.Fprintf(&b, "• כמות משתתפים: %d\n", s.Participants)
	b.WriteString("\n• המלצה:\n")
	fmt.Fprintf(&b, "- %d פריטים מלוחים:\n", s.SavoryQty)
	fmt.Fprintf(&b, "  %s\n", itemList(s.SavoryItems))
	fmt.Fprintf(&b, "- %d פריטים מתוקים:\n", s.SweetQty)
	fmt.Fprintf(&b, "  %s\n", itemList(s.SweetItems))
	fmt.Fprintf(&b, "- %d מגשי ירקות\n", s.VeggieTrayQty)
	fmt.Fprintf(&b, "\n• עלות כוללת מוערכת: כ-%s ₪\n", Amount(s.TotalCost))
	b.WriteString("\n• אופציות שדרוג:")
	for _, opt := range upgradeOptions {
		b.WriteString("\n- ")
		b.WriteString(opt)
	}

	return b.String()
}

// Amount formats v with thousands separators and at most three decimals.
func Amount(v float64) string {
	return humanize.Commaf(math.Round(v*1000) / 1000)
}

func itemList(items []model.Product) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item.Name
	}
	return strings.Join(lines, "\n  ")
}
