// Package estimator turns a headcount and a catalog snapshot into quantities,
// recommended items and a total cost.
package estimator

import (
	"math"

	"catering-suggest/internal/model"
)

// Config holds the per-person ratios and pricing used by Estimate.
type Config struct {
	SweetsPerPerson   float64
	SavoriesPerPerson float64

	// PeoplePerVeggieTray is how many participants one vegetable tray serves.
	PeoplePerVeggieTray float64
	VeggieTrayPrice     float64

	SweetCategory  string
	SavoryCategory string

	// SweetPicks and SavoryPicks cap how many catalog items are recommended.
	SweetPicks  int
	SavoryPicks int
}

// DefaultConfig returns the standard catering ratios.
func DefaultConfig() Config {
	return Config{
		SweetsPerPerson:     3,
		SavoriesPerPerson:   2,
		PeoplePerVeggieTray: 15,
		VeggieTrayPrice:     59,
		SweetCategory:       "מתוקים",
		SavoryCategory:      "מלוחים",
		SweetPicks:          3,
		SavoryPicks:         2,
	}
}

// Estimator computes suggestions. It holds no mutable state.
type Estimator struct {
	cfg Config
}

// New creates an estimator. Zero-valued fields of cfg take the defaults.
func New(cfg Config) *Estimator {
	def := DefaultConfig()
	if cfg.SweetsPerPerson <= 0 {
		cfg.SweetsPerPerson = def.SweetsPerPerson
	}
	if cfg.SavoriesPerPerson <= 0 {
		cfg.SavoriesPerPerson = def.SavoriesPerPerson
	}
	if cfg.PeoplePerVeggieTray <= 0 {
		cfg.PeoplePerVeggieTray = def.PeoplePerVeggieTray
	}
	if cfg.VeggieTrayPrice <= 0 {
		cfg.VeggieTrayPrice = def.VeggieTrayPrice
	}
	if cfg.SweetCategory == "" {
		cfg.SweetCategory = def.SweetCategory
	}
	if cfg.SavoryCategory == "" {
		cfg.SavoryCategory = def.SavoryCategory
	}
	if cfg.SweetPicks <= 0 {
		cfg.SweetPicks = def.SweetPicks
	}
	if cfg.SavoryPicks <= 0 {
		cfg.SavoryPicks = def.SavoryPicks
	}
	return &Estimator{cfg: cfg}
}

// Config returns the effective configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Estimate computes quantities and cost for participants against products.
// Items are the first matches in catalog order; a short catalog yields fewer
// items and a lower cost rather than an error.
func (e *Estimator) Estimate(participants int, products []model.Product) model.Suggestion {
	p := float64(participants)

	sweetItems := firstInCategory(products, e.cfg.SweetCategory, e.cfg.SweetPicks)
	savoryItems := firstInCategory(products, e.cfg.SavoryCategory, e.cfg.SavoryPicks)

	veggieTrays := int(math.Ceil(p / e.cfg.PeoplePerVeggieTray))

	s := model.Suggestion{
		Participants:  participants,
		SweetItems:    sweetItems,
		SavoryItems:   savoryItems,
		SweetQty:      int(math.Ceil(p * e.cfg.SweetsPerPerson)),
		SavoryQty:     int(math.Ceil(p * e.cfg.SavoriesPerPerson)),
		VeggieTrayQty: veggieTrays,
		SweetCost:     sumPrices(sweetItems),
		SavoryCost:    sumPrices(savoryItems),
		VeggieCost:    float64(veggieTrays) * e.cfg.VeggieTrayPrice,
	}
	s.TotalCost = s.SweetCost + s.SavoryCost + s.VeggieCost

	return s
}

// firstInCategory returns up to limit products whose category equals category exactly.
func firstInCategory(products []model.Product, category string, limit int) []model.Product {
	out := make([]model.Product, 0, limit)
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func sumPrices(products []model.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price
	}
	return total
}
