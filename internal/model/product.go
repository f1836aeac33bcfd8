package model

// Product is a single catalog entry offered by the caterer.
type Product struct {
	ID       string  `json:"id,omitempty" db:"id"`
	Name     string  `json:"name" db:"name"`
	Category string  `json:"category" db:"category"`
	Price    float64 `json:"price" db:"price"`
	Position int     `json:"-" db:"position"`
}
