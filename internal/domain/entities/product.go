package entities

import "github.com/shopspring/decimal"

// Product is a catalog entry.
//
// Domain notes:
//   - Products are created once at startup from the catalog source and never
//     mutated or deleted afterwards.
//   - Price is kept as a decimal so order totals are exact before rounding.
//   - Rating is bounded to [MinRating, MaxRating].
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	InStock     bool            `json:"in_stock"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
}

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// ValidRating reports whether r is inside the accepted rating range.
func ValidRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}
