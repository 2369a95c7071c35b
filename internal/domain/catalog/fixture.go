package catalog

import (
	"storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultProducts returns the built-in demo catalog.
func DefaultProducts() []entities.Product {
	return []entities.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Description: "High-quality wireless headphones with active noise cancellation",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "🎧",
			InStock:     true,
			Category:    "Electronics",
			Rating:      4.5,
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Description: "Advanced fitness tracking and notifications",
			Price:       decimal.RequireFromString("299.99"),
			Image:       "⌚",
			InStock:     true,
			Category:    "Electronics",
			Rating:      4.3,
		},
		{
			ID:          "3",
			Name:        "Laptop Backpack",
			Description: "Durable backpack with multiple compartments",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "🎒",
			InStock:     true,
			Category:    "Accessories",
			Rating:      4.7,
		},
		{
			ID:          "4",
			Name:        "USB-C Cable",
			Description: "Fast charging USB-C cable, 2 meters",
			Price:       decimal.RequireFromString("19.99"),
			Image:       "🔌",
			InStock:     false,
			Category:    "Accessories",
			Rating:      4.2,
		},
		{
			ID:          "5",
			Name:        "Portable Speaker",
			Description: "Waterproof Bluetooth speaker with 12-hour battery",
			Price:       decimal.RequireFromString("89.99"),
			Image:       "🔊",
			InStock:     true,
			Category:    "Electronics",
			Rating:      4.6,
		},
		{
			ID:          "6",
			Name:        "Phone Mount",
			Description: "Universal car phone mount",
			Price:       decimal.RequireFromString("24.99"),
			Image:       "📱",
			InStock:     true,
			Category:    "Accessories",
			Rating:      4.4,
		},
	}
}
