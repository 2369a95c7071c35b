package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// ICatalogSource loads the product list the catalog is built from.
//
// It is read exactly once at startup. Implementations:
//   - static fixture (default)
//   - DynamoDB products table

type ICatalogSource interface {
	LoadProducts(ctx context.Context) ([]entities.Product, error)
}
