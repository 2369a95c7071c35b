package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain/catalog"
	"storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrCatalogSourceNotConfigured = errors.New("catalog source not configured")

// BuildCatalog reads the product list from src once and freezes it into
// the catalog every use case shares.
func BuildCatalog(ctx context.Context, src interfaces.ICatalogSource) (*catalog.Catalog, error) {
	if src == nil {
		return nil, ErrCatalogSourceNotConfigured
	}

	products, err := src.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	c, err := catalog.New(products)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	log.Info().Str("component", "catalog").Int("products", c.Len()).Strs("categories", c.Categories()).Msg("catalog loaded")
	return c, nil
}
