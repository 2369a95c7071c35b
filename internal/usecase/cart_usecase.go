package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/infrastructure/latency"
	"storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// ICartUseCase simulates adding a product to the shopper's cart.
//
// Nothing is stored and no stock is reserved: calling it repeatedly never
// exhausts a product.

type ICartUseCase interface {
	AddToCart(ctx context.Context, productID string, quantity int) (entities.CartConfirmation, error)
}

type CartUseCase struct {
	catalog interfaces.ICatalogReader
	latency interfaces.ILatencySimulator
	now     func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(catalog interfaces.ICatalogReader, sim interfaces.ILatencySimulator) *CartUseCase {
	if sim == nil {
		sim = latency.Disabled()
	}
	return &CartUseCase{catalog: catalog, latency: sim, now: time.Now}
}

func (u *CartUseCase) AddToCart(ctx context.Context, productID string, quantity int) (entities.CartConfirmation, error) {
	if err := u.latency.Wait(ctx, latency.OpAddToCart); err != nil {
		return entities.CartConfirmation{}, err
	}

	productID = strings.TrimSpace(productID)
	product, ok := u.catalog.FindByID(productID)
	if !ok {
		log.Warn().Str("component", "cart").Str("product_id", productID).Msg("add to cart: product not found")
		return entities.CartConfirmation{}, notFound(productID, "Product not found")
	}
	if !product.InStock {
		log.Warn().Str("component", "cart").Str("product_id", productID).Msg("add to cart: product out of stock")
		return entities.CartConfirmation{}, outOfStock(productID)
	}
	if quantity < 1 {
		return entities.CartConfirmation{}, invalidInput(productID, "Quantity must be at least 1")
	}

	log.Info().Str("component", "cart").Str("product_id", productID).Int("quantity", quantity).Msg("add to cart succeeded")
	return entities.CartConfirmation{
		Message:  fmt.Sprintf("Added %d x %s to cart", quantity, product.Name),
		Product:  product,
		Quantity: quantity,
		Line: entities.CartLine{
			ProductID: product.ID,
			Quantity:  quantity,
			AddedAt:   u.now().UTC(),
		},
	}, nil
}
