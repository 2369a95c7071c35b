package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/infrastructure/latency"
	"storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// IOrderUseCase places an order from parallel product id / quantity slices.
//
// The order either resolves completely or fails on the first unknown
// product. It is synthesized and returned once; nothing is stored.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, productIDs []string, quantities []int) (entities.Order, error)
}

type OrderUseCase struct {
	catalog interfaces.ICatalogReader
	latency interfaces.ILatencySimulator
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(catalog interfaces.ICatalogReader, sim interfaces.ILatencySimulator) *OrderUseCase {
	if sim == nil {
		sim = latency.Disabled()
	}
	return &OrderUseCase{catalog: catalog, latency: sim, now: time.Now}
}

func (u *OrderUseCase) PlaceOrder(ctx context.Context, productIDs []string, quantities []int) (entities.Order, error) {
	if err := u.latency.Wait(ctx, latency.OpPlaceOrder); err != nil {
		return entities.Order{}, err
	}

	if len(productIDs) != len(quantities) {
		return entities.Order{}, invalidInput("", "got %d product ids and %d quantities", len(productIDs), len(quantities))
	}
	if len(productIDs) == 0 {
		return entities.Order{}, invalidInput("", "Order must contain at least one item")
	}

	total := decimal.Zero
	items := make([]entities.OrderLine, 0, len(productIDs))
	for i, id := range productIDs {
		product, ok := u.catalog.FindByID(id)
		if !ok {
			log.Warn().Str("component", "order").Str("product_id", id).Msg("place order: product not found")
			return entities.Order{}, notFound(id, fmt.Sprintf("Product %s not found", id))
		}
		if quantities[i] < 1 {
			return entities.Order{}, invalidInput(id, "Quantity for product %s must be at least 1", id)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(quantities[i])))
		total = total.Add(subtotal)
		items = append(items, entities.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantities[i],
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		})
	}

	createdAt := u.now().UTC()
	orderID := fmt.Sprintf("ORD-%d", createdAt.UnixMilli())
	order := entities.Order{
		ID:        orderID,
		Items:     items,
		Total:     total.Round(2),
		Status:    entities.OrderStatusConfirmed,
		Message:   fmt.Sprintf("Order %s placed successfully!", orderID),
		CreatedAt: createdAt,
	}

	log.Info().Str("component", "order").Str("order_id", orderID).Int("items", len(items)).Str("total", order.Total.StringFixed(2)).Msg("order placed")
	return order, nil
}
