package usecase

import (
	"context"
	"storefront/internal/domain/entities"
	"storefront/internal/infrastructure/latency"
	"storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ICatalogUseCase exposes the read side of the storefront.
//
// None of these operations fail on a missing product: lookups report it
// through a bool, filters return an empty slice.

type ICatalogUseCase interface {
	ListAll(ctx context.Context) []entities.Product
	ListByCategory(ctx context.Context, category string) []entities.Product
	ListCategories(ctx context.Context) []string
	FindByID(ctx context.Context, id string) (entities.Product, bool)
	Search(ctx context.Context, term string) ([]entities.Product, error)
	CalculateCartTotal(ctx context.Context, productIDs []string, quantities []int) (decimal.Decimal, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogReader
	latency interfaces.ILatencySimulator
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogReader, sim interfaces.ILatencySimulator) *CatalogUseCase {
	if sim == nil {
		sim = latency.Disabled()
	}
	return &CatalogUseCase{catalog: catalog, latency: sim}
}

func (u *CatalogUseCase) ListAll(_ context.Context) []entities.Product {
	return u.catalog.All()
}

func (u *CatalogUseCase) ListByCategory(_ context.Context, category string) []entities.Product {
	return u.catalog.ByCategory(category)
}

func (u *CatalogUseCase) ListCategories(_ context.Context) []string {
	return u.catalog.Categories()
}

func (u *CatalogUseCase) FindByID(_ context.Context, id string) (entities.Product, bool) {
	return u.catalog.FindByID(id)
}

// Search matches term against name and description, ignoring case.
// Callers are expected to skip blank terms.
func (u *CatalogUseCase) Search(ctx context.Context, term string) ([]entities.Product, error) {
	if err := u.latency.Wait(ctx, latency.OpSearch); err != nil {
		return nil, err
	}

	res := u.catalog.Search(term)
	log.Debug().Str("component", "catalog").Str("term", term).Int("results", len(res)).Msg("search completed")
	return res, nil
}

// CalculateCartTotal prices a cart. Unknown product ids contribute nothing;
// use PlaceOrder when they must be rejected.
func (u *CatalogUseCase) CalculateCartTotal(_ context.Context, productIDs []string, quantities []int) (decimal.Decimal, error) {
	if len(productIDs) != len(quantities) {
		return decimal.Zero, invalidInput("", "got %d product ids and %d quantities", len(productIDs), len(quantities))
	}

	total := decimal.Zero
	for i, id := range productIDs {
		p, ok := u.catalog.FindByID(id)
		if !ok {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(quantities[i]))))
	}
	return total.Round(2), nil
}
