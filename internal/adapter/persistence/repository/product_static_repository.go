package repository

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

// ProductStaticRepository serves the built-in product fixture.
type ProductStaticRepository struct{}

var _ interfaces.ICatalogSource = (*ProductStaticRepository)(nil)

func NewProductStaticRepository() *ProductStaticRepository {
	return &ProductStaticRepository{}
}

func (r *ProductStaticRepository) LoadProducts(_ context.Context) ([]entities.Product, error) {
	return catalog.DefaultProducts(), nil
}
