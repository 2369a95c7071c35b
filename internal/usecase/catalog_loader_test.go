package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entities"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBuildCatalog(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		_, err := BuildCatalog(context.Background(), nil)
		if !errors.Is(err, ErrCatalogSourceNotConfigured) {
			t.Fatalf("expected ErrCatalogSourceNotConfigured, got %v", err)
		}
	})

	t.Run("source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockICatalogSource(ctrl)
		src.EXPECT().LoadProducts(gomock.Any()).Return(nil, errors.New("scan failed"))

		_, err := BuildCatalog(context.Background(), src)
		if err == nil || err.Error() != "load products: scan failed" {
			t.Fatalf("expected wrapped source error, got %v", err)
		}
	})

	t.Run("invalid products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockICatalogSource(ctrl)
		src.EXPECT().LoadProducts(gomock.Any()).Return([]entities.Product{{ID: "1", Rating: 9}}, nil)

		_, err := BuildCatalog(context.Background(), src)
		if !errors.Is(err, catalog.ErrRatingOutOfRange) {
			t.Fatalf("expected ErrRatingOutOfRange, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockICatalogSource(ctrl)
		src.EXPECT().LoadProducts(gomock.Any()).Return(catalog.DefaultProducts(), nil)

		c, err := BuildCatalog(context.Background(), src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Len() != 6 {
			t.Fatalf("expected 6 products, got %d", c.Len())
		}
	})
}
