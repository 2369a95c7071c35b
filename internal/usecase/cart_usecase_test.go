package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/infrastructure/latency"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCartUseCase_AddToCart(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc := NewCartUseCase(newTestCatalog(t), nil)
		_, err := uc.AddToCart(context.Background(), "999", 1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if err.Error() != "Product not found" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		if kind, ok := KindOf(err); !ok || kind != KindNotFound {
			t.Fatalf("expected kind NOT_FOUND, got %q", kind)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		uc := NewCartUseCase(newTestCatalog(t), nil)
		_, err := uc.AddToCart(context.Background(), "4", 1)
		if !errors.Is(err, ErrOutOfStock) {
			t.Fatalf("expected ErrOutOfStock, got %v", err)
		}
		if errors.Is(err, ErrProductNotFound) {
			t.Fatalf("out of stock must not match not found")
		}
		if err.Error() != "Product is out of stock" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewCartUseCase(newTestCatalog(t), nil)
		_, err := uc.AddToCart(context.Background(), "1", 0)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("success never exhausts stock", func(t *testing.T) {
		uc := NewCartUseCase(newTestCatalog(t), nil)
		now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		uc.now = fixedClock(now)

		for i := 0; i < 3; i++ {
			res, err := uc.AddToCart(context.Background(), " 1 ", 2)
			if err != nil {
				t.Fatalf("unexpected error on call %d: %v", i, err)
			}
			if res.Message != "Added 2 x Wireless Headphones to cart" {
				t.Fatalf("unexpected message: %q", res.Message)
			}
			if res.Product.ID != "1" || res.Quantity != 2 {
				t.Fatalf("unexpected confirmation: %+v", res)
			}
			if res.Line.ProductID != "1" || !res.Line.AddedAt.Equal(now) {
				t.Fatalf("unexpected cart line: %+v", res.Line)
			}
		}
	})

	t.Run("waits add-to-cart latency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sim := mock_interfaces.NewMockILatencySimulator(ctrl)
		sim.EXPECT().Wait(gomock.Any(), latency.OpAddToCart).Return(context.DeadlineExceeded)

		uc := NewCartUseCase(newTestCatalog(t), sim)
		if _, err := uc.AddToCart(context.Background(), "1", 1); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected context.DeadlineExceeded, got %v", err)
		}
	})
}
