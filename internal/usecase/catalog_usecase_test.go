package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"storefront/internal/infrastructure/latency"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Queries(t *testing.T) {
	ctx := context.Background()
	uc := NewCatalogUseCase(newTestCatalog(t), nil)

	t.Run("list all is stable", func(t *testing.T) {
		first := uc.ListAll(ctx)
		second := uc.ListAll(ctx)
		if len(first) != 6 {
			t.Fatalf("expected 6 products, got %d", len(first))
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("list all changed between calls")
		}
	})

	t.Run("by category", func(t *testing.T) {
		got := uc.ListByCategory(ctx, "Accessories")
		if len(got) != 3 {
			t.Fatalf("expected 3 accessories, got %d", len(got))
		}
		for _, p := range got {
			if p.Category != "Accessories" {
				t.Fatalf("unexpected category %q", p.Category)
			}
		}
		if got := uc.ListByCategory(ctx, "Books"); len(got) != 0 {
			t.Fatalf("expected no books, got %d", len(got))
		}
	})

	t.Run("categories", func(t *testing.T) {
		got := uc.ListCategories(ctx)
		if !reflect.DeepEqual(got, []string{"Accessories", "Electronics"}) {
			t.Fatalf("unexpected categories: %v", got)
		}
	})

	t.Run("find by id", func(t *testing.T) {
		p, ok := uc.FindByID(ctx, "2")
		if !ok || p.Name != "Smart Watch" {
			t.Fatalf("unexpected lookup result: %+v ok=%v", p, ok)
		}
		if _, ok := uc.FindByID(ctx, "999"); ok {
			t.Fatalf("expected missing product")
		}
	})
}

func TestCatalogUseCase_Search(t *testing.T) {
	t.Run("matches name", func(t *testing.T) {
		uc := NewCatalogUseCase(newTestCatalog(t), nil)
		got, err := uc.Search(context.Background(), "headphones")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Wireless Headphones" {
			t.Fatalf("unexpected results: %+v", got)
		}
	})

	t.Run("waits search latency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sim := mock_interfaces.NewMockILatencySimulator(ctrl)
		sim.EXPECT().Wait(gomock.Any(), latency.OpSearch).Return(nil)

		uc := NewCatalogUseCase(newTestCatalog(t), sim)
		got, err := uc.Search(context.Background(), "WATCH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "2" {
			t.Fatalf("unexpected results: %+v", got)
		}
	})

	t.Run("cancelled wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sim := mock_interfaces.NewMockILatencySimulator(ctrl)
		sim.EXPECT().Wait(gomock.Any(), latency.OpSearch).Return(context.Canceled)

		uc := NewCatalogUseCase(newTestCatalog(t), sim)
		if _, err := uc.Search(context.Background(), "watch"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestCatalogUseCase_CalculateCartTotal(t *testing.T) {
	uc := NewCatalogUseCase(newTestCatalog(t), nil)

	t.Run("sums known products", func(t *testing.T) {
		got, err := uc.CalculateCartTotal(context.Background(), []string{"1", "3"}, []int{1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.StringFixed(2) != "359.97" {
			t.Fatalf("expected 359.97, got %s", got.StringFixed(2))
		}
	})

	t.Run("skips unknown products", func(t *testing.T) {
		got, err := uc.CalculateCartTotal(context.Background(), []string{"1", "999"}, []int{1, 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.StringFixed(2) != "199.99" {
			t.Fatalf("expected 199.99, got %s", got.StringFixed(2))
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := uc.CalculateCartTotal(context.Background(), []string{"1"}, nil)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
