package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/infrastructure/latency"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRatingUseCase_UpdateRating(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		uc := NewRatingUseCase(nil)
		for _, r := range []float64{0, 0.99, 5.01, 6} {
			_, err := uc.UpdateRating(context.Background(), "1", r)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("rating %v: expected ErrInvalidInput, got %v", r, err)
			}
			if err.Error() != "Rating must be between 1 and 5" {
				t.Fatalf("unexpected message: %q", err.Error())
			}
		}
	})

	t.Run("bounds accepted", func(t *testing.T) {
		uc := NewRatingUseCase(nil)
		for _, r := range []float64{1, 3.5, 5} {
			if _, err := uc.UpdateRating(context.Background(), "1", r); err != nil {
				t.Fatalf("rating %v: unexpected error: %v", r, err)
			}
		}
	})

	t.Run("success message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sim := mock_interfaces.NewMockILatencySimulator(ctrl)
		sim.EXPECT().Wait(gomock.Any(), latency.OpUpdateRating).Return(nil)

		uc := NewRatingUseCase(sim)
		res, err := uc.UpdateRating(context.Background(), "1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Product 1 rating updated to 5" || res.Rating != 5 || res.ProductID != "1" {
			t.Fatalf("unexpected confirmation: %+v", res)
		}
	})
}
