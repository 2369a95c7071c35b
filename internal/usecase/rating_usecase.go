package usecase

import (
	"context"
	"strconv"
	"strings"

	"storefront/internal/domain/entities"
	"storefront/internal/infrastructure/latency"
	"storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IRatingUseCase validates a rating and confirms it. The catalog is left
// untouched.

type IRatingUseCase interface {
	UpdateRating(ctx context.Context, productID string, rating float64) (entities.RatingConfirmation, error)
}

type RatingUseCase struct {
	latency interfaces.ILatencySimulator
}

var _ IRatingUseCase = (*RatingUseCase)(nil)

func NewRatingUseCase(sim interfaces.ILatencySimulator) *RatingUseCase {
	if sim == nil {
		sim = latency.Disabled()
	}
	return &RatingUseCase{latency: sim}
}

func (u *RatingUseCase) UpdateRating(ctx context.Context, productID string, rating float64) (entities.RatingConfirmation, error) {
	if err := u.latency.Wait(ctx, latency.OpUpdateRating); err != nil {
		return entities.RatingConfirmation{}, err
	}

	productID = strings.TrimSpace(productID)
	if !entities.ValidRating(rating) {
		log.Warn().Str("component", "rating").Str("product_id", productID).Float64("rating", rating).Msg("update rating: out of range")
		return entities.RatingConfirmation{}, invalidInput(productID, "Rating must be between 1 and 5")
	}

	log.Info().Str("component", "rating").Str("product_id", productID).Float64("rating", rating).Msg("rating updated")
	return entities.RatingConfirmation{
		ProductID: productID,
		Rating:    rating,
		Message:   "Product " + productID + " rating updated to " + strconv.FormatFloat(rating, 'f', -1, 64),
	}, nil
}
