package handlers

import (
	"net/http"
	"strings"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	usecase usecase.IRatingUseCase
}

func NewRatingHandler(uc usecase.IRatingUseCase) *RatingHandler {
	return &RatingHandler{usecase: uc}
}

// UpdateRating godoc
// @Summary      Rate a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Product id"
// @Param        rating  body      request.UpdateRatingRequest  true  "Rating between 1 and 5"
// @Success      200     {object}  response.RatingResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /products/{id}/rating [put]
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	var payload request.UpdateRatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	confirmation, err := h.usecase.UpdateRating(c.Request.Context(), strings.TrimSpace(c.Param("id")), *payload.Rating)
	if err != nil {
		abortWithError(c, mapMutationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRating(confirmation))
}
