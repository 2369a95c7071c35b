package handlers

import (
	"net/http"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// AddToCart godoc
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        item  body      request.AddToCartRequest  true  "Product and quantity (defaults to 1)"
// @Success      200   {object}  response.CartConfirmationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /cart [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var payload request.AddToCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	confirmation, err := h.usecase.AddToCart(c.Request.Context(), payload.ResolveProductID(), payload.ResolveQuantity())
	if err != nil {
		abortWithError(c, mapMutationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartConfirmation(confirmation))
}
