package handlers

import (
	"net/http"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// PlaceOrder accepts either items or parallel product_ids/quantities.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CartItemsRequest  true  "Order items"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.CartItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	ids, qtys := payload.Lines()
	order, err := h.usecase.PlaceOrder(c.Request.Context(), ids, qtys)
	if err != nil {
		abortWithError(c, mapMutationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}
