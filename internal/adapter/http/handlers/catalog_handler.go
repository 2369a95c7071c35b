package handlers

import (
	"net/http"
	"strings"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalog endpoints.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts returns every product, or only one category when
// ?category= is present.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Exact, case-sensitive category"
// @Success      200       {object}  response.ProductListResponse
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	if category, ok := c.GetQuery("category"); ok {
		c.JSON(http.StatusOK, response.FromProducts(h.usecase.ListByCategory(ctx, category)))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(h.usecase.ListAll(ctx)))
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.usecase.FindByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if !ok {
		abortWithError(c, errProductNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// ListCategories godoc
// @Summary      List categories
// @Tags         products
// @Produce      json
// @Success      200  {object}  response.CategoriesResponse
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCategories(h.usecase.ListCategories(c.Request.Context())))
}

// SearchProducts answers a blank ?q= with no results without running the
// search.
//
// @Summary      Search products by name or description
// @Tags         products
// @Produce      json
// @Param        q    query     string  true  "Search term"
// @Success      200  {object}  response.SearchResponse
// @Router       /search [get]
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusOK, response.FromSearch(query, nil))
		return
	}

	products, err := h.usecase.Search(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, mapMutationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSearch(query, products))
}

// CalculateCartTotal godoc
// @Summary      Price a cart
// @Description  Unknown product ids contribute nothing to the total.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        cart  body      request.CartItemsRequest  true  "Cart"
// @Success      200   {object}  response.CartTotalResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /cart/total [post]
func (h *CatalogHandler) CalculateCartTotal(c *gin.Context) {
	var payload request.CartItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	ids, qtys := payload.Lines()
	total, err := h.usecase.CalculateCartTotal(c.Request.Context(), ids, qtys)
	if err != nil {
		abortWithError(c, mapMutationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartTotal(total))
}
