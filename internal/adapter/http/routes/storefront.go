package routes

import (
	"storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathSearch     = "/search"
	PathCart       = "/cart"
	PathOrders     = "/orders"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
	ratingHandler *handlers.RatingHandler,
) {
	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.PUT("/:id/rating", ratingHandler.UpdateRating)
	}

	rg.GET(PathCategories, catalogHandler.ListCategories)
	// Not under /products: it would collide with /products/:id.
	rg.GET(PathSearch, catalogHandler.SearchProducts)

	cart := rg.Group(PathCart)
	{
		cart.POST("", cartHandler.AddToCart)
		cart.POST("/total", catalogHandler.CalculateCartTotal)
	}

	rg.POST(PathOrders, orderHandler.PlaceOrder)
}

// addPageRoutes mounts the server-rendered storefront at the root.
func addPageRoutes(router *gin.Engine, pageHandler *handlers.PageHandler) {
	router.GET("/", pageHandler.Storefront)
	router.GET(PathSearch, pageHandler.Search)
	router.POST(PathCart, pageHandler.AddToCart)
	router.POST("/checkout", pageHandler.Checkout)
	router.POST(PathProducts+"/:id/rating", pageHandler.UpdateRating)
}
