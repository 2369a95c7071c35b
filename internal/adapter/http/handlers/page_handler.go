package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/domain/entities"
	"storefront/internal/presentation/viewstate"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	pageIndex    = "index.tmpl"
	pageSearch   = "search.tmpl"
	pageCart     = "cart.tmpl"
	pageCheckout = "checkout.tmpl"
	pageRating   = "rating.tmpl"
)

// demoCart is the cart the checkout panel submits when the form carries
// no items of its own.
var demoCart = []entities.CartLine{
	{ProductID: "1", Quantity: 1},
	{ProductID: "3", Quantity: 2},
}

// actionView is what a template sees of a viewstate.Machine.
type actionView[T any] struct {
	Status  string
	Result  T
	Message string
}

func viewOf[T any](s viewstate.State) actionView[T] {
	v := actionView[T]{Status: s.Name()}
	switch st := s.(type) {
	case viewstate.Succeeded[T]:
		v.Result = st.Result
	case viewstate.Failed:
		v.Message = st.Message
	}
	return v
}

type categorySection struct {
	Name     string
	Products []entities.Product
}

type cartItemView struct {
	Product  entities.Product
	Quantity int
}

type storefrontPage struct {
	Title     string
	Query     string
	Sections  []categorySection
	Cart      []cartItemView
	CartTotal decimal.Decimal
}

type actionPage[T any] struct {
	Title string
	Query string
	View  actionView[T]
}

// PageHandler renders the HTML storefront. Every server action a page
// triggers goes through its own viewstate.Machine, so a page shows exactly
// one of idle, result or error.
type PageHandler struct {
	catalog usecase.ICatalogUseCase
	cart    usecase.ICartUseCase
	order   usecase.IOrderUseCase
	rating  usecase.IRatingUseCase
}

func NewPageHandler(catalog usecase.ICatalogUseCase, cart usecase.ICartUseCase, order usecase.IOrderUseCase, rating usecase.IRatingUseCase) *PageHandler {
	return &PageHandler{catalog: catalog, cart: cart, order: order, rating: rating}
}

func (h *PageHandler) Storefront(c *gin.Context) {
	ctx := c.Request.Context()

	categories := h.catalog.ListCategories(ctx)
	sections := make([]categorySection, 0, len(categories))
	for _, name := range categories {
		sections = append(sections, categorySection{Name: name, Products: h.catalog.ListByCategory(ctx, name)})
	}

	ids := make([]string, 0, len(demoCart))
	qtys := make([]int, 0, len(demoCart))
	items := make([]cartItemView, 0, len(demoCart))
	for _, line := range demoCart {
		p, ok := h.catalog.FindByID(ctx, line.ProductID)
		if !ok {
			continue
		}
		ids = append(ids, line.ProductID)
		qtys = append(qtys, line.Quantity)
		items = append(items, cartItemView{Product: p, Quantity: line.Quantity})
	}

	total, err := h.catalog.CalculateCartTotal(ctx, ids, qtys)
	if err != nil {
		log.Error().Err(err).Str("component", "pages").Msg("demo cart total failed")
	}

	c.HTML(http.StatusOK, pageIndex, storefrontPage{
		Title:     "Products",
		Sections:  sections,
		Cart:      items,
		CartTotal: total,
	})
}

// Search leaves the view idle for a blank query; no search runs.
func (h *PageHandler) Search(c *gin.Context) {
	query := c.Query("q")

	state, status := viewstate.State(viewstate.Idle{}), http.StatusOK
	if strings.TrimSpace(query) != "" {
		state, status = runAction(c.Request.Context(), func(ctx context.Context) ([]entities.Product, error) {
			return h.catalog.Search(ctx, query)
		})
	}

	c.HTML(status, pageSearch, actionPage[[]entities.Product]{
		Title: "Search",
		Query: query,
		View:  viewOf[[]entities.Product](state),
	})
}

func (h *PageHandler) AddToCart(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	quantity, convErr := formInt(c.DefaultPostForm("quantity", "1"))

	state, status := runAction(c.Request.Context(), func(ctx context.Context) (entities.CartConfirmation, error) {
		if convErr != nil {
			return entities.CartConfirmation{}, invalidForm(productID, "Quantity must be a number")
		}
		return h.cart.AddToCart(ctx, productID, quantity)
	})

	c.HTML(status, pageCart, actionPage[entities.CartConfirmation]{
		Title: "Cart",
		View:  viewOf[entities.CartConfirmation](state),
	})
}

// Checkout places the posted cart, or the demo cart when the form is empty.
func (h *PageHandler) Checkout(c *gin.Context) {
	ids := c.PostFormArray("product_id")
	rawQtys := c.PostFormArray("quantity")
	if len(ids) == 0 && len(rawQtys) == 0 {
		for _, line := range demoCart {
			ids = append(ids, line.ProductID)
			rawQtys = append(rawQtys, strconv.Itoa(line.Quantity))
		}
	}

	state, status := runAction(c.Request.Context(), func(ctx context.Context) (entities.Order, error) {
		qtys := make([]int, 0, len(rawQtys))
		for _, raw := range rawQtys {
			q, err := formInt(raw)
			if err != nil {
				return entities.Order{}, invalidForm("", "Quantity must be a number")
			}
			qtys = append(qtys, q)
		}
		return h.order.PlaceOrder(ctx, ids, qtys)
	})

	c.HTML(status, pageCheckout, actionPage[entities.Order]{
		Title: "Checkout",
		View:  viewOf[entities.Order](state),
	})
}

func (h *PageHandler) UpdateRating(c *gin.Context) {
	productID := strings.TrimSpace(c.Param("id"))
	rating, convErr := strconv.ParseFloat(strings.TrimSpace(c.PostForm("rating")), 64)

	state, status := runAction(c.Request.Context(), func(ctx context.Context) (entities.RatingConfirmation, error) {
		if convErr != nil {
			return entities.RatingConfirmation{}, invalidForm(productID, "Rating must be between 1 and 5")
		}
		return h.rating.UpdateRating(ctx, productID, rating)
	})

	c.HTML(status, pageRating, actionPage[entities.RatingConfirmation]{
		Title: "Rating",
		View:  viewOf[entities.RatingConfirmation](state),
	})
}

// runAction drives a fresh machine through fn and returns the settled state
// with the status code the page should carry.
func runAction[T any](ctx context.Context, fn func(context.Context) (T, error)) (viewstate.State, int) {
	var actionErr error
	state := viewstate.New[T]().Run(ctx, func(ctx context.Context) (T, error) {
		res, err := fn(ctx)
		actionErr = err
		return res, err
	})
	if actionErr == nil {
		return state, http.StatusOK
	}

	appErr := mapMutationError(actionErr)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(actionErr).Str("component", "pages").Msg("server action failed")
	}
	return state, appErr.HTTPStatus
}

func invalidForm(productID, message string) error {
	return &usecase.MutationError{Kind: usecase.KindInvalidInput, ProductID: productID, Message: message}
}

func formInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
