package response

import (
	"time"

	"storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CartConfirmationResponse struct {
	Message  string          `json:"message"`
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

type CartTotalResponse struct {
	Total float64 `json:"total"`
}

type OrderLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type OrderResponse struct {
	OrderID   string              `json:"order_id"`
	Items     []OrderLineResponse `json:"items"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	CreatedAt time.Time           `json:"created_at"`
}

type RatingResponse struct {
	ProductID string  `json:"product_id"`
	Rating    float64 `json:"rating"`
	Message   string  `json:"message"`
}

func FromCartConfirmation(c entities.CartConfirmation) CartConfirmationResponse {
	return CartConfirmationResponse{
		Message:  c.Message,
		Product:  FromProduct(c.Product),
		Quantity: c.Quantity,
		AddedAt:  c.Line.AddedAt,
	}
}

func FromCartTotal(total decimal.Decimal) CartTotalResponse {
	return CartTotalResponse{Total: total.InexactFloat64()}
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderLineResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.InexactFloat64(),
			Subtotal:  it.Subtotal.InexactFloat64(),
		})
	}
	return OrderResponse{
		OrderID:   o.ID,
		Items:     items,
		Total:     o.Total.InexactFloat64(),
		Status:    string(o.Status),
		Message:   o.Message,
		CreatedAt: o.CreatedAt,
	}
}

func FromRating(r entities.RatingConfirmation) RatingResponse {
	return RatingResponse{
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Message:   r.Message,
	}
}
