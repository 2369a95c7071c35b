package request

import "strings"

const defaultQuantity = 1

// AddToCartRequest is accepted both as JSON and as an HTML form post.
type AddToCartRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" form:"quantity"`
}

func (r AddToCartRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

// ResolveQuantity defaults a missing quantity to 1. An explicit value is
// passed through untouched so the use case can reject it.
func (r AddToCartRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return defaultQuantity
	}
	return *r.Quantity
}
