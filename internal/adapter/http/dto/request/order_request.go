package request

import "strings"

type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CartItemsRequest describes a cart either as a list of items or as the
// parallel product_ids / quantities arrays. Items wins when both are sent.
type CartItemsRequest struct {
	Items      []CartItemRequest `json:"items" binding:"omitempty,dive"`
	ProductIDs []string          `json:"product_ids"`
	Quantities []int             `json:"quantities"`
}

// Lines flattens the request into parallel slices. Mismatched arrays are
// passed through; the use cases reject them.
func (r CartItemsRequest) Lines() ([]string, []int) {
	if len(r.Items) > 0 {
		ids := make([]string, 0, len(r.Items))
		qtys := make([]int, 0, len(r.Items))
		for _, it := range r.Items {
			ids = append(ids, strings.TrimSpace(it.ProductID))
			qtys = append(qtys, it.Quantity)
		}
		return ids, qtys
	}

	ids := make([]string, 0, len(r.ProductIDs))
	for _, id := range r.ProductIDs {
		ids = append(ids, strings.TrimSpace(id))
	}
	return ids, append([]int(nil), r.Quantities...)
}
