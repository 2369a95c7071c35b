package request

import "testing"

func TestAddToCartRequest_Resolve(t *testing.T) {
	r := AddToCartRequest{ProductID: "  1 "}
	if r.ResolveProductID() != "1" {
		t.Fatalf("unexpected product id: %q", r.ResolveProductID())
	}
	if r.ResolveQuantity() != 1 {
		t.Fatalf("missing quantity should default to 1, got %d", r.ResolveQuantity())
	}

	zero := 0
	r.Quantity = &zero
	if r.ResolveQuantity() != 0 {
		t.Fatalf("explicit quantity must be kept, got %d", r.ResolveQuantity())
	}
}

func TestCartItemsRequest_Lines(t *testing.T) {
	t.Run("items", func(t *testing.T) {
		r := CartItemsRequest{
			Items:      []CartItemRequest{{ProductID: " 1", Quantity: 1}, {ProductID: "3", Quantity: 2}},
			ProductIDs: []string{"ignored"},
		}
		ids, qtys := r.Lines()
		if len(ids) != 2 || ids[0] != "1" || ids[1] != "3" || qtys[0] != 1 || qtys[1] != 2 {
			t.Fatalf("unexpected result: %v %v", ids, qtys)
		}
	})

	t.Run("parallel arrays", func(t *testing.T) {
		r := CartItemsRequest{ProductIDs: []string{"1 ", "3"}, Quantities: []int{1, 2}}
		ids, qtys := r.Lines()
		if len(ids) != 2 || ids[0] != "1" || len(qtys) != 2 {
			t.Fatalf("unexpected result: %v %v", ids, qtys)
		}
	})

	t.Run("mismatch is kept", func(t *testing.T) {
		r := CartItemsRequest{ProductIDs: []string{"1", "3"}, Quantities: []int{1}}
		ids, qtys := r.Lines()
		if len(ids) != 2 || len(qtys) != 1 {
			t.Fatalf("unexpected result: %v %v", ids, qtys)
		}
	})

	t.Run("empty", func(t *testing.T) {
		ids, qtys := CartItemsRequest{}.Lines()
		if len(ids) != 0 || len(qtys) != 0 {
			t.Fatalf("unexpected result: %v %v", ids, qtys)
		}
	})
}
