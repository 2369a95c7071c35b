package repository

import (
	"context"
	"testing"
)

func TestProductStaticRepository_LoadProducts(t *testing.T) {
	repo := NewProductStaticRepository()

	products, err := repo.LoadProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 fixture products, got %d", len(products))
	}

	products[0].Name = "changed"
	again, _ := repo.LoadProducts(context.Background())
	if again[0].Name == "changed" {
		t.Fatalf("fixture must not be shared between calls")
	}
}
