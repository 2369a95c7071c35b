package catalog

import (
	"testing"

	"storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(DefaultProducts())
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	valid := entities.Product{ID: "a", Price: decimal.NewFromInt(1), Rating: 3}

	tests := []struct {
		name     string
		products []entities.Product
		wantErr  error
	}{
		{name: "empty id", products: []entities.Product{{ID: " ", Rating: 3}}, wantErr: ErrEmptyProductID},
		{name: "duplicate id", products: []entities.Product{valid, valid}, wantErr: ErrDuplicateProductID},
		{name: "negative price", products: []entities.Product{{ID: "a", Price: decimal.NewFromInt(-1), Rating: 3}}, wantErr: ErrNegativePrice},
		{name: "rating too low", products: []entities.Product{{ID: "a", Rating: 0.5}}, wantErr: ErrRatingOutOfRange},
		{name: "rating too high", products: []entities.Product{{ID: "a", Rating: 5.1}}, wantErr: ErrRatingOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Categories())
}

func TestCatalog_AllIsImmutable(t *testing.T) {
	c := newDefault(t)

	first := c.All()
	require.Len(t, first, 6)
	first[0].Name = "changed"
	first = append(first[:1], first[2:]...)

	second := c.All()
	assert.Len(t, second, 6)
	assert.Equal(t, "Wireless Headphones", second[0].Name)
	assert.Equal(t, c.All(), second)
}

func TestCatalog_NewCopiesInput(t *testing.T) {
	input := DefaultProducts()
	c, err := New(input)
	require.NoError(t, err)

	input[0].Name = "mutated"
	p, ok := c.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "Wireless Headphones", p.Name)
}

func TestCatalog_ByCategoryCoversEveryProductOnce(t *testing.T) {
	c := newDefault(t)

	seen := map[string]int{}
	for _, category := range c.Categories() {
		for _, p := range c.ByCategory(category) {
			assert.Equal(t, category, p.Category)
			seen[p.ID]++
		}
	}

	require.Len(t, seen, c.Len())
	for id, n := range seen {
		assert.Equalf(t, 1, n, "product %s listed %d times", id, n)
	}
}

func TestCatalog_ByCategoryIsCaseSensitive(t *testing.T) {
	c := newDefault(t)

	assert.Len(t, c.ByCategory("Electronics"), 3)
	assert.Empty(t, c.ByCategory("electronics"))
	assert.NotNil(t, c.ByCategory("Books"))
}

func TestCatalog_Categories(t *testing.T) {
	c := newDefault(t)
	assert.Equal(t, []string{"Accessories", "Electronics"}, c.Categories())
}

func TestCatalog_FindByID(t *testing.T) {
	c := newDefault(t)

	p, ok := c.FindByID("3")
	require.True(t, ok)
	assert.Equal(t, "Laptop Backpack", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("79.99")))

	_, ok = c.FindByID("999")
	assert.False(t, ok)
}

func TestCatalog_Search(t *testing.T) {
	c := newDefault(t)

	res := c.Search("headphones")
	require.Len(t, res, 1)
	assert.Equal(t, "Wireless Headphones", res[0].Name)

	res = c.Search("WATERPROOF")
	require.Len(t, res, 1)
	assert.Equal(t, "5", res[0].ID)

	assert.Empty(t, c.Search("toaster"))
}
