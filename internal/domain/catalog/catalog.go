package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"storefront/internal/domain/entities"
)

var (
	ErrEmptyProductID     = errors.New("product id cannot be empty")
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrNegativePrice      = errors.New("product price cannot be negative")
	ErrRatingOutOfRange   = errors.New("product rating out of range")
)

// Catalog is the read-only product store.
//
// It is built once from a product list and shared by every request. All
// accessors hand out copies, so nothing a caller does can change what the
// next caller sees.
type Catalog struct {
	products []entities.Product
	byID     map[string]int
}

// New validates products and returns a catalog holding its own copy of them.
func New(products []entities.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]entities.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, ErrEmptyProductID
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProductID, p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: %s", ErrNegativePrice, p.ID)
		}
		if !entities.ValidRating(p.Rating) {
			return nil, fmt.Errorf("%w: %s rating=%v", ErrRatingOutOfRange, p.ID, p.Rating)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns every product in catalog order.
func (c *Catalog) All() []entities.Product {
	out := make([]entities.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory returns the products whose category equals category exactly.
func (c *Catalog) ByCategory(category string) []entities.Product {
	return c.filter(func(p entities.Product) bool {
		return p.Category == category
	})
}

// Categories returns the distinct categories in ascending order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.products))
	out := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// FindByID returns the product with the given id. The bool is false when no
// such product exists.
func (c *Catalog) FindByID(id string) (entities.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entities.Product{}, false
	}
	return c.products[i], true
}

// Search returns products whose name or description contains term,
// ignoring case.
func (c *Catalog) Search(term string) []entities.Product {
	needle := strings.ToLower(term)
	return c.filter(func(p entities.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
	})
}

func (c *Catalog) filter(keep func(entities.Product) bool) []entities.Product {
	out := make([]entities.Product, 0)
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
