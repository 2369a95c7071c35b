package response

import "storefront/internal/domain/entities"

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
}

type ProductListResponse struct {
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SearchResponse struct {
	Query    string            `json:"query"`
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Image:       p.Image,
		InStock:     p.InStock,
		Category:    p.Category,
		Rating:      p.Rating,
	}
}

func FromProducts(products []entities.Product) ProductListResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return ProductListResponse{Count: len(out), Products: out}
}

func FromSearch(query string, products []entities.Product) SearchResponse {
	list := FromProducts(products)
	return SearchResponse{Query: query, Count: list.Count, Products: list.Products}
}

func FromCategories(categories []string) CategoriesResponse {
	if categories == nil {
		categories = []string{}
	}
	return CategoriesResponse{Categories: categories}
}
