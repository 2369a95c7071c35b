package interfaces

import "storefront/internal/domain/entities"

// ICatalogReader is the read-only view of the catalog store used by the
// query and mutation use cases. *catalog.Catalog satisfies it.

type ICatalogReader interface {
	All() []entities.Product
	ByCategory(category string) []entities.Product
	Categories() []string
	FindByID(id string) (entities.Product, bool)
	Search(term string) []entities.Product
}
