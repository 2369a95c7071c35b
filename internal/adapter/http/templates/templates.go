// Package templates holds the server-rendered storefront pages.
package templates

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed html/*.tmpl
var files embed.FS

var categoryEmoji = map[string]string{
	"Electronics": "🔌",
	"Accessories": "🎁",
	"Clothing":    "👕",
	"Books":       "📚",
}

// Funcs are the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
		"categoryEmoji": func(category string) string {
			if e, ok := categoryEmoji[category]; ok {
				return e
			}
			return "📦"
		},
		"plural": func(n int) string {
			if n == 1 {
				return ""
			}
			return "s"
		},
		"quantityOptions": func() []int {
			return []int{1, 2, 3, 4, 5}
		},
	}
}

// Load parses every embedded page. Page names are their file names,
// e.g. "index.tmpl".
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "html/*.tmpl")
}
