package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoad(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"index.tmpl", "search.tmpl", "cart.tmpl", "checkout.tmpl", "rating.tmpl", "product_card"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("expected template %q", name)
		}
	}
}

func TestFuncs(t *testing.T) {
	fm := Funcs()

	money := fm["money"].(func(decimal.Decimal) string)
	if got := money(decimal.RequireFromString("159.98")); got != "$159.98" {
		t.Fatalf("unexpected money: %s", got)
	}
	if got := money(decimal.NewFromInt(20)); got != "$20.00" {
		t.Fatalf("unexpected money: %s", got)
	}

	emoji := fm["categoryEmoji"].(func(string) string)
	if emoji("Electronics") != "🔌" || emoji("Garden") != "📦" {
		t.Fatalf("unexpected emoji mapping")
	}

	plural := fm["plural"].(func(int) string)
	if plural(1) != "" || plural(0) != "s" || plural(2) != "s" {
		t.Fatalf("unexpected plural")
	}
}

func TestFailureTemplate(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "failure", "<b>Product not found</b>"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(buf.String(), "<b>") {
		t.Fatalf("failure message must be escaped: %s", buf.String())
	}
}
