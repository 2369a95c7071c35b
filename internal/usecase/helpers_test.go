package usecase

import (
	"testing"
	"time"

	"storefront/internal/domain/catalog"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.DefaultProducts())
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
