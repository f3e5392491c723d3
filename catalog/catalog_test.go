package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medistay/models"
)

func testCatalog() Catalog {
	return New(
		[]models.Package{
			{ID: "standard-recovery", Title: "Standard Recovery Suite", Type: models.PackageTypeStandard, Price: 120, Available: true},
			{ID: "premium-care", Title: "Premium Care Suite", Type: models.PackageTypePremium, Price: 210, Available: true},
			{ID: "family-suite", Title: "Family Accommodation Suite", Type: models.PackageTypeFamily, Price: 180, Available: true},
		},
		map[string]float64{"spa-access": 35},
		map[string]float64{"physiotherapy": 60},
	)
}

func TestPriceOf(t *testing.T) {
	cat := testCatalog()

	assert.Equal(t, 120.0, cat.PriceOf(CategoryPackage, "standard-recovery"))
	assert.Equal(t, 35.0, cat.PriceOf(CategoryAddOn, "spa-access"))
	assert.Equal(t, 60.0, cat.PriceOf(CategoryMedical, "physiotherapy"))
}

func TestPriceOfUnknownIsZero(t *testing.T) {
	cat := testCatalog()

	// Unknown identifiers price at zero instead of failing.
	assert.Equal(t, 0.0, cat.PriceOf(CategoryPackage, "no-such-package"))
	assert.Equal(t, 0.0, cat.PriceOf(CategoryAddOn, "no-such-addon"))
	assert.Equal(t, 0.0, cat.PriceOf(CategoryMedical, "no-such-service"))
	assert.Equal(t, 0.0, cat.PriceOf("no-such-category", "spa-access"))
}

func TestResolveFallbackOrder(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact id match", "premium-care", "premium-care"},
		{"case-insensitive title match", "family accommodation suite", "family-suite"},
		{"query substring of id", "premium", "premium-care"},
		{"id substring of query", "standard-recovery-v2", "standard-recovery"},
		{"unresolvable falls back to first available", "deluxe-villa", "standard-recovery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, ok := cat.Resolve(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, pkg.ID)
		})
	}
}

func TestResolveStrictRejectsUnknown(t *testing.T) {
	cat := testCatalog()

	_, ok := cat.ResolveStrict("deluxe-villa")
	assert.False(t, ok)

	pkg, ok := cat.ResolveStrict("premium-care")
	require.True(t, ok)
	assert.Equal(t, "premium-care", pkg.ID)
}

func TestResolveEmptyCatalog(t *testing.T) {
	cat := New(nil, nil, nil)

	_, ok := cat.Resolve("anything")
	assert.False(t, ok)
}

func TestResolveSkipsUnavailableOnFallback(t *testing.T) {
	cat := New(
		[]models.Package{
			{ID: "retired-suite", Title: "Retired Suite", Price: 90, Available: false},
			{ID: "open-suite", Title: "Open Suite", Price: 110, Available: true},
		},
		nil, nil,
	)

	pkg, ok := cat.Resolve("no-match-at-all")
	require.True(t, ok)
	assert.Equal(t, "open-suite", pkg.ID)
}

func TestCatalogIsolatedFromCallerMutation(t *testing.T) {
	packages := []models.Package{
		{ID: "standard-recovery", Title: "Standard Recovery Suite", Price: 120, Available: true},
	}
	addOns := map[string]float64{"spa-access": 35}
	cat := New(packages, addOns, nil)

	packages[0].Price = 999
	addOns["spa-access"] = 999

	assert.Equal(t, 120.0, cat.PriceOf(CategoryPackage, "standard-recovery"))
	assert.Equal(t, 35.0, cat.PriceOf(CategoryAddOn, "spa-access"))
}
