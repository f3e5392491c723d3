// Package catalog holds the immutable price catalog: care packages, add-ons
// and medical services with their fixed rates. A Catalog value is built once
// and injected; lookups never mutate it, so it is safe to share across
// request handlers without locking.
package catalog

import (
	"strings"

	"medistay/models"
)

// Price categories accepted by PriceOf.
const (
	CategoryPackage = "package"
	CategoryAddOn   = "addon"
	CategoryMedical = "medical"
)

// Catalog is an immutable lookup table. The zero value is an empty catalog;
// use New or Default.
type Catalog struct {
	packages []models.Package
	byID     map[string]models.Package
	addOns   map[string]float64
	medical  map[string]float64
}

// New builds a catalog from the given tables. Input slices/maps are copied so
// later mutation by the caller cannot leak into the catalog.
func New(packages []models.Package, addOns, medical map[string]float64) Catalog {
	c := Catalog{
		packages: make([]models.Package, len(packages)),
		byID:     make(map[string]models.Package, len(packages)),
		addOns:   make(map[string]float64, len(addOns)),
		medical:  make(map[string]float64, len(medical)),
	}
	copy(c.packages, packages)
	for _, p := range c.packages {
		c.byID[p.ID] = p
	}
	for k, v := range addOns {
		c.addOns[k] = v
	}
	for k, v := range medical {
		c.medical[k] = v
	}
	return c
}

// Packages returns the catalog entries in their declared order.
func (c Catalog) Packages() []models.Package {
	out := make([]models.Package, len(c.packages))
	copy(out, c.packages)
	return out
}

// Get returns the package with the exact canonical id.
func (c Catalog) Get(id string) (models.Package, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// PriceOf returns the fixed price for an identifier in the given category.
// Unknown identifiers are priced at zero rather than rejected; availability
// wins over strict validation here, matching the store-side totals invariant
// (unknown selections contribute nothing).
func (c Catalog) PriceOf(category, id string) float64 {
	switch category {
	case CategoryPackage:
		if p, ok := c.byID[id]; ok {
			return p.Price
		}
	case CategoryAddOn:
		return c.addOns[id]
	case CategoryMedical:
		return c.medical[id]
	}
	return 0
}

// Resolve maps a loosely-bound package identifier from a local capture entry
// to a catalog package. Match order:
//
//  1. exact canonical id
//  2. case-insensitive title match
//  3. substring match against ids, either direction
//  4. first available package in catalog order
//
// The final fallback mis-attributes rather than rejects; callers that want a
// hard failure instead should use ResolveStrict.
func (c Catalog) Resolve(id string) (models.Package, bool) {
	if p, ok := c.ResolveStrict(id); ok {
		return p, true
	}
	for _, p := range c.packages {
		if p.Available {
			return p, true
		}
	}
	return models.Package{}, false
}

// ResolveStrict is Resolve without the first-available fallback.
func (c Catalog) ResolveStrict(id string) (models.Package, bool) {
	if p, ok := c.byID[id]; ok {
		return p, true
	}
	for _, p := range c.packages {
		if strings.EqualFold(p.Title, id) {
			return p, true
		}
	}
	lower := strings.ToLower(id)
	if lower != "" {
		for _, p := range c.packages {
			pid := strings.ToLower(p.ID)
			if strings.Contains(pid, lower) || strings.Contains(lower, pid) {
				return p, true
			}
		}
	}
	return models.Package{}, false
}
