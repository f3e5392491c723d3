package catalog

import "medistay/models"

// Default returns the built-in catalog used when the packages collection is
// empty. Prices are nightly rates except weekly programs.
func Default() Catalog {
	return New(defaultPackages, defaultAddOns, defaultMedicalServices)
}

// DefaultAddOnPrices returns a copy of the built-in add-on price table.
func DefaultAddOnPrices() map[string]float64 {
	out := make(map[string]float64, len(defaultAddOns))
	for k, v := range defaultAddOns {
		out[k] = v
	}
	return out
}

// DefaultMedicalPrices returns a copy of the built-in medical-service price table.
func DefaultMedicalPrices() map[string]float64 {
	out := make(map[string]float64, len(defaultMedicalServices))
	for k, v := range defaultMedicalServices {
		out[k] = v
	}
	return out
}

var defaultPackages = []models.Package{
	{ID: "standard-recovery", Title: "Standard Recovery Suite", Type: models.PackageTypeStandard, Price: 120, Available: true},
	{ID: "premium-care", Title: "Premium Care Suite", Type: models.PackageTypePremium, Price: 210, Available: true},
	{ID: "family-suite", Title: "Family Accommodation Suite", Type: models.PackageTypeFamily, Price: 180, Available: true},
	{ID: "executive-wellness", Title: "Executive Wellness Suite", Type: models.PackageTypePremium, Price: 260, Available: true},
	{ID: "extended-stay-weekly", Title: "Extended Stay Weekly Program", Type: models.PackageTypeWeekly, Price: 650, Available: true},
}

var defaultAddOns = map[string]float64{
	"airport-transfer": 45,
	"spa-access":       35,
	"laundry-service":  15,
	"companion-bed":    25,
	"dietary-plan":     30,
}

var defaultMedicalServices = map[string]float64{
	"nursing-care":    80,
	"physiotherapy":   60,
	"doctor-visit":    100,
	"dialysis-support": 150,
	"wound-care":      45,
	"medication-management": 40,
}
