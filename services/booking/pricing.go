package booking

import (
	"math"
	"time"

	"medistay/catalog"
	"medistay/models"
)

// ComputeNights derives the billable nights from the stay window:
// ceil((checkOut - checkIn) / 1 day), never less than one.
func ComputeNights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// PackageTotal prices a package for the stay. Weekly programs bill whole
// weeks; everything else bills per night.
func PackageTotal(pkg models.Package, nights int) float64 {
	if pkg.Type == models.PackageTypeWeekly {
		weeks := math.Ceil(float64(nights) / 7)
		return pkg.Price * weeks
	}
	return pkg.Price * float64(nights)
}

// SelectionTotal sums the catalog prices for the selected identifiers.
// Unknown identifiers contribute zero.
func SelectionTotal(cat catalog.Catalog, category string, ids []string) float64 {
	var total float64
	for _, id := range ids {
		total += cat.PriceOf(category, id)
	}
	return total
}

// Totals is the price breakdown of a booking.
type Totals struct {
	Package float64
	AddOns  float64
	Medical float64
	Total   float64
	Deposit float64
}

// ComputeTotals prices the whole booking and the deposit due at submission.
func ComputeTotals(cat catalog.Catalog, pkg models.Package, nights int, addOns, medical []string, depositRate float64) Totals {
	t := Totals{
		Package: PackageTotal(pkg, nights),
		AddOns:  SelectionTotal(cat, catalog.CategoryAddOn, addOns),
		Medical: SelectionTotal(cat, catalog.CategoryMedical, medical),
	}
	t.Total = t.Package + t.AddOns + t.Medical
	t.Deposit = roundCents(t.Total * depositRate)
	return t
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
