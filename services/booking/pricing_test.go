package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medistay/catalog"
	"medistay/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"two nights", "2025-01-10", "2025-01-12", 2},
		{"single night", "2025-01-10", "2025-01-11", 1},
		{"long stay", "2025-01-01", "2025-01-31", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeNights(date(tt.checkIn), date(tt.checkOut)))
		})
	}

	// A stay shorter than 24h still bills one night.
	in := date("2025-01-10")
	assert.Equal(t, 1, ComputeNights(in, in.Add(6*time.Hour)))

	// 25h spans two billing days.
	assert.Equal(t, 2, ComputeNights(in, in.Add(25*time.Hour)))
}

func TestPackageTotal(t *testing.T) {
	nightly := models.Package{ID: "standard-recovery", Type: models.PackageTypeStandard, Price: 120}
	assert.Equal(t, 360.0, PackageTotal(nightly, 3))

	weekly := models.Package{ID: "extended-stay-weekly", Type: models.PackageTypeWeekly, Price: 650}
	assert.Equal(t, 650.0, PackageTotal(weekly, 5))   // partial week bills a full week
	assert.Equal(t, 650.0, PackageTotal(weekly, 7))
	assert.Equal(t, 1300.0, PackageTotal(weekly, 8))
}

func TestComputeTotalsInvariant(t *testing.T) {
	cat := catalog.Default()
	pkg, _ := cat.Get("standard-recovery")

	totals := ComputeTotals(cat, pkg, 3, []string{"spa-access", "airport-transfer"}, []string{"physiotherapy"}, 0.01)

	assert.Equal(t, 360.0, totals.Package)
	assert.Equal(t, 80.0, totals.AddOns)
	assert.Equal(t, 60.0, totals.Medical)
	assert.Equal(t, totals.Package+totals.AddOns+totals.Medical, totals.Total)
	assert.Equal(t, 5.0, totals.Deposit)
}

func TestComputeTotalsUnknownSelectionsContributeZero(t *testing.T) {
	cat := catalog.Default()
	pkg, _ := cat.Get("premium-care")

	totals := ComputeTotals(cat, pkg, 2, []string{"no-such-addon"}, []string{"no-such-service"}, 0.01)

	assert.Equal(t, 0.0, totals.AddOns)
	assert.Equal(t, 0.0, totals.Medical)
	assert.Equal(t, totals.Package, totals.Total)
}

func TestDepositRounding(t *testing.T) {
	cat := catalog.Default()
	pkg := models.Package{ID: "odd", Type: models.PackageTypeStandard, Price: 123.45}

	totals := ComputeTotals(cat, pkg, 3, nil, nil, 0.01)

	// 370.35 * 0.01 = 3.7035 -> 3.70
	assert.InDelta(t, 3.7, totals.Deposit, 1e-9)
}
