package models

// Package tier types. Weekly programs are priced per week, everything else
// per night.
const (
	PackageTypeStandard = "standard"
	PackageTypePremium  = "premium"
	PackageTypeFamily   = "family"
	PackageTypeWeekly   = "weekly-program"
)

// Package is a catalog entry for a care/accommodation package.
type Package struct {
	ID        string  `bson:"id" json:"id"`
	Title     string  `bson:"title" json:"title"`
	Type      string  `bson:"type" json:"type"`
	Price     float64 `bson:"price" json:"price"` // per night, or per week for weekly programs
	Available bool    `bson:"available" json:"available"`
}
