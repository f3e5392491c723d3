package models

// RevenueBucket groups revenue figures for one sync source.
type RevenueBucket struct {
	SyncSource string  `bson:"_id" json:"syncSource"`
	Count      int64   `bson:"count" json:"count"`
	Total      float64 `bson:"total" json:"total"`
	Average    float64 `bson:"average" json:"average"`
}

// BookingStats is the operational snapshot returned by the stats endpoint.
// Recomputed on every call, never cached.
type BookingStats struct {
	BySyncSource map[string]int64 `json:"bySyncSource"`
	ByStatus     map[string]int64 `json:"byStatus"`
	Revenue      []RevenueBucket  `json:"revenue"`
}
