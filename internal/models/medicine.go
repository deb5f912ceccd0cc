package models

import "time"

// Medicine is one row of the seeded authenticity catalog. Verification is a
// plain batch-code lookup against this table.
type Medicine struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Manufacturer string  `gorm:"size:100" json:"manufacturer"`
	BatchCode    string  `gorm:"size:50;uniqueIndex;not null" json:"batchCode"`
	ExpiryDate   string  `gorm:"size:10" json:"expiryDate"`
	MRP          float64 `json:"mrp"`

	// Batches reported as counterfeit stay in the catalog so the lookup can
	// answer "counterfeit" instead of "unknown".
	Flagged bool `gorm:"default:false" json:"flagged"`

	CreatedAt time.Time `json:"createdAt"`
}
