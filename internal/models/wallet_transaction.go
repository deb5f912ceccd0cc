package models

import "time"

// Wallet transaction kinds
const (
	WalletCredit = "credit"
	WalletDebit  = "debit"
)

// WalletTransaction is an append-only ledger row; the balance is always the
// sum over a user's rows, never a stored counter.
type WalletTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string  `gorm:"size:36;index;not null" json:"userId"`
	Kind   string  `gorm:"size:10;not null" json:"kind"`
	Amount float64 `gorm:"not null" json:"amount"`

	Reference string `gorm:"size:100" json:"reference"`
	Note      string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"createdAt"`
}
