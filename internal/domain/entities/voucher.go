package entities

import "time"

// VoucherValidity is how long an issued voucher stays redeemable
const VoucherValidity = 30 * 24 * time.Hour

// Voucher is non-cash credit, separate from wallet refunds
type Voucher struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	Reason     string    `json:"reason"`
	ExpiresAt  time.Time `json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
