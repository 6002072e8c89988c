package entities

import "time"

// TransactionKind represents the type of wallet transaction
type TransactionKind string

const (
	TransactionKindRefund TransactionKind = "refund"
)

// TransactionStatus represents the state of a transaction
type TransactionStatus string

const (
	TransactionStatusProcessed TransactionStatus = "processed"
)

// Transaction is an append-only wallet movement
type Transaction struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customerId"`
	Amount     float64           `json:"amount"`
	Kind       TransactionKind   `json:"kind"`
	Reason     string            `json:"reason"`
	Status     TransactionStatus `json:"status"`
	Reference  string            `json:"reference"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// RefundReceipt is returned by the refund executor
type RefundReceipt struct {
	Transaction   *Transaction `json:"transaction"`
	WalletBalance float64      `json:"walletBalance"`
}
