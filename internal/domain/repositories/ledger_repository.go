package repositories

import (
	"context"

	"resolution-desk.backend/internal/domain/entities"
)

// TransactionRepository defines append-only transaction operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entities.Transaction) error
	GetByID(ctx context.Context, id string) (*entities.Transaction, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entities.Transaction, int, error)
}

// VoucherRepository defines voucher operations
type VoucherRepository interface {
	Create(ctx context.Context, voucher *entities.Voucher) error
	ListByCustomer(ctx context.Context, customerID string) ([]*entities.Voucher, error)
}
