package repositories

import (
	"context"

	"resolution-desk.backend/internal/domain/entities"
)

// CustomerRepository defines customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	List(ctx context.Context) ([]*entities.Customer, error)
	AppendComplaint(ctx context.Context, id, complaintID string) error
	CreditWallet(ctx context.Context, id string, amount float64) (float64, error)
}
