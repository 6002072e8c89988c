package repositories

import (
	"context"

	"resolution-desk.backend/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context) ([]*entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entities.Order, error)
	// LinkComplaint is the only mutation allowed on a delivered order.
	LinkComplaint(ctx context.Context, orderID, complaintID string) error
}
