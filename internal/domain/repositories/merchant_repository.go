package repositories

import (
	"context"

	"resolution-desk.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id string) (*entities.Merchant, error)
	List(ctx context.Context) ([]*entities.Merchant, error)
	AppendFeedback(ctx context.Context, id, entry string) error
}

// DriverRepository defines delivery partner data operations
type DriverRepository interface {
	Create(ctx context.Context, driver *entities.Driver) error
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	List(ctx context.Context) ([]*entities.Driver, error)
	AppendExoneration(ctx context.Context, id, entry string) error
}
