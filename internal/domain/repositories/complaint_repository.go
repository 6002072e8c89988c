package repositories

import (
	"context"
	"time"

	"resolution-desk.backend/internal/domain/entities"
)

// ComplaintRepository defines complaint operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entities.Complaint) error
	GetByID(ctx context.Context, id string) (*entities.Complaint, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entities.Complaint, error)
	MarkResolved(ctx context.Context, id, resolution string, at time.Time) error
}

// EscalationRepository defines escalation operations
type EscalationRepository interface {
	Create(ctx context.Context, escalation *entities.Escalation) error
	GetByID(ctx context.Context, id string) (*entities.Escalation, error)
}
