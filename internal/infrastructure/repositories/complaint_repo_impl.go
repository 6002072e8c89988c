package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/infrastructure/models"
)

// ComplaintRepository implements complaint storage
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *entities.Complaint) error {
	status := complaint.Status
	if status == "" {
		status = entities.ComplaintStatusOpen
	}
	m := &models.Complaint{
		ID:         complaint.ID,
		CustomerID: complaint.CustomerID,
		OrderID:    complaint.OrderID,
		IssueType:  complaint.IssueType,
		Details:    complaint.Details,
		Status:     string(status),
		Resolution: complaint.Resolution.Ptr(),
		ResolvedAt: complaint.ResolvedAt.Ptr(),
		CreatedAt:  complaint.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	complaint.Status = status
	complaint.CreatedAt = m.CreatedAt
	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id string) (*entities.Complaint, error) {
	var m models.Complaint
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ComplaintRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entities.Complaint, error) {
	var ms []models.Complaint
	if err := GetDB(ctx, r.db).Where("customer_id = ?", customerID).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Complaint, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// MarkResolved closes an open complaint with a resolution note
func (r *ComplaintRepository) MarkResolved(ctx context.Context, id, resolution string, at time.Time) error {
	result := GetDB(ctx, r.db).Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      string(entities.ComplaintStatusResolved),
			"resolution":  resolution,
			"resolved_at": at,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ComplaintRepository) toEntity(m *models.Complaint) *entities.Complaint {
	return &entities.Complaint{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		OrderID:    m.OrderID,
		IssueType:  m.IssueType,
		Details:    m.Details,
		Status:     entities.ComplaintStatus(m.Status),
		Resolution: null.StringFromPtr(m.Resolution),
		CreatedAt:  m.CreatedAt,
		ResolvedAt: null.TimeFromPtr(m.ResolvedAt),
	}
}

// EscalationRepository implements escalation storage
type EscalationRepository struct {
	db *gorm.DB
}

// NewEscalationRepository creates a new escalation repository
func NewEscalationRepository(db *gorm.DB) *EscalationRepository {
	return &EscalationRepository{db: db}
}

func (r *EscalationRepository) Create(ctx context.Context, escalation *entities.Escalation) error {
	parties, err := encodeColumn(nonNil(escalation.Parties))
	if err != nil {
		return err
	}
	m := &models.Escalation{
		ID:               escalation.ID,
		Kind:             string(escalation.Kind),
		Reason:           escalation.Reason,
		Urgency:          escalation.Urgency,
		Summary:          escalation.Summary,
		Parties:          parties,
		ExpectedResponse: escalation.ExpectedResponse,
		CreatedAt:        escalation.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	escalation.CreatedAt = m.CreatedAt
	return nil
}

func (r *EscalationRepository) GetByID(ctx context.Context, id string) (*entities.Escalation, error) {
	var m models.Escalation
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	parties, err := decodeStrings(m.Parties)
	if err != nil {
		return nil, fmt.Errorf("escalation %s parties: %w", m.ID, err)
	}
	return &entities.Escalation{
		ID:               m.ID,
		Kind:             entities.EscalationKind(m.Kind),
		Reason:           m.Reason,
		Urgency:          m.Urgency,
		Summary:          m.Summary,
		Parties:          parties,
		ExpectedResponse: m.ExpectedResponse,
		CreatedAt:        m.CreatedAt,
	}, nil
}
