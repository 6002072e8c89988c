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

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	m, err := r.toModel(order)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

func (r *OrderRepository) List(ctx context.Context) ([]*entities.Order, error) {
	return r.list(GetDB(ctx, r.db))
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entities.Order, error) {
	return r.list(GetDB(ctx, r.db).Where("customer_id = ?", customerID))
}

// LinkComplaint records the complaint raised against an order
func (r *OrderRepository) LinkComplaint(ctx context.Context, orderID, complaintID string) error {
	result := GetDB(ctx, r.db).Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"complaint_id": complaintID,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) list(query *gorm.DB) ([]*entities.Order, error) {
	var ms []models.Order
	if err := query.Order("ordered_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *OrderRepository) toEntity(m *models.Order) (*entities.Order, error) {
	items := []entities.OrderItem{}
	if err := decodeColumn(m.Items, &items); err != nil {
		return nil, fmt.Errorf("order %s items: %w", m.ID, err)
	}
	return &entities.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		MerchantID:      m.MerchantID,
		DriverID:        m.DriverID,
		Description:     m.Description,
		Items:           items,
		OrderedAt:       m.OrderedAt,
		Status:          entities.OrderStatus(m.Status),
		PaymentMethod:   m.PaymentMethod,
		DeliveryAddress: m.DeliveryAddress,
		ComplaintID:     null.StringFromPtr(m.ComplaintID),
		TotalAmount:     m.TotalAmount,
		DeliveryCharge:  m.DeliveryCharge,
		FinalAmount:     m.FinalAmount,
	}, nil
}

func (r *OrderRepository) toModel(e *entities.Order) (*models.Order, error) {
	lines := e.Items
	if lines == nil {
		lines = []entities.OrderItem{}
	}
	items, err := encodeColumn(lines)
	if err != nil {
		return nil, err
	}
	return &models.Order{
		ID:              e.ID,
		CustomerID:      e.CustomerID,
		MerchantID:      e.MerchantID,
		DriverID:        e.DriverID,
		Description:     e.Description,
		Items:           items,
		OrderedAt:       e.OrderedAt,
		Status:          string(e.Status),
		PaymentMethod:   e.PaymentMethod,
		DeliveryAddress: e.DeliveryAddress,
		ComplaintID:     e.ComplaintID.Ptr(),
		TotalAmount:     e.TotalAmount,
		DeliveryCharge:  e.DeliveryCharge,
		FinalAmount:     e.FinalAmount,
	}, nil
}
