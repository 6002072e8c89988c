package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/infrastructure/models"
)

// CustomerRepository implements customer data operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	m, err := r.toModel(customer)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m)
}

func (r *CustomerRepository) List(ctx context.Context) ([]*entities.Customer, error) {
	var ms []models.Customer
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Customer, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// AppendComplaint adds a complaint id to the end of the customer's history
func (r *CustomerRepository) AppendComplaint(ctx context.Context, id, complaintID string) error {
	m, err := r.find(ctx, id)
	if err != nil {
		return err
	}
	history, err := appendToColumn(m.ComplaintHistory, complaintID)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"complaint_history": history,
			"updated_at":        time.Now(),
		}).Error
}

// CreditWallet increases the wallet balance and returns the new balance
func (r *CustomerRepository) CreditWallet(ctx context.Context, id string, amount float64) (float64, error) {
	result := GetDB(ctx, r.db).Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"wallet_balance": gorm.Expr("wallet_balance + ?", amount),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrNotFound
	}

	m, err := r.find(ctx, id)
	if err != nil {
		return 0, err
	}
	return m.WalletBalance, nil
}

func (r *CustomerRepository) find(ctx context.Context, id string) (*models.Customer, error) {
	var m models.Customer
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *CustomerRepository) toEntity(m *models.Customer) (*entities.Customer, error) {
	history, err := decodeStrings(m.ComplaintHistory)
	if err != nil {
		return nil, fmt.Errorf("customer %s complaint history: %w", m.ID, err)
	}
	return &entities.Customer{
		ID:               m.ID,
		Name:             m.Name,
		Phone:            m.Phone,
		Email:            m.Email,
		Address:          m.Address,
		Rating:           m.Rating,
		TotalOrders:      m.TotalOrders,
		ComplaintHistory: history,
		AccountStatus:    entities.AccountStatus(m.AccountStatus),
		WalletBalance:    m.WalletBalance,
		PreferredPayment: m.PreferredPayment,
		JoinedDate:       m.JoinedDate,
	}, nil
}

func (r *CustomerRepository) toModel(e *entities.Customer) (*models.Customer, error) {
	history := e.ComplaintHistory
	if history == nil {
		history = []string{}
	}
	encoded, err := encodeColumn(history)
	if err != nil {
		return nil, err
	}
	status := e.AccountStatus
	if status == "" {
		status = entities.AccountStatusActive
	}
	return &models.Customer{
		ID:               e.ID,
		Name:             e.Name,
		Phone:            e.Phone,
		Email:            e.Email,
		Address:          e.Address,
		Rating:           e.Rating,
		TotalOrders:      e.TotalOrders,
		ComplaintHistory: encoded,
		AccountStatus:    string(status),
		WalletBalance:    e.WalletBalance,
		PreferredPayment: e.PreferredPayment,
		JoinedDate:       e.JoinedDate,
	}, nil
}
