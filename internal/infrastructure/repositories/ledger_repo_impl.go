package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/infrastructure/models"
)

// TransactionRepository implements append-only transaction storage
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	m := &models.Transaction{
		ID:         txn.ID,
		CustomerID: txn.CustomerID,
		Amount:     txn.Amount,
		Kind:       string(txn.Kind),
		Reason:     txn.Reason,
		Status:     string(txn.Status),
		Reference:  txn.Reference,
		CreatedAt:  txn.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	txn.CreatedAt = m.CreatedAt
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTransactionEntity(&m), nil
}

// ListByCustomer returns a page of transactions and the total count; limit 0 means all
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entities.Transaction, int, error) {
	var total int64
	query := GetDB(ctx, r.db).Model(&models.Transaction{}).Where("customer_id = ?", customerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Transaction
	page := GetDB(ctx, r.db).Where("customer_id = ?", customerID).Order("created_at ASC, id ASC")
	if limit > 0 {
		page = page.Limit(limit).Offset(offset)
	}
	if err := page.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		items = append(items, toTransactionEntity(&ms[i]))
	}
	return items, int(total), nil
}

func toTransactionEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		Kind:       entities.TransactionKind(m.Kind),
		Reason:     m.Reason,
		Status:     entities.TransactionStatus(m.Status),
		Reference:  m.Reference,
		CreatedAt:  m.CreatedAt,
	}
}

// VoucherRepository implements voucher storage
type VoucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository
func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

func (r *VoucherRepository) Create(ctx context.Context, voucher *entities.Voucher) error {
	m := &models.Voucher{
		ID:         voucher.ID,
		CustomerID: voucher.CustomerID,
		Amount:     voucher.Amount,
		Type:       voucher.Type,
		Reason:     voucher.Reason,
		ExpiresAt:  voucher.ExpiresAt,
		CreatedAt:  voucher.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	voucher.CreatedAt = m.CreatedAt
	return nil
}

func (r *VoucherRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entities.Voucher, error) {
	var ms []models.Voucher
	if err := GetDB(ctx, r.db).Where("customer_id = ?", customerID).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Voucher, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.Voucher{
			ID:         ms[i].ID,
			CustomerID: ms[i].CustomerID,
			Amount:     ms[i].Amount,
			Type:       ms[i].Type,
			Reason:     ms[i].Reason,
			ExpiresAt:  ms[i].ExpiresAt,
			CreatedAt:  ms[i].CreatedAt,
		})
	}
	return items, nil
}
