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

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	m, err := r.toModel(merchant)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *MerchantRepository) GetByID(ctx context.Context, id string) (*entities.Merchant, error) {
	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m)
}

func (r *MerchantRepository) List(ctx context.Context) ([]*entities.Merchant, error) {
	var ms []models.Merchant
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Merchant, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// AppendFeedback appends one entry to the merchant feedback log
func (r *MerchantRepository) AppendFeedback(ctx context.Context, id, entry string) error {
	m, err := r.find(ctx, id)
	if err != nil {
		return err
	}
	log, err := appendToColumn(m.FeedbackLog, entry)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).Model(&models.Merchant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"feedback_log": log,
			"updated_at":   time.Now(),
		}).Error
}

func (r *MerchantRepository) find(ctx context.Context, id string) (*models.Merchant, error) {
	var m models.Merchant
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MerchantRepository) toEntity(m *models.Merchant) (*entities.Merchant, error) {
	menu := map[string]entities.MenuItem{}
	if err := decodeColumn(m.Menu, &menu); err != nil {
		return nil, fmt.Errorf("merchant %s menu: %w", m.ID, err)
	}
	issues, err := decodeStrings(m.QualityIssues)
	if err != nil {
		return nil, fmt.Errorf("merchant %s quality issues: %w", m.ID, err)
	}
	feedback, err := decodeStrings(m.FeedbackLog)
	if err != nil {
		return nil, fmt.Errorf("merchant %s feedback log: %w", m.ID, err)
	}
	return &entities.Merchant{
		ID:                    m.ID,
		Name:                  m.Name,
		Category:              m.Category,
		Rating:                m.Rating,
		Address:               m.Address,
		Phone:                 m.Phone,
		TotalOrders:           m.TotalOrders,
		ComplaintRate:         m.ComplaintRate,
		AvgPreparationMinutes: m.AvgPreparationMinutes,
		Status:                entities.MerchantStatus(m.Status),
		Menu:                  menu,
		QualityIssues:         issues,
		FeedbackLog:           feedback,
		LastInspection:        m.LastInspection,
	}, nil
}

func (r *MerchantRepository) toModel(e *entities.Merchant) (*models.Merchant, error) {
	menu := e.Menu
	if menu == nil {
		menu = map[string]entities.MenuItem{}
	}
	encodedMenu, err := encodeColumn(menu)
	if err != nil {
		return nil, err
	}
	issues, err := encodeColumn(nonNil(e.QualityIssues))
	if err != nil {
		return nil, err
	}
	feedback, err := encodeColumn(nonNil(e.FeedbackLog))
	if err != nil {
		return nil, err
	}
	status := e.Status
	if status == "" {
		status = entities.MerchantStatusActive
	}
	return &models.Merchant{
		ID:                    e.ID,
		Name:                  e.Name,
		Category:              e.Category,
		Rating:                e.Rating,
		Address:               e.Address,
		Phone:                 e.Phone,
		TotalOrders:           e.TotalOrders,
		ComplaintRate:         e.ComplaintRate,
		AvgPreparationMinutes: e.AvgPreparationMinutes,
		Status:                string(status),
		Menu:                  encodedMenu,
		QualityIssues:         issues,
		FeedbackLog:           feedback,
		LastInspection:        e.LastInspection,
	}, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
