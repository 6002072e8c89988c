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

// DriverRepository implements delivery partner data operations
type DriverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	m, err := r.toModel(driver)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *DriverRepository) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m)
}

func (r *DriverRepository) List(ctx context.Context) ([]*entities.Driver, error) {
	var ms []models.Driver
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Driver, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// AppendExoneration appends one entry to the driver's exoneration log
func (r *DriverRepository) AppendExoneration(ctx context.Context, id, entry string) error {
	m, err := r.find(ctx, id)
	if err != nil {
		return err
	}
	log, err := appendToColumn(m.ExonerationLog, entry)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).Model(&models.Driver{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"exoneration_log": log,
			"updated_at":      time.Now(),
		}).Error
}

func (r *DriverRepository) find(ctx context.Context, id string) (*models.Driver, error) {
	var m models.Driver
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *DriverRepository) toEntity(m *models.Driver) (*entities.Driver, error) {
	incidents, err := decodeStrings(m.Incidents)
	if err != nil {
		return nil, fmt.Errorf("driver %s incidents: %w", m.ID, err)
	}
	exonerations, err := decodeStrings(m.ExonerationLog)
	if err != nil {
		return nil, fmt.Errorf("driver %s exoneration log: %w", m.ID, err)
	}
	return &entities.Driver{
		ID:                 m.ID,
		Name:               m.Name,
		Phone:              m.Phone,
		VehicleType:        m.VehicleType,
		Rating:             m.Rating,
		TotalDeliveries:    m.TotalDeliveries,
		Status:             entities.DriverStatus(m.Status),
		Location:           m.Location,
		Incidents:          incidents,
		AvgDeliveryMinutes: m.AvgDeliveryMinutes,
		CancellationRate:   m.CancellationRate,
		ExonerationLog:     exonerations,
	}, nil
}

func (r *DriverRepository) toModel(e *entities.Driver) (*models.Driver, error) {
	incidents, err := encodeColumn(nonNil(e.Incidents))
	if err != nil {
		return nil, err
	}
	exonerations, err := encodeColumn(nonNil(e.ExonerationLog))
	if err != nil {
		return nil, err
	}
	status := e.Status
	if status == "" {
		status = entities.DriverStatusAvailable
	}
	return &models.Driver{
		ID:                 e.ID,
		Name:               e.Name,
		Phone:              e.Phone,
		VehicleType:        e.VehicleType,
		Rating:             e.Rating,
		TotalDeliveries:    e.TotalDeliveries,
		Status:             string(status),
		Location:           e.Location,
		Incidents:          incidents,
		AvgDeliveryMinutes: e.AvgDeliveryMinutes,
		CancellationRate:   e.CancellationRate,
		ExonerationLog:     exonerations,
	}, nil
}
