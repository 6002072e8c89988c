package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"resolution-desk.backend/internal/infrastructure/models"
)

// SequenceRepository issues counters that never go backwards, independent of table sizes
type SequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next increments and returns the counter for name, starting at 1
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	db := GetDB(ctx, r.db)

	bumped, err := r.bump(db, name)
	if err != nil {
		return 0, err
	}
	if !bumped {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Sequence{Name: name}).Error; err != nil {
			return 0, err
		}
		if _, err := r.bump(db, name); err != nil {
			return 0, err
		}
	}

	var seq models.Sequence
	if err := db.Where("name = ?", name).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.LastIssued, nil
}

func (r *SequenceRepository) bump(db *gorm.DB, name string) (bool, error) {
	result := db.Model(&models.Sequence{}).
		Where("name = ?", name).
		UpdateColumn("last_issued", gorm.Expr("last_issued + ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
