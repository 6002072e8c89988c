package models

import "time"

type Merchant struct {
	ID                    string  `gorm:"type:varchar(32);primaryKey"`
	Name                  string  `gorm:"type:varchar(255);not null"`
	Category              string  `gorm:"type:varchar(100)"`
	Rating                float64 `gorm:"type:decimal(3,2);not null;default:0"`
	Address               string  `gorm:"type:text"`
	Phone                 string  `gorm:"type:varchar(50)"`
	TotalOrders           int     `gorm:"not null;default:0"`
	ComplaintRate         float64 `gorm:"type:decimal(5,4);not null;default:0"`
	AvgPreparationMinutes int     `gorm:"not null;default:0"`
	Status                string  `gorm:"type:varchar(32);not null;default:'active'"`
	Menu                  string  `gorm:"type:text;not null;default:'{}'"`
	QualityIssues         string  `gorm:"type:text;not null;default:'[]'"`
	FeedbackLog           string  `gorm:"type:text;not null;default:'[]'"`
	LastInspection        time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
