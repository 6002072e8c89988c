package models

import "time"

type Transaction struct {
	ID         string  `gorm:"type:varchar(32);primaryKey"`
	CustomerID string  `gorm:"type:varchar(32);not null;index"`
	Amount     float64 `gorm:"type:decimal(12,2);not null"`
	Kind       string  `gorm:"type:varchar(32);not null"`
	Reason     string  `gorm:"type:text"`
	Status     string  `gorm:"type:varchar(32);not null"`
	Reference  string  `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt  time.Time
}

type Voucher struct {
	ID         string  `gorm:"type:varchar(32);primaryKey"`
	CustomerID string  `gorm:"type:varchar(32);not null;index"`
	Amount     float64 `gorm:"type:decimal(12,2);not null"`
	Type       string  `gorm:"type:varchar(64);not null"`
	Reason     string  `gorm:"type:text"`
	ExpiresAt  time.Time
	CreatedAt  time.Time
}
