package models

import "time"

type Order struct {
	ID              string  `gorm:"type:varchar(32);primaryKey"`
	CustomerID      string  `gorm:"type:varchar(32);not null;index"`
	MerchantID      string  `gorm:"type:varchar(32);not null;index"`
	DriverID        string  `gorm:"type:varchar(32);index"`
	Description     string  `gorm:"type:text"`
	Items           string  `gorm:"type:text;not null;default:'[]'"`
	OrderedAt       time.Time
	Status          string  `gorm:"type:varchar(32);not null"`
	PaymentMethod   string  `gorm:"type:varchar(50)"`
	DeliveryAddress string  `gorm:"type:text"`
	ComplaintID     *string `gorm:"type:varchar(32)"`
	TotalAmount     float64 `gorm:"type:decimal(12,2);not null"`
	DeliveryCharge  float64 `gorm:"type:decimal(12,2);not null;default:0"`
	FinalAmount     float64 `gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
