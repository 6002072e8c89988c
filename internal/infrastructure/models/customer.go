package models

import "time"

type Customer struct {
	ID               string  `gorm:"type:varchar(32);primaryKey"`
	Name             string  `gorm:"type:varchar(255);not null"`
	Phone            string  `gorm:"type:varchar(50)"`
	Email            string  `gorm:"type:varchar(255)"`
	Address          string  `gorm:"type:text"`
	Rating           float64 `gorm:"type:decimal(3,2);not null;default:0"`
	TotalOrders      int     `gorm:"not null;default:0"`
	ComplaintHistory string  `gorm:"type:text;not null;default:'[]'"`
	AccountStatus    string  `gorm:"type:varchar(32);not null;default:'active'"`
	WalletBalance    float64 `gorm:"type:decimal(12,2);not null;default:0"`
	PreferredPayment string  `gorm:"type:varchar(50)"`
	JoinedDate       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
