package models

import "time"

type Driver struct {
	ID                 string  `gorm:"type:varchar(32);primaryKey"`
	Name               string  `gorm:"type:varchar(255);not null"`
	Phone              string  `gorm:"type:varchar(50)"`
	VehicleType        string  `gorm:"type:varchar(50)"`
	Rating             float64 `gorm:"type:decimal(3,2);not null;default:0"`
	TotalDeliveries    int     `gorm:"not null;default:0"`
	Status             string  `gorm:"type:varchar(32);not null;default:'available'"`
	Location           string  `gorm:"type:varchar(255)"`
	Incidents          string  `gorm:"type:text;not null;default:'[]'"`
	AvgDeliveryMinutes int     `gorm:"not null;default:0"`
	CancellationRate   float64 `gorm:"type:decimal(5,4);not null;default:0"`
	ExonerationLog     string  `gorm:"type:text;not null;default:'[]'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
