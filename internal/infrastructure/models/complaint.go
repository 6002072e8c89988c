package models

import "time"

type Complaint struct {
	ID         string  `gorm:"type:varchar(32);primaryKey"`
	CustomerID string  `gorm:"type:varchar(32);not null;index"`
	OrderID    string  `gorm:"type:varchar(32);index"`
	IssueType  string  `gorm:"type:varchar(64);not null"`
	Details    string  `gorm:"type:text"`
	Status     string  `gorm:"type:varchar(32);not null;default:'open'"`
	Resolution *string `gorm:"type:text"`
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Escalation struct {
	ID               string `gorm:"type:varchar(32);primaryKey"`
	Kind             string `gorm:"type:varchar(32);not null"`
	Reason           string `gorm:"type:text"`
	Urgency          string `gorm:"type:varchar(16);not null"`
	Summary          string `gorm:"type:text"`
	Parties          string `gorm:"type:text;not null;default:'[]'"`
	ExpectedResponse string `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
}
