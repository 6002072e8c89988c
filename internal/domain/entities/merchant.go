package entities

import "time"

// MerchantStatus represents merchant operational status
type MerchantStatus string

const (
	MerchantStatusActive            MerchantStatus = "active"
	MerchantStatusTemporarilyClosed MerchantStatus = "temporarily_closed"
	MerchantStatusUnderReview       MerchantStatus = "under_review"
)

// MenuItem is one entry of a merchant menu
type MenuItem struct {
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	Category  string  `json:"category"`
}

// Merchant represents a restaurant on the platform
type Merchant struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name"`
	Category              string              `json:"category"`
	Rating                float64             `json:"rating"`
	Address               string              `json:"address"`
	Phone                 string              `json:"phone"`
	TotalOrders           int                 `json:"totalOrders"`
	ComplaintRate         float64             `json:"complaintRate"`
	AvgPreparationMinutes int                 `json:"avgPreparationMinutes"`
	Status                MerchantStatus      `json:"status"`
	Menu                  map[string]MenuItem `json:"menu"`
	QualityIssues         []string            `json:"qualityIssues"`
	FeedbackLog           []string            `json:"feedbackLog"`
	LastInspection        time.Time           `json:"lastInspection"`
}
