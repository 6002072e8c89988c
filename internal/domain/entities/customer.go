package entities

import "time"

// AccountStatus represents a customer account status
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
)

// Customer represents a platform customer
type Customer struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Phone            string        `json:"phone"`
	Email            string        `json:"email"`
	Address          string        `json:"address"`
	Rating           float64       `json:"rating"`
	TotalOrders      int           `json:"totalOrders"`
	ComplaintHistory []string      `json:"complaintHistory"`
	AccountStatus    AccountStatus `json:"accountStatus"`
	WalletBalance    float64       `json:"walletBalance"`
	PreferredPayment string        `json:"preferredPayment"`
	JoinedDate       time.Time     `json:"joinedDate"`
}

// ComplaintCount returns the number of complaints on record
func (c *Customer) ComplaintCount() int {
	return len(c.ComplaintHistory)
}

// RiskLevel buckets the customer by complaint history
func (c *Customer) RiskLevel() string {
	switch n := c.ComplaintCount(); {
	case n > 2:
		return "HIGH"
	case n > 0:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Trustworthiness buckets the customer by star rating
func (c *Customer) Trustworthiness() string {
	switch {
	case c.Rating > 4.5:
		return "EXCELLENT"
	case c.Rating > 4.0:
		return "GOOD"
	default:
		return "AVERAGE"
	}
}
