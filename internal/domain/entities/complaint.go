package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ComplaintStatus represents complaint state
type ComplaintStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "open"
	ComplaintStatusResolved ComplaintStatus = "resolved"
)

// Complaint is an incident report raised by a customer
type Complaint struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	OrderID    string          `json:"orderId"`
	IssueType  string          `json:"issueType"`
	Details    string          `json:"details"`
	Status     ComplaintStatus `json:"status"`
	Resolution null.String     `json:"resolution"`
	CreatedAt  time.Time       `json:"createdAt"`
	ResolvedAt null.Time       `json:"resolvedAt,omitempty"`
}
