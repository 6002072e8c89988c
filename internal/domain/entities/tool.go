package entities

// ActionResult is the value every named operation returns to the agent layer
type ActionResult struct {
	Success bool        `json:"success"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TextInput carries a single free-text argument
type TextInput struct {
	Text string `json:"text" binding:"required"`
}

// EvidenceInput is the collect_evidence request
type EvidenceInput struct {
	Text             string `json:"text"`
	ImageDescription string `json:"imageDescription,omitempty"`
}

// ResolveInput is the primary resolve request
type ResolveInput struct {
	IssueText        string   `json:"issueText"`
	Amount           *float64 `json:"amount,omitempty"`
	CustomerID       string   `json:"customerId,omitempty"`
	OrderID          string   `json:"orderId,omitempty"`
	ImageDescription string   `json:"imageDescription,omitempty"`
}

// LookupInput carries a single record identifier
type LookupInput struct {
	ID string `json:"id" binding:"required"`
}

// RefundInput is the issue_refund request
type RefundInput struct {
	CustomerID string  `json:"customerId" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Reason     string  `json:"reason" binding:"required"`
}

// ExonerationInput is the exonerate_driver request
type ExonerationInput struct {
	DriverID string `json:"driverId" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// MerchantFeedbackInput is the log_merchant_feedback request
type MerchantFeedbackInput struct {
	MerchantID string `json:"merchantId" binding:"required"`
	Issue      string `json:"issue" binding:"required"`
	Severity   string `json:"severity"`
}

// EligibilityInput is the assess_eligibility request
type EligibilityInput struct {
	CustomerID  string  `json:"customerId" binding:"required"`
	OrderID     string  `json:"orderId" binding:"required"`
	ClaimAmount float64 `json:"claimAmount" binding:"gte=0"`
}

// IncidentInput is the create_incident request
type IncidentInput struct {
	CustomerID string `json:"customerId" binding:"required"`
	OrderID    string `json:"orderId" binding:"required"`
	IssueType  string `json:"issueType" binding:"required"`
	Details    string `json:"details" binding:"required"`
}

// CreateOrderInput is the create_order request
type CreateOrderInput struct {
	Description string   `json:"description" binding:"required"`
	Amount      *float64 `json:"amount,omitempty"`
}

// VoucherInput is the offer_voucher request
type VoucherInput struct {
	CustomerID  string  `json:"customerId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	VoucherType string  `json:"voucherType" binding:"required"`
	Reason      string  `json:"reason"`
}

// EscalationInput is the escalate_to_human request
type EscalationInput struct {
	Reason  string `json:"reason" binding:"required"`
	Urgency string `json:"urgency" binding:"required,oneof=high medium low"`
	Summary string `json:"summary" binding:"required"`
}

// ResolveComplaintInput closes an open complaint
type ResolveComplaintInput struct {
	ComplaintID string `json:"complaintId" binding:"required"`
	Resolution  string `json:"resolution" binding:"required"`
}

// SubstitutionInput is the check_substitution_policy request
type SubstitutionInput struct {
	MerchantID   string `json:"merchantId" binding:"required"`
	OriginalItem string `json:"originalItem" binding:"required"`
}

// OrderRefInput carries an order identifier for telemetry lookups
type OrderRefInput struct {
	OrderID string `json:"orderId" binding:"required"`
}

// LocationInput carries a coarse location for weather lookups
type LocationInput struct {
	Location string `json:"location" binding:"required"`
}

// ContactInput is a message sent to a driver or merchant. An empty
// message is replaced by a generic status request.
type ContactInput struct {
	ID      string `json:"id" binding:"required"`
	Message string `json:"message"`
}
