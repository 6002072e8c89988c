package entities

// SeverityTier classifies how badly an order went wrong
type SeverityTier string

const (
	SeverityCritical SeverityTier = "CRITICAL"
	SeverityHigh     SeverityTier = "HIGH"
	SeverityMedium   SeverityTier = "MEDIUM"
	SeverityStandard SeverityTier = "STANDARD"
)

// IssueCategory is the issue-type tag recorded on complaints
type IssueCategory string

const (
	IssueFoodDamage   IssueCategory = "food_damage"
	IssueWrongOrder   IssueCategory = "wrong_order"
	IssueMissingItems IssueCategory = "missing_items"
	IssueColdFood     IssueCategory = "cold_food"
	IssueQuality      IssueCategory = "quality_issue"
	IssueLateDelivery IssueCategory = "late_delivery"
	IssueGeneral      IssueCategory = "general_complaint"
)

// Party identifies who is responsible for an issue
type Party string

const (
	PartyMerchant Party = "merchant"
	PartyDriver   Party = "driver"
	PartyShared   Party = "shared"
	PartyExternal Party = "external"
	PartyNone     Party = "none"
)

// Situation is the outcome of the keyword tiering pass
type Situation struct {
	Tier              SeverityTier  `json:"severity"`
	Category          IssueCategory `json:"category"`
	Impact            string        `json:"impact"`
	RecommendedAction string        `json:"recommendedAction"`
	Responsible       Party         `json:"responsibleParty"`
	NeedsMediation    bool          `json:"needsMediation"`
	ClearsDriver      bool          `json:"clearsDriver"`
	Finding           string        `json:"finding"`
}

// SeverityScore is the additive numeric severity; Total may exceed 100
type SeverityScore struct {
	Base             int `json:"base"`
	AngerBonus       int `json:"angerBonus"`
	FrustrationBonus int `json:"frustrationBonus"`
	RepeatBonus      int `json:"repeatBonus"`
	Total            int `json:"total"`
}

// EvidenceResult is what the evidence gate reports
type EvidenceResult struct {
	Ready         bool     `json:"ready"`
	MissingFields []string `json:"missingFields,omitempty"`
	IssueSummary  string   `json:"issueSummary,omitempty"`
	Prompt        string   `json:"prompt,omitempty"`
}

// EligibilityStatus is the refund eligibility verdict
type EligibilityStatus string

const (
	EligibilityApproved        EligibilityStatus = "APPROVED"
	EligibilityPartialApproval EligibilityStatus = "PARTIAL_APPROVAL"
)

// Eligibility is the trust-adjusted refund cap for a claim
type Eligibility struct {
	TrustScore        float64           `json:"trustScore"`
	OrderTotal        float64           `json:"orderTotal"`
	ClaimAmount       float64           `json:"claimAmount"`
	MaxEligible       float64           `json:"maxEligible"`
	Status            EligibilityStatus `json:"status"`
	RecommendedAmount float64           `json:"recommendedAmount"`
	Notes             []string          `json:"notes,omitempty"`
}

// CompensationTier names a band of the compensation table
type CompensationTier string

const (
	TierPremiumPlus CompensationTier = "premium_plus"
	TierPremium     CompensationTier = "premium"
	TierEnhanced    CompensationTier = "enhanced"
	TierBasic       CompensationTier = "basic"
)

// ResolutionPlan is the concrete remediation decided for one complaint
type ResolutionPlan struct {
	Tier              CompensationTier `json:"tier"`
	Policy            string           `json:"policy"`
	BasisAmount       float64          `json:"basisAmount"`
	RefundAmount      float64          `json:"refundAmount"`
	VoucherAmount     float64          `json:"voucherAmount"`
	VoucherType       string           `json:"voucherType"`
	SolutionOffer     string           `json:"solutionOffer"`
	NextSteps         []string         `json:"nextSteps"`
	LogMerchant       bool             `json:"logMerchant"`
	MerchantSeverity  string           `json:"merchantSeverity,omitempty"`
	ExonerateDriver   bool             `json:"exonerateDriver"`
	ExonerationReason string           `json:"exonerationReason,omitempty"`
	EscalateQA        bool             `json:"escalateQa"`
	Mediation         bool             `json:"mediation"`
}

// ResolutionState is a step of the per-request state machine
type ResolutionState string

const (
	StateReceived   ResolutionState = "RECEIVED"
	StateNeedsInfo  ResolutionState = "NEEDS_INFO"
	StateClassified ResolutionState = "CLASSIFIED"
	StatePlanBuilt  ResolutionState = "PLAN_BUILT"
	StateExecuting  ResolutionState = "EXECUTING"
	StateResolved   ResolutionState = "RESOLVED"
)

// ResolutionOutcome is the full record of one resolve request
type ResolutionOutcome struct {
	State         ResolutionState   `json:"state"`
	Trail         []ResolutionState `json:"trail"`
	Evidence      EvidenceResult    `json:"evidence"`
	Situation     *Situation        `json:"situation,omitempty"`
	Score         *SeverityScore    `json:"score,omitempty"`
	Eligibility   *Eligibility      `json:"eligibility,omitempty"`
	Plan          *ResolutionPlan   `json:"plan,omitempty"`
	OrderID       string            `json:"orderId,omitempty"`
	ComplaintID   string            `json:"complaintId,omitempty"`
	TransactionID string            `json:"transactionId,omitempty"`
	VoucherID     string            `json:"voucherId,omitempty"`
	EscalationIDs []string          `json:"escalationIds,omitempty"`
	Narrative     string            `json:"narrative"`
}

// Advance moves the outcome to the next state and records it
func (o *ResolutionOutcome) Advance(state ResolutionState) {
	o.State = state
	o.Trail = append(o.Trail, state)
}
