package entities

import "time"

// EscalationKind is the review path a case is routed to
type EscalationKind string

const (
	EscalationKindHumanReview      EscalationKind = "human_review"
	EscalationKindQualityAssurance EscalationKind = "quality_assurance"
	EscalationKindMediation        EscalationKind = "mediation"
)

// Urgency levels accepted for escalations
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// Escalation hands a case over to people
type Escalation struct {
	ID               string         `json:"id"`
	Kind             EscalationKind `json:"kind"`
	Reason           string         `json:"reason"`
	Urgency          string         `json:"urgency"`
	Summary          string         `json:"summary"`
	Parties          []string       `json:"parties"`
	ExpectedResponse string         `json:"expectedResponse"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// ExpectedResponseFor maps an urgency onto the promised response time
func ExpectedResponseFor(urgency string) string {
	switch urgency {
	case UrgencyHigh:
		return "30 minutes"
	case UrgencyMedium:
		return "2 hours"
	default:
		return "24 hours"
	}
}
