package usecases

import (
	"fmt"
	"math"
	"strings"

	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
)

const (
	PolicyCompensateFirst = "compensate_first"
	PolicySolveFirst      = "solve_first"
)

// compensationBand is one row of the score-to-package table
type compensationBand struct {
	minScore          int
	tier              entities.CompensationTier
	refundMultiplier  float64
	voucherMultiplier float64
	voucherType       string
	nextSteps         []string
}

// Bands are ordered by descending minimum score.
var compensationBands = []compensationBand{
	{90, entities.TierPremiumPlus, 1.0, 2.0, "premium_credit", []string{
		"Management follow-up call within 24 hours",
		"Quality assurance escalation opened",
	}},
	{70, entities.TierPremium, 1.0, 1.5, "priority_credit", []string{
		"Priority reorder offered at no delivery charge",
	}},
	{45, entities.TierEnhanced, 1.0, 1.0, "discount_voucher", []string{
		"Discount voucher applied to the next order",
	}},
	{0, entities.TierBasic, 0.5, 0.25, "goodwill_voucher", []string{
		"Goodwill voucher added to the account",
	}},
}

func bandFor(score int) compensationBand {
	for _, b := range compensationBands {
		if score >= b.minScore {
			return b
		}
	}
	return compensationBands[len(compensationBands)-1]
}

var merchantSeverityByTier = map[entities.SeverityTier]string{
	entities.SeverityCritical: "high",
	entities.SeverityHigh:     "medium",
	entities.SeverityMedium:   "low",
}

// CompensationPolicy decides how aggressively a band's package is paid out.
type CompensationPolicy interface {
	Name() string
	// Amounts returns the uncapped refund and voucher for a band and basis, plus the offer text.
	Amounts(band compensationBand, basis float64) (refund, voucher float64, offer string)
}

// CompensateFirstPolicy pays the band's refund and credit immediately.
type CompensateFirstPolicy struct{}

func (CompensateFirstPolicy) Name() string { return PolicyCompensateFirst }

func (CompensateFirstPolicy) Amounts(band compensationBand, basis float64) (float64, float64, string) {
	refund := basis * band.refundMultiplier
	voucher := basis * band.voucherMultiplier
	return refund, voucher, "Immediate compensation issued"
}

// SolveFirstPolicy offers a replacement first and keeps cash refunds for premium bands.
type SolveFirstPolicy struct{}

func (SolveFirstPolicy) Name() string { return PolicySolveFirst }

func (SolveFirstPolicy) Amounts(band compensationBand, basis float64) (float64, float64, string) {
	var refund float64
	if band.tier == entities.TierPremium || band.tier == entities.TierPremiumPlus {
		refund = basis * band.refundMultiplier
	}
	voucher := basis * band.voucherMultiplier * 0.5
	return refund, voucher, "Replacement order offered first; compensation follows if declined"
}

// NewCompensationPolicy selects a policy by its configured name; empty means compensate_first.
func NewCompensationPolicy(name string) (CompensationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyCompensateFirst:
		return CompensateFirstPolicy{}, nil
	case PolicySolveFirst:
		return SolveFirstPolicy{}, nil
	default:
		return nil, fmt.Errorf("resolution policy %q: %w", name, domainerrors.ErrMalformedInput)
	}
}

// BuildPlan turns a classified complaint into a concrete package.
// The refund never exceeds the eligibility recommendation.
func BuildPlan(policy CompensationPolicy, situation entities.Situation, score entities.SeverityScore, basis float64, eligibility entities.Eligibility) entities.ResolutionPlan {
	band := bandFor(score.Total)
	uncapped, voucher, offer := policy.Amounts(band, basis)
	refund := math.Min(uncapped, eligibility.RecommendedAmount)

	plan := entities.ResolutionPlan{
		Tier:          band.tier,
		Policy:        policy.Name(),
		BasisAmount:   basis,
		RefundAmount:  roundCents(math.Max(0, refund)),
		VoucherAmount: roundCents(math.Max(0, voucher)),
		VoucherType:   band.voucherType,
		SolutionOffer: offer,
		NextSteps:     append([]string{}, band.nextSteps...),
		EscalateQA:    band.tier == entities.TierPremiumPlus,
		Mediation:     situation.NeedsMediation,
	}

	if severity, ok := merchantSeverityByTier[situation.Tier]; ok &&
		(situation.Responsible == entities.PartyMerchant || situation.Responsible == entities.PartyShared) {
		plan.LogMerchant = true
		plan.MerchantSeverity = severity
		plan.NextSteps = append(plan.NextSteps, "Restaurant quality team notified")
	}
	if situation.ClearsDriver {
		plan.ExonerateDriver = true
		plan.ExonerationReason = situation.Finding
		plan.NextSteps = append(plan.NextSteps, "Driver record kept clean for this incident")
	}
	if plan.Mediation {
		plan.NextSteps = append(plan.NextSteps, "Mediation opened between restaurant and delivery partner")
	}
	if refund < uncapped {
		plan.NextSteps = append(plan.NextSteps, "Refund capped at the eligible amount for this account")
	}
	return plan
}
