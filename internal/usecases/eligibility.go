package usecases

import (
	"math"

	"resolution-desk.backend/internal/domain/entities"
)

const (
	complaintPenalty = 0.1
	maxRating        = 5.0
	// absorbs float error in the cap product, well below a cent
	capTolerance = 1e-9

	goodwillNote     = "First-time issue: additional goodwill consideration applied"
	verificationNote = "Frequent complainer: enhanced verification required"
)

// ComputeEligibility derives the trust-adjusted refund cap for a claim.
func ComputeEligibility(rating float64, complaintCount int, orderTotal, claim float64) entities.Eligibility {
	trust := math.Max(0, rating-complaintPenalty*float64(complaintCount))
	rawCap := math.Max(0, orderTotal*(trust/maxRating))
	maxEligible := roundCents(rawCap)

	e := entities.Eligibility{
		TrustScore:  roundCents(trust),
		OrderTotal:  orderTotal,
		ClaimAmount: claim,
		MaxEligible: maxEligible,
		Notes:       []string{},
	}
	// the decision uses the exact cap; MaxEligible is rounded for display only
	if claim <= rawCap+capTolerance {
		e.Status = entities.EligibilityApproved
		e.RecommendedAmount = math.Max(0, claim)
	} else {
		e.Status = entities.EligibilityPartialApproval
		e.RecommendedAmount = math.Max(0, math.Min(claim, maxEligible))
	}

	// 1 or 2 complaints get neither note
	if complaintCount == 0 {
		e.Notes = append(e.Notes, goodwillNote)
	}
	if complaintCount > 2 {
		e.Notes = append(e.Notes, verificationNote)
	}
	return e
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
