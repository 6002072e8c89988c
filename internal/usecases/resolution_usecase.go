package usecases

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"resolution-desk.backend/internal/domain/entities"
	"resolution-desk.backend/internal/infrastructure/metrics"
	"resolution-desk.backend/pkg/logger"
)

const noTier = "none"

// ResolutionUsecase drives one complaint from raw text to executed remediation.
type ResolutionUsecase struct {
	store    *DomainStore
	policy   CompensationPolicy
	narrator *Narrator
}

// NewResolutionUsecase creates a new resolution usecase
func NewResolutionUsecase(store *DomainStore, policy CompensationPolicy, narrator *Narrator) *ResolutionUsecase {
	if policy == nil {
		policy = CompensateFirstPolicy{}
	}
	return &ResolutionUsecase{store: store, policy: policy, narrator: narrator}
}

// Policy returns the active compensation policy
func (u *ResolutionUsecase) Policy() CompensationPolicy {
	return u.policy
}

// Resolve runs RECEIVED -> NEEDS_INFO | CLASSIFIED -> PLAN_BUILT -> EXECUTING -> RESOLVED.
// Executed steps are not rolled back when a later step fails; the returned
// outcome records what was done up to the failure.
func (u *ResolutionUsecase) Resolve(ctx context.Context, in entities.ResolveInput) (*entities.ResolutionOutcome, error) {
	outcome := &entities.ResolutionOutcome{}
	outcome.Advance(entities.StateReceived)

	outcome.Evidence = CollectEvidence(in.IssueText, in.ImageDescription)
	if !outcome.Evidence.Ready {
		outcome.Advance(entities.StateNeedsInfo)
		outcome.Narrative = u.narrator.EvidencePrompt(outcome.Evidence)
		metrics.ResolutionsTotal.WithLabelValues(noTier, string(outcome.State)).Inc()
		logger.Info(ctx, "Resolution needs more information", zap.Strings("missing", outcome.Evidence.MissingFields))
		return outcome, nil
	}

	// the image description counts as evidence for severity too
	evidence := evidenceText(in.IssueText, in.ImageDescription)
	situation := AnalyzeSituation(evidence)
	score := ScoreSeverity(evidence)
	outcome.Situation, outcome.Score = &situation, &score
	outcome.Advance(entities.StateClassified)
	logger.Info(ctx, "Complaint classified",
		zap.String("severity", string(situation.Tier)),
		zap.String("category", string(situation.Category)),
		zap.Int("score", score.Total),
	)

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		customerID = u.store.Defaults().DefaultCustomerID
	}
	customer, err := u.store.GetCustomer(ctx, customerID)
	if err != nil {
		return outcome, fmt.Errorf("customer %s: %w", customerID, err)
	}

	var order *entities.Order
	if id := strings.TrimSpace(in.OrderID); id != "" {
		order, err = u.store.GetOrder(ctx, id)
		if err != nil {
			return outcome, fmt.Errorf("order %s: %w", id, err)
		}
	}

	basis := u.basisAmount(in.Amount, order)
	// a missing order is created with the basis as its total
	orderTotal := basis
	if order != nil {
		orderTotal = order.TotalAmount
	}
	eligibility := ComputeEligibility(customer.Rating, customer.ComplaintCount(), orderTotal, basis)
	outcome.Eligibility = &eligibility

	plan := BuildPlan(u.policy, situation, score, basis, eligibility)
	outcome.Plan = &plan
	outcome.Advance(entities.StatePlanBuilt)
	logger.Info(ctx, "Resolution plan built",
		zap.String("customer_id", customer.ID),
		zap.String("tier", string(plan.Tier)),
		zap.String("policy", plan.Policy),
		zap.Float64("refund", plan.RefundAmount),
		zap.Float64("voucher", plan.VoucherAmount),
	)

	outcome.Advance(entities.StateExecuting)
	if err := u.execute(ctx, outcome, customer, order, in.IssueText, basis); err != nil {
		logger.Error(ctx, "Resolution execution stopped", zap.String("customer_id", customer.ID), zap.Error(err))
		metrics.ResolutionsTotal.WithLabelValues(string(plan.Tier), string(outcome.State)).Inc()
		return outcome, err
	}

	outcome.Advance(entities.StateResolved)
	outcome.Narrative = u.narrator.Resolution(outcome)
	metrics.ResolutionsTotal.WithLabelValues(string(plan.Tier), string(outcome.State)).Inc()
	logger.Info(ctx, "Complaint resolved",
		zap.String("customer_id", customer.ID),
		zap.String("complaint_id", outcome.ComplaintID),
		zap.String("tier", string(plan.Tier)),
		zap.Int("score", score.Total),
		zap.Float64("refund", plan.RefundAmount),
	)
	return outcome, nil
}

// basisAmount prefers the stated amount, then the order total, then the default.
func (u *ResolutionUsecase) basisAmount(amount *float64, order *entities.Order) float64 {
	if amount != nil && *amount > 0 {
		return *amount
	}
	if order != nil && order.TotalAmount > 0 {
		return order.TotalAmount
	}
	return u.store.Defaults().DefaultOrderAmount
}

func (u *ResolutionUsecase) execute(ctx context.Context, outcome *entities.ResolutionOutcome, customer *entities.Customer, order *entities.Order, issueText string, basis float64) error {
	plan := outcome.Plan
	situation := outcome.Situation

	if order == nil {
		created, err := u.store.CreateOrder(ctx, issueText, &basis)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		order = created
	}
	outcome.OrderID = order.ID

	complaint, err := u.store.LogComplaint(ctx, customer.ID, order.ID, string(situation.Category), issueText)
	if err != nil {
		return fmt.Errorf("log complaint: %w", err)
	}
	outcome.ComplaintID = complaint.ID

	if plan.RefundAmount > 0 {
		receipt, err := u.store.ProcessRefund(ctx, customer.ID, plan.RefundAmount, fmt.Sprintf("%s compensation", situation.Category))
		if err != nil {
			return fmt.Errorf("refund: %w", err)
		}
		outcome.TransactionID = receipt.Transaction.ID
	}

	if plan.VoucherAmount > 0 {
		voucher, err := u.store.IssueVoucher(ctx, customer.ID, plan.VoucherAmount, plan.VoucherType, fmt.Sprintf("%s tier compensation", plan.Tier))
		if err != nil {
			return fmt.Errorf("voucher: %w", err)
		}
		outcome.VoucherID = voucher.ID
	}

	if plan.LogMerchant {
		if _, err := u.store.LogMerchantFeedback(ctx, order.MerchantID, situation.Impact, plan.MerchantSeverity); err != nil {
			return fmt.Errorf("merchant feedback: %w", err)
		}
	}

	if plan.ExonerateDriver {
		if _, err := u.store.ExonerateDriver(ctx, order.DriverID, plan.ExonerationReason); err != nil {
			return fmt.Errorf("exonerate driver: %w", err)
		}
	}

	if plan.EscalateQA {
		esc, err := u.store.CreateEscalation(ctx, entities.EscalationKindQualityAssurance,
			fmt.Sprintf("%s severity %s", situation.Tier, situation.Category),
			entities.UrgencyHigh, situation.Impact, []string{string(entities.PartyMerchant)})
		if err != nil {
			return fmt.Errorf("quality escalation: %w", err)
		}
		outcome.EscalationIDs = append(outcome.EscalationIDs, esc.ID)
	}

	if plan.Mediation {
		esc, err := u.store.CreateEscalation(ctx, entities.EscalationKindMediation,
			"Responsibility disputed between restaurant and delivery partner",
			entities.UrgencyMedium, situation.Finding, []string{"customer", string(entities.PartyMerchant), string(entities.PartyDriver)})
		if err != nil {
			return fmt.Errorf("mediation escalation: %w", err)
		}
		outcome.EscalationIDs = append(outcome.EscalationIDs, esc.ID)
	}
	return nil
}
