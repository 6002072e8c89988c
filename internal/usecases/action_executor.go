package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/pkg/logger"
)

// ActionExecutor wraps each store mutation into a result the agent can relay.
type ActionExecutor struct {
	store    *DomainStore
	narrator *Narrator
}

// NewActionExecutor creates a new action executor
func NewActionExecutor(store *DomainStore, narrator *Narrator) *ActionExecutor {
	return &ActionExecutor{store: store, narrator: narrator}
}

func ok(message string, data interface{}) entities.ActionResult {
	return entities.ActionResult{Success: true, Message: message, Data: data}
}

func failed(err error, message string) entities.ActionResult {
	if message == "" {
		message = err.Error()
	}
	return entities.ActionResult{Success: false, Code: domainerrors.CodeOf(err), Message: message}
}

// IssueRefund credits the wallet and reports the new balance
func (e *ActionExecutor) IssueRefund(ctx context.Context, in entities.RefundInput) entities.ActionResult {
	receipt, err := e.store.ProcessRefund(ctx, in.CustomerID, in.Amount, in.Reason)
	if err != nil {
		logger.Warn(ctx, "Refund failed", zap.String("customer_id", in.CustomerID), zap.Error(err))
		if errors.Is(err, domainerrors.ErrNotFound) {
			return failed(err, fmt.Sprintf("Customer %s not found, refund not processed", in.CustomerID))
		}
		return failed(err, "")
	}
	return ok(e.narrator.Refund(receipt), receipt)
}

// ExonerateDriver clears the driver; Data carries the flag
func (e *ActionExecutor) ExonerateDriver(ctx context.Context, in entities.ExonerationInput) entities.ActionResult {
	done, err := e.store.ExonerateDriver(ctx, in.DriverID, in.Reason)
	if err != nil {
		return failed(err, "")
	}
	if !done {
		return entities.ActionResult{
			Success: false,
			Code:    domainerrors.CodeNotFound,
			Message: fmt.Sprintf("Failed to exonerate driver %s", in.DriverID),
			Data:    false,
		}
	}
	driver, err := e.store.GetDriver(ctx, in.DriverID)
	if err != nil {
		return failed(err, "")
	}
	return ok(e.narrator.Exoneration(driver, in.Reason), true)
}

// LogMerchantFeedback records a quality issue; Data carries the flag
func (e *ActionExecutor) LogMerchantFeedback(ctx context.Context, in entities.MerchantFeedbackInput) entities.ActionResult {
	severity := in.Severity
	if strings.TrimSpace(severity) == "" {
		severity = entities.UrgencyMedium
	}
	done, err := e.store.LogMerchantFeedback(ctx, in.MerchantID, in.Issue, severity)
	if err != nil {
		return failed(err, "")
	}
	if !done {
		return entities.ActionResult{
			Success: false,
			Code:    domainerrors.CodeNotFound,
			Message: fmt.Sprintf("Failed to log feedback for merchant %s", in.MerchantID),
			Data:    false,
		}
	}
	return ok(e.narrator.MerchantFeedback(in.MerchantID, in.Issue, severity), true)
}

// CreateIncident logs a complaint; refund-related details get HIGH priority
func (e *ActionExecutor) CreateIncident(ctx context.Context, in entities.IncidentInput) entities.ActionResult {
	complaint, err := e.store.LogComplaint(ctx, in.CustomerID, in.OrderID, in.IssueType, in.Details)
	if err != nil {
		return failed(err, "")
	}
	priority := "MEDIUM"
	if strings.Contains(foldText(in.Details), "refund") {
		priority = "HIGH"
	}
	return ok(e.narrator.Incident(complaint, priority), complaint)
}

func (e *ActionExecutor) CreateOrder(ctx context.Context, in entities.CreateOrderInput) entities.ActionResult {
	order, err := e.store.CreateOrder(ctx, in.Description, in.Amount)
	if err != nil {
		return failed(err, "")
	}
	return ok(e.narrator.Order(order), order)
}

func (e *ActionExecutor) OfferVoucher(ctx context.Context, in entities.VoucherInput) entities.ActionResult {
	reason := in.Reason
	if reason == "" {
		reason = "Goodwill gesture"
	}
	voucher, err := e.store.IssueVoucher(ctx, in.CustomerID, in.Amount, in.VoucherType, reason)
	if err != nil {
		return failed(err, "")
	}
	return ok(e.narrator.Voucher(voucher), voucher)
}

func (e *ActionExecutor) EscalateToHuman(ctx context.Context, in entities.EscalationInput) entities.ActionResult {
	escalation, err := e.store.CreateEscalation(ctx, entities.EscalationKindHumanReview, in.Reason, in.Urgency, in.Summary, nil)
	if err != nil {
		return failed(err, "")
	}
	return ok(e.narrator.Escalation(escalation), escalation)
}

func (e *ActionExecutor) ResolveComplaint(ctx context.Context, in entities.ResolveComplaintInput) entities.ActionResult {
	complaint, err := e.store.ResolveComplaint(ctx, in.ComplaintID, in.Resolution)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return failed(err, fmt.Sprintf("Complaint %s not found", in.ComplaintID))
		}
		return failed(err, "")
	}
	return ok(e.narrator.ComplaintResolved(complaint), complaint)
}
