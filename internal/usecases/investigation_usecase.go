package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/infrastructure/telemetry"
	"resolution-desk.backend/pkg/logger"
)

const customerOrOrderNotFound = "Customer or order not found"

// InvestigationUsecase answers the read-only questions asked while a complaint is open.
type InvestigationUsecase struct {
	store     *DomainStore
	narrator  *Narrator
	telemetry telemetry.Provider
}

// NewInvestigationUsecase creates a new investigation usecase
func NewInvestigationUsecase(store *DomainStore, narrator *Narrator, provider telemetry.Provider) *InvestigationUsecase {
	return &InvestigationUsecase{store: store, narrator: narrator, telemetry: provider}
}

func notFoundResult(err error, kind, id string) entities.ActionResult {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return entities.ActionResult{
			Success: false,
			Code:    domainerrors.CodeNotFound,
			Message: fmt.Sprintf("%s %s not found", kind, id),
		}
	}
	return failed(err, "")
}

// AnalyzeSituation classifies free text and scores it
func (u *InvestigationUsecase) AnalyzeSituation(_ context.Context, in entities.TextInput) entities.ActionResult {
	situation := AnalyzeSituation(in.Text)
	score := ScoreSeverity(in.Text)
	return ok(u.narrator.Situation(situation, score), map[string]interface{}{
		"situation": situation,
		"score":     score,
	})
}

// CollectEvidence runs the evidence gate
func (u *InvestigationUsecase) CollectEvidence(_ context.Context, in entities.EvidenceInput) entities.ActionResult {
	evidence := CollectEvidence(in.Text, in.ImageDescription)
	if !evidence.Ready {
		return ok(u.narrator.EvidencePrompt(evidence), evidence)
	}
	return ok("Evidence collected: "+evidence.IssueSummary, evidence)
}

func (u *InvestigationUsecase) CheckCustomer(ctx context.Context, in entities.LookupInput) entities.ActionResult {
	customer, err := u.store.GetCustomer(ctx, in.ID)
	if err != nil {
		return notFoundResult(err, "Customer", in.ID)
	}
	return ok(u.narrator.CustomerProfile(customer), customer)
}

func (u *InvestigationUsecase) CheckDriver(ctx context.Context, in entities.LookupInput) entities.ActionResult {
	driver, err := u.store.GetDriver(ctx, in.ID)
	if err != nil {
		return notFoundResult(err, "Driver", in.ID)
	}
	return ok(u.narrator.DriverProfile(driver), driver)
}

func (u *InvestigationUsecase) CheckMerchant(ctx context.Context, in entities.LookupInput) entities.ActionResult {
	merchant, err := u.store.GetMerchant(ctx, in.ID)
	if err != nil {
		return notFoundResult(err, "Merchant", in.ID)
	}
	return ok(u.narrator.MerchantProfile(merchant), merchant)
}

func (u *InvestigationUsecase) CheckOrder(ctx context.Context, in entities.LookupInput) entities.ActionResult {
	order, err := u.store.GetOrder(ctx, in.ID)
	if err != nil {
		return notFoundResult(err, "Order", in.ID)
	}
	return ok(u.narrator.OrderReport(order), order)
}

// AssessEligibility computes the trust-adjusted refund cap for a claim on an order
func (u *InvestigationUsecase) AssessEligibility(ctx context.Context, in entities.EligibilityInput) entities.ActionResult {
	if in.ClaimAmount < 0 {
		return failed(domainerrors.ErrMalformedInput, "Claim amount cannot be negative")
	}
	customer, err := u.store.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		return eligibilityLookupFailed(err)
	}
	order, err := u.store.GetOrder(ctx, in.OrderID)
	if err != nil {
		return eligibilityLookupFailed(err)
	}

	eligibility := ComputeEligibility(customer.Rating, customer.ComplaintCount(), order.TotalAmount, in.ClaimAmount)
	logger.Info(ctx, "Eligibility assessed",
		zap.String("customer_id", customer.ID),
		zap.String("order_id", order.ID),
		zap.Float64("trust", eligibility.TrustScore),
		zap.String("status", string(eligibility.Status)),
	)
	return ok(u.narrator.Eligibility(eligibility), eligibility)
}

func eligibilityLookupFailed(err error) entities.ActionResult {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return entities.ActionResult{Success: false, Code: domainerrors.CodeNotFound, Message: customerOrOrderNotFound}
	}
	return failed(err, "")
}

// CheckSubstitutionPolicy lists what the merchant can offer in place of an item
func (u *InvestigationUsecase) CheckSubstitutionPolicy(ctx context.Context, in entities.SubstitutionInput) entities.ActionResult {
	merchant, err := u.store.GetMerchant(ctx, in.MerchantID)
	if err != nil {
		return notFoundResult(err, "Merchant", in.MerchantID)
	}
	return ok(u.narrator.Substitution(merchant, in.OriginalItem), nil)
}

func (u *InvestigationUsecase) TrackDelivery(ctx context.Context, in entities.OrderRefInput) entities.ActionResult {
	status, err := u.telemetry.TrackDelivery(ctx, in.OrderID)
	if err != nil {
		return failed(err, "")
	}
	return ok(fmt.Sprintf("Real-time tracking for order %s: %s", in.OrderID, status), status)
}

func (u *InvestigationUsecase) AnalyzeRoute(ctx context.Context, in entities.OrderRefInput) entities.ActionResult {
	analysis, err := u.telemetry.AnalyzeRoute(ctx, in.OrderID)
	if err != nil {
		return failed(err, "")
	}
	return ok(fmt.Sprintf("Route analysis for order %s: %s", in.OrderID, analysis), analysis)
}

func (u *InvestigationUsecase) CheckWeather(ctx context.Context, in entities.LocationInput) entities.ActionResult {
	impact, err := u.telemetry.WeatherImpact(ctx, in.Location)
	if err != nil {
		return failed(err, "")
	}
	return ok(fmt.Sprintf("Weather at %s: %s", in.Location, impact), impact)
}

// ContactDriver relays a message to a known driver and returns their reply
func (u *InvestigationUsecase) ContactDriver(ctx context.Context, in entities.ContactInput) entities.ActionResult {
	if _, err := u.store.GetDriver(ctx, in.ID); err != nil {
		return notFoundResult(err, "Driver", in.ID)
	}
	message := messageOrDefault(in.Message, "Status update")
	reply, err := u.telemetry.ContactDriver(ctx, in.ID, message)
	if err != nil {
		return failed(err, "")
	}
	logger.Info(ctx, "Driver contacted", zap.String("driver_id", in.ID), zap.String("message", message))
	return ok(reply, map[string]string{"driverId": in.ID, "message": message, "reply": reply})
}

// ContactMerchant relays a message to a known merchant and returns their reply
func (u *InvestigationUsecase) ContactMerchant(ctx context.Context, in entities.ContactInput) entities.ActionResult {
	if _, err := u.store.GetMerchant(ctx, in.ID); err != nil {
		return notFoundResult(err, "Merchant", in.ID)
	}
	message := messageOrDefault(in.Message, "Order inquiry")
	reply, err := u.telemetry.ContactMerchant(ctx, in.ID, message)
	if err != nil {
		return failed(err, "")
	}
	logger.Info(ctx, "Merchant contacted", zap.String("merchant_id", in.ID), zap.String("message", message))
	return ok(reply, map[string]string{"merchantId": in.ID, "message": message, "reply": reply})
}

func messageOrDefault(message, fallback string) string {
	if m := strings.TrimSpace(message); m != "" {
		return m
	}
	return fallback
}
