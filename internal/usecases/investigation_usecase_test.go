package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/usecases"
)

func TestInvestigation_Profiles(t *testing.T) {
	desk := newTestDesk(t, nil)
	ctx := context.Background()

	res := desk.investigation.CheckCustomer(ctx, entities.LookupInput{ID: "C001"})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "John Smith")
	assert.Contains(t, res.Message, "Risk Assessment: LOW")
	assert.Contains(t, res.Message, "Wallet Balance: ₹500")

	res = desk.investigation.CheckDriver(ctx, entities.LookupInput{ID: "D001"})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "Incident History: Clean record")

	res = desk.investigation.CheckMerchant(ctx, entities.LookupInput{ID: "M001"})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "Food Corner")
	assert.Contains(t, res.Message, "Item 1: ₹150 - ✓ Available")

	res = desk.investigation.CheckCustomer(ctx, entities.LookupInput{ID: "C999"})
	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.CodeNotFound, res.Code)
	assert.Equal(t, "Customer C999 not found", res.Message)

	res = desk.investigation.CheckOrder(ctx, entities.LookupInput{ID: "ORD_001"})
	assert.Equal(t, domainerrors.CodeNotFound, res.Code)
}

func TestInvestigation_AssessEligibility(t *testing.T) {
	desk := newTestDesk(t, nil)
	ctx := context.Background()

	order, err := desk.store.CreateOrder(ctx, "Pizza", amountOf(400))
	require.NoError(t, err)

	res := desk.investigation.AssessEligibility(ctx, entities.EligibilityInput{CustomerID: "C001", OrderID: order.ID, ClaimAmount: 400})
	require.True(t, res.Success)
	e := res.Data.(entities.Eligibility)
	assert.Equal(t, 4.5, e.TrustScore)
	assert.Equal(t, 360.0, e.MaxEligible)
	assert.Equal(t, entities.EligibilityPartialApproval, e.Status)
	assert.Equal(t, 360.0, e.RecommendedAmount)
	assert.Contains(t, res.Message, "Maximum Eligible: ₹360")

	res = desk.investigation.AssessEligibility(ctx, entities.EligibilityInput{CustomerID: "C999", OrderID: order.ID, ClaimAmount: 10})
	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.CodeNotFound, res.Code)
	assert.Equal(t, "Customer or order not found", res.Message)

	res = desk.investigation.AssessEligibility(ctx, entities.EligibilityInput{CustomerID: "C001", OrderID: "ORD_404", ClaimAmount: 10})
	assert.Equal(t, "Customer or order not found", res.Message)

	res = desk.investigation.AssessEligibility(ctx, entities.EligibilityInput{CustomerID: "C001", OrderID: order.ID, ClaimAmount: -1})
	assert.Equal(t, domainerrors.CodeMalformedInput, res.Code)
}

func TestInvestigation_AnalyzeAndEvidence(t *testing.T) {
	desk := newTestDesk(t, nil)
	ctx := context.Background()

	res := desk.investigation.AnalyzeSituation(ctx, entities.TextInput{Text: "My food was spilled during delivery"})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "Severity: CRITICAL (score 100)")

	res = desk.investigation.CollectEvidence(ctx, entities.EvidenceInput{Text: "hi"})
	require.True(t, res.Success)
	assert.False(t, res.Data.(entities.EvidenceResult).Ready)

	res = desk.investigation.CollectEvidence(ctx, entities.EvidenceInput{Text: "My pizza arrived cold"})
	assert.True(t, res.Data.(entities.EvidenceResult).Ready)
}

func TestInvestigation_SubstitutionPolicy(t *testing.T) {
	desk := newTestDesk(t, nil)
	res := desk.investigation.CheckSubstitutionPolicy(context.Background(), entities.SubstitutionInput{MerchantID: "M001", OriginalItem: "item_2"})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "Item 1: ₹150")
	assert.NotContains(t, res.Message, "Item 2:")
}

func TestInvestigation_TelemetryDelegatesToProvider(t *testing.T) {
	store := newTestStore(t)
	provider := new(MockTelemetryProvider)
	uc := usecases.NewInvestigationUsecase(store, usecases.NewNarrator("₹"), provider)
	ctx := context.Background()

	provider.On("TrackDelivery", mock.Anything, "ORD_001").Return("Delivered", nil).Once()
	provider.On("AnalyzeRoute", mock.Anything, "ORD_001").Return("", errors.New("gps offline")).Once()
	provider.On("WeatherImpact", mock.Anything, "Noida").Return("Light rain", nil).Once()

	res := uc.TrackDelivery(ctx, entities.OrderRefInput{OrderID: "ORD_001"})
	assert.True(t, res.Success)
	assert.Equal(t, "Real-time tracking for order ORD_001: Delivered", res.Message)

	res = uc.AnalyzeRoute(ctx, entities.OrderRefInput{OrderID: "ORD_001"})
	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.CodeInternalError, res.Code)

	res = uc.CheckWeather(ctx, entities.LocationInput{Location: "Noida"})
	assert.Equal(t, "Weather at Noida: Light rain", res.Message)

	provider.AssertExpectations(t)
}

func TestInvestigation_ContactParties(t *testing.T) {
	store := newTestStore(t)
	provider := new(MockTelemetryProvider)
	uc := usecases.NewInvestigationUsecase(store, usecases.NewNarrator("₹"), provider)
	ctx := context.Background()

	provider.On("ContactDriver", mock.Anything, "D001", "Status update").
		Return("Driver Communication: Driver explained: 'Traffic jam caused delay, sent customer notification'", nil).Once()
	provider.On("ContactMerchant", mock.Anything, "M001", "Was the paneer fresh?").
		Return("Merchant Response: Merchant admitted: 'Kitchen error occurred, willing to remake order at no charge'", nil).Once()

	res := uc.ContactDriver(ctx, entities.ContactInput{ID: "D001", Message: "  "})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "Traffic jam")

	res = uc.ContactMerchant(ctx, entities.ContactInput{ID: "M001", Message: "Was the paneer fresh?"})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "Kitchen error")

	res = uc.ContactDriver(ctx, entities.ContactInput{ID: "D404"})
	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.CodeNotFound, res.Code)
	assert.Equal(t, "Driver D404 not found", res.Message)

	res = uc.ContactMerchant(ctx, entities.ContactInput{ID: "M404"})
	assert.Equal(t, domainerrors.CodeNotFound, res.Code)

	provider.AssertExpectations(t)
}
