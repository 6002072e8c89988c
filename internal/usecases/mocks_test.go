package usecases_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"resolution-desk.backend/internal/config"
	"resolution-desk.backend/internal/infrastructure/datasources/database"
	"resolution-desk.backend/internal/infrastructure/repositories"
	"resolution-desk.backend/internal/usecases"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	args := m.Called(ctx, f)
	if err := args.Error(0); err != nil {
		return err
	}
	return f(ctx)
}

// Mock SequenceRepository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// Mock telemetry Provider
type MockTelemetryProvider struct {
	mock.Mock
}

func (m *MockTelemetryProvider) TrackDelivery(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockTelemetryProvider) AnalyzeRoute(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockTelemetryProvider) WeatherImpact(ctx context.Context, location string) (string, error) {
	args := m.Called(ctx, location)
	return args.String(0), args.Error(1)
}

func (m *MockTelemetryProvider) ContactDriver(ctx context.Context, driverID, message string) (string, error) {
	args := m.Called(ctx, driverID, message)
	return args.String(0), args.Error(1)
}

func (m *MockTelemetryProvider) ContactMerchant(ctx context.Context, merchantID, message string) (string, error) {
	args := m.Called(ctx, merchantID, message)
	return args.String(0), args.Error(1)
}

var fixedNow = time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC)

func testResolutionConfig() config.ResolutionConfig {
	return config.ResolutionConfig{
		Policy:             usecases.PolicyCompensateFirst,
		DefaultCustomerID:  "C001",
		DefaultMerchantID:  "M001",
		DefaultDriverID:    "D001",
		DefaultOrderAmount: 200,
		DeliveryCharge:     40,
		CurrencySymbol:     "₹",
	}
}

// newSeededDB opens a private in-memory sqlite store holding the seed records.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewConnection(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: fmt.Sprintf("file:uc_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano()),
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Seed(t.Context(), db, true))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func storeRepositories(db *gorm.DB) usecases.StoreRepositories {
	return usecases.StoreRepositories{
		Customers:    repositories.NewCustomerRepository(db),
		Merchants:    repositories.NewMerchantRepository(db),
		Drivers:      repositories.NewDriverRepository(db),
		Orders:       repositories.NewOrderRepository(db),
		Transactions: repositories.NewTransactionRepository(db),
		Vouchers:     repositories.NewVoucherRepository(db),
		Complaints:   repositories.NewComplaintRepository(db),
		Escalations:  repositories.NewEscalationRepository(db),
		Sequences:    repositories.NewSequenceRepository(db),
	}
}

func newTestStore(t *testing.T) *usecases.DomainStore {
	t.Helper()
	db := newSeededDB(t)
	store := usecases.NewDomainStore(storeRepositories(db), repositories.NewUnitOfWork(db), testResolutionConfig())
	store.SetClock(func() time.Time { return fixedNow })
	return store
}

type testDesk struct {
	store         *usecases.DomainStore
	narrator      *usecases.Narrator
	actions       *usecases.ActionExecutor
	investigation *usecases.InvestigationUsecase
	resolution    *usecases.ResolutionUsecase
	toolkit       *usecases.Toolkit
}

func newTestDesk(t *testing.T, policy usecases.CompensationPolicy) *testDesk {
	t.Helper()
	store := newTestStore(t)
	narrator := usecases.NewNarrator("₹")
	provider := new(MockTelemetryProvider)
	d := &testDesk{
		store:         store,
		narrator:      narrator,
		actions:       usecases.NewActionExecutor(store, narrator),
		investigation: usecases.NewInvestigationUsecase(store, narrator, provider),
		resolution:    usecases.NewResolutionUsecase(store, policy, narrator),
	}
	d.toolkit = usecases.NewToolkit(d.investigation, d.actions, d.resolution)
	return d
}
