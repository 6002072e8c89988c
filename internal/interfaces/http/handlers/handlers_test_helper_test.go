package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"resolution-desk.backend/internal/config"
	"resolution-desk.backend/internal/infrastructure/datasources/database"
	"resolution-desk.backend/internal/infrastructure/repositories"
	"resolution-desk.backend/internal/infrastructure/telemetry"
	"resolution-desk.backend/internal/usecases"
)

type handlerDesk struct {
	store   *usecases.DomainStore
	tools   *ToolHandler
	resolve *ResolutionHandler
	records *RecordsHandler
}

func newHandlerDesk(t *testing.T) *handlerDesk {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewConnection(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: fmt.Sprintf("file:h_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano()),
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Seed(t.Context(), db, true))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	store := usecases.NewDomainStore(usecases.StoreRepositories{
		Customers:    repositories.NewCustomerRepository(db),
		Merchants:    repositories.NewMerchantRepository(db),
		Drivers:      repositories.NewDriverRepository(db),
		Orders:       repositories.NewOrderRepository(db),
		Transactions: repositories.NewTransactionRepository(db),
		Vouchers:     repositories.NewVoucherRepository(db),
		Complaints:   repositories.NewComplaintRepository(db),
		Escalations:  repositories.NewEscalationRepository(db),
		Sequences:    repositories.NewSequenceRepository(db),
	}, repositories.NewUnitOfWork(db), config.ResolutionConfig{
		DefaultCustomerID:  "C001",
		DefaultMerchantID:  "M001",
		DefaultDriverID:    "D001",
		DefaultOrderAmount: 200,
		DeliveryCharge:     40,
		CurrencySymbol:     "₹",
	})

	narrator := usecases.NewNarrator("₹")
	investigation := usecases.NewInvestigationUsecase(store, narrator, telemetry.NewStaticProvider())
	actions := usecases.NewActionExecutor(store, narrator)
	resolution := usecases.NewResolutionUsecase(store, usecases.CompensateFirstPolicy{}, narrator)
	toolkit := usecases.NewToolkit(investigation, actions, resolution)

	return &handlerDesk{
		store:   store,
		tools:   NewToolHandler(toolkit),
		resolve: NewResolutionHandler(resolution),
		records: NewRecordsHandler(store),
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
