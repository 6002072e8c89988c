package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resolution-desk.backend/pkg/utils"
)

func newRecordsRouter(d *handlerDesk) *gin.Engine {
	r := gin.New()
	r.GET("/customers/:id", d.records.GetCustomer)
	r.GET("/customers/:id/transactions", d.records.ListCustomerTransactions)
	r.GET("/customers/:id/orders", d.records.ListCustomerOrders)
	r.GET("/customers/:id/complaints", d.records.ListCustomerComplaints)
	r.GET("/customers/:id/vouchers", d.records.ListCustomerVouchers)
	r.GET("/merchants/:id", d.records.GetMerchant)
	r.GET("/drivers/:id", d.records.GetDriver)
	r.GET("/orders/:id", d.records.GetOrder)
	r.GET("/transactions/:id", d.records.GetTransaction)
	r.GET("/complaints/:id", d.records.GetComplaint)
	r.GET("/escalations/:id", d.records.GetEscalation)
	return r
}

func TestRecordsHandler_SeedRecords(t *testing.T) {
	d := newHandlerDesk(t)
	r := newRecordsRouter(d)

	for _, path := range []string{"/customers/C001", "/merchants/M001", "/drivers/D001"} {
		w := doJSON(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	body := decodeBody(t, doJSON(r, http.MethodGet, "/customers/C001", ""))
	customer, ok := body["customer"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "C001", customer["id"])
}

func TestRecordsHandler_NotFound(t *testing.T) {
	d := newHandlerDesk(t)
	r := newRecordsRouter(d)

	for _, path := range []string{
		"/customers/C999",
		"/merchants/M999",
		"/drivers/D999",
		"/orders/ORD_999",
		"/transactions/REF_999",
		"/complaints/COMP_999",
		"/escalations/ESC_999",
	} {
		w := doJSON(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestRecordsHandler_TransactionsPagination(t *testing.T) {
	d := newHandlerDesk(t)
	ctx := t.Context()
	for _, amount := range []float64{10, 20, 30} {
		_, err := d.store.ProcessRefund(ctx, "C001", amount, "Late delivery")
		require.NoError(t, err)
	}

	w := doJSON(newRecordsRouter(d), http.MethodGet, "/customers/C001/transactions?page=2&limit=2", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)

	meta, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), meta["totalCount"])
	assert.Equal(t, float64(2), meta["totalPages"])
}

func TestRecordsHandler_TransactionsLimitIsClamped(t *testing.T) {
	d := newHandlerDesk(t)
	_, err := d.store.ProcessRefund(t.Context(), "C001", 15, "Cold food")
	require.NoError(t, err)

	w := doJSON(newRecordsRouter(d), http.MethodGet, "/customers/C001/transactions?limit=100000&page=x", "")
	assert.Equal(t, http.StatusOK, w.Code)

	meta, ok := decodeBody(t, w)["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(utils.MaxPageLimit), meta["limit"])
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(1), meta["totalCount"])
}

func TestRecordsHandler_CustomerHistoryAfterResolve(t *testing.T) {
	d := newHandlerDesk(t)
	r := gin.New()
	r.POST("/resolve", d.resolve.Resolve)
	r.GET("/customers/:id/orders", d.records.ListCustomerOrders)
	r.GET("/customers/:id/complaints", d.records.ListCustomerComplaints)
	r.GET("/customers/:id/vouchers", d.records.ListCustomerVouchers)
	r.GET("/complaints/:id", d.records.GetComplaint)

	w := doJSON(r, http.MethodPost, "/resolve", `{"issueText":"My burger order arrived cold","amount":100}`)
	require.Equal(t, http.StatusCreated, w.Code)

	for _, path := range []string{"/customers/C001/orders", "/customers/C001/complaints", "/customers/C001/vouchers"} {
		body := decodeBody(t, doJSON(r, http.MethodGet, path, ""))
		items, ok := body["items"].([]interface{})
		require.True(t, ok, path)
		assert.Len(t, items, 1, path)
	}

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/complaints/COMP_001", "").Code)
}
