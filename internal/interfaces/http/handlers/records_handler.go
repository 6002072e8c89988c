package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"resolution-desk.backend/internal/interfaces/http/response"
	"resolution-desk.backend/internal/usecases"
	"resolution-desk.backend/pkg/utils"
)

// RecordsHandler serves read-only views of the domain store
type RecordsHandler struct {
	store *usecases.DomainStore
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(store *usecases.DomainStore) *RecordsHandler {
	return &RecordsHandler{store: store}
}

// GET /api/v1/customers/:id
func (h *RecordsHandler) GetCustomer(c *gin.Context) {
	customer, err := h.store.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": customer})
}

// GET /api/v1/customers/:id/transactions
func (h *RecordsHandler) ListCustomerTransactions(c *gin.Context) {
	pagination := utils.ParsePagination(c.Query("page"), c.Query("limit"))

	items, meta, err := h.store.ListTransactionsByCustomer(c.Request.Context(), c.Param("id"), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "meta": meta})
}

// GET /api/v1/customers/:id/orders
func (h *RecordsHandler) ListCustomerOrders(c *gin.Context) {
	items, err := h.store.ListOrdersByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/customers/:id/complaints
func (h *RecordsHandler) ListCustomerComplaints(c *gin.Context) {
	items, err := h.store.ListComplaintsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/customers/:id/vouchers
func (h *RecordsHandler) ListCustomerVouchers(c *gin.Context) {
	items, err := h.store.ListVouchersByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/merchants/:id
func (h *RecordsHandler) GetMerchant(c *gin.Context) {
	merchant, err := h.store.GetMerchant(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"merchant": merchant})
}

// GET /api/v1/drivers/:id
func (h *RecordsHandler) GetDriver(c *gin.Context) {
	driver, err := h.store.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"driver": driver})
}

// GET /api/v1/orders/:id
func (h *RecordsHandler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// GET /api/v1/transactions/:id
func (h *RecordsHandler) GetTransaction(c *gin.Context) {
	txn, err := h.store.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transaction": txn})
}

// GET /api/v1/complaints/:id
func (h *RecordsHandler) GetComplaint(c *gin.Context) {
	complaint, err := h.store.GetComplaint(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaint": complaint})
}

// GET /api/v1/escalations/:id
func (h *RecordsHandler) GetEscalation(c *gin.Context) {
	escalation, err := h.store.GetEscalation(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"escalation": escalation})
}
