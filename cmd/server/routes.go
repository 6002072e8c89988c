package main

import (
	"github.com/gin-gonic/gin"
	"resolution-desk.backend/internal/interfaces/http/handlers"
	"resolution-desk.backend/internal/interfaces/http/middleware"
	"resolution-desk.backend/internal/usecases"
)

type routeDeps struct {
	toolHandler       *handlers.ToolHandler
	resolutionHandler *handlers.ResolutionHandler
	recordsHandler    *handlers.RecordsHandler
}

// REST routes that run exactly one tool with the request body as arguments
var toolMirrors = []struct {
	path string
	tool string
}{
	{"/refunds", usecases.ToolIssueRefund},
	{"/orders", usecases.ToolCreateOrder},
	{"/vouchers", usecases.ToolOfferVoucher},
	{"/incidents", usecases.ToolCreateIncident},
	{"/escalations", usecases.ToolEscalateToHuman},
	{"/eligibility", usecases.ToolAssessEligibility},
	{"/complaints/resolve", usecases.ToolResolveComplaint},
	{"/drivers/exonerate", usecases.ToolExonerateDriver},
	{"/merchants/feedback", usecases.ToolLogMerchantFeedback},
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Agent tool surface
		tools := v1.Group("/tools")
		{
			tools.GET("", d.toolHandler.ListTools)
			tools.POST("/:name",
				middleware.ConversationLockMiddleware(),
				middleware.IdempotencyMiddleware(),
				d.toolHandler.Invoke,
			)
		}

		v1.POST("/resolve",
			middleware.ConversationLockMiddleware(),
			middleware.IdempotencyMiddleware(),
			d.resolutionHandler.Resolve,
		)

		// Mutating mirrors of the action tools
		for _, m := range toolMirrors {
			v1.POST(m.path,
				middleware.ConversationLockMiddleware(),
				middleware.IdempotencyMiddleware(),
				d.toolHandler.Mirror(m.tool),
			)
		}

		// Read-only records
		customers := v1.Group("/customers")
		{
			customers.GET("/:id", d.recordsHandler.GetCustomer)
			customers.GET("/:id/transactions", d.recordsHandler.ListCustomerTransactions)
			customers.GET("/:id/orders", d.recordsHandler.ListCustomerOrders)
			customers.GET("/:id/complaints", d.recordsHandler.ListCustomerComplaints)
			customers.GET("/:id/vouchers", d.recordsHandler.ListCustomerVouchers)
		}
		v1.GET("/merchants/:id", d.recordsHandler.GetMerchant)
		v1.GET("/drivers/:id", d.recordsHandler.GetDriver)
		v1.GET("/orders/:id", d.recordsHandler.GetOrder)
		v1.GET("/transactions/:id", d.recordsHandler.GetTransaction)
		v1.GET("/complaints/:id", d.recordsHandler.GetComplaint)
		v1.GET("/escalations/:id", d.recordsHandler.GetEscalation)
	}
}
