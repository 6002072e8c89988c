package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/interfaces/http/response"
	"resolution-desk.backend/internal/usecases"
)

// ToolHandler exposes the named operations to the conversational agent
type ToolHandler struct {
	toolkit *usecases.Toolkit
}

// NewToolHandler creates a new tool handler
func NewToolHandler(toolkit *usecases.Toolkit) *ToolHandler {
	return &ToolHandler{toolkit: toolkit}
}

// ListTools lists the registered tool names
// GET /api/v1/tools
func (h *ToolHandler) ListTools(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tools": h.toolkit.Names()})
}

// Invoke runs one tool with the raw JSON body as its arguments.
// Tool failures are answered with 200 and the failed result.
// POST /api/v1/tools/:name
func (h *ToolHandler) Invoke(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Failed to read request body"))
		return
	}
	response.Result(c, h.toolkit.Invoke(c.Request.Context(), c.Param("name"), raw))
}

// Mirror returns a handler that runs a fixed tool, for REST routes that
// mirror a tool one to one
func (h *ToolHandler) Mirror(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Failed to read request body"))
			return
		}
		response.Result(c, h.toolkit.Invoke(c.Request.Context(), name, raw))
	}
}
