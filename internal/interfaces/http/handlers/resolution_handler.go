package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/interfaces/http/response"
	"resolution-desk.backend/internal/usecases"
)

// ResolutionHandler handles the primary resolve endpoint
type ResolutionHandler struct {
	resolution *usecases.ResolutionUsecase
}

// NewResolutionHandler creates a new resolution handler
func NewResolutionHandler(resolution *usecases.ResolutionUsecase) *ResolutionHandler {
	return &ResolutionHandler{resolution: resolution}
}

// Resolve runs the full resolution flow for one complaint
// POST /api/v1/resolve
func (h *ResolutionHandler) Resolve(c *gin.Context) {
	var input entities.ResolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.MalformedInput(err.Error()))
		return
	}

	outcome, err := h.resolution.Resolve(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Customer or order not found"))
			return
		}
		response.Error(c, err)
		return
	}

	status := http.StatusOK
	if outcome.State == entities.StateResolved {
		status = http.StatusCreated
	}
	response.Success(c, status, outcome)
}
