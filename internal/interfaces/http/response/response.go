package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Result sends a tool result. The agent relays the message verbatim, so
// failures are reported in the body with 200.
func Result(c *gin.Context, result entities.ActionResult) {
	c.JSON(http.StatusOK, result)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		switch domainerrors.CodeOf(err) {
		case domainerrors.CodeNotFound:
			appErr = domainerrors.NewAppError(http.StatusNotFound, domainerrors.CodeNotFound, err.Error(), err)
		case domainerrors.CodeMalformedInput:
			appErr = domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeMalformedInput, err.Error(), err)
		default:
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
