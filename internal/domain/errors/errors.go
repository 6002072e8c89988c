package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrAlreadyExists   = errors.New("resource already exists")
	ErrMalformedInput  = errors.New("malformed input")
	ErrBadRequest      = errors.New("bad request")
	ErrPolicyViolation = errors.New("claim exceeds eligible amount")
	ErrUnknownTool     = errors.New("unknown tool")
)

// Error codes surfaced to callers in results and HTTP bodies
const (
	CodeNotFound       = "NOT_FOUND"
	CodeMalformedInput = "MALFORMED_INPUT"
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnknownTool    = "UNKNOWN_TOOL"
	CodeConflict       = "CONFLICT"
	CodeInternalError  = "INTERNAL_ERROR"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, ErrBadRequest)
}

func MalformedInput(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeMalformedInput, message, ErrMalformedInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// CodeOf maps an error chain onto the result code reported to callers
func CodeOf(err error) string {
	var appErr *AppError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrMalformedInput):
		return CodeMalformedInput
	case errors.Is(err, ErrUnknownTool):
		return CodeUnknownTool
	case errors.Is(err, ErrBadRequest):
		return CodeBadRequest
	default:
		return CodeInternalError
	}
}
