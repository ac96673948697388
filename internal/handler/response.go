package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondWithError maps the error taxonomy to HTTP status codes. Domain
// errors surface their message verbatim; everything else is a storage or
// internal failure reported as 500.
func RespondWithError(c *gin.Context, err error) {
	var status int
	switch apperrors.Code(err) {
	case apperrors.ErrValidation:
		status = http.StatusBadRequest
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrUnauthorized:
		status = http.StatusUnauthorized
	default:
		status = http.StatusInternalServerError
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
