package dto

import (
	domainerr "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
)

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds the body for err with the message the client is allowed to see
func NewErrorResponse(err error, message string) ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	}
}
