package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest           ErrorCode = "bad_request"
	errCodeNotFound             ErrorCode = "not_found"
	errCodeValidationFailed     ErrorCode = "validation_failed"
	errCodeDuplicateTransaction ErrorCode = "duplicate_transaction"
	errCodeEditionCapReached    ErrorCode = "edition_cap_reached"
	errCodeInsufficientBalance  ErrorCode = "insufficient_balance"
	errCodeMissionNotCompleted  ErrorCode = "mission_not_completed"
	errCodeMissionClaimed       ErrorCode = "mission_already_claimed"

	// Server errors (5xx)
	errCodeInternalError    ErrorCode = "internal_error"
	errCodeServiceError     ErrorCode = "service_error"
	errCodeTransferReverted ErrorCode = "transfer_reverted"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(message, append(fields, zap.Error(err))...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps known domain errors to their HTTP representation;
// anything unknown becomes a logged 500
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", err.Error())
	case errors.Is(err, domain.ErrPostNotFound):
		respondNotFound(c, "Post not found")
	case errors.Is(err, domain.ErrAccountNotFound):
		respondNotFound(c, "Account not found")
	case errors.Is(err, domain.ErrNotificationNotFound):
		respondNotFound(c, "Notification not found")
	case errors.Is(err, domain.ErrMissionNotFound):
		respondNotFound(c, "Mission not found")
	case errors.Is(err, domain.ErrDuplicateTransaction):
		respondWithError(c, http.StatusConflict, errCodeDuplicateTransaction, "Transaction already recorded")
	case errors.Is(err, domain.ErrEditionCapReached):
		respondWithError(c, http.StatusConflict, errCodeEditionCapReached, "Edition cap reached")
	case errors.Is(err, domain.ErrInsufficientBalance):
		respondWithError(c, http.StatusBadRequest, errCodeInsufficientBalance, "Insufficient star balance")
	case errors.Is(err, domain.ErrInsufficientCustodialFunds):
		respondWithError(c, http.StatusServiceUnavailable, errCodeServiceError, "Withdrawals temporarily unavailable")
	case errors.Is(err, domain.ErrTransferReverted):
		respondWithError(c, http.StatusBadGateway, errCodeTransferReverted, "Transfer reverted on-chain")
	case errors.Is(err, domain.ErrMissionNotCompleted):
		respondWithError(c, http.StatusConflict, errCodeMissionNotCompleted, "Mission not completed yet")
	case errors.Is(err, domain.ErrMissionAlreadyClaimed):
		respondWithError(c, http.StatusConflict, errCodeMissionClaimed, "Mission reward already claimed")
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
