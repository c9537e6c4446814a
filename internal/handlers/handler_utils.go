package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankledger/internal/apperrors"
	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/middleware"
)

// AccountPINHeader carries the account PIN on PIN-protected routes.
const AccountPINHeader = "X-Account-PIN"

// accountNumberParam parses the :accountNumber path parameter.
func accountNumberParam(c *gin.Context) (int64, bool) {
	n, err := strconv.ParseInt(c.Param("accountNumber"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account number"})
		return 0, false
	}
	return n, true
}

// requirePIN authenticates the PIN header for the given account. The
// response is the same for a wrong PIN and an unknown account.
func requirePIN(c *gin.Context, authSvc portssvc.AuthSvcFacade, accountNumber int64) bool {
	ok, err := authSvc.Authenticate(c.Request.Context(), accountNumber, c.GetHeader(AccountPINHeader))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("pin authentication failed",
			slog.Int64("account_number", accountNumber), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication unavailable"})
		return false
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return false
	}
	return true
}

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(ctx context.Context, c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicatePhone):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	default:
		logger.Error("request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
