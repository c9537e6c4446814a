package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/dto"
	"bankledger/internal/middleware"
)

// adminHandler serves the admin-gated operations. The admin secret check
// itself lives in middleware.RequireAdmin on the route group.
type adminHandler struct {
	accountService   portssvc.AccountSvcFacade
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvcFacade
	defaultRate      decimal.Decimal
}

func newAdminHandler(as portssvc.AccountSvcFacade, ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvcFacade, defaultRate decimal.Decimal) *adminHandler {
	return &adminHandler{
		accountService:   as,
		ledgerService:    ls,
		reportingService: rs,
		defaultRate:      defaultRate,
	}
}

// deleteAccount godoc
// @Summary Delete an account permanently
// @Description Hard-deletes the account and all of its ledger entries; irreversible
// @Tags admin
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /admin/accounts/{accountNumber} [delete]
func (h *adminHandler) deleteAccount(c *gin.Context) {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountNumber); err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("account deleted",
		slog.Int64("account_number", accountNumber))
	c.Status(http.StatusNoContent)
}

// applyInterest godoc
// @Summary Apply interest to all accounts with a positive balance
// @Description Credits balance*rate per account; failures are reported per account, not aborted
// @Tags admin
// @Accept json
// @Produce json
// @Param interest body dto.ApplyInterestRequest false "Optional rate override"
// @Success 200 {object} dto.ApplyInterestResponse
// @Failure 400 {object} map[string]string "Invalid rate"
// @Failure 403 {object} map[string]string "Access denied"
// @Router /admin/interest [post]
func (h *adminHandler) applyInterest(c *gin.Context) {
	var req dto.ApplyInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	rate := h.defaultRate
	if req.Rate != nil {
		rate = *req.Rate
	}

	credits, err := h.ledgerService.ApplyInterest(c.Request.Context(), rate)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplyInterestResponse{Rate: rate, Credits: credits})
}

// listAccounts godoc
// @Summary List all accounts
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 403 {object} map[string]string "Access denied"
// @Router /admin/accounts [get]
func (h *adminHandler) listAccounts(c *gin.Context) {
	accounts, err := h.reportingService.ListAllAccounts(c.Request.Context())
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	summaries := make([]dto.AccountSummary, len(accounts))
	for i, acc := range accounts {
		summaries[i] = dto.ToAccountSummary(acc)
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: summaries})
}
