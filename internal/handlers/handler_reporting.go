package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/dto"
)

// reportingHandler serves the read-only views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	authService      portssvc.AuthSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, auth portssvc.AuthSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		authService:      auth,
	}
}

// getAccount godoc
// @Summary Get account details
// @Tags reporting
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} map[string]string "Access denied"
// @Router /accounts/{accountNumber} [get]
func (h *reportingHandler) getAccount(c *gin.Context) {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}
	if !requirePIN(c, h.authService, accountNumber) {
		return
	}

	account, err := h.reportingService.GetAccountDetails(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getHistory godoc
// @Summary Get transaction history
// @Description Returns ledger entries newest first; an account with no entries yields an empty list
// @Tags reporting
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {object} dto.HistoryResponse
// @Failure 403 {object} map[string]string "Access denied"
// @Router /accounts/{accountNumber}/entries [get]
func (h *reportingHandler) getHistory(c *gin.Context) {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}
	if !requirePIN(c, h.authService, accountNumber) {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := h.reportingService.GetHistory(c.Request.Context(), accountNumber, limit)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	resp := dto.HistoryResponse{
		AccountNumber: accountNumber,
		Entries:       make([]dto.LedgerEntryResponse, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = dto.ToLedgerEntryResponse(e)
	}
	c.JSON(http.StatusOK, resp)
}
