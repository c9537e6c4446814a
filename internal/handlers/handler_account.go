package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/dto"
	"bankledger/internal/middleware"
)

// accountHandler handles HTTP requests related to account records.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	authService    portssvc.AuthSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, auth portssvc.AuthSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		authService:    auth,
	}
}

// createAccount godoc
// @Summary Open a new account
// @Description Opens an account with an initial deposit at or above the minimum balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Phone already in use"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind create account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	logger.Info("account created", slog.Int64("account_number", account.AccountNumber))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// modifyAccount godoc
// @Summary Modify one account field
// @Description Updates name, phone, email or pin after PIN authentication
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param change body dto.ModifyAccountRequest true "Field and new value"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 409 {object} map[string]string "Phone already in use"
// @Router /accounts/{accountNumber} [put]
func (h *accountHandler) modifyAccount(c *gin.Context) {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}
	if !requirePIN(c, h.authService, accountNumber) {
		return
	}

	var req dto.ModifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.ModifyAccount(c.Request.Context(), accountNumber, req.Field, req.NewValue)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("account modified",
		slog.Int64("account_number", accountNumber), slog.String("field", string(req.Field)))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// searchAccounts godoc
// @Summary Search accounts
// @Description Case-insensitive substring search over name and phone
// @Tags accounts
// @Produce json
// @Param q query string true "Name or phone fragment"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Missing query"
// @Router /search [get]
func (h *accountHandler) searchAccounts(c *gin.Context) {
	accounts, err := h.accountService.FindByQuery(c.Request.Context(), c.Query("q"))
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
