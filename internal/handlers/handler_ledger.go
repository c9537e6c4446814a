package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/dto"
	"bankledger/internal/middleware"
)

// ledgerHandler handles the balance-mutating operations.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	authService   portssvc.AuthSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, auth portssvc.AuthSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
		authService:   auth,
	}
}

// deposit godoc
// @Summary Deposit money
// @Tags ledger
// @Accept json
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param movement body dto.MovementRequest true "Amount"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountNumber}/deposits [post]
func (h *ledgerHandler) deposit(c *gin.Context) {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}
	if !requirePIN(c, h.authService, accountNumber) {
		return
	}

	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	newBalance, err := h.ledgerService.Deposit(c.Request.Context(), accountNumber, req.Amount)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("deposit applied",
		slog.Int64("account_number", accountNumber), slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, dto.MovementResponse{AccountNumber: accountNumber, NewBalance: newBalance})
}

// withdraw godoc
// @Summary Withdraw money
// @Description Debits the account; the balance may not fall below the minimum balance floor
// @Tags ledger
// @Accept json
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param movement body dto.MovementRequest true "Amount"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /accounts/{accountNumber}/withdrawals [post]
func (h *ledgerHandler) withdraw(c *gin.Context) {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}
	if !requirePIN(c, h.authService, accountNumber) {
		return
	}

	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	newBalance, err := h.ledgerService.Withdraw(c.Request.Context(), accountNumber, req.Amount)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("withdrawal applied",
		slog.Int64("account_number", accountNumber), slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, dto.MovementResponse{AccountNumber: accountNumber, NewBalance: newBalance})
}

// transfer godoc
// @Summary Transfer money between accounts
// @Description Atomically debits the sender and credits the receiver; the sender's PIN authenticates the request
// @Tags ledger
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input or self-transfer"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /transfers [post]
func (h *ledgerHandler) transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	if !requirePIN(c, h.authService, req.FromAccount) {
		return
	}

	fromBalance, toBalance, err := h.ledgerService.Transfer(c.Request.Context(), req.FromAccount, req.ToAccount, req.Amount)
	if err != nil {
		respondError(c.Request.Context(), c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("transfer applied",
		slog.Int64("from_account", req.FromAccount),
		slog.Int64("to_account", req.ToAccount),
		slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, dto.TransferResponse{
		FromAccount:    req.FromAccount,
		ToAccount:      req.ToAccount,
		Amount:         req.Amount,
		FromNewBalance: fromBalance,
		ToNewBalance:   toBalance,
	})
}
