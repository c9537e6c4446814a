package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bankledger/internal/core/domain"
	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/middleware"
)

// Services bundles the facades the handlers are wired against.
type Services struct {
	Account   portssvc.AccountSvcFacade
	Ledger    portssvc.LedgerSvcFacade
	Reporting portssvc.ReportingSvcFacade
	Auth      portssvc.AuthSvcFacade
}

// RegisterValidations installs custom binding validations. pin4 accepts a
// four-digit numeric PIN.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("pin4", func(fl validator.FieldLevel) bool {
			return domain.ValidPIN(fl.Field().String())
		})
	}
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(r *gin.Engine, svcs Services, defaultInterestRate decimal.Decimal) {
	accountH := newAccountHandler(svcs.Account, svcs.Auth)
	ledgerH := newLedgerHandler(svcs.Ledger, svcs.Auth)
	reportingH := newReportingHandler(svcs.Reporting, svcs.Auth)
	adminH := newAdminHandler(svcs.Account, svcs.Ledger, svcs.Reporting, defaultInterestRate)

	v1 := r.Group("/api/v1")

	accounts := v1.Group("/accounts")
	{
		accounts.POST("", accountH.createAccount)
		accounts.GET("/:accountNumber", reportingH.getAccount)
		accounts.PUT("/:accountNumber", accountH.modifyAccount)
		accounts.GET("/:accountNumber/entries", reportingH.getHistory)
		accounts.POST("/:accountNumber/deposits", ledgerH.deposit)
		accounts.POST("/:accountNumber/withdrawals", ledgerH.withdraw)
	}

	v1.GET("/search", accountH.searchAccounts)
	v1.POST("/transfers", ledgerH.transfer)

	admin := v1.Group("/admin", middleware.RequireAdmin(svcs.Auth))
	{
		admin.DELETE("/accounts/:accountNumber", adminH.deleteAccount)
		admin.POST("/interest", adminH.applyInterest)
		admin.GET("/accounts", adminH.listAccounts)
	}
}
