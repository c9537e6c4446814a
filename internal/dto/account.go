package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"bankledger/internal/core/domain"
)

// ModifyField selects which account field a modify request targets.
// Unrecognized selectors are rejected as validation errors.
type ModifyField string

const (
	FieldName  ModifyField = "name"
	FieldPhone ModifyField = "phone"
	FieldEmail ModifyField = "email"
	FieldPIN   ModifyField = "pin"
)

// CreateAccountRequest defines the data needed to open a new account.
// PIN is optional; the default PIN is issued when it is empty.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	Phone          string          `json:"phone" binding:"required"`
	Email          string          `json:"email"`
	PIN            string          `json:"pin" binding:"omitempty,pin4"`
	InitialDeposit decimal.Decimal `json:"initialDeposit" binding:"required"`
}

// ModifyAccountRequest updates a single account field.
type ModifyAccountRequest struct {
	Field    ModifyField `json:"field" binding:"required,oneof=name phone email pin"`
	NewValue string      `json:"newValue" binding:"required"`
}

// AccountResponse defines the data returned for an account. The PIN is
// never echoed back.
type AccountResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// AccountSummary is the trimmed shape used by search and admin listing.
type AccountSummary struct {
	AccountNumber int64           `json:"accountNumber"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Balance       decimal.Decimal `json:"balance"`
}

// ListAccountsResponse wraps a set of account summaries.
type ListAccountsResponse struct {
	Accounts []AccountSummary `json:"accounts"`
}

// ToAccountResponse converts a domain account to its response shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		Phone:         a.Phone,
		Email:         a.Email,
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
	}
}

// ToAccountSummary converts a domain account to its summary shape.
func ToAccountSummary(a domain.Account) AccountSummary {
	return AccountSummary{
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		Phone:         a.Phone,
		Balance:       a.Balance,
	}
}
