// Package services defines the facades exposed upward to handlers and test
// harnesses. This is the entire surface a caller needs to drive the ledger.
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"bankledger/internal/core/domain"
	"bankledger/internal/dto"
)

// AccountSvcFacade is CRUD over accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	ModifyAccount(ctx context.Context, accountNumber int64, field dto.ModifyField, newValue string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountNumber int64) error
	FindByQuery(ctx context.Context, query string) ([]domain.Account, error)
}

// LedgerSvcFacade is the sole writer of balances.
type LedgerSvcFacade interface {
	Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(ctx context.Context, fromAccount, toAccount int64, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error)
	ApplyInterest(ctx context.Context, rate decimal.Decimal) ([]domain.InterestCredit, error)
}

// ReportingSvcFacade is the read-only view over accounts and entries.
type ReportingSvcFacade interface {
	GetAccountDetails(ctx context.Context, accountNumber int64) (*domain.Account, error)
	GetHistory(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error)
	ListAllAccounts(ctx context.Context) ([]domain.Account, error)
}

// AuthSvcFacade guards PIN-protected and admin operations.
type AuthSvcFacade interface {
	// Authenticate returns false both for a wrong PIN and for a missing
	// account, so callers cannot tell the two apart.
	Authenticate(ctx context.Context, accountNumber int64, pin string) (bool, error)
	// AuthorizeAdmin compares the supplied secret in constant time and
	// fails closed with apperrors.ErrAccessDenied.
	AuthorizeAdmin(secret string) error
}
