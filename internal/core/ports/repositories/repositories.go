// Package repositories defines the persistence ports consumed by the core
// services. Implementations live under internal/repositories/database.
package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"bankledger/internal/core/domain"
)

// AccountRepository is CRUD over account records. Uniqueness of the phone
// number is enforced by the store and surfaced as apperrors.ErrDuplicatePhone.
type AccountRepository interface {
	// CreateAccount inserts the account and its opening ledger entry as one
	// atomic unit and returns the account with its assigned number.
	CreateAccount(ctx context.Context, account domain.Account, opening domain.LedgerEntry) (*domain.Account, error)
	FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)
	// UpdateAccount persists name, phone, email and pin changes.
	UpdateAccount(ctx context.Context, account domain.Account) error
	// DeleteAccount hard-deletes the account and all of its ledger entries
	// in one transaction. Returns apperrors.ErrNotFound when absent.
	DeleteAccount(ctx context.Context, accountNumber int64) error
	// SearchAccounts matches the query case-insensitively against name or
	// phone as a substring.
	SearchAccounts(ctx context.Context, query string) ([]domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// FindPIN returns the stored PIN for the account.
	FindPIN(ctx context.Context, accountNumber int64) (string, error)
}

// LedgerRepository is the atomic write path for balances. Every method that
// moves money locks the touched rows, mutates the balance and appends the
// matching ledger entries inside a single transaction; partial application
// is impossible.
type LedgerRepository interface {
	// Credit adds amount to the balance and appends one entry of the given
	// kind. Used for deposits.
	Credit(ctx context.Context, accountNumber int64, amount decimal.Decimal, kind domain.EntryKind, details string) (*domain.Account, error)
	// Debit subtracts amount, failing with apperrors.ErrInsufficientFunds
	// when the remaining balance would fall below floor.
	Debit(ctx context.Context, accountNumber int64, amount, floor decimal.Decimal, kind domain.EntryKind, details string) (*domain.Account, error)
	// Transfer debits from and credits to atomically, appending a
	// TRANSFER_OUT and a TRANSFER_IN entry that share one timestamp.
	Transfer(ctx context.Context, fromAccount, toAccount int64, amount, floor decimal.Decimal) (*domain.Account, *domain.Account, error)
	// CreditInterest computes balance*rate against the locked balance,
	// credits it and appends one INTEREST entry.
	CreditInterest(ctx context.Context, accountNumber int64, rate decimal.Decimal) (decimal.Decimal, *domain.Account, error)
	// AccountsWithPositiveBalance snapshots the accounts qualifying for an
	// interest pass.
	AccountsWithPositiveBalance(ctx context.Context) ([]domain.Account, error)
	// EntriesByAccount lists entries newest first (timestamp, then entry id).
	EntriesByAccount(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error)
}
