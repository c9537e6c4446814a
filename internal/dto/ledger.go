package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"bankledger/internal/core/domain"
)

// MovementRequest carries the amount for a deposit or withdrawal.
type MovementRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// MovementResponse reports the balance after a deposit or withdrawal.
type MovementResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	NewBalance    decimal.Decimal `json:"newBalance"`
}

// TransferRequest moves amount between two accounts.
type TransferRequest struct {
	FromAccount int64           `json:"fromAccount" binding:"required"`
	ToAccount   int64           `json:"toAccount" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse reports both post-transfer balances.
type TransferResponse struct {
	FromAccount    int64           `json:"fromAccount"`
	ToAccount      int64           `json:"toAccount"`
	Amount         decimal.Decimal `json:"amount"`
	FromNewBalance decimal.Decimal `json:"fromNewBalance"`
	ToNewBalance   decimal.Decimal `json:"toNewBalance"`
}

// ApplyInterestRequest optionally overrides the configured annual rate.
type ApplyInterestRequest struct {
	Rate *decimal.Decimal `json:"rate"`
}

// ApplyInterestResponse is the per-account report of an interest pass.
type ApplyInterestResponse struct {
	Rate    decimal.Decimal         `json:"rate"`
	Credits []domain.InterestCredit `json:"credits"`
}

// LedgerEntryResponse is one history row.
type LedgerEntryResponse struct {
	EntryID       int64            `json:"entryID"`
	AccountNumber int64            `json:"accountNumber"`
	Kind          domain.EntryKind `json:"kind"`
	Amount        decimal.Decimal  `json:"amount"`
	Details       string           `json:"details"`
	Timestamp     time.Time        `json:"timestamp"`
}

// HistoryResponse wraps an account's ledger entries, newest first.
type HistoryResponse struct {
	AccountNumber int64                 `json:"accountNumber"`
	Entries       []LedgerEntryResponse `json:"entries"`
}

// ToLedgerEntryResponse converts a domain entry to its response shape.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		AccountNumber: e.AccountNumber,
		Kind:          e.Kind,
		Amount:        e.Amount,
		Details:       e.Details,
		Timestamp:     e.CreatedAt,
	}
}
