package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry. The sign of the movement is implied
// by the kind; Amount is always a positive magnitude.
type EntryKind string

const (
	Deposit     EntryKind = "DEPOSIT"
	Withdraw    EntryKind = "WITHDRAW"
	TransferOut EntryKind = "TRANSFER_OUT"
	TransferIn  EntryKind = "TRANSFER_IN"
	Interest    EntryKind = "INTEREST"
)

// LedgerEntry is the immutable record of one balance-affecting event.
// An entry never exists without the balance mutation it represents having
// committed in the same transaction, and vice versa.
type LedgerEntry struct {
	EntryID       int64           `json:"entryID"`
	AccountNumber int64           `json:"accountNumber"`
	Kind          EntryKind       `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Details       string          `json:"details"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// InterestCredit is one row of an ApplyInterest report. Err is set when the
// account's own transaction failed; other accounts are unaffected.
type InterestCredit struct {
	AccountNumber int64           `json:"accountNumber"`
	Name          string          `json:"name"`
	Interest      decimal.Decimal `json:"interest"`
	NewBalance    decimal.Decimal `json:"newBalance"`
	Err           string          `json:"error,omitempty"`
}
