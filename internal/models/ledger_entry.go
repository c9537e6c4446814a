package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind is the stored classification of a ledger entry.
type EntryKind string

// LedgerEntry mirrors the ledger_entries table. Rows are append-only; the
// only permitted deletion is the cascade when an account is hard-deleted.
type LedgerEntry struct {
	EntryID       int64
	AccountNumber int64
	Kind          EntryKind
	Amount        decimal.Decimal
	Details       string
	CreatedAt     time.Time
}
