package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table.
type Account struct {
	AccountNumber int64
	Name          string
	Phone         string
	Email         string
	PIN           string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}
