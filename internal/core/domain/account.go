package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPIN is issued when an account is opened without an explicit PIN.
const DefaultPIN = "1234"

// EmailUnset is the sentinel stored when no email address was provided.
const EmailUnset = "N/A"

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

var titleCaser = cases.Title(language.English)

// Account is a single bank account. The account number is system-assigned
// and immutable; the balance is mutated only by the ledger engine.
type Account struct {
	AccountNumber int64           `json:"accountNumber"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	PIN           string          `json:"-"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ValidPIN reports whether pin is exactly four digits.
func ValidPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// NormalizeName title-cases a display name on write.
func NormalizeName(name string) string {
	return titleCaser.String(name)
}
