package apperrors

import "errors"

// ErrNotFound indicates that a requested account could not be found.
var ErrNotFound = errors.New("account not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicatePhone indicates that the phone number is already registered
// to another account.
var ErrDuplicatePhone = errors.New("phone number already in use")

// ErrInsufficientFunds indicates that a debit would push the balance
// below the minimum balance floor.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAccessDenied indicates a PIN or admin secret mismatch.
var ErrAccessDenied = errors.New("access denied")

// ErrStorage indicates an underlying transaction failure or timeout.
// Nothing below the caller retries; retry policy belongs to the caller.
var ErrStorage = errors.New("storage error")
