package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bankledger/internal/apperrors"
	"bankledger/internal/core/domain"
	portsrepo "bankledger/internal/core/ports/repositories"
	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/dto"
)

// accountService provides CRUD over accounts. Balance mutation is not its
// business; that belongs to the ledger service.
type accountService struct {
	accountRepo portsrepo.AccountRepository
	minBalance  decimal.Decimal
}

// NewAccountService creates a new account service. minBalance is the floor
// an opening deposit must meet.
func NewAccountService(accountRepo portsrepo.AccountRepository, minBalance decimal.Decimal) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		minBalance:  minBalance,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates the request, normalizes the name and atomically
// inserts the account with its opening deposit entry.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
	}
	if req.InitialDeposit.LessThan(s.minBalance) {
		return nil, fmt.Errorf("%w: initial deposit %s is below the minimum balance %s",
			apperrors.ErrValidation, req.InitialDeposit, s.minBalance)
	}

	pin := req.PIN
	if pin == "" {
		pin = domain.DefaultPIN
	} else if !domain.ValidPIN(pin) {
		return nil, fmt.Errorf("%w: pin must be exactly 4 digits", apperrors.ErrValidation)
	}

	email := req.Email
	if email == "" {
		email = domain.EmailUnset
	}

	account := domain.Account{
		Name:      domain.NormalizeName(req.Name),
		Phone:     req.Phone,
		Email:     email,
		PIN:       pin,
		Balance:   req.InitialDeposit,
		CreatedAt: time.Now().UTC(),
	}
	opening := domain.LedgerEntry{
		Kind:    domain.Deposit,
		Amount:  req.InitialDeposit,
		Details: "Account Opened",
	}

	return s.accountRepo.CreateAccount(ctx, account, opening)
}

// ModifyAccount updates a single field of an account. The caller must have
// authenticated the PIN already. Unrecognized field selectors fail with a
// validation error rather than silently doing nothing.
func (s *accountService) ModifyAccount(ctx context.Context, accountNumber int64, field dto.ModifyField, newValue string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	switch field {
	case dto.FieldName:
		if strings.TrimSpace(newValue) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
		}
		account.Name = domain.NormalizeName(newValue)
	case dto.FieldPhone:
		if strings.TrimSpace(newValue) == "" {
			return nil, fmt.Errorf("%w: phone must not be empty", apperrors.ErrValidation)
		}
		account.Phone = newValue
	case dto.FieldEmail:
		if newValue == "" {
			newValue = domain.EmailUnset
		}
		account.Email = newValue
	case dto.FieldPIN:
		if !domain.ValidPIN(newValue) {
			return nil, fmt.Errorf("%w: pin must be exactly 4 digits", apperrors.ErrValidation)
		}
		account.PIN = newValue
	default:
		return nil, fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, field)
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount hard-deletes an account and its history. Deleting an absent
// account reports not-found rather than succeeding silently.
func (s *accountService) DeleteAccount(ctx context.Context, accountNumber int64) error {
	return s.accountRepo.DeleteAccount(ctx, accountNumber)
}

// FindByQuery searches accounts by name or phone substring.
func (s *accountService) FindByQuery(ctx context.Context, query string) ([]domain.Account, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", apperrors.ErrValidation)
	}
	return s.accountRepo.SearchAccounts(ctx, strings.TrimSpace(query))
}
